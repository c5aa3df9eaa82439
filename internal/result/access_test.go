package result_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/saulo-duarte/testseries-lambda/internal/result"
	"github.com/saulo-duarte/testseries-lambda/internal/series"
	"github.com/stretchr/testify/assert"
)

func TestCanAccess(t *testing.T) {
	owner, creator, stranger := uuid.New(), uuid.New(), uuid.New()
	sr := &series.Series{ID: uuid.New(), CreatorID: creator}
	res := &result.Result{ID: uuid.New(), UserID: owner, SeriesID: sr.ID}

	assert.True(t, result.CanAccess(owner, res, sr))
	assert.True(t, result.CanAccess(creator, res, sr))
	assert.False(t, result.CanAccess(stranger, res, sr))

	t.Run("DanglingSeries", func(t *testing.T) {
		assert.True(t, result.CanAccess(owner, res, nil))
		assert.False(t, result.CanAccess(creator, res, nil))
	})

	t.Run("MismatchedSeries", func(t *testing.T) {
		other := &series.Series{ID: uuid.New(), CreatorID: stranger}
		assert.False(t, result.CanAccess(stranger, res, other))
	})

	t.Run("NilCaller", func(t *testing.T) {
		assert.False(t, result.CanAccess(uuid.Nil, &result.Result{UserID: uuid.Nil}, nil))
	})
}
