package aiquiz

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDrafts(t *testing.T) {
	t.Run("Fenced", func(t *testing.T) {
		raw := "```json\n[{\"text\":\"q\",\"options\":[\"a\",\"b\",\"c\",\"d\"],\"answer\":\"b\",\"explanation\":\"e\"}]\n```"
		drafts, err := parseDrafts(raw)
		require.NoError(t, err)
		require.Len(t, drafts, 1)
		assert.Equal(t, "b", drafts[0].Answer)
	})

	t.Run("Empty", func(t *testing.T) {
		_, err := parseDrafts("   ")
		assert.Error(t, err)
	})

	t.Run("NotJSON", func(t *testing.T) {
		_, err := parseDrafts("sorry, I can't")
		assert.Error(t, err)
	})
}

func TestUnavailableProvider(t *testing.T) {
	_, err := unavailableProvider{}.SendPrompt(context.Background(), "", "")
	assert.ErrorIs(t, err, ErrProviderUnavailable)
}
