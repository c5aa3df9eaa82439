package config_test

import (
	"testing"

	"github.com/saulo-duarte/testseries-lambda/internal/config"
	"github.com/stretchr/testify/assert"
)

type sample struct {
	Title   string   `json:"title" validate:"notblank"`
	Options []string `json:"options" validate:"len=4"`
	Timer   int      `json:"timer" validate:"gte=0"`
}

func TestValidationFields(t *testing.T) {
	t.Run("UsesJSONNames", func(t *testing.T) {
		err := config.Validate.Struct(sample{Title: "  ", Options: []string{"a"}, Timer: -1})
		fields := config.ValidationFields(err)

		assert.Len(t, fields, 3)
		assert.Equal(t, "title cannot be blank", fields["title"])
		assert.Contains(t, fields, "options")
		assert.Contains(t, fields, "timer")
	})

	t.Run("ValidStruct", func(t *testing.T) {
		err := config.Validate.Struct(sample{Title: "Algebra", Options: []string{"a", "b", "c", "d"}})
		assert.NoError(t, err)
		assert.Nil(t, config.ValidationFields(err))
	})

	t.Run("NotAValidationError", func(t *testing.T) {
		assert.Nil(t, config.ValidationFields(assert.AnError))
	})
}
