package validator_test

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/qrgen/pkg/validator"
)

func TestApply(t *testing.T) {
	t.Parallel()

	t.Run("all rules pass", func(t *testing.T) {
		t.Parallel()
		err := validator.Apply(
			validator.OneOf("mode", "octet", []string{"numeric", "alphanumeric", "octet"}),
			validator.Min("modulesize", 0.5, 0.5),
		)
		assert.NoError(t, err)
	})

	t.Run("reports every failed rule", func(t *testing.T) {
		t.Parallel()
		err := validator.Apply(
			validator.OneOf("mode", "xyz", []string{"numeric", "alphanumeric", "octet"}),
			validator.Min("modulesize", 0.0, 0.5),
			validator.Between("version", 3, 1, 40),
			validator.RangeOr("mask", 12, 0, 7, -1),
		)
		require.Error(t, err)
		assert.True(t, validator.IsValidationError(err))
		assert.ErrorIs(t, err, validator.ErrValidationFailed)

		errs := validator.ExtractValidationErrors(err)
		require.Len(t, errs, 3)
		assert.Equal(t, []string{"mode", "modulesize", "mask"}, errs.Fields())
		assert.True(t, errs.Has("mask"))
		assert.False(t, errs.Has("version"))
		assert.Equal(t, "xyz", errs[0].Value)
		assert.Contains(t, err.Error(), "mask: must be between 0 and 7 or one of [-1] (got 12)")
	})

	t.Run("wrapped errors are extracted", func(t *testing.T) {
		t.Parallel()
		err := errors.Join(errors.New("outer"), validator.Apply(validator.Max("margin", 10, 4)))
		assert.True(t, validator.ExtractValidationErrors(err).Has("margin"))
	})

	t.Run("non validation error", func(t *testing.T) {
		t.Parallel()
		assert.Nil(t, validator.ExtractValidationErrors(errors.New("boom")))
		assert.False(t, validator.IsValidationError(nil))
	})
}

func TestRangeOr(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		value int
		ok    bool
	}{
		{"sentinel", -1, true},
		{"lower bound", 1, true},
		{"upper bound", 40, true},
		{"zero", 0, false},
		{"above", 41, false},
		{"below sentinel", -2, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.ok, validator.RangeOr("version", tt.value, 1, 40, -1).Check())
		})
	}
}

func TestFinite(t *testing.T) {
	t.Parallel()

	assert.True(t, validator.Finite("modulesize", 5.0).Check())
	assert.True(t, validator.Finite("modulesize", math.MaxFloat64).Check())
	assert.False(t, validator.Finite("modulesize", math.Inf(1)).Check())
	assert.False(t, validator.Finite("modulesize", math.Inf(-1)).Check())
	assert.False(t, validator.Finite("modulesize", math.NaN()).Check())
}

func TestOneOf(t *testing.T) {
	t.Parallel()

	rule := validator.OneOf("ecclevel", "A", []string{"L", "M", "Q", "H"})
	assert.False(t, rule.Check())
	assert.Equal(t, "ecclevel", rule.Error.Field)
	assert.Equal(t, "must be one of: [L M Q H]", rule.Error.Message)

	assert.True(t, validator.OneOf("ecclevel", "Q", []string{"L", "M", "Q", "H"}).Check())
}
