package validator

import (
	"fmt"
	"math"
)

// Min validates that value >= min.
func Min[T Numeric](field string, value, min T) Rule {
	return Rule{
		Check: func() bool { return value >= min },
		Error: ValidationError{
			Field:          field,
			Value:          value,
			Message:        fmt.Sprintf("must be at least %v", min),
			TranslationKey: "validation.min",
		},
	}
}

// Max validates that value <= max.
func Max[T Numeric](field string, value, max T) Rule {
	return Rule{
		Check: func() bool { return value <= max },
		Error: ValidationError{
			Field:          field,
			Value:          value,
			Message:        fmt.Sprintf("must be at most %v", max),
			TranslationKey: "validation.max",
		},
	}
}

// Between validates that min <= value <= max.
func Between[T Numeric](field string, value, min, max T) Rule {
	return Rule{
		Check: func() bool { return value >= min && value <= max },
		Error: ValidationError{
			Field:          field,
			Value:          value,
			Message:        fmt.Sprintf("must be between %v and %v", min, max),
			TranslationKey: "validation.between",
		},
	}
}

// RangeOr validates that value is within [min, max] or equals one of the
// sentinel values (for example -1 meaning "automatic").
func RangeOr[T Numeric](field string, value, min, max T, sentinels ...T) Rule {
	return Rule{
		Check: func() bool {
			for _, s := range sentinels {
				if value == s {
					return true
				}
			}
			return value >= min && value <= max
		},
		Error: ValidationError{
			Field:          field,
			Value:          value,
			Message:        fmt.Sprintf("must be between %v and %v or one of %v", min, max, sentinels),
			TranslationKey: "validation.range_or",
		},
	}
}

// Finite validates that value is neither infinite nor NaN.
func Finite[T ~float32 | ~float64](field string, value T) Rule {
	return Rule{
		Check: func() bool {
			v := float64(value)
			return !math.IsInf(v, 0) && !math.IsNaN(v)
		},
		Error: ValidationError{
			Field:          field,
			Value:          value,
			Message:        "must be a finite number",
			TranslationKey: "validation.finite",
		},
	}
}
