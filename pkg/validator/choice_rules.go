package validator

import "fmt"

// OneOf validates that value is one of options.
func OneOf[T comparable](field string, value T, options []T) Rule {
	return Rule{
		Check: func() bool {
			for _, o := range options {
				if value == o {
					return true
				}
			}
			return false
		},
		Error: ValidationError{
			Field:          field,
			Value:          value,
			Message:        fmt.Sprintf("must be one of: %v", options),
			TranslationKey: "validation.in_list",
		},
	}
}
