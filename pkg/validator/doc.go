// Package validator provides composable validation rules.
//
// A Rule pairs a Check closure with the ValidationError reported when the
// check fails. Apply evaluates every rule (it never stops at the first
// failure) and returns ValidationErrors listing all failed fields, or nil.
//
//	err := validator.Apply(
//		validator.OneOf("ecclevel", level, []string{"L", "M", "Q", "H"}),
//		validator.Min("modulesize", size, 0.5),
//		validator.RangeOr("mask", mask, 0, 7, -1),
//	)
//	if errs := validator.ExtractValidationErrors(err); errs != nil {
//		for _, e := range errs {
//			log.Println(e.Field, e.Value, e.Message)
//		}
//	}
package validator
