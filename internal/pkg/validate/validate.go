package validate

import (
	"github.com/go-playground/validator/v10"
)

var v = validator.New()

// Struct validates a struct against its `validate` tags.
func Struct(s interface{}) error {
	return v.Struct(s)
}

// Message renders a validation error as a short user-facing message.
func Message(err error) string {
	errs, ok := err.(validator.ValidationErrors)
	if !ok || len(errs) == 0 {
		return "Invalid request body"
	}
	fe := errs[0]
	switch fe.Tag() {
	case "required":
		return fe.Field() + " is required"
	case "email":
		return fe.Field() + " must be a valid email address"
	case "gt":
		return fe.Field() + " must be greater than " + fe.Param()
	case "min":
		return fe.Field() + " must be at least " + fe.Param() + " characters"
	case "oneof":
		return fe.Field() + " must be one of: " + fe.Param()
	default:
		return fe.Field() + " is invalid"
	}
}
