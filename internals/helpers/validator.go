package helper

import (
	"strings"

	"github.com/go-playground/validator/v10"
)

// Shared validator instance for all DTOs.
var Validate = validator.New()

// ValidationMap flattens validator.ValidationErrors into the field→messages
// map used by JsonValidationError. Non-validator errors come back as a single
// "_" entry so callers can pass any error through.
func ValidationMap(err error) map[string][]string {
	out := map[string][]string{}
	ve, ok := err.(validator.ValidationErrors)
	if !ok {
		out["_"] = []string{err.Error()}
		return out
	}
	for _, fe := range ve {
		field := strings.ToLower(fe.Field())
		var msg string
		switch fe.Tag() {
		case "required":
			msg = "this field is required"
		case "email":
			msg = "must be a valid email address"
		case "min":
			msg = "must be at least " + fe.Param() + " characters"
		case "max":
			msg = "must be at most " + fe.Param() + " characters"
		case "oneof":
			msg = "must be one of: " + fe.Param()
		case "len":
			msg = "must be exactly " + fe.Param() + " characters"
		default:
			msg = "is invalid"
		}
		out[field] = append(out[field], msg)
	}
	return out
}
