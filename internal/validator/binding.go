package validator

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"

	apperrors "poseidon/internal/errors"
)

// FromBinding converts an error returned by Gin's ShouldBind* into field errors.
func FromBinding(err error) []apperrors.FieldError {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		out := make([]apperrors.FieldError, 0, len(verrs))
		for _, fe := range verrs {
			out = append(out, apperrors.FieldError{Field: fe.Field(), Message: describe(fe)})
		}
		return out
	}

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		return []apperrors.FieldError{{Field: typeErr.Field, Message: "has the wrong type"}}
	}

	return []apperrors.FieldError{{Field: "body", Message: "malformed request body"}}
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required", "notblank":
		return "is mandatory"
	case "max":
		return fmt.Sprintf("must be at most %s characters", fe.Param())
	case "min":
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "gte":
		return "must be positive or zero"
	case "gt":
		return "must be positive"
	case "alphanum":
		return "must contain only letters or digits"
	case "moodys", "sp_rating", "fitch_rating":
		return "must follow standard rating format"
	case "password_policy":
		return "must be at least 8 characters and contain an uppercase letter, a digit and a symbol"
	}
	return "is invalid"
}
