package booking

import (
	"strings"

	"github.com/go-playground/validator/v10"
)

// FieldError is a single inline form error, surfaced next to the offending
// field. Validation failures are never fatal.
type FieldError struct {
	Field   string `json:"field"`
	Tag     string `json:"tag"`
	Message string `json:"message"`
}

type ValidationErrors []FieldError

func (v ValidationErrors) Error() string {
	msgs := make([]string, len(v))
	for i, e := range v {
		msgs[i] = e.Message
	}
	return "validation failed: " + strings.Join(msgs, "; ")
}

// ValidateStruct validates a form struct via its validate tags and returns
// one FieldError per failing field, nil when the struct is valid.
func ValidateStruct(s interface{}) ValidationErrors {
	validate := validator.New()

	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var fieldErrors ValidationErrors
	for _, err := range err.(validator.ValidationErrors) {
		fieldErrors = append(fieldErrors, FieldError{
			Field:   err.Field(),
			Tag:     err.Tag(),
			Message: errorMessage(err),
		})
	}
	return fieldErrors
}

func errorMessage(err validator.FieldError) string {
	switch err.Tag() {
	case "required":
		return err.Field() + " is required"
	case "email":
		return err.Field() + " must be a valid email address"
	case "min":
		return err.Field() + " must be at least " + err.Param() + " characters"
	case "max":
		return err.Field() + " must be at most " + err.Param() + " characters"
	default:
		return err.Field() + " is invalid"
	}
}
