package utils

import (
	"github.com/go-playground/validator/v10"
)

var Validate *validator.Validate

func InitValidator() {
	Validate = validator.New()
}

// ValidationDetail is one field-level violation extracted from a failed
// struct validation, shaped for the error response body.
type ValidationDetail struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func FormatValidationErrors(err error) []ValidationDetail {
	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return nil
	}

	details := make([]ValidationDetail, 0, len(validationErrors))
	for _, fieldError := range validationErrors {
		details = append(details, ValidationDetail{
			Field:   fieldError.Namespace(),
			Message: validationMessage(fieldError),
		})
	}
	return details
}

// FirstValidationMessage returns the message of the first violation, used
// where the caller surfaces a single reason instead of the full list.
func FirstValidationMessage(err error) string {
	details := FormatValidationErrors(err)
	if len(details) == 0 {
		return ""
	}
	return details[0].Message
}

func validationMessage(fieldError validator.FieldError) string {
	switch fieldError.Tag() {
	case "required":
		return fieldError.Field() + " is required"
	case "email":
		return fieldError.Field() + " must be a valid email address"
	case "oneof":
		return fieldError.Field() + " must be one of: " + fieldError.Param()
	case "min":
		return fieldError.Field() + " must contain at least " + fieldError.Param() + " items"
	case "max":
		return fieldError.Field() + " exceeds the maximum of " + fieldError.Param()
	case "unique":
		return "duplicate " + fieldError.Param() + " values are not allowed"
	case "datetime":
		return fieldError.Field() + " must match the format YYYY-MM-DD"
	case "uuid":
		return fieldError.Field() + " must be a valid UUID"
	case "url":
		return fieldError.Field() + " must be a valid URL"
	default:
		return fieldError.Field() + " is invalid"
	}
}
