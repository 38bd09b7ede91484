package utils

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"gitops-dashboard/pkg/responses"
)

// ValidationFields extracts per-field errors from a gin binding error so
// the boundary can report exactly which fields were rejected.
func ValidationFields(err error) []responses.FieldError {
	if err == nil {
		return nil
	}

	if validationErrors, ok := err.(validator.ValidationErrors); ok {
		fields := make([]responses.FieldError, 0, len(validationErrors))
		for _, e := range validationErrors {
			fields = append(fields, responses.FieldError{
				Field:   e.Field(),
				Message: formatFieldError(e),
			})
		}
		return fields
	}

	if jsonErr, ok := err.(*json.UnmarshalTypeError); ok {
		return []responses.FieldError{{
			Field:   jsonErr.Field,
			Message: fmt.Sprintf("field '%s' should be %s", jsonErr.Field, jsonErr.Type.String()),
		}}
	}

	return []responses.FieldError{{Message: err.Error()}}
}

// FormatValidationError flattens a binding error into one human-readable line.
func FormatValidationError(err error) string {
	if err == nil {
		return ""
	}

	if validationErrors, ok := err.(validator.ValidationErrors); ok {
		var messages []string
		for _, e := range validationErrors {
			messages = append(messages, formatFieldError(e))
		}
		return strings.Join(messages, "; ")
	}

	if jsonErr, ok := err.(*json.UnmarshalTypeError); ok {
		return fmt.Sprintf("field '%s' should be %s", jsonErr.Field, jsonErr.Type.String())
	}

	if _, ok := err.(*json.SyntaxError); ok {
		return "invalid JSON format"
	}

	return err.Error()
}

// formatFieldError formats the validation failure of a single field.
func formatFieldError(e validator.FieldError) string {
	field := e.Field()

	switch e.Tag() {
	case "required":
		return fmt.Sprintf("field '%s' is required", field)
	case "max":
		return fmt.Sprintf("field '%s' must be at most %s characters", field, e.Param())
	case "min":
		return fmt.Sprintf("field '%s' must be at least %s characters", field, e.Param())
	case "oneof":
		return fmt.Sprintf("field '%s' must be one of: %s", field, e.Param())
	case "url":
		return fmt.Sprintf("field '%s' must be a valid URL", field)
	case "gt":
		return fmt.Sprintf("field '%s' must be greater than %s", field, e.Param())
	case "gte":
		return fmt.Sprintf("field '%s' must be greater than or equal to %s", field, e.Param())
	default:
		return fmt.Sprintf("field '%s' validation failed on '%s' tag", field, e.Tag())
	}
}
