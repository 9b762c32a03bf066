package dto

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/yigit/coursecatalog/internal/pkg/apperrors"
)

// ErrorResponse represents the standard error response structure.
// Detail is either a message string or a list of FieldError values.
type ErrorResponse struct {
	Detail interface{} `json:"detail" swaggertype:"string" example:"Course not found"`
}

// FieldError describes a single invalid request field
type FieldError struct {
	Field   string `json:"field" example:"name"`
	Message string `json:"message" example:"name is required"`
	Tag     string `json:"tag" example:"required"`
}

// ValidationErrorResponse is returned when a request body fails validation
type ValidationErrorResponse struct {
	Detail []FieldError `json:"detail"`
}

// NewErrorResponse creates an error response carrying a single message
func NewErrorResponse(message string) *ErrorResponse {
	return &ErrorResponse{Detail: message}
}

// HandleValidationError converts a binding or field validation error into a
// validation response. The second result is false for any other error.
func HandleValidationError(err error) (*ValidationErrorResponse, bool) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		response := &ValidationErrorResponse{Detail: make([]FieldError, 0, len(validationErrs))}
		for _, fe := range validationErrs {
			field := jsonFieldName(fe)
			response.Detail = append(response.Detail, FieldError{
				Field:   field,
				Message: formatValidationError(field, fe),
				Tag:     fe.Tag(),
			})
		}
		return response, true
	}

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		field := typeErr.Field
		if field == "" {
			field = "body"
		}
		return NewValidationErrorResponse(FieldError{
			Field:   field,
			Message: fmt.Sprintf("%s must be a valid %s", field, typeErr.Type),
			Tag:     "type",
		}), true
	}

	var fieldErr *apperrors.FieldError
	if errors.As(err, &fieldErr) {
		return NewValidationErrorResponse(FieldError{
			Field:   fieldErr.Field,
			Message: fieldErr.Message,
			Tag:     "invalid",
		}), true
	}

	return nil, false
}

// NewValidationErrorResponse creates a validation response from field errors
func NewValidationErrorResponse(fieldErrors ...FieldError) *ValidationErrorResponse {
	return &ValidationErrorResponse{Detail: fieldErrors}
}

// jsonFieldName lowercases the struct field name to match its JSON key
func jsonFieldName(fe validator.FieldError) string {
	return strings.ToLower(fe.Field())
}

// formatValidationError creates a human-readable validation error message
func formatValidationError(field string, fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "min":
		return fmt.Sprintf("%s must be at least %s", field, fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s", field, fe.Param())
	case "oneof":
		return field + " must be one of: " + fe.Param()
	default:
		return field + " validation failed: " + fe.Tag()
	}
}
