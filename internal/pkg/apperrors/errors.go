package apperrors

import "errors"

// Common errors
var (
	// Resource errors
	ErrResourceNotFound      = errors.New("resource not found")
	ErrResourceAlreadyExists = errors.New("resource already exists")

	// Validation errors
	ErrValidationFailed = errors.New("validation failed")
	ErrBadRequest       = errors.New("bad request")
)

// Course errors
var (
	ErrCourseNotFound      = NewCustomError(ErrResourceNotFound, "course not found")
	ErrCourseAlreadyExists = NewCustomError(ErrResourceAlreadyExists, "course with this ID already exists")
)

// NewBadRequestError creates a new custom error for bad request with a message
func NewBadRequestError(message string) error {
	return &CustomError{
		Err:     ErrBadRequest,
		Message: message,
	}
}

// FieldError reports a validation failure on a single input field
type FieldError struct {
	Field   string
	Message string
}

// Error implements error interface
func (e *FieldError) Error() string {
	return ErrValidationFailed.Error() + ": " + e.Message
}

// Unwrap implements errors.Unwrap interface
func (e *FieldError) Unwrap() error {
	return ErrValidationFailed
}

// NewFieldError creates a validation error attached to field
func NewFieldError(field, message string) error {
	return &FieldError{Field: field, Message: message}
}

// CustomError represents application-specific errors with additional context
type CustomError struct {
	Err     error
	Message string
}

// Error implements error interface
func (e *CustomError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "unknown error"
}

// Unwrap implements errors.Unwrap interface
func (e *CustomError) Unwrap() error {
	return e.Err
}

// NewCustomError creates a CustomError with underlying error
func NewCustomError(err error, message string) *CustomError {
	return &CustomError{
		Err:     err,
		Message: message,
	}
}
