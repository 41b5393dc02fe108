package apperrors

import "errors"

// Common errors
var (
	// Validation errors
	ErrInvalidInput     = errors.New("invalid input")
	ErrValidationFailed = errors.New("validation failed")

	// Resource errors
	ErrNotFound  = errors.New("resource not found")
	ErrDuplicate = errors.New("resource already exists")

	// Reference errors (a write named a row that does not exist)
	ErrInvalidReference = errors.New("referenced resource does not exist")

	// Store errors
	ErrStoreFailure = errors.New("store operation failed")
)

// Student errors
var (
	ErrStudentNotFound = errors.New("student not found")
)

// Department errors
var (
	ErrDepartmentNotFound = errors.New("department not found")
	ErrInvalidPrefix      = errors.New("department prefix must be exactly 4 characters")
)

// Course errors
var (
	ErrCourseNotFound = errors.New("course not found")
)

// Enrollment errors
var (
	ErrEnrollmentExists = errors.New("enrollment already exists")
)

// NewNotFoundError creates a custom not-found error with a message
func NewNotFoundError(message string) error {
	return &CustomError{
		Err:     ErrNotFound,
		Message: message,
	}
}

// NewInvalidInputError creates a custom invalid-input error with a message
func NewInvalidInputError(message string) error {
	return &CustomError{
		Err:     ErrInvalidInput,
		Message: message,
	}
}

// NewStoreFailureError creates a custom store-failure error wrapping the driver error
func NewStoreFailureError(cause error, message string) error {
	return &CustomError{
		Err:     ErrStoreFailure,
		Cause:   cause,
		Message: message,
	}
}

// CustomError represents application-specific errors with additional context
type CustomError struct {
	Err     error
	Cause   error
	Message string
}

// Error implements the error interface
func (e *CustomError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "unknown error"
}

// Unwrap implements the errors.Unwrap interface
func (e *CustomError) Unwrap() error {
	return e.Err
}

// Message extracts the human-readable message from an error if it carries one,
// falling back to the fallback string.
func Message(err error, fallback string) string {
	var ce *CustomError
	if errors.As(err, &ce) && ce.Message != "" {
		return ce.Message
	}
	return fallback
}
