package apperrors

import "errors"

// Common errors
var (
	// Resource errors
	ErrResourceNotFound = errors.New("resource not found")

	// Request errors
	ErrInvalidID        = errors.New("invalid id")
	ErrInvalidPages     = errors.New("invalid pages")
	ErrSearchRequired   = errors.New("search term is required")
	ErrValidationFailed = errors.New("validation failed")
	ErrBadRequest       = errors.New("bad request")

	// ErrStoreRejected is returned when the database refuses a write or a query
	// argument, e.g. a constraint violation or a malformed text search query.
	ErrStoreRejected = errors.New("store rejected the operation")
)

// Course errors
var (
	ErrCourseNotFound = NewCustomError(ErrResourceNotFound, "course not found")
)

// Client-facing messages. Responses never carry more detail than these.
const (
	MsgNotFound      = "not found"
	MsgInvalidID     = "invalid ID"
	MsgInvalidPages  = "invalid Pages"
	MsgBadRequest    = "something went wrong"
	MsgInternalError = "internal server error"
)

// Is returns whether err matches target or any of the errors in errList
func Is(err, target error, errList ...error) bool {
	if errors.Is(err, target) {
		return true
	}

	for _, e := range errList {
		if errors.Is(err, e) {
			return true
		}
	}

	return false
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
