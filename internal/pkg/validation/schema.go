package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/coursehub/backend/internal/pkg/apperrors"
	"github.com/go-playground/validator/v10"
)

// Schema checks a decoded request payload before it reaches the store.
type Schema interface {
	Validate(payload interface{}) error
}

// FieldError is a single failed rule.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Error lists every failed rule of a payload. It matches
// apperrors.ErrValidationFailed with errors.Is.
type Error struct {
	Fields []FieldError
}

func (e *Error) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, f.Message)
	}
	return fmt.Sprintf("%s: %s", apperrors.ErrValidationFailed, strings.Join(parts, "; "))
}

func (e *Error) Unwrap() error {
	return apperrors.ErrValidationFailed
}

// StructSchema evaluates the `validate` struct tags of a payload.
type StructSchema struct {
	validate *validator.Validate
}

// NewStructSchema creates a schema that reports fields by their JSON names.
func NewStructSchema() *StructSchema {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return &StructSchema{validate: v}
}

// Validate runs the tag rules of payload
func (s *StructSchema) Validate(payload interface{}) error {
	if payload == nil {
		return fmt.Errorf("%w: empty payload", apperrors.ErrValidationFailed)
	}

	err := s.validate.Struct(payload)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return fmt.Errorf("%w: %v", apperrors.ErrValidationFailed, err)
	}

	out := &Error{Fields: make([]FieldError, 0, len(validationErrors))}
	for _, fe := range validationErrors {
		out.Fields = append(out.Fields, FieldError{
			Field:   fe.Field(),
			Message: formatValidationError(fe),
		})
	}
	return out
}

// formatValidationError creates a human-readable validation error message
func formatValidationError(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return e.Field() + " is required"
	case "min", "gte":
		return e.Field() + " must be at least " + e.Param()
	case "max", "lte":
		return e.Field() + " must be at most " + e.Param()
	case "gt":
		return e.Field() + " must be greater than " + e.Param()
	case "url":
		return e.Field() + " must be a valid URL"
	default:
		return e.Field() + " validation failed: " + e.Tag()
	}
}
