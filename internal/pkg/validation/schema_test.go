package validation

import (
	"errors"
	"testing"

	"github.com/coursehub/backend/internal/pkg/apperrors"
)

type coursePayload struct {
	Name       string `json:"name" validate:"required,max=10"`
	CoverURL   string `json:"course_cover_url" validate:"omitempty,url"`
	MaxStudent int    `json:"max_student" validate:"gte=0"`
}

func TestStructSchema_Valid(t *testing.T) {
	schema := NewStructSchema()
	if err := schema.Validate(&coursePayload{Name: "Go", CoverURL: "https://x.io/a.png"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestStructSchema_ReportsJSONFieldNames(t *testing.T) {
	schema := NewStructSchema()

	err := schema.Validate(&coursePayload{CoverURL: "nope", MaxStudent: -1})
	if !errors.Is(err, apperrors.ErrValidationFailed) {
		t.Fatalf("expected ErrValidationFailed, got %v", err)
	}

	var verr *Error
	if !errors.As(err, &verr) {
		t.Fatalf("expected *Error, got %T", err)
	}

	fields := map[string]string{}
	for _, f := range verr.Fields {
		fields[f.Field] = f.Message
	}
	if fields["name"] != "name is required" {
		t.Fatalf("unexpected name message %q", fields["name"])
	}
	if fields["course_cover_url"] != "course_cover_url must be a valid URL" {
		t.Fatalf("unexpected url message %q", fields["course_cover_url"])
	}
	if fields["max_student"] != "max_student must be at least 0" {
		t.Fatalf("unexpected max_student message %q", fields["max_student"])
	}
}

func TestStructSchema_NilPayload(t *testing.T) {
	if err := NewStructSchema().Validate(nil); !errors.Is(err, apperrors.ErrValidationFailed) {
		t.Fatalf("expected ErrValidationFailed, got %v", err)
	}
}
