package dberrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
)

func TestIsDuplicateConstraintError(t *testing.T) {
	err := fmt.Errorf("insert: %w", &pgconn.PgError{Code: "23505", ConstraintName: "students_username_key"})

	if !IsDuplicateConstraintError(err, "students_username_key") {
		t.Fatalf("expected duplicate on students_username_key")
	}
	if IsDuplicateConstraintError(err, "students_email_key") {
		t.Fatalf("constraint name must match")
	}
	if IsDuplicateConstraintError(errors.New("23505"), "students_username_key") {
		t.Fatalf("plain errors are not constraint errors")
	}
}

func TestIsClientError(t *testing.T) {
	tests := []struct {
		code string
		want bool
	}{
		{"23505", true},
		{"23503", true},
		{"22P02", true},
		{"22003", true},
		{"42P01", false},
		{"08006", false},
		{"", false},
	}

	for _, tt := range tests {
		err := fmt.Errorf("wrapped: %w", &pgconn.PgError{Code: tt.code})
		if got := IsClientError(err); got != tt.want {
			t.Fatalf("IsClientError(%q) = %v want %v", tt.code, got, tt.want)
		}
	}

	if IsClientError(errors.New("boom")) {
		t.Fatalf("non-pg errors are not client errors")
	}
}
