package dberrors

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// SQLSTATE classes, see https://www.postgresql.org/docs/current/errcodes-appendix.html
const (
	classDataException       = "22"
	classIntegrityConstraint = "23"
	codeUniqueViolation      = "23505"
)

// IsDuplicateConstraintError checks if the error is a PostgreSQL unique violation error
// for a specific constraint.
func IsDuplicateConstraintError(err error, constraintName string) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == codeUniqueViolation && pgErr.ConstraintName == constraintName
}

// IsClientError reports whether PostgreSQL rejected the statement because of the
// data it was given: constraint violations or out-of-range values.
func IsClientError(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) || len(pgErr.Code) < 2 {
		return false
	}
	switch pgErr.Code[:2] {
	case classDataException, classIntegrityConstraint:
		return true
	}
	return false
}
