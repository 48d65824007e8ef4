package dbx

import (
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
)

const uniqueViolation = "23505"

// UniqueViolation reports the constraint name when err is a Postgres
// unique_violation.
func UniqueViolation(err error) (string, bool) {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		return pgErr.ConstraintName, true
	}
	return "", false
}

// ValidID reports whether id can be used as a UUID key. Repositories treat
// malformed ids as not found instead of sending them to the database.
func ValidID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}
