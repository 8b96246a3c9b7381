package repository

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// uniqueViolation is the PostgreSQL SQLSTATE for a unique constraint
// breach. Uniqueness is enforced by the database, not by pre-checks, so
// concurrent writers cannot race past a duplicate check.
const uniqueViolation = "23505"

// IsUniqueViolation reports whether err is a unique-constraint breach.
func IsUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}
