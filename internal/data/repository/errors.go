package repository

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// ErrDuplicate marks a unique-constraint violation (SQLSTATE 23505). The
// database is the final authority on uniqueness; slug assignment and follow
// creation treat this as a retryable or ignorable condition, not a fatal one.
var ErrDuplicate = errors.New("duplicate row violates unique constraint")

// ErrNotFound marks an update that matched no live row.
var ErrNotFound = errors.New("row not found")

const uniqueViolationCode = "23505"

func wrapUniqueViolation(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
		return ErrDuplicate
	}
	return err
}
