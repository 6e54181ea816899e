package repository

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
)

var (
	// ErrDuplicateKey is returned when an insert hits a unique index.
	// Uniqueness is enforced by the storage layer, never by a
	// check-then-insert, so concurrent double-submits resolve to
	// exactly one row.
	ErrDuplicateKey = errors.New("duplicate key")

	// ErrNotFound is returned when a delete or lookup matched no rows.
	ErrNotFound = errors.New("record not found")
)

// isUniqueViolation recognises unique-index violations from both backends:
// PostgreSQL reports SQLSTATE 23505 through pgconn, the SQLite driver only
// gives us the message text.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}
	msg := err.Error()
	return strings.Contains(msg, "UNIQUE constraint") || strings.Contains(msg, "unique constraint")
}
