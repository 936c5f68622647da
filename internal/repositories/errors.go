package repositories

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// Error variables
var (
	// ErrDuplicateKey is returned when an insert hits a unique constraint.
	ErrDuplicateKey = errors.New("duplicate key")
	// ErrCapacityExceeded is returned when a conditional slot insert affects
	// no rows because the game is already full.
	ErrCapacityExceeded = errors.New("capacity exceeded")
)

const pgUniqueViolation = "23505"

// isUniqueViolation reports whether err is a Postgres unique constraint
// violation.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation
}
