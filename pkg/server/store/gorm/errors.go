package gorm

import (
	"errors"

	"github.com/jackc/pgconn"
)

// uniqueViolation is the PostgreSQL error code for a unique constraint
// violation.
const uniqueViolation = "23505"

// isUniqueViolation inspects the store's structured error code rather
// than matching on error text.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}
