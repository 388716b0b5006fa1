package services

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// Caller-facing failures shared by the service layer. Handlers translate
// these to HTTP status codes.
var (
	ErrNotFound           = errors.New("record not found")
	ErrDuplicateName      = errors.New("a connection with that name already exists")
	ErrDuplicateEmail     = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidInput       = errors.New("name and connection string are required")
)

// isUniqueViolation detects the storage-layer uniqueness backstop firing
// under a concurrent create/update race.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
