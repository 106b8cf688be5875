package services

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// Error taxonomy shared by all resource services. Handlers map these to
// HTTP statuses; anything else is a server fault.
var (
	// ErrNotFound is returned when the target resource does not exist.
	// It is always checked before any ownership comparison.
	ErrNotFound = errors.New("resource not found")

	// ErrForbidden is returned when the caller is authenticated but is not
	// the owner or uploader of the target resource.
	ErrForbidden = errors.New("not authorized to modify this resource")

	// ErrValidation is returned for missing or malformed required fields,
	// including a non-PDF upload.
	ErrValidation = errors.New("validation failed")

	// ErrInvalidReference is returned when a supplied foreign key does not
	// reference an existing resource.
	ErrInvalidReference = errors.New("referenced resource does not exist")

	// ErrConflict is returned when a unique constraint is violated, e.g. a
	// duplicate email on user creation.
	ErrConflict = errors.New("resource already exists")
)

// uniqueViolation is the Postgres error code for unique constraint failures.
const uniqueViolation = "23505"

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}
