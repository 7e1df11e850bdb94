package repositories

import "errors"

var (
	// ErrNotFound is returned when no row matches. It is never used for backend failures.
	ErrNotFound = errors.New("record not found")

	// ErrConflict is returned when a unique constraint rejects a write
	ErrConflict = errors.New("record already exists")
)
