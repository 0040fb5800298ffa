package repositories

import "errors"

// Repository errors
var (
	// ErrUserNotFound is returned when a user id has no row.
	ErrUserNotFound = errors.New("user not found")

	// ErrStorage wraps any failure from the underlying storage engine.
	// Callers match on this sentinel instead of driver error types.
	ErrStorage = errors.New("storage failure")
)
