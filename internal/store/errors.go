package store

import (
	"errors"
	"fmt"
)

// Common store errors used across all store implementations.
var (
	// ErrNotFound is returned when a requested record does not exist in the
	// store.
	ErrNotFound = errors.New("record not found")

	// ErrStateNotFound indicates that no memory state exists for the
	// requested (user, item) pair.
	ErrStateNotFound = fmt.Errorf("%w: memory state", ErrNotFound)

	// ErrVersionConflict is returned when a compare-and-swap save loses the
	// race: the record changed since the caller read it. The caller should
	// re-read and retry.
	ErrVersionConflict = errors.New("version conflict")

	// ErrInvalidEntity is returned when a record fails validation before
	// being stored. Check the wrapped error for details.
	ErrInvalidEntity = errors.New("invalid entity")
)

// IsNotFoundError checks if the error is any kind of "not found" error.
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound)
}
