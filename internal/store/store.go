// Package store defines interfaces for memory state persistence.
// These interfaces abstract the underlying storage mechanism from the
// engine's core logic, keeping the scheduling and evaluation rules
// independent of any particular persistence technology.
package store

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/luiyirmrz/linguapp-engine/internal/domain"
)

// MemoryStateStore defines the interface for persisting per-learner
// vocabulary memory states, keyed by (user ID, item ID).
//
// Concurrent reviews of the same item must resolve to at most one committed
// update per key. Save enforces this with optimistic concurrency: every
// stored record carries a version, and a save only commits when the caller
// presents the version it read.
type MemoryStateStore interface {
	// Get retrieves the memory state and its current version for a
	// (user, item) pair. Returns ErrStateNotFound if no record exists.
	Get(ctx context.Context, userID, itemID uuid.UUID) (*domain.VocabularyMemoryState, int64, error)

	// Save persists a memory state using compare-and-swap semantics.
	// Pass version zero to create a new record; pass the version returned by
	// Get to update an existing one. Returns ErrVersionConflict when the
	// stored version differs from the expected one, in which case the caller
	// should re-read and retry.
	// Returns validation errors wrapped in ErrInvalidEntity if the state is
	// invalid.
	Save(ctx context.Context, state *domain.VocabularyMemoryState, version int64) error

	// ListDue returns the learner's items eligible for review at the given
	// time (NextReviewAt <= now), most urgent first: items never reviewed
	// come before reviewed ones, then harder items (lower ease factor), then
	// earlier due times. A limit of zero or below means no limit.
	ListDue(
		ctx context.Context,
		userID uuid.UUID,
		now time.Time,
		limit int,
	) ([]*domain.VocabularyMemoryState, error)

	// Delete removes the memory state for a (user, item) pair.
	// Returns ErrStateNotFound if no record exists.
	Delete(ctx context.Context, userID, itemID uuid.UUID) error
}
