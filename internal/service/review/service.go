// Package review orchestrates a complete review transaction: evaluate the
// learner's submission, derive the quality signal, reschedule the item, and
// persist the updated memory state.
package review

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/luiyirmrz/linguapp-engine/internal/domain"
)

// ReviewResult bundles everything a caller needs after one submission: the
// evaluation to render and the updated memory state that was persisted.
type ReviewResult struct {
	Evaluation *domain.EvaluationResult      `json:"evaluation"`
	State      *domain.VocabularyMemoryState `json:"state"`
}

// ReviewService processes exercise submissions and builds review queues.
type ReviewService interface {
	// SubmitReview evaluates a learner's submission for a vocabulary item,
	// reschedules the item from the resulting quality signal, and persists
	// the new memory state. An item reviewed for the first time gets a
	// fresh state created on the fly.
	//
	// Writes are serialized per (user, item) pair with optimistic
	// concurrency: when two reviews race, at most one commits per read
	// version and the loser retries against the fresh state.
	//
	// Returns an error wrapping domain.ErrValidation for malformed input,
	// or a ServiceError for persistence failures.
	SubmitReview(
		ctx context.Context,
		userID, itemID uuid.UUID,
		exercise *domain.Exercise,
		input domain.EvaluationInput,
	) (*ReviewResult, error)

	// DueItems returns the learner's review queue: items whose next review
	// time has passed, most urgent first. Returns ErrNoItemsDue when the
	// queue is empty.
	DueItems(ctx context.Context, userID uuid.UUID, limit int) ([]*domain.VocabularyMemoryState, error)
}

// Common error types for ReviewService
var (
	// ErrNoItemsDue indicates that the learner has no items due for review.
	ErrNoItemsDue = errors.New("no items due for review")

	// ErrConcurrentUpdate indicates that a submission kept losing the
	// optimistic concurrency race and gave up after retrying.
	ErrConcurrentUpdate = errors.New("concurrent update: retries exhausted")
)

// ServiceError wraps errors from the review service with additional context.
// Consumers can differentiate error types with errors.As instead of string
// matching.
type ServiceError struct {
	// Operation is the operation that failed (e.g. "submit_review")
	Operation string
	// Message is a human-readable description of the error
	Message string
	// Err is the underlying error that caused the failure
	Err error
}

// Error implements the error interface for ServiceError.
func (e *ServiceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s operation failed: %s: %v", e.Operation, e.Message, e.Err)
	}
	return fmt.Sprintf("%s operation failed: %s", e.Operation, e.Message)
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *ServiceError) Unwrap() error {
	return e.Err
}

// NewSubmitReviewError returns a new ServiceError for the submit_review operation.
func NewSubmitReviewError(message string, err error) *ServiceError {
	return &ServiceError{
		Operation: "submit_review",
		Message:   message,
		Err:       err,
	}
}

// NewDueItemsError returns a new ServiceError for the due_items operation.
func NewDueItemsError(message string, err error) *ServiceError {
	return &ServiceError{
		Operation: "due_items",
		Message:   message,
		Err:       err,
	}
}
