package srs

import (
	"fmt"
	"time"

	"github.com/luiyirmrz/linguapp-engine/internal/domain"
)

// Common errors
var (
	ErrNilState = fmt.Errorf("%w: memory state cannot be nil", domain.ErrValidation)
	ErrReviewedAtBeforeLast = fmt.Errorf(
		"%w: reviewedAt cannot precede the last review",
		domain.ErrValidation,
	)
	ErrInvalidPostponeDays = fmt.Errorf(
		"%w: postpone days must be at least 1",
		domain.ErrValidation,
	)
)

// Service defines the interface for SRS scheduling operations.
type Service interface {
	// Schedule computes the item's next review state from a completed
	// review. It returns a new state and never mutates the input; callers
	// persist the result.
	//
	// responseTimeMs is the learner's response time for this review; pass
	// zero or a negative value when no timing is available, in which case
	// the running average is carried over unchanged.
	//
	// Returns an error wrapping domain.ErrValidation if the state is nil,
	// quality is outside [0, 5], or reviewedAt precedes the state's last
	// review. Any such failure is a caller programming error, not a
	// transient condition.
	Schedule(
		state *domain.VocabularyMemoryState,
		quality domain.ReviewQuality,
		reviewedAt time.Time,
		responseTimeMs int64,
	) (*domain.VocabularyMemoryState, error)

	// Postpone pushes the next review time forward by a number of days
	// without recording a review.
	Postpone(
		state *domain.VocabularyMemoryState,
		days int,
		now time.Time,
	) (*domain.VocabularyMemoryState, error)
}

// defaultService is the standard implementation of the Service interface.
type defaultService struct {
	params *Params
}

// NewDefaultService creates a new SRS service with default parameters.
func NewDefaultService() Service {
	return &defaultService{
		params: NewDefaultParams(),
	}
}

// NewServiceWithParams creates a new SRS service with custom parameters.
func NewServiceWithParams(params *Params) Service {
	return &defaultService{
		params: params,
	}
}

// Schedule implements the Service interface.
func (s *defaultService) Schedule(
	state *domain.VocabularyMemoryState,
	quality domain.ReviewQuality,
	reviewedAt time.Time,
	responseTimeMs int64,
) (*domain.VocabularyMemoryState, error) {
	if state == nil {
		return nil, ErrNilState
	}

	if !quality.IsValid() {
		return nil, domain.ErrInvalidQuality
	}

	if !state.LastReviewedAt.IsZero() && reviewedAt.Before(state.LastReviewedAt) {
		return nil, ErrReviewedAtBeforeLast
	}

	return calculateNextState(state, quality, reviewedAt, responseTimeMs, s.params), nil
}

// Postpone implements the Service interface.
func (s *defaultService) Postpone(
	state *domain.VocabularyMemoryState,
	days int,
	now time.Time,
) (*domain.VocabularyMemoryState, error) {
	if state == nil {
		return nil, ErrNilState
	}

	if days < 1 {
		return nil, ErrInvalidPostponeDays
	}

	newState := state.Clone()
	newState.NextReviewAt = state.NextReviewAt.AddDate(0, 0, days)
	newState.UpdatedAt = now

	return newState, nil
}
