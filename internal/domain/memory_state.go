package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Common validation errors for VocabularyMemoryState.
var (
	ErrEmptyStateUserID = fmt.Errorf("%w: memory state user ID cannot be empty", ErrValidation)
	ErrEmptyStateItemID = fmt.Errorf("%w: memory state item ID cannot be empty", ErrValidation)
	ErrInvalidInterval  = fmt.Errorf("%w: interval must be at least 1", ErrValidation)
	ErrInvalidEaseFactor = fmt.Errorf(
		"%w: ease factor must be between 1.3 and 2.5",
		ErrValidation,
	)
	ErrInvalidRepetitions = fmt.Errorf("%w: repetitions cannot be negative", ErrValidation)
)

// Ease factor bounds shared by validation and the scheduler defaults.
const (
	MinEaseFactor     = 1.3
	MaxEaseFactor     = 2.5
	DefaultEaseFactor = 2.5
)

// VocabularyMemoryState tracks a learner's spaced repetition memory for one
// vocabulary item. One record exists per (learner, item) pair.
//
// The record is mutated exclusively by the scheduler, which returns a new
// state rather than modifying the old one; callers persist the result.
type VocabularyMemoryState struct {
	UserID uuid.UUID `json:"user_id"`
	ItemID uuid.UUID `json:"item_id"`
	// Interval is the number of days until the next review, always >= 1.
	Interval int `json:"interval"`
	// Repetitions counts consecutive successful reviews since the last lapse.
	Repetitions int `json:"repetitions"`
	// EaseFactor is the per-item growth multiplier, clamped to [1.3, 2.5].
	// Higher means the item is easier and intervals grow faster.
	EaseFactor float64 `json:"ease_factor"`
	// LastReviewedAt is the zero time before the first review.
	LastReviewedAt time.Time `json:"last_reviewed_at"`
	NextReviewAt   time.Time `json:"next_review_at"`
	// CorrectCount and IncorrectCount are lifetime counters and never decrease.
	CorrectCount   int `json:"correct_count"`
	IncorrectCount int `json:"incorrect_count"`
	// AverageResponseTimeMs is a running average over reviews with timing,
	// zero until the first timed review.
	AverageResponseTimeMs int64     `json:"average_response_time_ms"`
	CreatedAt             time.Time `json:"created_at"`
	UpdatedAt             time.Time `json:"updated_at"`
}

// NewVocabularyMemoryState creates the memory state for a learner's first
// exposure to an item. The item is due immediately.
func NewVocabularyMemoryState(userID, itemID uuid.UUID) (*VocabularyMemoryState, error) {
	now := time.Now().UTC()
	state := &VocabularyMemoryState{
		UserID:         userID,
		ItemID:         itemID,
		Interval:       1,
		Repetitions:    0,
		EaseFactor:     DefaultEaseFactor,
		LastReviewedAt: time.Time{},
		NextReviewAt:   now,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if err := state.Validate(); err != nil {
		return nil, err
	}

	return state, nil
}

// Validate checks if the VocabularyMemoryState has valid data.
// Returns an error if any invariant is violated.
func (s *VocabularyMemoryState) Validate() error {
	if s.UserID == uuid.Nil {
		return ErrEmptyStateUserID
	}

	if s.ItemID == uuid.Nil {
		return ErrEmptyStateItemID
	}

	if s.Interval < 1 {
		return ErrInvalidInterval
	}

	if s.Repetitions < 0 {
		return ErrInvalidRepetitions
	}

	if s.EaseFactor < MinEaseFactor || s.EaseFactor > MaxEaseFactor {
		return ErrInvalidEaseFactor
	}

	return nil
}

// Clone returns a copy of the state. The scheduler uses it to follow the
// immutable update pattern.
func (s *VocabularyMemoryState) Clone() *VocabularyMemoryState {
	clone := *s
	return &clone
}

// IsDue reports whether the item is eligible for review at the given time.
func (s *VocabularyMemoryState) IsDue(now time.Time) bool {
	return !s.NextReviewAt.After(now)
}
