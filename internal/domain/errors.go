// Package domain defines the core business entities and errors.
package domain

import (
	"errors"
	"fmt"
)

// Common domain errors used across the engine.
var (
	// ErrValidation is returned when input to the engine fails validation.
	// Every validation error in the engine wraps this sentinel, so callers
	// can detect the whole class with errors.Is(err, ErrValidation).
	ErrValidation = errors.New("validation failed")

	// ErrInvalidExerciseType is returned when an exercise type is not one of
	// the supported values.
	ErrInvalidExerciseType = fmt.Errorf("%w: invalid exercise type", ErrValidation)

	// ErrInvalidAnswerShape is returned when a submitted answer's shape does
	// not match the shape the exercise type expects (e.g. a single string
	// submitted for a match_pairs exercise).
	ErrInvalidAnswerShape = fmt.Errorf("%w: answer shape does not match exercise", ErrValidation)

	// ErrInvalidAttempts is returned when the attempt count is below 1.
	ErrInvalidAttempts = fmt.Errorf("%w: attempts must be at least 1", ErrValidation)

	// ErrInvalidHints is returned when the hint count is negative or exceeds
	// the hints available on the exercise.
	ErrInvalidHints = fmt.Errorf("%w: hints used out of range", ErrValidation)

	// ErrInvalidQuality is returned when a review quality is outside [0, 5].
	ErrInvalidQuality = fmt.Errorf("%w: quality must be between 0 and 5", ErrValidation)

	// ErrInvalidDifficulty is returned when an exercise difficulty is outside [1, 5].
	ErrInvalidDifficulty = fmt.Errorf("%w: difficulty must be between 1 and 5", ErrValidation)

	// ErrEmptyAnswer is returned when an answer carries no values.
	ErrEmptyAnswer = fmt.Errorf("%w: answer cannot be empty", ErrValidation)

	// ErrInvalidTimeSpent is returned when elapsed time is negative.
	ErrInvalidTimeSpent = fmt.Errorf("%w: time spent cannot be negative", ErrValidation)
)
