package domain

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// ExerciseType identifies the interaction style of an exercise.
type ExerciseType string

// Possible exercise type values.
const (
	ExerciseTypeMultipleChoice ExerciseType = "multiple_choice"
	ExerciseTypeFillBlank      ExerciseType = "fill_blank"
	ExerciseTypeMatchPairs     ExerciseType = "match_pairs"
	ExerciseTypeTranslate      ExerciseType = "translate"
	ExerciseTypeOther          ExerciseType = "other"
)

// IsValid reports whether the exercise type is one of the supported values.
func (t ExerciseType) IsValid() bool {
	switch t {
	case ExerciseTypeMultipleChoice,
		ExerciseTypeFillBlank,
		ExerciseTypeMatchPairs,
		ExerciseTypeTranslate,
		ExerciseTypeOther:
		return true
	default:
		return false
	}
}

// Exercise-specific validation errors.
var (
	// ErrExerciseIDEmpty is returned when an exercise ID is empty or nil.
	ErrExerciseIDEmpty = fmt.Errorf("%w: exercise ID cannot be empty", ErrValidation)

	// ErrExercisePairsNotOrdered is returned when a match_pairs exercise
	// does not carry an ordered correct answer.
	ErrExercisePairsNotOrdered = fmt.Errorf(
		"%w: match_pairs exercises require an ordered correct answer",
		ErrValidation,
	)

	// ErrExerciseTimeLimitNegative is returned when a time limit is negative.
	ErrExerciseTimeLimitNegative = fmt.Errorf(
		"%w: time limit cannot be negative",
		ErrValidation,
	)

	// ErrExerciseHintsNegative is returned when hints available is negative.
	ErrExerciseHintsNegative = fmt.Errorf("%w: hints available cannot be negative", ErrValidation)
)

// Exercise is a content-supplied practice item. It is immutable for the
// duration of one evaluation; the engine never modifies it.
type Exercise struct {
	ID            uuid.UUID    `json:"id"`
	Type          ExerciseType `json:"type"`
	CorrectAnswer Answer       `json:"correct_answer"`
	// Difficulty is the content author's 1-5 rating. Informational only;
	// scheduling does not consume it.
	Difficulty int `json:"difficulty"`
	// TimeLimitSeconds is the optional time limit. Zero means the exercise
	// has no time-based scoring component.
	TimeLimitSeconds int `json:"time_limit_seconds,omitempty"`
	HintsAvailable   int `json:"hints_available"`
}

// NewExercise creates an Exercise and validates it.
func NewExercise(
	id uuid.UUID,
	exerciseType ExerciseType,
	correctAnswer Answer,
	difficulty int,
) (*Exercise, error) {
	exercise := &Exercise{
		ID:            id,
		Type:          exerciseType,
		CorrectAnswer: correctAnswer,
		Difficulty:    difficulty,
	}

	if err := exercise.Validate(); err != nil {
		return nil, err
	}

	return exercise, nil
}

// Validate checks if the Exercise has valid data.
// Returns an error if any field fails validation.
func (e *Exercise) Validate() error {
	if e.ID == uuid.Nil {
		return ErrExerciseIDEmpty
	}

	if !e.Type.IsValid() {
		return ErrInvalidExerciseType
	}

	if err := e.CorrectAnswer.Validate(); err != nil {
		return err
	}

	// match_pairs answers are position-significant sequences.
	if e.Type == ExerciseTypeMatchPairs && e.CorrectAnswer.Kind() != AnswerOrdered {
		return ErrExercisePairsNotOrdered
	}

	if e.Difficulty < 1 || e.Difficulty > 5 {
		return ErrInvalidDifficulty
	}

	if e.TimeLimitSeconds < 0 {
		return ErrExerciseTimeLimitNegative
	}

	if e.HintsAvailable < 0 {
		return ErrExerciseHintsNegative
	}

	return nil
}

// HasTimeLimit reports whether the exercise carries a time limit.
func (e *Exercise) HasTimeLimit() bool {
	return e.TimeLimitSeconds > 0
}

// IsValidationError reports whether the error belongs to the engine's
// validation class.
func IsValidationError(err error) bool {
	return errors.Is(err, ErrValidation)
}
