package domain

import (
	"testing"

	"github.com/google/uuid"
)

func TestReviewQualityIsValid(t *testing.T) {
	for q := QualityBlackout; q <= QualityPerfect; q++ {
		if !q.IsValid() {
			t.Errorf("Expected quality %d to be valid", q)
		}
	}

	if ReviewQuality(-1).IsValid() {
		t.Error("Expected quality -1 to be invalid")
	}
	if ReviewQuality(6).IsValid() {
		t.Error("Expected quality 6 to be invalid")
	}
}

func TestEvaluationInputValidate(t *testing.T) {
	exercise := &Exercise{
		ID:             uuid.New(),
		Type:           ExerciseTypeMultipleChoice,
		CorrectAnswer:  SingleAnswer("agua"),
		Difficulty:     2,
		HintsAvailable: 2,
	}

	testCases := []struct {
		name     string
		input    EvaluationInput
		expected error
	}{
		{
			name:     "valid input",
			input:    EvaluationInput{Answer: SingleAnswer("agua"), Attempts: 1},
			expected: nil,
		},
		{
			name:     "zero attempts",
			input:    EvaluationInput{Answer: SingleAnswer("agua"), Attempts: 0},
			expected: ErrInvalidAttempts,
		},
		{
			name:     "negative hints",
			input:    EvaluationInput{Answer: SingleAnswer("agua"), Attempts: 1, HintsUsed: -1},
			expected: ErrInvalidHints,
		},
		{
			name:     "hints exceed available",
			input:    EvaluationInput{Answer: SingleAnswer("agua"), Attempts: 1, HintsUsed: 3},
			expected: ErrInvalidHints,
		},
		{
			name: "negative time spent",
			input: EvaluationInput{
				Answer:      SingleAnswer("agua"),
				Attempts:    1,
				TimeSpentMs: -5,
			},
			expected: ErrInvalidTimeSpent,
		},
		{
			name:     "empty answer",
			input:    EvaluationInput{Answer: Answer{}, Attempts: 1},
			expected: ErrInvalidAnswerShape,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.input.Validate(exercise)
			if err != tc.expected {
				t.Errorf("Expected error %v, got %v", tc.expected, err)
			}
		})
	}
}
