package evaluation

import (
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/luiyirmrz/linguapp-engine/internal/domain"
)

func multipleChoiceExercise(t *testing.T) *domain.Exercise {
	t.Helper()
	return &domain.Exercise{
		ID:             uuid.New(),
		Type:           domain.ExerciseTypeMultipleChoice,
		CorrectAnswer:  domain.SingleAnswer("Agua"),
		Difficulty:     2,
		HintsAvailable: 3,
	}
}

func TestEvaluateScenarios(t *testing.T) {
	t.Parallel()
	service := NewDefaultService()

	testCases := []struct {
		name          string
		exercise      *domain.Exercise
		input         domain.EvaluationInput
		expectCorrect bool
		expectScore   int
		expectQuality domain.ReviewQuality
	}{
		{
			// Whitespace and casing fold away; first try with no hints is perfect.
			name:          "first try with normalization",
			exercise:      multipleChoiceExercise(t),
			input:         domain.EvaluationInput{Answer: domain.SingleAnswer(" agua "), Attempts: 1},
			expectCorrect: true,
			expectScore:   100,
			expectQuality: domain.QualityPerfect,
		},
		{
			// Third attempt with a hint: 100 - 5 - 20 = 75; quality
			// 5 - 2 (capped attempts) - 0.5 (hint) = 2.5, rounds up to 3.
			name:     "third attempt with one hint",
			exercise: multipleChoiceExercise(t),
			input: domain.EvaluationInput{
				Answer:    domain.SingleAnswer("agua"),
				Attempts:  3,
				HintsUsed: 1,
			},
			expectCorrect: true,
			expectScore:   75,
			expectQuality: domain.QualityGood,
		},
		{
			// Reordered pairs get no credit at all.
			name: "match pairs reordered",
			exercise: &domain.Exercise{
				ID:            uuid.New(),
				Type:          domain.ExerciseTypeMatchPairs,
				CorrectAnswer: domain.OrderedAnswer("a", "b"),
				Difficulty:    2,
			},
			input: domain.EvaluationInput{
				Answer:   domain.OrderedAnswer("b", "a"),
				Attempts: 1,
			},
			expectCorrect: false,
			expectScore:   0,
			expectQuality: domain.QualityBlackout,
		},
		{
			name:     "incorrect single answer",
			exercise: multipleChoiceExercise(t),
			input: domain.EvaluationInput{
				Answer:   domain.SingleAnswer("fuego"),
				Attempts: 1,
			},
			expectCorrect: false,
			expectScore:   0,
			expectQuality: domain.QualityBlackout,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			result, err := service.Evaluate(tc.exercise, tc.input)
			if err != nil {
				t.Fatalf("Expected no error, got %v", err)
			}

			if result.IsCorrect != tc.expectCorrect {
				t.Errorf("Expected IsCorrect=%v, got %v", tc.expectCorrect, result.IsCorrect)
			}
			if result.Score != tc.expectScore {
				t.Errorf("Expected score %d, got %d", tc.expectScore, result.Score)
			}
			if result.Quality != tc.expectQuality {
				t.Errorf("Expected quality %d, got %d", tc.expectQuality, result.Quality)
			}
			if result.Feedback == "" {
				t.Error("Expected non-empty feedback")
			}
		})
	}
}

func TestEvaluateTimeBands(t *testing.T) {
	t.Parallel()
	service := NewDefaultService()

	timed := multipleChoiceExercise(t)
	timed.TimeLimitSeconds = 30 // fast under 15s, slow over 24s

	testCases := []struct {
		name          string
		timeSpentMs   int64
		expectScore   int
		expectQuality domain.ReviewQuality
	}{
		{
			// Bonus clamps at the score ceiling.
			name:          "fast answer earns bonus but caps at 100",
			timeSpentMs:   5_000,
			expectScore:   100,
			expectQuality: domain.QualityPerfect,
		},
		{
			name:          "middling time gets neither bonus nor penalty",
			timeSpentMs:   20_000,
			expectScore:   100,
			expectQuality: domain.QualityPerfect,
		},
		{
			name:          "slow answer loses a quality point",
			timeSpentMs:   29_000,
			expectScore:   100,
			expectQuality: domain.QualityConfident,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			result, err := service.Evaluate(timed, domain.EvaluationInput{
				Answer:      domain.SingleAnswer("agua"),
				Attempts:    1,
				TimeSpentMs: tc.timeSpentMs,
			})
			if err != nil {
				t.Fatalf("Expected no error, got %v", err)
			}

			if result.Score != tc.expectScore {
				t.Errorf("Expected score %d, got %d", tc.expectScore, result.Score)
			}
			if result.Quality != tc.expectQuality {
				t.Errorf("Expected quality %d, got %d", tc.expectQuality, result.Quality)
			}
		})
	}
}

func TestEvaluateTimeBonusVisibleUnderPenalties(t *testing.T) {
	t.Parallel()
	service := NewDefaultService()

	timed := multipleChoiceExercise(t)
	timed.TimeLimitSeconds = 30

	// 100 + 10 (fast) - 10 (second attempt) = 100
	result, err := service.Evaluate(timed, domain.EvaluationInput{
		Answer:      domain.SingleAnswer("agua"),
		Attempts:    2,
		TimeSpentMs: 5_000,
	})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if result.Score != 100 {
		t.Errorf("Expected score 100, got %d", result.Score)
	}
}

func TestEvaluateIsDeterministic(t *testing.T) {
	t.Parallel()
	service := NewDefaultService()

	exercise := multipleChoiceExercise(t)
	input := domain.EvaluationInput{
		Answer:      domain.SingleAnswer("agua"),
		Attempts:    2,
		HintsUsed:   1,
		TimeSpentMs: 12_000,
	}

	first, err := service.Evaluate(exercise, input)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	for i := 0; i < 10; i++ {
		again, err := service.Evaluate(exercise, input)
		if err != nil {
			t.Fatalf("Expected no error, got %v", err)
		}
		if *again != *first {
			t.Fatalf("Expected identical results, got %+v then %+v", first, again)
		}
	}
}

func TestEvaluateRangeInvariants(t *testing.T) {
	t.Parallel()
	service := NewDefaultService()

	exercise := multipleChoiceExercise(t)
	exercise.TimeLimitSeconds = 10

	// Sweep penalty combinations and check the output ranges hold.
	for attempts := 1; attempts <= 6; attempts++ {
		for hints := 0; hints <= exercise.HintsAvailable; hints++ {
			for _, timeSpent := range []int64{0, 4_000, 9_000, 60_000} {
				result, err := service.Evaluate(exercise, domain.EvaluationInput{
					Answer:      domain.SingleAnswer("agua"),
					Attempts:    attempts,
					HintsUsed:   hints,
					TimeSpentMs: timeSpent,
				})
				if err != nil {
					t.Fatalf("Expected no error, got %v", err)
				}

				if result.Score < 0 || result.Score > 100 {
					t.Errorf("Score %d out of range for attempts=%d hints=%d time=%d",
						result.Score, attempts, hints, timeSpent)
				}
				if !result.Quality.IsValid() {
					t.Errorf("Quality %d out of range for attempts=%d hints=%d time=%d",
						result.Quality, attempts, hints, timeSpent)
				}
			}
		}
	}
}

func TestEvaluateIncorrectImpliesZero(t *testing.T) {
	t.Parallel()
	service := NewDefaultService()

	result, err := service.Evaluate(multipleChoiceExercise(t), domain.EvaluationInput{
		Answer:      domain.SingleAnswer("wrong"),
		Attempts:    4,
		HintsUsed:   2,
		TimeSpentMs: 90_000,
	})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if result.IsCorrect {
		t.Fatal("Expected incorrect result")
	}
	if result.Score != 0 {
		t.Errorf("Expected score 0 for incorrect answer, got %d", result.Score)
	}
	if result.Quality != domain.QualityBlackout {
		t.Errorf("Expected quality 0 for incorrect answer, got %d", result.Quality)
	}
}

func TestEvaluateValidationErrors(t *testing.T) {
	t.Parallel()
	service := NewDefaultService()

	testCases := []struct {
		name     string
		exercise *domain.Exercise
		input    domain.EvaluationInput
	}{
		{
			name:     "attempts below one",
			exercise: multipleChoiceExercise(t),
			input:    domain.EvaluationInput{Answer: domain.SingleAnswer("agua"), Attempts: 0},
		},
		{
			name:     "hints exceed available",
			exercise: multipleChoiceExercise(t),
			input: domain.EvaluationInput{
				Answer:    domain.SingleAnswer("agua"),
				Attempts:  1,
				HintsUsed: 4,
			},
		},
		{
			name: "single string for match pairs",
			exercise: &domain.Exercise{
				ID:            uuid.New(),
				Type:          domain.ExerciseTypeMatchPairs,
				CorrectAnswer: domain.OrderedAnswer("a", "b"),
				Difficulty:    2,
			},
			input: domain.EvaluationInput{Answer: domain.SingleAnswer("a"), Attempts: 1},
		},
		{
			name: "malformed exercise",
			exercise: &domain.Exercise{
				Type:          domain.ExerciseTypeMultipleChoice,
				CorrectAnswer: domain.SingleAnswer("agua"),
				Difficulty:    2,
			},
			input: domain.EvaluationInput{Answer: domain.SingleAnswer("agua"), Attempts: 1},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			result, err := service.Evaluate(tc.exercise, tc.input)
			if err == nil {
				t.Fatalf("Expected a validation error, got result %+v", result)
			}
			if !errors.Is(err, domain.ErrValidation) {
				t.Errorf("Expected error wrapping ErrValidation, got %v", err)
			}
		})
	}
}

func TestNewPolicyOverrides(t *testing.T) {
	t.Parallel()

	policy := NewPolicy(PolicyConfig{
		TimeBonus:       20,
		FastAnswerRatio: 0.25,
	})

	if policy.TimeBonus != 20 {
		t.Errorf("Expected overridden time bonus 20, got %d", policy.TimeBonus)
	}
	if policy.FastAnswerRatio != 0.25 {
		t.Errorf("Expected overridden fast ratio 0.25, got %f", policy.FastAnswerRatio)
	}
	// Untouched fields keep their defaults
	if policy.HintPenalty != 5 {
		t.Errorf("Expected default hint penalty 5, got %d", policy.HintPenalty)
	}
	if policy.SlowAnswerRatio != 0.8 {
		t.Errorf("Expected default slow ratio 0.8, got %f", policy.SlowAnswerRatio)
	}
}
