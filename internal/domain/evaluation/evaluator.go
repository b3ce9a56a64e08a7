package evaluation

import (
	"math"

	"github.com/luiyirmrz/linguapp-engine/internal/domain"
)

// Service defines the interface for exercise evaluation.
type Service interface {
	// Evaluate determines correctness, score, quality and feedback for one
	// submission. It is a pure function: no side effects, deterministic for
	// identical inputs, and it never mutates the exercise.
	//
	// Returns an error wrapping domain.ErrValidation when the exercise is
	// malformed, the submission's shape does not match the exercise, the
	// attempt count is below 1, or hints used violate the exercise bounds.
	Evaluate(exercise *domain.Exercise, input domain.EvaluationInput) (*domain.EvaluationResult, error)
}

// defaultService is the standard implementation of the Service interface.
type defaultService struct {
	policy *Policy
}

// NewDefaultService creates an evaluation service with the default policy.
func NewDefaultService() Service {
	return &defaultService{
		policy: NewDefaultPolicy(),
	}
}

// NewServiceWithPolicy creates an evaluation service with a custom policy.
func NewServiceWithPolicy(policy *Policy) Service {
	return &defaultService{
		policy: policy,
	}
}

// Evaluate implements the Service interface.
func (s *defaultService) Evaluate(
	exercise *domain.Exercise,
	input domain.EvaluationInput,
) (*domain.EvaluationResult, error) {
	if err := exercise.Validate(); err != nil {
		return nil, err
	}

	if err := input.Validate(exercise); err != nil {
		return nil, err
	}

	correct, err := answersMatch(exercise.CorrectAnswer, input.Answer)
	if err != nil {
		return nil, err
	}

	score := s.calculateScore(correct, exercise, input)
	quality := s.deriveQuality(correct, exercise, input)

	return &domain.EvaluationResult{
		IsCorrect: correct,
		Score:     score,
		Quality:   quality,
		Feedback:  feedbackFor(correct, score, input.HintsUsed, input.Attempts),
	}, nil
}

// calculateScore computes the 0-100 score for a submission. Incorrect
// submissions always score zero. Correct submissions start at 100, earn a
// bonus for answering under the fast threshold, and lose points per hint
// used and per attempt beyond the first.
func (s *defaultService) calculateScore(
	correct bool,
	exercise *domain.Exercise,
	input domain.EvaluationInput,
) int {
	if !correct {
		return 0
	}

	score := 100

	if exercise.HasTimeLimit() && s.isFast(exercise, input) {
		score += s.policy.TimeBonus
	}

	score -= s.policy.HintPenalty * input.HintsUsed
	score -= s.policy.AttemptPenalty * (input.Attempts - 1)

	return clampInt(score, 0, 100)
}

// deriveQuality maps a submission to the 0-5 quality signal the scheduler
// consumes. Incorrect submissions are a total failure (0). Correct
// submissions start at the maximum and lose up to AttemptQualityCap for
// repeated attempts, HintQualityPenalty per hint, and SlowQualityPenalty
// when the answer came in over the slow threshold.
//
// The fractional intermediate value is rounded half away from zero
// (math.Round), so a raw quality of 2.5 becomes 3.
func (s *defaultService) deriveQuality(
	correct bool,
	exercise *domain.Exercise,
	input domain.EvaluationInput,
) domain.ReviewQuality {
	if !correct {
		return domain.QualityBlackout
	}

	quality := float64(s.policy.MaxQuality)

	extraAttempts := input.Attempts - 1
	if extraAttempts > s.policy.AttemptQualityCap {
		extraAttempts = s.policy.AttemptQualityCap
	}
	quality -= s.policy.AttemptQualityPenalty * float64(extraAttempts)

	quality -= s.policy.HintQualityPenalty * float64(input.HintsUsed)

	if exercise.HasTimeLimit() && s.isSlow(exercise, input) {
		quality -= s.policy.SlowQualityPenalty
	}

	rounded := int(math.Round(quality))
	return domain.ReviewQuality(clampInt(rounded, 0, s.policy.MaxQuality))
}

// isFast reports whether the submission came in under the fast fraction of
// the exercise time limit.
func (s *defaultService) isFast(exercise *domain.Exercise, input domain.EvaluationInput) bool {
	limit := float64(exercise.TimeLimitSeconds) * 1000
	return float64(input.TimeSpentMs) < s.policy.FastAnswerRatio*limit
}

// isSlow reports whether the submission came in over the slow fraction of
// the exercise time limit.
func (s *defaultService) isSlow(exercise *domain.Exercise, input domain.EvaluationInput) bool {
	limit := float64(exercise.TimeLimitSeconds) * 1000
	return float64(input.TimeSpentMs) > s.policy.SlowAnswerRatio*limit
}

// clampInt limits v to the inclusive range [lo, hi].
func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
