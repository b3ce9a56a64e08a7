// Package evaluation decides whether a learner's answer to an exercise is
// correct, how well they performed, and what feedback to show. Evaluation
// is pure: identical inputs always produce identical results.
package evaluation

// Policy defines all configurable parameters for scoring and quality
// derivation. The constants that would otherwise be scattered through the
// evaluation logic live here so they can be tuned and tested without
// touching algorithm code.
type Policy struct {
	// Scoring
	TimeBonus      int // Added when the answer came in under the fast threshold
	HintPenalty    int // Subtracted per hint used
	AttemptPenalty int // Subtracted per attempt beyond the first

	// Fractions of the exercise time limit that count as fast or slow
	FastAnswerRatio float64
	SlowAnswerRatio float64

	// Quality derivation
	MaxQuality            int     // Ceiling for the quality signal
	AttemptQualityCap     int     // Max deduction for repeated attempts
	HintQualityPenalty    float64 // Deduction per hint used
	SlowQualityPenalty    float64 // Deduction when the answer came in over the slow threshold
	AttemptQualityPenalty float64 // Deduction per attempt beyond the first
}

// PolicyConfig allows overriding the default policy when creating a new
// Policy instance. Zero-valued fields keep their defaults.
type PolicyConfig struct {
	TimeBonus      int
	HintPenalty    int
	AttemptPenalty int

	FastAnswerRatio float64
	SlowAnswerRatio float64
}

// NewDefaultPolicy creates a Policy with the standard scoring constants.
func NewDefaultPolicy() *Policy {
	return &Policy{
		TimeBonus:      10,
		HintPenalty:    5,
		AttemptPenalty: 10,

		// Under half the time limit earns the bonus; over 80% costs quality.
		FastAnswerRatio: 0.5,
		SlowAnswerRatio: 0.8,

		MaxQuality:            5,
		AttemptQualityCap:     2,
		HintQualityPenalty:    0.5,
		SlowQualityPenalty:    1.0,
		AttemptQualityPenalty: 1.0,
	}
}

// NewPolicy creates a Policy with custom configuration.
func NewPolicy(config PolicyConfig) *Policy {
	policy := NewDefaultPolicy()

	if config.TimeBonus > 0 {
		policy.TimeBonus = config.TimeBonus
	}
	if config.HintPenalty > 0 {
		policy.HintPenalty = config.HintPenalty
	}
	if config.AttemptPenalty > 0 {
		policy.AttemptPenalty = config.AttemptPenalty
	}
	if config.FastAnswerRatio > 0 {
		policy.FastAnswerRatio = config.FastAnswerRatio
	}
	if config.SlowAnswerRatio > 0 {
		policy.SlowAnswerRatio = config.SlowAnswerRatio
	}

	return policy
}
