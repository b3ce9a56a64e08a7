package domain

// ReviewQuality is a 0-5 integer summarizing how well a single review went.
// It is the sole input the scheduler needs from the evaluator.
type ReviewQuality int

// Possible review quality values, from total failure to perfect recall.
const (
	// QualityBlackout means the learner did not recall the item at all.
	QualityBlackout ReviewQuality = 0
	// QualityWeak means a barely successful recall.
	QualityWeak ReviewQuality = 1
	// QualityHesitant means a successful recall with significant difficulty.
	QualityHesitant ReviewQuality = 2
	// QualityGood means a successful recall with some effort.
	QualityGood ReviewQuality = 3
	// QualityConfident means a successful recall with minor hesitation.
	QualityConfident ReviewQuality = 4
	// QualityPerfect means an effortless, correct recall.
	QualityPerfect ReviewQuality = 5
)

// IsValid reports whether the quality is inside the supported [0, 5] range.
func (q ReviewQuality) IsValid() bool {
	return q >= QualityBlackout && q <= QualityPerfect
}

// EvaluationInput is a learner's submission for one exercise attempt.
// It is ephemeral: created and consumed within a single review transaction.
type EvaluationInput struct {
	// Answer is the learner's submission. Its shape must match the shape the
	// exercise type expects: a single string for most types, an ordered
	// sequence for match_pairs and "select all" style exercises.
	Answer Answer `json:"answer"`
	// TimeSpentMs is elapsed wall-clock time for the attempt, >= 0.
	TimeSpentMs int64 `json:"time_spent_ms"`
	// HintsUsed counts hints consumed, 0 <= HintsUsed <= exercise.HintsAvailable.
	HintsUsed int `json:"hints_used"`
	// Attempts is 1 for the first submission of an exercise instance, 2 for
	// the second, and so on.
	Attempts int `json:"attempts"`
}

// Validate checks the input against the exercise it answers.
// Returns an error wrapping ErrValidation if any bound is violated.
func (in *EvaluationInput) Validate(exercise *Exercise) error {
	if err := in.Answer.Validate(); err != nil {
		return err
	}

	if in.Attempts < 1 {
		return ErrInvalidAttempts
	}

	if in.HintsUsed < 0 || in.HintsUsed > exercise.HintsAvailable {
		return ErrInvalidHints
	}

	if in.TimeSpentMs < 0 {
		return ErrInvalidTimeSpent
	}

	return nil
}

// EvaluationResult is the outcome of evaluating one submission. Immutable.
type EvaluationResult struct {
	IsCorrect bool `json:"is_correct"`
	// Score is 0-100. Incorrect submissions always score 0.
	Score int `json:"score"`
	// Quality is the 0-5 signal handed to the scheduler.
	Quality ReviewQuality `json:"quality"`
	// Feedback is one of a small fixed set of templated strings. Callers
	// may localize by matching on the string or the coarse result fields.
	Feedback string `json:"feedback"`
}
