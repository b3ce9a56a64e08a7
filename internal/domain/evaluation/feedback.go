package evaluation

// Feedback strings returned by the evaluator. The mapping from result to
// string is a fixed deterministic table; callers that need localization can
// key on these values.
const (
	feedbackIncorrect    = "Incorrect. This item needs more reinforcement."
	feedbackPerfect      = "Perfect! Correct on the first try."
	feedbackExcellent    = "Excellent recall."
	feedbackUsedHints    = "Correct, but try to rely less on hints."
	feedbackManyAttempts = "Correct after repeated attempts. Keep practicing this item."
	feedbackCorrectSlow  = "Correct. A little more practice will make this automatic."
)

// feedbackFor maps a coarse result band to one of the fixed feedback
// strings. The bands are checked in order: incorrectness first, then
// repeated attempts, then hint usage, then score tiers.
func feedbackFor(correct bool, score, hintsUsed, attempts int) string {
	if !correct {
		return feedbackIncorrect
	}

	if attempts > 1 {
		return feedbackManyAttempts
	}

	if hintsUsed > 0 {
		return feedbackUsedHints
	}

	switch {
	case score >= 100:
		return feedbackPerfect
	case score >= 90:
		return feedbackExcellent
	default:
		return feedbackCorrectSlow
	}
}
