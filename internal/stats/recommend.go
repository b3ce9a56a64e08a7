package stats

// Recommendation is a single piece of practice advice. Code is a stable
// identifier suitable for localization keys; Message is the default text.
type Recommendation struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Threshold bands for recommendation rules.
const (
	lowAccuracyPercent  = 70.0
	highAccuracyPercent = 90.0
	highHintRatio       = 0.5
	slowAverageMs       = 30_000
	advancementMinimum  = 20
)

// Recommend derives practice advice from a summary with a deterministic
// rule table over threshold bands. The same summary always produces the
// same recommendations in the same order.
func Recommend(summary Summary) []Recommendation {
	if summary.TotalReviews == 0 {
		return []Recommendation{{
			Code:    "start_reviewing",
			Message: "No review history yet. Complete a few exercises to get personalized advice.",
		}}
	}

	var recommendations []Recommendation

	if summary.AccuracyPercent < lowAccuracyPercent {
		recommendations = append(recommendations, Recommendation{
			Code:    "review_easier_material",
			Message: "Accuracy is below 70%. Revisit easier material before moving on.",
		})
	}

	if summary.HintRatio() > highHintRatio {
		recommendations = append(recommendations, Recommendation{
			Code:    "reduce_hint_usage",
			Message: "Hints are used in over half of reviews. Try answering without them first.",
		})
	}

	if summary.AverageTimeMs > slowAverageMs {
		recommendations = append(recommendations, Recommendation{
			Code:    "practice_speed",
			Message: "Responses are slow on average. Short, frequent sessions build faster recall.",
		})
	}

	if summary.AccuracyPercent >= highAccuracyPercent &&
		summary.TotalReviews >= advancementMinimum {
		recommendations = append(recommendations, Recommendation{
			Code:    "advance_difficulty",
			Message: "Accuracy is consistently high. Consider harder material.",
		})
	}

	if len(recommendations) == 0 {
		recommendations = append(recommendations, Recommendation{
			Code:    "keep_practicing",
			Message: "Progress looks steady. Keep up the regular reviews.",
		})
	}

	return recommendations
}
