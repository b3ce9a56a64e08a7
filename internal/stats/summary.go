// Package stats aggregates past evaluation results into summary figures
// and practice recommendations. Both operations are pure reducers over the
// supplied history: no hidden state, safe to recompute at any time.
package stats

import (
	"github.com/luiyirmrz/linguapp-engine/internal/domain"
)

// ReviewRecord pairs an evaluation result with the timing and hint usage
// echoed from its submission.
type ReviewRecord struct {
	Result      domain.EvaluationResult `json:"result"`
	TimeSpentMs int64                   `json:"time_spent_ms"`
	HintsUsed   int                     `json:"hints_used"`
}

// Summary holds aggregate figures over a learner's review history. It is
// advisory: a summary computed from a snapshot that races with new reviews
// is approximate-as-of-snapshot, never authoritative state.
type Summary struct {
	TotalReviews   int     `json:"total_reviews"`
	CorrectReviews int     `json:"correct_reviews"`
	AverageScore   float64 `json:"average_score"`
	AverageTimeMs  float64 `json:"average_time_ms"`
	TotalHints     int     `json:"total_hints"`
	// AccuracyPercent is CorrectReviews over TotalReviews as a percentage.
	AccuracyPercent float64 `json:"accuracy_percent"`
}

// Summarize reduces a review history to aggregate figures in a single pass.
// An empty history yields the zero Summary.
func Summarize(records []ReviewRecord) Summary {
	var summary Summary

	if len(records) == 0 {
		return summary
	}

	var scoreTotal, timeTotal int64
	for _, record := range records {
		summary.TotalReviews++
		if record.Result.IsCorrect {
			summary.CorrectReviews++
		}
		scoreTotal += int64(record.Result.Score)
		timeTotal += record.TimeSpentMs
		summary.TotalHints += record.HintsUsed
	}

	n := float64(summary.TotalReviews)
	summary.AverageScore = float64(scoreTotal) / n
	summary.AverageTimeMs = float64(timeTotal) / n
	summary.AccuracyPercent = float64(summary.CorrectReviews) / n * 100

	return summary
}

// HintRatio returns average hints used per review, zero for an empty summary.
func (s Summary) HintRatio() float64 {
	if s.TotalReviews == 0 {
		return 0
	}
	return float64(s.TotalHints) / float64(s.TotalReviews)
}
