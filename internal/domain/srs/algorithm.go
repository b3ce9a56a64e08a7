package srs

import (
	"math"
	"time"

	"github.com/luiyirmrz/linguapp-engine/internal/domain"
)

// calculateNewEaseFactor determines the new ease factor for a review.
//
// The ease factor represents the item's difficulty: higher values mean the
// item is easier and intervals grow faster. The adjustment depends on the
// quality band:
//
//   - Lapse (quality 0): subtract LapseEasePenalty.
//   - Weak pass (below StrongPassMinQuality): adjust by
//     WeakPassEaseBase + WeakPassEasePerQuality * quality, so a quality of
//     1 still costs a little ease while a 2 earns a little back.
//   - Strong pass: adjust by StrongPassEaseBonus - deficit * StrongPassEaseStep,
//     where deficit is how far the quality fell short of perfect.
//
// The result is always clamped to [MinEaseFactor, MaxEaseFactor].
func calculateNewEaseFactor(
	currentEF float64,
	quality domain.ReviewQuality,
	params *Params,
) float64 {
	var newEF float64

	switch {
	case quality == domain.QualityBlackout:
		newEF = currentEF - params.LapseEasePenalty
	case quality < params.StrongPassMinQuality:
		newEF = currentEF + params.WeakPassEaseBase + params.WeakPassEasePerQuality*float64(quality)
	default:
		deficit := float64(domain.QualityPerfect - quality)
		newEF = currentEF + params.StrongPassEaseBonus - deficit*params.StrongPassEaseStep
	}

	if newEF < params.MinEaseFactor {
		newEF = params.MinEaseFactor
	}
	if newEF > params.MaxEaseFactor {
		newEF = params.MaxEaseFactor
	}

	return newEF
}

// calculateNewInterval determines the next interval in days.
//
// Parameters:
//   - currentInterval: the interval before this review
//   - newRepetitions: the repetition count after this review
//   - easeFactor: the ease factor after this review's adjustment
//   - quality: the 0-5 review quality
//   - params: configuration for the SRS algorithm
//
// Algorithm behavior:
//   - Lapse: reset to LapseInterval.
//   - Weak pass: grow by WeakPassIntervalMultiplier instead of the ease
//     factor, so shaky recalls progress slowly.
//   - Strong pass during graduation (newRepetitions within
//     GraduatedIntervals): use the pinned graduated interval.
//   - Strong pass after graduation: multiply by the ease factor.
//
// The result is never below 1 day.
func calculateNewInterval(
	currentInterval int,
	newRepetitions int,
	easeFactor float64,
	quality domain.ReviewQuality,
	params *Params,
) int {
	var newInterval int

	switch {
	case quality == domain.QualityBlackout:
		newInterval = params.LapseInterval
	case quality < params.StrongPassMinQuality:
		newInterval = int(math.Round(float64(currentInterval) * params.WeakPassIntervalMultiplier))
	case newRepetitions <= len(params.GraduatedIntervals):
		newInterval = params.GraduatedIntervals[newRepetitions-1]
	default:
		newInterval = int(math.Round(float64(currentInterval) * easeFactor))
	}

	if newInterval < 1 {
		newInterval = 1
	}

	return newInterval
}

// updateAverageResponseTime folds a new response time sample into the
// running average with an exponential moving average. The first timed
// review seeds the average with the raw sample.
func updateAverageResponseTime(currentAvg, sample int64, params *Params) int64 {
	if sample <= 0 {
		return currentAvg
	}
	if currentAvg <= 0 {
		return sample
	}

	w := params.ResponseTimeEMAWeight
	return int64(math.Round((1-w)*float64(currentAvg) + w*float64(sample)))
}

// calculateNextState creates a new VocabularyMemoryState with updated values
// for one completed review. It follows the immutable update pattern: the
// input state is never modified and a new state is returned for the caller
// to persist.
//
// responseTimeMs below or equal to zero means the caller supplied no timing
// and the average response time is carried over unchanged.
func calculateNextState(
	state *domain.VocabularyMemoryState,
	quality domain.ReviewQuality,
	reviewedAt time.Time,
	responseTimeMs int64,
	params *Params,
) *domain.VocabularyMemoryState {
	newState := state.Clone()

	if quality == domain.QualityBlackout {
		newState.Repetitions = 0
		newState.IncorrectCount++
	} else {
		newState.Repetitions = state.Repetitions + 1
		newState.CorrectCount++
	}

	newState.EaseFactor = calculateNewEaseFactor(state.EaseFactor, quality, params)
	newState.Interval = calculateNewInterval(
		state.Interval,
		newState.Repetitions,
		newState.EaseFactor,
		quality,
		params,
	)

	newState.LastReviewedAt = reviewedAt
	newState.NextReviewAt = reviewedAt.AddDate(0, 0, newState.Interval)
	newState.AverageResponseTimeMs = updateAverageResponseTime(
		state.AverageResponseTimeMs,
		responseTimeMs,
		params,
	)
	newState.UpdatedAt = reviewedAt

	return newState
}
