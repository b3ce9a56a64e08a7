// Package srs schedules vocabulary reviews with a two-factor (ease +
// interval) spaced repetition algorithm driven by a 0-5 quality signal.
package srs

import (
	"github.com/luiyirmrz/linguapp-engine/internal/domain"
)

// Params defines all configurable parameters for the SRS algorithm.
type Params struct {
	// Core limits
	MinEaseFactor float64
	MaxEaseFactor float64

	// Quality bands: a review with quality zero is a lapse; qualities below
	// StrongPassMinQuality are weak passes; the rest are strong passes.
	StrongPassMinQuality domain.ReviewQuality

	// Lapse handling
	LapseEasePenalty float64 // Subtracted from the ease factor on a lapse
	LapseInterval    int     // Interval after a lapse, in days

	// Weak pass handling: the ease adjustment is
	// WeakPassEaseBase + WeakPassEasePerQuality * quality, and the interval
	// grows by WeakPassIntervalMultiplier instead of the ease factor.
	WeakPassEaseBase           float64
	WeakPassEasePerQuality     float64
	WeakPassIntervalMultiplier float64

	// Strong pass handling: the ease adjustment is
	// StrongPassEaseBonus - (MaxQuality - quality) * StrongPassEaseStep.
	StrongPassEaseBonus float64
	StrongPassEaseStep  float64

	// GraduatedIntervals pins the interval for the first successful reviews
	// after creation or a lapse: the n-th consecutive success (1-based) uses
	// GraduatedIntervals[n-1] days while n <= len(GraduatedIntervals). An
	// item must survive these reviews before multiplicative growth begins,
	// so a single lucky guess cannot jump it to a months-long interval.
	GraduatedIntervals []int

	// ResponseTimeEMAWeight is the weight of the newest sample in the
	// average response time update.
	ResponseTimeEMAWeight float64
}

// ParamsConfig allows overriding the default parameters when creating a new
// Params instance. Zero-valued fields keep their defaults.
type ParamsConfig struct {
	MinEaseFactor float64
	MaxEaseFactor float64

	StrongPassMinQuality int

	LapseEasePenalty float64
	LapseInterval    int

	WeakPassIntervalMultiplier float64

	GraduatedIntervals []int

	ResponseTimeEMAWeight float64
}

// NewDefaultParams creates a new Params instance with default values.
func NewDefaultParams() *Params {
	return &Params{
		MinEaseFactor: domain.MinEaseFactor,
		MaxEaseFactor: domain.MaxEaseFactor,

		StrongPassMinQuality: domain.QualityGood,

		// A lapse costs more ease than a strong pass earns back, biasing
		// the schedule toward caution.
		LapseEasePenalty: 0.2,
		LapseInterval:    1,

		WeakPassEaseBase:           -0.15,
		WeakPassEasePerQuality:     0.1,
		WeakPassIntervalMultiplier: 1.2,

		StrongPassEaseBonus: 0.1,
		StrongPassEaseStep:  0.08,

		GraduatedIntervals: []int{1, 3},

		ResponseTimeEMAWeight: 0.3,
	}
}

// NewParams creates a new Params instance with custom configuration.
func NewParams(config ParamsConfig) *Params {
	params := NewDefaultParams()

	if config.MinEaseFactor > 0 {
		params.MinEaseFactor = config.MinEaseFactor
	}
	if config.MaxEaseFactor > 0 {
		params.MaxEaseFactor = config.MaxEaseFactor
	}

	if config.StrongPassMinQuality > 0 {
		params.StrongPassMinQuality = domain.ReviewQuality(config.StrongPassMinQuality)
	}

	if config.LapseEasePenalty > 0 {
		params.LapseEasePenalty = config.LapseEasePenalty
	}
	if config.LapseInterval > 0 {
		params.LapseInterval = config.LapseInterval
	}

	if config.WeakPassIntervalMultiplier > 0 {
		params.WeakPassIntervalMultiplier = config.WeakPassIntervalMultiplier
	}

	if len(config.GraduatedIntervals) > 0 {
		params.GraduatedIntervals = append([]int(nil), config.GraduatedIntervals...)
	}

	if config.ResponseTimeEMAWeight > 0 {
		params.ResponseTimeEMAWeight = config.ResponseTimeEMAWeight
	}

	return params
}
