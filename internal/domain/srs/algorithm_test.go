package srs

import (
	"testing"

	"github.com/luiyirmrz/linguapp-engine/internal/domain"
)

func TestCalculateNewEaseFactor(t *testing.T) {
	t.Parallel()
	params := NewDefaultParams()

	testCases := []struct {
		name     string
		current  float64
		quality  domain.ReviewQuality
		expected float64
	}{
		{
			name:     "lapse decreases ease factor",
			current:  2.0,
			quality:  domain.QualityBlackout,
			expected: 1.8, // 2.0 - 0.2
		},
		{
			name:     "lapse floors at minimum",
			current:  1.35,
			quality:  domain.QualityBlackout,
			expected: 1.3, // 1.35 - 0.2 = 1.15, clamped
		},
		{
			name:     "weak pass quality 1 costs a little ease",
			current:  2.0,
			quality:  domain.QualityWeak,
			expected: 1.95, // 2.0 - 0.15 + 0.1
		},
		{
			name:     "weak pass quality 2 earns a little ease",
			current:  2.0,
			quality:  domain.QualityHesitant,
			expected: 2.05, // 2.0 - 0.15 + 0.2
		},
		{
			name:     "weak pass caps at maximum",
			current:  2.48,
			quality:  domain.QualityHesitant,
			expected: 2.5, // 2.48 + 0.05 = 2.53, clamped
		},
		{
			name:     "strong pass quality 3 still costs ease",
			current:  2.0,
			quality:  domain.QualityGood,
			expected: 1.94, // 2.0 + 0.1 - 2*0.08
		},
		{
			name:     "strong pass quality 4 nearly holds",
			current:  2.0,
			quality:  domain.QualityConfident,
			expected: 2.02, // 2.0 + 0.1 - 0.08
		},
		{
			name:     "perfect recall earns the full bonus",
			current:  2.0,
			quality:  domain.QualityPerfect,
			expected: 2.1, // 2.0 + 0.1
		},
		{
			name:     "perfect recall caps at maximum",
			current:  2.45,
			quality:  domain.QualityPerfect,
			expected: 2.5, // 2.45 + 0.1 = 2.55, clamped
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			newEF := calculateNewEaseFactor(tc.current, tc.quality, params)

			epsilon := 0.001
			if newEF < tc.expected-epsilon || newEF > tc.expected+epsilon {
				t.Errorf("Expected ease factor %f, got %f", tc.expected, newEF)
			}
		})
	}
}

func TestCalculateNewInterval(t *testing.T) {
	t.Parallel()
	params := NewDefaultParams()

	testCases := []struct {
		name     string
		current  int
		newReps  int
		ef       float64
		quality  domain.ReviewQuality
		expected int
	}{
		{
			name:     "lapse resets interval",
			current:  30,
			newReps:  0,
			ef:       2.0,
			quality:  domain.QualityBlackout,
			expected: 1,
		},
		{
			name:     "weak pass grows by the weak multiplier",
			current:  10,
			newReps:  5,
			ef:       2.5,
			quality:  domain.QualityHesitant,
			expected: 12, // 10 * 1.2
		},
		{
			name:     "weak pass never drops below one day",
			current:  1,
			newReps:  1,
			ef:       2.5,
			quality:  domain.QualityWeak,
			expected: 1, // round(1 * 1.2) = 1
		},
		{
			name:     "first strong pass is pinned to one day",
			current:  1,
			newReps:  1,
			ef:       2.5,
			quality:  domain.QualityPerfect,
			expected: 1,
		},
		{
			name:     "second strong pass is pinned to three days",
			current:  1,
			newReps:  2,
			ef:       2.5,
			quality:  domain.QualityPerfect,
			expected: 3,
		},
		{
			name:     "third strong pass grows multiplicatively",
			current:  3,
			newReps:  3,
			ef:       2.5,
			quality:  domain.QualityPerfect,
			expected: 8, // round(3 * 2.5)
		},
		{
			name:     "mature item grows by ease factor",
			current:  30,
			newReps:  6,
			ef:       2.0,
			quality:  domain.QualityGood,
			expected: 60, // round(30 * 2.0)
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			newInterval := calculateNewInterval(tc.current, tc.newReps, tc.ef, tc.quality, params)

			if newInterval != tc.expected {
				t.Errorf("Expected interval %d, got %d", tc.expected, newInterval)
			}
		})
	}
}

func TestUpdateAverageResponseTime(t *testing.T) {
	t.Parallel()
	params := NewDefaultParams()

	testCases := []struct {
		name     string
		current  int64
		sample   int64
		expected int64
	}{
		{
			name:     "no sample keeps the average",
			current:  4_000,
			sample:   0,
			expected: 4_000,
		},
		{
			name:     "first sample seeds the average",
			current:  0,
			sample:   6_000,
			expected: 6_000,
		},
		{
			name:     "EMA weights the newest sample at 0.3",
			current:  4_000,
			sample:   8_000,
			expected: 5_200, // 0.7*4000 + 0.3*8000
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := updateAverageResponseTime(tc.current, tc.sample, params)
			if got != tc.expected {
				t.Errorf("Expected average %d, got %d", tc.expected, got)
			}
		})
	}
}
