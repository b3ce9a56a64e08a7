package evaluation

import (
	"strings"

	"github.com/luiyirmrz/linguapp-engine/internal/domain"
)

// normalize folds a string for comparison: surrounding whitespace is
// trimmed and the result is lower-cased. The fold is locale-insensitive;
// content authors supply answer variants with diacritics embedded when
// case-folding alone is insufficient.
func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// normalizeAll folds every string in the slice.
func normalizeAll(values []string) []string {
	normalized := make([]string, len(values))
	for i, v := range values {
		normalized[i] = normalize(v)
	}
	return normalized
}

// answersMatch compares a learner's submission against the correct answer.
// The correct answer's shape drives the comparison:
//
//   - Single: the submission must be a single string and equal after
//     normalization.
//   - Ordered (match_pairs): the submission must be an ordered sequence of
//     the same length with every position equal after normalization.
//     Position-significant; no reordering credit.
//   - Set: a single-string submission matches if it equals any member; a
//     sequence submission matches if every member of the correct set is
//     matched by at least one submitted string ("select all synonyms").
//
// It returns domain.ErrInvalidAnswerShape when the submission's shape does
// not fit the correct answer's shape.
func answersMatch(correct, submitted domain.Answer) (bool, error) {
	switch correct.Kind() {
	case domain.AnswerSingle:
		if submitted.Kind() != domain.AnswerSingle {
			return false, domain.ErrInvalidAnswerShape
		}
		return normalize(submitted.Single()) == normalize(correct.Single()), nil

	case domain.AnswerOrdered:
		if submitted.Kind() != domain.AnswerOrdered {
			return false, domain.ErrInvalidAnswerShape
		}
		return orderedEqual(correct.Values(), submitted.Values()), nil

	case domain.AnswerSet:
		switch submitted.Kind() {
		case domain.AnswerSingle:
			return memberOf(correct.Values(), submitted.Single()), nil
		case domain.AnswerOrdered:
			return covers(correct.Values(), submitted.Values()), nil
		default:
			return false, domain.ErrInvalidAnswerShape
		}

	default:
		return false, domain.ErrInvalidAnswerShape
	}
}

// orderedEqual reports whether both sequences have equal length and every
// position's normalized strings are equal.
func orderedEqual(correct, submitted []string) bool {
	if len(correct) != len(submitted) {
		return false
	}
	for i := range correct {
		if normalize(correct[i]) != normalize(submitted[i]) {
			return false
		}
	}
	return true
}

// memberOf reports whether the normalized value equals any member of the set.
func memberOf(set []string, value string) bool {
	needle := normalize(value)
	for _, member := range set {
		if normalize(member) == needle {
			return true
		}
	}
	return false
}

// covers reports whether every member of the correct set is matched by at
// least one submitted string.
func covers(correct, submitted []string) bool {
	folded := normalizeAll(submitted)
	for _, member := range correct {
		needle := normalize(member)
		found := false
		for _, s := range folded {
			if s == needle {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}
