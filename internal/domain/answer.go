package domain

// AnswerKind discriminates the shapes an answer can take.
//
// The source content model allows a correct answer to be a single string,
// an ordered sequence (match_pairs, position-significant), or a set of
// acceptable phrasings. Modeling this as a tagged variant keeps comparison
// logic exhaustive: code that switches on Kind cannot silently mis-handle
// a shape it wasn't written for.
type AnswerKind int

// Possible answer shapes.
const (
	// AnswerSingle is a single string.
	AnswerSingle AnswerKind = iota + 1
	// AnswerOrdered is a position-significant sequence of strings.
	AnswerOrdered
	// AnswerSet is an unordered set of acceptable strings.
	AnswerSet
)

// String returns a human-readable name for the answer kind.
func (k AnswerKind) String() string {
	switch k {
	case AnswerSingle:
		return "single"
	case AnswerOrdered:
		return "ordered"
	case AnswerSet:
		return "set"
	default:
		return "unknown"
	}
}

// Answer is a tagged variant holding either a single string, an ordered
// sequence of strings, or a set of acceptable strings. The zero value is
// invalid; use one of the constructors.
type Answer struct {
	kind   AnswerKind
	values []string
}

// SingleAnswer creates an Answer holding one string.
func SingleAnswer(value string) Answer {
	return Answer{kind: AnswerSingle, values: []string{value}}
}

// OrderedAnswer creates an Answer holding a position-significant sequence.
func OrderedAnswer(values ...string) Answer {
	return Answer{kind: AnswerOrdered, values: append([]string(nil), values...)}
}

// SetAnswer creates an Answer holding an unordered set of acceptable strings.
func SetAnswer(values ...string) Answer {
	return Answer{kind: AnswerSet, values: append([]string(nil), values...)}
}

// Kind returns the shape of the answer.
func (a Answer) Kind() AnswerKind {
	return a.kind
}

// Values returns a copy of the answer's strings. For AnswerSingle the slice
// has exactly one element.
func (a Answer) Values() []string {
	return append([]string(nil), a.values...)
}

// Single returns the answer's value for AnswerSingle answers. It returns
// the empty string for other kinds.
func (a Answer) Single() string {
	if a.kind == AnswerSingle && len(a.values) == 1 {
		return a.values[0]
	}
	return ""
}

// IsZero reports whether the answer was never constructed.
func (a Answer) IsZero() bool {
	return a.kind == 0
}

// Validate checks that the answer has a known shape and carries at least
// one value.
func (a Answer) Validate() error {
	switch a.kind {
	case AnswerSingle, AnswerOrdered, AnswerSet:
		// Known shape
	default:
		return ErrInvalidAnswerShape
	}

	if len(a.values) == 0 {
		return ErrEmptyAnswer
	}

	return nil
}
