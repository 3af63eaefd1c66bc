package prefilter

import (
	"github.com/coregx/ahocorasick"

	"github.com/coregx/tinyre/literal"
)

// Set is a prefilter over the required prefixes of several independently
// compiled patterns. A haystack in which none of the prefixes occurs
// cannot match any of the patterns.
type Set struct {
	auto *ahocorasick.Automaton
	size int
}

// NewSet builds a Set from one prefix per pattern. It returns nil (and no
// error) when some pattern has no prefix, since that pattern could match
// anywhere and nothing can be skipped.
func NewSet(prefixes *literal.Seq) (*Set, error) {
	if !prefixes.AllNonEmpty() {
		return nil, nil
	}
	builder := ahocorasick.NewBuilder()
	for i := 0; i < prefixes.Len(); i++ {
		builder.AddPattern(prefixes.Get(i).Bytes)
	}
	auto, err := builder.Build()
	if err != nil {
		return nil, err
	}
	return &Set{auto: auto, size: prefixes.Len()}, nil
}

// Len returns the number of prefixes in the set.
func (s *Set) Len() int {
	return s.size
}

// IsCandidate reports whether any prefix occurs in haystack.
func (s *Set) IsCandidate(haystack []byte) bool {
	return s.auto.IsMatch(haystack)
}

// Find returns the start of the leftmost prefix occurrence at or after
// start, or -1.
func (s *Set) Find(haystack []byte, start int) int {
	if start < 0 || start > len(haystack) {
		return -1
	}
	m := s.auto.Find(haystack, start)
	if m == nil {
		return -1
	}
	return m.Start
}

// IsComplete is always false: a prefix hit says nothing about which
// pattern, if any, matches.
func (s *Set) IsComplete() bool { return false }

// LiteralLen is always 0.
func (s *Set) LiteralLen() int { return 0 }
