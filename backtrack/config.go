package backtrack

import (
	"errors"
	"fmt"
)

// Mode selects how every quantifier in a search resolves ambiguity.
type Mode uint8

const (
	// ShortestFirst tries the fewest repetitions first.
	ShortestFirst Mode = iota
	// LongestFirst consumes the longest run first and backs off.
	LongestFirst
)

// String returns "shortest" or "longest".
func (m Mode) String() string {
	if m == LongestFirst {
		return "longest"
	}
	return "shortest"
}

// ParseMode parses "shortest" or "longest". The empty string is the
// default, LongestFirst.
func ParseMode(s string) (Mode, error) {
	switch s {
	case "shortest":
		return ShortestFirst, nil
	case "", "longest":
		return LongestFirst, nil
	}
	return LongestFirst, fmt.Errorf("unknown match mode %q", s)
}

// Search budget errors. A search that exceeds a budget reports no match
// together with one of these.
var (
	ErrStepLimit  = errors.New("backtrack: step budget exceeded")
	ErrDepthLimit = errors.New("backtrack: recursion depth limit exceeded")
)

const (
	// DefaultMaxSteps bounds node visits per search.
	DefaultMaxSteps = 10_000_000

	// DefaultMaxDepth bounds recursion. Depth grows by one per node, so
	// this only limits very long patterns.
	DefaultMaxDepth = 1000

	// DefaultMaxVisitedBits bounds the failure memo: 2M bits, 256KB.
	DefaultMaxVisitedBits = 256 * 1024 * 8
)

// Config controls a Matcher.
type Config struct {
	Mode Mode

	// MaxSteps caps node visits per search; 0 disables the cap.
	MaxSteps int

	// MaxDepth caps recursion depth; 0 disables the cap.
	MaxDepth int

	// MaxVisitedBits caps the memo size (nodes * (len(text)+1) bits).
	// Searches that would need more run without memoisation. 0 disables
	// memoisation entirely.
	MaxVisitedBits int
}

// DefaultConfig returns the default matcher configuration.
func DefaultConfig() Config {
	return Config{
		Mode:           LongestFirst,
		MaxSteps:       DefaultMaxSteps,
		MaxDepth:       DefaultMaxDepth,
		MaxVisitedBits: DefaultMaxVisitedBits,
	}
}
