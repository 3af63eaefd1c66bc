// Package tinyre provides a small backtracking regular-expression engine.
//
// The pattern language is deliberately minimal:
//
//	c        literal byte
//	.        any byte
//	[abc]    byte class, with ranges [a-z] and negation [^a-z]
//	\d \D    digit, non-digit
//	\c       the byte c taken literally
//	^        start of text (first byte of the pattern only)
//	$        end of text (last byte of the pattern only)
//	x* x+ x? zero or more, one or more, zero or one
//
// There are no groups, alternation or backreferences. Every search runs a
// recursive backtracker whose work is bounded by a failure memo, a step
// budget and a depth limit.
//
// Basic usage:
//
//	re, err := tinyre.Compile(`\d+`)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(re.FindString("abc 123 def")) // "123"
//
// Quantifiers resolve longest-first by default. Shortest-first resolution
// is available per search through FindMode, or for every search through
// Config.Mode or Shortest:
//
//	res, err := re.FindMode([]byte("ab123cd"), tinyre.ShortestFirst)
//	// res.Start == 2, res.End == 3
package tinyre

import (
	"sync/atomic"

	"github.com/coregx/tinyre/backtrack"
	"github.com/coregx/tinyre/chain"
	"github.com/coregx/tinyre/meta"
)

// Mode selects how quantifiers resolve ambiguity.
type Mode = backtrack.Mode

// Resolution modes.
const (
	ShortestFirst = backtrack.ShortestFirst
	LongestFirst  = backtrack.LongestFirst
)

// Result is the outcome of a search.
type Result = backtrack.Result

// Config controls compilation and search.
type Config = meta.Config

// Stats is a snapshot of a Regex's search counters.
type Stats = meta.Stats

// Error is a compile error with the offending pattern offset.
type Error = chain.Error

// Compile errors, matched with errors.Is.
var (
	ErrUnterminatedClass     = chain.ErrUnterminatedClass
	ErrInvalidRange          = chain.ErrInvalidRange
	ErrClassCapacity         = chain.ErrClassCapacity
	ErrEmptyClass            = chain.ErrEmptyClass
	ErrMissingRepeatArgument = chain.ErrMissingRepeatArgument
	ErrNestedRepeat          = chain.ErrNestedRepeat
	ErrTrailingBackslash     = chain.ErrTrailingBackslash
	ErrPatternTooComplex     = meta.ErrPatternTooComplex
)

// Search errors, returned by FindMode and MatchResult.
var (
	ErrStepLimit  = backtrack.ErrStepLimit
	ErrDepthLimit = backtrack.ErrDepthLimit
	ErrReleased   = meta.ErrReleased
)

// Regex is a compiled regular expression.
//
// A Regex is safe for concurrent use. Free must not be called while other
// goroutines are searching.
//
// Example:
//
//	re := tinyre.MustCompile(`colou?r`)
//	re.MatchString("what color?") // true
type Regex struct {
	engine  *meta.Engine
	pattern string
	mode    atomic.Uint32
}

// Compile parses a pattern and returns a Regex.
func Compile(pattern string) (*Regex, error) {
	return CompileWithConfig(pattern, DefaultConfig())
}

// MustCompile is like Compile but panics if the pattern cannot be parsed.
//
// Example:
//
//	var version = tinyre.MustCompile(`v\d+\.\d+`)
func MustCompile(pattern string) *Regex {
	re, err := Compile(pattern)
	if err != nil {
		panic("regexp: Compile(`" + pattern + "`): " + err.Error())
	}
	return re
}

// CompileWithConfig compiles a pattern with custom configuration.
//
// Example:
//
//	config := tinyre.DefaultConfig()
//	config.FoldCase = true
//	re, err := tinyre.CompileWithConfig("hello", config)
func CompileWithConfig(pattern string, config Config) (*Regex, error) {
	engine, err := meta.CompileWithConfig(pattern, config)
	if err != nil {
		return nil, err
	}
	re := &Regex{engine: engine, pattern: pattern}
	re.mode.Store(uint32(config.Mode))
	return re, nil
}

// DefaultConfig returns the default configuration for compilation.
func DefaultConfig() Config {
	return meta.DefaultConfig()
}

// QuoteMeta returns s with every metacharacter escaped, so that the
// result matches s literally.
//
// Example:
//
//	tinyre.QuoteMeta("1.5*2") // `1\.5\*2`
func QuoteMeta(s string) string {
	const special = `\.+*?[]^$`

	n := 0
	for i := 0; i < len(s); i++ {
		if isSpecial(s[i], special) {
			n++
		}
	}
	if n == 0 {
		return s
	}

	buf := make([]byte, 0, len(s)+n)
	for i := 0; i < len(s); i++ {
		if isSpecial(s[i], special) {
			buf = append(buf, '\\')
		}
		buf = append(buf, s[i])
	}
	return string(buf)
}

func isSpecial(c byte, special string) bool {
	for i := 0; i < len(special); i++ {
		if c == special[i] {
			return true
		}
	}
	return false
}

// Mode returns the resolution mode used by searches without an explicit
// mode.
func (r *Regex) Mode() Mode {
	return Mode(r.mode.Load())
}

// Longest makes future searches resolve quantifiers longest-first.
func (r *Regex) Longest() {
	r.mode.Store(uint32(LongestFirst))
}

// Shortest makes future searches resolve quantifiers shortest-first.
func (r *Regex) Shortest() {
	r.mode.Store(uint32(ShortestFirst))
}

// FindMode returns the leftmost match in b using mode. The error reports
// an exhausted search budget or a freed Regex; no match is not an error.
func (r *Regex) FindMode(b []byte, mode Mode) (Result, error) {
	return r.engine.Find(b, mode)
}

// FindModeAt is FindMode starting the search at byte offset at.
func (r *Regex) FindModeAt(b []byte, at int, mode Mode) (Result, error) {
	return r.engine.FindAt(b, at, mode)
}

// MatchResult is FindMode in the Regex's current mode.
func (r *Regex) MatchResult(b []byte) (Result, error) {
	return r.engine.Find(b, r.Mode())
}

// find reports no match for aborted searches.
func (r *Regex) find(b []byte, at int) Result {
	res, err := r.engine.FindAt(b, at, r.Mode())
	if err != nil {
		return Result{}
	}
	return res
}

// Match reports whether b contains a match.
func (r *Regex) Match(b []byte) bool {
	return r.find(b, 0).Matched
}

// MatchString reports whether s contains a match.
func (r *Regex) MatchString(s string) bool {
	return r.Match([]byte(s))
}

// Find returns the leftmost match in b, or nil. An empty match returns a
// non-nil empty slice.
//
// Example:
//
//	re := tinyre.MustCompile(`\d+`)
//	re.Find([]byte("abc 123")) // []byte("123")
func (r *Regex) Find(b []byte) []byte {
	res := r.find(b, 0)
	if !res.Matched {
		return nil
	}
	return b[res.Start:res.End:res.End]
}

// FindString returns the leftmost match in s. It returns "" both for no
// match and for an empty match; use FindStringIndex to tell them apart.
func (r *Regex) FindString(s string) string {
	res := r.find([]byte(s), 0)
	if !res.Matched {
		return ""
	}
	return s[res.Start:res.End]
}

// FindIndex returns the [start, end) offsets of the leftmost match in b,
// or nil.
func (r *Regex) FindIndex(b []byte) []int {
	res := r.find(b, 0)
	if !res.Matched {
		return nil
	}
	return []int{res.Start, res.End}
}

// FindStringIndex is FindIndex for a string.
func (r *Regex) FindStringIndex(s string) []int {
	return r.FindIndex([]byte(s))
}

// FindAllIndex returns the offsets of successive non-overlapping matches.
// If n >= 0 at most n matches are returned. An empty match directly after
// a previous match is skipped, and the search moves one byte past every
// empty match.
func (r *Regex) FindAllIndex(b []byte, n int) [][]int {
	if n == 0 {
		return nil
	}

	var matches [][]int
	prevEnd := -1
	for at := 0; at <= len(b) && (n < 0 || len(matches) < n); {
		res := r.find(b, at)
		if !res.Matched {
			break
		}
		empty := res.Start == res.End
		if empty && res.Start == prevEnd {
			at = res.Start + 1
			continue
		}

		matches = append(matches, []int{res.Start, res.End})
		prevEnd = res.End
		if empty {
			at = res.End + 1
		} else {
			at = res.End
		}
	}
	return matches
}

// FindAllStringIndex is FindAllIndex for a string.
func (r *Regex) FindAllStringIndex(s string, n int) [][]int {
	return r.FindAllIndex([]byte(s), n)
}

// FindAll returns successive non-overlapping matches in b.
//
// Example:
//
//	re := tinyre.MustCompile(`\d+`)
//	re.FindAll([]byte("1 22 333"), -1) // ["1" "22" "333"]
func (r *Regex) FindAll(b []byte, n int) [][]byte {
	idx := r.FindAllIndex(b, n)
	if idx == nil {
		return nil
	}
	out := make([][]byte, len(idx))
	for i, m := range idx {
		out[i] = b[m[0]:m[1]:m[1]]
	}
	return out
}

// FindAllString returns successive non-overlapping matches in s.
func (r *Regex) FindAllString(s string, n int) []string {
	idx := r.FindAllIndex([]byte(s), n)
	if idx == nil {
		return nil
	}
	out := make([]string, len(idx))
	for i, m := range idx {
		out[i] = s[m[0]:m[1]]
	}
	return out
}

// Count returns the number of non-overlapping matches in b, up to n when
// n >= 0.
func (r *Regex) Count(b []byte, n int) int {
	return len(r.FindAllIndex(b, n))
}

// LiteralPrefix returns a literal string that must begin any match. It
// returns complete true when the literal is the whole pattern.
func (r *Regex) LiteralPrefix() (prefix string, complete bool) {
	return r.engine.LiteralPrefix()
}

// String returns the source pattern.
func (r *Regex) String() string {
	return r.pattern
}

// Stats returns the search counters of the underlying engine.
func (r *Regex) Stats() Stats {
	return r.engine.Stats()
}

// Free returns the compiled nodes to the shared store. Searches after Free
// find nothing, and FindMode reports ErrReleased.
func (r *Regex) Free() {
	r.engine.Free()
}
