// Package backtrack implements the recursive backtracking matcher that
// walks a compiled chain against a text.
//
// Quantifiers are resolved by four strategies (star, plus, optional and
// the longest-first variants of star and plus). The Mode of a Matcher
// picks shortest-first or longest-first resolution for every quantifier
// in a search.
//
// A search is bounded in three ways:
//   - failed (node, position) pairs are remembered in a bit vector, so
//     no pair is explored twice and the search stays polynomial;
//   - a step budget caps node visits;
//   - a depth limit caps recursion.
package backtrack

import "github.com/coregx/tinyre/chain"

// Result is the outcome of a search. Start and End are byte offsets, and
// text[Start:End] is the match when Matched is true.
type Result struct {
	Matched bool
	Start   int
	End     int
}

// Matcher holds all mutable state of a search over one chain.
//
// A Matcher is not safe for concurrent use and is not reentrant; use one
// Matcher per goroutine. The chain itself may be shared.
type Matcher struct {
	chain  *chain.Chain
	config Config
	mode   Mode

	haystack []byte

	// visited has one bit per (node index, position) pair.
	// Layout: bit (index * width + pos), width = len(haystack)+1.
	visited []uint64
	memo    bool
	width   int

	steps int
	depth int
	err   error

	end      int
	furthest int
}

// NewMatcher creates a matcher for c.
func NewMatcher(c *chain.Chain, config Config) *Matcher {
	return &Matcher{
		chain:  c,
		config: config,
		mode:   config.Mode,
	}
}

// SetMode sets the resolution mode for subsequent searches.
func (m *Matcher) SetMode(mode Mode) {
	m.mode = mode
}

// Mode returns the current resolution mode.
func (m *Matcher) Mode() Mode {
	return m.mode
}

// CanMemoize reports whether a search over n bytes fits the memo budget.
func (m *Matcher) CanMemoize(n int) bool {
	if m.config.MaxVisitedBits <= 0 {
		return false
	}
	return m.chain.Len()*(n+1) <= m.config.MaxVisitedBits
}

// Reset prepares the matcher for a new search over haystack.
func (m *Matcher) Reset(haystack []byte) {
	m.haystack = haystack
	m.steps = 0
	m.depth = 0
	m.err = nil
	m.end = 0
	m.furthest = 0

	m.memo = m.CanMemoize(len(haystack))
	if !m.memo {
		return
	}
	m.width = len(haystack) + 1
	words := (m.chain.Len()*m.width + 63) / 64
	if cap(m.visited) >= words {
		m.visited = m.visited[:words]
		clear(m.visited)
	} else {
		m.visited = make([]uint64, words)
	}
}

// Err returns the budget error that aborted the last search, if any.
func (m *Matcher) Err() error {
	return m.err
}

// Steps returns the number of node visits in the current search.
func (m *Matcher) Steps() int {
	return m.steps
}

// Furthest returns the furthest text position the current search reached.
func (m *Matcher) Furthest() int {
	return m.furthest
}

// MatchAt runs the chain anchored at pos over the haystack given to Reset
// and returns the end of the match. Failed pairs memoised by earlier
// MatchAt calls since Reset are reused.
func (m *Matcher) MatchAt(pos int) (int, bool) {
	if m.err != nil || pos < 0 || pos > len(m.haystack) {
		return 0, false
	}
	m.depth = 0
	if m.matchHere(m.chain.Head(), pos) {
		return m.end, true
	}
	return 0, false
}

// Find returns the leftmost match in haystack.
func (m *Matcher) Find(haystack []byte) (Result, error) {
	return m.FindAt(haystack, 0)
}

// FindAt returns the leftmost match starting at or after at. A chain that
// begins with a start anchor is only tried at offset 0.
//
// No match is not an error; the error is only set when a budget aborts
// the search.
func (m *Matcher) FindAt(haystack []byte, at int) (Result, error) {
	m.Reset(haystack)
	if at < 0 || at > len(haystack) {
		return Result{}, nil
	}

	if m.chain.Anchored() {
		if end, ok := m.MatchAt(at); ok {
			return Result{Matched: true, Start: at, End: end}, nil
		}
		return Result{}, m.err
	}

	for start := at; start <= len(haystack); start++ {
		if end, ok := m.MatchAt(start); ok {
			return Result{Matched: true, Start: start, End: end}, nil
		}
		if m.err != nil {
			return Result{}, m.err
		}
	}
	return Result{}, nil
}

// matchHere reports whether the chain from n matches the text at pos.
func (m *Matcher) matchHere(n *chain.Node, pos int) bool {
	if pos > m.furthest {
		m.furthest = pos
	}
	if n == nil {
		m.end = pos
		return true
	}
	if m.err != nil {
		return false
	}

	m.steps++
	if m.config.MaxSteps > 0 && m.steps > m.config.MaxSteps {
		m.err = ErrStepLimit
		return false
	}
	if m.memo && !m.shouldVisit(n, pos) {
		return false
	}

	switch n.Kind() {
	case chain.KindStartAnchor:
		return pos == 0 && m.descend(n.Next(), pos)
	case chain.KindEndAnchor:
		return pos == len(m.haystack) && m.descend(n.Next(), pos)
	}

	switch n.Repetition() {
	case chain.RepeatZeroOrMore:
		if m.mode == LongestFirst {
			return m.starLongest(n, n.Next(), pos)
		}
		return m.starShortest(n, n.Next(), pos)
	case chain.RepeatOneOrMore:
		if m.mode == LongestFirst {
			return m.plusLongest(n, n.Next(), pos)
		}
		return m.plusShortest(n, n.Next(), pos)
	case chain.RepeatZeroOrOne:
		return m.optional(n, n.Next(), pos)
	}

	if pos < len(m.haystack) && n.Match(m.haystack[pos]) {
		return m.descend(n.Next(), pos+1)
	}
	return false
}

// descend matches the continuation one level deeper.
func (m *Matcher) descend(n *chain.Node, pos int) bool {
	m.depth++
	if m.config.MaxDepth > 0 && m.depth > m.config.MaxDepth {
		m.err = ErrDepthLimit
		m.depth--
		return false
	}
	ok := m.matchHere(n, pos)
	m.depth--
	return ok
}

// shouldVisit marks (n, pos) and reports whether it was unmarked. A marked
// pair has already failed: had it succeeded the search would be over.
func (m *Matcher) shouldVisit(n *chain.Node, pos int) bool {
	idx := n.Index()*m.width + pos
	word, bit := idx/64, uint64(1)<<(idx%64)
	if m.visited[word]&bit != 0 {
		return false
	}
	m.visited[word] |= bit
	return true
}
