package meta

import (
	"github.com/coregx/tinyre/chain"
	"github.com/coregx/tinyre/literal"
	"github.com/coregx/tinyre/prefilter"
)

// Strategy is the search plan an Engine chose at compile time.
type Strategy int

const (
	// UseBacktrack runs the backtracker at every start offset.
	UseBacktrack Strategy = iota

	// UseAnchored runs the backtracker once, at the search offset. Chosen
	// for chains that begin with a start anchor.
	UseAnchored

	// UsePrefilter jumps between prefilter candidates and runs the
	// backtracker at each.
	UsePrefilter

	// UseLiteral answers searches with the prefilter alone. Chosen when
	// the chain is a plain case-sensitive literal.
	UseLiteral
)

// String returns the strategy name.
func (s Strategy) String() string {
	switch s {
	case UseBacktrack:
		return "Backtrack"
	case UseAnchored:
		return "Anchored"
	case UsePrefilter:
		return "Prefilter"
	case UseLiteral:
		return "Literal"
	default:
		return "Unknown"
	}
}

// selectStrategy picks the strategy for c and builds its prefilter.
func selectStrategy(c *chain.Chain, config Config) (Strategy, prefilter.Prefilter) {
	if c.Anchored() {
		return UseAnchored, nil
	}
	if !config.EnablePrefilter {
		return UseBacktrack, nil
	}

	ext := literal.New(literal.DefaultConfig())
	prefix := ext.ExtractPrefix(c)
	var first *[256]bool
	if prefix.IsEmpty() {
		first, _ = ext.FirstBytes(c)
	}

	pf := prefilter.Build(prefix, first)
	switch {
	case pf == nil:
		return UseBacktrack, nil
	case pf.IsComplete():
		return UseLiteral, pf
	default:
		return UsePrefilter, pf
	}
}
