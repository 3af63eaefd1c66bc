package literal

import "github.com/coregx/tinyre/chain"

// Config limits extraction.
type Config struct {
	// MaxLiteralLen caps the extracted prefix. Longer prefixes are
	// truncated and lose completeness.
	MaxLiteralLen int
}

// DefaultConfig returns the default extraction limits.
func DefaultConfig() Config {
	return Config{MaxLiteralLen: 64}
}

// Extractor pulls prefix information out of chains.
type Extractor struct {
	config Config
}

// New creates an extractor.
func New(config Config) *Extractor {
	if config.MaxLiteralLen <= 0 {
		config.MaxLiteralLen = DefaultConfig().MaxLiteralLen
	}
	return &Extractor{config: config}
}

// ExtractPrefix returns the longest byte string every match of c must
// begin with. Leading case-sensitive literal atoms contribute their byte;
// a literal under '+' contributes one byte and ends the prefix. Anchored
// chains yield an empty literal because they are only tried at offset 0.
func (e *Extractor) ExtractPrefix(c *chain.Chain) Literal {
	if c == nil || c.Anchored() {
		return Literal{}
	}

	var buf []byte
	n := c.Head()
	for ; n != nil; n = n.Next() {
		if n.Kind() != chain.KindLiteral || n.Fold() || len(buf) == e.config.MaxLiteralLen {
			break
		}
		rep := n.Repetition()
		if rep == chain.RepeatZeroOrMore || rep == chain.RepeatZeroOrOne {
			break
		}
		buf = append(buf, n.Literal())
		if rep == chain.RepeatOneOrMore {
			// the prefix is known but the chain continues
			return Literal{Bytes: buf}
		}
	}
	return Literal{Bytes: buf, Complete: n == nil && len(buf) > 0}
}

// FirstBytes returns the set of bytes a match can start with, when the
// first atom is mandatory. It returns false for anchored chains, empty
// chains and chains whose first atom is optional or AnyChar.
func (e *Extractor) FirstBytes(c *chain.Chain) (*[256]bool, bool) {
	if c == nil || c.Anchored() {
		return nil, false
	}
	n := c.Head()
	if n == nil {
		return nil, false
	}
	switch n.Repetition() {
	case chain.RepeatZeroOrMore, chain.RepeatZeroOrOne:
		return nil, false
	}
	switch n.Kind() {
	case chain.KindLiteral, chain.KindClass:
		return n.Table(), true
	default:
		return nil, false
	}
}
