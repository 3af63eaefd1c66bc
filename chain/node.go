// Package chain compiles patterns into singly linked chains of match nodes
// and owns the memory those nodes live in.
//
// The pattern language is deliberately small:
//
//	.        any byte
//	^        start of text (first byte of the pattern only)
//	$        end of text (last byte of the pattern only)
//	* + ?    zero-or-more, one-or-more, zero-or-one of the preceding atom
//	\d \D    digit / non-digit
//	\c       the byte c
//	[...]    bracket expression; [^...] negates, a-z ranges
//
// A quantifier is stored on the atom it modifies, so a chain never has to
// be interpreted with lookahead.
package chain

import "math/bits"

// Kind identifies what a node matches.
type Kind uint8

const (
	// KindLiteral matches one specific byte.
	KindLiteral Kind = iota
	// KindAnyChar matches any byte.
	KindAnyChar
	// KindStartAnchor asserts the start of text. Only ever the head node.
	KindStartAnchor
	// KindEndAnchor asserts the end of text. Only ever the last node.
	KindEndAnchor
	// KindClass matches a byte in (or, negated, not in) a set.
	KindClass
)

// String returns a short name for the kind.
func (k Kind) String() string {
	switch k {
	case KindLiteral:
		return "Literal"
	case KindAnyChar:
		return "AnyChar"
	case KindStartAnchor:
		return "StartAnchor"
	case KindEndAnchor:
		return "EndAnchor"
	case KindClass:
		return "Class"
	default:
		return "Unknown"
	}
}

// Repetition is the quantifier attached to an atom.
type Repetition uint8

const (
	// RepeatNone matches the atom exactly once.
	RepeatNone Repetition = iota
	// RepeatZeroOrMore is '*'.
	RepeatZeroOrMore
	// RepeatOneOrMore is '+'.
	RepeatOneOrMore
	// RepeatZeroOrOne is '?'.
	RepeatZeroOrOne
)

// String returns the quantifier symbol, or "" for RepeatNone.
func (r Repetition) String() string {
	switch r {
	case RepeatZeroOrMore:
		return "*"
	case RepeatOneOrMore:
		return "+"
	case RepeatZeroOrOne:
		return "?"
	default:
		return ""
	}
}

// Node is one element of a compiled chain.
//
// Nodes are allocated by a Store and are immutable once Compile returns.
type Node struct {
	kind Kind
	rep  Repetition

	// lit is the byte for KindLiteral (lowercased when fold is set) and
	// the anchor symbol for anchor kinds.
	lit  byte
	fold bool

	// class members, only for KindClass
	set     [4]uint64
	negated bool
	written int

	next  *Node
	index int
	id    uint32
}

// Kind returns what the node matches.
func (n *Node) Kind() Kind { return n.kind }

// Repetition returns the quantifier attached to the node.
func (n *Node) Repetition() Repetition { return n.rep }

// Literal returns the literal byte (or anchor symbol).
func (n *Node) Literal() byte { return n.lit }

// Fold reports whether a literal node ignores ASCII case.
func (n *Node) Fold() bool { return n.fold }

// Next returns the following node, or nil at the end of the chain.
func (n *Node) Next() *Node { return n.next }

// Index returns the node's position in its chain, starting at 0.
func (n *Node) Index() int { return n.index }

// Negated reports whether a class node inverts membership.
func (n *Node) Negated() bool { return n.negated }

// InClass reports whether c is admitted by a class node: membership in the
// set XOR the negation flag. It reports false for every other kind.
func (n *Node) InClass(c byte) bool {
	if n.kind != KindClass {
		return false
	}
	member := n.set[c>>6]&(1<<(c&63)) != 0
	return member != n.negated
}

// Match reports whether the node consumes byte c. Anchors never consume.
func (n *Node) Match(c byte) bool {
	switch n.kind {
	case KindLiteral:
		if c == n.lit {
			return true
		}
		return n.fold && toLower(c) == n.lit
	case KindAnyChar:
		return true
	case KindClass:
		return n.InClass(c)
	default:
		return false
	}
}

// ClassLen returns the number of distinct members in a class set, before
// negation.
func (n *Node) ClassLen() int {
	total := 0
	for _, w := range n.set {
		total += bits.OnesCount64(w)
	}
	return total
}

// Table returns, for a consuming node, the bytes it matches.
func (n *Node) Table() *[256]bool {
	var t [256]bool
	for c := 0; c < 256; c++ {
		t[c] = n.Match(byte(c))
	}
	return &t
}

func (n *Node) addMember(c byte) {
	n.set[c>>6] |= 1 << (c & 63)
}

func (n *Node) String() string {
	var s string
	switch n.kind {
	case KindLiteral:
		s = "Literal(" + quoteByte(n.lit) + ")"
	case KindClass:
		s = "Class("
		if n.negated {
			s += "^"
		}
		for c := 0; c < 256; c++ {
			if n.set[c>>6]&(1<<(uint(c)&63)) != 0 {
				s += quoteByte(byte(c))
			}
		}
		s += ")"
	default:
		s = n.kind.String()
	}
	return s + n.rep.String()
}

func quoteByte(c byte) string {
	if c >= 0x20 && c < 0x7f {
		return string(rune(c))
	}
	const hex = "0123456789abcdef"
	return `\x` + string(hex[c>>4]) + string(hex[c&15])
}

func isLetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func toLower(c byte) byte {
	if c >= 'A' && c <= 'Z' {
		return c + 'a' - 'A'
	}
	return c
}

func swapCase(c byte) byte {
	if c >= 'A' && c <= 'Z' {
		return c + 'a' - 'A'
	}
	if c >= 'a' && c <= 'z' {
		return c - ('a' - 'A')
	}
	return c
}
