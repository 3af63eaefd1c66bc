package chain

import "strings"

// Chain is a compiled pattern: an acyclic singly linked list of nodes.
//
// The chain owns its nodes until Free hands them back to the store.
// A Chain must not be used after Free.
type Chain struct {
	head    *Node
	length  int
	pattern string
	fold    bool
	store   *Store
}

// Head returns the first node, or nil for the empty pattern.
func (c *Chain) Head() *Node { return c.head }

// Len returns the number of nodes.
func (c *Chain) Len() int { return c.length }

// Pattern returns the source pattern.
func (c *Chain) Pattern() string { return c.pattern }

// FoldCase reports whether the chain was compiled case-insensitively.
func (c *Chain) FoldCase() bool { return c.fold }

// Anchored reports whether the chain begins with a start anchor.
func (c *Chain) Anchored() bool {
	return c.head != nil && c.head.kind == KindStartAnchor
}

// Freed reports whether Free has been called.
func (c *Chain) Freed() bool {
	return c.store == nil
}

// Free releases every node to the store. Calling Free again is a no-op.
func (c *Chain) Free() {
	if c.store == nil {
		return
	}
	c.store.Release(c.head)
	c.head = nil
	c.store = nil
}

// String renders the chain for debugging, e.g. "StartAnchor Literal(a)* EndAnchor".
func (c *Chain) String() string {
	var sb strings.Builder
	for n := c.head; n != nil; n = n.next {
		if n != c.head {
			sb.WriteByte(' ')
		}
		sb.WriteString(n.String())
	}
	return sb.String()
}
