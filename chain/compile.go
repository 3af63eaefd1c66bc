package chain

import "github.com/coregx/tinyre/internal/conv"

// DefaultMaxClassSize is the default capacity of a bracket expression,
// counted in written entries (literal bytes plus expanded range members,
// duplicates included).
const DefaultMaxClassSize = 255

// Options controls compilation.
type Options struct {
	// MaxClassSize caps the entries a bracket expression may write.
	// Zero means DefaultMaxClassSize.
	MaxClassSize int

	// FoldCase makes literals and classes match ASCII letters in either case.
	FoldCase bool
}

// Compile scans pattern left to right and returns the chain of nodes it
// describes. Nodes come from store, or from DefaultStore if store is nil.
//
// On error every node allocated during the attempt has been released and
// the returned error is a *Error.
func Compile(pattern []byte, store *Store, opts Options) (*Chain, error) {
	if store == nil {
		store = DefaultStore()
	}
	if opts.MaxClassSize <= 0 {
		opts.MaxClassSize = DefaultMaxClassSize
	}

	c := &compiler{pattern: pattern, store: store, opts: opts}
	if err := c.run(); err != nil {
		store.Release(c.head)
		return nil, err
	}
	return &Chain{
		head:    c.head,
		length:  c.length,
		pattern: string(pattern),
		fold:    opts.FoldCase,
		store:   store,
	}, nil
}

type compiler struct {
	pattern []byte
	store   *Store
	opts    Options

	head   *Node
	tail   *Node
	length int
}

func (c *compiler) run() error {
	p := c.pattern
	for i := 0; i < len(p); {
		switch p[i] {
		case '*', '+', '?':
			if err := c.repeat(p[i], i); err != nil {
				return err
			}
			i++
			continue
		}

		// link before filling in so a failure below still releases it
		n := c.push()
		switch b := p[i]; b {
		case '.':
			n.kind = KindAnyChar
			i++
		case '^':
			if i == 0 {
				n.kind = KindStartAnchor
				n.lit = b
			} else {
				c.literal(n, b)
			}
			i++
		case '$':
			if i == len(p)-1 {
				n.kind = KindEndAnchor
				n.lit = b
			} else {
				c.literal(n, b)
			}
			i++
		case '\\':
			if i+1 >= len(p) {
				return c.errorf(ErrTrailingBackslash, i)
			}
			switch esc := p[i+1]; esc {
			case 'd', 'D':
				n.kind = KindClass
				n.negated = esc == 'D'
				if err := c.addRange(n, '0', '9', i); err != nil {
					return err
				}
			default:
				c.literal(n, esc)
			}
			i += 2
		case '[':
			next, err := c.class(n, i)
			if err != nil {
				return err
			}
			i = next
		default:
			c.literal(n, b)
			i++
		}
	}
	return nil
}

func (c *compiler) push() *Node {
	n := c.store.Alloc()
	n.index = c.length
	if c.tail == nil {
		c.head = n
	} else {
		c.tail.next = n
	}
	c.tail = n
	c.length++
	return n
}

func (c *compiler) repeat(op byte, at int) error {
	if c.tail == nil || c.tail.kind == KindStartAnchor {
		return c.errorf(ErrMissingRepeatArgument, at)
	}
	if c.tail.rep != RepeatNone {
		return c.errorf(ErrNestedRepeat, at-1)
	}
	switch op {
	case '*':
		c.tail.rep = RepeatZeroOrMore
	case '+':
		c.tail.rep = RepeatOneOrMore
	default:
		c.tail.rep = RepeatZeroOrOne
	}
	return nil
}

func (c *compiler) literal(n *Node, b byte) {
	n.kind = KindLiteral
	if c.opts.FoldCase && isLetter(b) {
		n.lit = toLower(b)
		n.fold = true
		return
	}
	n.lit = b
}

// class parses the bracket expression starting at p[start] == '[' into n
// and returns the offset just past the closing bracket.
func (c *compiler) class(n *Node, start int) (int, error) {
	p := c.pattern
	n.kind = KindClass

	i := start + 1
	if i < len(p) && p[i] == '^' {
		n.negated = true
		i++
	}

	// last is the previously written byte; it is the left endpoint of a range
	last := -1
	for i < len(p) && p[i] != ']' {
		b := p[i]
		if b != '-' {
			if err := c.addRange(n, b, b, start); err != nil {
				return 0, err
			}
			last = int(b)
			i++
			continue
		}

		if last < 0 {
			return 0, c.errorf(ErrInvalidRange, start)
		}
		if i+1 >= len(p) {
			return 0, c.errorf(ErrUnterminatedClass, start)
		}
		hi := p[i+1]
		if hi == ']' || int(hi) <= last {
			return 0, c.errorf(ErrInvalidRange, start)
		}
		if err := c.addRange(n, conv.IntToByte(last+1), hi, start); err != nil {
			return 0, err
		}
		last = int(hi)
		i += 2
	}

	if i >= len(p) {
		return 0, c.errorf(ErrUnterminatedClass, start)
	}
	if n.ClassLen() == 0 {
		return 0, c.errorf(ErrEmptyClass, start)
	}
	return i + 1, nil
}

// addRange writes lo..hi inclusive into a class node, enforcing capacity.
func (c *compiler) addRange(n *Node, lo, hi byte, at int) error {
	n.written += int(hi) - int(lo) + 1
	if n.written > c.opts.MaxClassSize {
		return c.errorf(ErrClassCapacity, at)
	}
	for b := int(lo); b <= int(hi); b++ {
		n.addMember(byte(b))
		if c.opts.FoldCase && isLetter(byte(b)) {
			n.addMember(swapCase(byte(b)))
		}
	}
	return nil
}

func (c *compiler) errorf(err error, at int) *Error {
	return &Error{Err: err, Pattern: string(c.pattern), Offset: at}
}
