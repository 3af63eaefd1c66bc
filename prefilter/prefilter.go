// Package prefilter finds candidate start offsets before the backtracker
// runs.
//
// A prefilter never decides a match on its own unless IsComplete is true;
// it only rules out offsets. The builder picks the cheapest search that
// still covers every possible match start:
//   - single-byte prefix → memchr
//   - longer prefix → memmem
//   - mandatory first atom with 1-3 bytes → memchr/memchr2/memchr3
//   - mandatory first atom with more bytes → table scan
package prefilter

import (
	"github.com/coregx/tinyre/literal"
	"github.com/coregx/tinyre/simd"
)

// Prefilter reports candidate positions where a match may start.
type Prefilter interface {
	// Find returns the first candidate at or after start, or -1.
	Find(haystack []byte, start int) int

	// IsComplete reports whether a candidate is already a full match of
	// LiteralLen bytes.
	IsComplete() bool

	// LiteralLen is the match length when IsComplete is true, else 0.
	LiteralLen() int
}

// Build returns the prefilter for a chain's prefix and first-byte set, or
// nil when neither constrains the match start.
func Build(prefix literal.Literal, first *[256]bool) Prefilter {
	switch {
	case prefix.Len() == 1:
		return &memchrPrefilter{needle: prefix.Bytes[0], complete: prefix.Complete}
	case prefix.Len() > 1:
		needle := make([]byte, prefix.Len())
		copy(needle, prefix.Bytes)
		return &memmemPrefilter{needle: needle, complete: prefix.Complete}
	case first != nil:
		return buildClass(first)
	}
	return nil
}

func buildClass(table *[256]bool) Prefilter {
	var members []byte
	for c := 0; c < 256; c++ {
		if table[c] {
			members = append(members, byte(c))
		}
	}
	switch len(members) {
	case 0, 256:
		// nothing can match, or everything can; the engine handles both
		return nil
	case 1:
		return &memchrPrefilter{needle: members[0]}
	case 2, 3:
		return &smallSetPrefilter{needles: members}
	default:
		t := *table
		return &tablePrefilter{table: &t}
	}
}

type memchrPrefilter struct {
	needle   byte
	complete bool
}

func (p *memchrPrefilter) Find(haystack []byte, start int) int {
	if start < 0 || start >= len(haystack) {
		return -1
	}
	if i := simd.Memchr(haystack[start:], p.needle); i >= 0 {
		return start + i
	}
	return -1
}

func (p *memchrPrefilter) IsComplete() bool { return p.complete }

func (p *memchrPrefilter) LiteralLen() int {
	if p.complete {
		return 1
	}
	return 0
}

type memmemPrefilter struct {
	needle   []byte
	complete bool
}

func (p *memmemPrefilter) Find(haystack []byte, start int) int {
	if start < 0 || start >= len(haystack) {
		return -1
	}
	if i := simd.Memmem(haystack[start:], p.needle); i >= 0 {
		return start + i
	}
	return -1
}

func (p *memmemPrefilter) IsComplete() bool { return p.complete }

func (p *memmemPrefilter) LiteralLen() int {
	if p.complete {
		return len(p.needle)
	}
	return 0
}

// smallSetPrefilter handles classes of two or three bytes, e.g. [xy].
type smallSetPrefilter struct {
	needles []byte
}

func (p *smallSetPrefilter) Find(haystack []byte, start int) int {
	if start < 0 || start >= len(haystack) {
		return -1
	}
	h := haystack[start:]
	var i int
	if len(p.needles) == 2 {
		i = simd.Memchr2(h, p.needles[0], p.needles[1])
	} else {
		i = simd.Memchr3(h, p.needles[0], p.needles[1], p.needles[2])
	}
	if i >= 0 {
		return start + i
	}
	return -1
}

func (p *smallSetPrefilter) IsComplete() bool { return false }
func (p *smallSetPrefilter) LiteralLen() int  { return 0 }

type tablePrefilter struct {
	table *[256]bool
}

func (p *tablePrefilter) Find(haystack []byte, start int) int {
	if start < 0 || start >= len(haystack) {
		return -1
	}
	if i := simd.MemchrInTable(haystack[start:], p.table); i >= 0 {
		return start + i
	}
	return -1
}

func (p *tablePrefilter) IsComplete() bool { return false }
func (p *tablePrefilter) LiteralLen() int  { return 0 }
