// Package literal extracts literal byte sequences from compiled chains.
//
// Every match of a chain such as "colou?r" must begin with "colo"; finding
// that prefix with a fast substring search lets the engine skip every
// start offset where the backtracker could not succeed.
package literal

// Literal is a byte sequence every match must begin with.
//
// Complete is set when the chain is the literal and nothing else, so a
// literal hit is already the full match.
type Literal struct {
	Bytes    []byte
	Complete bool
}

// Len returns the number of bytes in the literal.
func (l Literal) Len() int {
	return len(l.Bytes)
}

// IsEmpty reports whether the literal has no bytes.
func (l Literal) IsEmpty() bool {
	return len(l.Bytes) == 0
}

// String returns "literal{bytes, complete=bool}" for debugging.
func (l Literal) String() string {
	complete := "false"
	if l.Complete {
		complete = "true"
	}
	return "literal{" + string(l.Bytes) + ", complete=" + complete + "}"
}

// Seq is an ordered set of literals, one per pattern, used when several
// independently compiled patterns are searched together.
type Seq struct {
	literals []Literal
}

// NewSeq creates a sequence from the given literals.
func NewSeq(lits ...Literal) *Seq {
	return &Seq{literals: lits}
}

// Add appends a literal.
func (s *Seq) Add(lit Literal) {
	s.literals = append(s.literals, lit)
}

// Len returns the number of literals.
func (s *Seq) Len() int {
	if s == nil {
		return 0
	}
	return len(s.literals)
}

// Get returns the i-th literal.
func (s *Seq) Get(i int) Literal {
	return s.literals[i]
}

// IsEmpty reports whether the sequence has no literals.
func (s *Seq) IsEmpty() bool {
	return s.Len() == 0
}

// AllNonEmpty reports whether the sequence has literals and none is empty.
// Only then does the absence of all of them rule out a match.
func (s *Seq) AllNonEmpty() bool {
	if s.IsEmpty() {
		return false
	}
	for _, lit := range s.literals {
		if lit.IsEmpty() {
			return false
		}
	}
	return true
}

// MinLen returns the length of the shortest literal, or 0 when empty.
func (s *Seq) MinLen() int {
	if s.IsEmpty() {
		return 0
	}
	minLen := s.literals[0].Len()
	for _, lit := range s.literals[1:] {
		if lit.Len() < minLen {
			minLen = lit.Len()
		}
	}
	return minLen
}
