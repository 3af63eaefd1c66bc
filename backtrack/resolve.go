package backtrack

import "github.com/coregx/tinyre/chain"

// The resolvers decide how many repetitions of atom to consume before
// matching cont. None of them scans past the first byte the atom rejects.

// starShortest tries cont after 0, 1, 2, ... repetitions.
func (m *Matcher) starShortest(atom, cont *chain.Node, pos int) bool {
	for {
		if m.descend(cont, pos) {
			return true
		}
		if m.err != nil || pos >= len(m.haystack) || !atom.Match(m.haystack[pos]) {
			return false
		}
		pos++
	}
}

// starLongest consumes the whole run, then backs off down to 0 repetitions.
func (m *Matcher) starLongest(atom, cont *chain.Node, pos int) bool {
	for t := m.run(atom, pos); t >= pos; t-- {
		if m.descend(cont, t) {
			return true
		}
		if m.err != nil {
			return false
		}
	}
	return false
}

// plusShortest consumes one repetition, then extends one at a time.
func (m *Matcher) plusShortest(atom, cont *chain.Node, pos int) bool {
	for pos < len(m.haystack) && atom.Match(m.haystack[pos]) {
		pos++
		if m.descend(cont, pos) {
			return true
		}
		if m.err != nil {
			return false
		}
	}
	return false
}

// plusLongest consumes the whole run, then backs off down to 1 repetition.
func (m *Matcher) plusLongest(atom, cont *chain.Node, pos int) bool {
	for t := m.run(atom, pos); t > pos; t-- {
		if m.descend(cont, t) {
			return true
		}
		if m.err != nil {
			return false
		}
	}
	return false
}

// optional tries one repetition first, then none. Both modes use it.
func (m *Matcher) optional(atom, cont *chain.Node, pos int) bool {
	if pos < len(m.haystack) && atom.Match(m.haystack[pos]) {
		if m.descend(cont, pos+1) {
			return true
		}
		if m.err != nil {
			return false
		}
	}
	return m.descend(cont, pos)
}

// run returns the end of the maximal run of atom starting at pos.
func (m *Matcher) run(atom *chain.Node, pos int) int {
	for pos < len(m.haystack) && atom.Match(m.haystack[pos]) {
		pos++
	}
	if pos > m.furthest {
		m.furthest = pos
	}
	return pos
}
