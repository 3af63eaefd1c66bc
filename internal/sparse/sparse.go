// Package sparse provides a sparse set of uint32 ids with O(1) insert,
// remove and membership tests.
//
// The node store uses it to track which node ids are live, so that a
// chain released twice is detected instead of corrupting the free list.
package sparse

// Set is a set of uint32 values. It keeps a sparse array mapping each
// value to its slot in a dense array, and the dense array for iteration.
// Unlike a fixed-universe sparse set it grows on demand.
type Set struct {
	sparse []uint32 // value -> index in dense
	dense  []uint32
}

// New creates a set able to hold values below capacity without growing.
func New(capacity uint32) *Set {
	return &Set{
		sparse: make([]uint32, capacity),
		dense:  make([]uint32, 0, capacity),
	}
}

// Insert adds value to the set. It reports whether the value was added
// (false if it was already present).
func (s *Set) Insert(value uint32) bool {
	if s.Contains(value) {
		return false
	}
	s.grow(value)
	s.sparse[value] = uint32(len(s.dense))
	s.dense = append(s.dense, value)
	return true
}

// Contains reports whether value is in the set.
func (s *Set) Contains(value uint32) bool {
	if uint64(value) >= uint64(len(s.sparse)) {
		return false
	}
	idx := s.sparse[value]
	return uint64(idx) < uint64(len(s.dense)) && s.dense[idx] == value
}

// Remove deletes value from the set and reports whether it was present.
func (s *Set) Remove(value uint32) bool {
	if !s.Contains(value) {
		return false
	}
	idx := s.sparse[value]
	last := s.dense[len(s.dense)-1]
	s.dense[idx] = last
	s.sparse[last] = idx
	s.dense = s.dense[:len(s.dense)-1]
	return true
}

// Clear removes every value in O(1).
func (s *Set) Clear() {
	s.dense = s.dense[:0]
}

// Len returns the number of values in the set.
func (s *Set) Len() int {
	return len(s.dense)
}

// IsEmpty reports whether the set has no values.
func (s *Set) IsEmpty() bool {
	return len(s.dense) == 0
}

func (s *Set) grow(value uint32) {
	if uint64(value) < uint64(len(s.sparse)) {
		return
	}
	n := 2 * len(s.sparse)
	if n <= int(value) {
		n = int(value) + 1
	}
	sparse := make([]uint32, n)
	copy(sparse, s.sparse)
	s.sparse = sparse
}
