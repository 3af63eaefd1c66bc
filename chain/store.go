package chain

import (
	"sync"

	"github.com/coregx/tinyre/internal/conv"
	"github.com/coregx/tinyre/internal/sparse"
)

// Store allocates and releases nodes.
//
// Released nodes are kept on a free list and handed out again by Alloc.
// The store tracks which node ids are live, so releasing a node twice
// panics instead of silently corrupting the free list.
//
// A Store is safe for concurrent use.
type Store struct {
	mu     sync.Mutex
	free   *Node
	live   *sparse.Set
	nextID int

	allocs   uint64
	releases uint64
}

// StoreStats is a snapshot of a store's allocation counters.
type StoreStats struct {
	Allocs   uint64
	Releases uint64
	Live     int
	Free     int
}

var defaultStore = NewStore()

// DefaultStore returns the process-wide store used when Compile is given
// a nil store.
func DefaultStore() *Store {
	return defaultStore
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{live: sparse.New(64)}
}

// Alloc returns a zeroed node.
func (s *Store) Alloc() *Node {
	s.mu.Lock()
	defer s.mu.Unlock()

	n := s.free
	if n != nil {
		s.free = n.next
		n.next = nil
	} else {
		n = &Node{id: conv.IntToUint32(s.nextID)}
		s.nextID++
	}
	s.live.Insert(n.id)
	s.allocs++
	return n
}

// Release frees every node from head to the end of its chain and returns
// how many were freed. Releasing a nil head is a no-op.
//
// Panics if any node in the chain is not live.
func (s *Store) Release(head *Node) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	count := 0
	for n := head; n != nil; {
		next := n.next
		if !s.live.Remove(n.id) {
			panic("chain: release of a node that is not live")
		}
		*n = Node{id: n.id, next: s.free}
		s.free = n
		s.releases++
		count++
		n = next
	}
	return count
}

// Stats returns the store's counters.
func (s *Store) Stats() StoreStats {
	s.mu.Lock()
	defer s.mu.Unlock()

	free := 0
	for n := s.free; n != nil; n = n.next {
		free++
	}
	return StoreStats{
		Allocs:   s.allocs,
		Releases: s.releases,
		Live:     s.live.Len(),
		Free:     free,
	}
}
