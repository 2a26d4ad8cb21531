// Package anchors tracks the registry roots this deployment trusts: the
// append-only trust anchor set and an on-chain resolver for root freshness.
package anchors

import (
	"sync"

	"github.com/ethereum/go-ethereum/common"
)

// Set is the append-only collection of trusted registry roots (Merkle roots
// over accepted certificate authorities). Roots are never silently removed;
// revocation, if any, is an explicit operation outside this library.
type Set struct {
	mu    sync.RWMutex
	roots map[common.Hash]struct{}
}

// NewSet creates an empty trust anchor set.
func NewSet() *Set {
	return &Set{roots: make(map[common.Hash]struct{})}
}

// Add inserts a root. Re-adding an existing root is a no-op.
func (s *Set) Add(root common.Hash) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.roots[root] = struct{}{}
}

// Contains reports whether the root is a trusted anchor.
func (s *Set) Contains(root common.Hash) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.roots[root]
	return ok
}

// Roots returns a snapshot of the trusted roots, in no particular order.
func (s *Set) Roots() []common.Hash {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]common.Hash, 0, len(s.roots))
	for root := range s.roots {
		out = append(out, root)
	}
	return out
}

// Len returns the number of trusted roots.
func (s *Set) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.roots)
}
