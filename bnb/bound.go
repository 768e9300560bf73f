package bnb

import (
	"sync"

	"github.com/dkoshelev/atsp/matrix"
)

// sharedBound is the process-wide incumbent: the best complete tour found
// so far and its cost. It is the only read-write shared resource in the
// search besides the coordinator; the lock is held only for the duration
// of a compare-and-maybe-replace (no I/O, no matrix reads while held).
//
// The recorded cost is monotonically non-increasing over time. Workers
// may observe a stale (too large) bound through their local caches, but
// never a half-updated tour, because every read and write of the pair is
// serialized through the mutex.
type sharedBound struct {
	mu   sync.Mutex
	tour []int // closed cycle, len n+1, set on first commit
	cost matrix.Weight
}

// newSharedBound starts the incumbent at the Infinity sentinel.
func newSharedBound() *sharedBound {
	return &sharedBound{cost: matrix.Infinity}
}

// tryCommit offers a complete (n-city) tour plus the cost of the closing
// edge back home. Under the lock it computes the candidate total and
// replaces the incumbent iff strictly better — ties never overwrite, so
// among equal-cost optima the first strictly better commit wins.
//
// The post-compare global cost is always returned so the caller can
// refresh its local pruning bound from the same critical section; this
// keeps the local caches eventually consistent without any extra locking.
//
// Complexity: O(n) on improvement (deep copy), O(1) otherwise.
func (b *sharedBound) tryCommit(t *tour, closing matrix.Weight) (matrix.Weight, bool) {
	candidate := t.cost + closing

	b.mu.Lock()
	if candidate >= b.cost {
		cur := b.cost
		b.mu.Unlock()

		return cur, false
	}
	b.tour = t.closed()
	b.cost = candidate
	b.mu.Unlock()

	return candidate, true
}

// snapshot returns an independent copy of the incumbent pair. Taken once
// at finalization; the copy means callers never alias the guarded slice.
// Complexity: O(n).
func (b *sharedBound) snapshot() ([]int, matrix.Weight) {
	b.mu.Lock()
	var cp []int
	if b.tour != nil {
		cp = make([]int, len(b.tour))
		copy(cp, b.tour)
	}
	cost := b.cost
	b.mu.Unlock()

	return cp, cost
}
