package bnb

import (
	"sync"
	"sync/atomic"
)

// coordinator implements distributed termination detection with dynamic
// work redistribution for a fixed pool of workers.
//
// Protocol state: the count of idle (blocked) workers, the fixed worker
// count, and a single-slot mailbox holding at most one donated stack, all
// guarded by one mutex and one condition variable.
//
// Two lock-free mirrors (idleHint, mailFull) let a running worker peek at
// "is anyone idle / is the mailbox free" without touching the mutex on
// every loop iteration; they are hints only, and every decision is
// re-validated under the lock before acting.
//
// Safety: global termination is declared if and only if every worker is
// simultaneously idle AND no donated stack is pending, and the condition
// is re-checked after every wake — a wake races with fresh donations, and
// acting on stale state would either terminate early or strand work.
//
// Liveness: a donor always signals one waiter after filling the mailbox,
// so donated work is never stranded; the final worker broadcasts so every
// blocked peer observes termination.
type coordinator struct {
	mu   sync.Mutex
	cond *sync.Cond

	workers int        // fixed pool size
	idle    int        // workers blocked in awaitWork, guarded by mu
	mailbox *workStack // at most one donated stack, guarded by mu

	idleHint atomic.Int32 // lock-free mirror of idle
	mailFull atomic.Bool  // lock-free mirror of mailbox != nil
}

// newCoordinator initializes the protocol for a fixed pool size.
func newCoordinator(workers int) *coordinator {
	c := &coordinator{workers: workers}
	c.cond = sync.NewCond(&c.mu)

	return c
}

// maybeDonate is the non-blocking fast path, called by a worker that
// still has work. When the caller's stack holds at least two frames, some
// peer is idle, and the mailbox is empty, it attempts the lock without
// blocking; on success it re-checks both conditions, splits the caller's
// stack interleaved, deposits the donated half, and wakes one waiter.
//
// The caller never blocks here: a contended lock or a stale hint simply
// skips the donation, and the caller keeps working.
//
// Complexity: O(k) on donation (the split), O(1) otherwise.
func (c *coordinator) maybeDonate(s *workStack) {
	// A worker with fewer than two frames has nothing to share.
	if s.len() < 2 || c.idleHint.Load() == 0 || c.mailFull.Load() {
		return
	}
	if !c.mu.TryLock() {
		return
	}
	// Hints may be stale; the protocol conditions hold only under the lock.
	if c.idle > 0 && c.mailbox == nil {
		c.mailbox = s.split()
		c.mailFull.Store(true)
		c.cond.Signal()
	}
	c.mu.Unlock()
}

// awaitWork is the slow path, called by a worker whose stack is empty.
// It blocks until either redistributed work arrives (returned stack,
// false) or the pool has globally terminated (nil, true).
//
// Decision table, evaluated under the lock:
//   - Last runner (idle == workers-1) with an empty mailbox: the whole
//     tree is exhausted. Mark idle, broadcast to release every waiter,
//     report termination.
//   - Otherwise become idle and wait. On each wake: a filled mailbox is
//     claimed (work); all-idle with an empty mailbox is termination; any
//     other state is a spurious wake or a lost race for the mailbox, and
//     the worker simply waits again.
func (c *coordinator) awaitWork() (*workStack, bool) {
	c.mu.Lock()

	if c.idle == c.workers-1 && c.mailbox == nil {
		c.idle++
		c.idleHint.Store(int32(c.idle))
		c.cond.Broadcast()
		c.mu.Unlock()

		return nil, true
	}

	c.idle++
	c.idleHint.Store(int32(c.idle))

	for {
		c.cond.Wait()

		if c.mailbox != nil {
			s := c.mailbox
			c.mailbox = nil
			c.mailFull.Store(false)
			c.idle--
			c.idleHint.Store(int32(c.idle))
			c.mu.Unlock()

			return s, false
		}
		if c.idle == c.workers {
			c.mu.Unlock()

			return nil, true
		}
		// Spurious wake, or another waiter claimed the mailbox first:
		// neither work nor termination, so keep waiting.
	}
}
