// Package bnb implements a parallel, exact branch-and-bound search for
// the asymmetric Traveling Salesman Problem over a dense integer cost
// matrix (see the sibling matrix package).
//
// Architecture (leaves first):
//
//   - tour — a partial or complete visitation sequence with its running
//     cost; deep-copied on every push so concurrent frames never alias.
//   - workStack — a worker-local LIFO of frontier nodes (partial tour,
//     candidate next city, edge cost). Explicit stacks replace recursion
//     because ownership of frontier nodes must be transferable between
//     workers mid-search, which an implicit call stack cannot support.
//   - sharedBound — the mutex-guarded incumbent: the best complete tour
//     found so far and its cost. Monotonically non-increasing.
//   - coordinator — the distributed termination protocol: an idle-worker
//     counter, a single-slot mailbox for a donated stack, one mutex and
//     one condition variable. Global termination is declared if and only
//     if every worker is simultaneously idle and no donated work is
//     pending, re-checked after every wake.
//   - worker — the per-goroutine loop: pop → extend → prune → push or
//     commit, with opportunistic donation when peers are idle.
//
// Work stealing splits a donor's stack interleaved (every second frame),
// spreading shallow and deep frontier nodes across both halves; deeper
// nodes are typically cheaper to process, so an interleaved split
// balances load better than donating one contiguous end.
//
// Determinism: the optimal cost is independent of the worker count and
// of scheduling. Among multiple equal-cost optima, the first strictly
// better commit wins, so the reported tour may vary across runs; the
// cost never does.
//
// The search runs to exhaustive completion: there is no cancellation and
// no time budget, and a worker blocks in exactly one place (inside the
// coordinator, waiting for redistributed work or the shutdown signal).
package bnb
