package bnb

import "github.com/dkoshelev/atsp/matrix"

// worker is the per-goroutine search engine. A dedicated struct (instead
// of anonymous closures) keeps dependencies explicit, testing simpler,
// and hot-path state predictable.
type worker struct {
	rank int
	n    int
	m    *matrix.Dense

	stack *workStack
	bound *sharedBound
	coord *coordinator

	// localBound caches the shared best cost so feasibility checks never
	// touch the incumbent's lock. Refreshed from the snapshot returned by
	// every tryCommit; transient staleness only weakens pruning, never
	// correctness.
	localBound matrix.Weight
}

// newWorker builds one worker and pre-loads its stack with the statically
// partitioned two-city seeds for its rank.
func newWorker(rank int, m *matrix.Dense, bound *sharedBound, coord *coordinator, workers int) *worker {
	w := &worker{
		rank:       rank,
		n:          m.N(),
		m:          m,
		bound:      bound,
		coord:      coord,
		localBound: matrix.Infinity,
	}
	w.stack = newWorkStack(2 * w.n)
	w.fillStack(workers)

	return w
}

// fillStack seeds the worker with its disjoint slice of two-city partial
// tours. The n-1 starting branches (home → i for i in 1..n-1) are block
// partitioned across ranks: the first (n-1) mod workers ranks take
// ⌈(n-1)/workers⌉ branches, the rest take ⌊(n-1)/workers⌋, so no two
// workers share an initial branch.
//
// Complexity: O(branches · n) for the per-branch tour allocations.
func (w *worker) fillStack(workers int) {
	var (
		quotient  = (w.n - 1) / workers
		remainder = (w.n - 1) % workers

		branches int
		first    int
	)
	if w.rank < remainder {
		branches = quotient + 1
		first = w.rank*branches + 1
	} else {
		branches = quotient
		first = w.rank*branches + remainder + 1
	}

	var (
		city int
		t    *tour
	)
	for city = first; city < first+branches; city++ {
		t = newTour(w.n)
		t.append(home, 0)
		w.stack.push(frontierNode{tour: t, city: city, cost: w.m.Cost(home, city)})
	}
}

// run drives the state machine to completion: RUNNING while frontier
// nodes remain, IDLE inside the coordinator when the stack drains, and
// TERMINATED when the coordinator reports global shutdown.
//
// Each iteration first offers work to idle peers (non-blocking), then
// pops and expands one node. No operation here blocks except the
// coordinator wait on an empty stack.
func (w *worker) run() error {
	for {
		w.coord.maybeDonate(w.stack)

		if w.stack.len() == 0 {
			next, done := w.coord.awaitWork()
			if done {
				return nil
			}
			w.stack = next

			continue
		}

		if err := w.expand(w.stack.pop()); err != nil {
			return err
		}
	}
}

// expand consumes one frontier node: commit the candidate city to the
// owned tour, then either offer the completed tour to the incumbent or
// fan out one new frontier node per feasible successor.
//
// Successors are tested in descending index order, so lower-indexed
// candidates end up on top of the stack and are explored first —
// deterministic, though otherwise arbitrary. The absence of feasible
// successors is not an error: the empty push set simply leads to the
// next pop.
//
// Complexity: O(n²) worst case per node (n candidates × O(n) visited
// scan and tour copy).
func (w *worker) expand(node frontierNode) error {
	if node.city < 0 || node.city >= w.n {
		return ErrCorruptFrontier
	}

	t := node.tour
	t.append(node.city, node.cost)

	if t.isComplete(w.n) {
		newBound, _ := w.bound.tryCommit(t, w.m.Cost(node.city, home))
		w.localBound = newBound

		return nil
	}

	var nbr int
	for nbr = w.n - 1; nbr > home; nbr-- {
		if w.feasible(node.city, nbr, t) {
			w.stack.push(frontierNode{
				tour: t.clone(),
				city: nbr,
				cost: w.m.Cost(node.city, nbr),
			})
		}
	}

	return nil
}

// feasible reports whether candidate is worth branching into: it must be
// unvisited, and the partial cost through it must still undercut the
// cached best bound. A stale bound can only let a doomed branch survive
// one level longer; it can never prune the true optimum.
// Complexity: O(count) for the visited scan.
func (w *worker) feasible(current, candidate int, t *tour) bool {
	return !t.visited(candidate) && t.cost+w.m.Cost(current, candidate) < w.localBound
}
