package bnb

import (
	"golang.org/x/sync/errgroup"

	"github.com/dkoshelev/atsp/matrix"
)

// Solve runs the parallel branch-and-bound search to exhaustive
// completion and returns the optimal tour and its cost.
//
// Contracts:
//   - m must be non-nil with order n ≥ 2; the matrix package guarantees
//     zero diagonal, non-negative finite costs.
//   - 1 ≤ opts.Workers < n (every worker needs at least one of the n-1
//     starting branches).
//
// Errors: ErrNilMatrix, ErrWorkerCount, or (defensively) ErrNoTour /
// ErrCorruptFrontier. All configuration errors are detected before any
// goroutine starts, so no cross-worker cleanup is ever required.
//
// Determinism: the returned cost is identical for every valid worker
// count; the specific tour among equal-cost optima may vary with
// scheduling (first strictly better commit wins).
//
// Complexity: worst case exponential in n (exact search); practical
// speed comes from bound pruning and work redistribution.
func Solve(m *matrix.Dense, opts Options) (Result, error) {
	// Stage 1: configuration validation, strictly before concurrency.
	if m == nil {
		return Result{}, ErrNilMatrix
	}
	n := m.N()
	if opts.Workers < 1 || opts.Workers >= n {
		return Result{}, ErrWorkerCount
	}

	// Stage 2: shared state + statically seeded workers.
	var (
		bound = newSharedBound()
		coord = newCoordinator(opts.Workers)
		pool  = make([]*worker, opts.Workers)
		rank  int
		g     errgroup.Group
	)
	for rank = 0; rank < opts.Workers; rank++ {
		pool[rank] = newWorker(rank, m, bound, coord, opts.Workers)
	}

	// Stage 3: fixed pool — started once, joined once.
	for rank = 0; rank < opts.Workers; rank++ {
		g.Go(pool[rank].run)
	}
	if err := g.Wait(); err != nil {
		return Result{}, err
	}

	// Stage 4: finalize the incumbent.
	best, cost := bound.snapshot()
	if best == nil || cost >= matrix.Infinity {
		// Unreachable for a validated finite matrix; kept as a guard.
		return Result{}, ErrNoTour
	}
	if err := ValidateTour(best, n); err != nil {
		return Result{}, err
	}

	return Result{Tour: best, Cost: cost}, nil
}
