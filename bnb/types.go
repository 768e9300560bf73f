package bnb

import (
	"errors"

	"github.com/dkoshelev/atsp/matrix"
)

// home is the fixed start (and end) city of every tour.
const home = 0

// ErrNilMatrix is returned when Solve receives a nil cost matrix.
var ErrNilMatrix = errors.New("bnb: nil cost matrix")

// ErrWorkerCount is returned when Options.Workers is outside [1, n).
// The upper limit mirrors the static seeding scheme: with n cities there
// are exactly n-1 two-city starting branches to partition, and every
// worker must begin with at least one.
var ErrWorkerCount = errors.New("bnb: worker count must be >= 1 and < number of cities")

// ErrCorruptFrontier is returned when a popped frontier node references a
// city outside [0..n-1]. It cannot occur through the public API and
// exists purely as a defensive invariant check inside the worker pool.
var ErrCorruptFrontier = errors.New("bnb: corrupt frontier node")

// ErrDimensionMismatch is returned by tour helpers on malformed input
// shapes (wrong length, out-of-range or duplicate cities).
var ErrDimensionMismatch = errors.New("bnb: dimension mismatch")

// ErrNoTour is returned when the search exhausts the tree without ever
// committing a complete tour. With a fully validated finite matrix this
// is unreachable; it guards the finalization path.
var ErrNoTour = errors.New("bnb: no complete tour found")

// Options configures a single Solve run.
type Options struct {
	// Workers is the fixed size of the worker pool, 1 ≤ Workers < n.
	// The pool is started once and joined once; no goroutines are
	// created during the search.
	Workers int
}

// DefaultOptions returns the canonical sequential configuration.
func DefaultOptions() Options {
	return Options{Workers: 1}
}

// Result holds the outcome of a solved instance.
type Result struct {
	// Tour is the optimal visitation order: n+1 city indices starting
	// and ending at city 0, every other city appearing exactly once.
	Tour []int

	// Cost is the total cost of Tour, the sum of the n directed edge
	// costs along it.
	Cost matrix.Weight
}
