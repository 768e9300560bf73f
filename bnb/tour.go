package bnb

import "github.com/dkoshelev/atsp/matrix"

// tour is a partial or complete visitation sequence with its running
// cost. A tour is owned by exactly one stack frame at a time; push
// duplicates it so that sibling frontier nodes never alias city storage.
//
// Invariant: all committed entries are distinct (city indices are never
// reused within one tour), and the accumulated cost equals the sum of the
// edge costs along the committed prefix.
type tour struct {
	cities []int
	cost   matrix.Weight
}

// newTour returns an empty tour with capacity for a closed n-city cycle.
// Complexity: O(1) amortized (single allocation).
func newTour(n int) *tour {
	return &tour{cities: make([]int, 0, n+1)}
}

// count reports the number of cities committed so far.
func (t *tour) count() int { return len(t.cities) }

// last returns the most recently committed city.
// Callers guarantee count() >= 1.
func (t *tour) last() int { return t.cities[len(t.cities)-1] }

// append commits city to the owned tour, accumulating the edge cost that
// was recorded when the enclosing frontier node was pushed. It mutates in
// place: ownership of the popped node's tour has already transferred to
// the caller, so no duplication is needed here.
// Complexity: O(1).
func (t *tour) append(city int, cost matrix.Weight) {
	t.cities = append(t.cities, city)
	t.cost += cost
}

// clone returns an independent deep copy. This is the aliasing-safety
// primitive behind duplicate-on-push: the same partial tour may spawn
// several sibling frontier nodes, and two workers must never mutate the
// same backing array.
// Complexity: O(count).
func (t *tour) clone() *tour {
	cp := make([]int, len(t.cities), cap(t.cities))
	copy(cp, t.cities)

	return &tour{cities: cp, cost: t.cost}
}

// isComplete reports whether all n cities have been committed (the
// closing edge back to home is not part of the committed prefix).
func (t *tour) isComplete(n int) bool { return len(t.cities) == n }

// visited reports whether city already appears in the committed prefix.
// A linear scan is deliberate: n is small for exact TSP, the prefix is
// shorter still, and no index is reused within a tour by invariant.
// Complexity: O(count).
func (t *tour) visited(city int) bool {
	var i int
	for i = 0; i < len(t.cities); i++ {
		if t.cities[i] == city {
			return true
		}
	}

	return false
}

// closed returns the tour as a closed cycle of n+1 indices ending at
// home, as exposed through Result. The receiver must be complete.
// Complexity: O(n).
func (t *tour) closed() []int {
	out := make([]int, len(t.cities)+1)
	copy(out, t.cities)
	out[len(t.cities)] = home

	return out
}

// ValidateTour enforces the closed-cycle invariants on a Result tour:
// len(tour) == n+1, tour[0] == tour[n] == 0, and every city in [0..n-1]
// appears exactly once among the first n positions.
//
// Complexity: O(n) time, O(n) space.
func ValidateTour(tr []int, n int) error {
	if n < 2 {
		return ErrDimensionMismatch
	}
	if len(tr) != n+1 {
		return ErrDimensionMismatch
	}
	if tr[0] != home || tr[n] != home {
		return ErrDimensionMismatch
	}

	seen := make([]bool, n)

	var (
		i int
		v int
	)
	for i = 0; i < n; i++ {
		v = tr[i]
		if v < 0 || v >= n {
			return ErrDimensionMismatch
		}
		if seen[v] {
			return ErrDimensionMismatch
		}
		seen[v] = true
	}

	return nil
}

// TourCost sums the directed edge costs along a closed tour, re-reading
// the matrix through the bounds-checked accessor so callers can verify a
// Result independently of the search.
//
// Complexity: O(n) time, O(1) space.
func TourCost(m *matrix.Dense, tr []int) (matrix.Weight, error) {
	if m == nil {
		return 0, ErrNilMatrix
	}
	if len(tr) < 2 {
		return 0, ErrDimensionMismatch
	}

	var (
		sum matrix.Weight
		w   matrix.Weight
		err error
		i   int
	)
	for i = 0; i+1 < len(tr); i++ {
		w, err = m.At(tr[i], tr[i+1])
		if err != nil {
			return 0, err
		}
		sum += w
	}

	return sum, nil
}
