package matrix

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

// Weight is the integer cost of one directed edge. It is a defined type
// (not an alias) so that accidental mixing with plain ints in callers is
// caught at compile time.
type Weight int64

// Infinity is the saturation sentinel for "no tour found yet". Accepted
// edge costs are strictly below it, leaving a full bit of headroom above
// the sentinel so bound comparisons against Infinity never wrap.
const Infinity Weight = math.MaxInt64 >> 1

// ErrInvalidDimensions indicates that the requested matrix order is too
// small for a TSP instance (n must be at least 2).
var ErrInvalidDimensions = errors.New("matrix: order must be >= 2")

// ErrIndexOutOfBounds indicates that a row or column index is outside the
// valid [0..n-1] range.
var ErrIndexOutOfBounds = errors.New("matrix: index out of bounds")

// ErrNegativeWeight indicates a negative edge cost.
var ErrNegativeWeight = errors.New("matrix: negative edge cost")

// ErrNonZeroDiagonal indicates a non-zero cost from a city to itself.
var ErrNonZeroDiagonal = errors.New("matrix: non-zero diagonal entry")

// ErrWeightOverflow indicates a cost at or above the Infinity sentinel.
var ErrWeightOverflow = errors.New("matrix: edge cost exceeds Infinity")

// denseErrorf wraps an underlying sentinel with Dense method context.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a row-major square matrix of directed edge costs.
// n is the order (number of cities); data holds n*n Weights.
type Dense struct {
	n    int
	data []Weight
}

// NewDense creates an n×n Dense matrix initialized to zeros.
//
// Complexity: O(n²) time and memory.
func NewDense(n int) (*Dense, error) {
	// A TSP instance needs at least two cities.
	if n < 2 {
		return nil, ErrInvalidDimensions
	}

	return &Dense{n: n, data: make([]Weight, n*n)}, nil
}

// N returns the matrix order (number of cities).
// Complexity: O(1).
func (m *Dense) N() int { return m.n }

// Rows returns the number of rows; equal to N for a square matrix.
// Complexity: O(1).
func (m *Dense) Rows() int { return m.n }

// Cols returns the number of columns; equal to N for a square matrix.
// Complexity: O(1).
func (m *Dense) Cols() int { return m.n }

// indexOf computes the flat index for (row, col) or reports the offending
// coordinate via ErrIndexOutOfBounds.
// Complexity: O(1).
func (m *Dense) indexOf(method string, row, col int) (int, error) {
	if row < 0 || row >= m.n {
		return 0, denseErrorf(method, row, col, ErrIndexOutOfBounds)
	}
	if col < 0 || col >= m.n {
		return 0, denseErrorf(method, row, col, ErrIndexOutOfBounds)
	}

	return row*m.n + col, nil
}

// At retrieves the cost of the directed edge row→col.
// Complexity: O(1).
func (m *Dense) At(row, col int) (Weight, error) {
	idx, err := m.indexOf("At", row, col)
	if err != nil {
		return 0, err
	}

	return m.data[idx], nil
}

// Set assigns the cost of the directed edge row→col.
//
// Validation mirrors the reader: negative costs, non-zero diagonal
// entries and values at or above Infinity are rejected, so a Dense built
// through Set satisfies the same contract as one built through Read.
//
// Complexity: O(1).
func (m *Dense) Set(row, col int, w Weight) error {
	idx, err := m.indexOf("Set", row, col)
	if err != nil {
		return err
	}
	if w < 0 {
		return denseErrorf("Set", row, col, ErrNegativeWeight)
	}
	if w >= Infinity {
		return denseErrorf("Set", row, col, ErrWeightOverflow)
	}
	if row == col && w != 0 {
		return denseErrorf("Set", row, col, ErrNonZeroDiagonal)
	}
	m.data[idx] = w

	return nil
}

// Cost is the unchecked fast-path accessor used by the solver's hot loops
// after validation has succeeded. Callers must guarantee indices in range.
// Complexity: O(1).
func (m *Dense) Cost(row, col int) Weight { return m.data[row*m.n+col] }

// Clone returns a deep copy of the matrix.
// Complexity: O(n²) time and memory.
func (m *Dense) Clone() *Dense {
	cp := make([]Weight, len(m.data))
	copy(cp, m.data)

	return &Dense{n: m.n, data: cp}
}

// String implements fmt.Stringer for tests and debugging: one row per
// line, costs separated by single spaces.
func (m *Dense) String() string {
	var (
		b    strings.Builder
		i, j int
	)
	for i = 0; i < m.n; i++ {
		for j = 0; j < m.n; j++ {
			if j > 0 {
				b.WriteByte(' ')
			}
			fmt.Fprintf(&b, "%d", m.data[i*m.n+j])
		}
		b.WriteByte('\n')
	}

	return b.String()
}
