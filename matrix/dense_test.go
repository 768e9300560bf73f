// Package matrix_test validates the Dense cost matrix primitive.
// Focus:
//  1. Constructor and accessor contracts (order, bounds, sentinels).
//  2. Set validation: negativity, diagonal, saturation sentinel.
//  3. Clone independence and String formatting.
package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dkoshelev/atsp/matrix"
)

func TestNewDense_OrderContract(t *testing.T) {
	// Orders below 2 are not TSP instances.
	for _, n := range []int{-1, 0, 1} {
		_, err := matrix.NewDense(n)
		require.ErrorIs(t, err, matrix.ErrInvalidDimensions, "n=%d", n)
	}

	m, err := matrix.NewDense(3)
	require.NoError(t, err)
	require.Equal(t, 3, m.N())
	require.Equal(t, 3, m.Rows())
	require.Equal(t, 3, m.Cols())

	// Fresh matrices are zero-initialized.
	w, err := m.At(2, 1)
	require.NoError(t, err)
	require.Equal(t, matrix.Weight(0), w)
}

func TestDense_BoundsChecked(t *testing.T) {
	m, err := matrix.NewDense(2)
	require.NoError(t, err)

	cases := [][2]int{{-1, 0}, {0, -1}, {2, 0}, {0, 2}, {2, 2}}
	for _, c := range cases {
		_, err = m.At(c[0], c[1])
		require.ErrorIs(t, err, matrix.ErrIndexOutOfBounds, "At(%d,%d)", c[0], c[1])

		err = m.Set(c[0], c[1], 1)
		require.ErrorIs(t, err, matrix.ErrIndexOutOfBounds, "Set(%d,%d)", c[0], c[1])
	}
}

func TestDense_SetValidation(t *testing.T) {
	m, err := matrix.NewDense(3)
	require.NoError(t, err)

	// Negative costs are rejected.
	require.ErrorIs(t, m.Set(0, 1, -1), matrix.ErrNegativeWeight)

	// Costs at or above the saturation sentinel are rejected.
	require.ErrorIs(t, m.Set(0, 1, matrix.Infinity), matrix.ErrWeightOverflow)

	// Non-zero diagonal entries are rejected; explicit zero is fine.
	require.ErrorIs(t, m.Set(1, 1, 7), matrix.ErrNonZeroDiagonal)
	require.NoError(t, m.Set(1, 1, 0))

	// A valid directed cost round-trips; asymmetry is allowed.
	require.NoError(t, m.Set(0, 1, 42))
	require.NoError(t, m.Set(1, 0, 7))
	w, err := m.At(0, 1)
	require.NoError(t, err)
	require.Equal(t, matrix.Weight(42), w)
	w, err = m.At(1, 0)
	require.NoError(t, err)
	require.Equal(t, matrix.Weight(7), w)
}

func TestDense_CloneIsIndependent(t *testing.T) {
	m, err := matrix.NewDense(2)
	require.NoError(t, err)
	require.NoError(t, m.Set(0, 1, 5))

	cp := m.Clone()
	require.NoError(t, cp.Set(0, 1, 9))

	w, err := m.At(0, 1)
	require.NoError(t, err)
	require.Equal(t, matrix.Weight(5), w, "mutating the clone must not touch the original")
}

func TestDense_String(t *testing.T) {
	m, err := matrix.NewDense(2)
	require.NoError(t, err)
	require.NoError(t, m.Set(0, 1, 5))
	require.NoError(t, m.Set(1, 0, 7))

	require.Equal(t, "0 5\n7 0\n", m.String())
}
