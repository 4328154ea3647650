package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/pathfinder/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestDistanceClosure_Directed checks a small directed graph, including the
// asymmetric pair (0→1 vs 1→0) and an unreachable vertex.
func TestDistanceClosure_Directed(t *testing.T) {
	// 0→1(4), 0→2(1), 2→1(2), 1→0(10); vertex 3 isolated.
	m, err := matrix.NewFromRows([][]float64{
		{0, 4, 1, 0},
		{10, 0, 0, 0},
		{0, 2, 0, 0},
		{0, 0, 0, 0},
	})
	require.NoError(t, err)

	d, err := matrix.DistanceClosure(m)
	require.NoError(t, err)

	at := func(i, j int) float64 {
		v, err := d.At(i, j)
		require.NoError(t, err)
		return v
	}

	assert.Equal(t, 3.0, at(0, 1))  // 0→2→1
	assert.Equal(t, 10.0, at(1, 0)) // direct
	assert.Equal(t, 11.0, at(1, 2)) // 1→0→2
	assert.Equal(t, 0.0, at(3, 3))
	assert.True(t, math.IsInf(at(0, 3), 1))
	assert.True(t, math.IsInf(at(3, 0), 1))

	// Input untouched.
	v, err := m.At(0, 3)
	require.NoError(t, err)
	assert.Equal(t, 0.0, v)
}

// TestDistanceClosure_NonZeroDiagonal ensures self-loops never lengthen self distance.
func TestDistanceClosure_NonZeroDiagonal(t *testing.T) {
	m, err := matrix.NewFromRows([][]float64{{5, 1}, {1, 5}})
	require.NoError(t, err)

	d, err := matrix.DistanceClosure(m)
	require.NoError(t, err)

	v, _ := d.At(0, 0)
	assert.Equal(t, 0.0, v)
	v, _ = d.At(0, 1)
	assert.Equal(t, 1.0, v)
}

// TestDistanceClosure_Errors verifies validation sentinels surface through the wrapper.
func TestDistanceClosure_Errors(t *testing.T) {
	_, err := matrix.DistanceClosure(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)

	rect, err := matrix.NewFromRows([][]float64{{1, 2, 3}, {4, 5, 6}})
	require.NoError(t, err)
	_, err = matrix.DistanceClosure(rect)
	require.ErrorIs(t, err, matrix.ErrNonSquare)

	neg, err := matrix.NewFromRows([][]float64{{0, -1}, {1, 0}})
	require.NoError(t, err)
	_, err = matrix.DistanceClosure(neg)
	require.ErrorIs(t, err, matrix.ErrNegativeElement)
}
