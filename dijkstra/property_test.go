package dijkstra_test

import (
	"fmt"
	"math"
	"math/rand"
	"testing"

	"github.com/katalvlaran/pathfinder/dijkstra"
	"github.com/katalvlaran/pathfinder/matrix"
	"github.com/stretchr/testify/require"
)

// randomRows builds an n×n matrix with small integer weights, so that every
// path sum is exact in float64. density is the probability of an edge.
func randomRows(rng *rand.Rand, n int, density float64) [][]float64 {
	rows := make([][]float64, n)
	for i := range rows {
		rows[i] = make([]float64, n)
		for j := range rows[i] {
			if i != j && rng.Float64() < density {
				rows[i][j] = float64(1 + rng.Intn(9))
			}
		}
	}

	return rows
}

// TestShortestPath_MatchesFloydWarshall compares every (source, destination)
// answer with the all-pairs closure and checks the reported path itself.
func TestShortestPath_MatchesFloydWarshall(t *testing.T) {
	rng := rand.New(rand.NewSource(20240229))

	variants := []struct {
		name string
		opts []dijkstra.Option
	}{
		{"default", nil},
		{"exhaustive", []dijkstra.Option{dijkstra.WithExhaustive()}},
		{"first-scanned", []dijkstra.Option{dijkstra.WithTieBreak(dijkstra.TieBreakFirstScanned)}},
	}

	for trial := 0; trial < 40; trial++ {
		n := 1 + rng.Intn(9)
		density := []float64{0.15, 0.35, 0.7}[trial%3]
		rows := randomRows(rng, n, density)

		m, err := matrix.NewFromRows(rows)
		require.NoError(t, err)
		closure, err := matrix.DistanceClosure(m)
		require.NoError(t, err)

		t.Run(fmt.Sprintf("trial=%d/n=%d", trial, n), func(t *testing.T) {
			for _, v := range variants {
				for src := 0; src < n; src++ {
					for dst := 0; dst < n; dst++ {
						res, err := dijkstra.ShortestPath(rows, src, dst, v.opts...)
						require.NoError(t, err)

						want, _ := closure.At(src, dst)
						require.Equal(t, want, res.Distance, "%s %d→%d", v.name, src, dst)
						checkPath(t, rows, src, dst, res)
					}
				}
			}
		})
	}
}

// checkPath asserts the structural path properties:
// empty iff unreachable; starts at src; ends at dst; every hop is an edge;
// hop weights sum to Distance.
func checkPath(t *testing.T, rows [][]float64, src, dst int, res dijkstra.Result) {
	t.Helper()

	if math.IsInf(res.Distance, 1) {
		require.NotNil(t, res.Path)
		require.Empty(t, res.Path, "%d→%d", src, dst)
		return
	}
	require.NotEmpty(t, res.Path, "%d→%d", src, dst)
	require.Equal(t, src, res.Path[0])
	require.Equal(t, dst, res.Path[len(res.Path)-1])

	sum := 0.0
	for i := 0; i+1 < len(res.Path); i++ {
		w := rows[res.Path[i]][res.Path[i+1]]
		require.Greater(t, w, 0.0, "hop %d→%d is not an edge", res.Path[i], res.Path[i+1])
		sum += w
	}
	require.Equal(t, res.Distance, sum, "%d→%d path %v", src, dst, res.Path)
}

// TestShortestPath_InfiniteWeightIsNoEdge replaces missing edges with +Inf
// weights and expects identical results, node tables and closures.
func TestShortestPath_InfiniteWeightIsNoEdge(t *testing.T) {
	rng := rand.New(rand.NewSource(7))

	for trial := 0; trial < 25; trial++ {
		n := 1 + rng.Intn(8)
		rows := randomRows(rng, n, 0.4)
		withInf := make([][]float64, n)
		for i := range rows {
			withInf[i] = append([]float64(nil), rows[i]...)
			for j := range withInf[i] {
				if withInf[i][j] == 0 && rng.Intn(2) == 0 {
					withInf[i][j] = math.Inf(1)
				}
			}
		}

		for _, opts := range [][]dijkstra.Option{
			{dijkstra.WithNodeStates()},
			{dijkstra.WithNodeStates(), dijkstra.WithExhaustive()},
		} {
			for src := 0; src < n; src++ {
				for dst := 0; dst < n; dst++ {
					want, err := dijkstra.ShortestPath(rows, src, dst, opts...)
					require.NoError(t, err)
					got, err := dijkstra.ShortestPath(withInf, src, dst, opts...)
					require.NoError(t, err)
					require.Equal(t, want, got, "trial=%d %d→%d", trial, src, dst)
				}
			}
		}

		m, err := matrix.NewFromRows(rows)
		require.NoError(t, err)
		mInf, err := matrix.NewFromRows(withInf)
		require.NoError(t, err)
		want, err := matrix.DistanceClosure(m)
		require.NoError(t, err)
		got, err := matrix.DistanceClosure(mInf)
		require.NoError(t, err)
		require.Equal(t, want.String(), got.String(), "trial=%d", trial)
	}
}
