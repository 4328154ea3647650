package dijkstra

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func table(dist []float64, anc []int) []NodeState {
	nodes := make([]NodeState, len(dist))
	for i := range nodes {
		nodes[i] = NodeState{Index: i, Settled: true, TentativeDistance: dist[i], Ancestor: anc[i]}
	}

	return nodes
}

func TestReconstructPath(t *testing.T) {
	inf := math.Inf(1)

	tests := []struct {
		name     string
		dist     []float64
		anc      []int
		src, dst int
		want     []int
		broken   bool
	}{
		{"chain", []float64{0, 1, 2}, []int{NoAncestor, 0, 1}, 0, 2, []int{0, 1, 2}, false},
		{"source is zero index", []float64{0, 3}, []int{NoAncestor, 0}, 0, 1, []int{0, 1}, false},
		{"source not zero", []float64{4, 0, 7}, []int{1, NoAncestor, 0}, 1, 2, []int{1, 0, 2}, false},
		{"self", []float64{0, inf}, []int{NoAncestor, NoAncestor}, 0, 0, []int{0}, false},
		{"unreachable", []float64{0, inf}, []int{NoAncestor, NoAncestor}, 0, 1, []int{}, false},
		{"missing ancestor", []float64{0, 5, 2}, []int{NoAncestor, NoAncestor, 0}, 0, 1, nil, true},
		{"cycle", []float64{0, 1, 1}, []int{NoAncestor, 2, 1}, 0, 1, nil, true},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			got, err := reconstructPath(table(tc.dist, tc.anc), tc.src, tc.dst)
			if tc.broken {
				require.ErrorIs(t, err, errBrokenChain)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.want, got)
		})
	}
}

func TestNextUnsettled(t *testing.T) {
	inf := math.Inf(1)
	r := &runner{nodes: []NodeState{
		{Index: 0, TentativeDistance: 2},
		{Index: 1, TentativeDistance: 1, Settled: true},
		{Index: 2, TentativeDistance: 2},
		{Index: 3, TentativeDistance: inf},
	}}

	r.options = DefaultOptions()
	require.Equal(t, 2, r.nextUnsettled())

	r.options.TieBreak = TieBreakFirstScanned
	require.Equal(t, 0, r.nextUnsettled())

	for i := range r.nodes {
		r.nodes[i].Settled = true
	}
	require.Equal(t, -1, r.nextUnsettled())
}
