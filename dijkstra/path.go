package dijkstra

import (
	"errors"
	"fmt"
	"math"
)

// errBrokenChain reports an ancestor chain that does not lead back to the
// source. The engine never produces one; the check bounds the walk.
var errBrokenChain = errors.New("dijkstra: ancestor chain does not reach source")

// reconstructPath walks ancestor pointers from destination back to source.
//
//   - Unreachable destination (+Inf): empty, non-nil path.
//   - source == destination: [source], no ancestor is dereferenced.
//   - Otherwise: [source, ..., destination].
//
// The walk is bounded by len(nodes) steps.
// Complexity: O(path length).
func reconstructPath(nodes []NodeState, source, destination int) ([]int, error) {
	if math.IsInf(nodes[destination].TentativeDistance, 1) {
		return []int{}, nil
	}
	if source == destination {
		return []int{source}, nil
	}

	// Collect destination → source, then reverse in place.
	rev := make([]int, 0, 8)
	v := destination
	for v != source {
		if !nodes[v].HasAncestor() || len(rev) >= len(nodes) {
			return nil, fmt.Errorf("%w: stuck at vertex %d", errBrokenChain, v)
		}
		rev = append(rev, v)
		v = nodes[v].Ancestor
	}
	rev = append(rev, source)

	var i, j int
	for i, j = 0, len(rev)-1; i < j; i, j = i+1, j-1 {
		rev[i], rev[j] = rev[j], rev[i]
	}

	return rev, nil
}
