// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Dense all-pairs shortest distances (Floyd–Warshall) with deterministic loop order.
//   - Serves as an independent oracle for single-source answers.
//
// Contract:
//   - Input uses the adjacency convention: off-diagonal 0 means "no edge".
//   - Output uses the distance convention: +Inf means "no path", diagonal is 0.

package matrix

import (
	"fmt"
	"math"
)

const opDistanceClosure = "DistanceClosure"

// DistanceClosure returns a new n×n matrix whose (i,j) entry is the length of
// the shortest directed path from i to j in the weighted adjacency matrix m.
//
// Stage 1 (Validate): m non-nil, square, no NaN, all elements >= 0 (+Inf allowed).
// Stage 2 (Prepare): clone m; off-diagonal 0 -> +Inf; diagonal -> 0.
// Stage 3 (Execute): in-place closure with fixed k → i → j order.
//
// m is never mutated.
// Complexity: Time O(n^3), Space O(n^2) for the result.
func DistanceClosure(m *Dense) (*Dense, error) {
	if err := ValidateSquare(m); err != nil {
		return nil, fmt.Errorf("%s: %w", opDistanceClosure, err)
	}
	if err := ValidateWeights(m); err != nil {
		return nil, fmt.Errorf("%s: %w", opDistanceClosure, err)
	}

	d := m.Clone()
	initDistancesInPlace(d)
	floydWarshallInPlace(d)

	return d, nil
}

// initDistancesInPlace converts adjacency (0 / w) -> distance matrix in-place:
//
//	diag = 0; off-diagonal 0 -> +Inf; non-zero -> unchanged.
//
// Requires a square matrix (checked by the caller).
// Complexity: O(n^2).
func initDistancesInPlace(d *Dense) {
	n := d.r
	var i, j int
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			switch {
			case i == j:
				d.data[i*n+j] = 0
			case d.data[i*n+j] == 0:
				d.data[i*n+j] = math.Inf(1)
			}
		}
	}
}

// floydWarshallInPlace runs the APSP closure on a square *Dense in-place.
//
// Policy (assumed by callers):
//   - +Inf denotes "no path" off-diagonal.
//   - The diagonal MUST be 0 before calling.
//
// Time: O(n^3); Extra space: O(1). No allocations inside the hot loops.
func floydWarshallInPlace(d *Dense) {
	n := d.r
	data := d.data

	var (
		k, i, j      int     // loop indices
		baseK, baseI int     // row base offsets for K and I in the flat buffer
		ik, kj       float64 // distances d[i,k], d[k,j]
		cand         float64 // candidate path length via k
	)

	for k = 0; k < n; k++ { // outer: pick intermediate vertex k
		baseK = k * n
		for i = 0; i < n; i++ { // middle: source vertex i
			ik = data[i*n+k]
			if math.IsInf(ik, 1) { // i cannot reach k
				continue
			}
			baseI = i * n
			for j = 0; j < n; j++ { // inner: destination vertex j
				kj = data[baseK+j]
				if math.IsInf(kj, 1) { // k cannot reach j
					continue
				}
				cand = ik + kj
				if cand < data[baseI+j] { // strict improvement only
					data[baseI+j] = cand
				}
			}
		}
	}
}
