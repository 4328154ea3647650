// Package matrix offers the dense storage backing every shortest-path query.
//
// The matrix package provides:
//
//   - Dense: a row-major float64 matrix over one contiguous buffer, with
//     bounds-checked At/Set, zero-copy Row views and a square check.
//   - Validators (ValidateNotNil, ValidateSquare, ValidateFinite,
//     ValidateNonNegative, ValidateWeights) returning package sentinels with
//     cell context. ValidateWeights is the edge-weight policy: NaN and
//     negatives fail, +Inf is an edge that never shortens a path.
//   - DistanceClosure: Floyd–Warshall all-pairs distances, used to
//     cross-check single-source answers.
//
// Adjacency convention: a zero at (i,j) with i != j means "no edge from i to j",
// never a zero-weight edge. Matrices are best for dense or small graphs where
// O(V²) memory is acceptable.
//
// Errors are sentinels (see errors.go); match them with errors.Is.
package matrix
