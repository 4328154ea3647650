// Package dijkstra provides a strict, deterministic implementation of Dijkstra's
// single-source shortest-path algorithm over a weighted, directed graph given as
// a square adjacency matrix.
//
// Overview:
//
//   - The graph is an n×n matrix of non-negative weights; matrix[i][j] > 0 is an
//     edge i→j of that weight, matrix[i][j] == 0 means "no edge".
//   - ShortestPath validates the input, computes the distance from source to
//     destination, and rebuilds one shortest path from ancestor pointers.
//   - Each call allocates its own NodeState table and keeps nothing afterwards.
//
// Determinism:
//
//   - The next vertex to settle is found by scanning indices in increasing order.
//     With the default TieBreakLastScanned rule the comparison is "<=", so the last
//     vertex among equal minima wins; TieBreakFirstScanned switches to "<".
//   - Relaxation uses strict "<", so among equal-length paths the one discovered
//     first keeps its ancestor.
//
// Termination:
//
//   - A zero cell means "no edge", so only weights > 0 are relaxed. A +Inf
//     weight is relaxed but can never improve a distance.
//   - By default the outer loop stops as soon as the destination is settled, or
//     as soon as the nearest unsettled vertex is at +Inf (nothing left is reachable).
//     WithExhaustive() settles every vertex; the destination's answer is the same.
//   - source == destination short-circuits to {0, [source]} without relaxing.
//
// Complexity:
//
//   - Time:  O(V²): at most V selections, each an O(V) scan plus an O(V) row relaxation.
//   - Space: O(V) for the node table, plus O(V²) for the validated matrix copy.
//
// Options (see DefaultOptions):
//
//   - WithExhaustive: settle every vertex instead of stopping at the destination.
//   - WithTieBreak:   which of several equally-near vertices is settled first.
//   - WithNodeStates: return the final per-vertex table in Result.Nodes.
//   - WithObserver:   receive one Observation per call (metrics hook).
//   - WithLogger:     debug-level trace via log/slog.
//
// Error handling (sentinel errors, first failure wins):
//
//   - ErrEmptyMatrix:            matrix nil or zero rows.
//   - ErrMatrixNotSquare:        some row length != row count.
//   - ErrInvalidMatrixElement:   NaN (missing) or negative cell; +Inf is a valid,
//     never-improving weight.
//   - ErrInvalidSourceNode:      source outside [0, n).
//   - ErrInvalidDestinationNode: destination outside [0, n).
//
// Errors are wrapped with context (row, cell, index); match them with errors.Is.
// Element errors additionally wrap the matrix package sentinel
// (matrix.ErrNegativeElement or matrix.ErrNaNInf).
//
// API reference:
//
//	func ShortestPath(rows [][]float64, source, destination int, opts ...Option) (Result, error)
//	func Run(m *matrix.Dense, source, destination int, opts ...Option) (Result, error)
//	func Validate(rows [][]float64, source, destination int) (*matrix.Dense, error)
//
// Example:
//
//	res, err := dijkstra.ShortestPath(rows, 0, 1)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(res.Distance, res.Path)
//
// Thread safety:
//
//   - No package-level mutable state; concurrent calls are safe.
//   - Run reads the caller's *matrix.Dense without copying; do not mutate it concurrently.
package dijkstra
