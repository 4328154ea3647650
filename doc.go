// Package pathfinder answers single-source shortest-path queries over
// directed graphs given as square adjacency matrices of non-negative weights.
//
// 🚀 What is pathfinder?
//
//	A small, dependency-light toolkit built around one query:
//		• Dense matrix storage & validators (square, finite, non-negative)
//		• Dijkstra with an array frontier, strict validation & path recovery
//		• Floyd–Warshall distance closure for cross-checking answers
//		• JSON/YAML problem documents with nullable cells & indices
//		• Prometheus observer for computation counts and latencies
//		• A cobra CLI: pathfinder solve graph.yaml
//
// Everything is organized under four subpackages:
//
//	matrix/   : Dense storage, validators, DistanceClosure
//	dijkstra/ : ShortestPath, Run, options, error taxonomy
//	problem/  : decoding and resolving problem documents
//	metrics/  : Prometheus-backed dijkstra.Observer
//
// Matrix convention: cell (i,j) is the weight of the edge i → j, and 0 means
// "no edge". The diagonal is ignored.
//
//	    0 ──1──► 1
//	    │        │
//	    4        2
//	    ▼        ▼
//	    2 ◄──────┘             shortest 0 → 2 is 0,1,2 with distance 3
//
//	go get github.com/katalvlaran/pathfinder
package pathfinder
