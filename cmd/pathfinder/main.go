// Command pathfinder answers single-source shortest-path queries over
// adjacency matrices stored as JSON or YAML problem documents.
//
//	pathfinder solve graph.yaml
//	pathfinder solve --output json --verify < graph.json
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "pathfinder:", err)
		os.Exit(1)
	}
}
