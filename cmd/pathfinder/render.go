package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/pathfinder/dijkstra"
)

// jsonResult is the --output json shape. Distance is null when unreachable,
// since JSON has no infinity.
type jsonResult struct {
	Distance  *float64 `json:"distance"`
	Reachable bool     `json:"reachable"`
	Path      []int    `json:"path"`
}

// render writes res in the requested output format ("text" or "json").
func render(w io.Writer, format string, res dijkstra.Result) error {
	if format == "json" {
		out := jsonResult{Reachable: res.Reachable(), Path: res.Path}
		if out.Path == nil {
			out.Path = []int{}
		}
		if out.Reachable {
			d := res.Distance
			out.Distance = &d
		}
		return json.NewEncoder(w).Encode(out)
	}

	path := "(none)"
	if len(res.Path) > 0 {
		parts := make([]string, len(res.Path))
		for i, v := range res.Path {
			parts[i] = strconv.Itoa(v)
		}
		path = strings.Join(parts, " -> ")
	}
	_, err := fmt.Fprintf(w, "distance: %s\npath: %s\n", strconv.FormatFloat(res.Distance, 'g', -1, 64), path)

	return err
}
