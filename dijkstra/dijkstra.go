// File: dijkstra.go
// Role: entry points (ShortestPath, Run) and the per-call runner.
//
// Complexity: O(V²) time, O(V) for the node table plus O(V²) for the
// validated matrix copy.

package dijkstra

import (
	"math"
	"time"

	"github.com/katalvlaran/pathfinder/matrix"
)

// ShortestPath computes the shortest directed distance and one shortest path
// from source to destination over the weighted adjacency matrix rows.
//
// Returns:
//
//   - Result.Distance: minimal sum of weights, or +Inf if destination is unreachable.
//   - Result.Path:     vertices from source to destination inclusive; empty if unreachable.
//   - err:             one of the sentinel errors (see Validate), or nil.
//
// No work is done before validation succeeds. The call holds no shared state
// and is safe to run concurrently with any other call.
func ShortestPath(rows [][]float64, source, destination int, opts ...Option) (Result, error) {
	start := time.Now()
	cfg := NewOptions(opts...)

	m, err := Validate(rows, source, destination)
	if err != nil {
		cfg.report(Observation{Vertices: len(rows), Elapsed: time.Since(start), Err: err}, source, destination)
		return Result{}, err
	}

	return execute(m, source, destination, cfg, start)
}

// Run is ShortestPath for a matrix that is already stored as a Dense.
// It re-checks the Validate contract on m (same sentinels, same order) but
// does not copy it; m must not be mutated while Run executes.
func Run(m *matrix.Dense, source, destination int, opts ...Option) (Result, error) {
	start := time.Now()
	cfg := NewOptions(opts...)

	if err := validateDense(m, source, destination); err != nil {
		vertices := 0
		if m != nil {
			vertices = m.Rows()
		}
		cfg.report(Observation{Vertices: vertices, Elapsed: time.Since(start), Err: err}, source, destination)
		return Result{}, err
	}

	return execute(m, source, destination, cfg, start)
}

// NewOptions applies opts over DefaultOptions. Layers that reject a query
// before it reaches Run use it with Options.Reject to report the same way.
func NewOptions(opts ...Option) Options {
	cfg := DefaultOptions()
	var opt Option
	for _, opt = range opts {
		opt(&cfg)
	}

	return cfg
}

// execute runs the engine on a validated matrix and assembles the Result.
func execute(m *matrix.Dense, source, destination int, cfg Options, start time.Time) (Result, error) {
	r := &runner{
		m:           m,
		n:           m.Rows(),
		source:      source,
		destination: destination,
		options:     cfg,
	}
	r.init()

	// Trivial query: the source is its own shortest path.
	if source == destination && !cfg.Exhaustive {
		r.settle(source)
	} else if err := r.process(); err != nil {
		cfg.report(Observation{Vertices: r.n, Settled: r.settled, Elapsed: time.Since(start), Err: err}, source, destination)
		return Result{}, err
	}

	path, err := reconstructPath(r.nodes, source, destination)
	if err != nil {
		cfg.report(Observation{Vertices: r.n, Settled: r.settled, Elapsed: time.Since(start), Err: err}, source, destination)
		return Result{}, err
	}

	res := Result{
		Distance: r.nodes[destination].TentativeDistance,
		Path:     path,
	}
	if cfg.NodeStates {
		res.Nodes = append([]NodeState(nil), r.nodes...)
	}

	cfg.report(Observation{
		Vertices: r.n,
		Settled:  r.settled,
		Distance: res.Distance,
		Elapsed:  time.Since(start),
	}, source, destination)

	return res, nil
}

// report forwards o to the observer and logger, if any.
func (o Options) report(obs Observation, source, destination int) {
	if o.Observer != nil {
		o.Observer.ObserveComputation(obs)
	}
	if obs.Err != nil {
		o.Logger.Debug("shortest path rejected",
			"vertices", obs.Vertices,
			"source", source,
			"destination", destination,
			"error", obs.Err)
		return
	}
	o.Logger.Debug("shortest path computed",
		"vertices", obs.Vertices,
		"source", source,
		"destination", destination,
		"distance", obs.Distance,
		"settled", obs.Settled,
		"elapsed", obs.Elapsed)
}

// Reject reports a query refused before the engine ran: one Observation
// carrying err, and a debug record. elapsed covers the caller's own checks.
func (o Options) Reject(vertices int, elapsed time.Duration, err error) {
	if o.Observer != nil {
		o.Observer.ObserveComputation(Observation{Vertices: vertices, Elapsed: elapsed, Err: err})
	}
	o.Logger.Debug("shortest path rejected", "vertices", vertices, "error", err)
}

// runner holds the mutable state for a single execution.
type runner struct {
	m           *matrix.Dense // validated input; read-only here
	n           int           // matrix order
	source      int
	destination int
	options     Options
	nodes       []NodeState // one entry per vertex, indexed by vertex
	settled     int         // number of settled vertices
}

// init allocates the node table: every vertex unsettled, at +Inf, without
// ancestor, except the source at distance 0.
func (r *runner) init() {
	r.nodes = make([]NodeState, r.n)
	var i int
	for i = range r.nodes {
		r.nodes[i] = NodeState{
			Index:             i,
			TentativeDistance: math.Inf(1),
			Ancestor:          NoAncestor,
		}
	}
	r.nodes[r.source].TentativeDistance = 0
}

// settle marks u as final.
func (r *runner) settle(u int) {
	r.nodes[u].Settled = true
	r.settled++
}

// process is the outer loop. Each turn settles exactly one vertex, so it
// terminates after at most n turns.
func (r *runner) process() error {
	var u int
	for {
		// 1) Pick the nearest unsettled vertex; none left means we are done.
		u = r.nextUnsettled()
		if u < 0 {
			return nil
		}

		// 2) Its distance is now final.
		r.settle(u)

		// 3) The nearest unsettled vertex is unreachable, so all remaining ones are.
		//    Relaxing from +Inf can never improve anything.
		if math.IsInf(r.nodes[u].TentativeDistance, 1) {
			if !r.options.Exhaustive {
				return nil
			}
			continue
		}

		// 4) Destination settled: its distance and ancestor chain can no longer change.
		if u == r.destination && !r.options.Exhaustive {
			return nil
		}

		// 5) Relax every outgoing edge of u.
		if err := r.relax(u); err != nil {
			return err
		}
	}
}

// nextUnsettled scans the table in increasing index order and returns the
// unsettled vertex with minimal tentative distance, or -1 when every vertex
// is settled. Ties follow options.TieBreak.
func (r *runner) nextUnsettled() int {
	best := -1
	bestDist := math.Inf(1)

	var i int
	var d float64
	for i = range r.nodes {
		if r.nodes[i].Settled {
			continue
		}
		d = r.nodes[i].TentativeDistance
		switch r.options.TieBreak {
		case TieBreakFirstScanned:
			if best < 0 || d < bestDist {
				best, bestDist = i, d
			}
		default:
			if d <= bestDist {
				best, bestDist = i, d
			}
		}
	}

	return best
}

// relax examines row u and improves every unsettled neighbor v for which
// dist[u] + w(u,v) is strictly smaller than dist[v].
func (r *runner) relax(u int) error {
	row, err := r.m.Row(u)
	if err != nil {
		return err
	}

	du := r.nodes[u].TentativeDistance
	var v int
	var w, cand float64
	for v, w = range row {
		// Zero means "no edge"; settled vertices are final.
		if w <= 0 || r.nodes[v].Settled {
			continue
		}
		cand = du + w
		// Strict "<": an equal-length alternative never replaces the first ancestor found.
		if cand < r.nodes[v].TentativeDistance {
			r.nodes[v].TentativeDistance = cand
			r.nodes[v].Ancestor = u
		}
	}

	return nil
}
