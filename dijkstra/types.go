// File: types.go
// Role: sentinel errors, result and per-vertex types, TieBreak, Observer,
// and the functional options consumed by ShortestPath and Run.

package dijkstra

import (
	"errors"
	"log/slog"
	"math"
	"time"
)

// Sentinel errors returned by Validate, ShortestPath and Run.
var (
	// ErrEmptyMatrix indicates that the matrix is nil or has no rows.
	ErrEmptyMatrix = errors.New("dijkstra: matrix is empty")

	// ErrMatrixNotSquare indicates that some row length differs from the row count.
	ErrMatrixNotSquare = errors.New("dijkstra: matrix is not square")

	// ErrInvalidMatrixElement indicates a missing (NaN) or negative cell, -Inf included.
	ErrInvalidMatrixElement = errors.New("dijkstra: matrix contains invalid element")

	// ErrInvalidSourceNode indicates a missing, non-integral or out-of-range source index.
	ErrInvalidSourceNode = errors.New("dijkstra: invalid source node")

	// ErrInvalidDestinationNode indicates a missing, non-integral or out-of-range destination index.
	ErrInvalidDestinationNode = errors.New("dijkstra: invalid destination node")

	// ErrBadTieBreak is raised (via panic) by WithTieBreak for an unknown TieBreak value.
	ErrBadTieBreak = errors.New("dijkstra: unknown tie-break rule")
)

// NoAncestor marks a vertex without a predecessor: the source itself, or any
// vertex not (yet) reached. It can never collide with a valid vertex index.
const NoAncestor = -1

// NodeState is the per-vertex record of one computation.
// A fresh table is allocated for every call and never shared.
type NodeState struct {
	Index             int     // vertex position, immutable
	Settled           bool    // true once TentativeDistance is final
	TentativeDistance float64 // best known distance from source; +Inf until reached
	Ancestor          int     // predecessor on the best known path, or NoAncestor
}

// HasAncestor reports whether Ancestor points at a real vertex.
func (s NodeState) HasAncestor() bool {
	return s.Ancestor != NoAncestor
}

// Result is the answer of one shortest-path query.
//
// Distance is +Inf when destination is unreachable; Path is then empty (never nil).
// Nodes is nil unless WithNodeStates() was passed.
type Result struct {
	Distance float64
	Path     []int
	Nodes    []NodeState
}

// Reachable reports whether a finite path from source to destination exists.
func (r Result) Reachable() bool {
	return !math.IsInf(r.Distance, 1)
}

// TieBreak selects which unsettled vertex wins when several share the minimum
// tentative distance. The scan always runs in increasing index order.
type TieBreak int

const (
	// TieBreakLastScanned uses a "<=" comparison: the last equal minimum seen wins,
	// i.e. the highest index among ties.
	TieBreakLastScanned TieBreak = iota

	// TieBreakFirstScanned uses a strict "<" comparison: the lowest index among ties wins.
	TieBreakFirstScanned
)

// String returns the flag-friendly name of the rule.
func (t TieBreak) String() string {
	switch t {
	case TieBreakLastScanned:
		return "last"
	case TieBreakFirstScanned:
		return "first"
	default:
		return "unknown"
	}
}

// Observation summarizes one call for an Observer.
type Observation struct {
	Vertices int           // matrix order (row count of the raw input on validation failure)
	Settled  int           // vertices settled before the engine stopped
	Distance float64       // result distance; 0 on error
	Elapsed  time.Duration // wall time of validation + computation
	Err      error         // nil on success
}

// Observer receives exactly one Observation per ShortestPath/Run call.
// Implementations must be safe for concurrent use.
type Observer interface {
	ObserveComputation(Observation)
}

// ObserverFunc adapts a plain function to the Observer interface.
type ObserverFunc func(Observation)

// ObserveComputation calls f(o).
func (f ObserverFunc) ObserveComputation(o Observation) { f(o) }

// Options configures one shortest-path computation.
type Options struct {
	Exhaustive bool         // settle all vertices, not just up to the destination
	TieBreak   TieBreak     // tie rule for the minimum-distance scan
	NodeStates bool         // copy the final table into Result.Nodes
	Observer   Observer     // optional; nil disables observation
	Logger     *slog.Logger // never nil after DefaultOptions
}

// Option represents a functional option for configuring ShortestPath and Run.
type Option func(*Options)

// WithExhaustive makes the engine settle every vertex. The destination's
// distance and path are identical with or without it; only Result.Nodes and
// the amount of work differ.
func WithExhaustive() Option {
	return func(o *Options) {
		o.Exhaustive = true
	}
}

// WithTieBreak overrides the default TieBreakLastScanned rule.
// Panics with ErrBadTieBreak on an unknown value.
func WithTieBreak(t TieBreak) Option {
	return func(o *Options) {
		if t != TieBreakLastScanned && t != TieBreakFirstScanned {
			panic(ErrBadTieBreak.Error())
		}
		o.TieBreak = t
	}
}

// WithNodeStates requests a copy of the final NodeState table in Result.Nodes.
func WithNodeStates() Option {
	return func(o *Options) {
		o.NodeStates = true
	}
}

// WithObserver installs an Observer. A nil observer is ignored.
func WithObserver(obs Observer) Option {
	return func(o *Options) {
		if obs != nil {
			o.Observer = obs
		}
	}
}

// WithLogger routes debug traces to l. A nil logger keeps the discard logger.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// DefaultOptions returns an Options struct initialized with:
//   - Exhaustive: false (stop once the destination is settled).
//   - TieBreak:   TieBreakLastScanned.
//   - NodeStates: false.
//   - Observer:   nil.
//   - Logger:     a logger discarding every record.
func DefaultOptions() Options {
	return Options{
		Exhaustive: false,
		TieBreak:   TieBreakLastScanned,
		NodeStates: false,
		Observer:   nil,
		Logger:     slog.New(slog.DiscardHandler),
	}
}
