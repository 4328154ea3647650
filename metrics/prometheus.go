// Package metrics exposes shortest-path computations to Prometheus.
//
// PrometheusObserver implements dijkstra.Observer. Metrics (namespace "pathfinder"):
//
//  1. computations_total (counter): calls by outcome.
//     Labels: outcome (ok, unreachable, empty_matrix, matrix_not_square,
//     invalid_matrix_element, invalid_source_node, invalid_destination_node, error).
//  2. computation_duration_seconds (histogram): validation + computation wall time.
//  3. graph_vertices (histogram): matrix order per call.
//  4. settled_vertices (histogram): vertices settled before the engine stopped.
//
// Usage:
//
//	reg := prometheus.NewRegistry()
//	obs := metrics.NewPrometheusObserver(reg)
//	res, err := dijkstra.ShortestPath(rows, 0, 5, dijkstra.WithObserver(obs))
//
// Thread-safe: Prometheus collectors are safe for concurrent use.
package metrics

import (
	"errors"
	"math"

	"github.com/katalvlaran/pathfinder/dijkstra"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Namespace prefixes every metric name.
const Namespace = "pathfinder"

// Outcome label values.
const (
	OutcomeOK                     = "ok"
	OutcomeUnreachable            = "unreachable"
	OutcomeEmptyMatrix            = "empty_matrix"
	OutcomeMatrixNotSquare        = "matrix_not_square"
	OutcomeInvalidMatrixElement   = "invalid_matrix_element"
	OutcomeInvalidSourceNode      = "invalid_source_node"
	OutcomeInvalidDestinationNode = "invalid_destination_node"
	OutcomeError                  = "error"
)

// vertexBuckets covers matrices from a handful up to a few thousand vertices.
var vertexBuckets = prometheus.ExponentialBuckets(1, 4, 7) // 1 .. 4096

// PrometheusObserver records one sample set per Observation.
type PrometheusObserver struct {
	computations *prometheus.CounterVec
	duration     prometheus.Histogram
	vertices     prometheus.Histogram
	settled      prometheus.Histogram
}

// NewPrometheusObserver creates and registers the computation metrics with reg.
// A nil reg uses prometheus.DefaultRegisterer. Registering twice on the same
// registry panics, as promauto does.
func NewPrometheusObserver(reg prometheus.Registerer) *PrometheusObserver {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	factory := promauto.With(reg)

	return &PrometheusObserver{
		computations: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "computations_total",
			Help:      "Shortest-path computations by outcome",
		}, []string{"outcome"}),
		duration: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: Namespace,
			Name:      "computation_duration_seconds",
			Help:      "Wall time of validation plus computation",
			Buckets:   prometheus.ExponentialBuckets(1e-6, 10, 8), // 1µs .. 10s
		}),
		vertices: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: Namespace,
			Name:      "graph_vertices",
			Help:      "Matrix order of each computation",
			Buckets:   vertexBuckets,
		}),
		settled: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: Namespace,
			Name:      "settled_vertices",
			Help:      "Vertices settled before the engine stopped",
			Buckets:   vertexBuckets,
		}),
	}
}

// ObserveComputation implements dijkstra.Observer.
func (p *PrometheusObserver) ObserveComputation(o dijkstra.Observation) {
	p.computations.WithLabelValues(Outcome(o.Err, o.Distance)).Inc()
	p.duration.Observe(o.Elapsed.Seconds())
	p.vertices.Observe(float64(o.Vertices))
	if o.Err == nil {
		p.settled.Observe(float64(o.Settled))
	}
}

// Outcome maps a computation result to its label value.
func Outcome(err error, distance float64) string {
	switch {
	case err == nil && math.IsInf(distance, 1):
		return OutcomeUnreachable
	case err == nil:
		return OutcomeOK
	case errors.Is(err, dijkstra.ErrEmptyMatrix):
		return OutcomeEmptyMatrix
	case errors.Is(err, dijkstra.ErrMatrixNotSquare):
		return OutcomeMatrixNotSquare
	case errors.Is(err, dijkstra.ErrInvalidMatrixElement):
		return OutcomeInvalidMatrixElement
	case errors.Is(err, dijkstra.ErrInvalidSourceNode):
		return OutcomeInvalidSourceNode
	case errors.Is(err, dijkstra.ErrInvalidDestinationNode):
		return OutcomeInvalidDestinationNode
	default:
		return OutcomeError
	}
}
