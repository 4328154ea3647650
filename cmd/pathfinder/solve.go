package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/katalvlaran/pathfinder/dijkstra"
	"github.com/katalvlaran/pathfinder/matrix"
	"github.com/katalvlaran/pathfinder/metrics"
	"github.com/katalvlaran/pathfinder/problem"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
)

// errVerifyMismatch is returned by --verify when the single-source answer
// disagrees with the all-pairs closure.
var errVerifyMismatch = errors.New("verification failed")

// solveConfig holds the flags of "pathfinder solve".
type solveConfig struct {
	InputFormat string `flag:"input-format" validate:"omitempty,oneof=json yaml yml"`
	Output      string `flag:"output" validate:"required,oneof=text json"`
	TieBreak    string `flag:"tie-break" validate:"required,oneof=last first"`
	Exhaustive  bool   `flag:"exhaustive"`
	Verify      bool   `flag:"verify"`
	MetricsOut  string `flag:"metrics-out"`
}

func (a *app) newSolveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "solve [file]",
		Short: "Compute the shortest path described by a problem document",
		Long: `Reads a problem document with fields "matrix", "source" and "destination"
from file (or stdin when omitted or "-") and prints the shortest distance and path.

The format is taken from --input-format, else from the file extension
(.yaml/.yml → YAML, anything else → JSON). Stdin defaults to JSON.`,
		Args: cobra.MaximumNArgs(1),
		RunE: a.runSolve,
	}

	f := cmd.Flags()
	f.StringVar(&a.solve.InputFormat, "input-format", "", "input format: json, yaml (default: by extension)")
	f.StringVarP(&a.solve.Output, "output", "o", "text", "output format: text, json")
	f.StringVar(&a.solve.TieBreak, "tie-break", dijkstra.TieBreakLastScanned.String(), "equal-distance rule: last, first")
	f.BoolVar(&a.solve.Exhaustive, "exhaustive", false, "settle every vertex instead of stopping at the destination")
	f.BoolVar(&a.solve.Verify, "verify", false, "cross-check the distance against a Floyd–Warshall closure")
	f.StringVar(&a.solve.MetricsOut, "metrics-out", "", "write Prometheus metrics in text format to this file")

	return cmd
}

func (a *app) runSolve(cmd *cobra.Command, args []string) error {
	cfg := a.solve
	if err := a.checkFlags(cfg); err != nil {
		return err
	}

	// 1) Read the problem.
	path := "-"
	if len(args) == 1 {
		path = args[0]
	}
	p, err := a.readProblem(cmd.InOrStdin(), path, cfg.InputFormat)
	if err != nil {
		return err
	}

	// 2) Engine options.
	opts := []dijkstra.Option{dijkstra.WithLogger(a.logger)}
	if cfg.Exhaustive {
		opts = append(opts, dijkstra.WithExhaustive())
	}
	if cfg.TieBreak == dijkstra.TieBreakFirstScanned.String() {
		opts = append(opts, dijkstra.WithTieBreak(dijkstra.TieBreakFirstScanned))
	}
	var reg *prometheus.Registry
	if cfg.MetricsOut != "" {
		reg = prometheus.NewRegistry()
		opts = append(opts, dijkstra.WithObserver(metrics.NewPrometheusObserver(reg)))
	}

	// 3) Solve; metrics are written whether or not the query succeeded.
	res, err := p.Solve(opts...)
	if reg != nil {
		if werr := prometheus.WriteToTextfile(cfg.MetricsOut, reg); werr != nil {
			return errors.Join(err, fmt.Errorf("write metrics: %w", werr))
		}
		a.logger.Info("metrics written", "path", cfg.MetricsOut)
	}
	if err != nil {
		return err
	}

	// 4) Optional cross-check.
	if cfg.Verify {
		if err = a.verify(p, res); err != nil {
			return err
		}
	}

	// 5) Render.
	return render(cmd.OutOrStdout(), cfg.Output, res)
}

// readProblem opens path ("-" = stdin) and decodes it.
func (a *app) readProblem(stdin io.Reader, path, formatFlag string) (problem.Problem, error) {
	format := problem.FormatJSON
	if path != "-" {
		format = problem.FormatFromPath(path)
	}
	if formatFlag != "" {
		f, err := problem.ParseFormat(formatFlag)
		if err != nil {
			return problem.Problem{}, err
		}
		format = f
	}

	r := stdin
	if path != "-" {
		file, err := os.Open(path)
		if err != nil {
			return problem.Problem{}, fmt.Errorf("open input: %w", err)
		}
		defer file.Close()
		r = file
	}
	a.logger.Debug("reading problem", "path", path, "format", string(format))

	return problem.Decode(r, format)
}

// verify recomputes the distance with matrix.DistanceClosure.
func (a *app) verify(p problem.Problem, res dijkstra.Result) error {
	m, src, dst, err := p.Resolve()
	if err != nil {
		return err
	}
	closure, err := matrix.DistanceClosure(m)
	if err != nil {
		return err
	}
	want, err := closure.At(src, dst)
	if err != nil {
		return err
	}
	if want != res.Distance {
		return fmt.Errorf("%w: dijkstra=%g floyd-warshall=%g", errVerifyMismatch, res.Distance, want)
	}
	a.logger.Info("distance verified", "source", src, "destination", dst, "distance", want)

	return nil
}
