// Package problem turns externally supplied shortest-path queries into
// validated dijkstra inputs.
//
// A problem document carries the adjacency matrix and two vertex indices:
//
//	matrix:
//	  - [0, 2, 0]
//	  - [0, 0, 3]
//	  - [1, 0, 0]
//	source: 0
//	destination: 2
//
// Cells and indices are decoded as nullable numbers, so a document can be
// malformed in ways a [][]float64 cannot express: a null cell, a missing index,
// or a non-integral index such as 1.1. Resolve reports each of these with the
// matching dijkstra sentinel, in the same order dijkstra.Validate uses.
package problem

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"path/filepath"
	"strings"
	"time"

	"github.com/katalvlaran/pathfinder/dijkstra"
	"github.com/katalvlaran/pathfinder/matrix"
	"gopkg.in/yaml.v3"
)

var (
	// ErrDecode indicates that the input is not a well-formed problem document.
	ErrDecode = errors.New("problem: cannot decode input")

	// ErrUnknownFormat indicates an unsupported format name.
	ErrUnknownFormat = errors.New("problem: unknown format")
)

// Format names an input encoding.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ParseFormat accepts "json", "yaml" or "yml" (case-insensitive).
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
	}
}

// FormatFromPath picks YAML for .yaml/.yml files and JSON otherwise.
func FormatFromPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatJSON
	}
}

// Problem is one shortest-path query as decoded from JSON or YAML.
// nil means the value was absent or null.
type Problem struct {
	Matrix      [][]*float64 `json:"matrix" yaml:"matrix"`
	Source      *float64     `json:"source" yaml:"source"`
	Destination *float64     `json:"destination" yaml:"destination"`
}

// New builds a Problem from already typed values.
func New(rows [][]float64, source, destination int) Problem {
	var cells [][]*float64
	if rows != nil {
		cells = make([][]*float64, len(rows))
		for i, row := range rows {
			cells[i] = make([]*float64, len(row))
			for j := range row {
				v := row[j]
				cells[i][j] = &v
			}
		}
	}
	s, d := float64(source), float64(destination)

	return Problem{Matrix: cells, Source: &s, Destination: &d}
}

// ErrTrailingData indicates content after the first problem document.
var ErrTrailingData = errors.New("problem: trailing data after document")

// decoder is the subset shared by json.Decoder and yaml.Decoder.
type decoder interface {
	Decode(v any) error
}

// Decode reads exactly one problem document from r; anything after it,
// including a second document, fails with ErrDecode and ErrTrailingData.
// Unknown fields are rejected. Empty input decodes to the zero Problem,
// which Resolve reports as dijkstra.ErrEmptyMatrix.
func Decode(r io.Reader, format Format) (Problem, error) {
	var dec decoder
	switch format {
	case FormatJSON:
		jd := json.NewDecoder(r)
		jd.DisallowUnknownFields()
		dec = jd
	case FormatYAML:
		yd := yaml.NewDecoder(r)
		yd.KnownFields(true)
		dec = yd
	default:
		return Problem{}, fmt.Errorf("%w: %q", ErrUnknownFormat, string(format))
	}

	var p Problem
	err := dec.Decode(&p)
	if errors.Is(err, io.EOF) {
		return Problem{}, nil
	}
	if err != nil {
		return Problem{}, fmt.Errorf("%w (%s): %w", ErrDecode, format, err)
	}

	// The stream must end right after the document.
	var rest any
	if err = dec.Decode(&rest); !errors.Is(err, io.EOF) {
		return Problem{}, fmt.Errorf("%w (%s): %w", ErrDecode, format, ErrTrailingData)
	}

	return p, nil
}

// Resolve validates p and returns the Dense matrix with integral indices.
//
// Checks, first failure wins:
//  1. matrix present with at least one row (dijkstra.ErrEmptyMatrix).
//  2. square (dijkstra.ErrMatrixNotSquare).
//  3. no null, NaN or negative cell (dijkstra.ErrInvalidMatrixElement); .inf is allowed.
//  4. source present, integral, in [0, n) (dijkstra.ErrInvalidSourceNode).
//  5. destination present, integral, in [0, n) (dijkstra.ErrInvalidDestinationNode).
func (p Problem) Resolve() (*matrix.Dense, int, int, error) {
	// 1–3) Null cells become NaN so the shared element check rejects them;
	//      the error is then reworded to name the missing cell.
	rows := p.rows()
	m, err := dijkstra.ValidateMatrix(rows)
	if err != nil {
		if errors.Is(err, dijkstra.ErrInvalidMatrixElement) {
			if i, j, ok := p.firstMissingCell(); ok {
				return nil, 0, 0, fmt.Errorf("%w: cell (%d,%d) is missing", dijkstra.ErrInvalidMatrixElement, i, j)
			}
		}
		return nil, 0, 0, err
	}

	// 4–5) Indices.
	n := m.Rows()
	src, err := nodeIndex(p.Source, n, dijkstra.ErrInvalidSourceNode)
	if err != nil {
		return nil, 0, 0, err
	}
	dst, err := nodeIndex(p.Destination, n, dijkstra.ErrInvalidDestinationNode)
	if err != nil {
		return nil, 0, 0, err
	}

	return m, src, dst, nil
}

// Solve resolves p and runs the engine. Observers and loggers passed in opts
// also see resolution failures, timed from the start of Solve.
func (p Problem) Solve(opts ...dijkstra.Option) (dijkstra.Result, error) {
	start := time.Now()
	m, src, dst, err := p.Resolve()
	if err != nil {
		dijkstra.NewOptions(opts...).Reject(len(p.Matrix), time.Since(start), err)
		return dijkstra.Result{}, err
	}

	return dijkstra.Run(m, src, dst, opts...)
}

// rows converts the nullable cells into plain floats, null → NaN.
func (p Problem) rows() [][]float64 {
	if p.Matrix == nil {
		return nil
	}
	rows := make([][]float64, len(p.Matrix))
	for i, cells := range p.Matrix {
		rows[i] = make([]float64, len(cells))
		for j, c := range cells {
			if c == nil {
				rows[i][j] = math.NaN()
				continue
			}
			rows[i][j] = *c
		}
	}

	return rows
}

// firstMissingCell reports the first invalid cell in row-major order
// if, and only if, that cell is null.
func (p Problem) firstMissingCell() (int, int, bool) {
	for i, cells := range p.Matrix {
		for j, c := range cells {
			if c == nil {
				return i, j, true
			}
			if math.IsNaN(*c) || *c < 0 {
				return 0, 0, false
			}
		}
	}

	return 0, 0, false
}

// nodeIndex converts a decoded index into an int in [0, n).
func nodeIndex(v *float64, n int, kind error) (int, error) {
	if v == nil {
		return 0, fmt.Errorf("%w: missing", kind)
	}
	f := *v
	// Range first: it also rejects NaN/Inf and keeps the int conversion defined.
	if !(f >= 0 && f < float64(n)) {
		return 0, fmt.Errorf("%w: %g not in [0, %d)", kind, f, n)
	}
	if f != math.Trunc(f) {
		return 0, fmt.Errorf("%w: %g is not an integer", kind, f)
	}

	return int(f), nil
}
