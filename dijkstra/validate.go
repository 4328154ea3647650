package dijkstra

import (
	"fmt"

	"github.com/katalvlaran/pathfinder/matrix"
)

// Validate runs every input check in order and returns the first failure:
//  1. rows non-nil with at least one row (ErrEmptyMatrix).
//  2. every row as long as the row count (ErrMatrixNotSquare).
//  3. every cell finite and non-negative (ErrInvalidMatrixElement).
//  4. source in [0, n) (ErrInvalidSourceNode).
//  5. destination in [0, n) (ErrInvalidDestinationNode).
//
// On success it returns a validated Dense copy of rows; rows itself is not retained.
// Complexity: O(n²).
func Validate(rows [][]float64, source, destination int) (*matrix.Dense, error) {
	m, err := ValidateMatrix(rows)
	if err != nil {
		return nil, err
	}
	if err = ValidateNode(source, m.Rows(), ErrInvalidSourceNode); err != nil {
		return nil, err
	}
	if err = ValidateNode(destination, m.Rows(), ErrInvalidDestinationNode); err != nil {
		return nil, err
	}

	return m, nil
}

// ValidateMatrix performs checks 1–3 of Validate.
// Callers that receive node indices in a looser form (e.g. decoded numbers)
// use it together with ValidateNode to keep the same failure order.
func ValidateMatrix(rows [][]float64) (*matrix.Dense, error) {
	// 1) Non-empty.
	if len(rows) == 0 {
		return nil, ErrEmptyMatrix
	}

	// 2) Square: every row, not just the first.
	n := len(rows)
	var i int
	var row []float64
	for i, row = range rows {
		if len(row) != n {
			return nil, fmt.Errorf("%w: row %d has %d columns, want %d", ErrMatrixNotSquare, i, len(row), n)
		}
	}

	// 3) Elements: copy into contiguous storage, then scan.
	m, err := matrix.NewFromRows(rows)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMatrixNotSquare, err)
	}
	if err = matrix.ValidateWeights(m); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidMatrixElement, err)
	}

	return m, nil
}

// ValidateNode checks that node lies in [0, n). kind is the sentinel to wrap,
// ErrInvalidSourceNode or ErrInvalidDestinationNode.
func ValidateNode(node, n int, kind error) error {
	if node < 0 || node >= n {
		return fmt.Errorf("%w: %d not in [0, %d)", kind, node, n)
	}

	return nil
}

// validateDense applies the Validate contract to an already built matrix.
func validateDense(m *matrix.Dense, source, destination int) error {
	if m == nil || m.Rows() == 0 {
		return ErrEmptyMatrix
	}
	if err := matrix.ValidateSquare(m); err != nil {
		return fmt.Errorf("%w: %w", ErrMatrixNotSquare, err)
	}
	if err := matrix.ValidateWeights(m); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidMatrixElement, err)
	}
	if err := ValidateNode(source, m.Rows(), ErrInvalidSourceNode); err != nil {
		return err
	}

	return ValidateNode(destination, m.Rows(), ErrInvalidDestinationNode)
}
