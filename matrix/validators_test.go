// SPDX-License-Identifier: MIT
// Package matrix_test contains unit tests for the matrix validators.
package matrix_test

import (
	"errors"
	"math"
	"testing"

	"github.com/katalvlaran/pathfinder/matrix"
	"github.com/stretchr/testify/require"
)

// mustRows builds a Dense from literal rows or fails the test.
func mustRows(t *testing.T, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewFromRows(rows)
	require.NoError(t, err)

	return m
}

// TestValidateSquare covers nil inputs, square and non-square cases.
func TestValidateSquare(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		m    *matrix.Dense
		want error
	}{
		{"nil", nil, matrix.ErrNilMatrix},
		{"1x1", mustRows(t, [][]float64{{0}}), nil},
		{"3x3", mustRows(t, [][]float64{{0, 1, 2}, {1, 0, 3}, {2, 3, 0}}), nil},
		{"2x3", mustRows(t, [][]float64{{1, 2, 3}, {4, 5, 6}}), matrix.ErrNonSquare},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			err := matrix.ValidateSquare(tc.m)
			if tc.want == nil {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			require.Truef(t, errors.Is(err, tc.want), "expected errors.Is(%v, %v)", err, tc.want)
		})
	}
}

// TestValidateNonNegative covers NaN/Inf, negatives and the first-offender rule.
func TestValidateNonNegative(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		rows    [][]float64
		want    error
		wantMsg string
	}{
		{"all zero", [][]float64{{0, 0}, {0, 0}}, nil, ""},
		{"positive", [][]float64{{0, 2.5}, {1, 0}}, nil, ""},
		{"negative", [][]float64{{1, 2}, {-1, 4}}, matrix.ErrNegativeElement, "(1,0)"},
		{"NaN", [][]float64{{math.NaN(), 1}, {1, 0}}, matrix.ErrNaNInf, "(0,0)"},
		{"+Inf", [][]float64{{0, math.Inf(1)}, {1, 0}}, matrix.ErrNaNInf, "(0,1)"},
		{"first offender wins", [][]float64{{0, -2}, {math.NaN(), 0}}, matrix.ErrNegativeElement, "(0,1)"},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			err := matrix.ValidateNonNegative(mustRows(t, tc.rows))
			if tc.want == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tc.want)
			require.Contains(t, err.Error(), tc.wantMsg)
		})
	}

	require.ErrorIs(t, matrix.ValidateNonNegative(nil), matrix.ErrNilMatrix)
}

// TestValidateWeights accepts +Inf as a weight and rejects NaN and negatives.
func TestValidateWeights(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		rows    [][]float64
		want    error
		wantMsg string
	}{
		{"zero and positive", [][]float64{{0, 2.5}, {1, 0}}, nil, ""},
		{"+Inf", [][]float64{{0, math.Inf(1)}, {math.Inf(1), 0}}, nil, ""},
		{"NaN", [][]float64{{0, 1}, {math.NaN(), 0}}, matrix.ErrNaNInf, "(1,0)"},
		{"-Inf", [][]float64{{0, math.Inf(-1)}, {1, 0}}, matrix.ErrNegativeElement, "(0,1)"},
		{"negative", [][]float64{{1, 2}, {-1, 4}}, matrix.ErrNegativeElement, "(1,0)"},
		{"first offender wins", [][]float64{{0, math.Inf(1), -2}, {math.NaN(), 0, 0}, {0, 0, 0}}, matrix.ErrNegativeElement, "(0,2)"},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			err := matrix.ValidateWeights(mustRows(t, tc.rows))
			if tc.want == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tc.want)
			require.Contains(t, err.Error(), tc.wantMsg)
		})
	}

	require.ErrorIs(t, matrix.ValidateWeights(nil), matrix.ErrNilMatrix)
}
