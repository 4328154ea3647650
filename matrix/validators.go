// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for common validation checks.
//  - Keep callers minimal by delegating nil/shape/element checks here.
//
// Determinism & Performance:
//  - All checks are pure, deterministic and allocate nothing on success.
//  - Element scans run O(r*c) in row-major order; the first offending cell wins.

package matrix

import (
	"fmt"
	"math"
)

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures the matrix reference is non-nil.
//
// Returns ErrNilMatrix if m == nil.
// Complexity: O(1).
func ValidateNotNil(m *Dense) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateSquare ensures m is non-nil and has Rows() == Cols().
//
// Returns ErrNilMatrix or ErrNonSquare.
// Complexity: O(1).
func ValidateSquare(m *Dense) error {
	if err := ValidateNotNil(m); err != nil {
		return err
	}
	if m.r != m.c {
		return fmt.Errorf("ValidateSquare: %dx%d: %w", m.r, m.c, ErrNonSquare)
	}

	return nil
}

// ValidateFinite checks a single value against the numeric policy.
// (i, j) are used only for error context.
//
// Returns ErrNaNInf for NaN, +Inf or -Inf.
// Complexity: O(1).
func ValidateFinite(v float64, i, j int) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return fmt.Errorf("ValidateFinite: (%d,%d)=%g: %w", i, j, v, ErrNaNInf)
	}

	return nil
}

// ValidateNonNegative ensures every element of m is finite and >= 0.
//
// Returns ErrNilMatrix, ErrNaNInf or ErrNegativeElement, reporting the first
// offending cell in row-major order.
// Complexity: O(r*c).
func ValidateNonNegative(m *Dense) error {
	if err := ValidateNotNil(m); err != nil {
		return err
	}

	var idx int
	var v float64
	for idx, v = range m.data {
		if err := ValidateFinite(v, idx/m.c, idx%m.c); err != nil {
			return err
		}
		if v < 0 {
			return fmt.Errorf("ValidateNonNegative: (%d,%d)=%g: %w", idx/m.c, idx%m.c, v, ErrNegativeElement)
		}
	}

	return nil
}

// ValidateWeights ensures every element of m is usable as an edge weight:
// not NaN and not negative. +Inf is accepted and acts as an edge that never
// shortens a path; -Inf is negative.
//
// Returns ErrNilMatrix, ErrNaNInf (NaN only) or ErrNegativeElement, reporting
// the first offending cell in row-major order.
// Complexity: O(r*c).
func ValidateWeights(m *Dense) error {
	if err := ValidateNotNil(m); err != nil {
		return err
	}

	var idx int
	var v float64
	for idx, v = range m.data {
		if math.IsNaN(v) {
			return fmt.Errorf("ValidateWeights: (%d,%d)=NaN: %w", idx/m.c, idx%m.c, ErrNaNInf)
		}
		if v < 0 {
			return fmt.Errorf("ValidateWeights: (%d,%d)=%g: %w", idx/m.c, idx%m.c, v, ErrNegativeElement)
		}
	}

	return nil
}
