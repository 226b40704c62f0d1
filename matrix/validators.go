// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Provide a single, canonical source of truth for shape and input checks.
//   - Keep kernels minimal by delegating nil/shape/square checks here.
//   - Return sentinel errors tagged with the validator name so call sites can
//     wrap uniformly with their operation tag.
//
// Determinism & Performance:
//   - All checks are pure and allocate nothing beyond the error value.
//   - Every check runs before any numeric work begins.

package matrix

import (
	"fmt"
	"math"
)

// Conformance selects the dimension rule checked by ValidateConformable.
type Conformance int

const (
	// Elementwise requires identical shapes (Add, Sub).
	Elementwise Conformance = iota

	// Product requires a.Cols == b.Rows (Mul).
	Product
)

// String returns the rule name used in error messages.
func (c Conformance) String() string {
	switch c {
	case Elementwise:
		return "elementwise"
	case Product:
		return "product"
	default:
		return fmt.Sprintf("Conformance(%d)", int(c))
	}
}

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures the matrix reference is non-nil and has a positive
// shape. A typed-nil *Dense is treated as nil.
//
// Returns ErrInvalidInput on violation.
// Complexity: O(1).
func ValidateNotNil(m Matrix) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrInvalidInput)
	}
	if d, ok := m.(*Dense); ok && d == nil {
		return validatorErrorf("ValidateNotNil", ErrInvalidInput)
	}
	if m.Rows() <= 0 || m.Cols() <= 0 {
		return validatorErrorf("ValidateNotNil: empty", ErrInvalidInput)
	}

	return nil
}

// ValidateConformable checks that a and b are dimension-compatible under rule.
//
// Inputs: two non-nil matrices (callers run ValidateNotNil first).
// Errors: ErrShapeMismatch with the offending shapes in the message.
// Complexity: O(1).
func ValidateConformable(a, b Matrix, rule Conformance) error {
	switch rule {
	case Elementwise:
		if a.Rows() != b.Rows() || a.Cols() != b.Cols() {
			return fmt.Errorf("ValidateConformable(%s): %dx%d vs %dx%d: %w",
				rule, a.Rows(), a.Cols(), b.Rows(), b.Cols(), ErrShapeMismatch)
		}
	case Product:
		if a.Cols() != b.Rows() {
			return fmt.Errorf("ValidateConformable(%s): %dx%d × %dx%d: %w",
				rule, a.Rows(), a.Cols(), b.Rows(), b.Cols(), ErrShapeMismatch)
		}
	default:
		return validatorErrorf("ValidateConformable: unknown rule", ErrInvalidInput)
	}

	return nil
}

// ValidateSquare checks that m is square (Rows == Cols).
//
// Errors: ErrNonSquare.
// Complexity: O(1).
// AI-Hints: required by Determinant, Inverse, Trace and Eigenvalues.
func ValidateSquare(m Matrix) error {
	if m.Rows() != m.Cols() {
		return fmt.Errorf("ValidateSquare: %dx%d: %w", m.Rows(), m.Cols(), ErrNonSquare)
	}

	return nil
}

// ValidateBinary is the composite NotNil(a) → NotNil(b) → Conformable(rule).
func ValidateBinary(a, b Matrix, rule Conformance) error {
	if err := ValidateNotNil(a); err != nil {
		return validatorErrorf("ValidateBinary: a", err)
	}
	if err := ValidateNotNil(b); err != nil {
		return validatorErrorf("ValidateBinary: b", err)
	}

	return ValidateConformable(a, b, rule)
}

// ValidateSquareNonNil is the composite NotNil → Square.
func ValidateSquareNonNil(m Matrix) error {
	if err := ValidateNotNil(m); err != nil {
		return err
	}

	return ValidateSquare(m)
}

// ValidateRows checks a row-major literal before it becomes a Dense:
// at least one row, at least one column, identical row lengths, finite values.
//
// Errors: ErrInvalidInput with the first offending position.
// Complexity: O(r*c).
func ValidateRows(rows [][]float64) error {
	if len(rows) == 0 {
		return validatorErrorf("ValidateRows: no rows", ErrInvalidInput)
	}
	cols := len(rows[0])
	if cols == 0 {
		return validatorErrorf("ValidateRows: empty row 0", ErrInvalidInput)
	}
	for i, row := range rows {
		if len(row) != cols {
			return fmt.Errorf("ValidateRows: row %d has %d entries, want %d: %w", i, len(row), cols, ErrInvalidInput)
		}
		for j, v := range row {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return fmt.Errorf("ValidateRows: non-finite entry at (%d,%d): %w", i, j, ErrInvalidInput)
			}
		}
	}

	return nil
}

// IsSquare reports whether m is non-nil and square.
func IsSquare(m Matrix) bool {
	return ValidateSquareNonNil(m) == nil
}
