// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the matrix
// package. All kernels MUST return these sentinels (optionally wrapped with an
// operation tag) and tests MUST check them via errors.Is. No kernel panics on
// user-triggered error conditions; panics are reserved for programmer errors
// in option constructors.

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and to allow
// easy grepping across logs. Kernels wrap with matrixErrorf(op, ErrX) so the
// caller sees "Inverse: matrix: singular matrix" and errors.Is still matches.
//
// ERROR PRIORITY (documented, enforced in tests):
// invalid input (nil/empty/ragged/NaN) -> shape mismatch / non-square
// -> numeric failures (singular, no convergence, non-finite result).

var (
	// ErrInvalidInput is returned for malformed operands: nil matrices, empty
	// row sets, ragged rows, NaN or ±Inf entries, non-positive dimensions.
	ErrInvalidInput = errors.New("matrix: invalid input")

	// ErrShapeMismatch indicates incompatible dimensions between operands,
	// e.g., Add/Sub with different shapes, or Mul where a.Cols != b.Rows.
	ErrShapeMismatch = errors.New("matrix: shape mismatch")

	// ErrNonSquare signals that a square matrix was required but the input wasn't.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrSingular is returned when elimination finds no pivot above the
	// tolerance in some column (inverse of a singular matrix).
	ErrSingular = errors.New("matrix: singular matrix")

	// ErrNoConvergence indicates that the iterative eigenvalue estimator did not
	// reach quasi-triangular form within the iteration cap. It is only returned
	// under WithStrictConvergence; otherwise the estimate carries Converged=false.
	ErrNoConvergence = errors.New("matrix: eigenvalue iteration did not converge")

	// ErrNonFinite is returned when finite operands produce a result outside
	// the float64 range (±Inf or NaN), e.g. Scale of 1e308 by 10. Kernels never
	// report such a value as a success.
	ErrNonFinite = errors.New("matrix: result is not finite")

	// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
	// Public indexers (At/Set) MUST return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")
)
