// SPDX-License-Identifier: MIT

package compute

import (
	"errors"

	"github.com/katalvlaran/linalg/matrix"
)

// ErrorKind classifies a failed computation for the transport layer.
type ErrorKind string

// Error kinds reported in Response.Kind.
const (
	KindShapeMismatch      ErrorKind = "ShapeMismatch"
	KindNonSquare          ErrorKind = "NonSquare"
	KindSingularMatrix     ErrorKind = "SingularMatrix"
	KindConvergenceFailure ErrorKind = "ConvergenceFailure"
	KindInvalidInput       ErrorKind = "InvalidInput"
	KindInternal           ErrorKind = "Internal"
)

// KindOf maps an error from the core or from this package onto an ErrorKind.
// nil maps to "", anything unrecognized to KindInternal. A result outside the
// float64 range (matrix.ErrNonFinite) is InvalidInput: the operands are too
// large (or too small) for the operation, and rescaling them fixes it.
func KindOf(err error) ErrorKind {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, matrix.ErrShapeMismatch):
		return KindShapeMismatch
	case errors.Is(err, matrix.ErrNonSquare):
		return KindNonSquare
	case errors.Is(err, matrix.ErrSingular):
		return KindSingularMatrix
	case errors.Is(err, matrix.ErrNoConvergence):
		return KindConvergenceFailure
	case errors.Is(err, matrix.ErrInvalidInput),
		errors.Is(err, matrix.ErrNonFinite),
		errors.Is(err, matrix.ErrOutOfRange),
		errors.Is(err, ErrUnknownOperation),
		errors.Is(err, ErrMissingOperand),
		errors.Is(err, ErrMalformedRequest):
		return KindInvalidInput
	default:
		return KindInternal
	}
}

// IsClientError reports whether the caller can fix the failure by changing
// the request shape (ShapeMismatch, NonSquare, InvalidInput). Singular and
// non-convergent inputs are well-formed requests with no answer.
func (k ErrorKind) IsClientError() bool {
	return k == KindShapeMismatch || k == KindNonSquare || k == KindInvalidInput
}

func (k ErrorKind) String() string { return string(k) }
