// Package matrix is the computational core of linalg: dense real matrices and
// the algorithms that take one or two of them (and optionally a scalar) and
// produce a numeric result.
//
// The matrix package provides:
//
//   - Dense, a row-major float64 matrix behind the Matrix interface, with
//     NewDense, NewFromRows and NewIdentity constructors.
//   - Validators for shape invariants (ValidateConformable, ValidateSquare,
//     ValidateRows) that run before any numeric work.
//   - Arithmetic: Add, Sub, Scale, Mul, Transpose.
//   - A shared Gaussian-elimination engine with partial pivoting that backs
//     Determinant, Inverse and IsSingular.
//   - Trace, QR (Householder) and Eigenvalues (closed forms for n ≤ 3,
//     unshifted QR iteration for larger matrices).
//
// Every operation is a pure function: operands are never mutated, every
// result is freshly allocated, and nothing is cached between calls, so any
// number of goroutines may call into the package concurrently.
//
// Errors are package sentinels (ErrShapeMismatch, ErrNonSquare, ErrSingular,
// ErrNoConvergence, ErrInvalidInput, ErrNonFinite, ErrOutOfRange) wrapped with
// the name of the failing operation; match them with errors.Is. No kernel
// returns NaN or ±Inf as a result: overflow is ErrNonFinite.
//
// Numeric policy is configured per call with functional options
// (WithEpsilon, WithEigenTolerance, WithMaxIterations, WithStrictConvergence).
//
// Intended for small matrices (up to a few dozen rows): all algorithms are
// straightforward O(n³).
package matrix
