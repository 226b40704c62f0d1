// SPDX-License-Identifier: MIT
// Package matrix provides universal operations on any Matrix implementation,
// including element-wise addition, subtraction, matrix multiplication,
// transpose, and scalar scaling. All functions perform strict fail-fast
// validation and return clear errors on dimension mismatches.
//
// Notes:
//   - Every kernel allocates a fresh *Dense result; operands are never mutated.
//   - Validation always precedes allocation and numeric work.

package matrix

import "fmt"

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opAdd         = "Add"
	opSub         = "Sub"
	opMul         = "Mul"
	opTranspose   = "Transpose"
	opScale       = "Scale"
	opFromRows    = "NewFromRows"
	opDeterminant = "Determinant"
	opInverse     = "Inverse"
	opTrace       = "Trace"
	opEigen       = "Eigenvalues"
	opQR          = "QR"
	opSingular    = "IsSingular"
	opAllClose    = "AllClose"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// The wrapper keeps a stable "Op: underlying" shape for uniform reporting.
// Use only when err != nil.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// finiteResult returns out unchanged, or ErrNonFinite tagged with opTag when
// some entry overflowed.
func finiteResult(out *Dense, opTag string) (*Dense, error) {
	if !out.finite() {
		return nil, matrixErrorf(opTag, ErrNonFinite)
	}

	return out, nil
}

// addSub computes elementwise out = a + sign*b for sign ∈ {+1, -1}.
// Internal helper for Add/Sub to share validation, allocation, and the loop.
//
// Errors:
//   - ErrInvalidInput  (nil operand).
//   - ErrShapeMismatch (shapes differ).
//   - ErrNonFinite     (a sum overflowed, e.g. 1e308 + 1e308).
//
// Complexity: Time O(r*c), Space O(r*c).
func addSub(a, b Matrix, sign float64, opTag string) (*Dense, error) {
	if err := ValidateBinary(a, b, Elementwise); err != nil {
		return nil, matrixErrorf(opTag, err)
	}
	da, err := asDense(a)
	if err != nil {
		return nil, matrixErrorf(opTag, err)
	}
	db, err := asDense(b)
	if err != nil {
		return nil, matrixErrorf(opTag, err)
	}

	out := &Dense{r: da.r, c: da.c, data: make([]float64, len(da.data))}
	for i := range out.data { // single flat walk 0..r*c-1
		out.data[i] = da.data[i] + sign*db.data[i]
	}

	return finiteResult(out, opTag)
}

// Add computes the element-wise sum C = A + B and returns a fresh Dense result.
// Complexity: O(r*c).
func Add(a, b Matrix) (*Dense, error) { return addSub(a, b, +1, opAdd) }

// Sub computes the element-wise difference C = A - B and returns a fresh Dense result.
// Complexity: O(r*c).
func Sub(a, b Matrix) (*Dense, error) { return addSub(a, b, -1, opSub) }

// Scale returns a new matrix whose elements are alpha * m[i,j].
// Any shape is accepted; a non-finite alpha is rejected with ErrInvalidInput
// and a product that overflows with ErrNonFinite.
// Complexity: O(r*c).
func Scale(m Matrix, alpha float64) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opScale, err)
	}
	if isNonFinite(alpha) {
		return nil, matrixErrorf(opScale, fmt.Errorf("alpha=%v: %w", alpha, ErrInvalidInput))
	}
	d, err := asDense(m)
	if err != nil {
		return nil, matrixErrorf(opScale, err)
	}

	out := &Dense{r: d.r, c: d.c, data: make([]float64, len(d.data))}
	for i, v := range d.data {
		out.data[i] = alpha * v
	}

	return finiteResult(out, opScale)
}

// Mul performs standard matrix multiplication C = A × B.
//
// Implementation:
//   - Stage 1: ValidateBinary(a, b, Product). Allocate C (a.Rows × b.Cols).
//   - Stage 2: i→k→j loop order: C[i,j] += A[i,k]·B[k,j]. Each C[i,j] is the
//     dot product of row i of A with column j of B; the k-middle order walks
//     B row-wise for cache friendliness without changing the summation order
//     per cell (k ascending).
//
// Errors:
//   - ErrInvalidInput, ErrShapeMismatch (a.Cols != b.Rows).
//   - ErrNonFinite when a product or partial sum overflows.
//
// Complexity:
//   - Time O(r·k·c), Space O(r·c).
func Mul(a, b Matrix) (*Dense, error) {
	if err := ValidateBinary(a, b, Product); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	da, err := asDense(a)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	db, err := asDense(b)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	return finiteResult(mulDense(da, db), opMul)
}

// mulDense multiplies conformable Dense operands without validation.
func mulDense(da, db *Dense) *Dense {
	rows, inner, cols := da.r, da.c, db.c
	out := &Dense{r: rows, c: cols, data: make([]float64, rows*cols)}
	var (
		i, k, j int
		aik     float64
		outRow  []float64
		bRow    []float64
	)
	for i = 0; i < rows; i++ {
		outRow = out.data[i*cols : (i+1)*cols]
		for k = 0; k < inner; k++ {
			aik = da.data[i*inner+k]
			if aik == 0 {
				continue // contributes nothing to row i
			}
			bRow = db.data[k*cols : (k+1)*cols]
			for j = 0; j < cols; j++ {
				outRow[j] += aik * bRow[j]
			}
		}
	}

	return out
}

// Transpose returns a new matrix with rows and columns swapped (mᵀ).
// Pure permutation: Transpose(Transpose(A)) equals A bit for bit.
// Complexity: O(r*c).
func Transpose(m Matrix) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	d, err := asDense(m)
	if err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}

	out := &Dense{r: d.c, c: d.r, data: make([]float64, len(d.data))}
	for i := 0; i < d.r; i++ {
		for j := 0; j < d.c; j++ {
			out.data[j*d.r+i] = d.data[i*d.c+j]
		}
	}

	return out, nil
}
