// SPDX-License-Identifier: MIT
// Package matrix provides core linear algebra primitives for array-based computations.
// Dense is a concrete, row-major implementation of the Matrix interface,
// storing elements in a flat slice for performance and cache friendliness.
package matrix

import (
	"fmt"
	"math"
	"strings"
)

// denseErrorf wraps an underlying error with Dense method context.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a row-major matrix of float64 values.
// r is rows, c is columns, and data holds r*c elements in row-major order.
type Dense struct {
	r, c int       // number of rows and columns
	data []float64 // flat backing storage, length == r*c
}

// NewDense creates an r×c Dense matrix initialized to zeros.
// Stage 1 (Validate): ensure rows and cols > 0.
// Stage 2 (Prepare): allocate flat backing slice.
// Complexity: O(r*c) time and memory.
func NewDense(rows, cols int) (*Dense, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("NewDense(%d,%d): %w", rows, cols, ErrInvalidInput)
	}

	return &Dense{r: rows, c: cols, data: make([]float64, rows*cols)}, nil
}

// NewFromRows builds a Dense from a row-major slice of rows.
// The input is validated (non-empty, rectangular, finite) and copied, so the
// caller may reuse rows afterwards.
//
// Errors:
//   - ErrInvalidInput for zero rows, an empty first row, ragged rows, NaN or ±Inf.
//
// Complexity: O(r*c).
func NewFromRows(rows [][]float64) (*Dense, error) {
	if err := ValidateRows(rows); err != nil {
		return nil, matrixErrorf(opFromRows, err)
	}
	r, c := len(rows), len(rows[0])
	m := &Dense{r: r, c: c, data: make([]float64, r*c)}
	for i, row := range rows {
		copy(m.data[i*c:(i+1)*c], row)
	}

	return m, nil
}

// NewIdentity returns I_n (ones on the diagonal, zeros elsewhere).
// Complexity: O(n^2) zeroing + O(n) diagonal writes.
func NewIdentity(n int) (*Dense, error) {
	I, err := NewDense(n, n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		I.data[i*n+i] = 1.0
	}

	return I, nil
}

// Rows returns the number of rows in the matrix.
func (m *Dense) Rows() int { return m.r }

// Cols returns the number of columns in the matrix.
func (m *Dense) Cols() int { return m.c }

// indexOf computes the flat index for (row, col) or returns ErrOutOfRange.
func (m *Dense) indexOf(method string, row, col int) (int, error) {
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return 0, denseErrorf(method, row, col, ErrOutOfRange)
	}

	return row*m.c + col, nil
}

// At retrieves the element at (row, col).
// Complexity: O(1).
func (m *Dense) At(row, col int) (float64, error) {
	idx, err := m.indexOf("At", row, col)
	if err != nil {
		return 0, err
	}

	return m.data[idx], nil
}

// Set assigns value v at (row, col). NaN and ±Inf are rejected with
// ErrInvalidInput so a Dense never holds non-finite values.
// Complexity: O(1).
func (m *Dense) Set(row, col int, v float64) error {
	idx, err := m.indexOf("Set", row, col)
	if err != nil {
		return err
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return denseErrorf("Set", row, col, ErrInvalidInput)
	}
	m.data[idx] = v

	return nil
}

// Clone returns a deep copy of the Dense matrix.
// Complexity: O(r*c) time and memory for copy.
func (m *Dense) Clone() Matrix { return m.clone() }

func (m *Dense) clone() *Dense {
	cp := make([]float64, len(m.data))
	copy(cp, m.data)

	return &Dense{r: m.r, c: m.c, data: cp}
}

// ToRows exports the matrix as a freshly allocated [][]float64.
// Complexity: O(r*c).
func (m *Dense) ToRows() [][]float64 {
	out := make([][]float64, m.r)
	for i := 0; i < m.r; i++ {
		row := make([]float64, m.c)
		copy(row, m.data[i*m.c:(i+1)*m.c])
		out[i] = row
	}

	return out
}

// row returns a view of row i (no copy). Internal kernels only.
func (m *Dense) row(i int) []float64 { return m.data[i*m.c : (i+1)*m.c] }

// swapRows exchanges rows i and j in place.
func (m *Dense) swapRows(i, j int) {
	if i == j {
		return
	}
	ri, rj := m.row(i), m.row(j)
	for k := range ri {
		ri[k], rj[k] = rj[k], ri[k]
	}
}

// maxAbs returns max |a_ij| over the leading cols columns.
func (m *Dense) maxAbs(cols int) float64 {
	var mx float64
	for i := 0; i < m.r; i++ {
		for _, v := range m.data[i*m.c : i*m.c+cols] {
			if a := math.Abs(v); a > mx {
				mx = a
			}
		}
	}

	return mx
}

// maxScaleExp keeps 2^k representable (max float64 < 2^1024).
const maxScaleExp = 1023

// pow2Scale returns the smallest power of two s = 2^k with s ≥ mx, and k.
// Dividing by s is exact, so kernels can work on entries in [-1, 1] and undo
// the scaling without rounding. Above 2^1023 the scale is capped and entries
// land in (-2, 2). A zero or non-finite mx yields (1, 0).
func pow2Scale(mx float64) (float64, int) {
	if mx == 0 || isNonFinite(mx) {
		return 1, 0
	}
	f, k := math.Frexp(mx)
	if f == 0.5 { // mx is itself a power of two
		k--
	}
	if k > maxScaleExp {
		k = maxScaleExp
	}

	return math.Ldexp(1, k), k
}

// scaled returns a copy of m with every entry divided by s.
func (m *Dense) scaled(s float64) *Dense {
	out := &Dense{r: m.r, c: m.c, data: make([]float64, len(m.data))}
	for i, v := range m.data {
		out.data[i] = v / s
	}

	return out
}

// finite reports whether every entry of m is finite.
func (m *Dense) finite() bool {
	for _, v := range m.data {
		if isNonFinite(v) {
			return false
		}
	}

	return true
}

// frobenius returns sqrt(Σ a_ij²).
func (m *Dense) frobenius() float64 {
	var s float64
	for _, v := range m.data {
		s += v * v
	}

	return math.Sqrt(s)
}

// String implements fmt.Stringer for easy debugging.
// Complexity: O(r*c) for string construction.
func (m *Dense) String() string {
	var sb strings.Builder
	for i := 0; i < m.r; i++ {
		sb.WriteByte('[')
		for j := 0; j < m.c; j++ {
			if j > 0 {
				sb.WriteString(", ")
			}
			fmt.Fprintf(&sb, "%g", m.data[i*m.c+j])
		}
		sb.WriteString("]\n")
	}

	return sb.String()
}

// asDense returns a *Dense view of m for read-only use by kernels.
// A *Dense is returned as-is (callers MUST NOT mutate it); any other
// implementation is copied once through At in fixed i→j order, rejecting
// NaN/±Inf with ErrInvalidInput.
// Complexity: O(1) for *Dense, O(r*c) otherwise.
func asDense(m Matrix) (*Dense, error) {
	if d, ok := m.(*Dense); ok {
		return d, nil
	}
	out, err := NewDense(m.Rows(), m.Cols())
	if err != nil {
		return nil, err
	}
	var v float64
	for i := 0; i < out.r; i++ {
		for j := 0; j < out.c; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, fmt.Errorf("At(%d,%d): %w", i, j, err)
			}
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return nil, fmt.Errorf("At(%d,%d): %w", i, j, ErrInvalidInput)
			}
			out.data[i*out.c+j] = v
		}
	}

	return out, nil
}
