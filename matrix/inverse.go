// SPDX-License-Identifier: MIT

package matrix

// Inverse computes A⁻¹ by Gauss–Jordan elimination with partial pivoting.
//
// Implementation:
//   - Stage 1: Validate non-nil and square. Build [A | I].
//   - Stage 2: Forward elimination via the shared engine (same pivoting and
//     singularity detection as Determinant).
//   - Stage 3: Back-substitute upward: for k = n-1..0 normalize row k by its
//     pivot, then clear column k in every row above. The engine works on
//     A/s (s a power of two), so the right block holds s·A⁻¹; dividing by s
//     is exact.
//
// Behavior highlights:
//   - No partial or approximate inverse is ever returned: any pivot failure
//     yields ErrSingular.
//   - The input is read-only; the result is a fresh n×n Dense.
//
// Errors:
//   - ErrInvalidInput, ErrNonSquare, ErrSingular.
//   - ErrNonFinite when an entry of A⁻¹ exceeds the float64 range
//     (e.g. [[1e-310]]).
//
// Complexity:
//   - Time O(n³), Space O(n²).
//
// Notes:
//   - A·Inverse(A) ≈ I within a tolerance that grows with the condition number;
//     compare with AllClose using a tolerance scaled to max|a_ij|.
func Inverse(m Matrix, opts ...Option) (*Dense, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	d, err := asDense(m)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	n := d.r
	I, err := NewIdentity(n)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}

	o := gatherOptions(opts...)
	e := eliminate(d, I, o.eps)
	if e.singular {
		return nil, matrixErrorf(opInverse, ErrSingular)
	}

	// Stage 3: backward Gauss–Jordan sweep on the upper-triangular left block.
	w := e.work
	width := w.c
	var (
		i, j, k    int
		inv, f     float64
		rowK, rowI []float64
	)
	for k = n - 1; k >= 0; k-- {
		rowK = w.row(k)
		inv = 1 / rowK[k]
		for j = k; j < width; j++ {
			rowK[j] *= inv
		}
		rowK[k] = 1 // exact unit pivot
		for i = 0; i < k; i++ {
			rowI = w.row(i)
			if f = rowI[k]; f == 0 {
				continue
			}
			for j = k; j < width; j++ {
				rowI[j] -= f * rowK[j]
			}
			rowI[k] = 0
		}
	}

	// Extract the right block, undoing the engine's scaling.
	out := &Dense{r: n, c: n, data: make([]float64, n*n)}
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			out.data[i*n+j] = w.data[i*width+n+j] / e.scale
		}
	}

	return finiteResult(out, opInverse)
}
