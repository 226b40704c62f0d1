// SPDX-License-Identifier: MIT
// Package matrix: the shared Gaussian-elimination primitive.
//
// Purpose:
//   - One forward-elimination routine with partial pivoting underlies both
//     Determinant (n > 2) and Inverse, so singularity detection and rounding
//     behavior are identical across the two.
//
// Determinism:
//   - Pivot search scans rows k..n-1 in ascending order and keeps the FIRST
//     row holding the maximal |w[i][k]|; ties never reorder rows needlessly.

package matrix

import "math"

// elimination is the state left behind by forward elimination.
//
// work is the n×(n+extra) working matrix: its left n×n block is a/scale,
// upper triangular up to column failedCol (or entirely, when singular is
// false). scale = 2^scaleExp bounds max|a_ij|, so the left block lies in
// [-1, 1]; the augmented columns are not scaled. swaps counts row exchanges;
// pivotTol is the absolute threshold on the scaled block.
type elimination struct {
	work      *Dense
	n         int
	swaps     int
	scale     float64
	scaleExp  int
	pivotTol  float64
	singular  bool
	failedCol int
}

// sign returns (-1)^swaps.
func (e *elimination) sign() float64 {
	if e.swaps%2 == 1 {
		return -1
	}

	return 1
}

// pivot returns the k-th diagonal entry of the reduced (scaled) left block.
func (e *elimination) pivot(k int) float64 { return e.work.data[k*e.work.c+k] }

// determinant returns (−1)^swaps · scaleⁿ · Π pivots of a non-singular
// elimination. Mantissa and exponent are accumulated apart (math.Frexp), so
// only a final value outside the float64 range overflows, to ±Inf.
func (e *elimination) determinant() float64 {
	mant, exp := e.sign(), e.n*e.scaleExp
	var f float64
	var x int
	for k := 0; k < e.n; k++ {
		f, x = math.Frexp(e.pivot(k))
		mant, exp = mant*f, exp+x
		mant, x = math.Frexp(mant)
		exp += x
	}

	return math.Ldexp(mant, exp)
}

// eliminate runs forward elimination with partial pivoting on a copy of a,
// optionally augmented with the columns of aug (same row count as a).
//
// Implementation:
//   - Stage 1: Build work = [a/scale | aug] with scale the power of two just
//     above max|a_ij|; pivotTol = eps·max|a_ij|/scale.
//   - Stage 2: For k = 0..n-1:
//     p = argmax_{i≥k} |w[i][k]|; if |w[p][k]| ≤ pivotTol → singular at column k, stop.
//     Swap rows p and k (swaps++ when p != k).
//     For i > k: f = w[i][k]/w[k][k]; w[i][j] -= f·w[k][j] for j > k; w[i][k] = 0 exactly.
//
// Inputs:
//   - a:   square n×n *Dense (never mutated).
//   - aug: optional n×m *Dense appended on the right (never mutated); nil for none.
//   - eps: relative tolerance (Options.eps).
//
// Returns:
//   - *elimination with the reduced work matrix and bookkeeping.
//
// Notes:
//   - A zero matrix has scale 0, hence pivotTol 0, and |0| ≤ 0 marks it singular.
//   - Callers run ValidateSquare first; eliminate assumes a.r == a.c.
//
// Complexity:
//   - Time O(n²·(n+m)), Space O(n·(n+m)).
func eliminate(a *Dense, aug *Dense, eps float64) *elimination {
	n := a.r
	width := n
	if aug != nil {
		width += aug.c
	}

	// Stage 1: assemble [a/scale | aug] in a single allocation.
	mx := a.maxAbs(n)
	scale, scaleExp := pow2Scale(mx)
	work := &Dense{r: n, c: width, data: make([]float64, n*width)}
	for i := 0; i < n; i++ {
		for j, v := range a.data[i*n : (i+1)*n] {
			work.data[i*width+j] = v / scale
		}
		if aug != nil {
			copy(work.data[i*width+n:(i+1)*width], aug.data[i*aug.c:(i+1)*aug.c])
		}
	}
	e := &elimination{
		work: work, n: n,
		scale: scale, scaleExp: scaleExp,
		pivotTol:  eps * mx / scale,
		failedCol: -1,
	}

	// Stage 2: column-by-column reduction.
	var (
		i, j, k, p int
		best, v    float64
		f          float64
		rowK, rowI []float64
	)
	for k = 0; k < n; k++ {
		// Partial pivoting: largest magnitude at or below row k.
		p, best = k, math.Abs(work.data[k*width+k])
		for i = k + 1; i < n; i++ {
			if v = math.Abs(work.data[i*width+k]); v > best {
				p, best = i, v
			}
		}
		if best <= e.pivotTol {
			e.singular, e.failedCol = true, k

			return e
		}
		if p != k {
			work.swapRows(p, k)
			e.swaps++
		}

		rowK = work.row(k)
		for i = k + 1; i < n; i++ {
			rowI = work.row(i)
			if rowI[k] == 0 {
				continue
			}
			f = rowI[k] / rowK[k]
			for j = k + 1; j < width; j++ {
				rowI[j] -= f * rowK[j]
			}
			rowI[k] = 0 // exact zero below the pivot
		}
	}

	return e
}

// IsSingular reports whether elimination with partial pivoting fails to find
// a pivot above eps·max|a_ij| in some column (see WithEpsilon).
//
// Errors: ErrInvalidInput, ErrNonSquare.
// Complexity: O(n³).
func IsSingular(m Matrix, opts ...Option) (bool, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return false, matrixErrorf(opSingular, err)
	}
	d, err := asDense(m)
	if err != nil {
		return false, matrixErrorf(opSingular, err)
	}
	o := gatherOptions(opts...)

	return eliminate(d, nil, o.eps).singular, nil
}
