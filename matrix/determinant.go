// SPDX-License-Identifier: MIT

package matrix

import "math"

// Determinant returns det(m) for a square matrix.
//
// Implementation:
//   - 1×1: the single entry.
//   - 2×2: ad − bc on entries divided by a power of two s ≥ max|a_ij|, then
//     multiplied by s² (the division is exact, so no rounding is added).
//   - n > 2: forward elimination with partial pivoting;
//     det = (−1)^swaps · Π pivots, accumulated without intermediate overflow.
//
// Behavior highlights:
//   - Returns an exact 0 (not merely a tiny value) when elimination reports a
//     pivot failure, so singular/invertible classification is reproducible.
//   - A singular 2×2 such as [[1e200, 1e200], [1e200, 1e200]] gives 0 at
//     any magnitude.
//
// Errors:
//   - ErrInvalidInput (nil/empty or non-finite entries).
//   - ErrNonSquare.
//   - ErrNonFinite when |det| exceeds the float64 range.
//
// Complexity:
//   - Time O(n³) for n > 2, Space O(n²).
//
// AI-Hints:
//   - Pass WithEpsilon to tighten or relax the singularity threshold.
func Determinant(m Matrix, opts ...Option) (float64, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return 0, matrixErrorf(opDeterminant, err)
	}
	d, err := asDense(m)
	if err != nil {
		return 0, matrixErrorf(opDeterminant, err)
	}

	var det float64
	switch d.r {
	case 1:
		return d.data[0], nil
	case 2:
		det = det2(d.data[0], d.data[1], d.data[2], d.data[3])
	default:
		o := gatherOptions(opts...)
		e := eliminate(d, nil, o.eps)
		if e.singular {
			return 0, nil
		}
		det = e.determinant()
	}
	if isNonFinite(det) {
		return 0, matrixErrorf(opDeterminant, ErrNonFinite)
	}

	return det, nil
}

// det2 is the 2×2 determinant |a b; c d|, evaluated on entries scaled into
// [-1, 1] so the products cannot overflow before the final s² factor.
func det2(a, b, c, d float64) float64 {
	s, _ := pow2Scale(math.Max(math.Max(math.Abs(a), math.Abs(b)), math.Max(math.Abs(c), math.Abs(d))))
	a, b, c, d = a/s, b/s, c/s, d/s

	return (a*d - b*c) * s * s
}
