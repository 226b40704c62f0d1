// SPDX-License-Identifier: MIT

package matrix

import "math"

// AllClose checks element-wise |a-b| ≤ atol + rtol*|b| for identical shapes.
// Returns (true,nil) if all elements satisfy the relation; (false,nil) otherwise.
//
// Policy:
//   - a and b must be non-nil and have identical shapes (ErrShapeMismatch).
//   - rtol, atol are treated as |rtol|, |atol|.
//
// Complexity: Time O(r*c), Space O(1) for *Dense operands.
//
// AI-Hints:
//   - For inverse checks scale atol by max|a_ij| of the input rather than
//     using a fixed absolute epsilon.
func AllClose(a, b Matrix, rtol, atol float64) (bool, error) {
	if err := ValidateBinary(a, b, Elementwise); err != nil {
		return false, matrixErrorf(opAllClose, err)
	}
	da, err := asDense(a)
	if err != nil {
		return false, matrixErrorf(opAllClose, err)
	}
	db, err := asDense(b)
	if err != nil {
		return false, matrixErrorf(opAllClose, err)
	}
	rtol, atol = math.Abs(rtol), math.Abs(atol)
	for i, x := range da.data {
		y := db.data[i]
		if math.Abs(x-y) > atol+rtol*math.Abs(y) {
			return false, nil
		}
	}

	return true, nil
}

// Equal reports exact element-wise equality of two matrices of the same shape.
// Different shapes (or nil operands) compare unequal.
func Equal(a, b Matrix) bool {
	ok, err := AllClose(a, b, 0, 0)

	return err == nil && ok
}

// MaxAbs returns max |m[i,j]| (0 for invalid input). Handy for scaling tolerances.
func MaxAbs(m Matrix) float64 {
	if ValidateNotNil(m) != nil {
		return 0
	}
	d, err := asDense(m)
	if err != nil {
		return 0
	}

	return d.maxAbs(d.c)
}
