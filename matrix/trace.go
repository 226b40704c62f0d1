// SPDX-License-Identifier: MIT

package matrix

// Trace returns Σ m[i,i]. Requires a square matrix (ErrNonSquare otherwise);
// a sum that overflows is reported as ErrNonFinite.
// Complexity: O(n).
func Trace(m Matrix) (float64, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return 0, matrixErrorf(opTrace, err)
	}
	d, err := asDense(m)
	if err != nil {
		return 0, matrixErrorf(opTrace, err)
	}

	tr := d.trace()
	if isNonFinite(tr) {
		return 0, matrixErrorf(opTrace, ErrNonFinite)
	}

	return tr, nil
}

// trace sums the diagonal of a square Dense without validation.
func (m *Dense) trace() float64 {
	var s float64
	for i := 0; i < m.r; i++ {
		s += m.data[i*m.c+i]
	}

	return s
}
