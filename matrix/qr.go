// SPDX-License-Identifier: MIT

package matrix

import "math"

// QR computes a Householder factorization A = Q·R of a square matrix.
//
// Implementation:
//   - Stage 1: Validate m (not nil, square); clone A into R; H starts as I.
//   - Stage 2: For k = 0..n-1 build the reflector v that maps R[k:n, k] onto
//     −sign(R[k,k])·‖R[k:n, k]‖·e_k and apply it to R and to H from the left.
//   - Stage 3: H·A = R with H orthogonal, so Q = Hᵀ.
//
// The reflectors are built on A/s with s the power of two just above
// max|a_ij|, so ‖R[k:n, k]‖ never overflows; R is multiplied back by s.
//
// Behavior highlights:
//   - Deterministic column order; zero columns are skipped (reflector = I).
//   - R is upper triangular up to rounding; entries below the diagonal are
//     written as exact zeros after each reflection.
//
// Errors:
//   - ErrInvalidInput, ErrNonSquare.
//   - ErrNonFinite when an entry of R exceeds the float64 range.
//
// Complexity:
//   - Time O(n³), Space O(n²).
//
// Notes:
//   - No sign canonicalization: diag(R) may be negative.
func QR(m Matrix) (*Dense, *Dense, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return nil, nil, matrixErrorf(opQR, err)
	}
	d, err := asDense(m)
	if err != nil {
		return nil, nil, matrixErrorf(opQR, err)
	}
	s, _ := pow2Scale(d.maxAbs(d.c))
	q, r := householderQR(d.scaled(s))
	for i := range r.data {
		r.data[i] *= s
	}
	if r, err = finiteResult(r, opQR); err != nil {
		return nil, nil, err
	}

	return q, r, nil
}

// householderQR factors a square Dense without validation. d is not mutated.
func householderQR(d *Dense) (q, r *Dense) {
	n := d.r
	r = d.clone()
	h := &Dense{r: n, c: n, data: make([]float64, n*n)}
	for i := 0; i < n; i++ {
		h.data[i*n+i] = 1
	}

	v := make([]float64, n)
	var (
		i, j, k    int
		norm, beta float64
		alpha, tau float64
		sum        float64
	)
	for k = 0; k < n-1; k++ {
		// ‖R[k:n, k]‖
		norm = 0
		for i = k; i < n; i++ {
			norm += r.data[i*n+k] * r.data[i*n+k]
		}
		norm = math.Sqrt(norm)
		if norm == 0 {
			continue // zero column: nothing to reflect
		}

		// v = x − alpha·e_k with alpha = −sign(x_k)·‖x‖ (no cancellation).
		alpha = -math.Copysign(norm, r.data[k*n+k])
		for i = k; i < n; i++ {
			v[i] = r.data[i*n+k]
		}
		v[k] -= alpha

		beta = 0
		for i = k; i < n; i++ {
			beta += v[i] * v[i]
		}
		if beta == 0 {
			continue
		}
		tau = 2 / beta

		// R ← (I − τ v vᵀ) R on columns k..n-1.
		for j = k; j < n; j++ {
			sum = 0
			for i = k; i < n; i++ {
				sum += v[i] * r.data[i*n+j]
			}
			if sum == 0 {
				continue
			}
			for i = k; i < n; i++ {
				r.data[i*n+j] -= tau * v[i] * sum
			}
		}
		r.data[k*n+k] = alpha
		for i = k + 1; i < n; i++ {
			r.data[i*n+k] = 0
		}

		// H ← (I − τ v vᵀ) H on all columns.
		for j = 0; j < n; j++ {
			sum = 0
			for i = k; i < n; i++ {
				sum += v[i] * h.data[i*n+j]
			}
			if sum == 0 {
				continue
			}
			for i = k; i < n; i++ {
				h.data[i*n+j] -= tau * v[i] * sum
			}
		}
	}

	// Q = Hᵀ
	q = &Dense{r: n, c: n, data: make([]float64, n*n)}
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			q.data[j*n+i] = h.data[i*n+j]
		}
	}

	return q, r
}
