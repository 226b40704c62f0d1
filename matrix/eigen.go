// SPDX-License-Identifier: MIT
// Package matrix: eigenvalue estimation for general real square matrices.
//
// Strategy by size:
//   - n = 1: the single entry.
//   - n = 2: roots of λ² − tr·λ + det (real pair or complex-conjugate pair).
//   - n = 3: characteristic cubic from (trace, Σ principal 2×2 minors, det),
//     solved in closed form (trigonometric for three real roots, Cardano for
//     one real root and a complex pair).
//   - n > 3: unshifted QR iteration A ← R·Q until the iterate is
//     quasi-triangular, capped by MaxIterations.
//
// Determinism:
//   - No randomness, fixed loop orders; identical inputs give identical output.

package matrix

import (
	"fmt"
	"math"
)

// Eigenvalues estimates all eigenvalues of a square matrix.
//
// Implementation:
//   - Stage 1: Validate non-nil and square; resolve options.
//   - Stage 2: Dispatch on n (closed forms for n ≤ 3, QR iteration above).
//   - Stage 3: For n > 3, read eigenvalues from the diagonal and from isolated
//     2×2 diagonal blocks of the final iterate.
//
// Behavior highlights:
//   - Σ Values equals the trace up to rounding for every n (each 2×2 block
//     contributes its own trace), converged or not.
//   - Complex pairs are reported as two adjacent entries, positive Imag first.
//
// Inputs:
//   - m: square matrix.
//   - opts: WithEpsilon (clamping of near-zero discriminants),
//     WithEigenTolerance, WithMaxIterations, WithStrictConvergence.
//
// Returns:
//   - EigenResult; Converged=false marks a best-effort estimate after the cap.
//
// Errors:
//   - ErrInvalidInput, ErrNonSquare.
//   - ErrNoConvergence only under WithStrictConvergence (no result returned).
//   - ErrNonFinite when an eigenvalue exceeds the float64 range.
//
// Complexity:
//   - O(1) for n ≤ 3; O(MaxIterations · n³) worst case for n > 3.
//
// AI-Hints:
//   - The unshifted iteration converges at a rate set by |λ_{i+1}/λ_i|; matrices
//     with distinct eigenvalues of equal magnitude (e.g. permutations) never
//     converge and come back with Converged=false.
func Eigenvalues(m Matrix, opts ...Option) (EigenResult, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return EigenResult{}, matrixErrorf(opEigen, err)
	}
	d, err := asDense(m)
	if err != nil {
		return EigenResult{}, matrixErrorf(opEigen, err)
	}
	o := gatherOptions(opts...)
	if d.r == 1 {
		return EigenResult{Values: []Eigenvalue{{Real: d.data[0]}}, Converged: true}, nil
	}

	// Solve on A/s, s a power of two ≥ max|a_ij|: λ(A) = s·λ(A/s) and no
	// intermediate can overflow.
	s, _ := pow2Scale(d.maxAbs(d.c))
	ds := d.scaled(s)

	var res EigenResult
	switch d.r {
	case 2:
		l1, l2 := eigen2(ds.data[0], ds.data[1], ds.data[2], ds.data[3], o.eps)
		res = EigenResult{Values: []Eigenvalue{l1, l2}, Converged: true}
	case 3:
		res = EigenResult{Values: eigen3(ds), Converged: true}
	default:
		res = qrEigen(ds, o)
		if !res.Converged && o.strict {
			return EigenResult{}, matrixErrorf(opEigen,
				fmt.Errorf("%d iterations: %w", res.Iterations, ErrNoConvergence))
		}
	}

	for i := range res.Values {
		res.Values[i].Real *= s
		res.Values[i].Imag *= s
		if isNonFinite(res.Values[i].Real) || isNonFinite(res.Values[i].Imag) {
			return EigenResult{}, matrixErrorf(opEigen, ErrNonFinite)
		}
	}

	return res, nil
}

// cardanoCollapse is ∛ε_mach (≈ 6.06e-6) for float64.
var cardanoCollapse = math.Cbrt(0x1p-52)

// eigen2 returns the eigenvalues of |a b; c d|. Callers pass entries scaled
// into [-1, 1] (Eigenvalues divides by s, QR iterates inherit it).
//
// disc = tr² − 4·det. A discriminant within 4·eps·scale² of zero is clamped to
// zero (double root) so rounding never invents an imaginary part.
// For real roots the larger-magnitude root is computed first and the second
// as det/λ1, avoiding cancellation in (tr ∓ √disc)/2.
func eigen2(a, b, c, d, eps float64) (Eigenvalue, Eigenvalue) {
	tr := a + d
	det := det2(a, b, c, d)
	disc := tr*tr - 4*det

	scale := math.Max(math.Max(math.Abs(a), math.Abs(b)), math.Max(math.Abs(c), math.Abs(d)))
	if math.Abs(disc) <= 4*eps*scale*scale {
		disc = 0
	}

	if disc < 0 {
		im := math.Sqrt(-disc) / 2
		return Eigenvalue{Real: tr / 2, Imag: im}, Eigenvalue{Real: tr / 2, Imag: -im}
	}

	s := math.Sqrt(disc)
	l1 := (tr + math.Copysign(s, tr)) / 2
	if l1 == 0 {
		return Eigenvalue{}, Eigenvalue{}
	}

	return Eigenvalue{Real: l1}, Eigenvalue{Real: det / l1}
}

// eigen3 solves the characteristic cubic of a 3×3 Dense.
//
// Implementation:
//   - c2 = Σ principal 2×2 minors; det by the rule of Sarrus.
//   - λ³ − tr·λ² + c2·λ − det = 0; substitute λ = t + tr/3 to get the depressed
//     cubic t³ + p·t + q = 0 with
//     p = c2 − tr²/3,  q = −2·tr³/27 + tr·c2/3 − det,  Δ = (q/2)² + (p/3)³.
//   - Δ ≤ 0: three real roots t_k = 2√(−p/3)·cos(φ/3 − 2πk/3),
//     cos φ = (3q/(2p))·√(−3/p).
//   - Δ > 0: one real root u+v (u,v = ∛(−q/2 ± √Δ)) and the pair
//     −(u+v)/2 ± i·(√3/2)(u−v). Rounding in Δ near a double root leaves
//     |u−v| of order √ε_mach·(|u|+|v|); an imaginary part within
//     cardanoCollapse·(|u|+|v|) is treated as that residue and collapses to
//     a real double root, while pairs such as 1 ± 1e-5i stay complex.
func eigen3(m *Dense) []Eigenvalue {
	a := m.data
	a00, a01, a02 := a[0], a[1], a[2]
	a10, a11, a12 := a[3], a[4], a[5]
	a20, a21, a22 := a[6], a[7], a[8]

	tr := a00 + a11 + a22
	c2 := det2(a00, a01, a10, a11) + det2(a00, a02, a20, a22) + det2(a11, a12, a21, a22)
	det := a00*(a11*a22-a12*a21) - a01*(a10*a22-a12*a20) + a02*(a10*a21-a11*a20)

	shift := tr / 3
	p := c2 - tr*tr/3
	q := -2*tr*tr*tr/27 + tr*c2/3 - det
	delta := (q/2)*(q/2) + (p/3)*(p/3)*(p/3)

	if delta <= 0 {
		if p >= 0 { // then q == 0 too: triple root
			return []Eigenvalue{{Real: shift}, {Real: shift}, {Real: shift}}
		}
		r := 2 * math.Sqrt(-p/3)
		arg := (3 * q / (2 * p)) * math.Sqrt(-3/p)
		arg = math.Max(-1, math.Min(1, arg)) // rounding can push |arg| past 1
		phi := math.Acos(arg) / 3
		out := make([]Eigenvalue, 3)
		for k := 0; k < 3; k++ {
			out[k] = Eigenvalue{Real: r*math.Cos(phi-2*math.Pi*float64(k)/3) + shift}
		}

		return out
	}

	sq := math.Sqrt(delta)
	u := math.Cbrt(-q/2 + sq)
	v := math.Cbrt(-q/2 - sq)
	re := -(u+v)/2 + shift
	im := math.Sqrt(3) / 2 * math.Abs(u-v)

	if im <= cardanoCollapse*(math.Abs(u)+math.Abs(v)) {
		return []Eigenvalue{{Real: u + v + shift}, {Real: re}, {Real: re}}
	}

	return []Eigenvalue{{Real: u + v + shift}, {Real: re, Imag: im}, {Real: re, Imag: -im}}
}

// qrEigen runs the unshifted QR iteration on a copy of d (n > 3).
//
// Implementation:
//   - thresh = EigenTolerance · ‖d‖_F (a zero matrix is trivially converged).
//   - Repeat A ← R·Q (A = Q·R) until quasiTriangular(A, thresh) or the cap.
//   - Each step is a similarity transform, so the trace is preserved.
//
// Complexity: O(iterations · n³).
func qrEigen(d *Dense, o Options) EigenResult {
	a := d.clone()
	thresh := o.eigenTol * d.frobenius()

	iter := 0
	converged := quasiTriangular(a, thresh)
	for !converged && iter < o.maxIter {
		q, r := householderQR(a)
		a = mulDense(r, q)
		iter++
		converged = quasiTriangular(a, thresh)
	}

	return EigenResult{Values: readBlocks(a, thresh, o.eps), Converged: converged, Iterations: iter}
}

// quasiTriangular reports whether a is block upper triangular with 1×1 and
// 2×2 diagonal blocks: every entry below the subdiagonal is ≤ thresh, and no
// two adjacent subdiagonal entries exceed thresh.
func quasiTriangular(a *Dense, thresh float64) bool {
	n := a.r
	var i, j int
	for i = 2; i < n; i++ {
		for j = 0; j < i-1; j++ {
			if math.Abs(a.data[i*n+j]) > thresh {
				return false
			}
		}
	}
	prev := false
	for i = 1; i < n; i++ {
		big := math.Abs(a.data[i*n+i-1]) > thresh
		if big && prev {
			return false
		}
		prev = big
	}

	return true
}

// readBlocks walks the diagonal of a, emitting one eigenvalue per 1×1 block
// and the eigen2 pair of each 2×2 block whose subdiagonal entry exceeds thresh.
func readBlocks(a *Dense, thresh, eps float64) []Eigenvalue {
	n := a.r
	out := make([]Eigenvalue, 0, n)
	for i := 0; i < n; {
		if i+1 < n && math.Abs(a.data[(i+1)*n+i]) > thresh {
			l1, l2 := eigen2(a.data[i*n+i], a.data[i*n+i+1], a.data[(i+1)*n+i], a.data[(i+1)*n+i+1], eps)
			out = append(out, l1, l2)
			i += 2

			continue
		}
		out = append(out, Eigenvalue{Real: a.data[i*n+i]})
		i++
	}

	return out
}
