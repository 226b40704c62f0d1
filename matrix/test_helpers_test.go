// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   - Provide small, deterministic test fixtures and utilities for the kernels.
//   - Keep all data finite and well-formed to avoid numeric-policy interference.

package matrix_test

import (
	"math"
	"math/cmplx"
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/linalg/matrix"
)

// hide wraps any Matrix to hide its concrete type from type assertions,
// forcing kernels through the generic At-based copy path.
type hide struct{ matrix.Matrix }

// MustDense allocates an r×c *Dense or fails the test.
func MustDense(t testing.TB, r, c int) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDense(r, c)
	require.NoError(t, err)

	return m
}

// MustRows builds a *Dense from a literal or fails the test.
func MustRows(t testing.TB, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewFromRows(rows)
	require.NoError(t, err)

	return m
}

// MustIdentity returns I_n or fails the test.
func MustIdentity(t testing.TB, n int) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewIdentity(n)
	require.NoError(t, err)

	return m
}

// MustAt reads m[i,j] or fails the test.
func MustAt(t testing.TB, m matrix.Matrix, i, j int) float64 {
	t.Helper()
	v, err := m.At(i, j)
	require.NoError(t, err)

	return v
}

// RandDense returns an r×c matrix with entries uniform in [-1, 1) from a
// seeded source (deterministic across runs).
func RandDense(t testing.TB, r, c int, seed int64) *matrix.Dense {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	rows := make([][]float64, r)
	for i := range rows {
		rows[i] = make([]float64, c)
		for j := range rows[i] {
			rows[i][j] = 2*rng.Float64() - 1
		}
	}

	return MustRows(t, rows)
}

// RandDominant returns an n×n strictly diagonally dominant random matrix
// (well-conditioned, never singular).
func RandDominant(t testing.TB, n int, seed int64) *matrix.Dense {
	t.Helper()
	rows := RandDense(t, n, n, seed).ToRows()
	for i := range rows {
		rows[i][i] += float64(n) + 1
	}

	return MustRows(t, rows)
}

// RequireMatrixClose asserts element-wise closeness with absolute tolerance tol.
func RequireMatrixClose(t testing.TB, want [][]float64, got matrix.Matrix, tol float64) {
	t.Helper()
	require.Equal(t, len(want), got.Rows(), "rows")
	require.Equal(t, len(want[0]), got.Cols(), "cols")
	for i := range want {
		for j := range want[i] {
			require.InDelta(t, want[i][j], MustAt(t, got, i, j), tol, "at [%d,%d]", i, j)
		}
	}
}

// SortedComplex returns eigenvalues as complex128 sorted by (real, imag).
func SortedComplex(vals []matrix.Eigenvalue) []complex128 {
	out := make([]complex128, len(vals))
	for i, v := range vals {
		out[i] = v.Complex()
	}
	sortComplex(out)

	return out
}

func sortComplex(v []complex128) {
	sort.Slice(v, func(i, j int) bool {
		if real(v[i]) != real(v[j]) {
			return real(v[i]) < real(v[j])
		}
		return imag(v[i]) < imag(v[j])
	})
}

// RequireSpectrum asserts that got matches want as multisets within tol.
// Each expected value is paired with the nearest unused estimate.
func RequireSpectrum(t testing.TB, want []complex128, got []matrix.Eigenvalue, tol float64) {
	t.Helper()
	require.Len(t, got, len(want))
	used := make([]bool, len(got))
	for _, w := range want {
		best, bestDist := -1, math.Inf(1)
		for j, g := range got {
			if d := cmplx.Abs(w - g.Complex()); !used[j] && d < bestDist {
				best, bestDist = j, d
			}
		}
		require.LessOrEqual(t, bestDist, tol, "no estimate near %v in %v", w, got)
		used[best] = true
	}
}

// relErr is |got-want| / max(1, |want|).
func relErr(got, want float64) float64 {
	return math.Abs(got-want) / math.Max(1, math.Abs(want))
}
