// SPDX-License-Identifier: MIT
package matrix_test

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/linalg/matrix"
)

func TestDeterminant_Table(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		rows [][]float64
		want float64
	}{
		{"1x1", [][]float64{{-3.5}}, -3.5},
		{"2x2 scenario", [][]float64{{4, 3}, {6, 3}}, -6},
		{"2x2 singular", [][]float64{{1, 2}, {2, 4}}, 0},
		{"3x3", [][]float64{{2, -3, 1}, {2, 0, -1}, {1, 4, 5}}, 49},
		{"3x3 needs pivot", [][]float64{{0, 1, 2}, {1, 0, 3}, {4, -3, 8}}, -2},
		{"3x3 singular", [][]float64{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}}, 0},
		{"4x4 triangular", [][]float64{{2, 1, 0, 3}, {0, 3, 4, 1}, {0, 0, -1, 2}, {0, 0, 0, 5}}, -30},
		{"permutation", [][]float64{{0, 0, 1}, {0, 1, 0}, {1, 0, 0}}, -1},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			got, err := matrix.Determinant(MustRows(t, tc.rows))
			require.NoError(t, err)
			require.LessOrEqual(t, relErr(got, tc.want), 1e-12, "got %v want %v", got, tc.want)
		})
	}
}

func TestDeterminant_LargeMagnitude(t *testing.T) {
	t.Parallel()

	// Singular stays exactly 0 at any scale; an out-of-range det is an error.
	tests := []struct {
		name    string
		rows    [][]float64
		want    float64
		wantErr error
	}{
		{"2x2 singular 1e200", [][]float64{{1e200, 1e200}, {1e200, 1e200}}, 0, nil},
		{"2x2 singular 1e-200", [][]float64{{1e-200, 2e-200}, {2e-200, 4e-200}}, 0, nil},
		{"3x3 singular 1e200", [][]float64{{1e200, 2e200, 3e200}, {4e200, 5e200, 6e200}, {7e200, 8e200, 9e200}}, 0, nil},
		{"2x2 1e150", [][]float64{{1e150, 2e150}, {3e150, 4e150}}, -2e300, nil},
		{"2x2 1e-150", [][]float64{{1e-150, 2e-150}, {3e-150, 4e-150}}, -2e-300, nil},
		{"2x2 overflow", [][]float64{{1e200, 0}, {0, 1e200}}, 0, matrix.ErrNonFinite},
		{"3x3 overflow", [][]float64{{1e200, 0, 0}, {0, 1e200, 0}, {0, 0, 1e200}}, 0, matrix.ErrNonFinite},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got, err := matrix.Determinant(MustRows(t, tc.rows))
			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)
				require.ErrorContains(t, err, "Determinant")
				return
			}
			require.NoError(t, err)
			require.False(t, math.IsNaN(got) || math.IsInf(got, 0))
			if tc.want == 0 {
				require.Equal(t, 0.0, got)
				return
			}
			require.LessOrEqual(t, math.Abs(got-tc.want)/math.Abs(tc.want), 1e-12, "got %v want %v", got, tc.want)
		})
	}
}

func TestDeterminant_SingularIsExactZero(t *testing.T) {
	// A failed pivot yields exactly 0, never a rounding residue.
	A := MustRows(t, [][]float64{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}})
	d, err := matrix.Determinant(A)
	require.NoError(t, err)
	require.Equal(t, 0.0, d)
	require.False(t, math.Signbit(d))
}

func TestDeterminant_Identity(t *testing.T) {
	for _, n := range []int{1, 2, 3, 8, 20} {
		d, err := matrix.Determinant(MustIdentity(t, n))
		require.NoError(t, err)
		require.Equal(t, 1.0, d, "det(I_%d)", n)
	}
}

func TestDeterminant_NonSquare(t *testing.T) {
	_, err := matrix.Determinant(MustDense(t, 2, 3))
	require.ErrorIs(t, err, matrix.ErrNonSquare)
	_, err = matrix.Determinant(nil)
	require.ErrorIs(t, err, matrix.ErrInvalidInput)
}

func TestDeterminant_Multiplicative(t *testing.T) {
	t.Parallel()

	for _, n := range []int{2, 3, 5, 9} {
		t.Run(fmt.Sprintf("n=%d", n), func(t *testing.T) {
			A := RandDense(t, n, n, int64(100+n))
			B := RandDense(t, n, n, int64(200+n))
			AB, err := matrix.Mul(A, B)
			require.NoError(t, err)

			dA, err := matrix.Determinant(A)
			require.NoError(t, err)
			dB, err := matrix.Determinant(B)
			require.NoError(t, err)
			dAB, err := matrix.Determinant(hide{AB})
			require.NoError(t, err)

			require.InDelta(t, dA*dB, dAB, 1e-9*math.Max(1, math.Abs(dA*dB)))
		})
	}
}
