// SPDX-License-Identifier: MIT
package matrix_test

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/linalg/matrix"
)

// toGonum copies a Dense into a gonum Dense.
func toGonum(m *matrix.Dense) *mat.Dense {
	rows := m.ToRows()
	flat := make([]float64, 0, m.Rows()*m.Cols())
	for _, r := range rows {
		flat = append(flat, r...)
	}

	return mat.NewDense(m.Rows(), m.Cols(), flat)
}

func TestDeterminant_MatchesGonum(t *testing.T) {
	t.Parallel()

	for _, n := range []int{3, 4, 7, 15} {
		t.Run(fmt.Sprintf("n=%d", n), func(t *testing.T) {
			A := RandDense(t, n, n, int64(300+n))
			got, err := matrix.Determinant(A)
			require.NoError(t, err)

			want := mat.Det(toGonum(A))
			require.InDelta(t, want, got, 1e-10*math.Max(1, math.Abs(want)))
		})
	}
}

func TestInverse_MatchesGonum(t *testing.T) {
	t.Parallel()

	for _, n := range []int{2, 5, 10} {
		t.Run(fmt.Sprintf("n=%d", n), func(t *testing.T) {
			A := RandDominant(t, n, int64(400+n))
			got, err := matrix.Inverse(A)
			require.NoError(t, err)

			var want mat.Dense
			require.NoError(t, want.Inverse(toGonum(A)))
			for i := 0; i < n; i++ {
				for j := 0; j < n; j++ {
					require.InDelta(t, want.At(i, j), MustAt(t, got, i, j), 1e-12, "[%d,%d]", i, j)
				}
			}
		})
	}
}
