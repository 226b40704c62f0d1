// SPDX-License-Identifier: MIT

package matrix

// Test bridge: exposes unexported kernels to matrix_test without widening the
// production API.

// EliminationReport is a read-only snapshot of an elimination run.
type EliminationReport struct {
	Work      [][]float64
	Scale     float64
	Swaps     int
	Singular  bool
	FailedCol int
}

// EliminateForTest runs the shared elimination engine on a (and optional aug).
func EliminateForTest(a, aug *Dense, eps float64) EliminationReport {
	e := eliminate(a, aug, eps)

	return EliminationReport{
		Work:      e.work.ToRows(),
		Scale:     e.scale,
		Swaps:     e.swaps,
		Singular:  e.singular,
		FailedCol: e.failedCol,
	}
}

// QuasiTriangularForTest exposes the QR-iteration convergence test.
func QuasiTriangularForTest(a *Dense, thresh float64) bool { return quasiTriangular(a, thresh) }
