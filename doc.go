// Package linalg is a small, deterministic linear-algebra core with a
// request/response contract on top, built for teaching tools and quiz
// back ends.
//
// What is in the box?
//
//	• Core kernels: add, subtract, multiply, scalar-multiply, transpose
//	• Square-only: determinant, inverse, trace (pivoted elimination)
//	• Eigenvalues: closed forms for n ≤ 3, QR iteration with a hard cap above
//	• Contract: JSON Request/Response with classified error kinds
//	• Progress: per-question correctness counters in process memory
//	• CLI: linalg eval | ops | grade (cobra + viper, slog logging)
//
// Layout:
//
//	matrix/     Dense type, validators, elimination engine, kernels, options
//	compute/    Operation, Request, Response, ErrorKind, Service
//	progress/   Store interface and the in-memory implementation
//	quiz/       Grader: checks answers via compute, records via progress
//	cmd/linalg  command-line front end
//	examples/   runnable walkthroughs
//
// Quick example:
//
//	A, _ := matrix.NewFromRows([][]float64{{4, 7}, {2, 6}})
//	inv, _ := matrix.Inverse(A)      // [[0.6, -0.7], [-0.2, 0.4]]
//	det, _ := matrix.Determinant(A)  // 10
//	res, _ := matrix.Eigenvalues(A)  // res.Values, res.Converged
//
// Every kernel is a pure function over copies of its inputs: no shared
// state, no locks, safe for concurrent use.
//
//	go get github.com/katalvlaran/linalg
package linalg
