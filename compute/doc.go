// SPDX-License-Identifier: MIT

// Package compute is the request/response contract over the matrix core.
//
// What:
//   - Operation names the nine exposed computations (add, subtract, multiply,
//     scalar-multiply, transpose, determinant, inverse, trace, eigenvalues).
//   - Request carries matrixA, an optional matrixB and an optional scalar.
//   - Response is discriminated by Success: a result (matrix, number or list
//     of eigenvalue estimates) or an error message with its ErrorKind.
//   - Service.Execute maps (Operation, Request) to a Response.
//
// Why:
//   - The transport collaborator (HTTP, CLI, a test harness) only ever sees
//     the JSON shapes below; routes and status codes stay on its side, and
//     ErrorKind.IsClientError tells it which failures are the caller's fault.
//
// Wire shapes:
//
//	request:  {"matrixA": [[1,2],[3,4]], "matrixB": [[5,6],[7,8]], "scalar": 2}
//	response: {"success": true, "result": [[6,8],[10,12]]}
//	          {"success": false, "error": "...", "kind": "ShapeMismatch"}
//	          {"success": true, "result": [5, {"real":1,"imag":2}, ...], "warning": "ConvergenceFailure"}
//
// Concurrency:
//   - Service is immutable after construction and safe for concurrent use;
//     every Execute call allocates its own matrices.
package compute
