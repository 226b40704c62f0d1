// SPDX-License-Identifier: MIT

// Package quiz grades submitted answers against the matrix core.
//
// A Grader recomputes the reference result of an Attempt through
// compute.Service, compares the submitted answer within a tolerance and
// records the outcome in a progress.Store.
//
// Answer shapes (JSON) follow the result kind of the operation:
//   - matrix results:   [[1, 2], [3, 4]]
//   - scalar results:   -6
//   - eigenvalues:      [5, 2] or [5, {"real": 1, "imag": 2}, {"real": 1, "imag": -2}]
//     compared as multisets, order free
//   - expected failure: "SingularMatrix" (any ErrorKind name) when the
//     computation itself has no result
package quiz
