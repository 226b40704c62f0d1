// SPDX-License-Identifier: MIT

// Package matrix: domain types shared by the kernels.
// This file contains ONLY the Matrix interface, the eigenvalue sum type and
// the estimator result. Errors and options live in dedicated files
// (errors.go, options.go).
package matrix

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// Matrix represents a two-dimensional mutable array of float64 values.
// Kernels accept any implementation and never mutate their operands; *Dense
// operands are read directly, others are copied once through At.
//
// Complexity notes: all methods are expected O(1) except Clone (O(r*c)).
type Matrix interface {
	// Rows returns the number of rows in the matrix.
	Rows() int

	// Cols returns the number of columns in the matrix.
	Cols() int

	// At retrieves the element at position (i, j).
	// Returns ErrOutOfRange if i<0, i>=Rows(), j<0 or j>=Cols().
	At(i, j int) (float64, error)

	// Set assigns the value v at position (i, j).
	// Returns ErrOutOfRange if indices are invalid.
	Set(i, j int, v float64) error

	// Clone returns a deep copy of the matrix.
	Clone() Matrix
}

// Eigenvalue is a single eigenvalue estimate: a real number when Imag == 0,
// otherwise one member of a complex-conjugate pair Real ± i·|Imag|.
type Eigenvalue struct {
	Real float64 `json:"real"`
	Imag float64 `json:"imag"`
}

// IsReal reports whether the estimate has no imaginary part.
func (e Eigenvalue) IsReal() bool { return e.Imag == 0 }

// Complex returns the estimate as a complex128.
func (e Eigenvalue) Complex() complex128 { return complex(e.Real, e.Imag) }

// String formats real values as plain numbers and complex ones as "a+bi".
func (e Eigenvalue) String() string {
	if e.IsReal() {
		return strconv.FormatFloat(e.Real, 'g', -1, 64)
	}

	return fmt.Sprintf("%g%+gi", e.Real, e.Imag)
}

// MarshalJSON encodes a real eigenvalue as a bare number and a complex one
// as {"real": r, "imag": i}.
func (e Eigenvalue) MarshalJSON() ([]byte, error) {
	if e.IsReal() {
		return json.Marshal(e.Real)
	}
	type pair Eigenvalue // drop methods to avoid recursion

	return json.Marshal(pair(e))
}

// UnmarshalJSON accepts both encodings produced by MarshalJSON.
func (e *Eigenvalue) UnmarshalJSON(b []byte) error {
	var r float64
	if err := json.Unmarshal(b, &r); err == nil {
		*e = Eigenvalue{Real: r}
		return nil
	}
	type pair Eigenvalue
	var p pair
	if err := json.Unmarshal(b, &p); err != nil {
		return fmt.Errorf("Eigenvalue: %w", ErrInvalidInput)
	}
	*e = Eigenvalue(p)

	return nil
}

// EigenResult is the outcome of Eigenvalues.
//
// Values holds one estimate per dimension (complex pairs appear as two
// adjacent entries with opposite Imag). Converged is false only when the
// iterative estimator for n > 3 hit its iteration cap; Values is then the
// best-effort reading of the last iterate. Iterations is 0 for closed forms.
type EigenResult struct {
	Values     []Eigenvalue
	Converged  bool
	Iterations int
}

// Sum returns the sum of all estimates (imaginary parts cancel for pairs).
func (r EigenResult) Sum() complex128 {
	var s complex128
	for _, v := range r.Values {
		s += v.Complex()
	}

	return s
}

// AllReal reports whether every estimate is real.
func (r EigenResult) AllReal() bool {
	for _, v := range r.Values {
		if !v.IsReal() {
			return false
		}
	}

	return true
}
