// SPDX-License-Identifier: MIT

package compute

import (
	"fmt"
	"strings"
)

// Operation is the wire name of a computation.
type Operation string

// The exposed operations.
const (
	OpAdd            Operation = "add"
	OpSubtract       Operation = "subtract"
	OpMultiply       Operation = "multiply"
	OpScalarMultiply Operation = "scalar-multiply"
	OpTranspose      Operation = "transpose"
	OpDeterminant    Operation = "determinant"
	OpInverse        Operation = "inverse"
	OpTrace          Operation = "trace"
	OpEigenvalues    Operation = "eigenvalues"
)

// operations is the canonical listing order.
var operations = []Operation{
	OpAdd, OpSubtract, OpMultiply, OpScalarMultiply, OpTranspose,
	OpDeterminant, OpInverse, OpTrace, OpEigenvalues,
}

var descriptions = map[Operation]string{
	OpAdd:            "A + B, element-wise (same shape)",
	OpSubtract:       "A - B, element-wise (same shape)",
	OpMultiply:       "A · B (cols(A) == rows(B))",
	OpScalarMultiply: "scalar · A",
	OpTranspose:      "Aᵀ",
	OpDeterminant:    "det(A), square A",
	OpInverse:        "A⁻¹, square non-singular A",
	OpTrace:          "Σ a_ii, square A",
	OpEigenvalues:    "eigenvalue estimates of square A",
}

// Operations returns every supported operation in canonical order.
func Operations() []Operation { return append([]Operation(nil), operations...) }

// ParseOperation resolves a wire name (case-insensitive, surrounding spaces
// ignored). Unknown names yield ErrUnknownOperation.
func ParseOperation(s string) (Operation, error) {
	op := Operation(strings.ToLower(strings.TrimSpace(s)))
	if _, ok := descriptions[op]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownOperation, s)
	}

	return op, nil
}

// Binary reports whether the operation needs matrixB.
func (o Operation) Binary() bool {
	return o == OpAdd || o == OpSubtract || o == OpMultiply
}

// NeedsScalar reports whether the operation needs a scalar.
func (o Operation) NeedsScalar() bool { return o == OpScalarMultiply }

// Description is a one-line human summary ("" for unknown operations).
func (o Operation) Description() string { return descriptions[o] }

func (o Operation) String() string { return string(o) }
