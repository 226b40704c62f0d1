// SPDX-License-Identifier: MIT
package compute_test

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/linalg/compute"
	"github.com/katalvlaran/linalg/matrix"
)

func TestDecodeRequest(t *testing.T) {
	req, err := compute.DecodeRequest(strings.NewReader(
		`{"matrixA": [[1, 2], [3, 4]], "matrixB": [[5, 6], [7, 8]], "scalar": 2.5}`))
	require.NoError(t, err)
	require.Equal(t, [][]float64{{1, 2}, {3, 4}}, req.MatrixA)
	require.Equal(t, [][]float64{{5, 6}, {7, 8}}, req.MatrixB)
	require.NotNil(t, req.Scalar)
	require.Equal(t, 2.5, *req.Scalar)

	req, err = compute.DecodeRequest(strings.NewReader(`{"matrixA": [[1]]}`))
	require.NoError(t, err)
	require.Nil(t, req.MatrixB)
	require.Nil(t, req.Scalar)
}

func TestDecodeRequest_Malformed(t *testing.T) {
	for name, body := range map[string]string{
		"empty":          ``,
		"not json":       `matrixA=1`,
		"string entry":   `{"matrixA": [["1", 2]]}`,
		"unknown field":  `{"matrixA": [[1]], "matrixC": [[1]]}`,
		"scalar as text": `{"matrixA": [[1]], "scalar": "two"}`,
		"trailing data":  `{"matrixA": [[1]]} {"matrixA": [[2]]}`,
	} {
		body := body
		t.Run(name, func(t *testing.T) {
			_, err := compute.DecodeRequest(strings.NewReader(body))
			require.ErrorIs(t, err, compute.ErrMalformedRequest)
			require.Equal(t, compute.KindInvalidInput, compute.KindOf(err))
		})
	}
}

func TestKindOf(t *testing.T) {
	tests := []struct {
		err  error
		want compute.ErrorKind
	}{
		{nil, ""},
		{fmt.Errorf("Mul: %w", matrix.ErrShapeMismatch), compute.KindShapeMismatch},
		{matrix.ErrNonSquare, compute.KindNonSquare},
		{matrix.ErrSingular, compute.KindSingularMatrix},
		{matrix.ErrNoConvergence, compute.KindConvergenceFailure},
		{matrix.ErrInvalidInput, compute.KindInvalidInput},
		{matrix.ErrOutOfRange, compute.KindInvalidInput},
		{fmt.Errorf("Scale: %w", matrix.ErrNonFinite), compute.KindInvalidInput},
		{compute.ErrUnknownOperation, compute.KindInvalidInput},
		{compute.ErrMissingOperand, compute.KindInvalidInput},
		{errors.New("disk on fire"), compute.KindInternal},
	}
	for _, tc := range tests {
		require.Equal(t, tc.want, compute.KindOf(tc.err), "KindOf(%v)", tc.err)
	}
}

func TestErrorKind_IsClientError(t *testing.T) {
	client := map[compute.ErrorKind]bool{
		compute.KindShapeMismatch:      true,
		compute.KindNonSquare:          true,
		compute.KindInvalidInput:       true,
		compute.KindSingularMatrix:     false,
		compute.KindConvergenceFailure: false,
		compute.KindInternal:           false,
	}
	for k, want := range client {
		require.Equal(t, want, k.IsClientError(), k.String())
	}
}

func TestParseOperation(t *testing.T) {
	for _, op := range compute.Operations() {
		got, err := compute.ParseOperation(strings.ToUpper(op.String()))
		require.NoError(t, err)
		require.Equal(t, op, got)
		require.NotEmpty(t, op.Description())
	}

	_, err := compute.ParseOperation("")
	require.ErrorIs(t, err, compute.ErrUnknownOperation)
}

func TestOperations_Canonical(t *testing.T) {
	ops := compute.Operations()
	require.Equal(t, []compute.Operation{
		"add", "subtract", "multiply", "scalar-multiply", "transpose",
		"determinant", "inverse", "trace", "eigenvalues",
	}, ops)

	ops[0] = "mutated"
	require.Equal(t, compute.OpAdd, compute.Operations()[0], "listing must be a copy")

	require.True(t, compute.OpMultiply.Binary())
	require.False(t, compute.OpScalarMultiply.Binary())
	require.True(t, compute.OpScalarMultiply.NeedsScalar())
}
