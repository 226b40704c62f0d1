// SPDX-License-Identifier: MIT

package compute

import (
	"encoding/json"
	"fmt"
	"io"
)

// Request is the input document of every operation.
// MatrixB is required by add/subtract/multiply and Scalar by scalar-multiply;
// both are ignored elsewhere.
type Request struct {
	MatrixA [][]float64 `json:"matrixA"`
	MatrixB [][]float64 `json:"matrixB,omitempty"`
	Scalar  *float64    `json:"scalar,omitempty"`
}

// Response is the output document. Exactly one of Result or Error is set,
// except that a non-converged eigenvalue estimate succeeds with a Warning.
type Response struct {
	Success bool      `json:"success"`
	Result  any       `json:"result,omitempty"`
	Error   string    `json:"error,omitempty"`
	Kind    ErrorKind `json:"kind,omitempty"`
	Warning string    `json:"warning,omitempty"`
}

// Failure builds the failed Response for err.
func Failure(err error) Response {
	return Response{Success: false, Error: err.Error(), Kind: KindOf(err)}
}

// DecodeRequest reads exactly one JSON request from r.
// Unknown fields, non-numeric entries and trailing data are ErrMalformedRequest
// (InvalidInput). Shape checks happen later, in Execute.
func DecodeRequest(r io.Reader) (Request, error) {
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()

	var req Request
	if err := dec.Decode(&req); err != nil {
		return Request{}, fmt.Errorf("%w: %v", ErrMalformedRequest, err)
	}
	if dec.More() {
		return Request{}, fmt.Errorf("%w: trailing data after request", ErrMalformedRequest)
	}

	return req, nil
}

// Float returns a pointer to v, for building requests with a scalar.
func Float(v float64) *float64 { return &v }
