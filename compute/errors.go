// SPDX-License-Identifier: MIT

package compute

import "errors"

// Contract-level sentinels. All of them classify as InvalidInput.
var (
	// ErrUnknownOperation indicates an operation name outside Operations().
	ErrUnknownOperation = errors.New("compute: unknown operation")

	// ErrMissingOperand indicates a request without the matrixB or scalar the
	// operation requires.
	ErrMissingOperand = errors.New("compute: missing operand")

	// ErrMalformedRequest indicates a body that is not a valid request document.
	ErrMalformedRequest = errors.New("compute: malformed request")
)

// errPanic marks a recovered panic inside the core (always Internal).
var errPanic = errors.New("compute: internal failure")
