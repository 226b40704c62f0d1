// SPDX-License-Identifier: MIT

// Command linalg evaluates matrix computations from the command line.
//
// Usage:
//
//	linalg ops
//	linalg eval determinant -f request.json
//	echo '{"matrixA": [[4,7],[2,6]]}' | linalg eval inverse
//	linalg grade -f attempts.json
//
// Global flags (also LINALG_* environment variables or a --config file):
// --log-level, --log-format, --epsilon, --eigen-tol, --max-iter, --strict.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// run executes the command tree and returns the process exit status.
func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	root := newRootCmd()
	root.SetArgs(args)
	root.SetIn(stdin)
	root.SetOut(stdout)
	root.SetErr(stderr)

	if err := root.Execute(); err != nil {
		if !errors.Is(err, errReported) {
			fmt.Fprintln(stderr, "linalg:", err)
		}
		return 1
	}

	return 0
}
