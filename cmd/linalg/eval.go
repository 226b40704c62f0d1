// SPDX-License-Identifier: MIT

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/linalg/compute"
)

func newEvalCmd(a *app) *cobra.Command {
	var (
		file   string
		indent bool
	)
	ops := make([]string, 0, len(compute.Operations()))
	for _, op := range compute.Operations() {
		ops = append(ops, op.String())
	}

	cmd := &cobra.Command{
		Use:   "eval <operation>",
		Short: "Evaluate one operation on a JSON request (file or stdin)",
		Long: "Reads {\"matrixA\": [[...]], \"matrixB\": [[...]], \"scalar\": n} and writes the response document.\n" +
			"Operations: " + strings.Join(ops, ", ") + ".\n" +
			"The exit status is 1 when the response reports a failure.",
		Args:      cobra.ExactArgs(1),
		ValidArgs: ops,
		RunE: func(cmd *cobra.Command, args []string) error {
			in := cmd.InOrStdin()
			if file != "" && file != "-" {
				f, err := os.Open(file)
				if err != nil {
					return err
				}
				defer f.Close()
				in = f
			}

			resp := evaluate(a.svc, args[0], in)
			if err := writeJSON(cmd.OutOrStdout(), resp, indent); err != nil {
				return err
			}
			if !resp.Success {
				return errReported
			}

			return nil
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "request file (default stdin)")
	cmd.Flags().BoolVar(&indent, "indent", false, "indent the response document")

	return cmd
}

// evaluate decodes a request from r and runs it; decode failures become
// InvalidInput responses.
func evaluate(svc *compute.Service, name string, r io.Reader) compute.Response {
	op, err := compute.ParseOperation(name)
	if err != nil {
		return compute.Failure(err)
	}
	req, err := compute.DecodeRequest(r)
	if err != nil {
		return compute.Failure(err)
	}

	return svc.Execute(op, req)
}

func writeJSON(w io.Writer, v any, indent bool) error {
	enc := json.NewEncoder(w)
	if indent {
		enc.SetIndent("", "  ")
	}
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("write response: %w", err)
	}

	return nil
}
