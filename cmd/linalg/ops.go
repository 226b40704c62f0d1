// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/linalg/compute"
)

func newOpsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ops",
		Short: "List supported operations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			for _, op := range compute.Operations() {
				operands := "matrixA"
				switch {
				case op.Binary():
					operands += ", matrixB"
				case op.NeedsScalar():
					operands += ", scalar"
				}
				fmt.Fprintf(tw, "%s\t%s\t%s\n", op, operands, op.Description())
			}

			return tw.Flush()
		},
	}
}
