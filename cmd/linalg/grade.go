// SPDX-License-Identifier: MIT

package main

import (
	"encoding/json"
	"fmt"
	"math"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/linalg/progress"
	"github.com/katalvlaran/linalg/quiz"
)

// gradeReport is the output document of the grade command.
type gradeReport struct {
	Outcomes []quiz.Outcome             `json:"outcomes"`
	Progress map[string]progress.Record `json:"progress"`
}

func newGradeCmd(a *app) *cobra.Command {
	var (
		file string
		tol  float64
	)
	cmd := &cobra.Command{
		Use:   "grade -f attempts.json",
		Short: "Grade a batch of quiz attempts and print per-question progress",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if math.IsNaN(tol) || math.IsInf(tol, 0) || tol < 0 {
				return fmt.Errorf("tolerance must be finite and non-negative, got %v", tol)
			}
			var attempts []quiz.Attempt
			in := cmd.InOrStdin()
			if file != "" && file != "-" {
				f, err := os.Open(file)
				if err != nil {
					return err
				}
				defer f.Close()
				in = f
			}
			if err := json.NewDecoder(in).Decode(&attempts); err != nil {
				return fmt.Errorf("decode attempts: %w", err)
			}

			store := progress.NewMemoryStore()
			grader := quiz.NewGrader(a.svc, store, quiz.WithTolerance(tol), quiz.WithLogger(a.logger))
			outcomes, err := grader.GradeAll(attempts)
			if err != nil {
				return err
			}

			return writeJSON(cmd.OutOrStdout(), gradeReport{Outcomes: outcomes, Progress: store.Snapshot()}, true)
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "attempts file, a JSON array (default stdin)")
	cmd.Flags().Float64Var(&tol, "tolerance", quiz.DefaultTolerance, "answer tolerance")

	return cmd
}
