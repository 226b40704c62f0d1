// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"io"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/katalvlaran/linalg/compute"
)

// errReported marks a failure whose details were already written as a
// response document; main only sets the exit status.
var errReported = errors.New("failure already reported")

// app carries the state shared by subcommands once flags are resolved.
type app struct {
	v      *viper.Viper
	cfg    config
	logger *slog.Logger
	svc    *compute.Service
}

func newRootCmd() *cobra.Command {
	a := &app{v: viper.New()}

	root := &cobra.Command{
		Use:           "linalg",
		Short:         "Matrix arithmetic, determinant, inverse, trace and eigenvalues",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
	}
	registerFlags(root.PersistentFlags())

	root.AddCommand(newEvalCmd(a), newOpsCmd(), newGradeCmd(a))

	return root
}

// setup resolves configuration and builds the logger and the service.
func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := loadConfig(a.v, cmd.Root().PersistentFlags())
	if err != nil {
		return err
	}
	a.cfg = cfg
	a.logger = newLogger(cmd.ErrOrStderr(), cfg)
	a.svc = compute.NewService(
		compute.WithLogger(a.logger),
		compute.WithMatrixOptions(cfg.matrixOptions()...),
	)
	a.logger.Debug("configuration resolved",
		slog.String("config_file", a.v.ConfigFileUsed()),
		slog.Float64("epsilon", cfg.Epsilon),
		slog.Float64("eigen_tol", cfg.EigenTol),
		slog.Int("max_iter", cfg.MaxIter),
		slog.Bool("strict", cfg.Strict))

	return nil
}

// newLogger builds a text or JSON slog handler on w. cfg is already validated.
func newLogger(w io.Writer, cfg config) *slog.Logger {
	lvl, _ := cfg.level()
	opts := &slog.HandlerOptions{Level: lvl}
	if strings.EqualFold(cfg.LogFormat, "json") {
		return slog.New(slog.NewJSONHandler(w, opts))
	}

	return slog.New(slog.NewTextHandler(w, opts))
}
