// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"log/slog"
	"math"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/katalvlaran/linalg/matrix"
)

// Flag / config keys.
const (
	keyConfig    = "config"
	keyLogLevel  = "log-level"
	keyLogFormat = "log-format"
	keyEpsilon   = "epsilon"
	keyEigenTol  = "eigen-tol"
	keyMaxIter   = "max-iter"
	keyStrict    = "strict"

	envPrefix = "LINALG"
)

// config is the resolved CLI configuration (flags > env > file > defaults).
type config struct {
	LogLevel  string  `mapstructure:"log-level"`
	LogFormat string  `mapstructure:"log-format"`
	Epsilon   float64 `mapstructure:"epsilon"`
	EigenTol  float64 `mapstructure:"eigen-tol"`
	MaxIter   int     `mapstructure:"max-iter"`
	Strict    bool    `mapstructure:"strict"`
}

// registerFlags declares the global flags with their documented defaults.
func registerFlags(fs *pflag.FlagSet) {
	fs.String(keyConfig, "", "config file (yaml, toml or json)")
	fs.String(keyLogLevel, "warn", "log level: debug, info, warn, error")
	fs.String(keyLogFormat, "text", "log format: text or json")
	fs.Float64(keyEpsilon, matrix.DefaultEpsilon, "relative pivot/singularity tolerance")
	fs.Float64(keyEigenTol, matrix.DefaultEigenTolerance, "relative QR deflation tolerance")
	fs.Int(keyMaxIter, matrix.DefaultMaxIterations, "QR iteration cap for n > 3")
	fs.Bool(keyStrict, matrix.DefaultStrictConvergence, "treat eigenvalue non-convergence as an error")
}

// loadConfig layers the optional config file and LINALG_* environment
// variables under the flags in fs.
func loadConfig(v *viper.Viper, fs *pflag.FlagSet) (config, error) {
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	if err := v.BindPFlags(fs); err != nil {
		return config{}, fmt.Errorf("bind flags: %w", err)
	}

	if path := v.GetString(keyConfig); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return config{}, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	var cfg config
	if err := v.Unmarshal(&cfg); err != nil {
		return config{}, fmt.Errorf("decode config: %w", err)
	}

	return cfg, cfg.validate()
}

// validate rejects values the matrix option constructors would panic on.
func (c config) validate() error {
	switch {
	case math.IsNaN(c.Epsilon) || math.IsInf(c.Epsilon, 0) || c.Epsilon < 0:
		return fmt.Errorf("%s must be finite and non-negative, got %v", keyEpsilon, c.Epsilon)
	case math.IsNaN(c.EigenTol) || math.IsInf(c.EigenTol, 0) || c.EigenTol <= 0:
		return fmt.Errorf("%s must be finite and positive, got %v", keyEigenTol, c.EigenTol)
	case c.MaxIter <= 0:
		return fmt.Errorf("%s must be positive, got %d", keyMaxIter, c.MaxIter)
	}
	if _, err := c.level(); err != nil {
		return err
	}
	if f := strings.ToLower(c.LogFormat); f != "text" && f != "json" {
		return fmt.Errorf("%s must be text or json, got %q", keyLogFormat, c.LogFormat)
	}

	return nil
}

// matrixOptions converts the numeric settings into core options.
func (c config) matrixOptions() []matrix.Option {
	opts := []matrix.Option{
		matrix.WithEpsilon(c.Epsilon),
		matrix.WithEigenTolerance(c.EigenTol),
		matrix.WithMaxIterations(c.MaxIter),
	}
	if c.Strict {
		opts = append(opts, matrix.WithStrictConvergence())
	}

	return opts
}

func (c config) level() (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return 0, fmt.Errorf("%s: %w", keyLogLevel, err)
	}

	return lvl, nil
}
