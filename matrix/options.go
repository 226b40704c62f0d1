// SPDX-License-Identifier: MIT

// Package matrix: functional configuration of the numeric policy.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that resolves the effective policy.
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - No dead switches: each option changes the outcome of at least one kernel
//     and is covered by tests.
//   - Safe by construction: panic only on invalid parameters (programmer error).
//
// Notes:
//   - Epsilon is relative: a pivot is accepted when |p| > eps·max|a_ij|.
//     A zero matrix therefore has no acceptable pivot and is singular.
//   - EigenTolerance is relative to the Frobenius norm of the input.
//   - MaxIterations bounds the QR iteration used for n > 3; every call to
//     Eigenvalues terminates after at most MaxIterations QR steps.
package matrix

import "math"

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultEpsilon is the relative pivot/singularity tolerance.
	DefaultEpsilon = 1e-9

	// DefaultEigenTolerance is the relative off-diagonal threshold at which the
	// QR iteration considers an entry deflated.
	DefaultEigenTolerance = 1e-10

	// DefaultMaxIterations caps the number of QR steps for n > 3.
	DefaultMaxIterations = 10000

	// DefaultStrictConvergence keeps non-convergence a warning (Converged=false)
	// rather than an error.
	DefaultStrictConvergence = false
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicEpsilonInvalid    = "matrix: WithEpsilon: eps must be finite, non-negative"
	panicEigenTolInvalid   = "matrix: WithEigenTolerance: tol must be finite, positive"
	panicMaxIterationsZero = "matrix: WithMaxIterations: n must be positive"
)

// Option mutates internal options. Safe to apply repeatedly (last writer wins).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept `...Option` and resolve
// them via gatherOptions. Read the values through the accessor methods.
type Options struct {
	eps      float64 // >= 0; DefaultEpsilon
	eigenTol float64 // > 0; DefaultEigenTolerance
	maxIter  int     // > 0; DefaultMaxIterations
	strict   bool    // DefaultStrictConvergence
}

// WithEpsilon sets the relative pivot tolerance used by the elimination engine.
// Implementation:
//   - Stage 1: validate eps is finite and ≥ 0.
//   - Stage 2: return a setter that writes eps into Options.
//
// Errors:
//   - Panics with a stable message when eps is invalid.
//
// Notes:
//   - eps = 0 accepts any non-zero pivot (exact arithmetic view).
//
// AI-Hints:
//   - Prefer 1e-9..1e-12 for double-precision data; raise it for noisy inputs.
func WithEpsilon(eps float64) Option {
	if isNonFinite(eps) || eps < 0 {
		panic(panicEpsilonInvalid)
	}

	return func(o *Options) { o.eps = eps }
}

// WithEigenTolerance sets the relative deflation threshold of the QR iteration.
// Panics when tol is not a finite positive number.
func WithEigenTolerance(tol float64) Option {
	if isNonFinite(tol) || tol <= 0 {
		panic(panicEigenTolInvalid)
	}

	return func(o *Options) { o.eigenTol = tol }
}

// WithMaxIterations sets the QR iteration cap. Panics when n <= 0.
func WithMaxIterations(n int) Option {
	if n <= 0 {
		panic(panicMaxIterationsZero)
	}

	return func(o *Options) { o.maxIter = n }
}

// WithStrictConvergence makes Eigenvalues return ErrNoConvergence instead of a
// best-effort estimate flagged with Converged=false.
func WithStrictConvergence() Option {
	return func(o *Options) { o.strict = true }
}

// NewOptions resolves opts on top of the defaults. Useful for logging the
// effective policy at the edges of the system.
func NewOptions(opts ...Option) Options { return gatherOptions(opts...) }

// Epsilon returns the relative pivot tolerance.
func (o Options) Epsilon() float64 { return o.eps }

// EigenTolerance returns the relative QR deflation threshold.
func (o Options) EigenTolerance() float64 { return o.eigenTol }

// MaxIterations returns the QR iteration cap.
func (o Options) MaxIterations() int { return o.maxIter }

// StrictConvergence reports whether non-convergence is an error.
func (o Options) StrictConvergence() bool { return o.strict }

// gatherOptions applies user-provided Option setters on top of defaults.
// Nil setters are skipped so callers can build option slices conditionally.
func gatherOptions(user ...Option) Options {
	o := Options{
		eps:      DefaultEpsilon,
		eigenTol: DefaultEigenTolerance,
		maxIter:  DefaultMaxIterations,
		strict:   DefaultStrictConvergence,
	}
	for _, set := range user {
		if set != nil {
			set(&o) // apply in order; last-writer-wins semantics
		}
	}

	return o
}

// isNonFinite reports NaN or ±Inf.
func isNonFinite(x float64) bool { return math.IsNaN(x) || math.IsInf(x, 0) }
