// SPDX-License-Identifier: MIT

package quiz

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"math/cmplx"

	"github.com/katalvlaran/linalg/compute"
	"github.com/katalvlaran/linalg/matrix"
	"github.com/katalvlaran/linalg/progress"
)

// DefaultTolerance is the absolute+relative tolerance applied per entry.
const DefaultTolerance = 1e-6

// ErrInvalidAnswer indicates an answer that does not decode into the shape
// expected for the operation. Such attempts are not recorded.
var ErrInvalidAnswer = errors.New("quiz: invalid answer")

// Attempt is one submitted answer.
type Attempt struct {
	QuestionID string          `json:"questionId"`
	Operation  string          `json:"operation"`
	Request    compute.Request `json:"request"`
	Answer     json.RawMessage `json:"answer"`
}

// Outcome is the graded attempt. Warning repeats the reference computation's
// warning (e.g. "ConvergenceFailure"): Correct was then judged against a
// best-effort estimate rather than a converged answer.
type Outcome struct {
	QuestionID string           `json:"questionId"`
	Correct    bool             `json:"correct"`
	Warning    string           `json:"warning,omitempty"`
	Expected   compute.Response `json:"expected"`
	Record     progress.Record  `json:"record"`
}

// Grader grades attempts. Safe for concurrent use when its Store is.
type Grader struct {
	svc    *compute.Service
	store  progress.Store
	tol    float64
	logger *slog.Logger
}

// Option configures a Grader.
type Option func(*Grader)

// WithTolerance sets the comparison tolerance. Panics unless tol is finite and ≥ 0.
func WithTolerance(tol float64) Option {
	if math.IsNaN(tol) || math.IsInf(tol, 0) || tol < 0 {
		panic("quiz: WithTolerance: tol must be finite, non-negative")
	}

	return func(g *Grader) { g.tol = tol }
}

// WithLogger sets the structured logger (default slog.Default()).
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("quiz: WithLogger: nil logger")
	}

	return func(g *Grader) { g.logger = l }
}

// NewGrader wires a Grader to its computation service and progress store.
func NewGrader(svc *compute.Service, store progress.Store, opts ...Option) *Grader {
	g := &Grader{svc: svc, store: store, tol: DefaultTolerance, logger: slog.Default()}
	for _, set := range opts {
		if set != nil {
			set(g)
		}
	}
	g.logger = g.logger.With(slog.String("component", "quiz"))

	return g
}

// Grade checks a against the reference computation and records the outcome.
//
// Errors:
//   - compute.ErrUnknownOperation for an unknown operation name.
//   - ErrInvalidAnswer when the answer cannot be decoded for the operation.
//   - progress.ErrEmptyID for a blank question id.
//
// An attempt whose request is itself invalid (e.g. a shape mismatch) is still
// gradable: the expected answer is then the ErrorKind name.
func (g *Grader) Grade(a Attempt) (Outcome, error) {
	op, err := compute.ParseOperation(a.Operation)
	if err != nil {
		return Outcome{}, fmt.Errorf("Grade %q: %w", a.QuestionID, err)
	}

	expected := g.svc.Execute(op, a.Request)
	correct, err := g.check(op, expected, a.Answer)
	if err != nil {
		return Outcome{}, fmt.Errorf("Grade %q: %w", a.QuestionID, err)
	}

	rec, err := g.store.Record(a.QuestionID, correct)
	if err != nil {
		return Outcome{}, fmt.Errorf("Grade: %w", err)
	}
	if expected.Warning != "" {
		g.logger.Info("graded against unconverged estimate",
			slog.String("question", a.QuestionID),
			slog.String("op", op.String()),
			slog.String("warning", expected.Warning))
	}
	g.logger.Debug("graded",
		slog.String("question", a.QuestionID),
		slog.String("op", op.String()),
		slog.Bool("correct", correct))

	return Outcome{
		QuestionID: a.QuestionID,
		Correct:    correct,
		Warning:    expected.Warning,
		Expected:   expected,
		Record:     rec,
	}, nil
}

// GradeAll grades attempts in order, stopping at the first error.
func (g *Grader) GradeAll(attempts []Attempt) ([]Outcome, error) {
	out := make([]Outcome, 0, len(attempts))
	for i, a := range attempts {
		o, err := g.Grade(a)
		if err != nil {
			return out, fmt.Errorf("attempt %d: %w", i, err)
		}
		out = append(out, o)
	}

	return out, nil
}

// check compares the raw answer with the expected response.
func (g *Grader) check(op compute.Operation, expected compute.Response, raw json.RawMessage) (bool, error) {
	if len(raw) == 0 {
		return false, fmt.Errorf("%w: missing", ErrInvalidAnswer)
	}

	// A string answer names the expected failure kind.
	var kind string
	if json.Unmarshal(raw, &kind) == nil {
		return !expected.Success && compute.ErrorKind(kind) == expected.Kind, nil
	}
	if !expected.Success {
		return false, nil
	}

	switch want := expected.Result.(type) {
	case [][]float64:
		var got [][]float64
		if err := json.Unmarshal(raw, &got); err != nil {
			return false, fmt.Errorf("%w: %s wants a matrix: %v", ErrInvalidAnswer, op, err)
		}
		return g.matrixClose(want, got), nil
	case float64:
		var got float64
		if err := json.Unmarshal(raw, &got); err != nil {
			return false, fmt.Errorf("%w: %s wants a number: %v", ErrInvalidAnswer, op, err)
		}
		return g.close(want, got), nil
	case []matrix.Eigenvalue:
		var got []matrix.Eigenvalue
		if err := json.Unmarshal(raw, &got); err != nil {
			return false, fmt.Errorf("%w: %s wants a list of eigenvalues: %v", ErrInvalidAnswer, op, err)
		}
		return g.spectrumClose(want, got), nil
	default:
		return false, fmt.Errorf("%s: unexpected result type %T", op, want)
	}
}

func (g *Grader) close(want, got float64) bool {
	return math.Abs(want-got) <= g.tol*(1+math.Abs(want))
}

func (g *Grader) matrixClose(want, got [][]float64) bool {
	w, err := matrix.NewFromRows(want)
	if err != nil {
		return false
	}
	a, err := matrix.NewFromRows(got)
	if err != nil {
		return false // ragged or empty answer is simply wrong
	}
	ok, err := matrix.AllClose(a, w, g.tol, g.tol)

	return err == nil && ok
}

// spectrumClose matches each expected value with the nearest unused answer.
func (g *Grader) spectrumClose(want, got []matrix.Eigenvalue) bool {
	if len(want) != len(got) {
		return false
	}
	used := make([]bool, len(got))
	for _, w := range want {
		best, bestDist := -1, math.Inf(1)
		for j, v := range got {
			if d := cmplx.Abs(w.Complex() - v.Complex()); !used[j] && d < bestDist {
				best, bestDist = j, d
			}
		}
		if best < 0 || bestDist > g.tol*(1+cmplx.Abs(w.Complex())) {
			return false
		}
		used[best] = true
	}

	return true
}
