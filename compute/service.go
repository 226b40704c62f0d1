// SPDX-License-Identifier: MIT

package compute

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/katalvlaran/linalg/matrix"
)

// Service dispatches operations to the matrix core.
type Service struct {
	logger *slog.Logger
	mopts  []matrix.Option
}

// ServiceOption configures a Service.
type ServiceOption func(*Service)

// WithLogger sets the structured logger (default slog.Default()).
// A "component=compute" attribute is always added.
func WithLogger(l *slog.Logger) ServiceOption {
	if l == nil {
		panic("compute: WithLogger: nil logger")
	}

	return func(s *Service) { s.logger = l }
}

// WithMatrixOptions forwards numeric options (epsilon, eigen tolerance,
// iteration cap, strict convergence) to every core call.
func WithMatrixOptions(opts ...matrix.Option) ServiceOption {
	return func(s *Service) { s.mopts = append(s.mopts, opts...) }
}

// NewService builds an immutable Service.
func NewService(opts ...ServiceOption) *Service {
	s := &Service{logger: slog.Default()}
	for _, set := range opts {
		if set != nil {
			set(s)
		}
	}
	s.logger = s.logger.With(slog.String("component", "compute"))

	return s
}

// Options returns the effective numeric policy.
func (s *Service) Options() matrix.Options { return matrix.NewOptions(s.mopts...) }

// Run parses name and executes it; an unknown name is an InvalidInput response.
func (s *Service) Run(name string, req Request) Response {
	op, err := ParseOperation(name)
	if err != nil {
		s.logFailure(Operation(name), err)
		return Failure(err)
	}

	return s.Execute(op, req)
}

// Execute runs op on req and never panics.
//
// Behavior:
//   - Success: Result is [][]float64 (matrix results), float64 (determinant,
//     trace) or []matrix.Eigenvalue (eigenvalues).
//   - Failure: Error is the wrapped core message; Kind classifies it.
//   - A non-converged eigenvalue estimate is a success carrying
//     Warning "ConvergenceFailure" (an error under strict convergence).
//   - A panic escaping the core is recovered and reported as Internal.
func (s *Service) Execute(op Operation, req Request) Response {
	log := s.logger.With(slog.String("op", op.String()))

	return s.guard(log, func() Response {
		log.Debug("executing",
			slog.Int("rowsA", len(req.MatrixA)),
			slog.Int("rowsB", len(req.MatrixB)),
			slog.Bool("scalar", req.Scalar != nil))

		result, warning, err := s.dispatch(op, req)
		if err != nil {
			s.logFailure(op, err)
			return Failure(err)
		}
		if warning != "" {
			log.Warn("eigenvalue estimate did not converge",
				slog.Int("max_iterations", s.Options().MaxIterations()))
		}

		return Response{Success: true, Result: result, Warning: warning}
	})
}

// guard runs fn, converting a panic into an Internal failure.
func (s *Service) guard(log *slog.Logger, fn func() Response) (resp Response) {
	defer func() {
		if r := recover(); r != nil {
			log.Error("operation panicked", slog.Any("panic", r))
			resp = Failure(fmt.Errorf("%w: %v", errPanic, r))
		}
	}()

	return fn()
}

func (s *Service) logFailure(op Operation, err error) {
	kind := KindOf(err)
	level := slog.LevelError
	if kind.IsClientError() || kind == KindSingularMatrix || kind == KindConvergenceFailure {
		level = slog.LevelInfo
	}
	s.logger.Log(context.Background(), level, "operation failed",
		slog.String("op", op.String()),
		slog.String("kind", kind.String()),
		slog.String("error", err.Error()))
}

// dispatch performs the computation. warning is non-empty only for a
// non-converged eigenvalue estimate.
func (s *Service) dispatch(op Operation, req Request) (result any, warning string, err error) {
	if _, err = ParseOperation(string(op)); err != nil {
		return nil, "", err
	}

	a, err := operand("matrixA", req.MatrixA)
	if err != nil {
		return nil, "", err
	}
	var b *matrix.Dense
	if op.Binary() {
		if req.MatrixB == nil {
			return nil, "", fmt.Errorf("%s: %w: matrixB", op, ErrMissingOperand)
		}
		if b, err = operand("matrixB", req.MatrixB); err != nil {
			return nil, "", err
		}
	}
	if op.NeedsScalar() && req.Scalar == nil {
		return nil, "", fmt.Errorf("%s: %w: scalar", op, ErrMissingOperand)
	}

	var m *matrix.Dense
	switch op {
	case OpAdd:
		m, err = matrix.Add(a, b)
	case OpSubtract:
		m, err = matrix.Sub(a, b)
	case OpMultiply:
		m, err = matrix.Mul(a, b)
	case OpScalarMultiply:
		m, err = matrix.Scale(a, *req.Scalar)
	case OpTranspose:
		m, err = matrix.Transpose(a)
	case OpInverse:
		m, err = matrix.Inverse(a, s.mopts...)
	case OpDeterminant:
		d, derr := matrix.Determinant(a, s.mopts...)
		return d, "", derr
	case OpTrace:
		tr, terr := matrix.Trace(a)
		return tr, "", terr
	case OpEigenvalues:
		res, eerr := matrix.Eigenvalues(a, s.mopts...)
		if eerr != nil {
			return nil, "", eerr
		}
		if !res.Converged {
			warning = KindConvergenceFailure.String()
		}
		return res.Values, warning, nil
	}
	if err != nil {
		return nil, "", err
	}

	return m.ToRows(), "", nil
}

// operand converts a wire matrix, tagging validation failures with its field name.
func operand(field string, rows [][]float64) (*matrix.Dense, error) {
	m, err := matrix.NewFromRows(rows)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", field, err)
	}

	return m, nil
}
