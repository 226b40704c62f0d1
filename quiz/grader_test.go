// SPDX-License-Identifier: MIT
package quiz_test

import (
	"encoding/json"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/linalg/compute"
	"github.com/katalvlaran/linalg/matrix"
	"github.com/katalvlaran/linalg/progress"
	"github.com/katalvlaran/linalg/quiz"
)

func newGrader(t *testing.T, opts ...quiz.Option) (*quiz.Grader, *progress.MemoryStore) {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	store := progress.NewMemoryStore()
	svc := compute.NewService(compute.WithLogger(logger))

	return quiz.NewGrader(svc, store, append([]quiz.Option{quiz.WithLogger(logger)}, opts...)...), store
}

func attempt(id, op string, a, b [][]float64, answer string) quiz.Attempt {
	return quiz.Attempt{
		QuestionID: id,
		Operation:  op,
		Request:    compute.Request{MatrixA: a, MatrixB: b},
		Answer:     json.RawMessage(answer),
	}
}

func TestGrade_Table(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		attempt quiz.Attempt
		correct bool
	}{
		{"add right", attempt("q-add", "add",
			[][]float64{{1, 2}, {3, 4}}, [][]float64{{5, 6}, {7, 8}}, `[[6, 8], [10, 12]]`), true},
		{"add wrong entry", attempt("q-add", "add",
			[][]float64{{1, 2}, {3, 4}}, [][]float64{{5, 6}, {7, 8}}, `[[6, 8], [10, 13]]`), false},
		{"add wrong shape", attempt("q-add", "add",
			[][]float64{{1, 2}, {3, 4}}, [][]float64{{5, 6}, {7, 8}}, `[[6, 8]]`), false},
		{"determinant right", attempt("q-det", "determinant",
			[][]float64{{4, 3}, {6, 3}}, nil, `-6`), true},
		{"determinant within tolerance", attempt("q-det", "determinant",
			[][]float64{{4, 3}, {6, 3}}, nil, `-6.0000001`), true},
		{"determinant wrong", attempt("q-det", "determinant",
			[][]float64{{4, 3}, {6, 3}}, nil, `6`), false},
		{"inverse rounded", attempt("q-inv", "inverse",
			[][]float64{{4, 7}, {2, 6}}, nil, `[[0.6, -0.7], [-0.2, 0.4]]`), true},
		{"eigenvalues any order", attempt("q-eig", "eigenvalues",
			[][]float64{{4, 1}, {2, 3}}, nil, `[2, 5]`), true},
		{"eigenvalues complex pair", attempt("q-eig-c", "eigenvalues",
			[][]float64{{1, -2}, {2, 1}}, nil, `[{"real": 1, "imag": -2}, {"real": 1, "imag": 2}]`), true},
		{"eigenvalues missing one", attempt("q-eig", "eigenvalues",
			[][]float64{{4, 1}, {2, 3}}, nil, `[5]`), false},
		{"singular named", attempt("q-sing", "inverse",
			[][]float64{{1, 2}, {2, 4}}, nil, `"SingularMatrix"`), true},
		{"singular but numbers given", attempt("q-sing", "inverse",
			[][]float64{{1, 2}, {2, 4}}, nil, `[[1, 0], [0, 1]]`), false},
		{"shape mismatch named", attempt("q-mm", "multiply",
			[][]float64{{1, 2}, {3, 4}}, [][]float64{{1}, {2}, {3}}, `"ShapeMismatch"`), true},
		{"kind named for a valid request", attempt("q-det", "determinant",
			[][]float64{{4, 3}, {6, 3}}, nil, `"SingularMatrix"`), false},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			g, store := newGrader(t)
			out, err := g.Grade(tc.attempt)
			require.NoError(t, err)
			require.Equal(t, tc.correct, out.Correct)
			require.Equal(t, tc.attempt.QuestionID, out.QuestionID)

			rec, ok := store.Get(tc.attempt.QuestionID)
			require.True(t, ok)
			require.Equal(t, out.Record, rec)
			require.Equal(t, 1, rec.Attempts())
		})
	}
}

func TestGrade_Errors(t *testing.T) {
	g, store := newGrader(t)

	_, err := g.Grade(attempt("q1", "cofactor", [][]float64{{1}}, nil, `1`))
	require.ErrorIs(t, err, compute.ErrUnknownOperation)

	_, err = g.Grade(attempt("q1", "trace", [][]float64{{1}}, nil, `[[1]]`))
	require.ErrorIs(t, err, quiz.ErrInvalidAnswer)

	_, err = g.Grade(attempt("q1", "trace", [][]float64{{1}}, nil, ``))
	require.ErrorIs(t, err, quiz.ErrInvalidAnswer)

	_, err = g.Grade(attempt("", "trace", [][]float64{{1}}, nil, `1`))
	require.ErrorIs(t, err, progress.ErrEmptyID)

	require.Zero(t, store.Len(), "failed gradings are not recorded")
}

func TestGradeAll_AccumulatesProgress(t *testing.T) {
	g, store := newGrader(t)
	attempts := []quiz.Attempt{
		attempt("q-det", "determinant", [][]float64{{4, 3}, {6, 3}}, nil, `5`),
		attempt("q-det", "determinant", [][]float64{{4, 3}, {6, 3}}, nil, `-6`),
		attempt("q-tr", "trace", [][]float64{{4, 3}, {6, 3}}, nil, `7`),
	}
	out, err := g.GradeAll(attempts)
	require.NoError(t, err)
	require.Len(t, out, 3)

	snap := store.Snapshot()
	require.Equal(t, 1, snap["q-det"].Correct)
	require.Equal(t, 1, snap["q-det"].Incorrect)
	require.Equal(t, 1, snap["q-tr"].Correct)

	store.Reset()
	require.Zero(t, store.Len())
}

func TestGradeAll_StopsAtFirstError(t *testing.T) {
	g, _ := newGrader(t)
	out, err := g.GradeAll([]quiz.Attempt{
		attempt("q1", "trace", [][]float64{{1}}, nil, `1`),
		attempt("q2", "nope", [][]float64{{1}}, nil, `1`),
		attempt("q3", "trace", [][]float64{{1}}, nil, `1`),
	})
	require.ErrorIs(t, err, compute.ErrUnknownOperation)
	require.ErrorContains(t, err, "attempt 1")
	require.Len(t, out, 1)
}

func TestGrade_CarriesConvergenceWarning(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	svc := compute.NewService(compute.WithLogger(logger),
		compute.WithMatrixOptions(matrix.WithMaxIterations(50)))
	g := quiz.NewGrader(svc, progress.NewMemoryStore(), quiz.WithLogger(logger))

	cyclic4 := [][]float64{{0, 0, 0, 1}, {1, 0, 0, 0}, {0, 1, 0, 0}, {0, 0, 1, 0}}
	out, err := g.Grade(attempt("q-cyc", "eigenvalues", cyclic4, nil,
		`[1, -1, {"real": 0, "imag": 1}, {"real": 0, "imag": -1}]`))
	require.NoError(t, err)
	require.Equal(t, compute.KindConvergenceFailure.String(), out.Warning)
	require.Equal(t, out.Warning, out.Expected.Warning)
	require.Equal(t, 1, out.Record.Attempts())

	b, err := json.Marshal(out)
	require.NoError(t, err)
	require.Contains(t, string(b), `"warning":"ConvergenceFailure"`)

	out, err = g.Grade(attempt("q-eig", "eigenvalues", [][]float64{{4, 1}, {2, 3}}, nil, `[5, 2]`))
	require.NoError(t, err)
	require.True(t, out.Correct)
	require.Empty(t, out.Warning)
}

func TestWithTolerance(t *testing.T) {
	g, _ := newGrader(t, quiz.WithTolerance(0))
	out, err := g.Grade(attempt("q", "determinant", [][]float64{{4, 3}, {6, 3}}, nil, `-6.0000001`))
	require.NoError(t, err)
	require.False(t, out.Correct)

	require.Panics(t, func() { quiz.WithTolerance(-1) })
}

func TestAttempt_JSON(t *testing.T) {
	var a quiz.Attempt
	require.NoError(t, json.Unmarshal([]byte(`{
		"questionId": "q-det",
		"operation": "determinant",
		"request": {"matrixA": [[4, 3], [6, 3]]},
		"answer": -6
	}`), &a))
	require.Equal(t, "q-det", a.QuestionID)
	require.Equal(t, [][]float64{{4, 3}, {6, 3}}, a.Request.MatrixA)
	require.JSONEq(t, `-6`, string(a.Answer))
}
