package model

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Sentinel errors returned by the model package.
var (
	// ErrDimensionMismatch indicates X and y disagree on row count, or a
	// prediction input disagrees with the fitted width.
	ErrDimensionMismatch = errors.New("model: dimension mismatch")

	// ErrTooFewInstances indicates fewer rows than free parameters.
	ErrTooFewInstances = errors.New("model: not enough instances to fit")

	// ErrSingular indicates a rank-deficient design matrix.
	ErrSingular = errors.New("model: design matrix is singular")
)

// LinearModel is the fitted state of an ordinary least-squares regression:
// an intercept plus one coefficient per feature. Immutable after FitLinear.
type LinearModel struct {
	intercept float64
	coefs     []float64
}

// FitLinear solves min ‖Xβ − y‖₂ with an intercept term via QR
// factorization and returns the fitted model.
func FitLinear(X [][]float64, y []float64) (*LinearModel, error) {
	n := len(X)
	if n == 0 || len(X[0]) == 0 {
		return nil, fmt.Errorf("%w: empty design matrix", ErrDimensionMismatch)
	}
	if len(y) != n {
		return nil, fmt.Errorf("%w: %d rows, %d targets", ErrDimensionMismatch, n, len(y))
	}
	f := len(X[0])
	if n < f+1 {
		return nil, fmt.Errorf("%w: %d rows for %d parameters", ErrTooFewInstances, n, f+1)
	}

	// Design matrix with a leading all-ones intercept column.
	a := mat.NewDense(n, f+1, nil)
	for i, row := range X {
		if len(row) != f {
			return nil, fmt.Errorf("%w: row %d has %d columns, want %d", ErrDimensionMismatch, i, len(row), f)
		}
		a.Set(i, 0, 1)
		for j, v := range row {
			a.Set(i, j+1, v)
		}
	}

	var qr mat.QR
	qr.Factorize(a)

	var beta mat.Dense
	if err := qr.SolveTo(&beta, false, mat.NewVecDense(n, append([]float64(nil), y...))); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSingular, err)
	}

	m := &LinearModel{intercept: beta.At(0, 0), coefs: make([]float64, f)}
	for j := 0; j < f; j++ {
		m.coefs[j] = beta.At(j+1, 0)
	}

	return m, nil
}

// Coefficients returns a copy of the per-feature weights (intercept
// excluded), satisfying importance.CoefficientSource.
func (m *LinearModel) Coefficients() []float64 {
	return append([]float64(nil), m.coefs...)
}

// Intercept returns the fitted bias term.
func (m *LinearModel) Intercept() float64 { return m.intercept }

// Predict evaluates the fitted model on each row of X.
func (m *LinearModel) Predict(X [][]float64) ([]float64, error) {
	out := make([]float64, len(X))
	for i, row := range X {
		if len(row) != len(m.coefs) {
			return nil, fmt.Errorf("%w: row %d has %d columns, fitted on %d", ErrDimensionMismatch, i, len(row), len(m.coefs))
		}
		s := m.intercept
		for j, v := range row {
			s += m.coefs[j] * v
		}
		out[i] = s
	}

	return out, nil
}
