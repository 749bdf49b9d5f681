package preprocess

import (
	"fmt"
	"math"
)

// Column scalers. Each Fit* function consumes a matrix and returns an
// immutable fitted value object; Transform never mutates its input and a
// second Fit* call produces a fresh object rather than updating the first.

// MinMaxScaler holds per-column minima and maxima observed at fit time.
type MinMaxScaler struct {
	Min []float64
	Max []float64
}

// FitMinMax computes per-column minima and maxima of X.
func FitMinMax(X [][]float64) (*MinMaxScaler, error) {
	if len(X) == 0 || len(X[0]) == 0 {
		return nil, ErrEmptyInput
	}

	cols := len(X[0])
	s := &MinMaxScaler{Min: make([]float64, cols), Max: make([]float64, cols)}
	for j := 0; j < cols; j++ {
		s.Min[j], s.Max[j] = math.Inf(1), math.Inf(-1)
	}
	for _, row := range X {
		for j, v := range row {
			if v < s.Min[j] {
				s.Min[j] = v
			}
			if v > s.Max[j] {
				s.Max[j] = v
			}
		}
	}

	return s, nil
}

// Transform maps each column into [0,1] by the fitted range. Columns that
// were constant at fit time map to 0.
func (s *MinMaxScaler) Transform(X [][]float64) ([][]float64, error) {
	return columnApply(X, len(s.Min), func(j int, v float64) float64 {
		span := s.Max[j] - s.Min[j]
		if span == 0 {
			return 0
		}

		return (v - s.Min[j]) / span
	})
}

// MaxAbsScaler holds per-column maximum absolute values observed at fit time.
type MaxAbsScaler struct {
	MaxAbs []float64
}

// FitMaxAbs computes per-column maximum absolute values of X.
func FitMaxAbs(X [][]float64) (*MaxAbsScaler, error) {
	if len(X) == 0 || len(X[0]) == 0 {
		return nil, ErrEmptyInput
	}

	s := &MaxAbsScaler{MaxAbs: make([]float64, len(X[0]))}
	for _, row := range X {
		for j, v := range row {
			if a := math.Abs(v); a > s.MaxAbs[j] {
				s.MaxAbs[j] = a
			}
		}
	}

	return s, nil
}

// Transform divides each column by its fitted maximum absolute value,
// preserving sign. All-zero columns stay 0.
func (s *MaxAbsScaler) Transform(X [][]float64) ([][]float64, error) {
	return columnApply(X, len(s.MaxAbs), func(j int, v float64) float64 {
		if s.MaxAbs[j] == 0 {
			return 0
		}

		return v / s.MaxAbs[j]
	})
}

// StandardScaler holds per-column means and standard deviations observed at
// fit time. The population deviation (divisor n) is used, matching the
// convention of the scalers this package mirrors.
type StandardScaler struct {
	Mean []float64
	Std  []float64
}

// FitStandard computes per-column means and standard deviations of X.
func FitStandard(X [][]float64) (*StandardScaler, error) {
	if len(X) == 0 || len(X[0]) == 0 {
		return nil, ErrEmptyInput
	}

	n, cols := len(X), len(X[0])
	s := &StandardScaler{Mean: make([]float64, cols), Std: make([]float64, cols)}
	for _, row := range X {
		for j, v := range row {
			s.Mean[j] += v
		}
	}
	for j := 0; j < cols; j++ {
		s.Mean[j] /= float64(n)
	}
	for _, row := range X {
		for j, v := range row {
			d := v - s.Mean[j]
			s.Std[j] += d * d
		}
	}
	for j := 0; j < cols; j++ {
		s.Std[j] = math.Sqrt(s.Std[j] / float64(n))
	}

	return s, nil
}

// Transform centers and scales each column. Zero-deviation columns map to 0.
func (s *StandardScaler) Transform(X [][]float64) ([][]float64, error) {
	return columnApply(X, len(s.Mean), func(j int, v float64) float64 {
		if s.Std[j] == 0 {
			return 0
		}

		return (v - s.Mean[j]) / s.Std[j]
	})
}

// columnApply validates the width of X against the fitted width and maps f
// over every cell into a freshly allocated matrix.
func columnApply(X [][]float64, fittedCols int, f func(j int, v float64) float64) ([][]float64, error) {
	if len(X) == 0 {
		return nil, ErrEmptyInput
	}

	out := make([][]float64, len(X))
	for i, row := range X {
		if len(row) != fittedCols {
			return nil, fmt.Errorf("%w: row %d has %d columns, fitted on %d", ErrDimensionMismatch, i, len(row), fittedCols)
		}
		out[i] = make([]float64, fittedCols)
		for j, v := range row {
			out[i][j] = f(j, v)
		}
	}

	return out, nil
}

// NormalizeL1 divides each row by its 1-norm. Rows whose norm is zero are
// returned unchanged (all zeros). Stateless: there is nothing to fit.
func NormalizeL1(X [][]float64) ([][]float64, error) {
	return rowNormalize(X, func(row []float64) float64 {
		sum := 0.0
		for _, v := range row {
			sum += math.Abs(v)
		}

		return sum
	})
}

// NormalizeL2 divides each row by its Euclidean norm. Zero rows stay zero.
func NormalizeL2(X [][]float64) ([][]float64, error) {
	return rowNormalize(X, func(row []float64) float64 {
		sum := 0.0
		for _, v := range row {
			sum += v * v
		}

		return math.Sqrt(sum)
	})
}

func rowNormalize(X [][]float64, norm func([]float64) float64) ([][]float64, error) {
	if len(X) == 0 {
		return nil, ErrEmptyInput
	}

	out := make([][]float64, len(X))
	for i, row := range X {
		out[i] = make([]float64, len(row))
		n := norm(row)
		if n == 0 {
			continue
		}
		for j, v := range row {
			out[i][j] = v / n
		}
	}

	return out, nil
}
