package rank

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/featviz/dataset"
)

// Sentinel errors returned by the rank package.
var (
	// ErrUnknownAlgorithm indicates an algorithm outside the enumerated set.
	ErrUnknownAlgorithm = errors.New("rank: unknown pairwise algorithm")

	// ErrNoFeatures indicates a dataset with zero columns.
	ErrNoFeatures = errors.New("rank: dataset has no features")

	// ErrTooFewInstances indicates fewer than two rows; pairwise statistics
	// need at least two observations.
	ErrTooFewInstances = errors.New("rank: need at least two instances")
)

// Algorithm enumerates the supported pairwise statistics.
type Algorithm int

const (
	// Pearson computes the correlation matrix; diagonal = 1.
	Pearson Algorithm = iota

	// Covariance computes the sample covariance matrix; diagonal = variance.
	Covariance
)

// String returns the canonical lower-case name of the algorithm.
func (a Algorithm) String() string {
	switch a {
	case Pearson:
		return "pearson"
	case Covariance:
		return "covariance"
	default:
		return "unknown"
	}
}

// Matrix is the symmetric F×F pairwise score matrix of a dataset.
type Matrix struct {
	// Scores is symmetric: Scores[i][j] == Scores[j][i].
	Scores [][]float64

	// FeatureNames labels rows and columns; nil when the dataset is unnamed.
	FeatureNames []string

	// Algorithm records which statistic produced the scores.
	Algorithm Algorithm
}

// Dim reports the number of features (matrix order).
func (m *Matrix) Dim() int { return len(m.Scores) }

// At returns the score for feature pair (i, j).
func (m *Matrix) At(i, j int) float64 { return m.Scores[i][j] }

// Pairwise computes the score matrix of ds under the chosen algorithm.
func Pairwise(ds *dataset.Dataset, algorithm Algorithm) (*Matrix, error) {
	if algorithm != Pearson && algorithm != Covariance {
		return nil, fmt.Errorf("%w: %d", ErrUnknownAlgorithm, algorithm)
	}
	if ds == nil || ds.Dim() == 0 {
		return nil, ErrNoFeatures
	}
	if ds.Len() < 2 {
		return nil, ErrTooFewInstances
	}

	X := ds.Features()
	n, f := len(X), len(X[0])

	// Flatten into a dense matrix for the stat routines.
	flat := make([]float64, 0, n*f)
	for _, row := range X {
		flat = append(flat, row...)
	}
	dense := mat.NewDense(n, f, flat)

	var sym mat.SymDense
	switch algorithm {
	case Pearson:
		stat.CorrelationMatrix(&sym, dense, nil)
	case Covariance:
		stat.CovarianceMatrix(&sym, dense, nil)
	}

	scores := make([][]float64, f)
	for i := 0; i < f; i++ {
		scores[i] = make([]float64, f)
		for j := 0; j < f; j++ {
			scores[i][j] = sym.At(i, j)
		}
	}

	return &Matrix{Scores: scores, FeatureNames: ds.FeatureNames(), Algorithm: algorithm}, nil
}
