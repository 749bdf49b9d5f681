package pca

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// Sentinel errors returned by the pca package.
var (
	// ErrNoInstances indicates a matrix with zero rows.
	ErrNoInstances = errors.New("pca: no instances")

	// ErrNoFeatures indicates a matrix with zero columns.
	ErrNoFeatures = errors.New("pca: no features")

	// ErrBadComponents indicates K outside [1, min(N, F)].
	ErrBadComponents = errors.New("pca: component count out of range")

	// ErrDimensionMismatch indicates an input whose width differs from the
	// fitting data.
	ErrDimensionMismatch = errors.New("pca: column count differs from fitted data")

	// ErrDecomposition indicates that the SVD failed to converge.
	ErrDecomposition = errors.New("pca: singular value decomposition failed")
)

// DefaultComponents is the projection dimensionality used when
// WithComponents is not supplied — the usual 2-D scatter target.
const DefaultComponents = 2

// Options configures Fit.
//
// Components – number of principal directions to keep, 1 ≤ K ≤ min(N,F).
// Scale      – additionally divide each centered column by its standard
// deviation, making the projection covariance- rather than scale-driven.
type Options struct {
	Components int
	Scale      bool
}

// Option is a functional option for configuring Fit.
type Option func(*Options)

// WithComponents sets K. Panics on non-positive K: programmer error.
// Upper-bound validation happens in Fit, where the data shape is known.
func WithComponents(k int) Option {
	if k <= 0 {
		panic(ErrBadComponents.Error())
	}

	return func(o *Options) { o.Components = k }
}

// WithScale enables unit-variance scaling of each column before the
// decomposition. Constant columns are left centered-only.
func WithScale() Option {
	return func(o *Options) { o.Scale = true }
}

// DefaultOptions returns the documented defaults: 2 components, no scaling.
func DefaultOptions() Options { return Options{Components: DefaultComponents} }

// Projection is the fitted state of a principal component analysis.
// Immutable after Fit.
type Projection struct {
	mean       []float64
	std        []float64 // nil unless Scale was requested
	components *mat.Dense
	explained  []float64 // variance ratios, one per kept component
}

// Fit computes the top-K principal components of X.
func Fit(X [][]float64, opts ...Option) (*Projection, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	n := len(X)
	if n == 0 {
		return nil, ErrNoInstances
	}
	f := len(X[0])
	if f == 0 {
		return nil, ErrNoFeatures
	}
	maxK := n
	if f < maxK {
		maxK = f
	}
	if cfg.Components < 1 || cfg.Components > maxK {
		return nil, fmt.Errorf("%w: K=%d with N=%d, F=%d", ErrBadComponents, cfg.Components, n, f)
	}
	k := cfg.Components

	// 1) Center (and optionally scale) the matrix.
	p := &Projection{mean: make([]float64, f)}
	for _, row := range X {
		if len(row) != f {
			return nil, fmt.Errorf("%w: ragged input", ErrDimensionMismatch)
		}
		for j, v := range row {
			p.mean[j] += v
		}
	}
	for j := range p.mean {
		p.mean[j] /= float64(n)
	}
	if cfg.Scale {
		p.std = make([]float64, f)
		for _, row := range X {
			for j, v := range row {
				d := v - p.mean[j]
				p.std[j] += d * d
			}
		}
		for j := range p.std {
			p.std[j] = math.Sqrt(p.std[j] / float64(n))
		}
	}

	z := mat.NewDense(n, f, nil)
	for i, row := range X {
		for j, v := range row {
			z.Set(i, j, p.normalize(j, v))
		}
	}

	// 2) Thin SVD of the centered matrix: Z = U·Σ·Vᵀ. Principal directions
	//    are the columns of V; variances are σ²/(n−1).
	var svd mat.SVD
	if ok := svd.Factorize(z, mat.SVDThin); !ok {
		return nil, ErrDecomposition
	}

	var v mat.Dense
	svd.VTo(&v)
	sigma := svd.Values(nil)

	total := 0.0
	variances := make([]float64, len(sigma))
	for i, s := range sigma {
		variances[i] = s * s / float64(n-1)
		total += variances[i]
	}

	p.components = mat.NewDense(k, f, nil)
	p.explained = make([]float64, k)
	for comp := 0; comp < k; comp++ {
		for j := 0; j < f; j++ {
			p.components.Set(comp, j, v.At(j, comp))
		}
		if total > 0 {
			p.explained[comp] = variances[comp] / total
		}
	}

	return p, nil
}

// normalize applies the fitted centering (and scaling) to one value.
func (p *Projection) normalize(j int, v float64) float64 {
	v -= p.mean[j]
	if p.std != nil && p.std[j] > 0 {
		v /= p.std[j]
	}

	return v
}

// denormalize undoes normalize.
func (p *Projection) denormalize(j int, v float64) float64 {
	if p.std != nil && p.std[j] > 0 {
		v *= p.std[j]
	}

	return v + p.mean[j]
}

// K reports the number of kept components.
func (p *Projection) K() int {
	k, _ := p.components.Dims()

	return k
}

// Components returns a copy of the K×F component matrix; row k is the
// k-th principal direction (a unit vector in feature space).
func (p *Projection) Components() [][]float64 {
	k, f := p.components.Dims()
	out := make([][]float64, k)
	for i := 0; i < k; i++ {
		out[i] = make([]float64, f)
		for j := 0; j < f; j++ {
			out[i][j] = p.components.At(i, j)
		}
	}

	return out
}

// ExplainedVarianceRatio returns a copy of the per-component share of
// total variance, in component order.
func (p *Projection) ExplainedVarianceRatio() []float64 {
	return append([]float64(nil), p.explained...)
}

// Transform projects each row of X into the K-dimensional component space.
func (p *Projection) Transform(X [][]float64) ([][]float64, error) {
	if len(X) == 0 {
		return nil, ErrNoInstances
	}
	k, f := p.components.Dims()

	out := make([][]float64, len(X))
	for i, row := range X {
		if len(row) != f {
			return nil, fmt.Errorf("%w: row %d has %d columns, fitted on %d", ErrDimensionMismatch, i, len(row), f)
		}
		coords := make([]float64, k)
		for comp := 0; comp < k; comp++ {
			s := 0.0
			for j, v := range row {
				s += p.normalize(j, v) * p.components.At(comp, j)
			}
			coords[comp] = s
		}
		out[i] = coords
	}

	return out, nil
}

// Inverse maps K-dimensional coordinates back into feature space,
// reconstructing the original data up to the variance discarded by the
// projection (exactly, when K equals the matrix rank).
func (p *Projection) Inverse(Z [][]float64) ([][]float64, error) {
	if len(Z) == 0 {
		return nil, ErrNoInstances
	}
	k, f := p.components.Dims()

	out := make([][]float64, len(Z))
	for i, coords := range Z {
		if len(coords) != k {
			return nil, fmt.Errorf("%w: row %d has %d coordinates, projection has %d", ErrDimensionMismatch, i, len(coords), k)
		}
		row := make([]float64, f)
		for j := 0; j < f; j++ {
			s := 0.0
			for comp := 0; comp < k; comp++ {
				s += coords[comp] * p.components.At(comp, j)
			}
			row[j] = p.denormalize(j, s)
		}
		out[i] = row
	}

	return out, nil
}
