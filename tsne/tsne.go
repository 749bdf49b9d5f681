package tsne

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/katalvlaran/featviz/dataset"
	"github.com/katalvlaran/featviz/pca"
)

// Gradient descent schedule constants of the exact algorithm.
const (
	exaggeration     = 4.0 // input affinity multiplier during the early phase
	exaggerationStop = 100 // iteration at which exaggeration is removed
	momentumSwitch   = 250 // iteration at which momentum rises
	initialMomentum  = 0.5
	finalMomentum    = 0.8
	minGain          = 0.01
	minProb          = 1e-12
	initScale        = 1e-4 // spread of the seeded initial layout
)

// Embedding is the low-dimensional t-SNE layout of a dataset. It is a
// pure value: renderers read it, nothing mutates it.
type Embedding struct {
	// Points holds one coordinate row per instance, each of width Dims.
	Points [][]float64

	// Dims is 2 or 3, per the configured output dimensionality.
	Dims int

	// Target carries the dataset's labels for class coloring; nil when
	// unlabeled.
	Target []float64
}

// Rows reports the number of embedded instances.
func (e *Embedding) Rows() int { return len(e.Points) }

// Embed computes the t-SNE embedding of ds.
func Embed(ds *dataset.Dataset, opts ...Option) (*Embedding, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	if ds == nil || ds.Len() == 0 {
		return nil, ErrNoInstances
	}
	n := ds.Len()
	if ds.Dim() == 0 {
		return nil, ErrNoFeatures
	}
	if cfg.Perplexity < 1 || cfg.Perplexity >= float64(n) {
		return nil, fmt.Errorf("%w: perplexity=%g with N=%d", ErrBadPerplexity, cfg.Perplexity, n)
	}

	// Stage one: reduce wide matrices onto their leading principal
	// components before the quadratic affinity pass.
	X := ds.Features()
	if ds.Dim() > pcaCutoff {
		k := pcaCutoff
		if n < k {
			k = n
		}
		proj, err := pca.Fit(X, pca.WithComponents(k))
		if err != nil {
			return nil, fmt.Errorf("tsne: reduction stage: %w", err)
		}
		if X, err = proj.Transform(X); err != nil {
			return nil, fmt.Errorf("tsne: reduction stage: %w", err)
		}
	}

	// Stage two: stochastic neighbor embedding proper.
	P := inputAffinities(X, cfg.Perplexity)
	points := descend(P, cfg)

	return &Embedding{Points: points, Dims: cfg.OutputDims, Target: ds.Target()}, nil
}

// inputAffinities returns the symmetrized joint probabilities p_ij. Each
// row's Gaussian bandwidth is found by binary search on the precision
// β = 1/(2σ²) so that the conditional distribution's perplexity matches
// the target.
func inputAffinities(X [][]float64, perplexity float64) [][]float64 {
	n := len(X)
	D := squaredDistances(X)
	logU := math.Log(perplexity)

	cond := make([][]float64, n)
	row := make([]float64, n)
	for i := 0; i < n; i++ {
		beta := 1.0
		betaMin := math.Inf(-1)
		betaMax := math.Inf(1)

		var h float64
		for step := 0; step < 50; step++ {
			h = condRow(D[i], i, beta, row)
			diff := h - logU
			if math.Abs(diff) < 1e-5 {
				break
			}
			// Entropy too high → distribution too flat → raise β.
			if diff > 0 {
				betaMin = beta
				if math.IsInf(betaMax, 1) {
					beta *= 2
				} else {
					beta = (beta + betaMax) / 2
				}
			} else {
				betaMax = beta
				if math.IsInf(betaMin, -1) {
					beta /= 2
				} else {
					beta = (beta + betaMin) / 2
				}
			}
		}

		cond[i] = append([]float64(nil), row...)
	}

	// Symmetrize and normalize: p_ij = (p_j|i + p_i|j) / 2N, floored so
	// the KL gradient never divides by zero.
	P := make([][]float64, n)
	for i := range P {
		P[i] = make([]float64, n)
	}
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			p := (cond[i][j] + cond[j][i]) / (2 * float64(n))
			if p < minProb {
				p = minProb
			}
			P[i][j] = p
		}
	}

	return P
}

// condRow fills out with the conditional distribution p_·|i at precision
// beta and returns its Shannon entropy (natural log base).
func condRow(d []float64, i int, beta float64, out []float64) float64 {
	sum := 0.0
	for j := range d {
		if j == i {
			out[j] = 0
			continue
		}
		out[j] = math.Exp(-d[j] * beta)
		sum += out[j]
	}
	if sum == 0 {
		// Degenerate row (duplicate points at extreme β): fall back to
		// uniform over the other instances.
		u := 1 / float64(len(d)-1)
		for j := range out {
			if j != i {
				out[j] = u
			}
		}

		return math.Log(float64(len(d) - 1))
	}

	// H = ln Σexp(−βd) + β·Σ d·p
	h := math.Log(sum)
	for j := range d {
		if j == i {
			continue
		}
		out[j] /= sum
		h += beta * d[j] * out[j]
	}

	return h
}

// squaredDistances returns the N×N matrix of squared Euclidean distances.
func squaredDistances(X [][]float64) [][]float64 {
	n := len(X)
	D := make([][]float64, n)
	for i := range D {
		D[i] = make([]float64, n)
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			s := 0.0
			for c := range X[i] {
				d := X[i][c] - X[j][c]
				s += d * d
			}
			D[i][j] = s
			D[j][i] = s
		}
	}

	return D
}

// descend runs the gradient descent over the output layout: Student-t
// output kernel, momentum with a mid-run switch, per-coordinate adaptive
// gains and early exaggeration of the input affinities.
func descend(P [][]float64, cfg Options) [][]float64 {
	n := len(P)
	dims := cfg.OutputDims

	// 1) Early exaggeration.
	for i := range P {
		for j := range P[i] {
			P[i][j] *= exaggeration
		}
	}

	// 2) Seeded initial layout, tightly packed around the origin.
	rng := rand.New(rand.NewSource(cfg.Seed))
	Y := make([][]float64, n)
	velocity := make([][]float64, n)
	gains := make([][]float64, n)
	for i := range Y {
		Y[i] = make([]float64, dims)
		velocity[i] = make([]float64, dims)
		gains[i] = make([]float64, dims)
		for d := range Y[i] {
			Y[i][d] = rng.NormFloat64() * initScale
			gains[i][d] = 1
		}
	}

	num := make([][]float64, n)
	for i := range num {
		num[i] = make([]float64, n)
	}
	grad := make([]float64, dims)

	for iter := 0; iter < cfg.Iterations; iter++ {
		// 3) Student-t output affinities: num_ij = 1/(1+‖y_i−y_j‖²).
		sumNum := 0.0
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				s := 0.0
				for d := 0; d < dims; d++ {
					diff := Y[i][d] - Y[j][d]
					s += diff * diff
				}
				v := 1 / (1 + s)
				num[i][j] = v
				num[j][i] = v
				sumNum += 2 * v
			}
		}
		if sumNum < minProb {
			sumNum = minProb
		}

		momentum := initialMomentum
		if iter >= momentumSwitch {
			momentum = finalMomentum
		}

		// 4) KL gradient and parameter update per instance.
		for i := 0; i < n; i++ {
			for d := range grad {
				grad[d] = 0
			}
			for j := 0; j < n; j++ {
				if j == i {
					continue
				}
				q := num[i][j] / sumNum
				if q < minProb {
					q = minProb
				}
				mult := 4 * (P[i][j] - q) * num[i][j]
				for d := 0; d < dims; d++ {
					grad[d] += mult * (Y[i][d] - Y[j][d])
				}
			}

			for d := 0; d < dims; d++ {
				// Gain grows when gradient and velocity disagree,
				// shrinks when they agree.
				if (grad[d] > 0) == (velocity[i][d] > 0) {
					gains[i][d] *= 0.8
				} else {
					gains[i][d] += 0.2
				}
				if gains[i][d] < minGain {
					gains[i][d] = minGain
				}
				velocity[i][d] = momentum*velocity[i][d] - cfg.LearningRate*gains[i][d]*grad[d]
				Y[i][d] += velocity[i][d]
			}
		}

		// 5) Recenter the layout so it does not drift.
		for d := 0; d < dims; d++ {
			mean := 0.0
			for i := 0; i < n; i++ {
				mean += Y[i][d]
			}
			mean /= float64(n)
			for i := 0; i < n; i++ {
				Y[i][d] -= mean
			}
		}

		// 6) Remove the exaggeration once the global arrangement settles.
		if iter == exaggerationStop-1 {
			for i := range P {
				for j := range P[i] {
					P[i][j] /= exaggeration
				}
			}
		}
	}

	return Y
}
