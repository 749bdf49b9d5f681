package tsne

import "errors"

// Sentinel errors returned by the tsne package.
var (
	// ErrNoInstances indicates a dataset with zero rows.
	ErrNoInstances = errors.New("tsne: dataset has no instances")

	// ErrNoFeatures indicates a dataset with zero columns.
	ErrNoFeatures = errors.New("tsne: dataset has no features")

	// ErrBadPerplexity indicates a perplexity outside [1, N).
	ErrBadPerplexity = errors.New("tsne: perplexity must be at least 1 and below the instance count")

	// ErrBadDims indicates an output dimensionality other than 2 or 3.
	ErrBadDims = errors.New("tsne: output dimensionality must be 2 or 3")

	// ErrBadIterations indicates a non-positive iteration count.
	ErrBadIterations = errors.New("tsne: iteration count must be positive")

	// ErrBadLearningRate indicates a non-positive learning rate.
	ErrBadLearningRate = errors.New("tsne: learning rate must be positive")
)

// Defaults used when the corresponding option is not supplied.
const (
	DefaultPerplexity   = 30.0
	DefaultIterations   = 1000
	DefaultLearningRate = 200.0
	DefaultOutputDims   = 2
	DefaultSeed         = 1

	// pcaCutoff is the input width above which stage one (principal
	// component reduction) kicks in.
	pcaCutoff = 50
)

// Options configures Embed.
//
// Perplexity   – effective neighborhood size; larger values favor global
// structure. Must hold 1 ≤ Perplexity < N.
// Iterations   – gradient descent steps.
// LearningRate – gradient step scale (η).
// OutputDims   – 2 or 3.
// Seed         – source for the initial layout.
type Options struct {
	Perplexity   float64
	Iterations   int
	LearningRate float64
	OutputDims   int
	Seed         int64
}

// Option is a functional option for configuring Embed.
type Option func(*Options)

// WithPerplexity sets the target perplexity. Panics on values below 1:
// programmer error. The N-dependent upper bound is validated in Embed.
func WithPerplexity(p float64) Option {
	if p < 1 {
		panic(ErrBadPerplexity.Error())
	}

	return func(o *Options) { o.Perplexity = p }
}

// WithIterations sets the gradient descent step count. Panics on
// non-positive counts: programmer error.
func WithIterations(n int) Option {
	if n <= 0 {
		panic(ErrBadIterations.Error())
	}

	return func(o *Options) { o.Iterations = n }
}

// WithLearningRate sets η. Panics on non-positive rates: programmer error.
func WithLearningRate(eta float64) Option {
	if eta <= 0 {
		panic(ErrBadLearningRate.Error())
	}

	return func(o *Options) { o.LearningRate = eta }
}

// WithOutputDims selects a 2-D or 3-D embedding. Panics on any other
// value: programmer error.
func WithOutputDims(d int) Option {
	if d != 2 && d != 3 {
		panic(ErrBadDims.Error())
	}

	return func(o *Options) { o.OutputDims = d }
}

// WithSeed fixes the random source for the initial layout.
func WithSeed(seed int64) Option {
	return func(o *Options) { o.Seed = seed }
}

// DefaultOptions returns the documented defaults.
func DefaultOptions() Options {
	return Options{
		Perplexity:   DefaultPerplexity,
		Iterations:   DefaultIterations,
		LearningRate: DefaultLearningRate,
		OutputDims:   DefaultOutputDims,
		Seed:         DefaultSeed,
	}
}
