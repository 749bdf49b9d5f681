package manifold

import "errors"

// Sentinel errors returned by the manifold package.
var (
	// ErrInsufficientSamples indicates N ≤ Neighbors: the kNN graph cannot
	// be built.
	ErrInsufficientSamples = errors.New("manifold: instance count must exceed neighborhood size")

	// ErrDisconnected indicates that the kNN graph splits into components,
	// leaving some geodesic distances undefined. Increase Neighbors.
	ErrDisconnected = errors.New("manifold: neighborhood graph is disconnected")

	// ErrNoFeatures indicates a dataset with zero columns.
	ErrNoFeatures = errors.New("manifold: dataset has no features")

	// ErrBadNeighbors indicates a non-positive neighborhood size.
	ErrBadNeighbors = errors.New("manifold: neighborhood size must be positive")

	// ErrDecomposition indicates that the MDS eigendecomposition failed.
	ErrDecomposition = errors.New("manifold: eigendecomposition failed")
)

// DefaultNeighbors is the neighborhood size used when WithNeighbors is not
// supplied.
const DefaultNeighbors = 5

// Options configures Embed.
//
// Neighbors – number of nearest neighbors linked per instance (k).
type Options struct {
	Neighbors int
}

// Option is a functional option for configuring Embed.
type Option func(*Options)

// WithNeighbors sets the neighborhood size k. Panics on non-positive k:
// programmer error.
func WithNeighbors(k int) Option {
	if k <= 0 {
		panic(ErrBadNeighbors.Error())
	}

	return func(o *Options) { o.Neighbors = k }
}

// DefaultOptions returns the documented defaults.
func DefaultOptions() Options { return Options{Neighbors: DefaultNeighbors} }
