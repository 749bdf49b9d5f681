package parallel

import "errors"

// Sentinel errors returned by the parallel package.
var (
	// ErrNoInstances indicates a dataset with zero rows.
	ErrNoInstances = errors.New("parallel: dataset has no instances")

	// ErrNoFeatures indicates a dataset with zero columns.
	ErrNoFeatures = errors.New("parallel: dataset has no features")

	// ErrBadFraction indicates a sampling fraction outside (0, 1].
	ErrBadFraction = errors.New("parallel: sampling fraction must be in (0, 1]")
)

// DefaultSeed is the shuffle seed used when WithSeed is not supplied, so
// that sampled layouts are reproducible out of the box.
const DefaultSeed int64 = 1

// Options configures Coordinates.
//
// Fraction – portion of instances to keep, in (0, 1]. 1 keeps everything.
// Seed     – seed for the deterministic sampling shuffle.
type Options struct {
	Fraction float64
	Seed     int64
}

// Option is a functional option for configuring Coordinates.
type Option func(*Options)

// WithSample keeps only ceil(fraction·N) instances, chosen by a seeded
// shuffle. Panics when fraction is outside (0, 1]: programmer error.
func WithSample(fraction float64) Option {
	if fraction <= 0 || fraction > 1 {
		panic(ErrBadFraction.Error())
	}

	return func(o *Options) { o.Fraction = fraction }
}

// WithSeed fixes the sampling shuffle seed (default DefaultSeed).
func WithSeed(seed int64) Option {
	return func(o *Options) { o.Seed = seed }
}

// DefaultOptions returns the documented defaults: keep every instance,
// shuffle with DefaultSeed.
func DefaultOptions() Options {
	return Options{Fraction: 1, Seed: DefaultSeed}
}
