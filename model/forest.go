package model

import (
	"fmt"
	"math/rand"
)

// Forest hyperparameters with documented defaults.
const (
	// DefaultTrees is the ensemble size when WithTrees is not supplied.
	DefaultTrees = 25

	// DefaultMaxDepth bounds tree growth; 0 would mean unbounded.
	DefaultMaxDepth = 6

	// DefaultMinSamplesSplit is the smallest node the builder will split.
	DefaultMinSamplesSplit = 2

	// DefaultForestSeed makes ensembles reproducible out of the box.
	DefaultForestSeed int64 = 1
)

// ForestOptions configures FitForest.
type ForestOptions struct {
	Trees           int
	MaxDepth        int
	MinSamplesSplit int
	Seed            int64
}

// ForestOption is a functional option for configuring FitForest.
type ForestOption func(*ForestOptions)

// WithTrees sets the ensemble size. Panics on non-positive values:
// programmer error.
func WithTrees(n int) ForestOption {
	if n <= 0 {
		panic("model: WithTrees: ensemble size must be positive")
	}

	return func(o *ForestOptions) { o.Trees = n }
}

// WithMaxDepth bounds tree depth; 0 means unbounded.
func WithMaxDepth(d int) ForestOption {
	if d < 0 {
		panic("model: WithMaxDepth: depth must be non-negative")
	}

	return func(o *ForestOptions) { o.MaxDepth = d }
}

// WithForestSeed fixes the bootstrap seed (default DefaultForestSeed).
func WithForestSeed(seed int64) ForestOption {
	return func(o *ForestOptions) { o.Seed = seed }
}

// DefaultForestOptions returns the documented defaults.
func DefaultForestOptions() ForestOptions {
	return ForestOptions{
		Trees:           DefaultTrees,
		MaxDepth:        DefaultMaxDepth,
		MinSamplesSplit: DefaultMinSamplesSplit,
		Seed:            DefaultForestSeed,
	}
}

// ForestModel is the fitted state of a bootstrap regression-tree ensemble.
// Immutable after FitForest; satisfies importance.ImportanceSource.
type ForestModel struct {
	trees       []*treeNode
	importances []float64 // normalized to sum 1 (all zero if no split fired)
}

// FitForest grows a seeded bootstrap ensemble over (X, y).
//
// Tree t draws its bootstrap sample from an rng seeded with Seed+t, so the
// whole ensemble — including its importances — is a pure function of the
// inputs and options.
func FitForest(X [][]float64, y []float64, opts ...ForestOption) (*ForestModel, error) {
	cfg := DefaultForestOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	n := len(X)
	if n == 0 || len(X[0]) == 0 {
		return nil, fmt.Errorf("%w: empty design matrix", ErrDimensionMismatch)
	}
	if len(y) != n {
		return nil, fmt.Errorf("%w: %d rows, %d targets", ErrDimensionMismatch, n, len(y))
	}
	f := len(X[0])

	m := &ForestModel{
		trees:       make([]*treeNode, cfg.Trees),
		importances: make([]float64, f),
	}
	tcfg := treeConfig{maxDepth: cfg.MaxDepth, minSamplesSplit: cfg.MinSamplesSplit}

	for t := 0; t < cfg.Trees; t++ {
		rng := rand.New(rand.NewSource(cfg.Seed + int64(t)))
		sample := make([]int, n)
		for i := range sample {
			sample[i] = rng.Intn(n)
		}
		m.trees[t] = buildTree(X, y, sample, 0, tcfg, m.importances)
	}

	// Normalize accumulated impurity decreases to a unit-sum vector.
	total := 0.0
	for _, v := range m.importances {
		total += v
	}
	if total > 0 {
		for j := range m.importances {
			m.importances[j] /= total
		}
	}

	return m, nil
}

// Importances returns a copy of the normalized impurity-decrease vector,
// satisfying importance.ImportanceSource.
func (m *ForestModel) Importances() []float64 {
	return append([]float64(nil), m.importances...)
}

// Predict averages the ensemble's tree predictions for each row of X.
func (m *ForestModel) Predict(X [][]float64) ([]float64, error) {
	out := make([]float64, len(X))
	for i, row := range X {
		if len(row) != len(m.importances) {
			return nil, fmt.Errorf("%w: row %d has %d columns, fitted on %d", ErrDimensionMismatch, i, len(row), len(m.importances))
		}
		sum := 0.0
		for _, tree := range m.trees {
			sum += tree.predict(row)
		}
		out[i] = sum / float64(len(m.trees))
	}

	return out, nil
}
