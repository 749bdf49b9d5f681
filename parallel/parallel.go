package parallel

import (
	"math"
	"math/rand"
	"sort"

	"github.com/katalvlaran/featviz/dataset"
)

// Layout is the parallel-coordinates geometry of a (possibly subsampled)
// dataset. Axis i sits at x = i; Lines[k][i] is the normalized height of
// kept instance k on axis i.
type Layout struct {
	// Lines holds one normalized polyline per kept instance; each has one
	// vertex per feature, all heights in [0,1].
	Lines [][]float64

	// Indices maps kept polylines back to original dataset rows, ascending.
	Indices []int

	// FeatureNames labels the axes; nil when the dataset is unnamed.
	FeatureNames []string

	// Target carries the kept instances' labels; nil when unlabeled.
	Target []float64
}

// Rows reports the number of kept polylines.
func (l *Layout) Rows() int { return len(l.Lines) }

// Axes reports the number of vertical axes (features).
func (l *Layout) Axes() int {
	if len(l.Lines) == 0 {
		return 0
	}

	return len(l.Lines[0])
}

// Coordinates computes the parallel-coordinates layout of ds.
//
// Normalization is column-wise min-max over the full dataset (not the
// sample), so subsampling never changes where a surviving line is drawn.
func Coordinates(ds *dataset.Dataset, opts ...Option) (*Layout, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	if ds == nil || ds.Len() == 0 {
		return nil, ErrNoInstances
	}
	f := ds.Dim()
	if f == 0 {
		return nil, ErrNoFeatures
	}

	X := ds.Features()
	n := len(X)

	// 1) Column ranges over the full dataset.
	mins := make([]float64, f)
	maxs := make([]float64, f)
	for j := 0; j < f; j++ {
		mins[j], maxs[j] = math.Inf(1), math.Inf(-1)
	}
	for _, row := range X {
		for j, v := range row {
			if v < mins[j] {
				mins[j] = v
			}
			if v > maxs[j] {
				maxs[j] = v
			}
		}
	}

	// 2) Select kept rows: seeded shuffle, first ceil(fraction·n), then
	//    restored to original order so drawing order is stable.
	keep := sampleIndices(n, cfg.Fraction, cfg.Seed)

	// 3) Normalize kept rows. Constant columns collapse to 0.5.
	target := ds.Target()
	lines := make([][]float64, len(keep))
	var keptTarget []float64
	if target != nil {
		keptTarget = make([]float64, 0, len(keep))
	}
	for k, idx := range keep {
		line := make([]float64, f)
		for j, v := range X[idx] {
			span := maxs[j] - mins[j]
			if span == 0 {
				line[j] = 0.5
				continue
			}
			line[j] = (v - mins[j]) / span
		}
		lines[k] = line
		if target != nil {
			keptTarget = append(keptTarget, target[idx])
		}
	}

	return &Layout{
		Lines:        lines,
		Indices:      keep,
		FeatureNames: ds.FeatureNames(),
		Target:       keptTarget,
	}, nil
}

// sampleIndices returns ceil(fraction·n) distinct row indices chosen by a
// seeded Fisher–Yates shuffle, sorted ascending. fraction == 1 short-cuts
// to the identity selection.
func sampleIndices(n int, fraction float64, seed int64) []int {
	if fraction >= 1 {
		all := make([]int, n)
		for i := range all {
			all[i] = i
		}

		return all
	}

	k := int(math.Ceil(fraction * float64(n)))
	if k < 1 {
		k = 1
	}

	perm := rand.New(rand.NewSource(seed)).Perm(n)
	keep := append([]int(nil), perm[:k]...)
	sort.Ints(keep)

	return keep
}
