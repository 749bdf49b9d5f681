package radviz

import (
	"errors"
	"math"

	"github.com/katalvlaran/featviz/dataset"
	"github.com/katalvlaran/featviz/preprocess"
)

// Sentinel errors returned by the radviz package.
var (
	// ErrNoInstances indicates a dataset with zero rows.
	ErrNoInstances = errors.New("radviz: dataset has no instances")

	// ErrNoFeatures indicates a dataset with zero columns.
	ErrNoFeatures = errors.New("radviz: dataset has no features")
)

// Layout is the radial projection of a dataset: one unit-disk point per
// instance plus the fixed feature anchors on the unit circle. It is a pure
// value: renderers read it, nothing mutates it.
type Layout struct {
	// Points holds one (x, y) pair per instance; ‖point‖ ≤ 1 always.
	Points [][2]float64

	// Anchors holds one (x, y) pair per feature, on the unit circle, in
	// column order.
	Anchors [][2]float64

	// FeatureNames labels the anchors; nil when the dataset is unnamed.
	FeatureNames []string

	// Target carries the dataset's labels for class coloring; nil when
	// unlabeled.
	Target []float64
}

// Rows reports the number of projected instances.
func (l *Layout) Rows() int { return len(l.Points) }

// Project computes the RadViz layout of ds.
//
// Column scaling is fit on ds itself, so the projection is invariant to
// affine per-column rescaling of the input.
func Project(ds *dataset.Dataset) (*Layout, error) {
	if ds == nil || ds.Len() == 0 {
		return nil, ErrNoInstances
	}
	f := ds.Dim()
	if f == 0 {
		return nil, ErrNoFeatures
	}

	// 1) Scale every column into [0,1]; constant columns become all-zero,
	//    contributing no pull toward their anchor.
	scaler, err := preprocess.FitMinMax(ds.Features())
	if err != nil {
		return nil, err
	}
	W, err := scaler.Transform(ds.Features())
	if err != nil {
		return nil, err
	}

	// 2) Fix the anchors: feature i sits at angle 2π·i/F on the unit circle.
	anchors := make([][2]float64, f)
	for i := 0; i < f; i++ {
		theta := 2 * math.Pi * float64(i) / float64(f)
		anchors[i] = [2]float64{math.Cos(theta), math.Sin(theta)}
	}

	// 3) Place each instance at the weight-normalized anchor sum.
	points := make([][2]float64, len(W))
	for r, row := range W {
		var x, y, sum float64
		for i, w := range row {
			x += w * anchors[i][0]
			y += w * anchors[i][1]
			sum += w
		}
		if sum > 0 {
			points[r] = [2]float64{x / sum, y / sum}
		}
		// sum == 0: the zero value already marks the disk center.
	}

	return &Layout{
		Points:       points,
		Anchors:      anchors,
		FeatureNames: ds.FeatureNames(),
		Target:       ds.Target(),
	}, nil
}
