// Package parallel_test validates axis normalization, polyline geometry on
// a small hand-checked dataset, and deterministic subsampling.
package parallel_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/featviz/dataset"
	"github.com/katalvlaran/featviz/parallel"
)

func TestCoordinates_FivePointScenario(t *testing.T) {
	// 5 instances, 2 features, no labels: five polylines, two vertices each.
	ds, err := dataset.New([][]float64{
		{0, 0}, {1, 0}, {0, 1}, {1, 1}, {0.5, 0.5},
	})
	require.NoError(t, err)

	layout, err := parallel.Coordinates(ds)
	require.NoError(t, err)
	require.Equal(t, 5, layout.Rows())
	require.Equal(t, 2, layout.Axes())
	assert.Nil(t, layout.Target)

	// Min-max normalization keeps {0,1} fixed and centers 0.5.
	assert.Equal(t, []float64{0, 0}, layout.Lines[0])
	assert.Equal(t, []float64{1, 1}, layout.Lines[3])
	assert.Equal(t, []float64{0.5, 0.5}, layout.Lines[4])
}

func TestCoordinates_ConstantColumnCollapsesToMidAxis(t *testing.T) {
	ds, err := dataset.New([][]float64{{7, 1}, {7, 2}, {7, 3}})
	require.NoError(t, err)

	layout, err := parallel.Coordinates(ds)
	require.NoError(t, err)

	for _, line := range layout.Lines {
		assert.Equal(t, 0.5, line[0], "constant column must collapse to one axis position")
	}
}

func TestCoordinates_SamplingIsDeterministic(t *testing.T) {
	rows := make([][]float64, 100)
	for i := range rows {
		rows[i] = []float64{float64(i), float64(i * i)}
	}
	ds, err := dataset.New(rows)
	require.NoError(t, err)

	a, err := parallel.Coordinates(ds, parallel.WithSample(0.25), parallel.WithSeed(42))
	require.NoError(t, err)
	b, err := parallel.Coordinates(ds, parallel.WithSample(0.25), parallel.WithSeed(42))
	require.NoError(t, err)

	require.Equal(t, 25, a.Rows())
	assert.Equal(t, a.Indices, b.Indices, "same fraction and seed must keep the same rows")
	assert.Equal(t, a.Lines, b.Lines)

	// A different seed keeps a different subset.
	c, err := parallel.Coordinates(ds, parallel.WithSample(0.25), parallel.WithSeed(43))
	require.NoError(t, err)
	assert.NotEqual(t, a.Indices, c.Indices)
}

func TestCoordinates_SampledIndicesAscendAndAlignWithTarget(t *testing.T) {
	rows := make([][]float64, 40)
	y := make([]float64, 40)
	for i := range rows {
		rows[i] = []float64{float64(i)}
		y[i] = float64(i % 2)
	}
	ds, err := dataset.New(rows, dataset.WithTarget(y))
	require.NoError(t, err)

	layout, err := parallel.Coordinates(ds, parallel.WithSample(0.5))
	require.NoError(t, err)
	require.Equal(t, 20, layout.Rows())
	require.Len(t, layout.Target, 20)

	for k := 1; k < len(layout.Indices); k++ {
		assert.Less(t, layout.Indices[k-1], layout.Indices[k])
	}
	for k, idx := range layout.Indices {
		assert.Equal(t, y[idx], layout.Target[k])
	}
}

func TestCoordinates_NormalizationIgnoresSampling(t *testing.T) {
	// The row with the global maximum is excluded from most samples, yet
	// normalization still uses the full-dataset range.
	rows := [][]float64{{0}, {1}, {2}, {3}, {100}}
	ds, err := dataset.New(rows)
	require.NoError(t, err)

	full, err := parallel.Coordinates(ds)
	require.NoError(t, err)
	sampled, err := parallel.Coordinates(ds, parallel.WithSample(0.6), parallel.WithSeed(7))
	require.NoError(t, err)

	for k, idx := range sampled.Indices {
		assert.Equal(t, full.Lines[idx], sampled.Lines[k])
	}
}

func TestWithSample_PanicsOutsideUnitInterval(t *testing.T) {
	assert.Panics(t, func() { parallel.WithSample(0) })
	assert.Panics(t, func() { parallel.WithSample(1.5) })
}

func TestCoordinates_Errors(t *testing.T) {
	_, err := parallel.Coordinates(nil)
	require.ErrorIs(t, err, parallel.ErrNoInstances)

	corpus, err := dataset.FromDocuments([]string{"text only"})
	require.NoError(t, err)
	_, err = parallel.Coordinates(corpus)
	require.ErrorIs(t, err, parallel.ErrNoFeatures)
}
