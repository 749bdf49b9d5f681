// Package render_test drives every chart family end to end against the
// builtin datasets and checks the PNG contract: non-empty deterministic
// output, clean errors on empty layouts.
package render_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/plot/vg"

	"github.com/katalvlaran/featviz/dataset"
	"github.com/katalvlaran/featviz/freq"
	"github.com/katalvlaran/featviz/parallel"
	"github.com/katalvlaran/featviz/preprocess"
	"github.com/katalvlaran/featviz/radviz"
	"github.com/katalvlaran/featviz/rank"
	"github.com/katalvlaran/featviz/render"
)

var pngMagic = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n'}

// requirePNG asserts that buf holds a non-trivial PNG stream.
func requirePNG(t *testing.T, buf *bytes.Buffer) {
	t.Helper()

	require.Greater(t, buf.Len(), len(pngMagic))
	assert.Equal(t, pngMagic, buf.Bytes()[:len(pngMagic)])
}

func irisLayout(t *testing.T) (*dataset.Dataset, *radviz.Layout) {
	t.Helper()

	ds, err := dataset.Load(dataset.IrisMini)
	require.NoError(t, err)
	layout, err := radviz.Project(ds)
	require.NoError(t, err)

	return ds, layout
}

func TestScatter_WritesPNGWithAnchorsAndClasses(t *testing.T) {
	ds, layout := irisLayout(t)

	var buf bytes.Buffer
	err := render.Scatter(&buf, layout.Points, layout.Target,
		render.WithTitle("radial projection"),
		render.WithClasses(ds.ClassNames()),
		render.WithAnchors(layout.Anchors, layout.FeatureNames))
	require.NoError(t, err)
	requirePNG(t, &buf)
}

func TestScatter_Deterministic(t *testing.T) {
	_, layout := irisLayout(t)

	var first, second bytes.Buffer
	require.NoError(t, render.Scatter(&first, layout.Points, layout.Target))
	require.NoError(t, render.Scatter(&second, layout.Points, layout.Target))

	assert.Equal(t, first.Bytes(), second.Bytes(), "same layout must render to identical bytes")
}

func TestScatter_ContinuousTargetUsesRamp(t *testing.T) {
	// More distinct target values than palette entries: the continuous
	// fallback must still produce a valid chart.
	points := make([][2]float64, 20)
	target := make([]float64, 20)
	for i := range points {
		points[i] = [2]float64{float64(i), float64(i * i)}
		target[i] = 0.1 * float64(i)
	}

	var buf bytes.Buffer
	require.NoError(t, render.Scatter(&buf, points, target))
	requirePNG(t, &buf)
}

func TestScatter_UnlabeledFallsBackToNeutral(t *testing.T) {
	_, layout := irisLayout(t)

	var buf bytes.Buffer
	require.NoError(t, render.Scatter(&buf, layout.Points, nil))
	requirePNG(t, &buf)
}

func TestScatter_EmptyResult(t *testing.T) {
	var buf bytes.Buffer
	err := render.Scatter(&buf, nil, nil)
	require.ErrorIs(t, err, render.ErrEmptyResult)
	assert.Zero(t, buf.Len(), "nothing may be written on error")
}

func TestParallelCoordinates_WritesPNG(t *testing.T) {
	ds, err := dataset.Load(dataset.IrisMini)
	require.NoError(t, err)
	layout, err := parallel.Coordinates(ds)
	require.NoError(t, err)

	var buf bytes.Buffer
	err = render.ParallelCoordinates(&buf, layout,
		render.WithTitle("parallel axes"),
		render.WithClasses(ds.ClassNames()))
	require.NoError(t, err)
	requirePNG(t, &buf)
}

func TestParallelCoordinates_EmptyResult(t *testing.T) {
	var buf bytes.Buffer
	require.ErrorIs(t, render.ParallelCoordinates(&buf, nil), render.ErrEmptyResult)
}

func TestHeatGrid_WritesPNG(t *testing.T) {
	ds, err := dataset.Load(dataset.IrisMini)
	require.NoError(t, err)
	m, err := rank.Pairwise(ds, rank.Pearson)
	require.NoError(t, err)

	var buf bytes.Buffer
	err = render.HeatGrid(&buf, m, render.WithTitle("pairwise correlation"))
	require.NoError(t, err)
	requirePNG(t, &buf)
}

func TestHeatGrid_EmptyResult(t *testing.T) {
	var buf bytes.Buffer
	require.ErrorIs(t, render.HeatGrid(&buf, nil), render.ErrEmptyResult)
}

func TestBar_WritesPNG(t *testing.T) {
	ds, err := dataset.Load(dataset.HobbiesMini)
	require.NoError(t, err)
	counted, err := preprocess.Transform(ds, preprocess.Count)
	require.NoError(t, err)
	ranking, err := freq.FromDataset(counted)
	require.NoError(t, err)

	top := ranking.Top(10)
	var buf bytes.Buffer
	err = render.Bar(&buf, top.Tokens, top.Totals,
		render.WithTitle("token frequency"),
		render.WithSize(8*vg.Inch, 4*vg.Inch))
	require.NoError(t, err)
	requirePNG(t, &buf)
}

func TestBar_Errors(t *testing.T) {
	var buf bytes.Buffer
	require.ErrorIs(t, render.Bar(&buf, nil, nil), render.ErrEmptyResult)
	require.ErrorIs(t, render.Bar(&buf, []string{"a"}, []float64{1, 2}), render.ErrEmptyResult)
}

func TestWithSize_PanicsOnNonPositive(t *testing.T) {
	assert.Panics(t, func() { render.WithSize(0, vg.Inch) })
	assert.Panics(t, func() { render.WithSize(vg.Inch, -vg.Inch) })
}
