// Package pipeline_test drives full load→preprocess→analyze→render runs
// against the builtin datasets and checks the staged-error contract.
package pipeline_test

import (
	"bytes"
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/katalvlaran/featviz/dataset"
	"github.com/katalvlaran/featviz/manifold"
	"github.com/katalvlaran/featviz/pipeline"
	"github.com/katalvlaran/featviz/preprocess"
	"github.com/katalvlaran/featviz/radviz"
	"github.com/katalvlaran/featviz/render"
	"github.com/katalvlaran/featviz/tsne"
)

// irisSource loads the builtin numeric dataset.
func irisSource() (*dataset.Dataset, error) { return dataset.Load(dataset.IrisMini) }

// radialAnalyzer adapts radviz.Project to the pipeline signature.
func radialAnalyzer(ds *dataset.Dataset) (any, error) { return radviz.Project(ds) }

// radialRenderer draws the radial layout as a scatter chart.
func radialRenderer(w io.Writer, result any) error {
	layout := result.(*radviz.Layout)

	return render.Scatter(w, layout.Points, layout.Target,
		render.WithAnchors(layout.Anchors, layout.FeatureNames))
}

func TestRun_FullChainProducesPNG(t *testing.T) {
	p := pipeline.New(irisSource, radialAnalyzer,
		pipeline.WithMethod(preprocess.MinMax),
		pipeline.WithRenderer(radialRenderer),
		pipeline.WithLogger(zaptest.NewLogger(t)))

	var buf bytes.Buffer
	result, err := p.Run(&buf)
	require.NoError(t, err)

	layout, ok := result.(*radviz.Layout)
	require.True(t, ok)
	assert.Equal(t, 15, layout.Rows())
	assert.Equal(t, []byte{0x89, 'P', 'N', 'G'}, buf.Bytes()[:4])
}

func TestRun_ComputeOnlyModeSkipsRendering(t *testing.T) {
	p := pipeline.New(irisSource, radialAnalyzer)

	result, err := p.Run(nil)
	require.NoError(t, err)
	require.IsType(t, &radviz.Layout{}, result)
}

func TestRun_RendererWithoutWriterFails(t *testing.T) {
	p := pipeline.New(irisSource, radialAnalyzer, pipeline.WithRenderer(radialRenderer))

	_, err := p.Run(nil)
	require.Error(t, err)

	var stageErr *pipeline.StageError
	require.ErrorAs(t, err, &stageErr)
	assert.Equal(t, pipeline.StageRender, stageErr.Stage)
}

func TestRun_WrapsStageFailures(t *testing.T) {
	t.Run("load", func(t *testing.T) {
		p := pipeline.New(
			func() (*dataset.Dataset, error) { return dataset.Load("no-such-dataset") },
			radialAnalyzer)

		_, err := p.Run(nil)
		var stageErr *pipeline.StageError
		require.ErrorAs(t, err, &stageErr)
		assert.Equal(t, pipeline.StageLoad, stageErr.Stage)
		assert.ErrorIs(t, err, dataset.ErrNotFound, "the underlying sentinel must survive wrapping")
	})

	t.Run("preprocess", func(t *testing.T) {
		// TFIDF on a numeric dataset: kind mismatch.
		p := pipeline.New(irisSource, radialAnalyzer, pipeline.WithMethod(preprocess.TFIDF))

		_, err := p.Run(nil)
		var stageErr *pipeline.StageError
		require.ErrorAs(t, err, &stageErr)
		assert.Equal(t, pipeline.StagePreprocess, stageErr.Stage)
		assert.ErrorIs(t, err, preprocess.ErrNeedCorpus)
	})

	t.Run("analyze", func(t *testing.T) {
		p := pipeline.New(irisSource, func(ds *dataset.Dataset) (any, error) {
			return tsne.Embed(ds) // default perplexity 30 exceeds N=15
		})

		_, err := p.Run(nil)
		var stageErr *pipeline.StageError
		require.ErrorAs(t, err, &stageErr)
		assert.Equal(t, pipeline.StageAnalyze, stageErr.Stage)
		assert.ErrorIs(t, err, tsne.ErrBadPerplexity)
	})
}

func TestClassify_CategoryTable(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want error
	}{
		{"corrupt data", dataset.ErrCorrupt, pipeline.ErrData},
		{"bad perplexity", tsne.ErrBadPerplexity, pipeline.ErrConfig},
		{"disconnected graph", manifold.ErrDisconnected, pipeline.ErrCompute},
		{"empty chart", render.ErrEmptyResult, pipeline.ErrRender},
		{"wrapped sentinel", &pipeline.StageError{Stage: pipeline.StageLoad, Err: dataset.ErrNotFound}, pipeline.ErrData},
		{"unknown analyze cause", &pipeline.StageError{Stage: pipeline.StageAnalyze, Err: errors.New("boom")}, pipeline.ErrCompute},
		{"unknown render cause", &pipeline.StageError{Stage: pipeline.StageRender, Err: errors.New("boom")}, pipeline.ErrRender},
		{"foreign error", errors.New("not ours"), nil},
		{"nil", nil, nil},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, pipeline.Classify(tc.err))
		})
	}
}

func TestNew_PanicsOnMissingParts(t *testing.T) {
	assert.Panics(t, func() { pipeline.New(nil, radialAnalyzer) })
	assert.Panics(t, func() { pipeline.New(irisSource, nil) })
	assert.Panics(t, func() { pipeline.WithLogger(nil) })
}

func TestStageError_Message(t *testing.T) {
	err := &pipeline.StageError{Stage: pipeline.StageAnalyze, Err: errors.New("boom")}
	assert.Equal(t, "pipeline: analyze stage: boom", err.Error())
}
