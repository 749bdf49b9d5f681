package pipeline

import (
	"fmt"
	"io"
	"time"

	"go.uber.org/zap"

	"github.com/katalvlaran/featviz/dataset"
	"github.com/katalvlaran/featviz/preprocess"
)

// SourceFunc produces the input dataset. Typical sources close over a
// registry name (dataset.Load) or a file path (dataset.FromCSV).
type SourceFunc func() (*dataset.Dataset, error)

// AnalyzeFunc computes an analyzer result from a preprocessed dataset.
// The result is analyzer-specific (a layout, a matrix, a ranking).
type AnalyzeFunc func(*dataset.Dataset) (any, error)

// RenderFunc encodes an analyzer result as a chart onto w.
type RenderFunc func(w io.Writer, result any) error

// Pipeline is an assembled load→preprocess→analyze→render run. Build it
// with New, execute it with Run; the value is immutable after New.
type Pipeline struct {
	source  SourceFunc
	method  preprocess.Method
	analyze AnalyzeFunc
	render  RenderFunc
	log     *zap.Logger
}

// Option is a functional option for configuring New.
type Option func(*Pipeline)

// WithMethod selects the preprocessing method applied between load and
// analyze. The default is preprocess.None.
func WithMethod(m preprocess.Method) Option {
	return func(p *Pipeline) { p.method = m }
}

// WithRenderer attaches the render stage. Without it, Run stops after
// analysis and returns the bare result — the compute-only mode used by
// callers that serialize layouts themselves.
func WithRenderer(r RenderFunc) Option {
	return func(p *Pipeline) { p.render = r }
}

// WithLogger attaches a zap logger for per-stage timing and shape logs.
// Panics on nil: pass no option for silence, not a nil logger.
func WithLogger(log *zap.Logger) Option {
	if log == nil {
		panic("pipeline: WithLogger requires a non-nil logger")
	}

	return func(p *Pipeline) { p.log = log }
}

// New assembles a pipeline from a data source and an analyzer.
func New(source SourceFunc, analyze AnalyzeFunc, opts ...Option) *Pipeline {
	if source == nil {
		panic("pipeline: New requires a source")
	}
	if analyze == nil {
		panic("pipeline: New requires an analyzer")
	}

	p := &Pipeline{
		source:  source,
		method:  preprocess.None,
		analyze: analyze,
		log:     zap.NewNop(),
	}
	for _, opt := range opts {
		opt(p)
	}

	return p
}

// Run executes the pipeline. The chart is written to w when a renderer is
// attached; w may be nil otherwise. The analyzer result is returned in
// both modes. On failure the result is nil and the error is a *StageError
// naming the failed stage.
func (p *Pipeline) Run(w io.Writer) (any, error) {
	// 1) Load.
	start := time.Now()
	ds, err := p.source()
	if err != nil {
		return nil, &StageError{Stage: StageLoad, Err: err}
	}
	p.log.Debug("stage done",
		zap.Stringer("stage", StageLoad),
		zap.Int("instances", ds.Len()),
		zap.Int("features", ds.Dim()),
		zap.Duration("took", time.Since(start)))

	// 2) Preprocess.
	start = time.Now()
	ds, err = preprocess.Transform(ds, p.method)
	if err != nil {
		return nil, &StageError{Stage: StagePreprocess, Err: err}
	}
	p.log.Debug("stage done",
		zap.Stringer("stage", StagePreprocess),
		zap.Stringer("method", p.method),
		zap.Int("features", ds.Dim()),
		zap.Duration("took", time.Since(start)))

	// 3) Analyze.
	start = time.Now()
	result, err := p.analyze(ds)
	if err != nil {
		return nil, &StageError{Stage: StageAnalyze, Err: err}
	}
	p.log.Debug("stage done",
		zap.Stringer("stage", StageAnalyze),
		zap.Duration("took", time.Since(start)))

	// 4) Render, when attached.
	if p.render != nil {
		if w == nil {
			return nil, &StageError{
				Stage: StageRender,
				Err:   fmt.Errorf("%w: renderer attached but no output writer", ErrRender),
			}
		}
		start = time.Now()
		if err := p.render(w, result); err != nil {
			return nil, &StageError{Stage: StageRender, Err: err}
		}
		p.log.Debug("stage done",
			zap.Stringer("stage", StageRender),
			zap.Duration("took", time.Since(start)))
	}

	return result, nil
}
