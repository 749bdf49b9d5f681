package pipeline

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/featviz/dataset"
	"github.com/katalvlaran/featviz/freq"
	"github.com/katalvlaran/featviz/importance"
	"github.com/katalvlaran/featviz/manifold"
	"github.com/katalvlaran/featviz/model"
	"github.com/katalvlaran/featviz/parallel"
	"github.com/katalvlaran/featviz/pca"
	"github.com/katalvlaran/featviz/preprocess"
	"github.com/katalvlaran/featviz/radviz"
	"github.com/katalvlaran/featviz/rank"
	"github.com/katalvlaran/featviz/render"
	"github.com/katalvlaran/featviz/tsne"
)

// Coarse error categories. Classify maps every error produced by this
// module onto exactly one of them.
var (
	// ErrData covers missing, malformed or insufficient input data.
	ErrData = errors.New("pipeline: data error")

	// ErrConfig covers invalid options and unsupported selections.
	ErrConfig = errors.New("pipeline: configuration error")

	// ErrCompute covers numerical failures inside an analyzer.
	ErrCompute = errors.New("pipeline: computation error")

	// ErrRender covers chart encoding and output failures.
	ErrRender = errors.New("pipeline: render error")
)

// Stage identifies a pipeline phase.
type Stage int

const (
	StageLoad Stage = iota
	StagePreprocess
	StageAnalyze
	StageRender
)

// String returns the canonical lower-case stage name.
func (s Stage) String() string {
	switch s {
	case StageLoad:
		return "load"
	case StagePreprocess:
		return "preprocess"
	case StageAnalyze:
		return "analyze"
	case StageRender:
		return "render"
	default:
		return "unknown"
	}
}

// StageError wraps a stage failure with the stage that produced it.
type StageError struct {
	Stage Stage
	Err   error
}

// Error implements the error interface.
func (e *StageError) Error() string {
	return fmt.Sprintf("pipeline: %s stage: %v", e.Stage, e.Err)
}

// Unwrap exposes the underlying cause to errors.Is and errors.As.
func (e *StageError) Unwrap() error { return e.Err }

// Per-category sentinel inventories. An error matching any entry belongs
// to that category regardless of which stage surfaced it.
var (
	dataSentinels = []error{
		dataset.ErrNotFound, dataset.ErrCorrupt, dataset.ErrEmpty, dataset.ErrShapeMismatch,
		preprocess.ErrNeedCorpus, preprocess.ErrNeedNumeric, preprocess.ErrEmptyInput,
		preprocess.ErrEmptyVocabulary, preprocess.ErrDimensionMismatch,
		radviz.ErrNoInstances, radviz.ErrNoFeatures,
		parallel.ErrNoInstances, parallel.ErrNoFeatures,
		rank.ErrNoFeatures, rank.ErrTooFewInstances,
		pca.ErrNoInstances, pca.ErrNoFeatures, pca.ErrDimensionMismatch,
		manifold.ErrInsufficientSamples, manifold.ErrNoFeatures,
		tsne.ErrNoInstances, tsne.ErrNoFeatures,
		freq.ErrEmptyInput, freq.ErrVocabMismatch,
		model.ErrTooFewInstances, model.ErrDimensionMismatch,
		importance.ErrEmptyImportances, importance.ErrNameCountMismatch,
	}

	configSentinels = []error{
		preprocess.ErrUnsupportedMethod,
		rank.ErrUnknownAlgorithm,
		pca.ErrBadComponents,
		parallel.ErrBadFraction,
		manifold.ErrBadNeighbors,
		tsne.ErrBadPerplexity, tsne.ErrBadDims, tsne.ErrBadIterations, tsne.ErrBadLearningRate,
		render.ErrBadSize,
		importance.ErrNoImportanceAttribute,
	}

	computeSentinels = []error{
		pca.ErrDecomposition,
		model.ErrSingular,
		manifold.ErrDisconnected, manifold.ErrDecomposition,
	}

	renderSentinels = []error{
		render.ErrEmptyResult,
	}
)

// Classify maps err onto one of the four categories. Recognized sentinels
// decide directly; an unrecognized cause inside a StageError falls back to
// its stage's natural category; anything else is nil (not ours).
func Classify(err error) error {
	if err == nil {
		return nil
	}

	for _, s := range dataSentinels {
		if errors.Is(err, s) {
			return ErrData
		}
	}
	for _, s := range configSentinels {
		if errors.Is(err, s) {
			return ErrConfig
		}
	}
	for _, s := range computeSentinels {
		if errors.Is(err, s) {
			return ErrCompute
		}
	}
	for _, s := range renderSentinels {
		if errors.Is(err, s) {
			return ErrRender
		}
	}

	var stageErr *StageError
	if errors.As(err, &stageErr) {
		switch stageErr.Stage {
		case StageLoad, StagePreprocess:
			return ErrData
		case StageAnalyze:
			return ErrCompute
		case StageRender:
			return ErrRender
		}
	}

	return nil
}
