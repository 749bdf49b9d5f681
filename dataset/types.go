package dataset

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by the dataset package.
var (
	// ErrNotFound indicates that the requested identifier is not registered.
	ErrNotFound = errors.New("dataset: identifier not found in registry")

	// ErrCorrupt indicates that stored data failed shape or type validation
	// while being loaded.
	ErrCorrupt = errors.New("dataset: stored data is corrupt")

	// ErrShapeMismatch indicates that the feature matrix, target vector and
	// feature names disagree on their dimensions.
	ErrShapeMismatch = errors.New("dataset: shape mismatch")

	// ErrEmpty indicates a dataset with zero instances.
	ErrEmpty = errors.New("dataset: no instances")
)

// Dataset is an immutable, fully materialized labeled dataset.
//
// The feature matrix is row-major: rows are instances, columns are features.
// Target, FeatureNames, ClassNames and Documents are all optional; the
// combinations a loader may produce are:
//
//   - numeric matrix (+ optional target / names / class names), or
//   - raw document corpus (+ optional target), feature matrix empty until a
//     text vectorizer runs.
//
// All accessors return copies; the zero Dataset is not usable — construct
// via New, FromDocuments or a registry loader.
type Dataset struct {
	features     [][]float64
	target       []float64
	featureNames []string
	classNames   map[float64]string
	documents    []string
}

// Option configures optional Dataset attributes at construction time.
type Option func(*Dataset)

// WithTarget attaches a target vector, aligned 1:1 with feature rows.
func WithTarget(y []float64) Option {
	return func(d *Dataset) { d.target = append([]float64(nil), y...) }
}

// WithFeatureNames attaches display names, index-aligned to columns.
func WithFeatureNames(names []string) Option {
	return func(d *Dataset) { d.featureNames = append([]string(nil), names...) }
}

// WithClassNames attaches a label-value → display-string mapping used by
// renderers for legends and color assignment.
func WithClassNames(classes map[float64]string) Option {
	return func(d *Dataset) {
		d.classNames = make(map[float64]string, len(classes))
		for k, v := range classes {
			d.classNames[k] = v
		}
	}
}

// New builds a Dataset from a feature matrix and optional attributes,
// validating every shape invariant before returning.
//
// Returns ErrEmpty when the matrix has no rows, and ErrShapeMismatch when
// rows are ragged or target/names lengths disagree with the matrix.
func New(features [][]float64, opts ...Option) (*Dataset, error) {
	if len(features) == 0 {
		return nil, ErrEmpty
	}

	// Deep-copy the matrix so later caller mutation cannot leak in.
	cols := len(features[0])
	x := make([][]float64, len(features))
	for i, row := range features {
		if len(row) != cols {
			return nil, fmt.Errorf("%w: row %d has %d columns, want %d", ErrShapeMismatch, i, len(row), cols)
		}
		x[i] = append([]float64(nil), row...)
	}

	d := &Dataset{features: x}
	for _, opt := range opts {
		opt(d)
	}

	// Target must align 1:1 with rows when present.
	if d.target != nil && len(d.target) != len(x) {
		return nil, fmt.Errorf("%w: %d targets for %d instances", ErrShapeMismatch, len(d.target), len(x))
	}
	// Feature names must align with columns when present.
	if d.featureNames != nil && len(d.featureNames) != cols {
		return nil, fmt.Errorf("%w: %d feature names for %d columns", ErrShapeMismatch, len(d.featureNames), cols)
	}

	return d, nil
}

// FromDocuments builds a corpus Dataset from raw documents and an optional
// aligned label vector. The feature matrix stays empty until a text
// vectorizer transforms the corpus.
func FromDocuments(docs []string, opts ...Option) (*Dataset, error) {
	if len(docs) == 0 {
		return nil, ErrEmpty
	}

	d := &Dataset{documents: append([]string(nil), docs...)}
	for _, opt := range opts {
		opt(d)
	}

	if d.target != nil && len(d.target) != len(docs) {
		return nil, fmt.Errorf("%w: %d targets for %d documents", ErrShapeMismatch, len(d.target), len(docs))
	}

	return d, nil
}

// Len reports the number of instances (matrix rows, or documents for a
// corpus that has not been vectorized yet).
func (d *Dataset) Len() int {
	if len(d.features) > 0 {
		return len(d.features)
	}

	return len(d.documents)
}

// Dim reports the number of features (matrix columns); 0 for a raw corpus.
func (d *Dataset) Dim() int {
	if len(d.features) == 0 {
		return 0
	}

	return len(d.features[0])
}

// Features returns a deep copy of the feature matrix.
func (d *Dataset) Features() [][]float64 {
	out := make([][]float64, len(d.features))
	for i, row := range d.features {
		out[i] = append([]float64(nil), row...)
	}

	return out
}

// Target returns a copy of the target vector, or nil when unlabeled.
func (d *Dataset) Target() []float64 {
	if d.target == nil {
		return nil
	}

	return append([]float64(nil), d.target...)
}

// FeatureNames returns a copy of the column names, or nil when absent.
func (d *Dataset) FeatureNames() []string {
	if d.featureNames == nil {
		return nil
	}

	return append([]string(nil), d.featureNames...)
}

// ClassNames returns a copy of the label→display mapping, or nil.
func (d *Dataset) ClassNames() map[float64]string {
	if d.classNames == nil {
		return nil
	}
	out := make(map[float64]string, len(d.classNames))
	for k, v := range d.classNames {
		out[k] = v
	}

	return out
}

// Documents returns a copy of the raw corpus, or nil for numeric datasets.
func (d *Dataset) Documents() []string {
	if d.documents == nil {
		return nil
	}

	return append([]string(nil), d.documents...)
}

// IsCorpus reports whether the dataset carries raw documents instead of a
// numeric feature matrix.
func (d *Dataset) IsCorpus() bool { return len(d.features) == 0 && len(d.documents) > 0 }

// WithFeatures derives a new Dataset that keeps this dataset's target,
// names and class names but replaces the feature matrix. Used by
// preprocessors, which must not mutate their input.
func (d *Dataset) WithFeatures(features [][]float64, names []string) (*Dataset, error) {
	opts := make([]Option, 0, 3)
	if d.target != nil {
		opts = append(opts, WithTarget(d.target))
	}
	if d.classNames != nil {
		opts = append(opts, WithClassNames(d.classNames))
	}
	if names != nil {
		opts = append(opts, WithFeatureNames(names))
	} else if d.featureNames != nil && len(features) > 0 && len(d.featureNames) == len(features[0]) {
		opts = append(opts, WithFeatureNames(d.featureNames))
	}

	return New(features, opts...)
}
