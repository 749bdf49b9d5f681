package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
)

// CSVOption configures FromCSV parsing.
type CSVOption func(*csvOptions)

type csvOptions struct {
	header   bool // first record holds feature names
	labelCol int  // index of the target column; -1 means unlabeled
	comma    rune
}

// WithHeader treats the first record as feature names.
func WithHeader() CSVOption {
	return func(o *csvOptions) { o.header = true }
}

// WithLabelColumn marks column idx as the target; the column is removed
// from the feature matrix. Negative idx panics: programmer error.
func WithLabelColumn(idx int) CSVOption {
	if idx < 0 {
		panic("dataset: WithLabelColumn: index must be non-negative")
	}

	return func(o *csvOptions) { o.labelCol = idx }
}

// WithComma sets the field delimiter (default ',').
func WithComma(r rune) CSVOption {
	return func(o *csvOptions) { o.comma = r }
}

// FromCSV loads a delimited numeric file into a Dataset.
//
// Every cell must parse as float64; a malformed cell, a ragged record or an
// out-of-range label column aborts the load with ErrCorrupt. This is
// deliberate: a visualization computed over silently dropped rows lies
// about the data.
func FromCSV(path string, opts ...CSVOption) (*Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("dataset: open %q: %w", path, err)
	}
	defer f.Close()

	return parseCSV(f, opts...)
}

// parseCSV is the reader-level core of FromCSV, separated for testability.
func parseCSV(r io.Reader, opts ...CSVOption) (*Dataset, error) {
	cfg := csvOptions{labelCol: -1, comma: ','}
	for _, opt := range opts {
		opt(&cfg)
	}

	reader := csv.NewReader(r)
	reader.Comma = cfg.comma

	records, err := reader.ReadAll()
	if err != nil {
		// csv surfaces ragged records as ErrFieldCount; both that and raw
		// read failures mean the stored data cannot be trusted.
		return nil, fmt.Errorf("%w: %v", ErrCorrupt, err)
	}
	if len(records) == 0 {
		return nil, ErrEmpty
	}

	var names []string
	if cfg.header {
		names = records[0]
		records = records[1:]
		if len(records) == 0 {
			return nil, ErrEmpty
		}
	}

	width := len(records[0])
	if cfg.labelCol >= width {
		return nil, fmt.Errorf("%w: label column %d out of range for %d columns", ErrCorrupt, cfg.labelCol, width)
	}

	features := make([][]float64, 0, len(records))
	var target []float64
	if cfg.labelCol >= 0 {
		target = make([]float64, 0, len(records))
	}

	var v float64
	for i, rec := range records {
		row := make([]float64, 0, width)
		for j, cell := range rec {
			v, err = strconv.ParseFloat(cell, 64)
			if err != nil {
				return nil, fmt.Errorf("%w: row %d column %d: %q is not numeric", ErrCorrupt, i, j, cell)
			}
			if j == cfg.labelCol {
				target = append(target, v)
				continue
			}
			row = append(row, v)
		}
		features = append(features, row)
	}

	dsOpts := make([]Option, 0, 2)
	if target != nil {
		dsOpts = append(dsOpts, WithTarget(target))
	}
	if names != nil {
		// Drop the label column's name to keep names column-aligned.
		if cfg.labelCol >= 0 {
			kept := make([]string, 0, len(names)-1)
			for j, n := range names {
				if j != cfg.labelCol {
					kept = append(kept, n)
				}
			}
			names = kept
		}
		dsOpts = append(dsOpts, WithFeatureNames(names))
	}

	ds, err := New(features, dsOpts...)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorrupt, err)
	}

	return ds, nil
}
