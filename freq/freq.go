package freq

import (
	"errors"
	"fmt"
	"sort"

	"github.com/katalvlaran/featviz/dataset"
)

// Sentinel errors returned by the freq package.
var (
	// ErrEmptyInput indicates a count matrix with no rows or no columns.
	ErrEmptyInput = errors.New("freq: empty count matrix")

	// ErrVocabMismatch indicates a vocabulary whose length differs from
	// the matrix width.
	ErrVocabMismatch = errors.New("freq: vocabulary length differs from matrix width")
)

// Ranking is the descending-total token ordering of a corpus. It is a
// pure value: renderers read it, nothing mutates it.
type Ranking struct {
	// Tokens holds the vocabulary reordered by descending total.
	Tokens []string

	// Totals holds the corpus-wide count of each token, aligned with
	// Tokens. Totals[i] ≥ Totals[i+1] always.
	Totals []float64
}

// Len reports the vocabulary size.
func (r *Ranking) Len() int { return len(r.Tokens) }

// Top returns the leading n entries (or all of them when n exceeds the
// vocabulary) as a fresh Ranking.
func (r *Ranking) Top(n int) *Ranking {
	if n > len(r.Tokens) {
		n = len(r.Tokens)
	}
	if n < 0 {
		n = 0
	}

	return &Ranking{
		Tokens: append([]string(nil), r.Tokens[:n]...),
		Totals: append([]float64(nil), r.Totals[:n]...),
	}
}

// Count sums each vocabulary column of the document-term matrix and ranks
// the tokens by descending total. Equal totals keep vocabulary order.
//
// The sum of all Totals equals the sum of every matrix entry, so no count
// is lost or duplicated by the ranking.
func Count(X [][]float64, vocab []string) (*Ranking, error) {
	if len(X) == 0 || len(X[0]) == 0 {
		return nil, ErrEmptyInput
	}
	f := len(X[0])
	if len(vocab) != f {
		return nil, fmt.Errorf("%w: %d tokens for %d columns", ErrVocabMismatch, len(vocab), f)
	}

	totals := make([]float64, f)
	for i, row := range X {
		if len(row) != f {
			return nil, fmt.Errorf("%w: ragged row %d", ErrVocabMismatch, i)
		}
		for j, v := range row {
			totals[j] += v
		}
	}

	// Rank by descending total; ties resolve to the lower vocabulary
	// index so the ordering is stable across runs.
	order := make([]int, f)
	for i := range order {
		order[i] = i
	}
	sort.Slice(order, func(a, b int) bool {
		if totals[order[a]] != totals[order[b]] {
			return totals[order[a]] > totals[order[b]]
		}

		return order[a] < order[b]
	})

	r := &Ranking{
		Tokens: make([]string, f),
		Totals: make([]float64, f),
	}
	for rank, idx := range order {
		r.Tokens[rank] = vocab[idx]
		r.Totals[rank] = totals[idx]
	}

	return r, nil
}

// FromDataset ranks a vectorized corpus dataset, taking the vocabulary
// from its feature names.
func FromDataset(ds *dataset.Dataset) (*Ranking, error) {
	if ds == nil || ds.Len() == 0 {
		return nil, ErrEmptyInput
	}

	return Count(ds.Features(), ds.FeatureNames())
}
