package preprocess

import (
	"math"
	"strings"
	"unicode"
)

// Text vectorization: corpus → dense numeric matrix plus an ordered
// vocabulary, index-aligned to columns. Tokenization is deliberately
// simple — lower-cased runs of letters and digits — because the goal is
// feature inspection, not linguistic fidelity.

// Tokenize splits a document into lower-cased letter/digit runs.
func Tokenize(doc string) []string {
	return strings.FieldsFunc(strings.ToLower(doc), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
}

// CountVectorizer maps documents onto raw token counts over a vocabulary
// fixed at fit time. Tokens unseen during Fit are ignored by Transform.
type CountVectorizer struct {
	vocab []string       // first-seen order
	index map[string]int // token → column
}

// FitCount builds the vocabulary from docs in first-seen token order.
// Returns ErrEmptyVocabulary when no document yields a single token.
func FitCount(docs []string) (*CountVectorizer, error) {
	if len(docs) == 0 {
		return nil, ErrEmptyInput
	}

	c := &CountVectorizer{index: make(map[string]int)}
	for _, doc := range docs {
		for _, tok := range Tokenize(doc) {
			if _, seen := c.index[tok]; !seen {
				c.index[tok] = len(c.vocab)
				c.vocab = append(c.vocab, tok)
			}
		}
	}
	if len(c.vocab) == 0 {
		return nil, ErrEmptyVocabulary
	}

	return c, nil
}

// Vocabulary returns a copy of the ordered token list.
func (c *CountVectorizer) Vocabulary() []string {
	return append([]string(nil), c.vocab...)
}

// Transform counts fitted-vocabulary tokens per document. The output has
// len(docs) rows and len(Vocabulary()) columns.
func (c *CountVectorizer) Transform(docs []string) ([][]float64, error) {
	if len(docs) == 0 {
		return nil, ErrEmptyInput
	}

	out := make([][]float64, len(docs))
	for i, doc := range docs {
		row := make([]float64, len(c.vocab))
		for _, tok := range Tokenize(doc) {
			if j, ok := c.index[tok]; ok {
				row[j]++
			}
		}
		out[i] = row
	}

	return out, nil
}

// TFIDFVectorizer weights token counts by smoothed inverse document
// frequency and L2-normalizes each document row:
//
//	idf(t) = ln((1+N)/(1+df(t))) + 1
//
// The smoothing keeps idf finite for tokens present in every document and
// avoids division by zero for the degenerate single-document corpus.
type TFIDFVectorizer struct {
	counts *CountVectorizer
	idf    []float64 // column-aligned with the vocabulary
}

// FitTFIDF builds the vocabulary and document frequencies from docs.
func FitTFIDF(docs []string) (*TFIDFVectorizer, error) {
	counts, err := FitCount(docs)
	if err != nil {
		return nil, err
	}

	// Document frequency per vocabulary column.
	df := make([]int, len(counts.vocab))
	for _, doc := range docs {
		seen := make(map[int]bool)
		for _, tok := range Tokenize(doc) {
			if j, ok := counts.index[tok]; ok && !seen[j] {
				seen[j] = true
				df[j]++
			}
		}
	}

	n := float64(len(docs))
	idf := make([]float64, len(df))
	for j, d := range df {
		idf[j] = math.Log((1+n)/(1+float64(d))) + 1
	}

	return &TFIDFVectorizer{counts: counts, idf: idf}, nil
}

// Vocabulary returns a copy of the ordered token list.
func (t *TFIDFVectorizer) Vocabulary() []string { return t.counts.Vocabulary() }

// Transform produces idf-weighted, L2-normalized rows for docs.
func (t *TFIDFVectorizer) Transform(docs []string) ([][]float64, error) {
	X, err := t.counts.Transform(docs)
	if err != nil {
		return nil, err
	}

	for _, row := range X {
		for j := range row {
			row[j] *= t.idf[j]
		}
	}

	return NormalizeL2(X)
}
