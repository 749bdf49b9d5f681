// Package freq ranks corpus tokens by total occurrence count, the
// aggregation behind token-frequency bar charts.
//
// Input is a document-term count matrix (one row per document, one column
// per vocabulary token, as produced by a count vectorizer) plus the
// vocabulary itself. Count sums each column and returns the tokens in
// descending total order; ties keep the vocabulary order, so the ranking
// is fully deterministic.
//
// Errors (sentinel):
//
//	– ErrEmptyInput    if the matrix has no rows or columns.
//	– ErrVocabMismatch if the vocabulary length differs from the matrix width.
package freq
