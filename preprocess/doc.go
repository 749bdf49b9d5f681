// Package preprocess converts raw Dataset features into numeric matrices
// suitable for analysis: column-wise scaling, row-wise norm scaling, and
// text vectorization of document corpora.
//
// Two usage forms exist, matching the fit→transform state machine shared by
// every featviz estimator:
//
//   - One-shot: Transform(ds, method) fits on the given dataset and
//     transforms it atomically.
//   - Split: FitMinMax / FitMaxAbs / FitStandard / FitCount / FitTFIDF
//     return an immutable fitted value object whose Transform method can be
//     reused across datasets. Re-fitting means calling Fit again: fitted
//     state is never updated incrementally.
//
// Methods:
//
//	– None     : identity.
//	– MinMax   : column-wise (x−min)/(max−min); constant columns map to 0.
//	– MaxAbs   : column-wise x/max|x|; all-zero columns stay 0.
//	– Standard : column-wise (x−mean)/std; zero-std columns map to 0.
//	– L1, L2   : row-wise division by the row's 1- or 2-norm; zero rows stay 0.
//	– Count    : token counts over a first-seen-ordered vocabulary.
//	– TFIDF    : smoothed idf-weighted counts, L2-normalized per document.
//
// Guarantees: output row count always equals input row count; column count
// changes only for the text methods, which derive it from the vocabulary.
//
// Errors (sentinel):
//
//	– ErrUnsupportedMethod  if the method is not in the enumerated set.
//	– ErrEmptyVocabulary    if text vectorization yields zero columns.
//	– ErrDimensionMismatch  if Transform input width differs from Fit input.
//	– ErrNeedCorpus         if a text method receives a numeric dataset.
//	– ErrNeedNumeric        if a numeric method receives a raw corpus.
package preprocess
