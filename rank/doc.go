// Package rank computes pairwise feature-to-feature score matrices for
// correlation inspection (the "rank 2D" view).
//
// Two algorithms are supported:
//
//	– Pearson    : the F×F correlation matrix; diagonal is exactly 1.
//	– Covariance : the F×F sample covariance matrix (divisor n−1);
//	               diagonal holds each feature's variance.
//
// Both matrices are symmetric, so only the lower triangle is meaningful
// for display; renderers blank the upper half.
//
// A Pearson score is undefined for a zero-variance feature — the underlying
// statistic divides by the feature's deviation — and surfaces as NaN. That
// mirrors the numeric library this package wraps; callers who need a
// defined value should drop or jitter constant columns first.
//
// Errors (sentinel):
//
//	– ErrUnknownAlgorithm if the algorithm is not Pearson or Covariance.
//	– ErrNoFeatures       if the dataset has zero columns.
//	– ErrTooFewInstances  if fewer than two rows are available.
package rank
