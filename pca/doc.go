// Package pca computes principal component projections for visualization:
// the top-K directions of maximal variance of a mean-centered (optionally
// unit-variance scaled) feature matrix, obtained from a thin singular
// value decomposition.
//
// Fit returns an immutable Projection value object holding the column
// means, the components and the explained-variance ratios; Transform and
// Inverse reuse that fitted state on arbitrary matrices of the same width.
// Re-fitting means calling Fit again — fitted state is replaced wholesale,
// never updated.
//
// Visualization callers use K = 2 or 3; any 1 ≤ K ≤ min(N, F) is accepted
// so that a full-rank projection can be inverted for reconstruction
// checks.
//
// Errors (sentinel):
//
//	– ErrNoInstances     if the matrix has zero rows.
//	– ErrNoFeatures      if the matrix has zero columns.
//	– ErrBadComponents   if K < 1 or K > min(N, F).
//	– ErrDimensionMismatch if Transform/Inverse widths disagree with Fit.
package pca
