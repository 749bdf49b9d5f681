// Package model provides small predictive-model collaborators whose fitted
// state exposes the capabilities the importance package ranks:
//
//	– FitLinear → *LinearModel, exposing Coefficients().
//	– FitForest → *ForestModel, exposing Importances().
//
// Fitting returns an immutable value object; there is no in-place refit.
// Calling Fit again on different data simply produces a new model — prior
// fitted state is never merged or updated incrementally.
//
// These are deliberately modest estimators: an exact QR least-squares
// solver and a seeded bootstrap ensemble of variance-reduction regression
// trees. They exist to drive feature-importance visualization, not to
// compete on predictive accuracy.
package model
