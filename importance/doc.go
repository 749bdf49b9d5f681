// Package importance ranks features by the importance a fitted predictive
// model assigns to them.
//
// The model collaborator is opaque: anything that exposes either
//
//	Importances() []float64   (e.g. impurity-decrease scores of a forest)
//	Coefficients() []float64  (e.g. weights of a linear model)
//
// can be ranked. Importances are preferred when both are present. The
// fitted model is treated as an immutable value object — this package
// never fits, refits or mutates it.
//
// Ordering: descending by absolute magnitude when Relative (the default),
// or by raw signed magnitude with WithRaw; ties always break by original
// feature index ascending, so the ranking is a stable permutation of
// 0..F-1.
//
// Errors (sentinel):
//
//	– ErrNoImportanceAttribute if the model exposes neither capability.
//	– ErrNameCountMismatch     if feature names disagree with the vector.
//	– ErrEmptyImportances      if the model yields a zero-length vector.
package importance
