// Package featviz is an in-memory toolkit for exploratory feature analysis —
// projecting, ranking and rendering tabular and text datasets before you
// commit to a model.
//
// 🚀 What is featviz?
//
//	A small, deterministic library that brings together:
//		• Dataset primitives: immutable feature matrices, targets, class names
//		• Preprocessing: column scalers (min-max, max-abs, standard), row norms
//		  (L1/L2), count & tf-idf text vectorization
//		• Projections: RadViz radial layout, parallel coordinates, PCA,
//		  isomap-style manifold embedding, t-SNE
//		• Ranking: pairwise Pearson/covariance matrices, model feature
//		  importances with stable tie-breaking
//		• Frequency analysis of token corpora
//		• Rendering: scatter, polyline, heat-grid and bar figures
//
// ✨ Why choose featviz?
//
//   - Deterministic by construction – every stochastic step takes a seed
//   - Explicit fitted state – Fit returns a value object, never mutates in place
//   - Pure pipeline – load → preprocess → analyze → render, no hidden I/O
//   - Extensible – every analyzer is an independent package behind one idiom
//
// Everything is organized under one package per concern:
//
//	dataset/    — Dataset type, registry, CSV and corpus loaders
//	preprocess/ — scalers and text vectorizers
//	radviz/     — radial (RadViz) projection onto the unit disk
//	parallel/   — parallel-coordinates geometry with deterministic sampling
//	rank/       — pairwise feature score matrices (Pearson, covariance)
//	importance/ — feature-importance ranking over fitted models
//	model/      — least-squares and forest collaborators exposing importances
//	pca/        — principal component projection with explained variance
//	manifold/   — k-nearest-neighbor geodesic embedding (isomap-style)
//	tsne/       — two-stage stochastic neighbor embedding
//	freq/       — token frequency totals and ordering
//	render/     — figure construction over gonum/plot and go-chart
//	pipeline/   — linear orchestration with staged error classification
//
// See examples/ for end-to-end, runnable scenarios.
package featviz
