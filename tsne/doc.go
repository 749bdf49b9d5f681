// Package tsne embeds instances into two or three dimensions with
// t-distributed stochastic neighbor embedding, preserving local
// neighborhood structure rather than global distances.
//
// The embedding runs in two stages:
//
//  1. When the feature count exceeds 50, the matrix is first projected
//     onto its top-50 principal components. This removes noise dimensions
//     and bounds the cost of the pairwise-affinity pass.
//  2. Stochastic neighbor embedding proper: Gaussian input affinities with
//     a per-instance bandwidth found by binary search against the
//     requested perplexity, a Student-t output kernel, and gradient
//     descent with momentum, adaptive per-coordinate gains and early
//     exaggeration.
//
// All randomness (the initial layout) flows from the configured seed, so
// identical inputs and options produce identical embeddings.
//
// Complexity: O(N²) per gradient iteration in time and O(N²) space — this
// is the exact algorithm, suitable for the dataset sizes a single chart
// can show.
//
// Errors (sentinel):
//
//	– ErrNoInstances    if the dataset has zero rows.
//	– ErrBadPerplexity  if Perplexity < 1 or Perplexity ≥ N.
package tsne
