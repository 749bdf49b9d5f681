// Package manifold embeds instances into two dimensions along their
// intrinsic geometry (isomap-style nonlinear projection).
//
// Pipeline:
//
//  1. Build the k-nearest-neighbor graph over Euclidean distances; edges
//     are symmetrized (i–j exists when either endpoint selected the other).
//  2. Approximate manifold (geodesic) distances between all instance pairs
//     by single-source shortest paths from every vertex, using a min-heap
//     Dijkstra with the lazy-decrease-key strategy.
//  3. Recover 2-D coordinates from the geodesic distance matrix with
//     classical multidimensional scaling: double-center the squared
//     distances and keep the two leading eigenpairs.
//
// Complexity:
//
//	– Time:  O(N²·F) for the distance pass, O(N·(N+E)·log N) for the
//	  geodesics, O(N³) worst case for the eigendecomposition.
//	– Space: O(N²).
//
// Errors (sentinel):
//
//	– ErrInsufficientSamples if the instance count is ≤ the neighborhood size.
//	– ErrDisconnected        if the kNN graph leaves unreachable pairs.
//	– ErrNoFeatures          if the dataset has zero columns.
package manifold
