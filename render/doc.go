// Package render turns analyzer layouts into PNG charts.
//
// One function per chart family:
//
//   - Scatter             – 2-D point clouds (radial, principal-component,
//     manifold and t-SNE layouts), optionally with
//     labeled feature anchors on the unit circle.
//   - ParallelCoordinates – one polyline per instance across vertical axes.
//   - HeatGrid            – the lower triangle of a pairwise score matrix.
//   - Bar                 – ranked horizontal magnitudes (token frequencies,
//     feature importances).
//
// Every function writes the encoded PNG to an io.Writer and never touches
// the filesystem; callers own file creation. Class coloring is
// deterministic: label k always maps to palette entry k mod len(palette).
// Unlabeled data falls back to a single neutral color; a target with more
// distinct values than the palette is treated as continuous and colored
// along a gray-to-blue ramp. Re-rendering the same layout produces
// byte-identical output.
//
// Scatter, ParallelCoordinates and HeatGrid draw with gonum.org/v1/plot;
// Bar draws with github.com/wcharczuk/go-chart/v2.
//
// Errors (sentinel):
//
//	– ErrEmptyResult if the layout holds nothing to draw.
package render
