// Package radviz projects multi-dimensional instances onto the closed unit
// disk (RadViz / radial coordinates).
//
// Each feature is assigned an anchor on the unit circle at angle 2π·i/F.
// Every instance's feature values are min-max scaled into [0,1] per column
// across the dataset, and the instance is placed at the weight-normalized
// sum of anchor directions:
//
//	p = Σᵢ wᵢ·aᵢ / Σᵢ wᵢ
//
// An instance whose scaled weights sum to zero (all feature values equal to
// the column minima, or a dataset where every value is equal) degenerates
// to the disk center.
//
// Complexity:
//
//	– Time:  O(N·F)  one pass to scale, one pass to place.
//	– Space: O(N + F) beyond the input.
//
// Errors (sentinel):
//
//	– ErrNoInstances if the dataset has zero rows.
//	– ErrNoFeatures  if the dataset has zero columns.
package radviz
