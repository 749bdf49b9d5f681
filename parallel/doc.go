// Package parallel computes parallel-coordinates geometry: F evenly spaced
// vertical axes, one polyline per instance, vertex i at (i, value of
// feature i normalized into [0,1] across the dataset).
//
// A column whose values are all equal carries no ordering information; its
// vertices collapse to the single axis position 0.5 so the polylines stay
// readable instead of hugging an axis end.
//
// Large datasets can be thinned with deterministic random subsampling:
// WithSample(fraction) and WithSeed(seed) select a reproducible subset —
// the same fraction and seed always keep the same instances, in their
// original row order.
//
// Errors (sentinel):
//
//	– ErrNoInstances if the dataset has zero rows.
//	– ErrNoFeatures  if the dataset has zero columns.
//	– ErrBadFraction if the sampling fraction is outside (0, 1].
package parallel
