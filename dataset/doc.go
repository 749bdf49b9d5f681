// Package dataset defines the immutable Dataset value consumed by every
// featviz analyzer, together with a name→loader registry and loaders for
// delimited numeric files and raw text corpora.
//
// A Dataset is constructed once, validated on construction, and never
// mutated afterwards: accessors hand out defensive copies so that no
// analyzer can corrupt another's input. Shape invariants enforced by New:
//
//   - every feature row has the same length;
//   - len(target) == row count, when a target is present;
//   - len(featureNames) == column count, when names are present.
//
// Loaders either produce a fully materialized Dataset or fail with a
// sentinel error; there is no partial loading and no skip-and-continue on
// malformed rows.
//
// Errors (sentinel):
//
//	– ErrNotFound      if a registry identifier is unknown.
//	– ErrCorrupt       if stored data fails shape/type validation on load.
//	– ErrShapeMismatch if construction-time invariants are violated.
//	– ErrEmpty         if a dataset has no instances at all.
package dataset
