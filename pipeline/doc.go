// Package pipeline chains the four phases of a visualization run — load,
// preprocess, analyze, render — and gives their failures a uniform shape.
//
// A Pipeline is assembled once from a data source, a preprocessing method,
// an analyzer and an optional renderer, then executed with Run. Execution
// aborts at the first failing stage; the returned error is always a
// *StageError naming the stage, wrapping the underlying cause, so callers
// can both locate the failure (errors.As) and test for the specific
// sentinel (errors.Is).
//
// Classify folds any error from this module into one of four coarse
// categories — ErrData, ErrConfig, ErrCompute, ErrRender — which is what a
// CLI or service boundary usually wants to branch on.
//
// Logging is optional: WithLogger attaches a zap logger that records each
// stage's duration and shape; without it the pipeline stays silent.
package pipeline
