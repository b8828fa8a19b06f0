// Package monitor records scalar training metrics as structured log
// events, one JSON record per (tag, value, step) triple.
//
// Writer follows a scoped-acquisition lifecycle: open it, feed it
// scalars, close it exactly once on every exit path — Close is
// idempotent and flushes any buffered output before releasing the
// sink. LogPerformance mirrors the per-epoch layout of the embedding
// pipeline's evaluation log (AUC, F1 variants and loss keyed by epoch).
package monitor
