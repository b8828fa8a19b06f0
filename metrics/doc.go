// Package metrics computes link-sign prediction quality scores.
//
// Scores consumes per-edge targets and predicted positive-class
// probabilities and reports ROC-AUC together with three F1 variants
// (binary on the positive class, micro, macro). Classification uses
// the dataset's negative-edge ratio as the decision threshold, so a
// prediction counts as positive when its probability exceeds the prior
// chance of seeing a negative edge.
//
// The package is pure glue over already-computed predictions: no model
// state, no I/O, deterministic for identical inputs.
package metrics
