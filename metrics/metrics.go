// SPDX-License-Identifier: MIT
// Package metrics: ROC-AUC and F1 computation.

package metrics

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/integrate"
	"gonum.org/v1/gonum/stat"
)

var (
	// ErrLengthMismatch is returned when targets and probabilities
	// disagree in length.
	ErrLengthMismatch = errors.New("metrics: targets and probabilities differ in length")

	// ErrEmptyInput is returned for zero-length inputs.
	ErrEmptyInput = errors.New("metrics: empty input")

	// ErrBadRatio is returned when the negative ratio threshold is
	// outside [0, 1].
	ErrBadRatio = errors.New("metrics: negative ratio outside [0,1]")

	// ErrBadProbability is returned when a probability is NaN; a NaN
	// breaks the ROC ordering silently, so it is rejected up front.
	ErrBadProbability = errors.New("metrics: NaN probability")

	// ErrSingleClass is returned when every target belongs to one class;
	// ROC-AUC is undefined without both classes present.
	ErrSingleClass = errors.New("metrics: need both classes for AUC")
)

// negativeLabel is the target value marking a negative edge; any other
// value marks a positive edge. Mirrors the upstream convention where
// class index 0 is the positive-edge indicator.
const negativeLabel = 1

// Result bundles the link-sign prediction scores of one evaluation.
type Result struct {
	AUC     float64 // area under the ROC curve
	F1      float64 // binary F1 on the positive class
	F1Micro float64 // micro-averaged F1 (accuracy for single-label binary)
	F1Macro float64 // unweighted mean of per-class F1
}

// Scores evaluates predictions against targets.
//
// targets[i] == 1 marks a negative edge; any other value marks a
// positive edge. probs[i] is the predicted probability that edge i is
// positive. negRatio is the decision threshold: predict positive when
// probs[i] > negRatio.
//
// Stage 1 (Validate): lengths, threshold range, NaN probabilities,
// class presence.
// Stage 2 (Execute): ROC-AUC on the score-sorted pairs, then confusion
// counts at the threshold.
// Stage 3 (Finalize): assemble the F1 family.
//
// Complexity: O(n log n) time for the ROC sort, O(n) space.
func Scores(targets []int, probs []float64, negRatio float64) (Result, error) {
	// Validate.
	if len(targets) != len(probs) {
		return Result{}, fmt.Errorf("Scores: %d vs %d: %w", len(targets), len(probs), ErrLengthMismatch)
	}
	if len(targets) == 0 {
		return Result{}, fmt.Errorf("Scores: %w", ErrEmptyInput)
	}
	if negRatio < 0 || negRatio > 1 {
		return Result{}, fmt.Errorf("Scores: threshold %v: %w", negRatio, ErrBadRatio)
	}
	for i, p := range probs {
		if math.IsNaN(p) {
			return Result{}, fmt.Errorf("Scores: index %d: %w", i, ErrBadProbability)
		}
	}

	positives := 0
	for _, t := range targets {
		if t != negativeLabel {
			positives++
		}
	}
	if positives == 0 || positives == len(targets) {
		return Result{}, fmt.Errorf("Scores: %w", ErrSingleClass)
	}

	// Execute: AUC from the ROC curve, trapezoid-integrated.
	auc := rocAUC(targets, probs)

	// Confusion counts at the negative-ratio threshold.
	var tp, fp, tn, fn float64
	for i, t := range targets {
		isPos := t != negativeLabel
		predPos := probs[i] > negRatio
		switch {
		case isPos && predPos:
			tp++
		case isPos && !predPos:
			fn++
		case !isPos && predPos:
			fp++
		default:
			tn++
		}
	}

	// Finalize the F1 family. Micro-F1 over two exhaustive single-label
	// classes reduces to plain accuracy.
	f1Pos := f1(tp, fp, fn)
	f1Neg := f1(tn, fn, fp)
	total := float64(len(targets))

	return Result{
		AUC:     auc,
		F1:      f1Pos,
		F1Micro: (tp + tn) / total,
		F1Macro: (f1Pos + f1Neg) / 2,
	}, nil
}

// f1 computes 2TP / (2TP + FP + FN), defined as 0 for an empty denominator.
func f1(tp, fp, fn float64) float64 {
	denom := 2*tp + fp + fn
	if denom == 0 {
		return 0
	}
	return 2 * tp / denom
}

// rocAUC sorts (prob, class) pairs ascending by score and integrates
// the ROC curve. Callers guarantee both classes are present.
func rocAUC(targets []int, probs []float64) float64 {
	n := len(probs)
	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	// Ascending score order, index as a deterministic tie-break.
	sort.Slice(order, func(a, b int) bool {
		if probs[order[a]] != probs[order[b]] {
			return probs[order[a]] < probs[order[b]]
		}
		return order[a] < order[b]
	})

	y := make([]float64, n)
	classes := make([]bool, n)
	for k, idx := range order {
		y[k] = probs[idx]
		classes[k] = targets[idx] != negativeLabel
	}

	tpr, fpr, _ := stat.ROC(nil, y, classes, nil)

	return integrate.Trapezoidal(fpr, tpr)
}
