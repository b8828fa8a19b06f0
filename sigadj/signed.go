// SPDX-License-Identifier: MIT
// Package sigadj: signed adjacency construction.
//
// NewSigned turns two partitioned edge lists into one symmetric sparse
// matrix whose entries carry aggregate sign mass. The +2/+0 value
// encoding below is correctness-critical, not arbitrary: positive
// copies carry 2, negative copies carry 0, duplicates on a cell are
// averaged, and the final shift by 1 maps pure-positive mass to +1,
// pure-negative mass to −1, and a cell fed by both lists to 0 (mutual
// cancellation).

package sigadj

import "fmt"

// Sign-encoding constants. Values are chosen so that the per-cell mean,
// shifted by signedShift, recovers +1 / −1 / 0 for positive-only,
// negative-only and mixed cells respectively.
const (
	positiveEncoded = 2.0 // value attached to every positive edge copy
	negativeEncoded = 0.0 // value attached to every negative edge copy
	signedShift     = 1.0 // subtracted from every averaged cell
	unitCount       = 1.0 // per-copy weight used to count duplicates
)

// NewSigned builds the signed adjacency matrix of shape
// (nodeCount, nodeCount) from positive and negative edge lists.
//
// Stage 1 (Validate): nodeCount > 0, every endpoint in [0, nodeCount).
// Stage 2 (Prepare): encode edge copies as coordinate triples — each
// edge contributes its (src, dst) cell and the mirrored (dst, src)
// cell with the same encoded value, which makes the result symmetric
// by construction.
// Stage 3 (Execute): coalesce the encoded values and, in lockstep, a
// unit-weight copy of the same coordinates; the second pass yields the
// duplicate count per cell, so mean = sum/count. Subtract the encoding
// shift from every averaged cell.
// Stage 4 (Finalize): wrap the shifted triples into a COO.
//
// The result is symmetric: A[i,j] == A[j,i] for all i, j.
// Inputs are never mutated.
// Complexity: O(E log E) time, O(E) space, E = 2·(|pos|+|neg|).
func NewSigned(pos, neg EdgeList, nodeCount int) (*COO, error) {
	// Validate node count.
	if nodeCount <= 0 {
		return nil, fmt.Errorf("NewSigned: nodeCount=%d: %w", nodeCount, ErrBadNodeCount)
	}
	// Validate endpoints at the boundary, before materializing coordinates.
	if err := validateEdges(pos, nodeCount); err != nil {
		return nil, fmt.Errorf("NewSigned: positive edges: %w", err)
	}
	if err := validateEdges(neg, nodeCount); err != nil {
		return nil, fmt.Errorf("NewSigned: negative edges: %w", err)
	}

	// Prepare symmetrized coordinate triples.
	n := 2 * (len(pos) + len(neg))
	rows := make([]int, 0, n)
	cols := make([]int, 0, n)
	vals := make([]float64, 0, n)
	ones := make([]float64, 0, n)
	appendBoth := func(e Edge, v float64) {
		rows = append(rows, e.Src, e.Dst)
		cols = append(cols, e.Dst, e.Src)
		vals = append(vals, v, v)
		ones = append(ones, unitCount, unitCount)
	}
	for _, e := range pos {
		appendBoth(e, positiveEncoded)
	}
	for _, e := range neg {
		appendBoth(e, negativeEncoded)
	}

	// Execute coalesce on values and unit weights. Coalesce is
	// deterministic, so both passes emit cells in the same order.
	cr, cc, cv, err := Coalesce(rows, cols, vals)
	if err != nil {
		return nil, fmt.Errorf("NewSigned: %w", err)
	}
	_, _, counts, err := Coalesce(rows, cols, ones)
	if err != nil {
		return nil, fmt.Errorf("NewSigned: counts: %w", err)
	}
	// Average duplicates, then undo the encoding offset.
	for i := range cv {
		cv[i] = cv[i]/counts[i] - signedShift
	}

	// Finalize. Triples are already coalesced and in range; NewCOO
	// re-runs Coalesce as a no-op, keeping a single construction path.
	coo, err := NewCOO(nodeCount, nodeCount, cr, cc, cv)
	if err != nil {
		return nil, fmt.Errorf("NewSigned: %w", err)
	}

	return coo, nil
}
