// SPDX-License-Identifier: MIT
// Package sigadj: coordinate coalescing kernel.
//
// Coalesce is the single place where duplicate (row, col) cells are
// merged. Both the symmetrized forward/reverse copies of an edge and
// genuinely parallel input edges collide here; the contract is SUM, not
// overwrite. Callers needing a different per-cell reduction (NewSigned
// averages) run a second pass over unit weights to recover counts.

package sigadj

import "sort"

// coord pairs a matrix cell with its accumulated value during sorting.
type coord struct {
	row, col int
	val      float64
}

// Coalesce groups all entries sharing the same (row, col) coordinate and
// sums their values into a single entry. Output triples are ordered by
// (row, col) ascending, which fixes the iteration order of every
// consumer downstream.
//
// Stage 1 (Validate): rows, cols and vals must have equal length.
// Stage 2 (Prepare): copy into a scratch slice; inputs stay untouched.
// Stage 3 (Execute): sort by (row, col), then fold runs of equal cells.
// Stage 4 (Finalize): return compacted triples.
//
// Complexity: O(n log n) time, O(n) space.
func Coalesce(rows, cols []int, vals []float64) ([]int, []int, []float64, error) {
	// Validate parallel slice lengths.
	if len(rows) != len(cols) || len(rows) != len(vals) {
		return nil, nil, nil, ErrCoordLenMismatch
	}
	if len(rows) == 0 {
		return nil, nil, nil, nil
	}

	// Prepare scratch triples; never mutate caller slices.
	entries := make([]coord, len(rows))
	for i := range rows {
		entries[i] = coord{row: rows[i], col: cols[i], val: vals[i]}
	}

	// Execute deterministic ordering: row ascending, then col ascending.
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].row != entries[j].row {
			return entries[i].row < entries[j].row
		}
		return entries[i].col < entries[j].col
	})

	// Fold runs of identical coordinates, summing values.
	outRows := make([]int, 0, len(entries))
	outCols := make([]int, 0, len(entries))
	outVals := make([]float64, 0, len(entries))
	for _, e := range entries {
		last := len(outRows) - 1
		if last >= 0 && outRows[last] == e.row && outCols[last] == e.col {
			outVals[last] += e.val // duplicate cell: aggregate
			continue
		}
		outRows = append(outRows, e.row)
		outCols = append(outCols, e.col)
		outVals = append(outVals, e.val)
	}

	// Finalize.
	return outRows, outCols, outVals, nil
}
