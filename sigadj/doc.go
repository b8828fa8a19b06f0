// Package sigadj builds signed adjacency structure from edge lists.
//
// The sigadj package provides:
//
//   - Edge / EdgeList primitives for 0-based integer node identifiers,
//     partitioned by the caller into positive (+1) and negative (−1) sets.
//   - Coalesce, a deterministic coordinate deduplicator that sums values
//     sharing the same (row, col) cell.
//   - COO, a coordinate-format sparse matrix with checked accessors and
//     dense multiplication kernels used by the spectral feature builder.
//   - NewSigned, which symmetrizes both edge sets and encodes their signs
//     into a single sparse signed adjacency matrix.
//
// All operations are pure and deterministic: input slices are never
// mutated, iteration orders are fixed, and no global state is consulted.
package sigadj
