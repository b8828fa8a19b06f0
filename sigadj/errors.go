// SPDX-License-Identifier: MIT
// Package sigadj: sentinel error set.
// All constructors MUST return these sentinels and tests MUST check them
// via errors.Is. Context is added with fmt.Errorf("Op: %w", ErrX) at the
// facade; the sentinels themselves are never wrapped twice.

package sigadj

import "errors"

var (
	// ErrBadNodeCount is returned when a requested node count is non-positive.
	ErrBadNodeCount = errors.New("sigadj: node count must be > 0")

	// ErrNodeOutOfRange is returned when an edge endpoint is negative or
	// not below the declared node count. Validated at the boundary, before
	// any coordinate list is materialized.
	ErrNodeOutOfRange = errors.New("sigadj: node index out of range")

	// ErrCoordLenMismatch is returned when the rows, cols and vals slices
	// handed to Coalesce disagree in length.
	ErrCoordLenMismatch = errors.New("sigadj: coordinate slice lengths differ")

	// ErrOutOfRange indicates that a row or column index passed to a COO
	// accessor is outside the matrix shape.
	ErrOutOfRange = errors.New("sigadj: index out of range")

	// ErrDimensionMismatch indicates incompatible operand shapes in a
	// multiplication kernel.
	ErrDimensionMismatch = errors.New("sigadj: dimension mismatch")
)
