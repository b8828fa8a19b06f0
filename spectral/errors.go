// SPDX-License-Identifier: MIT
// Package spectral: sentinel error set. Reduction parameters are
// validated and surfaced, never silently clamped.

package spectral

import "errors"

var (
	// ErrNonPositiveDimensions is returned when the requested reduction
	// dimension count is zero or negative.
	ErrNonPositiveDimensions = errors.New("spectral: reduction dimensions must be > 0")

	// ErrDimensionsTooLarge is returned when the requested reduction
	// dimension count is not strictly below the node count; a truncated
	// decomposition needs headroom to converge.
	ErrDimensionsTooLarge = errors.New("spectral: reduction dimensions must be < node count")

	// ErrNonPositiveIterations is returned when the power-iteration count
	// is zero or negative.
	ErrNonPositiveIterations = errors.New("spectral: reduction iterations must be > 0")

	// ErrNoEdges is returned when both edge lists are empty and no node
	// count was supplied, leaving the matrix shape undefined.
	ErrNoEdges = errors.New("spectral: no edges and no node count")

	// ErrSVDFailed is returned when the underlying factorization does not
	// converge. Deterministic given the seed; the caller must treat it as
	// fatal for the call, there is no retry path.
	ErrSVDFailed = errors.New("spectral: svd factorization failed")
)
