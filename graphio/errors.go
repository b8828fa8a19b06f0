// SPDX-License-Identifier: MIT
// Package graphio: sentinel error set.

package graphio

import "errors"

var (
	// ErrBadRecord is returned for a structurally broken row: fewer than
	// three fields, or an endpoint that is not a non-negative integer.
	ErrBadRecord = errors.New("graphio: malformed edge record")

	// ErrBadSign is returned when the sign column of a row cannot be
	// parsed as a number at all.
	ErrBadSign = errors.New("graphio: unparseable edge sign")

	// ErrRaggedRow is returned by LoadFeatures when feature rows disagree
	// in width.
	ErrRaggedRow = errors.New("graphio: ragged feature row")

	// ErrBadFeature is returned when a feature cell is not numeric.
	ErrBadFeature = errors.New("graphio: unparseable feature value")

	// ErrNoData is returned when a file holds no data rows after the
	// optional header.
	ErrNoData = errors.New("graphio: no data rows")
)
