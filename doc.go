// Package sgembed is a utility toolkit for signed-graph embedding
// pipelines — from raw edge lists to spectral node features, with the
// hyperbolic math, evaluation and reporting pieces an embedding run
// needs around them.
//
// 🚀 What is sgembed?
//
//	A small, deterministic library that brings together:
//		• Signed adjacency: symmetric ±1 sparse matrices from edge lists
//		• Spectral features: randomized truncated SVD with a seeded sketch
//		• Hyperbolic math: clamped artanh/arsinh/arcosh with exact gradients
//		• Graph I/O: delimiter-sniffing edge-list and feature-table readers
//		• Metrics: AUC and F1 scores for signed link prediction
//		• Reporting: bordered text tables and buffered scalar logging
//
// ✨ Why choose sgembed?
//
//   - Reproducible – every random choice flows from one explicit seed
//   - Rock-solid guarantees – sentinel errors, validated inputs, in-code docs
//   - Pure Go – gonum for the linear algebra, no cgo
//   - Composable – each concern is its own package with a narrow API
//
// The toolkit is organized by concern:
//
//	sigadj/   — coalesced COO matrices & the signed ±1 adjacency builder
//	spectral/ — randomized truncated-SVD feature builder (Halko scheme)
//	hypmath/  — numerically safe inverse hyperbolic forward/backward rules
//	graphio/  — signed edge-list and dense feature-CSV readers
//	metrics/  — ROC-AUC and binary/micro/macro F1 scoring
//	texttab/  — fixed-width bordered tables for parameters & score logs
//	monitor/  — scalar series writer with structured logging
//	config/   — YAML-backed pipeline parameters with validated defaults
//	features/ — feature-source facade: spectral build or file load
//
// Quick start:
//
//	ds, err := graphio.ReadGraph("edges.csv")
//	if err != nil { ... }
//	x, err := spectral.Features(ds.Positive, ds.Negative,
//		spectral.WithDimensions(64), spectral.WithSeed(42))
//
// See each package's doc.go for contracts, error values and complexity
// notes.
//
//	go get github.com/ostrevka/sgembed
package sgembed
