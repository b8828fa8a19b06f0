// Package spectral derives initial node features from signed edge lists.
//
// The pipeline is: build the symmetric signed adjacency matrix (package
// sigadj), sketch its range with a seeded Gaussian test matrix, refine
// the sketch with power iterations, and take a truncated SVD of the
// projected matrix. The transposed right-singular-vector block becomes
// the (nodeCount × dimensions) feature matrix, row i holding the
// feature vector of node i.
//
// All randomness flows from a single caller-supplied seed, so two calls
// with identical inputs and seed produce identical features.
package spectral
