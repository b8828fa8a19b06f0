// Package features selects the node-feature source for an embedding
// run: spectral initialization from the signed edge lists, or a dense
// table loaded from disk.
package features
