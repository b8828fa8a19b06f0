// Package graphio reads signed edge lists and node feature tables from
// delimited text files.
//
// ReadGraph consumes rows of the form "src,dst,sign" (comma or tab
// separated; the delimiter is sniffed from the first line unless fixed
// with WithComma) and partitions them into positive and negative edge
// lists together with dataset statistics. LoadFeatures reads a plain
// numeric CSV into a dense matrix for pipelines that skip the spectral
// initializer.
//
// Parsing is strict about structure (short rows, malformed ids and
// unparseable signs fail fast) but tolerant about sign values other
// than ±1: such rows count toward the edge total, matching datasets
// whose weight column carries graded ratings, yet never enter either
// edge list.
package graphio
