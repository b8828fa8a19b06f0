// SPDX-License-Identifier: MIT
// Package graphio: functional configuration for the readers.

package graphio

// Defaults — single source of truth for zero-option calls.
const (
	// DefaultHeader assumes the first line names columns and is skipped.
	DefaultHeader = true

	// sniffComma marks "detect comma vs tab from the first line".
	sniffComma rune = 0
)

// Option mutates reader configuration; later options override earlier.
type Option func(*options)

// options stores the effective reader configuration.
type options struct {
	comma  rune // field delimiter; sniffComma ⇒ sniff from first line
	header bool // skip the first record
}

func defaultOptions() options {
	return options{comma: sniffComma, header: DefaultHeader}
}

// WithComma fixes the field delimiter instead of sniffing it.
func WithComma(c rune) Option {
	return func(o *options) { o.comma = c }
}

// WithHeader controls whether the first record is discarded as a header.
func WithHeader(header bool) Option {
	return func(o *options) { o.header = header }
}
