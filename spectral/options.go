// SPDX-License-Identifier: MIT
// Package spectral: functional configuration for the feature builder.
// Options only record values; validation happens once, inside Features,
// so that bad parameters surface as errors rather than panics.

package spectral

// Deterministic defaults — single source of truth for zero-option calls.
const (
	// DefaultDimensions is the embedding width when WithDimensions is not given.
	DefaultDimensions = 64

	// DefaultIterations is the power-iteration count of the randomized
	// range finder. Five iterations matches the common truncated-SVD default.
	DefaultIterations = 5

	// DefaultSeed feeds the Gaussian sketch generator.
	DefaultSeed = 42

	// DefaultOversampling pads the sketch width beyond the target rank;
	// extra columns absorb spectral leakage before truncation.
	DefaultOversampling = 10

	// inferNodeCount marks "derive N from the edge lists" internally.
	inferNodeCount = 0
)

// Option mutates the builder configuration. Safe to apply repeatedly;
// later options override earlier ones.
type Option func(*options)

// options stores the effective configuration after applying setters.
// Unexported by design; public entry points accept ...Option.
type options struct {
	nodeCount    int   // 0 ⇒ infer as 1 + max edge index
	dimensions   int   // target rank k
	iterations   int   // power-iteration count q
	seed         int64 // sketch RNG seed
	oversampling int   // sketch padding p
}

// defaultOptions returns the documented defaults.
func defaultOptions() options {
	return options{
		nodeCount:    inferNodeCount,
		dimensions:   DefaultDimensions,
		iterations:   DefaultIterations,
		seed:         DefaultSeed,
		oversampling: DefaultOversampling,
	}
}

// WithNodeCount fixes the matrix shape to n×n instead of inferring it
// from the largest edge index.
func WithNodeCount(n int) Option {
	return func(o *options) { o.nodeCount = n }
}

// WithDimensions sets the number of spectral features per node.
func WithDimensions(k int) Option {
	return func(o *options) { o.dimensions = k }
}

// WithIterations sets the power-iteration count of the range finder.
func WithIterations(q int) Option {
	return func(o *options) { o.iterations = q }
}

// WithSeed fixes the Gaussian sketch seed for reproducible features.
func WithSeed(seed int64) Option {
	return func(o *options) { o.seed = seed }
}

// WithOversampling sets the sketch padding beyond the target rank.
// Values below zero are treated as zero during validation.
func WithOversampling(p int) Option {
	return func(o *options) { o.oversampling = p }
}
