package spectral

import (
	"fmt"
	"math/rand"

	"gonum.org/v1/gonum/mat"

	"github.com/ostrevka/sgembed/sigadj"
)

// Features — signed spectral node features via randomized truncated SVD.
//
// Description:
//
//	Builds the symmetric signed adjacency matrix A of the given edge
//	lists (see sigadj.NewSigned for the sign encoding) and embeds its
//	top-k right-singular directions as dense node features.
//
// Algorithm Outline (Halko range finder + projected SVD):
//  1. N = nodeCount, or 1 + max edge index when not supplied.
//  2. A = signed adjacency (N×N, symmetric, coalesced).
//  3. Ω = N×l Gaussian sketch, l = min(k + oversampling, N), seeded RNG.
//  4. Q = orth(A·Ω); repeat q times: Q = orth(A·orth(Aᵀ·Q)).
//  5. Bᵀ = Aᵀ·Q (N×l); thin SVD of Bᵀ gives the right-singular basis
//     of the projected matrix B = Qᵀ·A in its left factor.
//  6. Return the first k columns as an (N, k) dense matrix.
//
// Determinism:
//
//	All randomness comes from the seeded generator; loop orders are
//	fixed. Two calls with equal inputs and seed are bit-identical.
//
// Errors:
//   - ErrNonPositiveDimensions / ErrDimensionsTooLarge — bad k.
//   - ErrNonPositiveIterations — bad q.
//   - ErrNoEdges — empty inputs with no WithNodeCount.
//   - sigadj.ErrNodeOutOfRange / sigadj.ErrBadNodeCount — bad edges.
//   - ErrSVDFailed — factorization did not converge (fatal, no retry).
//
// Complexity: O(q·nnz·l + N·l²) time, O(N·l) space.
func Features(pos, neg sigadj.EdgeList, opts ...Option) (*mat.Dense, error) {
	// Resolve options; later options override earlier ones.
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	// Stage 1 (Validate): resolve N, then check reduction parameters.
	n := o.nodeCount
	if n == inferNodeCount {
		maxID := sigadj.MaxNodeID(pos, neg)
		if maxID < 0 {
			return nil, fmt.Errorf("Features: %w", ErrNoEdges)
		}
		n = maxID + 1
	}
	if o.dimensions <= 0 {
		return nil, fmt.Errorf("Features: k=%d: %w", o.dimensions, ErrNonPositiveDimensions)
	}
	if o.dimensions >= n {
		return nil, fmt.Errorf("Features: k=%d, n=%d: %w", o.dimensions, n, ErrDimensionsTooLarge)
	}
	if o.iterations <= 0 {
		return nil, fmt.Errorf("Features: q=%d: %w", o.iterations, ErrNonPositiveIterations)
	}
	if o.oversampling < 0 {
		o.oversampling = 0
	}

	// Stage 2 (Prepare): signed adjacency and seeded Gaussian sketch.
	a, err := sigadj.NewSigned(pos, neg, n)
	if err != nil {
		return nil, fmt.Errorf("Features: %w", err)
	}
	sketch := o.dimensions + o.oversampling
	if sketch > n {
		sketch = n
	}
	rng := rand.New(rand.NewSource(o.seed))
	omega := mat.NewDense(n, sketch, nil)
	for i := 0; i < n; i++ { // fixed row-major fill order for determinism
		for j := 0; j < sketch; j++ {
			omega.Set(i, j, rng.NormFloat64())
		}
	}

	// Stage 3 (Execute): range finder with power iterations.
	y, err := a.MulDense(omega)
	if err != nil {
		return nil, fmt.Errorf("Features: sketch: %w", err)
	}
	q, err := orthonormal(y)
	if err != nil {
		return nil, err
	}
	for iter := 0; iter < o.iterations; iter++ {
		z, err := a.MulDenseTrans(q)
		if err != nil {
			return nil, fmt.Errorf("Features: power iteration %d: %w", iter, err)
		}
		qz, err := orthonormal(z)
		if err != nil {
			return nil, err
		}
		y, err = a.MulDense(qz)
		if err != nil {
			return nil, fmt.Errorf("Features: power iteration %d: %w", iter, err)
		}
		q, err = orthonormal(y)
		if err != nil {
			return nil, err
		}
	}

	// Stage 4 (Finalize): project and decompose. Bᵀ = Aᵀ·Q carries the
	// right-singular directions of B = Qᵀ·A in its left singular factor.
	bt, err := a.MulDenseTrans(q)
	if err != nil {
		return nil, fmt.Errorf("Features: projection: %w", err)
	}
	var svd mat.SVD
	if !svd.Factorize(bt, mat.SVDThin) {
		return nil, fmt.Errorf("Features: %w", ErrSVDFailed)
	}
	var u mat.Dense
	svd.UTo(&u)

	// Truncate to the k leading directions; copy out of the view so the
	// returned matrix owns its storage.
	x := mat.NewDense(n, o.dimensions, nil)
	x.Copy(u.Slice(0, n, 0, o.dimensions))

	return x, nil
}

// orthonormal returns an orthonormal basis for the range of y, computed
// as the left singular factor of its thin SVD. Column count equals the
// sketch width; rank deficiency keeps deterministic trailing columns.
func orthonormal(y *mat.Dense) (*mat.Dense, error) {
	var svd mat.SVD
	if !svd.Factorize(y, mat.SVDThin) {
		return nil, fmt.Errorf("orthonormal: %w", ErrSVDFailed)
	}
	var u mat.Dense
	svd.UTo(&u)

	return &u, nil
}
