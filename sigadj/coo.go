// Package sigadj: COO sparse matrix.
// Dense is a poor fit for adjacency at embedding scale, so the feature
// pipeline stores the signed adjacency in coordinate format: three
// parallel slices ordered by (row, col). Explicit zeros are retained —
// a cancelled cell (positive and negative mass meeting on the same
// coordinate) is structurally present with value 0.
package sigadj

import (
	"fmt"
	"sort"

	"gonum.org/v1/gonum/mat"
)

// COO is a sparse real matrix in coordinate format.
// Invariant: rows/cols/vals have equal length and are ordered by
// (row, col) ascending with no duplicate coordinates. NewCOO and
// NewSigned establish the invariant; COO values are never mutated after
// construction.
type COO struct {
	r, c int       // matrix shape
	rows []int     // row index per stored entry
	cols []int     // column index per stored entry
	vals []float64 // value per stored entry
}

// NewCOO builds a COO matrix of shape (r, c) from coordinate triples.
// Stage 1 (Validate): shape positive, slice lengths equal, indices in range.
// Stage 2 (Execute): coalesce to enforce ordering and uniqueness.
// Stage 3 (Finalize): wrap and return.
// Complexity: O(n log n) time, O(n) space.
func NewCOO(r, c int, rows, cols []int, vals []float64) (*COO, error) {
	// Validate shape.
	if r <= 0 || c <= 0 {
		return nil, fmt.Errorf("NewCOO: shape %dx%d: %w", r, c, ErrBadNodeCount)
	}
	// Validate coordinate ranges before any allocation.
	if len(rows) != len(cols) || len(rows) != len(vals) {
		return nil, fmt.Errorf("NewCOO: %w", ErrCoordLenMismatch)
	}
	for i := range rows {
		if rows[i] < 0 || rows[i] >= r || cols[i] < 0 || cols[i] >= c {
			return nil, fmt.Errorf("NewCOO: entry %d at (%d,%d): %w", i, rows[i], cols[i], ErrOutOfRange)
		}
	}

	// Execute: coalesce establishes ordering and per-cell uniqueness.
	cr, cc, cv, err := Coalesce(rows, cols, vals)
	if err != nil {
		return nil, fmt.Errorf("NewCOO: %w", err)
	}

	// Finalize.
	return &COO{r: r, c: c, rows: cr, cols: cc, vals: cv}, nil
}

// Rows returns the number of matrix rows. Complexity: O(1).
func (m *COO) Rows() int { return m.r }

// Cols returns the number of matrix columns. Complexity: O(1).
func (m *COO) Cols() int { return m.c }

// NNZ returns the number of stored entries, explicit zeros included.
// Complexity: O(1).
func (m *COO) NNZ() int { return len(m.vals) }

// At returns the value stored at (row, col), or 0 for absent cells.
// Stage 1 (Validate): bounds check.
// Stage 2 (Execute): binary search over the ordered entry list.
// Complexity: O(log nnz).
func (m *COO) At(row, col int) (float64, error) {
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return 0, fmt.Errorf("COO.At(%d,%d): %w", row, col, ErrOutOfRange)
	}

	// Locate the first entry not below (row, col).
	i := sort.Search(len(m.rows), func(k int) bool {
		if m.rows[k] != row {
			return m.rows[k] > row
		}
		return m.cols[k] >= col
	})
	if i < len(m.rows) && m.rows[i] == row && m.cols[i] == col {
		return m.vals[i], nil
	}

	return 0, nil
}

// Do calls fn for every stored entry in (row, col) ascending order.
// fn must not retain references past the call; values are passed by copy.
func (m *COO) Do(fn func(row, col int, v float64)) {
	for i := range m.vals {
		fn(m.rows[i], m.cols[i], m.vals[i])
	}
}

// MulVecTo computes dst = A·x for a dense vector x.
// Stage 1 (Validate): len(x) == Cols, len(dst) == Rows.
// Stage 2 (Execute): accumulate over stored entries in fixed order.
// Complexity: O(nnz) time.
func (m *COO) MulVecTo(dst, x []float64) error {
	if len(x) != m.c || len(dst) != m.r {
		return fmt.Errorf("COO.MulVecTo: x=%d dst=%d vs %dx%d: %w",
			len(x), len(dst), m.r, m.c, ErrDimensionMismatch)
	}

	for i := range dst {
		dst[i] = 0
	}
	for i := range m.vals {
		dst[m.rows[i]] += m.vals[i] * x[m.cols[i]]
	}

	return nil
}

// MulDense computes Y = A·X for a dense X of shape (Cols, k).
// The result is freshly allocated; X is not mutated.
// Complexity: O(nnz·k) time, O(Rows·k) space.
func (m *COO) MulDense(x *mat.Dense) (*mat.Dense, error) {
	xr, xc := x.Dims()
	if xr != m.c {
		return nil, fmt.Errorf("COO.MulDense: %dx%d by %dx%d: %w", m.r, m.c, xr, xc, ErrDimensionMismatch)
	}

	y := mat.NewDense(m.r, xc, nil)
	for i := range m.vals {
		row, col, v := m.rows[i], m.cols[i], m.vals[i]
		for j := 0; j < xc; j++ {
			y.Set(row, j, y.At(row, j)+v*x.At(col, j))
		}
	}

	return y, nil
}

// MulDenseTrans computes Y = Aᵀ·X for a dense X of shape (Rows, k).
// Kept separate from MulDense even though NewSigned output is symmetric:
// the kernel must stay correct for any COO, not only signed adjacency.
// Complexity: O(nnz·k) time, O(Cols·k) space.
func (m *COO) MulDenseTrans(x *mat.Dense) (*mat.Dense, error) {
	xr, xc := x.Dims()
	if xr != m.r {
		return nil, fmt.Errorf("COO.MulDenseTrans: %dx%d (transposed) by %dx%d: %w", m.c, m.r, xr, xc, ErrDimensionMismatch)
	}

	y := mat.NewDense(m.c, xc, nil)
	for i := range m.vals {
		row, col, v := m.rows[i], m.cols[i], m.vals[i]
		for j := 0; j < xc; j++ {
			y.Set(col, j, y.At(col, j)+v*x.At(row, j))
		}
	}

	return y, nil
}
