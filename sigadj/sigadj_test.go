package sigadj_test

import (
	"testing"

	"github.com/ostrevka/sgembed/sigadj"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

func TestCoalesce_SumsDuplicates(t *testing.T) {
	rows := []int{1, 0, 1, 0}
	cols := []int{2, 1, 2, 1}
	vals := []float64{2, 2, 2, 0}

	r, c, v, err := sigadj.Coalesce(rows, cols, vals)
	require.NoError(t, err)

	// Two distinct cells survive, ordered by (row, col).
	require.Equal(t, []int{0, 1}, r)
	require.Equal(t, []int{1, 2}, c)
	require.Equal(t, []float64{2, 4}, v)

	// Inputs untouched.
	require.Equal(t, []float64{2, 2, 2, 0}, vals)
}

func TestCoalesce_LengthMismatch(t *testing.T) {
	_, _, _, err := sigadj.Coalesce([]int{0}, []int{0, 1}, []float64{1})
	require.ErrorIs(t, err, sigadj.ErrCoordLenMismatch)
}

func TestNewSigned_SinglePositiveEdge(t *testing.T) {
	// One positive edge (0,1), N=2: A[0,1] = A[1,0] = 1, rest 0.
	a, err := sigadj.NewSigned(sigadj.EdgeList{{Src: 0, Dst: 1}}, nil, 2)
	require.NoError(t, err)

	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			got, err := a.At(i, j)
			require.NoError(t, err)
			if i != j {
				require.Equal(t, 1.0, got)
			} else {
				require.Equal(t, 0.0, got)
			}
		}
	}
}

func TestNewSigned_SingleNegativeEdge(t *testing.T) {
	a, err := sigadj.NewSigned(nil, sigadj.EdgeList{{Src: 0, Dst: 1}}, 2)
	require.NoError(t, err)

	got, err := a.At(0, 1)
	require.NoError(t, err)
	require.Equal(t, -1.0, got)
	got, err = a.At(1, 0)
	require.NoError(t, err)
	require.Equal(t, -1.0, got)
}

func TestNewSigned_MutualCancellation(t *testing.T) {
	// (0,1) present in both lists: signs cancel to exactly 0.
	pos := sigadj.EdgeList{{Src: 0, Dst: 1}}
	neg := sigadj.EdgeList{{Src: 0, Dst: 1}}
	a, err := sigadj.NewSigned(pos, neg, 2)
	require.NoError(t, err)

	got, err := a.At(0, 1)
	require.NoError(t, err)
	require.Equal(t, 0.0, got)
	got, err = a.At(1, 0)
	require.NoError(t, err)
	require.Equal(t, 0.0, got)
}

func TestNewSigned_Symmetry(t *testing.T) {
	pos := sigadj.EdgeList{{0, 1}, {1, 2}, {3, 0}, {2, 0}}
	neg := sigadj.EdgeList{{2, 3}, {1, 0}, {3, 1}}
	a, err := sigadj.NewSigned(pos, neg, 4)
	require.NoError(t, err)

	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			vij, err := a.At(i, j)
			require.NoError(t, err)
			vji, err := a.At(j, i)
			require.NoError(t, err)
			require.Equal(t, vij, vji, "A[%d,%d] vs A[%d,%d]", i, j, j, i)
		}
	}
}

func TestNewSigned_Validation(t *testing.T) {
	_, err := sigadj.NewSigned(sigadj.EdgeList{{Src: 0, Dst: 5}}, nil, 3)
	require.ErrorIs(t, err, sigadj.ErrNodeOutOfRange)

	_, err = sigadj.NewSigned(sigadj.EdgeList{{Src: -1, Dst: 0}}, nil, 3)
	require.ErrorIs(t, err, sigadj.ErrNodeOutOfRange)

	_, err = sigadj.NewSigned(nil, nil, 0)
	require.ErrorIs(t, err, sigadj.ErrBadNodeCount)
}

func TestMaxNodeID(t *testing.T) {
	require.Equal(t, -1, sigadj.MaxNodeID())
	require.Equal(t, -1, sigadj.MaxNodeID(sigadj.EdgeList{}))
	require.Equal(t, 7, sigadj.MaxNodeID(
		sigadj.EdgeList{{0, 3}},
		sigadj.EdgeList{{7, 1}, {2, 2}},
	))
}

func TestCOO_MulVecTo(t *testing.T) {
	// A = [[0,1],[1,0]] (single positive edge), x = (2,3) → A·x = (3,2).
	a, err := sigadj.NewSigned(sigadj.EdgeList{{Src: 0, Dst: 1}}, nil, 2)
	require.NoError(t, err)

	dst := make([]float64, 2)
	require.NoError(t, a.MulVecTo(dst, []float64{2, 3}))
	require.Equal(t, []float64{3, 2}, dst)

	require.ErrorIs(t, a.MulVecTo(dst, []float64{1}), sigadj.ErrDimensionMismatch)
}

func TestCOO_MulDenseMatchesTranspose(t *testing.T) {
	// Signed adjacency is symmetric, so A·X == Aᵀ·X entry for entry.
	pos := sigadj.EdgeList{{0, 1}, {1, 2}}
	neg := sigadj.EdgeList{{2, 0}}
	a, err := sigadj.NewSigned(pos, neg, 3)
	require.NoError(t, err)

	x := mat.NewDense(3, 2, []float64{1, 2, 3, 4, 5, 6})
	y1, err := a.MulDense(x)
	require.NoError(t, err)
	y2, err := a.MulDenseTrans(x)
	require.NoError(t, err)
	require.True(t, mat.EqualApprox(y1, y2, 1e-12))
}

func TestNewCOO_Validation(t *testing.T) {
	_, err := sigadj.NewCOO(0, 2, nil, nil, nil)
	require.ErrorIs(t, err, sigadj.ErrBadNodeCount)

	_, err = sigadj.NewCOO(2, 2, []int{5}, []int{0}, []float64{1})
	require.ErrorIs(t, err, sigadj.ErrOutOfRange)

	_, err = sigadj.NewCOO(2, 2, []int{0}, []int{0, 1}, []float64{1})
	require.ErrorIs(t, err, sigadj.ErrCoordLenMismatch)
}
