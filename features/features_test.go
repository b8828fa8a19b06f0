package features_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ostrevka/sgembed/config"
	"github.com/ostrevka/sgembed/features"
	"github.com/ostrevka/sgembed/graphio"
	"github.com/ostrevka/sgembed/sigadj"
)

func ringDataset() *graphio.Dataset {
	pos := sigadj.EdgeList{{Src: 0, Dst: 1}, {Src: 1, Dst: 2}, {Src: 2, Dst: 3}}
	neg := sigadj.EdgeList{{Src: 3, Dst: 4}, {Src: 4, Dst: 5}, {Src: 5, Dst: 0}}

	return &graphio.Dataset{
		Positive:  pos,
		Negative:  neg,
		EdgeCount: len(pos) + len(neg),
		NodeCount: 6,
	}
}

func TestSetup_Spectral(t *testing.T) {
	p := config.Default()
	p.EdgePath = "edges.csv"
	p.ReductionDimensions = 3
	p.ReductionIterations = 4

	x, err := features.Setup(p, ringDataset())
	require.NoError(t, err)

	r, c := x.Dims()
	require.Equal(t, 6, r)
	require.Equal(t, 3, c)
}

func TestSetup_SpectralIsDeterministic(t *testing.T) {
	p := config.Default()
	p.EdgePath = "edges.csv"
	p.ReductionDimensions = 2
	p.ReductionIterations = 3

	a, err := features.Setup(p, ringDataset())
	require.NoError(t, err)
	b, err := features.Setup(p, ringDataset())
	require.NoError(t, err)

	require.Equal(t, a.RawMatrix().Data, b.RawMatrix().Data)
}

func TestSetup_FromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "features.csv")
	body := "f0,f1\n1.0,2.0\n3.0,4.0\n"
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	p := config.Default()
	p.SpectralFeatures = false
	p.FeaturesPath = path

	x, err := features.Setup(p, nil)
	require.NoError(t, err)

	r, c := x.Dims()
	require.Equal(t, 2, r)
	require.Equal(t, 2, c)
	require.Equal(t, 3.0, x.At(1, 0))
}

func TestSetup_NilDataset(t *testing.T) {
	p := config.Default()
	p.EdgePath = "edges.csv"

	_, err := features.Setup(p, nil)
	require.ErrorIs(t, err, features.ErrNilDataset)
}

func TestSetup_InvalidParams(t *testing.T) {
	_, err := features.Setup(config.Default(), ringDataset())
	require.ErrorIs(t, err, config.ErrMissingEdgePath)
}
