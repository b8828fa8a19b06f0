package graphio_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ostrevka/sgembed/graphio"
	"github.com/ostrevka/sgembed/sigadj"
)

// writeFile drops content into a fresh temp file and returns its path.
func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestReadGraph_CommaSniffed(t *testing.T) {
	path := writeFile(t, "edges.csv",
		"source,target,sign\n0,1,1\n1,2,-1\n2,0,1\n")

	ds, err := graphio.ReadGraph(path)
	require.NoError(t, err)

	require.Equal(t, sigadj.EdgeList{{Src: 0, Dst: 1}, {Src: 2, Dst: 0}}, ds.Positive)
	require.Equal(t, sigadj.EdgeList{{Src: 1, Dst: 2}}, ds.Negative)
	require.Equal(t, 3, ds.EdgeCount)
	require.Equal(t, 3, ds.NodeCount)
}

func TestReadGraph_TabSniffed(t *testing.T) {
	path := writeFile(t, "edges.tsv",
		"source\ttarget\tsign\n0\t1\t1\n3\t1\t-1\n")

	ds, err := graphio.ReadGraph(path)
	require.NoError(t, err)

	require.Len(t, ds.Positive, 1)
	require.Len(t, ds.Negative, 1)
	// Ids {0,1,3}: sparse indexing wins, NodeCount = 3+1.
	require.Equal(t, 4, ds.NodeCount)
}

func TestReadGraph_GradedSignsCountedNotPartitioned(t *testing.T) {
	path := writeFile(t, "ratings.csv",
		"src,dst,rating\n0,1,1\n1,2,4\n2,3,-1\n3,0,-7\n")

	ds, err := graphio.ReadGraph(path)
	require.NoError(t, err)

	require.Len(t, ds.Positive, 1)
	require.Len(t, ds.Negative, 1)
	require.Equal(t, 4, ds.EdgeCount)
	require.InDelta(t, 0.25, ds.NegativeRatio(), 1e-12)
}

func TestReadGraph_NoHeader(t *testing.T) {
	path := writeFile(t, "edges.csv", "0,1,1\n1,2,-1\n")

	ds, err := graphio.ReadGraph(path, graphio.WithHeader(false))
	require.NoError(t, err)
	require.Equal(t, 2, ds.EdgeCount)
}

func TestReadGraph_ExplicitComma(t *testing.T) {
	path := writeFile(t, "edges.txt", "0;1;1\n2;1;-1\n")

	ds, err := graphio.ReadGraph(path,
		graphio.WithComma(';'), graphio.WithHeader(false))
	require.NoError(t, err)
	require.Equal(t, 2, ds.EdgeCount)
	require.Equal(t, 3, ds.NodeCount)
}

func TestReadGraph_Errors(t *testing.T) {
	short := writeFile(t, "short.csv", "h1,h2,h3\n0,1\n")
	_, err := graphio.ReadGraph(short)
	require.ErrorIs(t, err, graphio.ErrBadRecord)

	badID := writeFile(t, "badid.csv", "h1,h2,h3\nx,1,1\n")
	_, err = graphio.ReadGraph(badID)
	require.ErrorIs(t, err, graphio.ErrBadRecord)

	negID := writeFile(t, "negid.csv", "h1,h2,h3\n-2,1,1\n")
	_, err = graphio.ReadGraph(negID)
	require.ErrorIs(t, err, graphio.ErrBadRecord)

	badSign := writeFile(t, "badsign.csv", "h1,h2,h3\n0,1,up\n")
	_, err = graphio.ReadGraph(badSign)
	require.ErrorIs(t, err, graphio.ErrBadSign)

	_, err = graphio.ReadGraph(filepath.Join(t.TempDir(), "missing.csv"))
	require.Error(t, err)
}

func TestLoadFeatures(t *testing.T) {
	path := writeFile(t, "features.csv",
		"f0,f1,f2\n1.5,0,-2\n0.25,3,4\n")

	x, err := graphio.LoadFeatures(path)
	require.NoError(t, err)

	r, c := x.Dims()
	require.Equal(t, 2, r)
	require.Equal(t, 3, c)
	require.Equal(t, 1.5, x.At(0, 0))
	require.Equal(t, -2.0, x.At(0, 2))
	require.Equal(t, 4.0, x.At(1, 2))
}

func TestLoadFeatures_Errors(t *testing.T) {
	ragged := writeFile(t, "ragged.csv", "f0,f1\n1,2\n3\n")
	_, err := graphio.LoadFeatures(ragged)
	require.ErrorIs(t, err, graphio.ErrRaggedRow)

	bad := writeFile(t, "bad.csv", "f0\nnope\n")
	_, err = graphio.LoadFeatures(bad)
	require.ErrorIs(t, err, graphio.ErrBadFeature)

	empty := writeFile(t, "empty.csv", "f0,f1\n")
	_, err = graphio.LoadFeatures(empty)
	require.ErrorIs(t, err, graphio.ErrNoData)
}
