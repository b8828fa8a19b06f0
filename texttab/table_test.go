package texttab_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ostrevka/sgembed/texttab"
)

func TestTable_Golden(t *testing.T) {
	got := texttab.New().
		SetHeader("Parameter", "Value").
		AddRow("Epochs", "100").
		AddRow("Seed", "42").
		Render()

	want := strings.Join([]string{
		"+-----------+-------+",
		"| Parameter | Value |",
		"+===========+=======+",
		"| Epochs    | 100   |",
		"+-----------+-------+",
		"| Seed      | 42    |",
		"+-----------+-------+",
		"",
	}, "\n")
	require.Equal(t, want, got)
}

func TestTable_Empty(t *testing.T) {
	require.Equal(t, "", texttab.New().Render())
}

func TestTable_RaggedRowsPadded(t *testing.T) {
	got := texttab.New().
		AddRow("a", "bb", "ccc").
		AddRow("dddd").
		Render()

	lines := strings.Split(strings.TrimRight(got, "\n"), "\n")
	// Every line has identical width.
	for _, l := range lines[1:] {
		require.Equal(t, len(lines[0]), len(l), "line %q", l)
	}
}

func TestFormatParams(t *testing.T) {
	got := texttab.FormatParams([][2]string{
		{"Edge path", "input/edges.csv"},
		{"Reduction dimensions", "64"},
	})

	require.Contains(t, got, "| Parameter ")
	require.Contains(t, got, "| Edge path ")
	require.Contains(t, got, "| 64")
	require.Contains(t, got, "+=")
}

func TestFormatScores_Stride(t *testing.T) {
	perf := [][]float64{
		{0, 0.5, 0.4, 0.3},
		{10, 0.6, 0.5, 0.4},
		{20, 0.7, 0.6, 0.5},
	}

	got := texttab.FormatScores(perf, 2)
	require.Contains(t, got, "0.000")
	require.Contains(t, got, "20.000")
	require.NotContains(t, got, "10.000")
	// Only the first three columns survive.
	require.NotContains(t, got, "0.300")
}
