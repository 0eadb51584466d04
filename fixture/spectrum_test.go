package fixture_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/katalvlaran/cscgen/fixture"
	"github.com/katalvlaran/cscgen/matrix"
	"github.com/stretchr/testify/require"
)

// TestPlotSpectrum renders PNG and SVG histograms.
func TestPlotSpectrum(t *testing.T) {
	dir := t.TempDir()
	m := mustCSC(t, 3,
		[]float64{2, 1, 1, 3, 1, 1, 4},
		[]int{0, 1, 0, 1, 2, 1, 2},
		[]int{0, 2, 5, 7})

	for _, name := range []string{"spectrum.png", "spectrum.svg"} {
		path := filepath.Join(dir, name)
		require.NoError(t, fixture.PlotSpectrum(m, matrix.EngineSymmetric, "test", path))
		info, err := os.Stat(path)
		require.NoError(t, err)
		require.Positive(t, info.Size())
	}

	err := fixture.PlotSpectrum(m, matrix.EnginePower, "test", filepath.Join(dir, "x.png"))
	require.Error(t, err)
}
