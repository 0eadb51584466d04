// SPDX-License-Identifier: MIT

package fixture

import (
	"fmt"
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/katalvlaran/cscgen/matrix"
)

// Spectrum plot geometry.
const (
	spectrumWidth  = 6 * vg.Inch
	spectrumHeight = 4 * vg.Inch
	minBins        = 8
	maxBins        = 64
)

var dominantColor = color.RGBA{R: 200, A: 255}

// PlotSpectrum writes a histogram of the eigenvalues of m to path, with
// dashed markers at ±max|λ|. The image format follows the file extension
// (.png, .svg, .pdf, ...).
func PlotSpectrum(m matrix.Reader, engine matrix.EigenEngine, title, path string) error {
	vals, err := matrix.Eigenvalues(m, engine, solverOptions(m.Rows())...)
	if err != nil {
		return fmt.Errorf("plot spectrum: %w", err)
	}
	if len(vals) == 0 {
		return fmt.Errorf("plot spectrum: %w", ErrEmptySpectrum)
	}
	dominant, _ := matrix.Magnitudes(vals)

	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "eigenvalue"
	p.Y.Label.Text = "count"

	hist, err := plotter.NewHist(plotter.Values(vals), binCount(len(vals)))
	if err != nil {
		return fmt.Errorf("plot spectrum: %w", err)
	}
	p.Add(hist)

	var top float64
	for _, b := range hist.Bins {
		if b.Weight > top {
			top = b.Weight
		}
	}
	for _, x := range []float64{-dominant, dominant} {
		marker, err := plotter.NewLine(plotter.XYs{{X: x, Y: 0}, {X: x, Y: top}})
		if err != nil {
			return fmt.Errorf("plot spectrum: %w", err)
		}
		marker.Color = dominantColor
		marker.Dashes = []vg.Length{vg.Points(4), vg.Points(2)}
		p.Add(marker)
	}
	p.Legend.Add(fmt.Sprintf("max|λ| = %s", FormatEigenvalue(dominant)))

	if err := p.Save(spectrumWidth, spectrumHeight, path); err != nil {
		return fmt.Errorf("plot spectrum: %w", err)
	}

	return nil
}

// binCount picks roughly √n bins, clamped to [minBins, maxBins].
func binCount(n int) int {
	b := 1
	for b*b < n {
		b++
	}

	return max(minBins, min(b, maxBins))
}
