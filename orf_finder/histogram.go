package orf_finder

import (
	"fmt"
	"image/color"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

const histBins = 50

func lengthHistogram(orfs []ORF, minLength int) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = fmt.Sprintf("ORF length distribution (min=%d)", minLength)
	p.X.Label.Text = "ORF length (bp)"
	p.Y.Label.Text = "Count"

	if len(orfs) == 0 {
		return p, nil
	}

	values := make(plotter.Values, len(orfs))
	for i, o := range orfs {
		values[i] = float64(o.Length)
	}
	h, err := plotter.NewHist(values, histBins)
	if err != nil {
		return nil, err
	}
	h.FillColor = color.RGBA{R: 50, G: 100, B: 200, A: 255}
	p.Add(h)
	return p, nil
}

// RenderLengthHistogram draws the ORF length histogram in the given format
// ("png", "svg", "pdf", ...) and writes it to w.
func RenderLengthHistogram(w io.Writer, format string, orfs []ORF, minLength int) error {
	p, err := lengthHistogram(orfs, minLength)
	if err != nil {
		return err
	}
	writer, err := p.WriterTo(6*vg.Inch, 4*vg.Inch, format)
	if err != nil {
		return err
	}
	_, err = writer.WriteTo(w)
	return err
}

// WriteLengthHistogram saves the histogram to path; the format follows the
// file extension and defaults to png.
func WriteLengthHistogram(path string, orfs []ORF, minLength int) error {
	format := strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
	if format == "" {
		format = "png"
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create histogram file: %w", err)
	}
	if err := RenderLengthHistogram(f, format, orfs, minLength); err != nil {
		f.Close()
		return fmt.Errorf("failed to render histogram: %w", err)
	}
	return f.Close()
}
