// Package report renders the QC artifacts: multi-track depth panels,
// neutron-density cross-plots, porosity comparison panels, and the PDF
// report compositing them.
package report

import (
	"bytes"
	"fmt"
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
)

// PlotResult carries a rendered PNG. NoData marks a render that was
// skipped because no valid samples survived null filtering; PNG is nil and
// ValidSamples zero in that case. A no-data result is not an error.
type PlotResult struct {
	PNG          []byte
	ValidSamples int
	NoData       bool
}

// Track is one column of the depth panel; its curves share an axis.
type Track struct {
	Label  string
	Curves []string
}

// curveColors is the color cycle for curves and formation groups.
var curveColors = []color.Color{
	color.RGBA{R: 31, G: 119, B: 180, A: 255},  // blue
	color.RGBA{R: 255, G: 127, B: 14, A: 255},  // orange
	color.RGBA{R: 44, G: 160, B: 44, A: 255},   // green
	color.RGBA{R: 214, G: 39, B: 40, A: 255},   // red
	color.RGBA{R: 148, G: 103, B: 189, A: 255}, // purple
	color.RGBA{R: 140, G: 86, B: 75, A: 255},   // brown
	color.RGBA{R: 227, G: 119, B: 194, A: 255}, // pink
	color.RGBA{R: 127, G: 127, B: 127, A: 255}, // gray
	color.RGBA{R: 188, G: 189, B: 34, A: 255},  // olive
	color.RGBA{R: 23, G: 190, B: 207, A: 255},  // cyan
}

var topsColor = color.RGBA{R: 214, G: 39, B: 40, A: 255}

// invertedY flips a plot's Y axis so larger values draw at the bottom, the
// convention for both depth and bulk density.
func invertedY(p *plot.Plot) {
	p.Y.Scale = plot.InvertedScale{Normalizer: plot.LinearScale{}}
}

func writePNG(p *plot.Plot, width, height vg.Length) ([]byte, error) {
	w, err := p.WriterTo(width, height, "png")
	if err != nil {
		return nil, fmt.Errorf("report: creating plot writer: %w", err)
	}
	buf := new(bytes.Buffer)
	if _, err := w.WriteTo(buf); err != nil {
		return nil, fmt.Errorf("report: writing plot: %w", err)
	}
	return buf.Bytes(), nil
}
