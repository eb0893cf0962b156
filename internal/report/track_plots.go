package report

import (
	"bytes"
	"errors"
	"fmt"
	"math"

	"github.com/user/welllog_analyzer_go/internal/parser"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

// ErrNoTracks indicates a track panel request with an empty layout.
var ErrNoTracks = errors.New("report: track panel needs at least one track")

const (
	trackWidth  = vg.Length(160)
	trackHeight = vg.Length(640)
)

// CreateTrackPanel renders the classic multi-track depth display: one
// subplot per track, all sharing an inverted depth axis, with formation
// tops drawn as dashed horizontal lines labeled on every track. Curves
// missing from the table are skipped silently, matching the original
// viewer; null-sentinel samples are dropped.
func CreateTrackPanel(table *parser.CurveTable, depthCurve string, tracks []Track, tops parser.Tops) ([]byte, error) {
	if len(tracks) == 0 {
		return nil, ErrNoTracks
	}
	depth, ok := table.Column(depthCurve)
	if !ok {
		return nil, fmt.Errorf("report: depth curve %q not found in table", depthCurve)
	}

	depthMin, depthMax := math.Inf(1), math.Inf(-1)
	for _, d := range depth {
		if parser.IsNull(d) {
			continue
		}
		depthMin = math.Min(depthMin, d)
		depthMax = math.Max(depthMax, d)
	}
	if depthMin > depthMax {
		return nil, fmt.Errorf("report: depth curve %q has no valid samples", depthCurve)
	}

	plots := make([][]*plot.Plot, 1)
	plots[0] = make([]*plot.Plot, len(tracks))
	for i, track := range tracks {
		p, err := buildTrackPlot(table, depth, depthMin, depthMax, track, tops, i == 0)
		if err != nil {
			return nil, err
		}
		plots[0][i] = p
	}

	img := vgimg.New(trackWidth*vg.Length(len(tracks)), trackHeight)
	dc := draw.New(img)
	tiles := draw.Tiles{
		Rows: 1,
		Cols: len(tracks),
		PadX: vg.Millimeter * 2,
	}
	canvases := plot.Align(plots, tiles, dc)
	for i := range plots[0] {
		plots[0][i].Draw(canvases[0][i])
	}

	buf := new(bytes.Buffer)
	png := vgimg.PngCanvas{Canvas: img}
	if _, err := png.WriteTo(buf); err != nil {
		return nil, fmt.Errorf("report: writing track panel: %w", err)
	}
	return buf.Bytes(), nil
}

func buildTrackPlot(table *parser.CurveTable, depth []float64, depthMin, depthMax float64, track Track, tops parser.Tops, first bool) (*plot.Plot, error) {
	p := plot.New()
	p.X.Label.Text = track.Label
	invertedY(p)
	p.Y.Min = depthMin
	p.Y.Max = depthMax
	if first {
		p.Y.Label.Text = "Depth (m)"
	} else {
		p.Y.Tick.Marker = plot.ConstantTicks(nil)
	}
	p.Add(plotter.NewGrid())

	xMin, xMax := math.Inf(1), math.Inf(-1)
	plotted := 0
	for _, curve := range track.Curves {
		idx, ok := table.ColumnIndex(curve)
		if !ok {
			continue
		}
		pts := make(plotter.XYs, 0, len(table.Rows))
		for r, row := range table.Rows {
			v := row[idx]
			if parser.IsNull(v) || parser.IsNull(depth[r]) {
				continue
			}
			pts = append(pts, plotter.XY{X: v, Y: depth[r]})
			xMin = math.Min(xMin, v)
			xMax = math.Max(xMax, v)
		}
		if len(pts) == 0 {
			continue
		}
		line, err := plotter.NewLine(pts)
		if err != nil {
			return nil, fmt.Errorf("report: building line for curve %q: %w", curve, err)
		}
		line.Color = curveColors[plotted%len(curveColors)]
		line.Width = vg.Points(1)
		p.Add(line)
		if len(track.Curves) > 1 {
			p.Legend.Add(curve, line)
			p.Legend.Top = true
		}
		plotted++
	}

	if plotted == 0 {
		xMin, xMax = 0, 1
	} else if xMin == xMax {
		xMin, xMax = xMin-0.5, xMax+0.5
	} else {
		pad := 0.05 * (xMax - xMin)
		xMin, xMax = xMin-pad, xMax+pad
	}
	p.X.Min = xMin
	p.X.Max = xMax

	if err := addTopsOverlay(p, tops, depthMin, depthMax, xMin, xMax); err != nil {
		return nil, err
	}
	return p, nil
}

// addTopsOverlay draws each formation top inside the depth window as a
// dashed horizontal line with its name beside it.
func addTopsOverlay(p *plot.Plot, tops parser.Tops, depthMin, depthMax, xMin, xMax float64) error {
	var labelXYs plotter.XYs
	var labelNames []string
	for _, top := range tops {
		if top.Depth < depthMin || top.Depth > depthMax {
			continue
		}
		line, err := plotter.NewLine(plotter.XYs{
			{X: xMin, Y: top.Depth},
			{X: xMax, Y: top.Depth},
		})
		if err != nil {
			return fmt.Errorf("report: building top line for %q: %w", top.Name, err)
		}
		line.Color = topsColor
		line.Width = vg.Points(1)
		line.Dashes = []vg.Length{vg.Points(5), vg.Points(3)}
		p.Add(line)

		labelXYs = append(labelXYs, plotter.XY{X: xMin + 0.02*(xMax-xMin), Y: top.Depth})
		labelNames = append(labelNames, top.Name)
	}
	if len(labelNames) == 0 {
		return nil
	}
	labels, err := plotter.NewLabels(plotter.XYLabels{XYs: labelXYs, Labels: labelNames})
	if err != nil {
		return fmt.Errorf("report: building top labels: %w", err)
	}
	for i := range labels.TextStyle {
		labels.TextStyle[i].Color = topsColor
		labels.TextStyle[i].Font.Size = vg.Points(7)
	}
	p.Add(labels)
	return nil
}
