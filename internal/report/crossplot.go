package report

import (
	"fmt"
	"image/color"

	"github.com/user/welllog_analyzer_go/internal/parser"
	"github.com/user/welllog_analyzer_go/internal/petro"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// Cross-plot axis window: neutron porosity 0-60%, density 1.5-3.0 g/cm3
// with higher density at the bottom.
const (
	crossPlotXMin = -0.05
	crossPlotXMax = 0.6
	crossPlotYMin = 1.5
	crossPlotYMax = 3.0
)

var lithologyColors = map[string]color.Color{
	"Sandstone": color.RGBA{R: 214, G: 39, B: 40, A: 255},
	"Limestone": color.RGBA{R: 31, G: 119, B: 180, A: 255},
	"Dolomite":  color.RGBA{R: 44, G: 160, B: 44, A: 255},
}

var clayColor = color.RGBA{R: 140, G: 86, B: 75, A: 255}

// CrossPlotOptions selects the curves and overlays for CreateCrossPlot.
// MatrixDensity and FluidDensity feed the iso-porosity markers; zero
// values fall back to the sandstone matrix and water.
type CrossPlotOptions struct {
	NeutronCurve  string
	DensityCurve  string
	DepthCurve    string
	MatrixDensity float64
	FluidDensity  float64
	Tops          parser.Tops
	Title         string
}

func (o *CrossPlotOptions) applyDefaults() {
	if o.MatrixDensity == 0 {
		o.MatrixDensity = petro.SandstoneMatrixDensity
	}
	if o.FluidDensity == 0 {
		o.FluidDensity = petro.WaterDensity
	}
	if o.Title == "" {
		o.Title = "Neutron-Density Cross-Plot"
	}
}

// CreateCrossPlot renders a neutron-density cross-plot with the standard
// lithology interpretation overlay. When formation tops are supplied the
// samples are colored per formation and the depth curve is required.
// A request whose valid-sample set is empty (every row null in neutron or
// density) returns PlotResult{NoData: true} and no error.
func CreateCrossPlot(table *parser.CurveTable, opts CrossPlotOptions) (*PlotResult, error) {
	opts.applyDefaults()

	neuIdx, ok := table.ColumnIndex(opts.NeutronCurve)
	if !ok {
		return nil, fmt.Errorf("report: neutron curve %q not found in table", opts.NeutronCurve)
	}
	denIdx, ok := table.ColumnIndex(opts.DensityCurve)
	if !ok {
		return nil, fmt.Errorf("report: density curve %q not found in table", opts.DensityCurve)
	}
	depthIdx := -1
	if len(opts.Tops) > 0 {
		if err := opts.Tops.Validate(); err != nil {
			return nil, err
		}
		depthIdx, ok = table.ColumnIndex(opts.DepthCurve)
		if !ok {
			return nil, fmt.Errorf("report: depth curve %q not found in table", opts.DepthCurve)
		}
	}

	// Group valid samples by formation; the empty key covers the no-tops
	// case.
	byFormation := make(map[string]plotter.XYs)
	valid := 0
	for _, row := range table.Rows {
		neu, den := row[neuIdx], row[denIdx]
		if parser.IsNull(neu) || parser.IsNull(den) {
			continue
		}
		formation := ""
		if depthIdx >= 0 {
			if parser.IsNull(row[depthIdx]) {
				continue
			}
			formation, _ = opts.Tops.Classify(row[depthIdx])
		}
		byFormation[formation] = append(byFormation[formation], plotter.XY{X: neu, Y: den})
		valid++
	}
	if valid == 0 {
		return &PlotResult{NoData: true}, nil
	}

	p := plot.New()
	p.Title.Text = opts.Title
	p.X.Label.Text = fmt.Sprintf("%s (Neutron Porosity, v/v)", opts.NeutronCurve)
	p.Y.Label.Text = fmt.Sprintf("%s (Bulk Density, g/cm3)", opts.DensityCurve)
	p.X.Min, p.X.Max = crossPlotXMin, crossPlotXMax
	invertedY(p)
	p.Y.Min, p.Y.Max = crossPlotYMin, crossPlotYMax
	p.Add(plotter.NewGrid())

	if depthIdx >= 0 {
		// Legend entries follow top order, shallowest first.
		for i, top := range opts.Tops {
			pts, ok := byFormation[top.Name]
			if !ok {
				continue
			}
			s, err := newScatter(pts, curveColors[i%len(curveColors)])
			if err != nil {
				return nil, err
			}
			p.Add(s)
			p.Legend.Add(top.Name, s)
		}
	} else {
		s, err := newScatter(byFormation[""], curveColors[0])
		if err != nil {
			return nil, err
		}
		p.Add(s)
	}

	if err := addLithologyOverlay(p, opts.MatrixDensity, opts.FluidDensity); err != nil {
		return nil, err
	}

	p.Legend.Top = true
	p.Legend.XOffs = -vg.Points(10)

	png, err := writePNG(p, vg.Points(620), vg.Points(500))
	if err != nil {
		return nil, err
	}
	return &PlotResult{PNG: png, ValidSamples: valid}, nil
}

func newScatter(pts plotter.XYs, c color.Color) (*plotter.Scatter, error) {
	s, err := plotter.NewScatter(pts)
	if err != nil {
		return nil, fmt.Errorf("report: building scatter: %w", err)
	}
	s.GlyphStyle.Color = c
	s.GlyphStyle.Radius = vg.Points(1.5)
	s.GlyphStyle.Shape = draw.CircleGlyph{}
	return s, nil
}

// addLithologyOverlay draws the end-member trend lines, the iso-porosity
// markers for the given matrix/fluid pair, and the clay trend.
func addLithologyOverlay(p *plot.Plot, matrixDensity, fluidDensity float64) error {
	for _, ll := range petro.LithologyLines() {
		line, err := plotter.NewLine(plotter.XYs{
			{X: ll.Start.Neutron, Y: ll.Start.Density},
			{X: ll.End.Neutron, Y: ll.End.Density},
		})
		if err != nil {
			return fmt.Errorf("report: building %s line: %w", ll.Name, err)
		}
		line.Color = lithologyColors[ll.Name]
		line.Width = vg.Points(2)
		p.Add(line)
		p.Legend.Add(ll.Name, line)
	}

	markers, err := petro.IsoPorosityMarkers(fluidDensity, matrixDensity, petro.DefaultPorosities)
	if err != nil {
		return err
	}
	var labelXYs plotter.XYs
	var labelNames []string
	for _, phi := range petro.DefaultPorosities {
		density := markers[phi]
		line, err := plotter.NewLine(plotter.XYs{
			{X: crossPlotXMin, Y: density},
			{X: crossPlotXMax, Y: density},
		})
		if err != nil {
			return fmt.Errorf("report: building iso-porosity line: %w", err)
		}
		line.Color = lithologyColors["Sandstone"]
		line.Width = vg.Points(0.75)
		line.Dashes = []vg.Length{vg.Points(4), vg.Points(4)}
		p.Add(line)

		labelXYs = append(labelXYs, plotter.XY{X: 0.55, Y: density})
		labelNames = append(labelNames, fmt.Sprintf("%.0f%%", phi*100))
	}
	labels, err := plotter.NewLabels(plotter.XYLabels{XYs: labelXYs, Labels: labelNames})
	if err != nil {
		return fmt.Errorf("report: building iso-porosity labels: %w", err)
	}
	for i := range labels.TextStyle {
		labels.TextStyle[i].Color = lithologyColors["Sandstone"]
		labels.TextStyle[i].Font.Size = vg.Points(8)
	}
	p.Add(labels)

	clay, err := petro.ClayTrend(petro.ClayTrendSamples)
	if err != nil {
		return err
	}
	clayPts := make(plotter.XYs, len(clay))
	for i, pt := range clay {
		clayPts[i] = plotter.XY{X: pt.Neutron, Y: pt.Density}
	}
	clayLine, err := plotter.NewLine(clayPts)
	if err != nil {
		return fmt.Errorf("report: building clay trend: %w", err)
	}
	clayLine.Color = clayColor
	clayLine.Width = vg.Points(2)
	clayLine.Dashes = []vg.Length{vg.Points(1), vg.Points(3)}
	p.Add(clayLine)
	p.Legend.Add("Clay trend", clayLine)
	return nil
}
