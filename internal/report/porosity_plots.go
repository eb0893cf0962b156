package report

import (
	"bytes"
	"fmt"

	"github.com/user/welllog_analyzer_go/internal/parser"
	"github.com/user/welllog_analyzer_go/internal/petro"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

const porosityAxisMax = 0.6

// PorosityOptions selects the curves for CreatePorosityPanel. Zero
// densities fall back to the sandstone matrix and water.
type PorosityOptions struct {
	NeutronCurve  string
	DensityCurve  string
	DepthCurve    string
	MatrixDensity float64
	FluidDensity  float64
}

// CreatePorosityPanel renders the neutron/density porosity comparison:
// a neutron porosity log, a density porosity log, and a neutron-vs-density
// porosity cross-plot with a 1:1 reference line. Density porosity is the
// clamped transform from petro.DensityPorosity. Zero valid samples yields
// PlotResult{NoData: true} and no error.
func CreatePorosityPanel(table *parser.CurveTable, opts PorosityOptions) (*PlotResult, error) {
	if opts.MatrixDensity == 0 {
		opts.MatrixDensity = petro.SandstoneMatrixDensity
	}
	if opts.FluidDensity == 0 {
		opts.FluidDensity = petro.WaterDensity
	}

	neuIdx, ok := table.ColumnIndex(opts.NeutronCurve)
	if !ok {
		return nil, fmt.Errorf("report: neutron curve %q not found in table", opts.NeutronCurve)
	}
	denIdx, ok := table.ColumnIndex(opts.DensityCurve)
	if !ok {
		return nil, fmt.Errorf("report: density curve %q not found in table", opts.DensityCurve)
	}
	depthIdx, ok := table.ColumnIndex(opts.DepthCurve)
	if !ok {
		return nil, fmt.Errorf("report: depth curve %q not found in table", opts.DepthCurve)
	}

	var neutron, phid plotter.XYs // value vs depth
	var cross plotter.XYs         // neutron vs density porosity
	depthMin, depthMax := 0.0, 0.0
	for _, row := range table.Rows {
		neu, den, depth := row[neuIdx], row[denIdx], row[depthIdx]
		if parser.IsNull(neu) || parser.IsNull(den) || parser.IsNull(depth) {
			continue
		}
		porosity := petro.DensityPorosity(den, opts.MatrixDensity, opts.FluidDensity)
		if len(cross) == 0 {
			depthMin, depthMax = depth, depth
		} else {
			if depth < depthMin {
				depthMin = depth
			}
			if depth > depthMax {
				depthMax = depth
			}
		}
		neutron = append(neutron, plotter.XY{X: neu, Y: depth})
		phid = append(phid, plotter.XY{X: porosity, Y: depth})
		cross = append(cross, plotter.XY{X: neu, Y: porosity})
	}
	if len(cross) == 0 {
		return &PlotResult{NoData: true}, nil
	}

	neutronLog, err := porosityLogPlot(neutron, "Neutron Porosity (v/v)", "Neutron Porosity Log", depthMin, depthMax, true)
	if err != nil {
		return nil, err
	}
	phidLog, err := porosityLogPlot(phid, "Density Porosity (v/v)", "Density Porosity Log", depthMin, depthMax, false)
	if err != nil {
		return nil, err
	}
	crossPlot, err := porosityCrossPlot(cross)
	if err != nil {
		return nil, err
	}

	plots := [][]*plot.Plot{{neutronLog, phidLog, crossPlot}}
	img := vgimg.New(vg.Points(900), vg.Points(420))
	dc := draw.New(img)
	tiles := draw.Tiles{Rows: 1, Cols: 3, PadX: vg.Millimeter * 3}
	canvases := plot.Align(plots, tiles, dc)
	for i := range plots[0] {
		plots[0][i].Draw(canvases[0][i])
	}

	buf := new(bytes.Buffer)
	png := vgimg.PngCanvas{Canvas: img}
	if _, err := png.WriteTo(buf); err != nil {
		return nil, fmt.Errorf("report: writing porosity panel: %w", err)
	}
	return &PlotResult{PNG: buf.Bytes(), ValidSamples: len(cross)}, nil
}

func porosityLogPlot(pts plotter.XYs, xLabel, title string, depthMin, depthMax float64, first bool) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = xLabel
	p.X.Min, p.X.Max = 0, porosityAxisMax
	invertedY(p)
	p.Y.Min, p.Y.Max = depthMin, depthMax
	if first {
		p.Y.Label.Text = "Depth (m)"
	}
	p.Add(plotter.NewGrid())

	line, err := plotter.NewLine(pts)
	if err != nil {
		return nil, fmt.Errorf("report: building porosity log: %w", err)
	}
	line.Color = curveColors[0]
	if !first {
		line.Color = curveColors[3]
	}
	line.Width = vg.Points(1)
	p.Add(line)
	return p, nil
}

func porosityCrossPlot(pts plotter.XYs) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = "Neutron vs Density Porosity"
	p.X.Label.Text = "Neutron Porosity (v/v)"
	p.Y.Label.Text = "Density Porosity (v/v)"
	p.X.Min, p.X.Max = 0, porosityAxisMax
	p.Y.Min, p.Y.Max = 0, porosityAxisMax
	p.Add(plotter.NewGrid())

	s, err := newScatter(pts, curveColors[0])
	if err != nil {
		return nil, err
	}
	p.Add(s)

	unit, err := plotter.NewLine(plotter.XYs{{X: 0, Y: 0}, {X: porosityAxisMax, Y: porosityAxisMax}})
	if err != nil {
		return nil, fmt.Errorf("report: building 1:1 line: %w", err)
	}
	unit.Color = curveColors[7]
	unit.Dashes = []vg.Length{vg.Points(4), vg.Points(4)}
	p.Add(unit)
	p.Legend.Add("1:1 line", unit)
	p.Legend.Top = true
	return p, nil
}
