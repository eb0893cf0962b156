package petro

import "fmt"

// Point is a (neutron porosity, bulk density) coordinate on a cross-plot.
type Point struct {
	Neutron float64
	Density float64
}

// LithologyLine is a linear end-member trend between the zero-porosity
// matrix point and the 40%-porosity point of a rock type.
type LithologyLine struct {
	Name  string
	Start Point
	End   Point
}

// Standard matrix and fluid densities in g/cm3.
const (
	SandstoneMatrixDensity = 2.65
	LimestoneMatrixDensity = 2.71
	DolomiteMatrixDensity  = 2.87
	WaterDensity           = 1.0
)

// Clay trend approximation: density = 2.2 + 0.3*neutron over [0.3, 0.6].
const (
	clayNeutronMin   = 0.3
	clayNeutronMax   = 0.6
	claySlope        = 0.3
	clayIntercept    = 2.2
	ClayTrendSamples = 10
)

// DefaultPorosities are the iso-porosity markers drawn on cross-plots.
var DefaultPorosities = []float64{0.1, 0.2, 0.3}

// LithologyLines returns the three standard end-member trend lines for a
// neutron-density cross-plot.
func LithologyLines() []LithologyLine {
	return []LithologyLine{
		{Name: "Sandstone", Start: Point{0, 2.65}, End: Point{0.4, 2.35}},
		{Name: "Limestone", Start: Point{0, 2.71}, End: Point{0.4, 2.31}},
		{Name: "Dolomite", Start: Point{0, 2.87}, End: Point{0.4, 2.47}},
	}
}

// IsoPorosityMarkers maps each porosity to the bulk density a rock of that
// porosity would read, given the matrix and fluid densities. Porosities
// outside (0, 1) fail with ErrInvalidPorosity.
func IsoPorosityMarkers(fluidDensity, matrixDensity float64, porosities []float64) (map[float64]float64, error) {
	markers := make(map[float64]float64, len(porosities))
	for _, phi := range porosities {
		if phi <= 0 || phi >= 1 {
			return nil, fmt.Errorf("%w: %v", ErrInvalidPorosity, phi)
		}
		markers[phi] = matrixDensity - phi*(matrixDensity-fluidDensity)
	}
	return markers, nil
}

// ClayTrend samples the clay trend at n evenly spaced neutron values over
// [0.3, 0.6], both endpoints included.
func ClayTrend(n int) ([]Point, error) {
	if n < 2 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidSampleCount, n)
	}
	pts := make([]Point, n)
	step := (clayNeutronMax - clayNeutronMin) / float64(n-1)
	for i := range pts {
		neutron := clayNeutronMin + float64(i)*step
		pts[i] = Point{Neutron: neutron, Density: clayIntercept + claySlope*neutron}
	}
	return pts, nil
}
