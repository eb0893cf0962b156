// Package config loads the TOML job description that drives the CLI: which
// well file to read, how to lay out the track panel, the formation tops to
// overlay, and the cross-plot curve names. The original workflow hardcoded
// all of this in its drivers; here it is caller-supplied configuration.
package config

import (
	"errors"
	"fmt"

	"github.com/BurntSushi/toml"
)

// Defaults applied when a job file omits the corresponding fields.
const (
	DefaultDepthCurve    = "DEPT"
	DefaultNeutronCurve  = "NEU"
	DefaultDensityCurve  = "DEN"
	DefaultMatrixDensity = 2.65
	DefaultFluidDensity  = 1.0
)

// ErrNoWellFile indicates a job file without a well_file entry.
var ErrNoWellFile = errors.New("config: job file must name a well_file")

// Track is one column of the track panel; its curves share an axis.
type Track struct {
	Label  string   `toml:"label"`
	Curves []string `toml:"curves"`
}

// CrossPlot names the curves and densities used by the cross-plot and
// porosity renderers.
type CrossPlot struct {
	NeutronCurve  string  `toml:"neutron_curve"`
	DensityCurve  string  `toml:"density_curve"`
	MatrixDensity float64 `toml:"matrix_density"`
	FluidDensity  float64 `toml:"fluid_density"`
}

// Config describes one QC job.
type Config struct {
	WellFile   string             `toml:"well_file"`
	OutputDir  string             `toml:"output_dir"`
	DepthCurve string             `toml:"depth_curve"`
	Tracks     []Track            `toml:"tracks"`
	Tops       map[string]float64 `toml:"tops"`
	CrossPlot  CrossPlot          `toml:"crossplot"`
}

// DefaultTracks is the six-track layout used when a job file defines none.
func DefaultTracks() []Track {
	return []Track{
		{Label: "Caliper/Bit Size", Curves: []string{"CALI", "BS"}},
		{Label: "Gamma Ray", Curves: []string{"GR"}},
		{Label: "Density", Curves: []string{"DEN"}},
		{Label: "Neutron", Curves: []string{"NEU"}},
		{Label: "Sonic (P & S)", Curves: []string{"AC", "ACS"}},
		{Label: "Resistivity", Curves: []string{"RMIC", "RMED", "RDEP"}},
	}
}

// Load reads a job file and fills in defaults for omitted fields.
func Load(path string) (*Config, error) {
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("config: decoding %s: %w", path, err)
	}
	if cfg.WellFile == "" {
		return nil, ErrNoWellFile
	}
	cfg.applyDefaults()
	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.OutputDir == "" {
		c.OutputDir = "."
	}
	if c.DepthCurve == "" {
		c.DepthCurve = DefaultDepthCurve
	}
	if len(c.Tracks) == 0 {
		c.Tracks = DefaultTracks()
	}
	if c.CrossPlot.NeutronCurve == "" {
		c.CrossPlot.NeutronCurve = DefaultNeutronCurve
	}
	if c.CrossPlot.DensityCurve == "" {
		c.CrossPlot.DensityCurve = DefaultDensityCurve
	}
	if c.CrossPlot.MatrixDensity == 0 {
		c.CrossPlot.MatrixDensity = DefaultMatrixDensity
	}
	if c.CrossPlot.FluidDensity == 0 {
		c.CrossPlot.FluidDensity = DefaultFluidDensity
	}
}
