package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeJobFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "job.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	path := writeJobFile(t, `
well_file = "data/well1.las"
output_dir = "out"
depth_curve = "DEPTH"

[[tracks]]
label = "Gamma Ray"
curves = ["GR"]

[tops]
"FM-1" = 479.0
"FM-2" = 1294.0

[crossplot]
neutron_curve = "NPHI"
density_curve = "RHOB"
matrix_density = 2.71
`)
	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "data/well1.las", cfg.WellFile)
	assert.Equal(t, "out", cfg.OutputDir)
	assert.Equal(t, "DEPTH", cfg.DepthCurve)
	require.Len(t, cfg.Tracks, 1)
	assert.Equal(t, []string{"GR"}, cfg.Tracks[0].Curves)
	assert.Equal(t, 479.0, cfg.Tops["FM-1"])
	assert.Equal(t, "NPHI", cfg.CrossPlot.NeutronCurve)
	assert.Equal(t, 2.71, cfg.CrossPlot.MatrixDensity)
	// Omitted field gets its default.
	assert.Equal(t, DefaultFluidDensity, cfg.CrossPlot.FluidDensity)
}

func TestLoadDefaults(t *testing.T) {
	path := writeJobFile(t, `well_file = "well.las"`)
	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, ".", cfg.OutputDir)
	assert.Equal(t, DefaultDepthCurve, cfg.DepthCurve)
	assert.Equal(t, DefaultTracks(), cfg.Tracks)
	assert.Equal(t, DefaultNeutronCurve, cfg.CrossPlot.NeutronCurve)
	assert.Equal(t, DefaultDensityCurve, cfg.CrossPlot.DensityCurve)
	assert.Equal(t, DefaultMatrixDensity, cfg.CrossPlot.MatrixDensity)
	assert.Empty(t, cfg.Tops)
}

func TestLoadMissingWellFile(t *testing.T) {
	path := writeJobFile(t, `output_dir = "out"`)
	_, err := Load(path)
	assert.ErrorIs(t, err, ErrNoWellFile)
}

func TestLoadBadTOML(t *testing.T) {
	path := writeJobFile(t, `well_file = [broken`)
	_, err := Load(path)
	assert.Error(t, err)
}
