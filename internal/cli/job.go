package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/user/welllog_analyzer_go/internal/config"
	"github.com/user/welllog_analyzer_go/internal/parser"
	"github.com/user/welllog_analyzer_go/internal/report"
)

// job bundles everything a render command needs from a config file.
type job struct {
	cfg   *config.Config
	table *parser.CurveTable
	tops  parser.Tops
}

func loadJob(ctx context.Context, configPath string) (*job, error) {
	logger := loggerFromContext(ctx)

	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}

	logger.Debug("parsing LAS file", "path", cfg.WellFile)
	table, err := parser.ParseFile(cfg.WellFile)
	if err != nil {
		return nil, err
	}
	logger.Info("parsed well file", "curves", table.NumCols(), "samples", table.NumRows())

	tops := parser.NewTops(cfg.Tops)
	if len(tops) > 0 {
		if err := tops.Validate(); err != nil {
			return nil, err
		}
		logger.Debug("loaded formation tops", "count", len(tops))
	}

	return &job{cfg: cfg, table: table, tops: tops}, nil
}

func (j *job) tracks() []report.Track {
	tracks := make([]report.Track, len(j.cfg.Tracks))
	for i, t := range j.cfg.Tracks {
		tracks[i] = report.Track{Label: t.Label, Curves: t.Curves}
	}
	return tracks
}

func (j *job) crossPlotOptions() report.CrossPlotOptions {
	return report.CrossPlotOptions{
		NeutronCurve:  j.cfg.CrossPlot.NeutronCurve,
		DensityCurve:  j.cfg.CrossPlot.DensityCurve,
		DepthCurve:    j.cfg.DepthCurve,
		MatrixDensity: j.cfg.CrossPlot.MatrixDensity,
		FluidDensity:  j.cfg.CrossPlot.FluidDensity,
		Tops:          j.tops,
	}
}

func (j *job) porosityOptions() report.PorosityOptions {
	return report.PorosityOptions{
		NeutronCurve:  j.cfg.CrossPlot.NeutronCurve,
		DensityCurve:  j.cfg.CrossPlot.DensityCurve,
		DepthCurve:    j.cfg.DepthCurve,
		MatrixDensity: j.cfg.CrossPlot.MatrixDensity,
		FluidDensity:  j.cfg.CrossPlot.FluidDensity,
	}
}

// outputPath resolves an explicit --out flag or joins the default file
// name onto the job's output directory.
func (j *job) outputPath(out, defaultName string) (string, error) {
	if out == "" {
		out = filepath.Join(j.cfg.OutputDir, defaultName)
	}
	if dir := filepath.Dir(out); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return "", fmt.Errorf("creating output directory: %w", err)
		}
	}
	return out, nil
}

func writeFile(path string, data []byte) error {
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
