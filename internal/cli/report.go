package cli

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/user/welllog_analyzer_go/internal/petro"
	"github.com/user/welllog_analyzer_go/internal/report"
)

func newReportCmd() *cobra.Command {
	var configPath, out, title string

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Render all QC plots and composite them into a PDF report",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			logger := loggerFromContext(ctx)

			j, err := loadJob(ctx, configPath)
			if err != nil {
				return err
			}

			logger.Debug("rendering track panel")
			trackPNG, err := report.CreateTrackPanel(j.table, j.cfg.DepthCurve, j.tracks(), j.tops)
			if err != nil {
				return err
			}

			logger.Debug("rendering cross-plot")
			crossResult, err := report.CreateCrossPlot(j.table, j.crossPlotOptions())
			if err != nil {
				return err
			}
			if crossResult.NoData {
				logger.Warn("no valid samples for cross-plot, omitting from report")
			}

			logger.Debug("rendering porosity panel")
			porosityResult, err := report.CreatePorosityPanel(j.table, j.porosityOptions())
			if err != nil {
				return err
			}
			if porosityResult.NoData {
				logger.Warn("no valid samples for porosity panel, omitting from report")
			}

			path, err := j.outputPath(out, "qc_report.pdf")
			if err != nil {
				return err
			}
			meta := report.ReportMeta{
				Title:     title,
				WellFile:  j.cfg.WellFile,
				Generated: time.Now(),
			}
			images := []report.ReportImage{
				{Caption: "Well Log Panel with Formation Tops", PNG: trackPNG},
				{Caption: "Neutron-Density Cross-Plot", PNG: crossResult.PNG},
				{Caption: "Porosity Comparison", PNG: porosityResult.PNG},
			}
			if err := report.BuildPDFReport(path, meta, petro.Summarize(j.table), j.tops, images); err != nil {
				return err
			}
			logger.Info("wrote QC report", "path", path)
			return nil
		},
	}
	cmd.Flags().StringVarP(&configPath, "config", "c", "", "TOML job file")
	cmd.Flags().StringVarP(&out, "out", "o", "", "output PDF path (default: <output_dir>/qc_report.pdf)")
	cmd.Flags().StringVar(&title, "title", "", "report title")
	cmd.MarkFlagRequired("config")
	return cmd
}
