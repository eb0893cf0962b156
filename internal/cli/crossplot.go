package cli

import (
	"github.com/spf13/cobra"

	"github.com/user/welllog_analyzer_go/internal/report"
)

func newCrossPlotCmd() *cobra.Command {
	var configPath, out string

	cmd := &cobra.Command{
		Use:   "crossplot",
		Short: "Render a neutron-density lithology cross-plot",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			logger := loggerFromContext(ctx)

			j, err := loadJob(ctx, configPath)
			if err != nil {
				return err
			}
			result, err := report.CreateCrossPlot(j.table, j.crossPlotOptions())
			if err != nil {
				return err
			}
			if result.NoData {
				logger.Warn("no valid samples for cross-plot, nothing rendered")
				return nil
			}
			path, err := j.outputPath(out, "neutron_density_crossplot.png")
			if err != nil {
				return err
			}
			if err := writeFile(path, result.PNG); err != nil {
				return err
			}
			logger.Info("wrote cross-plot", "path", path, "samples", result.ValidSamples)
			return nil
		},
	}
	cmd.Flags().StringVarP(&configPath, "config", "c", "", "TOML job file")
	cmd.Flags().StringVarP(&out, "out", "o", "", "output PNG path (default: <output_dir>/neutron_density_crossplot.png)")
	cmd.MarkFlagRequired("config")
	return cmd
}
