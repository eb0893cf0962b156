package cli

import (
	"github.com/spf13/cobra"

	"github.com/user/welllog_analyzer_go/internal/report"
)

func newPorosityCmd() *cobra.Command {
	var configPath, out string

	cmd := &cobra.Command{
		Use:   "porosity",
		Short: "Render the neutron/density porosity comparison panel",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			logger := loggerFromContext(ctx)

			j, err := loadJob(ctx, configPath)
			if err != nil {
				return err
			}
			result, err := report.CreatePorosityPanel(j.table, j.porosityOptions())
			if err != nil {
				return err
			}
			if result.NoData {
				logger.Warn("no valid samples for porosity panel, nothing rendered")
				return nil
			}
			path, err := j.outputPath(out, "porosity_comparison.png")
			if err != nil {
				return err
			}
			if err := writeFile(path, result.PNG); err != nil {
				return err
			}
			logger.Info("wrote porosity panel", "path", path, "samples", result.ValidSamples)
			return nil
		},
	}
	cmd.Flags().StringVarP(&configPath, "config", "c", "", "TOML job file")
	cmd.Flags().StringVarP(&out, "out", "o", "", "output PNG path (default: <output_dir>/porosity_comparison.png)")
	cmd.MarkFlagRequired("config")
	return cmd
}
