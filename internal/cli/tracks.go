package cli

import (
	"github.com/spf13/cobra"

	"github.com/user/welllog_analyzer_go/internal/report"
)

func newTracksCmd() *cobra.Command {
	var configPath, out string

	cmd := &cobra.Command{
		Use:   "tracks",
		Short: "Render a multi-track depth panel with formation tops",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			logger := loggerFromContext(ctx)

			j, err := loadJob(ctx, configPath)
			if err != nil {
				return err
			}
			png, err := report.CreateTrackPanel(j.table, j.cfg.DepthCurve, j.tracks(), j.tops)
			if err != nil {
				return err
			}
			path, err := j.outputPath(out, "track_panel.png")
			if err != nil {
				return err
			}
			if err := writeFile(path, png); err != nil {
				return err
			}
			logger.Info("wrote track panel", "path", path)
			return nil
		},
	}
	cmd.Flags().StringVarP(&configPath, "config", "c", "", "TOML job file")
	cmd.Flags().StringVarP(&out, "out", "o", "", "output PNG path (default: <output_dir>/track_panel.png)")
	cmd.MarkFlagRequired("config")
	return cmd
}
