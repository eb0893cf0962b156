package cli

import (
	"context"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

// Execute runs the welllog CLI and returns an error if any command fails.
func Execute() error {
	var verbose bool

	root := &cobra.Command{
		Use:          "welllog",
		Short:        "welllog renders well-log QC plots from LAS files",
		Long:         `welllog parses LAS (Log ASCII Standard) well-log files and renders quality-control artifacts: multi-track depth panels with formation-top overlays, neutron-density lithology cross-plots, porosity comparison panels, and a composite PDF report.`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			ctx := withLogger(cmd.Context(), newLogger(os.Stderr, level))
			cmd.SetContext(ctx)
		},
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(newTracksCmd())
	root.AddCommand(newCrossPlotCmd())
	root.AddCommand(newPorosityCmd())
	root.AddCommand(newReportCmd())
	root.AddCommand(newConvertCmd())

	return root.ExecuteContext(context.Background())
}
