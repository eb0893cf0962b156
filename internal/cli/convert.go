package cli

import (
	"github.com/spf13/cobra"

	"github.com/user/welllog_analyzer_go/internal/dataio"
	"github.com/user/welllog_analyzer_go/internal/parser"
)

func newConvertCmd() *cobra.Command {
	var lasPath, out string
	var normalize bool

	cmd := &cobra.Command{
		Use:   "convert",
		Short: "Convert a LAS file to CSV",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())

			table, err := parser.ParseFile(lasPath)
			if err != nil {
				return err
			}
			logger.Info("parsed well file", "curves", table.NumCols(), "samples", table.NumRows())

			if normalize {
				table = dataio.Normalize(table)
				logger.Debug("normalized curve values to [0, 1]")
			}
			if err := dataio.WriteCSVFile(out, table); err != nil {
				return err
			}
			logger.Info("wrote CSV", "path", out)
			return nil
		},
	}
	cmd.Flags().StringVar(&lasPath, "las", "", "input LAS file")
	cmd.Flags().StringVarP(&out, "out", "o", "", "output CSV path")
	cmd.Flags().BoolVar(&normalize, "normalize", false, "min-max normalize each curve before writing")
	cmd.MarkFlagRequired("las")
	cmd.MarkFlagRequired("out")
	return cmd
}
