// Package cli implements the welllog command-line interface.
//
// Commands cover the QC workflow: render a multi-track depth panel
// (tracks), a neutron-density cross-plot (crossplot), a porosity
// comparison panel (porosity), a composite PDF report (report), and a
// LAS-to-CSV conversion (convert). All commands take a TOML job file
// describing the well; loggers are passed through context.Context.
package cli

import (
	"context"
	"io"

	"github.com/charmbracelet/log"
)

func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05",
		Level:           level,
	})
}

type ctxKey int

const loggerKey ctxKey = 0

func withLogger(ctx context.Context, l *log.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, l)
}

// loggerFromContext returns the context's logger, or the package default
// when none was attached.
func loggerFromContext(ctx context.Context) *log.Logger {
	if l, ok := ctx.Value(loggerKey).(*log.Logger); ok {
		return l
	}
	return log.Default()
}
