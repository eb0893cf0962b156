package report

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/user/welllog_analyzer_go/internal/parser"
	"github.com/user/welllog_analyzer_go/internal/petro"
)

func TestBuildPDFReport(t *testing.T) {
	table := crossPlotTable()
	result, err := CreateCrossPlot(table, CrossPlotOptions{
		NeutronCurve: "NEU",
		DensityCurve: "DEN",
		DepthCurve:   "DEPT",
	})
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "qc_report.pdf")
	tops := parser.NewTops(map[string]float64{"FM-1": 479, "FM-2": 1294})
	meta := ReportMeta{
		Title:     "Well 1 QC",
		WellFile:  "well1.las",
		Generated: time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC),
	}
	images := []ReportImage{
		{Caption: "Neutron-Density Cross-Plot", PNG: result.PNG},
		{Caption: "Skipped no-data plot", PNG: nil}, // must be tolerated
	}
	err = BuildPDFReport(path, meta, petro.Summarize(table), tops, images)
	require.NoError(t, err)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}
