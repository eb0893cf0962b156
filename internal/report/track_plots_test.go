package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/user/welllog_analyzer_go/internal/parser"
)

func trackTable() *parser.CurveTable {
	return &parser.CurveTable{
		Names: []string{"DEPT", "GR", "DEN"},
		Rows: [][]float64{
			{100, 45, 2.55},
			{200, 50, 2.50},
			{300, parser.NullValue, 2.45},
			{400, 60, 2.40},
		},
	}
}

func TestCreateTrackPanel(t *testing.T) {
	tops := parser.NewTops(map[string]float64{"FM-1": 150, "FM-2": 350})
	tracks := []Track{
		{Label: "Gamma Ray", Curves: []string{"GR"}},
		{Label: "Density", Curves: []string{"DEN"}},
	}
	png, err := CreateTrackPanel(trackTable(), "DEPT", tracks, tops)
	require.NoError(t, err)
	assert.NotEmpty(t, png)
}

func TestCreateTrackPanelSkipsMissingCurves(t *testing.T) {
	tracks := []Track{
		{Label: "Resistivity", Curves: []string{"RDEP", "RMED"}}, // absent
		{Label: "Gamma Ray", Curves: []string{"GR"}},
	}
	png, err := CreateTrackPanel(trackTable(), "DEPT", tracks, nil)
	require.NoError(t, err)
	assert.NotEmpty(t, png)
}

func TestCreateTrackPanelNoTracks(t *testing.T) {
	_, err := CreateTrackPanel(trackTable(), "DEPT", nil, nil)
	assert.ErrorIs(t, err, ErrNoTracks)
}

func TestCreateTrackPanelMissingDepth(t *testing.T) {
	_, err := CreateTrackPanel(trackTable(), "DEPTH", []Track{{Label: "GR", Curves: []string{"GR"}}}, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "DEPTH")
}

func TestCreateTrackPanelAllNullDepth(t *testing.T) {
	table := &parser.CurveTable{
		Names: []string{"DEPT", "GR"},
		Rows: [][]float64{
			{parser.NullValue, 45},
			{parser.NullValue, 50},
		},
	}
	_, err := CreateTrackPanel(table, "DEPT", []Track{{Label: "GR", Curves: []string{"GR"}}}, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no valid samples")
}
