package dataio

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/user/welllog_analyzer_go/internal/parser"
)

func TestNormalize(t *testing.T) {
	table := &parser.CurveTable{
		Names: []string{"GR"},
		Rows: [][]float64{
			{50}, {60}, {70},
		},
	}
	got := Normalize(table)
	assert.InDelta(t, 0.0, got.Rows[0][0], 1e-9)
	assert.InDelta(t, 0.5, got.Rows[1][0], 1e-9)
	assert.InDelta(t, 1.0, got.Rows[2][0], 1e-9)

	// Input untouched.
	assert.Equal(t, 50.0, table.Rows[0][0])
}

func TestNormalizeSkipsNulls(t *testing.T) {
	table := &parser.CurveTable{
		Names: []string{"GR"},
		Rows: [][]float64{
			{50}, {parser.NullValue}, {70},
		},
	}
	got := Normalize(table)
	assert.InDelta(t, 0.0, got.Rows[0][0], 1e-9)
	assert.True(t, parser.IsNull(got.Rows[1][0]))
	assert.InDelta(t, 1.0, got.Rows[2][0], 1e-9)
}

func TestNormalizeConstantColumn(t *testing.T) {
	table := &parser.CurveTable{
		Names: []string{"BS"},
		Rows:  [][]float64{{8.5}, {8.5}},
	}
	got := Normalize(table)
	require.Equal(t, 8.5, got.Rows[0][0])
	require.Equal(t, 8.5, got.Rows[1][0])
}
