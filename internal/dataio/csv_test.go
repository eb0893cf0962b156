package dataio

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/user/welllog_analyzer_go/internal/parser"
)

func TestCSVRoundTrip(t *testing.T) {
	table := &parser.CurveTable{
		Names: []string{"DEPT", "GR", "GR"}, // duplicate mnemonics survive
		Rows: [][]float64{
			{100.0, 45.2, 46.1},
			{100.5, parser.NullValue, 0.3333333333333333},
			{101.0, 1e-12, -17.25},
		},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, table))

	got, err := ReadCSV(&buf)
	require.NoError(t, err)

	assert.Equal(t, table.Names, got.Names)
	require.Equal(t, len(table.Rows), len(got.Rows))
	for i := range table.Rows {
		for j := range table.Rows[i] {
			assert.Equal(t, table.Rows[i][j], got.Rows[i][j], "row %d col %d", i, j)
		}
	}
	// The null sentinel must survive exactly.
	assert.True(t, parser.IsNull(got.Rows[1][1]))
}

func TestReadCSVEmpty(t *testing.T) {
	_, err := ReadCSV(strings.NewReader(""))
	assert.ErrorIs(t, err, ErrEmptyCSV)
}

func TestReadCSVNonNumeric(t *testing.T) {
	_, err := ReadCSV(strings.NewReader("DEPT,GR\n100.0,oops\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"oops"`)
	assert.Contains(t, err.Error(), "GR")
}
