package parser

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleLAS = `~Version Information Block
 VERS.  2.0: CWLS Log ASCII Standard
~Well Information Block
 STRT.M  100.0:
~Curve Information Block
#MNEM.UNIT      API CODE    Curve Description
 DEPT.M                   : Depth
 GR  .GAPI                : Gamma Ray

 DEN .G/CC                : Bulk Density
 NEU .V/V                 : Neutron Porosity
~ASCII Log Data
  100.0   45.2   2.65   0.12
  100.5   48.1   2.61   0.15
  101.0  -999.25 2.58   0.18
`

func TestParseWellFormed(t *testing.T) {
	table, err := Parse(strings.NewReader(sampleLAS))
	require.NoError(t, err)

	assert.Equal(t, []string{"DEPT", "GR", "DEN", "NEU"}, table.Names)
	require.Equal(t, 3, table.NumRows())
	assert.Equal(t, 4, table.NumCols())
	for _, row := range table.Rows {
		assert.Len(t, row, table.NumCols())
	}
	assert.Equal(t, 100.5, table.Rows[1][0])
	assert.Equal(t, 48.1, table.Rows[1][1])
	assert.True(t, IsNull(table.Rows[2][1]))
}

func TestParseSkipsCommentsAndBlanks(t *testing.T) {
	table, err := Parse(strings.NewReader(sampleLAS))
	require.NoError(t, err)
	// The comment line and the blank line inside the curve block must not
	// produce columns.
	assert.Equal(t, 4, table.NumCols())
}

func TestParseDuplicateMnemonicsPreserved(t *testing.T) {
	input := "~Curve Information Block\n" +
		" DEPT.M : Depth\n" +
		" GR  .GAPI : Gamma Ray (run 1)\n" +
		" GR  .GAPI : Gamma Ray (run 2)\n" +
		"~ASCII\n" +
		" 100.0 45.0 46.0\n"
	table, err := Parse(strings.NewReader(input))
	require.NoError(t, err)
	assert.Equal(t, []string{"DEPT", "GR", "GR"}, table.Names)

	// Column lookup resolves to the first occurrence.
	idx, ok := table.ColumnIndex("GR")
	require.True(t, ok)
	assert.Equal(t, 1, idx)
}

func TestParseMissingMarkers(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"no curve block", "~ASCII\n 1.0 2.0\n"},
		{"no ascii block", "~Curve Information Block\n DEPT.M : Depth\n"},
		{"empty input", ""},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse(strings.NewReader(tc.input))
			var malformed *MalformedError
			require.ErrorAs(t, err, &malformed)
			assert.Zero(t, malformed.Line)
		})
	}
}

func TestParseMarkerOrder(t *testing.T) {
	input := "~ASCII\n 1.0\n~Curve Information Block\n DEPT.M : Depth\n"
	_, err := Parse(strings.NewReader(input))
	var malformed *MalformedError
	require.ErrorAs(t, err, &malformed)
}

func TestParseRowWidthMismatch(t *testing.T) {
	input := "~Curve Information Block\n" +
		" DEPT.M : Depth\n" +
		" GR  .GAPI : Gamma Ray\n" +
		"~ASCII\n" +
		" 100.0 45.0\n" +
		" 100.5 46.0 extra_field_makes 4.0\n"
	_, err := Parse(strings.NewReader(input))
	var malformed *MalformedError
	require.ErrorAs(t, err, &malformed)
	assert.Equal(t, 6, malformed.Line)
	assert.Contains(t, malformed.Reason, "expected 2 fields")
}

func TestParseNonNumericToken(t *testing.T) {
	input := "~Curve Information Block\n" +
		" DEPT.M : Depth\n" +
		"~ASCII\n" +
		" abc\n"
	_, err := Parse(strings.NewReader(input))
	var malformed *MalformedError
	require.ErrorAs(t, err, &malformed)
	assert.Equal(t, 4, malformed.Line)
	assert.Contains(t, malformed.Error(), `"abc"`)
}

func TestColumn(t *testing.T) {
	table, err := Parse(strings.NewReader(sampleLAS))
	require.NoError(t, err)

	depth, ok := table.Column("DEPT")
	require.True(t, ok)
	assert.Equal(t, []float64{100.0, 100.5, 101.0}, depth)

	_, ok = table.Column("SP")
	assert.False(t, ok)
}

func TestIsNull(t *testing.T) {
	assert.True(t, IsNull(-999.25))
	assert.False(t, IsNull(-999.250001))
	assert.False(t, IsNull(0))
}

func TestParseErrorIsNotMalformed(t *testing.T) {
	// A plain read error must not be reported as malformed input.
	_, err := ParseFile("testdata/does_not_exist.las")
	require.Error(t, err)
	var malformed *MalformedError
	assert.False(t, errors.As(err, &malformed))
}
