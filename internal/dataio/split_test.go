package dataio

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/user/welllog_analyzer_go/internal/parser"
)

func makeTable(n int) *parser.CurveTable {
	rows := make([][]float64, n)
	for i := range rows {
		rows[i] = []float64{float64(i)}
	}
	return &parser.CurveTable{Names: []string{"DEPT"}, Rows: rows}
}

func TestSplitSizes(t *testing.T) {
	train, test, err := Split(makeTable(10), 0.8, 1)
	require.NoError(t, err)
	assert.Equal(t, 8, train.NumRows())
	assert.Equal(t, 2, test.NumRows())
}

func TestSplitDisjointAndComplete(t *testing.T) {
	train, test, err := Split(makeTable(20), 0.5, 7)
	require.NoError(t, err)

	seen := make(map[float64]bool)
	for _, row := range train.Rows {
		seen[row[0]] = true
	}
	for _, row := range test.Rows {
		assert.False(t, seen[row[0]], "row %v in both sets", row[0])
		seen[row[0]] = true
	}
	assert.Len(t, seen, 20)
}

func TestSplitDeterministic(t *testing.T) {
	a1, b1, err := Split(makeTable(15), 0.6, 42)
	require.NoError(t, err)
	a2, b2, err := Split(makeTable(15), 0.6, 42)
	require.NoError(t, err)
	assert.Equal(t, a1.Rows, a2.Rows)
	assert.Equal(t, b1.Rows, b2.Rows)
}

func TestSplitInvalidFraction(t *testing.T) {
	for _, frac := range []float64{0, 1, -0.5, 1.5} {
		_, _, err := Split(makeTable(5), frac, 1)
		assert.ErrorIs(t, err, ErrInvalidFraction, "fraction %v", frac)
	}
}
