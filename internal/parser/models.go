package parser

// NullValue is the LAS null sentinel marking a missing measurement.
// The convention is an exact float comparison, not a tolerance.
const NullValue = -999.25

// IsNull reports whether v is the null sentinel.
func IsNull(v float64) bool {
	return v == NullValue
}

// CurveTable holds the parsed contents of a LAS file: curve mnemonics in
// file order paired with a row-major numeric matrix. Every row has exactly
// len(Names) fields; Parse rejects input that would violate this. A
// mnemonic declared twice keeps both columns. The table is not modified
// after Parse returns.
type CurveTable struct {
	Names []string
	Rows  [][]float64
}

// NumRows returns the number of samples in the table.
func (t *CurveTable) NumRows() int {
	return len(t.Rows)
}

// NumCols returns the number of curves in the table.
func (t *CurveTable) NumCols() int {
	return len(t.Names)
}

// ColumnIndex returns the index of the first curve named name.
func (t *CurveTable) ColumnIndex(name string) (int, bool) {
	for i, n := range t.Names {
		if n == name {
			return i, true
		}
	}
	return 0, false
}

// Column returns a copy of the samples for the first curve named name.
func (t *CurveTable) Column(name string) ([]float64, bool) {
	idx, ok := t.ColumnIndex(name)
	if !ok {
		return nil, false
	}
	col := make([]float64, len(t.Rows))
	for i, row := range t.Rows {
		col[i] = row[idx]
	}
	return col, true
}
