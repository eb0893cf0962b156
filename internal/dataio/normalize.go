package dataio

import "github.com/user/welllog_analyzer_go/internal/parser"

// Normalize returns a copy of the table with every column min-max rescaled
// to [0, 1] over its non-null samples. Null-sentinel samples pass through
// unchanged, as do columns with fewer than two distinct valid values.
func Normalize(table *parser.CurveTable) *parser.CurveTable {
	names := make([]string, len(table.Names))
	copy(names, table.Names)

	rows := make([][]float64, len(table.Rows))
	for i, row := range table.Rows {
		rows[i] = make([]float64, len(row))
		copy(rows[i], row)
	}
	out := &parser.CurveTable{Names: names, Rows: rows}

	for col := range table.Names {
		min, max, seen := 0.0, 0.0, false
		for _, row := range table.Rows {
			v := row[col]
			if parser.IsNull(v) {
				continue
			}
			if !seen {
				min, max, seen = v, v, true
				continue
			}
			if v < min {
				min = v
			}
			if v > max {
				max = v
			}
		}
		if !seen || min == max {
			continue
		}
		for _, row := range out.Rows {
			if parser.IsNull(row[col]) {
				continue
			}
			row[col] = (row[col] - min) / (max - min)
		}
	}
	return out
}
