package petro

import (
	"math"

	"github.com/user/welllog_analyzer_go/internal/parser"
)

// CurveSummary holds basic statistics for one curve, computed over the
// samples that are not the null sentinel.
type CurveSummary struct {
	Name   string
	Valid  int
	Nulls  int
	Min    float64
	Max    float64
	Mean   float64
	StdDev float64
}

func mean(data []float64) float64 {
	if len(data) == 0 {
		return math.NaN()
	}
	sum := 0.0
	for _, v := range data {
		sum += v
	}
	return sum / float64(len(data))
}

// Population standard deviation, 0 for a single sample.
func stdDev(data []float64, m float64) float64 {
	if len(data) == 0 {
		return math.NaN()
	}
	if len(data) == 1 {
		return 0
	}
	sumSq := 0.0
	for _, v := range data {
		sumSq += (v - m) * (v - m)
	}
	return math.Sqrt(sumSq / float64(len(data)))
}

// Summarize computes a CurveSummary per column of the table, in curve
// order. Null-sentinel samples are counted but excluded from the
// statistics; a column with no valid samples reports NaN for all of them.
func Summarize(table *parser.CurveTable) []CurveSummary {
	summaries := make([]CurveSummary, len(table.Names))
	for col, name := range table.Names {
		valid := make([]float64, 0, len(table.Rows))
		nulls := 0
		for _, row := range table.Rows {
			if parser.IsNull(row[col]) {
				nulls++
				continue
			}
			valid = append(valid, row[col])
		}

		s := CurveSummary{
			Name:   name,
			Valid:  len(valid),
			Nulls:  nulls,
			Min:    math.NaN(),
			Max:    math.NaN(),
			Mean:   math.NaN(),
			StdDev: math.NaN(),
		}
		if len(valid) > 0 {
			s.Min, s.Max = valid[0], valid[0]
			for _, v := range valid[1:] {
				if v < s.Min {
					s.Min = v
				}
				if v > s.Max {
					s.Max = v
				}
			}
			s.Mean = mean(valid)
			s.StdDev = stdDev(valid, s.Mean)
		}
		summaries[col] = s
	}
	return summaries
}
