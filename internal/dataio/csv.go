// Package dataio moves curve tables in and out of CSV and provides the
// small data-preparation helpers (normalization, train/test split) used
// ahead of further analysis.
package dataio

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/user/welllog_analyzer_go/internal/parser"
)

// ErrEmptyCSV indicates CSV input without a header row.
var ErrEmptyCSV = errors.New("dataio: CSV input has no header row")

// WriteCSV serializes the table as CSV: one header row of curve names
// followed by one record per sample. Values round-trip through ReadCSV
// exactly (shortest representation that parses back to the same float).
func WriteCSV(w io.Writer, table *parser.CurveTable) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(table.Names); err != nil {
		return fmt.Errorf("dataio: writing CSV header: %w", err)
	}
	record := make([]string, len(table.Names))
	for _, row := range table.Rows {
		for j, v := range row {
			record[j] = strconv.FormatFloat(v, 'g', -1, 64)
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("dataio: writing CSV record: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// ReadCSV parses CSV produced by WriteCSV back into a curve table.
func ReadCSV(r io.Reader) (*parser.CurveTable, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err == io.EOF {
		return nil, ErrEmptyCSV
	}
	if err != nil {
		return nil, fmt.Errorf("dataio: reading CSV header: %w", err)
	}

	var rows [][]float64
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("dataio: reading CSV record: %w", err)
		}
		row := make([]float64, len(record))
		for j, field := range record {
			v, err := strconv.ParseFloat(field, 64)
			if err != nil {
				return nil, fmt.Errorf("dataio: non-numeric CSV value %q in column %s: %w", field, header[j], err)
			}
			row[j] = v
		}
		rows = append(rows, row)
	}
	return &parser.CurveTable{Names: header, Rows: rows}, nil
}

// WriteCSVFile writes the table to path, creating or truncating it.
func WriteCSVFile(path string, table *parser.CurveTable) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("dataio: creating CSV file: %w", err)
	}
	if err := WriteCSV(f, table); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
