package parser

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

const (
	curveBlockMarker = "~Curve Information Block"
	asciiMarker      = "~ASCII"
)

// Parse reads a LAS-like text stream and returns its curve table.
//
// The input must contain a "~Curve Information Block" section listing one
// curve per line followed by a "~ASCII" section of whitespace-separated
// float rows. Mnemonics are the first whitespace token of each curve line,
// cut at the first '.'; blank lines and '#' comments inside the curve block
// are skipped. Scanning stops at the first "~ASCII" marker. Any non-numeric
// data token or row whose field count differs from the curve count fails
// the whole parse with a *MalformedError naming the offending line.
func Parse(r io.Reader) (*CurveTable, error) {
	var lines []string
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for sc.Scan() {
		lines = append(lines, sc.Text())
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("parser: reading LAS input: %w", err)
	}
	return parseLines(lines)
}

// ParseFile opens path and parses it with Parse.
func ParseFile(path string) (*CurveTable, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("parser: opening LAS file: %w", err)
	}
	defer f.Close()
	return Parse(f)
}

func parseLines(lines []string) (*CurveTable, error) {
	curveIdx, asciiIdx := -1, -1
	for i, line := range lines {
		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, curveBlockMarker) {
			curveIdx = i
		}
		if strings.HasPrefix(trimmed, asciiMarker) {
			asciiIdx = i
			break
		}
	}
	if curveIdx < 0 {
		return nil, &MalformedError{Reason: "missing ~Curve Information Block marker"}
	}
	if asciiIdx < 0 {
		return nil, &MalformedError{Reason: "missing ~ASCII marker"}
	}
	if asciiIdx <= curveIdx {
		return nil, &MalformedError{Reason: "~ASCII section precedes ~Curve Information Block"}
	}

	var names []string
	for _, line := range lines[curveIdx+1 : asciiIdx] {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}
		token := strings.Fields(trimmed)[0]
		mnemonic, _, _ := strings.Cut(token, ".")
		names = append(names, mnemonic)
	}

	var rows [][]float64
	for i := asciiIdx + 1; i < len(lines); i++ {
		trimmed := strings.TrimSpace(lines[i])
		if trimmed == "" {
			continue
		}
		fields := strings.Fields(trimmed)
		if len(fields) != len(names) {
			return nil, &MalformedError{
				Line:    i + 1,
				Content: trimmed,
				Reason:  fmt.Sprintf("expected %d fields, found %d", len(names), len(fields)),
			}
		}
		row := make([]float64, len(fields))
		for j, field := range fields {
			v, err := strconv.ParseFloat(field, 64)
			if err != nil {
				return nil, &MalformedError{
					Line:    i + 1,
					Content: trimmed,
					Reason:  fmt.Sprintf("non-numeric value %q", field),
				}
			}
			row[j] = v
		}
		rows = append(rows, row)
	}

	return &CurveTable{Names: names, Rows: rows}, nil
}
