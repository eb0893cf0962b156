package parser

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyTops indicates a classification request with no formation tops.
	ErrEmptyTops = errors.New("parser: formation tops must contain at least one entry")
	// ErrDuplicateTop indicates two formation tops sharing the same depth.
	ErrDuplicateTop = errors.New("parser: formation top depths must be unique")
)

// MalformedError reports unusable LAS input: missing or misordered section
// markers, a non-numeric data token, or a row whose width does not match
// the declared curve count. Line is 1-based; it is zero when the failure is
// not tied to a single line.
type MalformedError struct {
	Line    int
	Content string
	Reason  string
}

func (e *MalformedError) Error() string {
	if e.Line == 0 {
		return fmt.Sprintf("parser: malformed LAS input: %s", e.Reason)
	}
	return fmt.Sprintf("parser: malformed LAS input at line %d (%q): %s", e.Line, e.Content, e.Reason)
}
