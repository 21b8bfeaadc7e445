package ilerr

import (
	"fmt"
	"strings"

	"github.com/cottand/inet/frontend/ast"
	"github.com/pkg/errors"
)

// FormatWithSource renders err with a caret snippet of text pointing at the
// innermost word (or parse location) that failed. name may be empty.
func FormatWithSource(err error, name, text string) string {
	header := FormatWithCode(err)
	at, ok := innermostRange(err)
	if !ok {
		return header
	}
	line, col := ast.LineCol(text, at.Pos())
	width := int(at.End() - at.Pos())
	if width < 1 {
		width = 1
	}

	lines := strings.Split(text, "\n")
	if line > len(lines) {
		line = len(lines)
	}
	lineText := lines[line-1]
	if col-1+width > len(lineText) {
		width = max(1, len(lineText)-(col-1))
	}

	sb := &strings.Builder{}
	if name != "" {
		_, _ = fmt.Fprintf(sb, "%s:%d:%d: %s\n", name, line, col, header)
	} else {
		_, _ = fmt.Fprintf(sb, "%d:%d: %s\n", line, col, header)
	}
	if line > 1 {
		_, _ = fmt.Fprintf(sb, "%4d | %s\n", line-1, lines[line-2])
	}
	_, _ = fmt.Fprintf(sb, "%4d | %s\n", line, lineText)
	_, _ = fmt.Fprintf(sb, "     | %s%s\n", strings.Repeat(" ", max(0, col-1)), strings.Repeat("^", width))
	return sb.String()
}

func innermostRange(err error) (ast.Range, bool) {
	var found ast.Range
	ok := false
	for err != nil {
		switch e := err.(type) {
		case *WordFailure:
			found, ok = e.Range, true
		case NewParse:
			if e.Positioner != nil {
				found, ok = ast.RangeOf(e.Positioner), true
			}
		}
		err = errors.Unwrap(err)
	}
	return found, ok
}
