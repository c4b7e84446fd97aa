// Package errors formats uncaught runtime exceptions with source
// context: the offending line and a caret pointing at the column.
package errors

import (
	"fmt"
	"strings"

	"github.com/g3ntleman/go-clj/internal/value"
)

// ScriptError pairs an exception with the source it was raised from.
type ScriptError struct {
	Exc    *value.Exception
	Source string
}

// NewScriptError creates a formattable error for an uncaught exception.
func NewScriptError(exc *value.Exception, source string) *ScriptError {
	return &ScriptError{Exc: exc, Source: source}
}

// Error implements the error interface.
func (e *ScriptError) Error() string {
	return e.Format(false)
}

// Format renders the exception header, the source line and a caret.
// If color is true, ANSI codes highlight the caret; the header is left uncolored.
func (e *ScriptError) Format(color bool) string {
	var sb strings.Builder

	sb.WriteString(e.Exc.Error())
	sb.WriteString("\n")

	sourceLine := e.getSourceLine(e.Exc.Line)
	if sourceLine != "" {
		lineNumStr := fmt.Sprintf("%4d | ", e.Exc.Line)
		sb.WriteString(lineNumStr)
		sb.WriteString(sourceLine)
		sb.WriteString("\n")

		col := e.Exc.Col
		if col < 1 {
			col = 1
		}
		sb.WriteString(strings.Repeat(" ", len(lineNumStr)+col-1))
		if color {
			sb.WriteString("\033[1;31m")
		}
		sb.WriteString("^")
		if color {
			sb.WriteString("\033[0m")
		}
		sb.WriteString("\n")
	}

	return sb.String()
}

// getSourceLine extracts a 1-indexed line from the source text.
func (e *ScriptError) getSourceLine(lineNum int) string {
	if e.Source == "" {
		return ""
	}
	lines := strings.Split(e.Source, "\n")
	if lineNum < 1 || lineNum > len(lines) {
		return ""
	}
	return lines[lineNum-1]
}
