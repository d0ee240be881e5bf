// Package scripterr formats script parse errors. It follows the teacher's
// internal/errors package: a line-numbered message plus the offending
// source line with a caret, rather than a bare Go error string.
package scripterr

import (
	"fmt"
	"strings"
)

// ParseError is a fatal, load-time script error (spec §7's ScriptParseError).
// It always carries the line on which the problem was detected.
type ParseError struct {
	Line    int
	Message string
	source  string // full script text, kept for Format's source-line context
}

// New creates a ParseError. source is the full script text the error was
// found in; pass "" when no source is available, in which case Format
// prints no source line.
func New(line int, source, format string, args ...any) *ParseError {
	return &ParseError{
		Line:    line,
		Message: fmt.Sprintf(format, args...),
		source:  source,
	}
}

// Error implements the error interface with the plain "Script error on
// line N: message" form spec §8's parser error scenarios expect. Line 0
// means no specific line was available (e.g. "no NONE rule specified").
func (e *ParseError) Error() string {
	if e.Line <= 0 {
		return fmt.Sprintf("Script error: %s", e.Message)
	}
	return fmt.Sprintf("Script error on line %d: %s", e.Line, e.Message)
}

// Format renders the error with a caret under the offending source line,
// the same shape as the teacher's CompilerError.Format.
func (e *ParseError) Format() string {
	var b strings.Builder
	b.WriteString(e.Error())

	line := e.sourceLine(e.Line)
	if line != "" {
		b.WriteString("\n")
		prefix := fmt.Sprintf("%4d | ", e.Line)
		b.WriteString(prefix)
		b.WriteString(line)
		b.WriteString("\n")
		b.WriteString(strings.Repeat(" ", len(prefix)))
		b.WriteString("^")
	}
	return b.String()
}

func (e *ParseError) sourceLine(n int) string {
	if e.source == "" || n < 1 {
		return ""
	}
	lines := strings.Split(e.source, "\n")
	if n > len(lines) {
		return ""
	}
	return lines[n-1]
}
