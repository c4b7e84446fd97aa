// Package reader converts UTF-8 source text into go-clj forms. It is a
// streaming reader: a single pass with one-rune lookahead, tracking
// 1-based line and column positions for error reporting.
package reader

import (
	"unicode/utf8"

	"github.com/g3ntleman/go-clj/internal/value"
)

// Position is a location in the source text. Line and Column are 1-based;
// Offset is the byte offset.
type Position struct {
	Line   int
	Column int
	Offset int
}

// Reader is the streaming reader state. Multiple top-level forms can be
// read from one Reader with successive ReadForm calls.
type Reader struct {
	input string
	file  string

	// DefaultNS qualifies ::keywords. The evaluator sets it to the
	// current namespace before reading.
	DefaultNS string

	pos    int // byte offset of the current rune
	next   int // byte offset of the following rune
	line   int
	column int
	ch     rune // current rune, 0 at EOF
}

// New creates a Reader over the given source text. A UTF-8 BOM at the
// start is stripped.
func New(input string) *Reader {
	return NewWithFile(input, "<string>")
}

// NewWithFile creates a Reader that tags positions and errors with the
// given file name.
func NewWithFile(input, file string) *Reader {
	if len(input) >= 3 && input[0] == 0xEF && input[1] == 0xBB && input[2] == 0xBF {
		input = input[3:]
	}
	r := &Reader{
		input:     input,
		file:      file,
		line:      1,
		column:    0,
		DefaultNS: "user",
	}
	r.readChar()
	return r
}

// File returns the file name used for positions.
func (r *Reader) File() string { return r.file }

// readChar advances to the next rune, maintaining line/column counters.
func (r *Reader) readChar() {
	if r.ch == '\n' {
		r.line++
		r.column = 0
	}
	if r.next >= len(r.input) {
		r.ch = 0
		r.pos = r.next
		r.column++
		return
	}
	ch, size := utf8.DecodeRuneInString(r.input[r.next:])
	r.pos = r.next
	r.next += size
	r.column++
	r.ch = ch
}

// peekChar returns the rune after the current one without advancing.
func (r *Reader) peekChar() rune {
	if r.next >= len(r.input) {
		return 0
	}
	ch, _ := utf8.DecodeRuneInString(r.input[r.next:])
	return ch
}

// match consumes the current rune iff it equals expected.
func (r *Reader) match(expected rune) bool {
	if r.ch == expected {
		r.readChar()
		return true
	}
	return false
}

// eof reports whether the reader is exhausted.
func (r *Reader) eof() bool { return r.ch == 0 && r.pos >= len(r.input) }

// currentPos returns the position of the current rune.
func (r *Reader) currentPos() Position {
	return Position{Line: r.line, Column: r.column, Offset: r.pos}
}

// errorAt builds a positioned parse exception.
func (r *Reader) errorAt(pos Position, format string, args ...any) error {
	e := value.NewExceptionf(value.ExcParse, format, args...)
	return e.At(r.file, pos.Line, pos.Column)
}

// isWhitespace treats commas as whitespace, so map literals may use them
// as separators.
func isWhitespace(ch rune) bool {
	return ch == ' ' || ch == '\t' || ch == '\n' || ch == '\r' || ch == ','
}

// skipWhitespace consumes a run of whitespace.
func (r *Reader) skipWhitespace() {
	for isWhitespace(r.ch) {
		r.readChar()
	}
}

// skipLineComment consumes "; …" to end of line.
func (r *Reader) skipLineComment() {
	for r.ch != '\n' && !r.eof() {
		r.readChar()
	}
}

// skipBlockComment consumes "#| … |#". Block comments do not nest.
func (r *Reader) skipBlockComment() error {
	start := r.currentPos()
	r.readChar() // '#'
	r.readChar() // '|'
	for {
		if r.eof() {
			return r.errorAt(start, "unterminated block comment")
		}
		if r.ch == '|' && r.peekChar() == '#' {
			r.readChar()
			r.readChar()
			return nil
		}
		r.readChar()
	}
}

// skipIgnorable consumes whitespace and both comment styles until the
// next significant rune.
func (r *Reader) skipIgnorable() error {
	for {
		r.skipWhitespace()
		switch {
		case r.ch == ';':
			r.skipLineComment()
		case r.ch == '#' && r.peekChar() == '|':
			if err := r.skipBlockComment(); err != nil {
				return err
			}
		default:
			return nil
		}
	}
}
