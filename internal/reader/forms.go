package reader

import (
	"strconv"
	"strings"
	"unicode"

	"github.com/g3ntleman/go-clj/internal/value"
)

// More skips ignorable input and reports whether another form follows.
func (r *Reader) More() (bool, error) {
	if err := r.skipIgnorable(); err != nil {
		return false, err
	}
	return !r.eof(), nil
}

// ReadForm reads the next top-level form. Callers check More first;
// reading at EOF is an error.
func (r *Reader) ReadForm() (value.Value, error) {
	if err := r.skipIgnorable(); err != nil {
		return value.Nil, err
	}
	return r.parseExpr()
}

// Parse reads a single form from text. The form is the reader's unit of
// work; trailing input is ignored.
func Parse(text string) (value.Value, error) {
	return New(text).ReadForm()
}

// ParseAll reads every top-level form from text.
func ParseAll(text string) ([]value.Value, error) {
	return NewWithFile(text, "<string>").ReadAll()
}

// ReadAll reads the remaining top-level forms from the reader.
func (r *Reader) ReadAll() ([]value.Value, error) {
	var forms []value.Value
	for {
		more, err := r.More()
		if err != nil {
			return forms, err
		}
		if !more {
			return forms, nil
		}
		form, err := r.parseExpr()
		if err != nil {
			return forms, err
		}
		forms = append(forms, form)
	}
}

// parseExpr dispatches on the current rune. Every path either consumes
// input or returns an error, which is the reader's progress guarantee.
func (r *Reader) parseExpr() (value.Value, error) {
	if err := r.skipIgnorable(); err != nil {
		return value.Nil, err
	}
	pos := r.currentPos()

	switch {
	case r.eof():
		return value.Nil, r.errorAt(pos, "unexpected end of input")
	case r.ch == '(':
		return r.parseList(pos)
	case r.ch == '[':
		return r.parseVector(pos)
	case r.ch == '{':
		return r.parseMap(pos)
	case r.ch == ')', r.ch == ']', r.ch == '}':
		return value.Nil, r.errorAt(pos, "unmatched delimiter: %c", r.ch)
	case r.ch == '"':
		return r.parseString(pos)
	case r.ch == '\'':
		r.readChar()
		expr, err := r.parseExpr()
		if err != nil {
			return value.Nil, err
		}
		return listAt(pos, value.Sym("", "quote"), expr), nil
	case r.ch == '^':
		r.readChar()
		return r.parseMeta(pos)
	case r.ch == '#':
		if r.peekChar() == '^' {
			r.readChar()
			r.readChar()
			return r.parseMeta(pos)
		}
		return value.Nil, r.errorAt(pos, "unexpected dispatch character: #%c", r.peekChar())
	case r.ch == ':':
		return r.parseKeyword(pos)
	case r.ch == '\\':
		return r.parseChar(pos)
	case isDigit(r.ch), r.ch == '-' && isDigit(r.peekChar()):
		return r.parseNumber(pos)
	case isSymbolStart(r.ch):
		return r.parseSymbol(pos)
	default:
		return value.Nil, r.errorAt(pos, "unexpected character %q (0x%02x)", r.ch, r.ch)
	}
}

// listAt builds a synthesized list carrying a source position.
func listAt(pos Position, items ...value.Value) value.Value {
	v := value.NewList(items)
	if v.Kind() == value.KindList {
		v.List().WithPos(pos.Line, pos.Column)
	}
	return v
}

// parseMeta reads the expression pair of a ^meta or #^{...} prefix and
// produces (with-meta expr meta).
func (r *Reader) parseMeta(pos Position) (value.Value, error) {
	meta, err := r.parseExpr()
	if err != nil {
		return value.Nil, err
	}
	expr, err := r.parseExpr()
	if err != nil {
		return value.Nil, err
	}
	return listAt(pos, value.Sym("", "with-meta"), expr, meta), nil
}

func (r *Reader) parseList(open Position) (value.Value, error) {
	r.readChar() // '('
	var items []value.Value
	for {
		if err := r.skipIgnorable(); err != nil {
			return value.Nil, err
		}
		if r.eof() {
			return value.Nil, r.errorAt(open, "missing closing ) for list")
		}
		if r.match(')') {
			// The empty list reads as nil.
			if len(items) == 0 {
				return value.Nil, nil
			}
			return listAt(open, items...), nil
		}
		item, err := r.parseExpr()
		if err != nil {
			return value.Nil, err
		}
		items = append(items, item)
	}
}

func (r *Reader) parseVector(open Position) (value.Value, error) {
	r.readChar() // '['
	var items []value.Value
	for {
		if err := r.skipIgnorable(); err != nil {
			return value.Nil, err
		}
		if r.eof() {
			return value.Nil, r.errorAt(open, "missing closing ] for vector")
		}
		if r.match(']') {
			return value.NewVector(items), nil
		}
		item, err := r.parseExpr()
		if err != nil {
			return value.Nil, err
		}
		items = append(items, item)
	}
}

func (r *Reader) parseMap(open Position) (value.Value, error) {
	r.readChar() // '{'
	var entries []value.Value
	for {
		if err := r.skipIgnorable(); err != nil {
			return value.Nil, err
		}
		if r.eof() {
			return value.Nil, r.errorAt(open, "missing closing } for map")
		}
		if r.match('}') {
			if len(entries)%2 != 0 {
				return value.Nil, r.errorAt(open, "map literal must contain an even number of forms")
			}
			m, err := value.NewMap(entries)
			if err != nil {
				return value.Nil, r.errorAt(open, "%s", err.(*value.Exception).Message)
			}
			return m, nil
		}
		item, err := r.parseExpr()
		if err != nil {
			return value.Nil, err
		}
		entries = append(entries, item)
	}
}

func (r *Reader) parseString(open Position) (value.Value, error) {
	r.readChar() // opening quote
	var sb strings.Builder
	for {
		if r.eof() {
			return value.Nil, r.errorAt(open, "missing closing \" for string")
		}
		switch r.ch {
		case '"':
			r.readChar()
			return value.Str(sb.String()), nil
		case '\\':
			r.readChar()
			if r.eof() {
				return value.Nil, r.errorAt(open, "missing closing \" for string")
			}
			switch r.ch {
			case 'n':
				sb.WriteByte('\n')
			case 't':
				sb.WriteByte('\t')
			case 'r':
				sb.WriteByte('\r')
			case '\\':
				sb.WriteByte('\\')
			case '"':
				sb.WriteByte('"')
			default:
				// Unknown escapes pass the character through.
				sb.WriteRune(r.ch)
			}
			r.readChar()
		default:
			sb.WriteRune(r.ch)
			r.readChar()
		}
	}
}

func (r *Reader) parseNumber(pos Position) (value.Value, error) {
	neg := r.match('-')
	var digits strings.Builder
	for isDigit(r.ch) {
		digits.WriteRune(r.ch)
		r.readChar()
	}
	intPart, err := strconv.ParseInt(digits.String(), 10, 64)
	if err != nil {
		return value.Nil, r.errorAt(pos, "integer literal out of range: %s", digits.String())
	}

	if r.ch == '.' && isDigit(r.peekChar()) {
		r.readChar() // '.'
		var frac strings.Builder
		for isDigit(r.ch) {
			frac.WriteRune(r.ch)
			r.readChar()
		}
		return value.FixedFromParts(intPart, frac.String(), neg), nil
	}
	if r.ch == '.' {
		return value.Nil, r.errorAt(pos, "expected digit after decimal point")
	}

	if neg {
		intPart = -intPart
	}
	return value.Int(intPart), nil
}

func (r *Reader) parseChar(pos Position) (value.Value, error) {
	r.readChar() // '\'
	if r.eof() {
		return value.Nil, r.errorAt(pos, "unexpected end of input after \\")
	}
	first := r.ch
	r.readChar()
	if !unicode.IsLetter(first) || !unicode.IsLetter(r.ch) {
		return value.Char(first), nil
	}
	// A letter run names a character: \newline, \space, \tab, \return.
	var name strings.Builder
	name.WriteRune(first)
	for unicode.IsLetter(r.ch) {
		name.WriteRune(r.ch)
		r.readChar()
	}
	switch name.String() {
	case "newline":
		return value.Char('\n'), nil
	case "space":
		return value.Char(' '), nil
	case "tab":
		return value.Char('\t'), nil
	case "return":
		return value.Char('\r'), nil
	case "backslash":
		return value.Char('\\'), nil
	default:
		return value.Nil, r.errorAt(pos, "unsupported character literal: \\%s", name.String())
	}
}

func (r *Reader) parseKeyword(pos Position) (value.Value, error) {
	r.readChar() // ':'
	namespace := ""
	if r.ch == ':' {
		// ::kw qualifies against the current namespace.
		r.readChar()
		namespace = r.DefaultNS
	}
	name := r.readSymbolChars()
	if name == "" {
		return value.Nil, r.errorAt(pos, "invalid token: :")
	}
	if namespace == "" {
		if ns, base, ok := splitQualified(name); ok {
			return value.Kw(ns, base), nil
		} else if strings.Contains(name, "/") && name != "/" {
			return value.Nil, r.errorAt(pos, "invalid keyword: :%s", name)
		}
	}
	return value.Kw(namespace, name), nil
}

func (r *Reader) parseSymbol(pos Position) (value.Value, error) {
	name := r.readSymbolChars()
	switch name {
	case "nil":
		return value.Nil, nil
	case "true":
		return value.True, nil
	case "false":
		return value.False, nil
	}
	if ns, base, ok := splitQualified(name); ok {
		return value.Sym(ns, base), nil
	}
	if strings.Count(name, "/") > 0 && name != "/" {
		return value.Nil, r.errorAt(pos, "invalid symbol: %s", name)
	}
	return value.Sym("", name), nil
}

// readSymbolChars consumes a run of symbol constituents.
func (r *Reader) readSymbolChars() string {
	var sb strings.Builder
	for isSymbolChar(r.ch) {
		sb.WriteRune(r.ch)
		r.readChar()
	}
	return sb.String()
}

// splitQualified splits ns/name on a single interior slash. A bare "/"
// (the division symbol) and names without a slash report false.
func splitQualified(name string) (string, string, bool) {
	if name == "/" {
		return "", "", false
	}
	i := strings.IndexByte(name, '/')
	if i <= 0 || i == len(name)-1 {
		return "", "", false
	}
	if strings.IndexByte(name[i+1:], '/') >= 0 {
		return "", "", false
	}
	return name[:i], name[i+1:], true
}

func isDigit(ch rune) bool { return ch >= '0' && ch <= '9' }

// isSymbolStart accepts the first rune of a symbol: Unicode letters plus
// the operator and punctuation constituents of this dialect.
func isSymbolStart(ch rune) bool {
	if unicode.IsLetter(ch) {
		return true
	}
	switch ch {
	case '-', '_', '?', '!', '/', '.', '+', '*', '=', '<', '>', '&', '%':
		return true
	}
	return false
}

// isSymbolChar accepts any subsequent symbol rune.
func isSymbolChar(ch rune) bool {
	return isSymbolStart(ch) || isDigit(ch) || ch == '\''
}
