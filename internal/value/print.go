package value

import (
	"strconv"
	"strings"
)

// PrStr renders a value readably: strings quoted with escapes re-applied,
// chars in backslash notation. read(PrStr(v)) round-trips for data values.
func PrStr(v Value) string {
	var sb strings.Builder
	writeValue(&sb, v, true)
	return sb.String()
}

// DisplayStr renders a value for human output: strings raw, chars raw.
// This is what println and str use.
func DisplayStr(v Value) string {
	var sb strings.Builder
	writeValue(&sb, v, false)
	return sb.String()
}

func writeValue(sb *strings.Builder, v Value, readable bool) {
	switch v.kind {
	case KindNil:
		sb.WriteString("nil")
	case KindBool:
		if v.word != 0 {
			sb.WriteString("true")
		} else {
			sb.WriteString("false")
		}
	case KindInt:
		sb.WriteString(strconv.FormatInt(v.word, 10))
	case KindFixed:
		sb.WriteString(formatFixed(v.word))
	case KindChar:
		if readable {
			sb.WriteString(charName(v.Char()))
		} else {
			sb.WriteRune(v.Char())
		}
	case KindString:
		if readable {
			sb.WriteString(quoteString(v.Str()))
		} else {
			sb.WriteString(v.Str())
		}
	case KindSymbol:
		sb.WriteString(v.Sym().FullName())
	case KindKeyword:
		sb.WriteByte(':')
		sb.WriteString(v.Keyword().FullName())
	case KindList, KindSeq:
		sb.WriteByte('(')
		writeElements(sb, v, readable)
		sb.WriteByte(')')
	case KindVector:
		sb.WriteByte('[')
		writeElements(sb, v, readable)
		sb.WriteByte(']')
	case KindMap:
		sb.WriteByte('{')
		m := v.Map()
		for i := 0; i < m.Count(); i++ {
			if i > 0 {
				sb.WriteString(", ")
			}
			k, val := m.EntryAt(i)
			writeValue(sb, k, readable)
			sb.WriteByte(' ')
			writeValue(sb, val, readable)
		}
		sb.WriteByte('}')
	case KindFn:
		fn := v.Fn()
		if fn.Name != "" {
			sb.WriteString("#<fn " + fn.Name + ">")
		} else {
			sb.WriteString("#<fn>")
		}
	case KindNative:
		sb.WriteString("#<native " + v.Native().Name + ">")
	case KindException:
		e := v.Exception()
		sb.WriteString(e.TypeName + ": " + e.Message)
	}
}

func writeElements(sb *strings.Builder, v Value, readable bool) {
	it := Iterate(v)
	first := true
	for !it.Empty() {
		if !first {
			sb.WriteByte(' ')
		}
		writeValue(sb, it.First(), readable)
		it.Next()
		first = false
	}
}

// quoteString re-applies the reader's escapes inside double quotes.
func quoteString(s string) string {
	var sb strings.Builder
	sb.WriteByte('"')
	for _, r := range s {
		switch r {
		case '\n':
			sb.WriteString(`\n`)
		case '\t':
			sb.WriteString(`\t`)
		case '\r':
			sb.WriteString(`\r`)
		case '\\':
			sb.WriteString(`\\`)
		case '"':
			sb.WriteString(`\"`)
		default:
			sb.WriteRune(r)
		}
	}
	sb.WriteByte('"')
	return sb.String()
}

// charName renders a char literal the way the reader accepts it.
func charName(r rune) string {
	switch r {
	case '\n':
		return `\newline`
	case ' ':
		return `\space`
	case '\t':
		return `\tab`
	case '\r':
		return `\return`
	}
	return `\` + string(r)
}
