package builtins

import (
	"strings"

	"github.com/g3ntleman/go-clj/internal/value"
)

func registerCoreFunctions(r *Registry) {
	r.Register("str", StrFn, CategoryCore, "Concatenates the display strings of its arguments")
	r.Register("pr-str", PrStrFn, CategoryCore, "Concatenates the readable strings of its arguments")
	r.Register("not", Not, CategoryCore, "Logical complement")
	r.Register("nil?", NilP, CategoryCore, "True when the argument is nil")
	r.Register("type", TypeFn, CategoryCore, "Returns the value's type as a keyword")
	r.Register("symbol", SymbolFn, CategoryCore, "Interns and returns a symbol")
	r.Register("keyword", KeywordFn, CategoryCore, "Interns and returns a keyword")
	r.Register("name", NameFn, CategoryCore, "Returns the name of a symbol, keyword or string")
	r.Register("meta", Meta, CategoryCore, "Returns the metadata map, or nil")
	r.Register("with-meta", WithMeta, CategoryCore, "Returns the value carrying the given metadata map")
	r.Register("throw", Throw, CategoryCore, "Raises a Runtime exception")
}

// StrFn implements str. nil contributes nothing, matching Clojure.
func StrFn(_ *Context, args []value.Value) (value.Value, error) {
	var sb strings.Builder
	for _, a := range args {
		if a.IsNil() {
			continue
		}
		sb.WriteString(value.DisplayStr(a))
	}
	return value.Str(sb.String()), nil
}

// PrStrFn implements pr-str.
func PrStrFn(_ *Context, args []value.Value) (value.Value, error) {
	parts := make([]string, len(args))
	for i, a := range args {
		parts[i] = value.PrStr(a)
	}
	return value.Str(strings.Join(parts, " ")), nil
}

// Not implements not.
func Not(_ *Context, args []value.Value) (value.Value, error) {
	if err := requireArity("not", args, 1); err != nil {
		return value.Nil, err
	}
	return value.Bool(!args[0].Truthy()), nil
}

// NilP implements nil?.
func NilP(_ *Context, args []value.Value) (value.Value, error) {
	if err := requireArity("nil?", args, 1); err != nil {
		return value.Nil, err
	}
	return value.Bool(args[0].IsNil()), nil
}

// TypeFn implements type, reporting the value's kind as a keyword.
func TypeFn(_ *Context, args []value.Value) (value.Value, error) {
	if err := requireArity("type", args, 1); err != nil {
		return value.Nil, err
	}
	switch args[0].Kind() {
	case value.KindFn, value.KindNative:
		return value.Kw("", "function"), nil
	default:
		return value.Kw("", args[0].Kind().String()), nil
	}
}

// SymbolFn implements (symbol name) and (symbol ns name).
func SymbolFn(_ *Context, args []value.Value) (value.Value, error) {
	ns, name, err := internArgs("symbol", args)
	if err != nil {
		return value.Nil, err
	}
	return value.Sym(ns, name), nil
}

// KeywordFn implements (keyword name) and (keyword ns name).
func KeywordFn(_ *Context, args []value.Value) (value.Value, error) {
	ns, name, err := internArgs("keyword", args)
	if err != nil {
		return value.Nil, err
	}
	return value.Kw(ns, name), nil
}

func internArgs(fname string, args []value.Value) (string, string, error) {
	if len(args) != 1 && len(args) != 2 {
		return "", "", value.NewExceptionf(value.ExcArity, "wrong number of args (%d) passed to: %s", len(args), fname)
	}
	parts := make([]string, len(args))
	for i, a := range args {
		switch a.Kind() {
		case value.KindString:
			parts[i] = a.Str()
		case value.KindSymbol:
			parts[i] = a.Sym().FullName()
		case value.KindKeyword:
			parts[i] = a.Keyword().FullName()
		default:
			return "", "", value.NewExceptionf(value.ExcType, "%s expects string arguments, got %s", fname, a.Kind())
		}
	}
	if len(parts) == 2 {
		return parts[0], parts[1], nil
	}
	return "", parts[0], nil
}

// NameFn implements name.
func NameFn(_ *Context, args []value.Value) (value.Value, error) {
	if err := requireArity("name", args, 1); err != nil {
		return value.Nil, err
	}
	switch args[0].Kind() {
	case value.KindString:
		return args[0], nil
	case value.KindSymbol:
		return value.Str(args[0].Sym().Name), nil
	case value.KindKeyword:
		return value.Str(args[0].Keyword().Name), nil
	default:
		return value.Nil, value.NewExceptionf(value.ExcType, "name expects a symbol, keyword or string, got %s", args[0].Kind())
	}
}

// Meta implements meta.
func Meta(_ *Context, args []value.Value) (value.Value, error) {
	if err := requireArity("meta", args, 1); err != nil {
		return value.Nil, err
	}
	var m *value.Map
	switch args[0].Kind() {
	case value.KindVector:
		m = args[0].Vector().Meta
	case value.KindMap:
		m = args[0].Map().Meta
	case value.KindList:
		m = args[0].List().Meta
	case value.KindSymbol:
		m = args[0].Sym().Meta
	case value.KindFn:
		m = args[0].Fn().Meta
	}
	if m == nil {
		return value.Nil, nil
	}
	return value.MapValue(m), nil
}

// WithMeta implements with-meta. The metadata must be a map; it never
// participates in equality.
func WithMeta(_ *Context, args []value.Value) (value.Value, error) {
	if err := requireArity("with-meta", args, 2); err != nil {
		return value.Nil, err
	}
	if args[1].Kind() != value.KindMap {
		return value.Nil, value.NewExceptionf(value.ExcType, "with-meta expects a map, got %s", args[1].Kind())
	}
	meta := args[1].Map()
	switch args[0].Kind() {
	case value.KindVector:
		return value.VectorValue(args[0].Vector().WithMeta(meta)), nil
	case value.KindMap:
		return value.MapValue(args[0].Map().WithMeta(meta)), nil
	case value.KindList:
		l := args[0].List()
		return value.ListValue(&value.List{First: l.First, Rest: l.Rest, Meta: meta, Line: l.Line, Col: l.Col}), nil
	case value.KindSymbol:
		s := args[0].Sym()
		return value.SymbolValue(&value.Symbol{Namespace: s.Namespace, Name: s.Name, Meta: meta}), nil
	case value.KindFn:
		fn := args[0].Fn()
		return value.NewFnWithMeta(fn, meta), nil
	default:
		return value.Nil, value.NewExceptionf(value.ExcType, "with-meta not supported on %s", args[0].Kind())
	}
}

// Throw implements throw: strings and keywords raise Runtime exceptions
// with the given message; an exception value re-raises as itself.
func Throw(_ *Context, args []value.Value) (value.Value, error) {
	if err := requireArity("throw", args, 1); err != nil {
		return value.Nil, err
	}
	switch args[0].Kind() {
	case value.KindException:
		return value.Nil, args[0].Exception()
	case value.KindString:
		return value.Nil, value.NewException(value.ExcRuntime, args[0].Str())
	case value.KindKeyword:
		return value.Nil, value.NewException(value.ExcRuntime, value.PrStr(args[0]))
	default:
		return value.Nil, value.NewException(value.ExcRuntime, value.PrStr(args[0]))
	}
}
