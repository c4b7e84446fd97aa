// Package clj is the embedding API for the go-clj runtime. Hosts feed
// source text in, receive values or exceptions back, and may register
// native built-ins of their own.
//
// Example:
//
//	engine, err := clj.New(clj.WithOutput(os.Stdout))
//	if err != nil { ... }
//	v, err := engine.EvalString("(+ 1 2 3)")
//	fmt.Println(clj.PrStr(v)) // 6
package clj

import (
	"io"
	"os"

	"github.com/g3ntleman/go-clj/internal/interp"
	"github.com/g3ntleman/go-clj/internal/reader"
	"github.com/g3ntleman/go-clj/internal/value"
)

// Value is a runtime value. The zero Value is nil.
type Value = value.Value

// Exception is a typed, position-tagged runtime error.
type Exception = value.Exception

// NativeFunc is the signature of host-registered built-in functions.
type NativeFunc = value.NativeFunc

// Nil, True and False re-export the scalar singletons for hosts that
// construct values.
var (
	Nil   = value.Nil
	True  = value.True
	False = value.False
)

// Int constructs an integer value.
func Int(n int64) Value { return value.Int(n) }

// Str constructs a string value.
func Str(s string) Value { return value.Str(s) }

// Bool constructs a boolean value.
func Bool(b bool) Value { return value.Bool(b) }

// PrStr renders a value readably.
func PrStr(v Value) string { return value.PrStr(v) }

// DisplayStr renders a value for human output.
func DisplayStr(v Value) string { return value.DisplayStr(v) }

// AsException unwraps an error into an *Exception when it is one.
func AsException(err error) (*Exception, bool) { return value.AsException(err) }

// Engine is one interpreter instance: a namespace registry with
// clojure.core built-ins installed and user as the current namespace.
// An Engine must be confined to a single goroutine.
type Engine struct {
	interp *interp.Interp
	file   string
}

// Option configures an Engine.
type Option func(*config)

type config struct {
	out      io.Writer
	file     string
	maxDepth int
}

// WithOutput directs println and friends to w. Default os.Stdout.
func WithOutput(w io.Writer) Option {
	return func(c *config) { c.out = w }
}

// WithFile sets the file name used in positions and error messages.
func WithFile(name string) Option {
	return func(c *config) { c.file = name }
}

// WithMaxDepth bounds evaluation nesting before StackOverflowError.
func WithMaxDepth(n int) Option {
	return func(c *config) { c.maxDepth = n }
}

// New creates an Engine.
func New(opts ...Option) (*Engine, error) {
	c := &config{
		out:  os.Stdout,
		file: "<eval>",
	}
	for _, opt := range opts {
		opt(c)
	}
	in := interp.New(c.out)
	in.SetFile(c.file)
	if c.maxDepth > 0 {
		in.SetMaxDepth(c.maxDepth)
	}
	return &Engine{interp: in, file: c.file}, nil
}

// EvalString reads and evaluates every top-level form in src and returns
// the value of the last one. Uncaught exceptions come back as a
// *Exception error.
func (e *Engine) EvalString(src string) (Value, error) {
	return e.interp.EvalString(src)
}

// Eval evaluates a single pre-parsed form.
func (e *Engine) Eval(form Value) (Value, error) {
	return e.interp.Eval(form)
}

// ParseString reads a single form from src without evaluating it.
func (e *Engine) ParseString(src string) (Value, error) {
	r := reader.NewWithFile(src, e.file)
	r.DefaultNS = e.CurrentNamespace()
	return r.ReadForm()
}

// ParseAll reads every top-level form from src without evaluating.
func (e *Engine) ParseAll(src string) ([]Value, error) {
	r := reader.NewWithFile(src, e.file)
	r.DefaultNS = e.CurrentNamespace()
	return r.ReadAll()
}

// RegisterNative binds a host function into clojure.core, making it
// callable from script code under the given name.
func (e *Engine) RegisterNative(name string, fn NativeFunc) {
	e.interp.RegisterNative(name, fn)
}

// CurrentNamespace returns the name of the current namespace.
func (e *Engine) CurrentNamespace() string {
	return e.interp.CurrentNamespace().Name.Name
}
