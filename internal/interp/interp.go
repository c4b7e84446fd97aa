// Package interp provides the evaluator and runtime for the go-clj
// dialect: namespaces, symbol resolution, special forms, function
// application with the recur trampoline, and exception propagation.
package interp

import (
	"io"

	"github.com/g3ntleman/go-clj/internal/interp/builtins"
	"github.com/g3ntleman/go-clj/internal/reader"
	"github.com/g3ntleman/go-clj/internal/value"
)

// DefaultMaxDepth bounds evaluation nesting before StackOverflowError.
const DefaultMaxDepth = 10000

// Interp evaluates forms against the namespace registry. It is
// single-threaded: reader, evaluator and collection operations run to
// completion on the calling goroutine.
type Interp struct {
	out      io.Writer
	ctx      *builtins.Context
	file     string
	maxDepth int
	depth    int

	namespaces map[string]*Namespace
	current    *Namespace
	core       *Namespace

	specials map[*value.Symbol]specialFn

	// recur signalling, checked by the function/loop trampolines.
	recurring bool
	recurArgs []value.Value

	// Position of the innermost positioned form being evaluated, used
	// to tag exceptions raised without coordinates.
	curLine, curCol int
}

// New creates an interpreter with a fresh namespace registry. Built-ins
// are registered into clojure.core; user is the current namespace.
// Output from println and friends goes to out.
func New(out io.Writer) *Interp {
	i := &Interp{
		out:        out,
		file:       "<eval>",
		maxDepth:   DefaultMaxDepth,
		namespaces: make(map[string]*Namespace),
	}
	i.core = i.EnsureNamespace(CoreNamespace)
	i.current = i.EnsureNamespace(UserNamespace)
	i.ctx = &builtins.Context{Out: out, Apply: i.Apply}
	i.installBuiltins(builtins.DefaultRegistry)
	i.initSpecials()
	return i
}

// SetFile sets the file name used to tag positions and exceptions.
func (i *Interp) SetFile(name string) { i.file = name }

// SetMaxDepth adjusts the evaluation depth bound.
func (i *Interp) SetMaxDepth(n int) { i.maxDepth = n }

// Output returns the interpreter's output sink.
func (i *Interp) Output() io.Writer { return i.out }

// RegisterNative binds a host-provided function into clojure.core.
func (i *Interp) RegisterNative(name string, fn value.NativeFunc) {
	i.core.Define(name, value.NewNative(name, fn))
}

// installBuiltins binds every registry entry into clojure.core as a
// native function closed over the interpreter's context.
func (i *Interp) installBuiltins(r *builtins.Registry) {
	for _, info := range r.AllFunctions() {
		impl := info.Function
		i.core.Define(info.Name, value.NewNative(info.Name, func(args []value.Value) (value.Value, error) {
			return impl(i.ctx, args)
		}))
	}
}

// EvalString reads and evaluates every top-level form in src, returning
// the value of the last one.
func (i *Interp) EvalString(src string) (value.Value, error) {
	r := reader.NewWithFile(src, i.file)
	result := value.Nil
	for {
		r.DefaultNS = i.current.Name.Name
		more, err := r.More()
		if err != nil {
			return value.Nil, err
		}
		if !more {
			return result, nil
		}
		form, err := r.ReadForm()
		if err != nil {
			return value.Nil, err
		}
		result, err = i.Eval(form)
		if err != nil {
			return value.Nil, err
		}
	}
}

// Eval evaluates a single pre-parsed top-level form.
func (i *Interp) Eval(form value.Value) (value.Value, error) {
	v, err := i.eval(form, nil)
	if err != nil {
		return value.Nil, err
	}
	if i.recurring {
		i.recurring = false
		i.recurArgs = nil
		return value.Nil, i.raise(value.NewException(value.ExcIllegalArgument, "recur can only be used inside fn or loop"))
	}
	return v, nil
}

// eval is the dispatch heart of the evaluator. Immediates, strings and
// keywords evaluate to themselves; collection literals evaluate their
// children; symbols resolve; lists dispatch to special forms or calls.
func (i *Interp) eval(form value.Value, env *Environment) (value.Value, error) {
	switch form.Kind() {
	case value.KindSymbol:
		return i.resolve(form.Sym(), env)
	case value.KindList:
		return i.evalList(form.List(), env)
	case value.KindVector:
		return i.evalVectorLiteral(form.Vector(), env)
	case value.KindMap:
		return i.evalMapLiteral(form.Map(), env)
	default:
		return form, nil
	}
}

// raise tags an exception with the current source position when it has
// none yet, and returns it as an error.
func (i *Interp) raise(e *value.Exception) error {
	return e.At(i.file, i.curLine, i.curCol)
}

// undefinedSymbol builds the resolution failure every lookup path shares.
func undefinedSymbol(name string) *value.Exception {
	return value.NewExceptionf(value.ExcUndefinedSymbol, "Unable to resolve symbol: %s in this context", name)
}

var symStarNS = value.Intern("", "*ns*")

// resolve implements the resolution order: lexical scope chain (function
// parameters and let bindings, then the captured closure chain), current
// namespace, clojure.core.
func (i *Interp) resolve(s *value.Symbol, env *Environment) (value.Value, error) {
	if s == symStarNS {
		return value.SymbolValue(i.current.Name), nil
	}
	if s.Namespace != "" {
		ns := i.FindNamespace(s.Namespace)
		if ns == nil {
			return value.Nil, i.raise(undefinedSymbol(s.FullName()))
		}
		if v, ok := ns.Lookup(s.Name); ok {
			return v, nil
		}
		return value.Nil, i.raise(undefinedSymbol(s.FullName()))
	}
	if env != nil {
		if v, ok := env.Get(s.Name); ok {
			return v, nil
		}
	}
	if v, ok := i.current.Lookup(s.Name); ok {
		return v, nil
	}
	if i.current != i.core {
		if v, ok := i.core.Lookup(s.Name); ok {
			return v, nil
		}
	}
	return value.Nil, i.raise(undefinedSymbol(s.FullName()))
}

// evalList evaluates a call or special form. The list's source position
// is made current so exceptions raised below are coordinates-tagged.
func (i *Interp) evalList(l *value.List, env *Environment) (value.Value, error) {
	if l.Line != 0 {
		prevLine, prevCol := i.curLine, i.curCol
		i.curLine, i.curCol = l.Line, l.Col
		defer func() { i.curLine, i.curCol = prevLine, prevCol }()
	}

	head := l.First
	if head.Kind() == value.KindSymbol {
		s := head.Sym()
		if s.Namespace == "" {
			if special, ok := i.specials[s]; ok {
				return special(i, l, env)
			}
		}
	}

	f, err := i.eval(head, env)
	if err != nil {
		return value.Nil, err
	}
	if i.recurring {
		return value.Nil, nil
	}

	var args []value.Value
	for c := l.Rest; c != nil; c = c.Rest {
		arg, err := i.eval(c.First, env)
		if err != nil {
			return value.Nil, err
		}
		if i.recurring {
			return value.Nil, nil
		}
		args = append(args, arg)
	}
	return i.Apply(f, args)
}

func (i *Interp) evalVectorLiteral(v *value.Vector, env *Environment) (value.Value, error) {
	items := make([]value.Value, v.Count())
	for idx := 0; idx < v.Count(); idx++ {
		item, err := i.eval(v.At(idx), env)
		if err != nil {
			return value.Nil, err
		}
		items[idx] = item
	}
	return value.NewVector(items), nil
}

func (i *Interp) evalMapLiteral(m *value.Map, env *Environment) (value.Value, error) {
	// Build through a transient: the map is private until returned.
	out := (&value.Map{}).Transient()
	for idx := 0; idx < m.Count(); idx++ {
		k, v := m.EntryAt(idx)
		ek, err := i.eval(k, env)
		if err != nil {
			return value.Nil, err
		}
		ev, err := i.eval(v, env)
		if err != nil {
			return value.Nil, err
		}
		out.Assoc(ek, ev)
	}
	return value.MapValue(out.Persistent()), nil
}

// evalBody evaluates forms in order and returns the last result. It
// stops early when a recur signal is pending so the nearest trampoline
// can act on it.
func (i *Interp) evalBody(forms []value.Value, env *Environment) (value.Value, error) {
	result := value.Nil
	for _, form := range forms {
		var err error
		result, err = i.eval(form, env)
		if err != nil {
			return value.Nil, err
		}
		if i.recurring {
			return value.Nil, nil
		}
	}
	return result, nil
}

// evalBodyList is evalBody over a cons chain.
func (i *Interp) evalBodyList(forms *value.List, env *Environment) (value.Value, error) {
	result := value.Nil
	for c := forms; c != nil; c = c.Rest {
		var err error
		result, err = i.eval(c.First, env)
		if err != nil {
			return value.Nil, err
		}
		if i.recurring {
			return value.Nil, nil
		}
	}
	return result, nil
}
