package interp

import "github.com/g3ntleman/go-clj/internal/value"

// Apply invokes a callable value with already-evaluated arguments.
// Besides functions, maps are callable at arity 1 (key lookup) and
// keywords at arity 1 or 2 (self-lookup in a map, optional default).
func (i *Interp) Apply(f value.Value, args []value.Value) (value.Value, error) {
	switch f.Kind() {
	case value.KindNative:
		v, err := f.Native().Fn(args)
		if err != nil {
			if e, ok := value.AsException(err); ok {
				return value.Nil, i.raise(e)
			}
			return value.Nil, err
		}
		return v, nil

	case value.KindFn:
		return i.applyFn(f.Fn(), args)

	case value.KindMap:
		if len(args) != 1 {
			return value.Nil, i.raise(value.NewExceptionf(value.ExcArity, "wrong number of args (%d) passed to a map", len(args)))
		}
		return f.Map().Get(args[0]), nil

	case value.KindKeyword:
		if len(args) != 1 && len(args) != 2 {
			return value.Nil, i.raise(value.NewExceptionf(value.ExcArity, "wrong number of args (%d) passed to a keyword", len(args)))
		}
		notFound := value.Nil
		if len(args) == 2 {
			notFound = args[1]
		}
		if args[0].Kind() == value.KindMap {
			m := args[0].Map()
			if m.Contains(f) {
				return m.Get(f), nil
			}
		}
		return notFound, nil

	default:
		return value.Nil, i.raise(value.NewExceptionf(value.ExcType, "cannot invoke value of type %s", f.Kind()))
	}
}

// applyFn runs a user function. The loop is the recur trampoline: a
// pending recur signal rebinds the parameter frame and re-enters the
// body without growing the Go stack.
func (i *Interp) applyFn(fn *value.Fn, args []value.Value) (value.Value, error) {
	i.depth++
	defer func() { i.depth-- }()
	if i.depth > i.maxDepth {
		return value.Nil, i.raise(value.NewExceptionf(value.ExcStackOverflow, "evaluation depth exceeded %d", i.maxDepth))
	}

	if len(args) != len(fn.Params) {
		return value.Nil, i.raise(value.NewExceptionf(value.ExcArity, "wrong number of args (%d) passed to: %s", len(args), fnName(fn)))
	}

	var outer *Environment
	if fn.Env != nil {
		outer = fn.Env.(*Environment)
	}

	for {
		env := NewEnclosedEnvironment(outer)
		for idx, p := range fn.Params {
			env.Define(p.Name, args[idx])
		}

		result, err := i.evalBody(fn.Body, env)
		if err != nil {
			return value.Nil, err
		}

		if !i.recurring {
			return result, nil
		}
		i.recurring = false
		newArgs := i.recurArgs
		i.recurArgs = nil
		if len(newArgs) != len(fn.Params) {
			return value.Nil, i.raise(value.NewExceptionf(value.ExcArity,
				"recur argument count (%d) does not match parameter count (%d)", len(newArgs), len(fn.Params)))
		}
		args = newArgs
	}
}

func fnName(fn *value.Fn) string {
	if fn.Name != "" {
		return fn.Name
	}
	return "fn"
}
