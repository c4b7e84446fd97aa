package interp

import "github.com/g3ntleman/go-clj/internal/value"

// specialFn handles one special form. It receives the whole list form,
// head included, and the enclosing lexical environment.
type specialFn func(i *Interp, l *value.List, env *Environment) (value.Value, error)

// The special-form names are interned once; dispatch compares pointers.
var (
	symIf      = value.Intern("", "if")
	symIfNot   = value.Intern("", "if-not")
	symWhen    = value.Intern("", "when")
	symWhenNot = value.Intern("", "when-not")
	symDo      = value.Intern("", "do")
	symLet     = value.Intern("", "let")
	symLoop    = value.Intern("", "loop")
	symFn      = value.Intern("", "fn")
	symDefn    = value.Intern("", "defn")
	symDef     = value.Intern("", "def")
	symNs      = value.Intern("", "ns")
	symInNs    = value.Intern("", "in-ns")
	symQuote   = value.Intern("", "quote")
	symAnd     = value.Intern("", "and")
	symOr      = value.Intern("", "or")
	symRecur   = value.Intern("", "recur")
	symTry     = value.Intern("", "try")
	symCatch   = value.Intern("", "catch")
	symFinally = value.Intern("", "finally")
	symDotimes = value.Intern("", "dotimes")
	symDoseq   = value.Intern("", "doseq")
	symFor     = value.Intern("", "for")
)

func (i *Interp) initSpecials() {
	i.specials = map[*value.Symbol]specialFn{
		symIf:      (*Interp).evalIf,
		symIfNot:   (*Interp).evalIfNot,
		symWhen:    (*Interp).evalWhen,
		symWhenNot: (*Interp).evalWhenNot,
		symDo:      (*Interp).evalDo,
		symLet:     (*Interp).evalLet,
		symLoop:    (*Interp).evalLoop,
		symFn:      (*Interp).evalFn,
		symDefn:    (*Interp).evalDefn,
		symDef:     (*Interp).evalDef,
		symNs:      (*Interp).evalNs,
		symInNs:    (*Interp).evalNs,
		symQuote:   (*Interp).evalQuote,
		symAnd:     (*Interp).evalAnd,
		symOr:      (*Interp).evalOr,
		symRecur:   (*Interp).evalRecur,
		symTry:     (*Interp).evalTry,
		symDotimes: (*Interp).evalDotimes,
		symDoseq:   (*Interp).evalDoseq,
		symFor:     (*Interp).evalFor,
	}
}

// badForm raises IllegalArgumentException for a malformed special form.
func (i *Interp) badForm(format string, args ...any) error {
	return i.raise(value.NewExceptionf(value.ExcIllegalArgument, format, args...))
}

func (i *Interp) evalIf(l *value.List, env *Environment) (value.Value, error) {
	args := l.Rest
	n := args.Count()
	if n != 2 && n != 3 {
		return value.Nil, i.badForm("if expects a condition, a then branch and an optional else branch")
	}
	cond, err := i.eval(args.First, env)
	if err != nil {
		return value.Nil, err
	}
	if cond.Truthy() {
		return i.eval(args.Rest.First, env)
	}
	if n == 3 {
		return i.eval(args.Rest.Rest.First, env)
	}
	return value.Nil, nil
}

func (i *Interp) evalIfNot(l *value.List, env *Environment) (value.Value, error) {
	args := l.Rest
	n := args.Count()
	if n != 2 && n != 3 {
		return value.Nil, i.badForm("if-not expects a condition, a then branch and an optional else branch")
	}
	cond, err := i.eval(args.First, env)
	if err != nil {
		return value.Nil, err
	}
	if !cond.Truthy() {
		return i.eval(args.Rest.First, env)
	}
	if n == 3 {
		return i.eval(args.Rest.Rest.First, env)
	}
	return value.Nil, nil
}

func (i *Interp) evalWhen(l *value.List, env *Environment) (value.Value, error) {
	if l.Rest == nil {
		return value.Nil, i.badForm("when expects a condition")
	}
	cond, err := i.eval(l.Rest.First, env)
	if err != nil {
		return value.Nil, err
	}
	if !cond.Truthy() {
		return value.Nil, nil
	}
	return i.evalBodyList(l.Rest.Rest, env)
}

func (i *Interp) evalWhenNot(l *value.List, env *Environment) (value.Value, error) {
	if l.Rest == nil {
		return value.Nil, i.badForm("when-not expects a condition")
	}
	cond, err := i.eval(l.Rest.First, env)
	if err != nil {
		return value.Nil, err
	}
	if cond.Truthy() {
		return value.Nil, nil
	}
	return i.evalBodyList(l.Rest.Rest, env)
}

func (i *Interp) evalDo(l *value.List, env *Environment) (value.Value, error) {
	return i.evalBodyList(l.Rest, env)
}

// bindingVector validates and returns a [name expr name expr …] vector.
func (i *Interp) bindingVector(formName string, l *value.List) (*value.Vector, *value.List, error) {
	if l.Rest == nil || l.Rest.First.Kind() != value.KindVector {
		return nil, nil, i.badForm("%s expects a binding vector", formName)
	}
	b := l.Rest.First.Vector()
	if b.Count()%2 != 0 {
		return nil, nil, i.badForm("%s binding vector must contain an even number of forms", formName)
	}
	for idx := 0; idx < b.Count(); idx += 2 {
		if b.At(idx).Kind() != value.KindSymbol {
			return nil, nil, i.badForm("%s binding names must be symbols", formName)
		}
	}
	return b, l.Rest.Rest, nil
}

func (i *Interp) evalLet(l *value.List, env *Environment) (value.Value, error) {
	bindings, body, err := i.bindingVector("let", l)
	if err != nil {
		return value.Nil, err
	}
	child := NewEnclosedEnvironment(env)
	for idx := 0; idx < bindings.Count(); idx += 2 {
		// Sequential: each init expression sees the earlier bindings.
		v, err := i.eval(bindings.At(idx+1), child)
		if err != nil {
			return value.Nil, err
		}
		if i.recurring {
			return value.Nil, nil
		}
		child.Define(bindings.At(idx).Sym().Name, v)
	}
	return i.evalBodyList(body, child)
}

func (i *Interp) evalLoop(l *value.List, env *Environment) (value.Value, error) {
	bindings, body, err := i.bindingVector("loop", l)
	if err != nil {
		return value.Nil, err
	}
	names := make([]string, 0, bindings.Count()/2)
	child := NewEnclosedEnvironment(env)
	for idx := 0; idx < bindings.Count(); idx += 2 {
		v, err := i.eval(bindings.At(idx+1), child)
		if err != nil {
			return value.Nil, err
		}
		name := bindings.At(idx).Sym().Name
		child.Define(name, v)
		names = append(names, name)
	}

	for {
		result, err := i.evalBodyList(body, child)
		if err != nil {
			return value.Nil, err
		}
		if !i.recurring {
			return result, nil
		}
		i.recurring = false
		newArgs := i.recurArgs
		i.recurArgs = nil
		if len(newArgs) != len(names) {
			return value.Nil, i.raise(value.NewExceptionf(value.ExcArity,
				"recur argument count (%d) does not match binding count (%d)", len(newArgs), len(names)))
		}
		child = NewEnclosedEnvironment(env)
		for idx, name := range names {
			child.Define(name, newArgs[idx])
		}
	}
}

// fnParams validates a parameter vector and interns the parameter names.
func (i *Interp) fnParams(formName string, v value.Value) ([]*value.Symbol, error) {
	if v.Kind() != value.KindVector {
		return nil, i.badForm("%s expects a parameter vector", formName)
	}
	vec := v.Vector()
	params := make([]*value.Symbol, vec.Count())
	for idx := 0; idx < vec.Count(); idx++ {
		if vec.At(idx).Kind() != value.KindSymbol {
			return nil, i.badForm("%s parameters must be symbols", formName)
		}
		params[idx] = vec.At(idx).Sym()
	}
	return params, nil
}

func (i *Interp) evalFn(l *value.List, env *Environment) (value.Value, error) {
	args := l.Rest
	if args == nil {
		return value.Nil, i.badForm("fn expects a parameter vector")
	}
	name := ""
	if args.First.Kind() == value.KindSymbol {
		// (fn name [params] …) names the closure for self-recursion.
		name = args.First.Sym().Name
		args = args.Rest
		if args == nil {
			return value.Nil, i.badForm("fn expects a parameter vector")
		}
	}
	params, err := i.fnParams("fn", args.First)
	if err != nil {
		return value.Nil, err
	}
	body := args.Rest.Slice()
	if name == "" {
		return value.NewFn("", params, body, env), nil
	}
	fnEnv := NewEnclosedEnvironment(env)
	fnVal := value.NewFn(name, params, body, fnEnv)
	fnEnv.Define(name, fnVal)
	return fnVal, nil
}

func (i *Interp) evalDefn(l *value.List, env *Environment) (value.Value, error) {
	args := l.Rest
	if args == nil || args.First.Kind() != value.KindSymbol {
		return value.Nil, i.badForm("defn expects a name symbol")
	}
	name := args.First.Sym()
	if args.Rest == nil {
		return value.Nil, i.badForm("defn expects a parameter vector")
	}
	params, err := i.fnParams("defn", args.Rest.First)
	if err != nil {
		return value.Nil, err
	}
	body := args.Rest.Rest.Slice()

	// The closure environment is extended with the function itself, so
	// the body can recurse by name before the namespace binding exists.
	fnEnv := NewEnclosedEnvironment(env)
	fnVal := value.NewFn(name.Name, params, body, fnEnv)
	fnEnv.Define(name.Name, fnVal)
	i.current.Define(name.Name, fnVal)
	return value.SymbolValue(name), nil
}

func (i *Interp) evalDef(l *value.List, env *Environment) (value.Value, error) {
	args := l.Rest
	if args == nil || args.First.Kind() != value.KindSymbol || args.Rest == nil || args.Rest.Rest != nil {
		return value.Nil, i.badForm("def expects a name symbol and a single value form")
	}
	name := args.First.Sym()
	v, err := i.eval(args.Rest.First, env)
	if err != nil {
		return value.Nil, err
	}
	i.current.Define(name.Name, v)
	return value.SymbolValue(name), nil
}

func (i *Interp) evalNs(l *value.List, env *Environment) (value.Value, error) {
	args := l.Rest
	if args == nil || args.First.Kind() != value.KindSymbol || args.Rest != nil {
		return value.Nil, i.badForm("ns expects a single name symbol")
	}
	ns := i.SetCurrentNamespace(args.First.Sym().Name)
	return value.SymbolValue(ns.Name), nil
}

func (i *Interp) evalQuote(l *value.List, env *Environment) (value.Value, error) {
	if l.Rest == nil || l.Rest.Rest != nil {
		return value.Nil, i.badForm("quote expects a single form")
	}
	return l.Rest.First, nil
}

func (i *Interp) evalAnd(l *value.List, env *Environment) (value.Value, error) {
	result := value.True
	for c := l.Rest; c != nil; c = c.Rest {
		v, err := i.eval(c.First, env)
		if err != nil {
			return value.Nil, err
		}
		if !v.Truthy() {
			return v, nil
		}
		result = v
	}
	return result, nil
}

func (i *Interp) evalOr(l *value.List, env *Environment) (value.Value, error) {
	result := value.Nil
	for c := l.Rest; c != nil; c = c.Rest {
		v, err := i.eval(c.First, env)
		if err != nil {
			return value.Nil, err
		}
		if v.Truthy() {
			return v, nil
		}
		result = v
	}
	return result, nil
}

func (i *Interp) evalRecur(l *value.List, env *Environment) (value.Value, error) {
	var args []value.Value
	for c := l.Rest; c != nil; c = c.Rest {
		v, err := i.eval(c.First, env)
		if err != nil {
			return value.Nil, err
		}
		args = append(args, v)
	}
	i.recurring = true
	i.recurArgs = args
	return value.Nil, nil
}

// iterationBinding validates the [name seed] vector shared by dotimes,
// doseq and for.
func (i *Interp) iterationBinding(formName string, l *value.List) (*value.Symbol, value.Value, *value.List, error) {
	if l.Rest == nil || l.Rest.First.Kind() != value.KindVector {
		return nil, value.Nil, nil, i.badForm("%s expects a binding vector", formName)
	}
	b := l.Rest.First.Vector()
	if b.Count() != 2 || b.At(0).Kind() != value.KindSymbol {
		return nil, value.Nil, nil, i.badForm("%s expects a binding vector of [name expr]", formName)
	}
	return b.At(0).Sym(), b.At(1), l.Rest.Rest, nil
}

func (i *Interp) evalDotimes(l *value.List, env *Environment) (value.Value, error) {
	sym, nForm, body, err := i.iterationBinding("dotimes", l)
	if err != nil {
		return value.Nil, err
	}
	nVal, err := i.eval(nForm, env)
	if err != nil {
		return value.Nil, err
	}
	if nVal.Kind() != value.KindInt {
		return value.Nil, i.raise(value.NewExceptionf(value.ExcType, "dotimes expects an integer count, got %s", nVal.Kind()))
	}
	for n := int64(0); n < nVal.Int(); n++ {
		// Fresh child environment per iteration: the body cannot observe
		// a stale counter through a captured closure.
		child := NewEnclosedEnvironment(env)
		child.Define(sym.Name, value.Int(n))
		if _, err := i.evalBodyList(body, child); err != nil {
			return value.Nil, err
		}
	}
	return value.Nil, nil
}

func (i *Interp) evalDoseq(l *value.List, env *Environment) (value.Value, error) {
	sym, collForm, body, err := i.iterationBinding("doseq", l)
	if err != nil {
		return value.Nil, err
	}
	coll, err := i.eval(collForm, env)
	if err != nil {
		return value.Nil, err
	}
	if !value.CanIterate(coll) {
		return value.Nil, i.raise(value.NewExceptionf(value.ExcType, "doseq expects a seqable collection, got %s", coll.Kind()))
	}
	for it := value.Iterate(coll); !it.Empty(); it.Next() {
		child := NewEnclosedEnvironment(env)
		child.Define(sym.Name, it.First())
		if _, err := i.evalBodyList(body, child); err != nil {
			return value.Nil, err
		}
	}
	return value.Nil, nil
}

func (i *Interp) evalFor(l *value.List, env *Environment) (value.Value, error) {
	sym, collForm, body, err := i.iterationBinding("for", l)
	if err != nil {
		return value.Nil, err
	}
	coll, err := i.eval(collForm, env)
	if err != nil {
		return value.Nil, err
	}
	if !value.CanIterate(coll) {
		return value.Nil, i.raise(value.NewExceptionf(value.ExcType, "for expects a seqable collection, got %s", coll.Kind()))
	}
	var items []value.Value
	for it := value.Iterate(coll); !it.Empty(); it.Next() {
		child := NewEnclosedEnvironment(env)
		child.Define(sym.Name, it.First())
		v, err := i.evalBodyList(body, child)
		if err != nil {
			return value.Nil, err
		}
		items = append(items, v)
	}
	return value.NewVector(items), nil
}
