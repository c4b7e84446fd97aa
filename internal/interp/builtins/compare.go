package builtins

import "github.com/g3ntleman/go-clj/internal/value"

func registerComparisonFunctions(r *Registry) {
	r.Register("=", Eq, CategoryComparison, "Structural equality")
	r.Register("not=", NotEq, CategoryComparison, "Complement of =")
	r.Register("<", Lt, CategoryComparison, "Numeric less-than")
	r.Register(">", Gt, CategoryComparison, "Numeric greater-than")
	r.Register("<=", Le, CategoryComparison, "Numeric less-or-equal")
	r.Register(">=", Ge, CategoryComparison, "Numeric greater-or-equal")
}

// compareNumbers returns -1, 0 or 1 for a<b, a=b, a>b, raising TypeError
// for non-numeric arguments.
func compareNumbers(name string, a, b value.Value) (int, error) {
	if err := requireNumber(name, a); err != nil {
		return 0, err
	}
	if err := requireNumber(name, b); err != nil {
		return 0, err
	}
	var x, y int64
	if a.Kind() == value.KindInt && b.Kind() == value.KindInt {
		x, y = a.Int(), b.Int()
	} else {
		var err error
		if x, err = toFixedRaw(a); err != nil {
			return 0, err
		}
		if y, err = toFixedRaw(b); err != nil {
			return 0, err
		}
	}
	switch {
	case x < y:
		return -1, nil
	case x > y:
		return 1, nil
	default:
		return 0, nil
	}
}

// Eq implements =, variadic structural equality.
func Eq(_ *Context, args []value.Value) (value.Value, error) {
	if err := requireMinArity("=", args, 1); err != nil {
		return value.Nil, err
	}
	for i := 1; i < len(args); i++ {
		if !value.Equals(args[0], args[i]) {
			return value.False, nil
		}
	}
	return value.True, nil
}

// NotEq implements not=.
func NotEq(ctx *Context, args []value.Value) (value.Value, error) {
	eq, err := Eq(ctx, args)
	if err != nil {
		return value.Nil, err
	}
	return value.Bool(!eq.Truthy()), nil
}

func chain(name string, args []value.Value, ok func(int) bool) (value.Value, error) {
	if err := requireMinArity(name, args, 1); err != nil {
		return value.Nil, err
	}
	for i := 0; i < len(args)-1; i++ {
		cmp, err := compareNumbers(name, args[i], args[i+1])
		if err != nil {
			return value.Nil, err
		}
		if !ok(cmp) {
			return value.False, nil
		}
	}
	return value.True, nil
}

// Lt implements <.
func Lt(_ *Context, args []value.Value) (value.Value, error) {
	return chain("<", args, func(c int) bool { return c < 0 })
}

// Gt implements >.
func Gt(_ *Context, args []value.Value) (value.Value, error) {
	return chain(">", args, func(c int) bool { return c > 0 })
}

// Le implements <=.
func Le(_ *Context, args []value.Value) (value.Value, error) {
	return chain("<=", args, func(c int) bool { return c <= 0 })
}

// Ge implements >=.
func Ge(_ *Context, args []value.Value) (value.Value, error) {
	return chain(">=", args, func(c int) bool { return c >= 0 })
}
