package builtins

import "github.com/g3ntleman/go-clj/internal/value"

func registerPredicateFunctions(r *Registry) {
	r.Register("zero?", ZeroP, CategoryCore, "True when the number is zero")
	r.Register("pos?", PosP, CategoryCore, "True when the number is positive")
	r.Register("neg?", NegP, CategoryCore, "True when the number is negative")
	r.Register("even?", EvenP, CategoryCore, "True when the integer is even")
	r.Register("odd?", OddP, CategoryCore, "True when the integer is odd")
	r.Register("number?", kindPredicate("number?", value.KindInt, value.KindFixed), CategoryCore, "True for integers and fixed-point numbers")
	r.Register("integer?", kindPredicate("integer?", value.KindInt), CategoryCore, "True for integers")
	r.Register("string?", kindPredicate("string?", value.KindString), CategoryCore, "True for strings")
	r.Register("keyword?", kindPredicate("keyword?", value.KindKeyword), CategoryCore, "True for keywords")
	r.Register("symbol?", kindPredicate("symbol?", value.KindSymbol), CategoryCore, "True for symbols")
	r.Register("vector?", kindPredicate("vector?", value.KindVector), CategoryCore, "True for vectors")
	r.Register("map?", kindPredicate("map?", value.KindMap), CategoryCore, "True for maps")
	r.Register("list?", kindPredicate("list?", value.KindList), CategoryCore, "True for lists")
	r.Register("char?", kindPredicate("char?", value.KindChar), CategoryCore, "True for characters")
	r.Register("boolean?", kindPredicate("boolean?", value.KindBool), CategoryCore, "True for booleans")
	r.Register("fn?", kindPredicate("fn?", value.KindFn, value.KindNative), CategoryCore, "True for functions")
	r.Register("true?", TrueP, CategoryCore, "True when the argument is the boolean true")
	r.Register("false?", FalseP, CategoryCore, "True when the argument is the boolean false")
}

// kindPredicate builds a single-argument predicate over value kinds.
func kindPredicate(name string, kinds ...value.Kind) BuiltinFunc {
	return func(_ *Context, args []value.Value) (value.Value, error) {
		if err := requireArity(name, args, 1); err != nil {
			return value.Nil, err
		}
		for _, k := range kinds {
			if args[0].Kind() == k {
				return value.True, nil
			}
		}
		return value.False, nil
	}
}

func numberSign(name string, args []value.Value) (int, error) {
	if err := requireArity(name, args, 1); err != nil {
		return 0, err
	}
	return compareNumbers(name, args[0], value.Int(0))
}

// ZeroP implements zero?.
func ZeroP(_ *Context, args []value.Value) (value.Value, error) {
	sign, err := numberSign("zero?", args)
	if err != nil {
		return value.Nil, err
	}
	return value.Bool(sign == 0), nil
}

// PosP implements pos?.
func PosP(_ *Context, args []value.Value) (value.Value, error) {
	sign, err := numberSign("pos?", args)
	if err != nil {
		return value.Nil, err
	}
	return value.Bool(sign > 0), nil
}

// NegP implements neg?.
func NegP(_ *Context, args []value.Value) (value.Value, error) {
	sign, err := numberSign("neg?", args)
	if err != nil {
		return value.Nil, err
	}
	return value.Bool(sign < 0), nil
}

// EvenP implements even?.
func EvenP(_ *Context, args []value.Value) (value.Value, error) {
	if err := requireArity("even?", args, 1); err != nil {
		return value.Nil, err
	}
	if args[0].Kind() != value.KindInt {
		return value.Nil, value.NewExceptionf(value.ExcType, "even? expects an integer, got %s", args[0].Kind())
	}
	return value.Bool(args[0].Int()%2 == 0), nil
}

// OddP implements odd?.
func OddP(_ *Context, args []value.Value) (value.Value, error) {
	if err := requireArity("odd?", args, 1); err != nil {
		return value.Nil, err
	}
	if args[0].Kind() != value.KindInt {
		return value.Nil, value.NewExceptionf(value.ExcType, "odd? expects an integer, got %s", args[0].Kind())
	}
	return value.Bool(args[0].Int()%2 != 0), nil
}

// TrueP implements true?.
func TrueP(_ *Context, args []value.Value) (value.Value, error) {
	if err := requireArity("true?", args, 1); err != nil {
		return value.Nil, err
	}
	return value.Bool(args[0].IsTrue()), nil
}

// FalseP implements false?.
func FalseP(_ *Context, args []value.Value) (value.Value, error) {
	if err := requireArity("false?", args, 1); err != nil {
		return value.Nil, err
	}
	return value.Bool(args[0].IsFalse()), nil
}
