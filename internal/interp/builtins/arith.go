package builtins

import (
	"math"

	"github.com/g3ntleman/go-clj/internal/value"
)

func registerArithmeticFunctions(r *Registry) {
	r.Register("+", Add, CategoryArithmetic, "Returns the sum of its arguments; (+) is 0")
	r.Register("-", Sub, CategoryArithmetic, "Subtracts the rest from the first argument; unary negates")
	r.Register("*", Mul, CategoryArithmetic, "Returns the product of its arguments; (*) is 1")
	r.Register("/", Div, CategoryArithmetic, "Divides the first argument by the rest")
	r.Register("inc", Inc, CategoryArithmetic, "Returns its argument plus one")
	r.Register("dec", Dec, CategoryArithmetic, "Returns its argument minus one")
	r.Register("mod", Mod, CategoryArithmetic, "Modulus; the result has the sign of the divisor")
	r.Register("rem", Rem, CategoryArithmetic, "Remainder of truncating division")
	r.Register("min", Min, CategoryArithmetic, "Returns the least of its arguments")
	r.Register("max", Max, CategoryArithmetic, "Returns the greatest of its arguments")
	r.Register("abs", Abs, CategoryArithmetic, "Returns the absolute value")
}

func overflowErr() error {
	return value.NewException(value.ExcArithmetic, "integer overflow")
}

func divideByZeroErr() error {
	return value.NewException(value.ExcArithmetic, "Divide by zero")
}

func checkedAdd(a, b int64) (int64, error) {
	c := a + b
	if (a > 0 && b > 0 && c < 0) || (a < 0 && b < 0 && c >= 0) {
		return 0, overflowErr()
	}
	return c, nil
}

func checkedSub(a, b int64) (int64, error) {
	c := a - b
	if (a >= 0 && b < 0 && c < 0) || (a < 0 && b > 0 && c >= 0) {
		return 0, overflowErr()
	}
	return c, nil
}

func checkedMul(a, b int64) (int64, error) {
	if a == 0 || b == 0 {
		return 0, nil
	}
	c := a * b
	if c/b != a || (a == -1 && b == math.MinInt64) || (b == -1 && a == math.MinInt64) {
		return 0, overflowErr()
	}
	return c, nil
}

// toFixedRaw promotes a number to its raw Q16.13 payload.
func toFixedRaw(v value.Value) (int64, error) {
	if v.Kind() == value.KindFixed {
		return v.FixedRaw(), nil
	}
	n := v.Int()
	if n > math.MaxInt64>>value.FixedFractionBits || n < math.MinInt64>>value.FixedFractionBits {
		return 0, overflowErr()
	}
	return n << value.FixedFractionBits, nil
}

func fixedMul(a, b int64) (int64, error) {
	c, err := checkedMul(a, b)
	if err != nil {
		return 0, err
	}
	return c >> value.FixedFractionBits, nil
}

func fixedDiv(a, b int64) (int64, error) {
	if b == 0 {
		return 0, divideByZeroErr()
	}
	num := a << value.FixedFractionBits
	if num>>value.FixedFractionBits != a {
		return 0, overflowErr()
	}
	return num / b, nil
}

// binop folds numeric arguments with separate integer and fixed-point
// paths, promoting to fixed-point as soon as one operand is fixed.
type binop struct {
	name    string
	onInt   func(a, b int64) (int64, error)
	onFixed func(a, b int64) (int64, error)
}

func (op binop) fold(acc value.Value, args []value.Value) (value.Value, error) {
	if err := requireNumber(op.name, acc); err != nil {
		return value.Nil, err
	}
	for _, arg := range args {
		if err := requireNumber(op.name, arg); err != nil {
			return value.Nil, err
		}
		if acc.Kind() == value.KindInt && arg.Kind() == value.KindInt {
			n, err := op.onInt(acc.Int(), arg.Int())
			if err != nil {
				return value.Nil, err
			}
			acc = value.Int(n)
			continue
		}
		a, err := toFixedRaw(acc)
		if err != nil {
			return value.Nil, err
		}
		b, err := toFixedRaw(arg)
		if err != nil {
			return value.Nil, err
		}
		n, err := op.onFixed(a, b)
		if err != nil {
			return value.Nil, err
		}
		acc = value.FixedFromRaw(n)
	}
	return acc, nil
}

// Add implements +.
func Add(_ *Context, args []value.Value) (value.Value, error) {
	op := binop{name: "+", onInt: checkedAdd, onFixed: checkedAdd}
	return op.fold(value.Int(0), args)
}

// Sub implements -. With one argument it negates.
func Sub(_ *Context, args []value.Value) (value.Value, error) {
	if err := requireMinArity("-", args, 1); err != nil {
		return value.Nil, err
	}
	op := binop{name: "-", onInt: checkedSub, onFixed: checkedSub}
	if len(args) == 1 {
		return op.fold(value.Int(0), args)
	}
	return op.fold(args[0], args[1:])
}

// Mul implements *.
func Mul(_ *Context, args []value.Value) (value.Value, error) {
	op := binop{name: "*", onInt: checkedMul, onFixed: fixedMul}
	return op.fold(value.Int(1), args)
}

// Div implements /. Integer division that divides evenly stays integral;
// any other division promotes to fixed-point. Division by zero raises.
func Div(_ *Context, args []value.Value) (value.Value, error) {
	if err := requireMinArity("/", args, 1); err != nil {
		return value.Nil, err
	}
	acc := args[0]
	rest := args[1:]
	if len(args) == 1 {
		acc = value.Int(1)
		rest = args
	}
	if err := requireNumber("/", acc); err != nil {
		return value.Nil, err
	}
	for _, arg := range rest {
		if err := requireNumber("/", arg); err != nil {
			return value.Nil, err
		}
		if acc.Kind() == value.KindInt && arg.Kind() == value.KindInt {
			a, b := acc.Int(), arg.Int()
			if b == 0 {
				return value.Nil, divideByZeroErr()
			}
			if a%b == 0 {
				acc = value.Int(a / b)
				continue
			}
		}
		a, err := toFixedRaw(acc)
		if err != nil {
			return value.Nil, err
		}
		b, err := toFixedRaw(arg)
		if err != nil {
			return value.Nil, err
		}
		n, err := fixedDiv(a, b)
		if err != nil {
			return value.Nil, err
		}
		acc = value.FixedFromRaw(n)
	}
	return acc, nil
}

// Inc implements inc.
func Inc(ctx *Context, args []value.Value) (value.Value, error) {
	if err := requireArity("inc", args, 1); err != nil {
		return value.Nil, err
	}
	return Add(ctx, []value.Value{args[0], value.Int(1)})
}

// Dec implements dec.
func Dec(ctx *Context, args []value.Value) (value.Value, error) {
	if err := requireArity("dec", args, 1); err != nil {
		return value.Nil, err
	}
	return Sub(ctx, []value.Value{args[0], value.Int(1)})
}

// Mod implements mod on integers; the result takes the divisor's sign.
func Mod(_ *Context, args []value.Value) (value.Value, error) {
	a, b, err := twoInts("mod", args)
	if err != nil {
		return value.Nil, err
	}
	if b == 0 {
		return value.Nil, divideByZeroErr()
	}
	m := a % b
	if m != 0 && (m < 0) != (b < 0) {
		m += b
	}
	return value.Int(m), nil
}

// Rem implements rem, the remainder of truncating division.
func Rem(_ *Context, args []value.Value) (value.Value, error) {
	a, b, err := twoInts("rem", args)
	if err != nil {
		return value.Nil, err
	}
	if b == 0 {
		return value.Nil, divideByZeroErr()
	}
	return value.Int(a % b), nil
}

func twoInts(name string, args []value.Value) (int64, int64, error) {
	if err := requireArity(name, args, 2); err != nil {
		return 0, 0, err
	}
	for _, a := range args {
		if a.Kind() != value.KindInt {
			return 0, 0, value.NewExceptionf(value.ExcType, "%s expects integers, got %s", name, a.Kind())
		}
	}
	return args[0].Int(), args[1].Int(), nil
}

// Min implements min.
func Min(_ *Context, args []value.Value) (value.Value, error) {
	return extremum("min", args, func(cmp int) bool { return cmp < 0 })
}

// Max implements max.
func Max(_ *Context, args []value.Value) (value.Value, error) {
	return extremum("max", args, func(cmp int) bool { return cmp > 0 })
}

func extremum(name string, args []value.Value, better func(int) bool) (value.Value, error) {
	if err := requireMinArity(name, args, 1); err != nil {
		return value.Nil, err
	}
	best := args[0]
	if err := requireNumber(name, best); err != nil {
		return value.Nil, err
	}
	for _, arg := range args[1:] {
		cmp, err := compareNumbers(name, arg, best)
		if err != nil {
			return value.Nil, err
		}
		if better(cmp) {
			best = arg
		}
	}
	return best, nil
}

// Abs implements abs.
func Abs(_ *Context, args []value.Value) (value.Value, error) {
	if err := requireArity("abs", args, 1); err != nil {
		return value.Nil, err
	}
	v := args[0]
	if err := requireNumber("abs", v); err != nil {
		return value.Nil, err
	}
	if v.Kind() == value.KindInt {
		if v.Int() == math.MinInt64 {
			return value.Nil, overflowErr()
		}
		if v.Int() < 0 {
			return value.Int(-v.Int()), nil
		}
		return v, nil
	}
	if v.FixedRaw() < 0 {
		return value.FixedFromRaw(-v.FixedRaw()), nil
	}
	return v, nil
}
