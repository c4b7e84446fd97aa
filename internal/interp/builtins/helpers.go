package builtins

import "github.com/g3ntleman/go-clj/internal/value"

// requireArity raises ArityError unless exactly n arguments were passed.
func requireArity(name string, args []value.Value, n int) error {
	if len(args) != n {
		return value.NewExceptionf(value.ExcArity, "wrong number of args (%d) passed to: %s", len(args), name)
	}
	return nil
}

// requireMinArity raises ArityError unless at least n arguments were passed.
func requireMinArity(name string, args []value.Value, n int) error {
	if len(args) < n {
		return value.NewExceptionf(value.ExcArity, "wrong number of args (%d) passed to: %s", len(args), name)
	}
	return nil
}

// requireNumber raises TypeError unless v is an integer or fixed-point.
func requireNumber(name string, v value.Value) error {
	if !v.IsNumber() {
		return value.NewExceptionf(value.ExcType, "%s expects a number, got %s", name, v.Kind())
	}
	return nil
}

// requireIterable raises TypeError unless v can be walked as a sequence.
func requireIterable(name string, v value.Value) error {
	if !value.CanIterate(v) {
		return value.NewExceptionf(value.ExcType, "%s expects a seqable collection, got %s", name, v.Kind())
	}
	return nil
}
