package builtins

import "github.com/g3ntleman/go-clj/internal/value"

func registerSequenceExtras(r *Registry) {
	r.Register("take", Take, CategorySequence, "Returns the first n elements")
	r.Register("drop", Drop, CategorySequence, "Returns the elements after the first n")
	r.Register("concat", Concat, CategorySequence, "Concatenates collections into one list")
	r.Register("into", Into, CategoryCollection, "Pours a collection into another via conj")
	r.Register("repeat", Repeat, CategorySequence, "Returns a vector of n copies of a value")
}

// Take implements (take n coll), realized into a vector.
func Take(_ *Context, args []value.Value) (value.Value, error) {
	n, coll, err := intAndColl("take", args)
	if err != nil {
		return value.Nil, err
	}
	var items []value.Value
	for it := value.Iterate(coll); !it.Empty() && int64(len(items)) < n; it.Next() {
		items = append(items, it.First())
	}
	return value.NewVector(items), nil
}

// Drop implements (drop n coll), realized into a vector.
func Drop(_ *Context, args []value.Value) (value.Value, error) {
	n, coll, err := intAndColl("drop", args)
	if err != nil {
		return value.Nil, err
	}
	var items []value.Value
	it := value.Iterate(coll)
	for skipped := int64(0); skipped < n && !it.Empty(); skipped++ {
		it.Next()
	}
	for ; !it.Empty(); it.Next() {
		items = append(items, it.First())
	}
	return value.NewVector(items), nil
}

func intAndColl(name string, args []value.Value) (int64, value.Value, error) {
	if err := requireArity(name, args, 2); err != nil {
		return 0, value.Nil, err
	}
	if args[0].Kind() != value.KindInt {
		return 0, value.Nil, value.NewExceptionf(value.ExcType, "%s expects an integer count, got %s", name, args[0].Kind())
	}
	if err := requireIterable(name, args[1]); err != nil {
		return 0, value.Nil, err
	}
	return args[0].Int(), args[1], nil
}

// Concat implements concat, producing a list.
func Concat(_ *Context, args []value.Value) (value.Value, error) {
	var items []value.Value
	for _, coll := range args {
		if err := requireIterable("concat", coll); err != nil {
			return value.Nil, err
		}
		for it := value.Iterate(coll); !it.Empty(); it.Next() {
			items = append(items, it.First())
		}
	}
	return value.NewList(items), nil
}

// Into implements (into to from): every element of from is conj'd onto
// to, so vectors append and lists prepend.
func Into(ctx *Context, args []value.Value) (value.Value, error) {
	if err := requireArity("into", args, 2); err != nil {
		return value.Nil, err
	}
	if err := requireIterable("into", args[1]); err != nil {
		return value.Nil, err
	}
	acc := args[0]
	for it := value.Iterate(args[1]); !it.Empty(); it.Next() {
		next, err := Conj(ctx, []value.Value{acc, it.First()})
		if err != nil {
			return value.Nil, err
		}
		acc = next
	}
	return acc, nil
}

// Repeat implements (repeat n x), realized into a vector.
func Repeat(_ *Context, args []value.Value) (value.Value, error) {
	if err := requireArity("repeat", args, 2); err != nil {
		return value.Nil, err
	}
	if args[0].Kind() != value.KindInt {
		return value.Nil, value.NewExceptionf(value.ExcType, "repeat expects an integer count, got %s", args[0].Kind())
	}
	n := args[0].Int()
	if n < 0 {
		n = 0
	}
	items := make([]value.Value, n)
	for i := range items {
		items[i] = args[1]
	}
	return value.NewVector(items), nil
}
