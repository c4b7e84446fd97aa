package builtins

import "github.com/g3ntleman/go-clj/internal/value"

func registerSequenceFunctions(r *Registry) {
	r.Register("first", First, CategorySequence, "Returns the first element, or nil")
	r.Register("second", Second, CategorySequence, "Returns the second element, or nil")
	r.Register("last", Last, CategorySequence, "Returns the last element, or nil")
	r.Register("rest", RestFn, CategorySequence, "Returns the sequence after the first element")
	r.Register("next", Next, CategorySequence, "Like rest, but nil when empty")
	r.Register("cons", ConsFn, CategorySequence, "Prepends an element to a sequence")
	r.Register("seq", SeqFn, CategorySequence, "Returns a seq over the collection, or nil when empty")
	r.Register("count", CountFn, CategorySequence, "Returns the number of elements")
	r.Register("nth", Nth, CategorySequence, "Returns the element at an index; out of range raises")
	r.Register("empty?", EmptyP, CategorySequence, "True when the collection has no elements")
	r.Register("reverse", Reverse, CategorySequence, "Returns the elements in reverse order")
	r.Register("range", Range, CategorySequence, "Returns a vector of integers from start to end")
	r.Register("map", MapFn, CategorySequence, "Applies f to every element")
	r.Register("filter", Filter, CategorySequence, "Keeps the elements for which pred is truthy")
	r.Register("reduce", Reduce, CategorySequence, "Folds a function over the elements")
	r.Register("apply", Apply, CategorySequence, "Applies f to arguments spread from a collection")
}

// First implements first. (first nil) is nil.
func First(_ *Context, args []value.Value) (value.Value, error) {
	if err := requireArity("first", args, 1); err != nil {
		return value.Nil, err
	}
	if err := requireIterable("first", args[0]); err != nil {
		return value.Nil, err
	}
	it := value.Iterate(args[0])
	if it.Empty() {
		return value.Nil, nil
	}
	return it.First(), nil
}

// Second implements second.
func Second(_ *Context, args []value.Value) (value.Value, error) {
	if err := requireArity("second", args, 1); err != nil {
		return value.Nil, err
	}
	if err := requireIterable("second", args[0]); err != nil {
		return value.Nil, err
	}
	it := value.Iterate(args[0])
	if it.Empty() {
		return value.Nil, nil
	}
	it.Next()
	if it.Empty() {
		return value.Nil, nil
	}
	return it.First(), nil
}

// Last implements last by walking to the end.
func Last(_ *Context, args []value.Value) (value.Value, error) {
	if err := requireArity("last", args, 1); err != nil {
		return value.Nil, err
	}
	if err := requireIterable("last", args[0]); err != nil {
		return value.Nil, err
	}
	it := value.Iterate(args[0])
	last := value.Nil
	for !it.Empty() {
		last = it.First()
		it.Next()
	}
	return last, nil
}

// RestFn implements rest, returning a heap seq advanced by one.
func RestFn(_ *Context, args []value.Value) (value.Value, error) {
	if err := requireArity("rest", args, 1); err != nil {
		return value.Nil, err
	}
	return value.Rest(args[0])
}

// Next implements next: like rest but nil when the result is empty.
func Next(_ *Context, args []value.Value) (value.Value, error) {
	rest, err := RestFn(nil, args)
	if err != nil {
		return value.Nil, err
	}
	it := value.Iterate(rest)
	if it.Empty() {
		return value.Nil, nil
	}
	return rest, nil
}

// ConsFn implements cons. The tail is realized to a list when it is not
// one already.
func ConsFn(_ *Context, args []value.Value) (value.Value, error) {
	if err := requireArity("cons", args, 2); err != nil {
		return value.Nil, err
	}
	tail := args[1]
	switch tail.Kind() {
	case value.KindNil, value.KindList:
		return value.Cons(args[0], tail), nil
	default:
		if err := requireIterable("cons", tail); err != nil {
			return value.Nil, err
		}
		items := []value.Value{args[0]}
		for it := value.Iterate(tail); !it.Empty(); it.Next() {
			items = append(items, it.First())
		}
		return value.NewList(items), nil
	}
}

// SeqFn implements seq.
func SeqFn(_ *Context, args []value.Value) (value.Value, error) {
	if err := requireArity("seq", args, 1); err != nil {
		return value.Nil, err
	}
	return value.SeqOf(args[0])
}

// CountFn implements count.
func CountFn(_ *Context, args []value.Value) (value.Value, error) {
	if err := requireArity("count", args, 1); err != nil {
		return value.Nil, err
	}
	n, err := value.Count(args[0])
	if err != nil {
		return value.Nil, err
	}
	return value.Int(int64(n)), nil
}

// Nth implements nth. Vectors index in O(1); other sequences walk.
func Nth(_ *Context, args []value.Value) (value.Value, error) {
	if err := requireArity("nth", args, 2); err != nil {
		return value.Nil, err
	}
	if args[1].Kind() != value.KindInt {
		return value.Nil, value.NewExceptionf(value.ExcType, "nth expects an integer index, got %s", args[1].Kind())
	}
	idx := int(args[1].Int())
	if args[0].Kind() == value.KindVector {
		return args[0].Vector().Nth(idx)
	}
	if err := requireIterable("nth", args[0]); err != nil {
		return value.Nil, err
	}
	if idx >= 0 {
		it := value.Iterate(args[0])
		for i := 0; !it.Empty(); it.Next() {
			if i == idx {
				return it.First(), nil
			}
			i++
		}
	}
	return value.Nil, value.NewExceptionf(value.ExcIndexOutOfBounds, "index %d out of bounds", idx)
}

// EmptyP implements empty?.
func EmptyP(_ *Context, args []value.Value) (value.Value, error) {
	if err := requireArity("empty?", args, 1); err != nil {
		return value.Nil, err
	}
	if err := requireIterable("empty?", args[0]); err != nil {
		return value.Nil, err
	}
	it := value.Iterate(args[0])
	return value.Bool(it.Empty()), nil
}

// Reverse implements reverse. The result is a list regardless of the
// input collection kind.
func Reverse(_ *Context, args []value.Value) (value.Value, error) {
	if err := requireArity("reverse", args, 1); err != nil {
		return value.Nil, err
	}
	if err := requireIterable("reverse", args[0]); err != nil {
		return value.Nil, err
	}
	out := value.Nil
	for it := value.Iterate(args[0]); !it.Empty(); it.Next() {
		out = value.Cons(it.First(), out)
	}
	return out, nil
}

// Range implements (range end), (range start end) and
// (range start end step).
func Range(_ *Context, args []value.Value) (value.Value, error) {
	if err := requireMinArity("range", args, 1); err != nil {
		return value.Nil, err
	}
	if len(args) > 3 {
		return value.Nil, value.NewExceptionf(value.ExcArity, "wrong number of args (%d) passed to: range", len(args))
	}
	nums := make([]int64, len(args))
	for i, a := range args {
		if a.Kind() != value.KindInt {
			return value.Nil, value.NewExceptionf(value.ExcType, "range expects integers, got %s", a.Kind())
		}
		nums[i] = a.Int()
	}
	start, end, step := int64(0), int64(0), int64(1)
	switch len(args) {
	case 1:
		end = nums[0]
	case 2:
		start, end = nums[0], nums[1]
	case 3:
		start, end, step = nums[0], nums[1], nums[2]
		if step == 0 {
			return value.Nil, value.NewException(value.ExcIllegalArgument, "range step must not be zero")
		}
	}
	var items []value.Value
	if step > 0 {
		for n := start; n < end; n += step {
			items = append(items, value.Int(n))
		}
	} else {
		for n := start; n > end; n += step {
			items = append(items, value.Int(n))
		}
	}
	return value.NewVector(items), nil
}

// MapFn implements map over a single collection, realizing the result
// eagerly into a vector.
func MapFn(ctx *Context, args []value.Value) (value.Value, error) {
	if err := requireArity("map", args, 2); err != nil {
		return value.Nil, err
	}
	if err := requireIterable("map", args[1]); err != nil {
		return value.Nil, err
	}
	var items []value.Value
	for it := value.Iterate(args[1]); !it.Empty(); it.Next() {
		v, err := ctx.Apply(args[0], []value.Value{it.First()})
		if err != nil {
			return value.Nil, err
		}
		items = append(items, v)
	}
	return value.NewVector(items), nil
}

// Filter implements filter, realized eagerly into a vector.
func Filter(ctx *Context, args []value.Value) (value.Value, error) {
	if err := requireArity("filter", args, 2); err != nil {
		return value.Nil, err
	}
	if err := requireIterable("filter", args[1]); err != nil {
		return value.Nil, err
	}
	var items []value.Value
	for it := value.Iterate(args[1]); !it.Empty(); it.Next() {
		keep, err := ctx.Apply(args[0], []value.Value{it.First()})
		if err != nil {
			return value.Nil, err
		}
		if keep.Truthy() {
			items = append(items, it.First())
		}
	}
	return value.NewVector(items), nil
}

// Reduce implements (reduce f coll) and (reduce f init coll).
func Reduce(ctx *Context, args []value.Value) (value.Value, error) {
	if len(args) != 2 && len(args) != 3 {
		return value.Nil, value.NewExceptionf(value.ExcArity, "wrong number of args (%d) passed to: reduce", len(args))
	}
	f := args[0]
	var acc value.Value
	var coll value.Value
	if len(args) == 3 {
		acc, coll = args[1], args[2]
	} else {
		coll = args[1]
	}
	if err := requireIterable("reduce", coll); err != nil {
		return value.Nil, err
	}
	it := value.Iterate(coll)
	if len(args) == 2 {
		if it.Empty() {
			return ctx.Apply(f, nil)
		}
		acc = it.First()
		it.Next()
	}
	for !it.Empty() {
		v, err := ctx.Apply(f, []value.Value{acc, it.First()})
		if err != nil {
			return value.Nil, err
		}
		acc = v
		it.Next()
	}
	return acc, nil
}

// Apply implements apply: the final argument is a collection spread into
// the call.
func Apply(ctx *Context, args []value.Value) (value.Value, error) {
	if err := requireMinArity("apply", args, 2); err != nil {
		return value.Nil, err
	}
	last := args[len(args)-1]
	if err := requireIterable("apply", last); err != nil {
		return value.Nil, err
	}
	callArgs := make([]value.Value, 0, len(args)-2)
	callArgs = append(callArgs, args[1:len(args)-1]...)
	for it := value.Iterate(last); !it.Empty(); it.Next() {
		callArgs = append(callArgs, it.First())
	}
	return ctx.Apply(args[0], callArgs)
}
