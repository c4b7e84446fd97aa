package builtins

import "github.com/g3ntleman/go-clj/internal/value"

func registerCollectionFunctions(r *Registry) {
	r.Register("list", ListFn, CategoryCollection, "Returns a list of its arguments")
	r.Register("vector", VectorFn, CategoryCollection, "Returns a vector of its arguments")
	r.Register("vec", Vec, CategoryCollection, "Realizes a collection into a vector")
	r.Register("array-map", ArrayMap, CategoryCollection, "Returns a map built from key/value arguments")
	r.Register("conj", Conj, CategoryCollection, "Adds elements to a collection at its natural end")
	r.Register("get", Get, CategoryCollection, "Looks up a key in a map or an index in a vector")
	r.Register("assoc", Assoc, CategoryCollection, "Returns a map/vector with key(s) bound to value(s)")
	r.Register("dissoc", Dissoc, CategoryCollection, "Returns a map without the given key(s)")
	r.Register("contains?", ContainsP, CategoryCollection, "True when the key or index is present")
	r.Register("keys", Keys, CategoryCollection, "Returns a map's keys")
	r.Register("vals", Vals, CategoryCollection, "Returns a map's values")
	r.Register("transient", Transient, CategoryCollection, "Returns a mutable single-owner view")
	r.Register("persistent!", Persistent, CategoryCollection, "Seals a transient into a persistent collection")
	r.Register("conj!", ConjBang, CategoryCollection, "Appends to a transient vector in place")
	r.Register("assoc!", AssocBang, CategoryCollection, "Associates into a transient map in place")
}

// ListFn implements list.
func ListFn(_ *Context, args []value.Value) (value.Value, error) {
	return value.NewList(args), nil
}

// VectorFn implements vector.
func VectorFn(_ *Context, args []value.Value) (value.Value, error) {
	items := make([]value.Value, len(args))
	copy(items, args)
	return value.NewVector(items), nil
}

// Vec implements vec.
func Vec(_ *Context, args []value.Value) (value.Value, error) {
	if err := requireArity("vec", args, 1); err != nil {
		return value.Nil, err
	}
	if args[0].Kind() == value.KindVector {
		return args[0], nil
	}
	if err := requireIterable("vec", args[0]); err != nil {
		return value.Nil, err
	}
	var items []value.Value
	for it := value.Iterate(args[0]); !it.Empty(); it.Next() {
		items = append(items, it.First())
	}
	return value.NewVector(items), nil
}

// ArrayMap implements array-map.
func ArrayMap(_ *Context, args []value.Value) (value.Value, error) {
	if len(args)%2 != 0 {
		return value.Nil, value.NewException(value.ExcIllegalArgument, "array-map expects an even number of arguments")
	}
	return value.NewMap(args)
}

// Conj implements conj for vectors (append), lists and nil (prepend) and
// maps ([k v] entries).
func Conj(_ *Context, args []value.Value) (value.Value, error) {
	if err := requireMinArity("conj", args, 1); err != nil {
		return value.Nil, err
	}
	coll := args[0]
	for _, item := range args[1:] {
		switch coll.Kind() {
		case value.KindVector:
			coll = value.VectorValue(coll.Vector().Conj(item))
		case value.KindNil, value.KindList:
			coll = value.Cons(item, coll)
		case value.KindMap:
			if item.Kind() != value.KindVector || item.Vector().Count() != 2 {
				return value.Nil, value.NewException(value.ExcIllegalArgument, "conj on a map expects [key value] entries")
			}
			coll = value.MapValue(coll.Map().Assoc(item.Vector().At(0), item.Vector().At(1)))
		default:
			return value.Nil, value.NewExceptionf(value.ExcType, "conj not supported on %s", coll.Kind())
		}
	}
	return coll, nil
}

// Get implements (get coll key) and (get coll key not-found).
func Get(_ *Context, args []value.Value) (value.Value, error) {
	if len(args) != 2 && len(args) != 3 {
		return value.Nil, value.NewExceptionf(value.ExcArity, "wrong number of args (%d) passed to: get", len(args))
	}
	notFound := value.Nil
	if len(args) == 3 {
		notFound = args[2]
	}
	switch args[0].Kind() {
	case value.KindMap:
		m := args[0].Map()
		if !m.Contains(args[1]) {
			return notFound, nil
		}
		return m.Get(args[1]), nil
	case value.KindVector:
		if args[1].Kind() != value.KindInt {
			return notFound, nil
		}
		v := args[0].Vector()
		i := int(args[1].Int())
		if i < 0 || i >= v.Count() {
			return notFound, nil
		}
		return v.At(i), nil
	case value.KindNil:
		return notFound, nil
	default:
		return notFound, nil
	}
}

// Assoc implements assoc for maps and vectors, variadic over pairs.
func Assoc(_ *Context, args []value.Value) (value.Value, error) {
	if err := requireMinArity("assoc", args, 3); err != nil {
		return value.Nil, err
	}
	if (len(args)-1)%2 != 0 {
		return value.Nil, value.NewException(value.ExcIllegalArgument, "assoc expects key/value pairs")
	}
	coll := args[0]
	for i := 1; i < len(args); i += 2 {
		k, v := args[i], args[i+1]
		switch coll.Kind() {
		case value.KindNil:
			coll = value.MapValue((&value.Map{}).Assoc(k, v))
		case value.KindMap:
			coll = value.MapValue(coll.Map().Assoc(k, v))
		case value.KindVector:
			if k.Kind() != value.KindInt {
				return value.Nil, value.NewExceptionf(value.ExcType, "assoc on a vector expects an integer index, got %s", k.Kind())
			}
			nv, err := coll.Vector().AssocN(int(k.Int()), v)
			if err != nil {
				return value.Nil, err
			}
			coll = value.VectorValue(nv)
		default:
			return value.Nil, value.NewExceptionf(value.ExcType, "assoc not supported on %s", coll.Kind())
		}
	}
	return coll, nil
}

// Dissoc implements dissoc, variadic over keys.
func Dissoc(_ *Context, args []value.Value) (value.Value, error) {
	if err := requireMinArity("dissoc", args, 1); err != nil {
		return value.Nil, err
	}
	if args[0].Kind() == value.KindNil {
		return value.Nil, nil
	}
	if args[0].Kind() != value.KindMap {
		return value.Nil, value.NewExceptionf(value.ExcType, "dissoc not supported on %s", args[0].Kind())
	}
	m := args[0].Map()
	for _, k := range args[1:] {
		m = m.Dissoc(k)
	}
	return value.MapValue(m), nil
}

// ContainsP implements contains? for maps (key) and vectors (index).
func ContainsP(_ *Context, args []value.Value) (value.Value, error) {
	if err := requireArity("contains?", args, 2); err != nil {
		return value.Nil, err
	}
	switch args[0].Kind() {
	case value.KindMap:
		return value.Bool(args[0].Map().Contains(args[1])), nil
	case value.KindVector:
		if args[1].Kind() != value.KindInt {
			return value.False, nil
		}
		i := args[1].Int()
		return value.Bool(i >= 0 && i < int64(args[0].Vector().Count())), nil
	case value.KindNil:
		return value.False, nil
	default:
		return value.Nil, value.NewExceptionf(value.ExcType, "contains? not supported on %s", args[0].Kind())
	}
}

// Keys implements keys.
func Keys(_ *Context, args []value.Value) (value.Value, error) {
	m, err := oneMap("keys", args)
	if err != nil {
		return value.Nil, err
	}
	if m == nil {
		return value.Nil, nil
	}
	return m.Keys(), nil
}

// Vals implements vals.
func Vals(_ *Context, args []value.Value) (value.Value, error) {
	m, err := oneMap("vals", args)
	if err != nil {
		return value.Nil, err
	}
	if m == nil {
		return value.Nil, nil
	}
	return m.Vals(), nil
}

func oneMap(name string, args []value.Value) (*value.Map, error) {
	if err := requireArity(name, args, 1); err != nil {
		return nil, err
	}
	if args[0].Kind() == value.KindNil {
		return nil, nil
	}
	if args[0].Kind() != value.KindMap {
		return nil, value.NewExceptionf(value.ExcType, "%s expects a map, got %s", name, args[0].Kind())
	}
	return args[0].Map(), nil
}

// Transient implements transient for vectors and maps.
func Transient(_ *Context, args []value.Value) (value.Value, error) {
	if err := requireArity("transient", args, 1); err != nil {
		return value.Nil, err
	}
	switch args[0].Kind() {
	case value.KindVector:
		return value.VectorValue(args[0].Vector().Transient()), nil
	case value.KindMap:
		return value.MapValue(args[0].Map().Transient()), nil
	default:
		return value.Nil, value.NewExceptionf(value.ExcType, "transient not supported on %s", args[0].Kind())
	}
}

// Persistent implements persistent!. The transient must not be used
// afterwards.
func Persistent(_ *Context, args []value.Value) (value.Value, error) {
	if err := requireArity("persistent!", args, 1); err != nil {
		return value.Nil, err
	}
	switch args[0].Kind() {
	case value.KindVector:
		if !args[0].Vector().IsTransient() {
			return value.Nil, value.NewException(value.ExcType, "persistent! expects a transient")
		}
		return value.VectorValue(args[0].Vector().Persistent()), nil
	case value.KindMap:
		if !args[0].Map().IsTransient() {
			return value.Nil, value.NewException(value.ExcType, "persistent! expects a transient")
		}
		return value.MapValue(args[0].Map().Persistent()), nil
	default:
		return value.Nil, value.NewExceptionf(value.ExcType, "persistent! not supported on %s", args[0].Kind())
	}
}

// ConjBang implements conj! on transient vectors.
func ConjBang(_ *Context, args []value.Value) (value.Value, error) {
	if err := requireArity("conj!", args, 2); err != nil {
		return value.Nil, err
	}
	if args[0].Kind() != value.KindVector || !args[0].Vector().IsTransient() {
		return value.Nil, value.NewException(value.ExcType, "conj! expects a transient vector")
	}
	return value.VectorValue(args[0].Vector().Conj(args[1])), nil
}

// AssocBang implements assoc! on transient maps.
func AssocBang(_ *Context, args []value.Value) (value.Value, error) {
	if err := requireArity("assoc!", args, 3); err != nil {
		return value.Nil, err
	}
	if args[0].Kind() != value.KindMap || !args[0].Map().IsTransient() {
		return value.Nil, value.NewException(value.ExcType, "assoc! expects a transient map")
	}
	return value.MapValue(args[0].Map().Assoc(args[1], args[2])), nil
}
