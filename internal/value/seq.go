package value

import "unicode/utf8"

// Iter is the stack iterator: a plain record walking a list, vector, map
// (as [k v] pairs), string (as chars) or seq without heap allocation.
// Internal loops use it directly; user-visible seqs wrap it in a Seq.
type Iter struct {
	list *List
	vec  *Vector
	m    *Map
	str  string
	idx  int // element index for vec/m, byte offset for str
	pos  int // elements consumed so far
}

// CanIterate reports whether Iterate accepts the value.
func CanIterate(v Value) bool {
	switch v.kind {
	case KindNil, KindList, KindVector, KindMap, KindString, KindSeq:
		return true
	}
	return false
}

// Iterate returns a stack iterator positioned at the start of the
// collection. The caller must have checked CanIterate; nil iterates as
// the empty sequence.
func Iterate(v Value) Iter {
	switch v.kind {
	case KindNil:
		return Iter{}
	case KindList:
		return Iter{list: v.List()}
	case KindVector:
		return Iter{vec: v.Vector()}
	case KindMap:
		return Iter{m: v.Map()}
	case KindString:
		return Iter{str: v.Str()}
	case KindSeq:
		return v.Seq().it // copies the iterator state
	default:
		panic("value: Iterate on non-iterable " + v.kind.String())
	}
}

// Empty reports whether the iterator is exhausted.
func (it *Iter) Empty() bool {
	switch {
	case it.list != nil:
		return false
	case it.vec != nil:
		return it.idx >= it.vec.Count()
	case it.m != nil:
		return it.idx >= it.m.Count()
	case it.str != "":
		return it.idx >= len(it.str)
	}
	return true
}

// First returns the current element. Map iteration yields [k v] vectors,
// string iteration yields chars. Undefined when Empty.
func (it *Iter) First() Value {
	switch {
	case it.list != nil:
		return it.list.First
	case it.vec != nil:
		return it.vec.At(it.idx)
	case it.m != nil:
		k, v := it.m.EntryAt(it.idx)
		return NewVector([]Value{k, v})
	default:
		r, _ := utf8.DecodeRuneInString(it.str[it.idx:])
		return Char(r)
	}
}

// Next advances past the current element.
func (it *Iter) Next() {
	switch {
	case it.list != nil:
		it.list = it.list.Rest
	case it.vec != nil, it.m != nil:
		it.idx++
	default:
		_, size := utf8.DecodeRuneInString(it.str[it.idx:])
		it.idx += size
	}
	it.pos++
}

// Position returns the number of elements consumed so far.
func (it *Iter) Position() int { return it.pos }

// Remaining counts the elements left without disturbing the iterator.
func (it *Iter) Remaining() int {
	c := *it
	n := 0
	for !c.Empty() {
		c.Next()
		n++
	}
	return n
}

// Seq is the heap-wrapped iterator, used where iteration state must be a
// first-class value: the result of rest and seq. Advancing is O(1); no
// copy of the underlying collection is made.
type Seq struct {
	it Iter
}

// NewSeq wraps an iterator state as a seq value.
func NewSeq(it Iter) Value {
	return Value{kind: KindSeq, obj: &Seq{it: it}}
}

// SeqOf returns nil for an empty collection, the value unchanged when it
// is already a list, and a heap seq otherwise.
func SeqOf(v Value) (Value, error) {
	if !CanIterate(v) {
		return Nil, NewExceptionf(ExcType, "cannot create a seq from %s", v.kind)
	}
	if v.kind == KindList {
		return v, nil
	}
	it := Iterate(v)
	if it.Empty() {
		return Nil, nil
	}
	return NewSeq(it), nil
}

// Rest returns the sequence after the first element as a heap seq. The
// rest of an empty or one-element sequence is the empty seq.
func Rest(v Value) (Value, error) {
	if !CanIterate(v) {
		return Nil, NewExceptionf(ExcType, "cannot take the rest of %s", v.kind)
	}
	it := Iterate(v)
	if !it.Empty() {
		it.Next()
	}
	return NewSeq(it), nil
}

// Count returns the element count: stored for vectors and maps, walked
// for lists and seqs, runes for strings.
func Count(v Value) (int, error) {
	switch v.kind {
	case KindNil:
		return 0, nil
	case KindVector:
		return v.Vector().Count(), nil
	case KindMap:
		return v.Map().Count(), nil
	case KindString:
		return utf8.RuneCountInString(v.Str()), nil
	case KindList:
		return v.List().Count(), nil
	case KindSeq:
		it := Iterate(v)
		return it.Remaining(), nil
	default:
		return 0, NewExceptionf(ExcType, "count not supported on %s", v.kind)
	}
}
