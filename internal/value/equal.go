package value

// identical reports pointer/payload identity. For interned symbols and
// keywords identity coincides with structural equality, which is what
// makes it the map-lookup fast path.
func identical(a, b Value) bool {
	return a.kind == b.kind && a.word == b.word && a.obj == b.obj
}

// sequential reports whether the value is an ordered collection that
// compares elementwise: lists, vectors and seqs.
func sequential(v Value) bool {
	switch v.kind {
	case KindList, KindVector, KindSeq:
		return true
	}
	return false
}

// Equals implements structural equality. Numbers compare numerically
// across integer and fixed-point; sequential collections compare
// elementwise regardless of concrete kind; maps compare by entries.
// Metadata never participates.
func Equals(a, b Value) bool {
	if identical(a, b) {
		return true
	}

	if a.IsNumber() && b.IsNumber() {
		return numericEquals(a, b)
	}

	if sequential(a) && sequential(b) {
		ia, ib := Iterate(a), Iterate(b)
		for !ia.Empty() && !ib.Empty() {
			if !Equals(ia.First(), ib.First()) {
				return false
			}
			ia.Next()
			ib.Next()
		}
		return ia.Empty() && ib.Empty()
	}

	if a.kind != b.kind {
		return false
	}

	switch a.kind {
	case KindNil:
		return true
	case KindBool, KindChar:
		return a.word == b.word
	case KindString:
		return a.Str() == b.Str()
	case KindSymbol:
		// Interned symbols already matched by identity above; symbols
		// carrying metadata are uninterned, so fall back to names.
		sa, sb := a.Sym(), b.Sym()
		return sa.Namespace == sb.Namespace && sa.Name == sb.Name
	case KindKeyword:
		return a.obj == b.obj // keywords are always interned
	case KindMap:
		ma, mb := a.Map(), b.Map()
		if ma.Count() != mb.Count() {
			return false
		}
		for i := 0; i < ma.Count(); i++ {
			k, v := ma.EntryAt(i)
			if !mb.Contains(k) || !Equals(mb.Get(k), v) {
				return false
			}
		}
		return true
	default:
		// Functions, natives and exceptions compare by identity only.
		return false
	}
}

func numericEquals(a, b Value) bool {
	if a.kind == b.kind {
		return a.word == b.word
	}
	// Promote the integer side to fixed-point.
	if a.kind == KindInt {
		return a.word<<FixedFractionBits == b.word
	}
	return a.word == b.word<<FixedFractionBits
}
