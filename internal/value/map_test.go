package value

import "testing"

func TestMapAssocGet(t *testing.T) {
	m := (&Map{}).Assoc(Kw("", "a"), Int(1))

	if !Equals(m.Get(Kw("", "a")), Int(1)) {
		t.Errorf("get after assoc = %s, want 1", PrStr(m.Get(Kw("", "a"))))
	}
	if !m.Get(Kw("", "missing")).IsNil() {
		t.Error("get of absent key is not nil")
	}
}

// Map associativity: get(assoc(m,k,v), k) = v, and for k' != k the other
// entries are untouched.
func TestMapAssocProperties(t *testing.T) {
	m := (&Map{}).Assoc(Str("x"), Int(10)).Assoc(Str("y"), Int(20))

	m2 := m.Assoc(Str("x"), Int(99))
	if !Equals(m2.Get(Str("x")), Int(99)) {
		t.Errorf("replaced value = %s, want 99", PrStr(m2.Get(Str("x"))))
	}
	if !Equals(m2.Get(Str("y")), Int(20)) {
		t.Errorf("unrelated key changed: %s, want 20", PrStr(m2.Get(Str("y"))))
	}
	// The original is observationally unchanged.
	if !Equals(m.Get(Str("x")), Int(10)) {
		t.Errorf("persistent source mutated: %s, want 10", PrStr(m.Get(Str("x"))))
	}
}

func TestMapDissoc(t *testing.T) {
	m := (&Map{}).Assoc(Kw("", "a"), Int(1)).Assoc(Kw("", "b"), Int(2))
	m2 := m.Dissoc(Kw("", "a"))

	if m2.Contains(Kw("", "a")) {
		t.Error("dissoc left the key present")
	}
	if !m2.Contains(Kw("", "b")) {
		t.Error("dissoc removed an unrelated key")
	}
	if !m.Contains(Kw("", "a")) {
		t.Error("dissoc mutated the persistent source")
	}
	// Dissoc of an absent key returns the receiver.
	if m.Dissoc(Kw("", "zzz")) != m {
		t.Error("dissoc of absent key copied the map")
	}
}

func TestMapInsertionOrder(t *testing.T) {
	m := (&Map{}).Assoc(Str("c"), Int(3)).Assoc(Str("a"), Int(1)).Assoc(Str("b"), Int(2))

	keys := m.Keys().Vector()
	want := []string{"c", "a", "b"}
	for i, name := range want {
		if keys.At(i).Str() != name {
			t.Errorf("key order[%d] = %q, want %q", i, keys.At(i).Str(), name)
		}
	}
}

func TestMapStructuralKeyLookup(t *testing.T) {
	// Uninterned-but-equal composite keys must hit through structural
	// equality, past the identity fast path.
	k1 := NewVector([]Value{Int(1), Int(2)})
	k2 := NewVector([]Value{Int(1), Int(2)})
	m := (&Map{}).Assoc(k1, Str("hit"))

	if !m.Contains(k2) {
		t.Fatal("structurally equal key not found")
	}
	if m.Get(k2).Str() != "hit" {
		t.Errorf("lookup via equal key = %s", PrStr(m.Get(k2)))
	}
}

func TestMapTransient(t *testing.T) {
	orig := (&Map{}).Assoc(Kw("", "a"), Int(1))
	tr := orig.Transient()

	tr2 := tr.Assoc(Kw("", "b"), Int(2))
	if tr2 != tr {
		t.Error("transient assoc allocated a new map")
	}
	if orig.Contains(Kw("", "b")) {
		t.Error("transient assoc mutated the source")
	}

	p := tr.Persistent()
	if p.Count() != 2 {
		t.Errorf("persistent count = %d, want 2", p.Count())
	}
}

func TestNewMapOddEntries(t *testing.T) {
	_, err := NewMap([]Value{Kw("", "a")})
	if err == nil {
		t.Fatal("odd entry count did not raise")
	}
	exc, ok := AsException(err)
	if !ok || exc.TypeName != ExcIllegalArgument {
		t.Errorf("raised %v, want IllegalArgumentException", err)
	}
}
