package value

import "testing"

func TestEquals(t *testing.T) {
	tests := []struct {
		a, b Value
		want bool
	}{
		{Nil, Nil, true},
		{Nil, False, false},
		{True, True, true},
		{Int(1), Int(1), true},
		{Int(1), Int(2), false},
		{Str("x"), Str("x"), true},
		{Str("x"), Sym("", "x"), false},
		{Char('a'), Char('a'), true},
		{Char('a'), Int(97), false},
		{NewList([]Value{Int(1), Int(2)}), NewList([]Value{Int(1), Int(2)}), true},
		{NewList([]Value{Int(1)}), NewList([]Value{Int(1), Int(2)}), false},
		// Sequential collections compare elementwise across kinds.
		{NewList([]Value{Int(1), Int(2)}), NewVector([]Value{Int(1), Int(2)}), true},
		{NewVector(nil), Nil, false},
	}
	for _, tt := range tests {
		if got := Equals(tt.a, tt.b); got != tt.want {
			t.Errorf("Equals(%s, %s) = %v, want %v", PrStr(tt.a), PrStr(tt.b), got, tt.want)
		}
	}
}

func TestEqualsMaps(t *testing.T) {
	m1 := (&Map{}).Assoc(Kw("", "a"), Int(1)).Assoc(Kw("", "b"), Int(2))
	m2 := (&Map{}).Assoc(Kw("", "b"), Int(2)).Assoc(Kw("", "a"), Int(1))
	m3 := (&Map{}).Assoc(Kw("", "a"), Int(1))

	if !Equals(MapValue(m1), MapValue(m2)) {
		t.Error("maps with same entries in different order not equal")
	}
	if Equals(MapValue(m1), MapValue(m3)) {
		t.Error("maps with different counts compare equal")
	}
}

func TestEqualsSeqAndList(t *testing.T) {
	r, err := Rest(NewVector([]Value{Int(0), Int(1), Int(2)}))
	if err != nil {
		t.Fatalf("Rest error: %v", err)
	}
	if !Equals(r, NewList([]Value{Int(1), Int(2)})) {
		t.Error("seq not equal to list with same elements")
	}
}

func TestMetadataDoesNotAffectEquality(t *testing.T) {
	plain := NewVector([]Value{Int(1)})
	meta := (&Map{}).Assoc(Kw("", "tag"), True)
	tagged := VectorValue(plain.Vector().WithMeta(meta))

	if !Equals(plain, tagged) {
		t.Error("metadata leaked into equality")
	}
}
