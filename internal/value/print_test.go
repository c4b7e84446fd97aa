package value

import "testing"

func TestPrStr(t *testing.T) {
	tests := []struct {
		v    Value
		want string
	}{
		{Nil, "nil"},
		{True, "true"},
		{False, "false"},
		{Int(42), "42"},
		{Int(-7), "-7"},
		{FixedFromParts(1, "5", false), "1.5"},
		{Str("hi"), `"hi"`},
		{Str("a\nb\"c"), `"a\nb\"c"`},
		{Sym("", "foo"), "foo"},
		{Sym("my.ns", "foo"), "my.ns/foo"},
		{Kw("", "a"), ":a"},
		{Kw("user", "a"), ":user/a"},
		{Char('x'), `\x`},
		{Char('\n'), `\newline`},
		{NewList([]Value{Int(1), Int(2), Int(3)}), "(1 2 3)"},
		{NewVector([]Value{Int(1), Int(2)}), "[1 2]"},
		{EmptyVector, "[]"},
		{MapValue((&Map{}).Assoc(Kw("", "a"), Int(1)).Assoc(Kw("", "b"), Int(2))), "{:a 1, :b 2}"},
	}
	for _, tt := range tests {
		if got := PrStr(tt.v); got != tt.want {
			t.Errorf("PrStr = %q, want %q", got, tt.want)
		}
	}
}

func TestDisplayStr(t *testing.T) {
	tests := []struct {
		v    Value
		want string
	}{
		{Str("hi"), "hi"},
		{Str("a\nb"), "a\nb"},
		{Char('x'), "x"},
		{NewVector([]Value{Str("a"), Str("b")}), "[a b]"},
		{Nil, "nil"},
	}
	for _, tt := range tests {
		if got := DisplayStr(tt.v); got != tt.want {
			t.Errorf("DisplayStr = %q, want %q", got, tt.want)
		}
	}
}

func TestPrintSeqAsList(t *testing.T) {
	r, err := Rest(NewVector([]Value{Int(1), Int(2), Int(3)}))
	if err != nil {
		t.Fatalf("Rest error: %v", err)
	}
	if got := PrStr(r); got != "(2 3)" {
		t.Errorf("seq prints %q, want \"(2 3)\"", got)
	}
}
