package interp

import (
	"io"
	"testing"

	"github.com/g3ntleman/go-clj/internal/value"
)

func TestDefaultNamespaces(t *testing.T) {
	i := New(io.Discard)

	if i.CurrentNamespace().Name.Name != UserNamespace {
		t.Errorf("current namespace = %s, want user", i.CurrentNamespace().Name.Name)
	}
	if i.FindNamespace(CoreNamespace) == nil {
		t.Error("clojure.core not registered")
	}
	if _, ok := i.FindNamespace(CoreNamespace).Lookup("+"); !ok {
		t.Error("+ not bound in clojure.core")
	}
}

func TestEnsureNamespaceIdempotent(t *testing.T) {
	i := New(io.Discard)
	a := i.EnsureNamespace("app.core")
	b := i.EnsureNamespace("app.core")
	if a != b {
		t.Error("EnsureNamespace created a second namespace for the same name")
	}
}

func TestNsSwitching(t *testing.T) {
	i := New(io.Discard)
	v, err := i.EvalString("(ns app.core) (def width 80) width")
	if err != nil {
		t.Fatalf("eval failed: %v", err)
	}
	if !value.Equals(v, value.Int(80)) {
		t.Errorf("width = %s, want 80", value.PrStr(v))
	}

	// Back in user, the binding is only reachable qualified.
	if _, err := i.EvalString("(ns user) width"); err == nil {
		t.Error("unqualified width resolved outside its namespace")
	}
	v, err = i.EvalString("app.core/width")
	if err != nil {
		t.Fatalf("qualified lookup failed: %v", err)
	}
	if !value.Equals(v, value.Int(80)) {
		t.Errorf("app.core/width = %s, want 80", value.PrStr(v))
	}
}

func TestCoreFallback(t *testing.T) {
	i := New(io.Discard)
	// + resolves from any namespace through the clojure.core fallback.
	v, err := i.EvalString("(ns other) (+ 1 2)")
	if err != nil {
		t.Fatalf("core fallback failed: %v", err)
	}
	if !value.Equals(v, value.Int(3)) {
		t.Errorf("(+ 1 2) in other ns = %s", value.PrStr(v))
	}
}

func TestCurrentNamespaceShadowsCore(t *testing.T) {
	i := New(io.Discard)
	v, err := i.EvalString("(def inc (fn [x] x)) (inc 5)")
	if err != nil {
		t.Fatalf("eval failed: %v", err)
	}
	// The user definition shadows the core builtin.
	if !value.Equals(v, value.Int(5)) {
		t.Errorf("shadowed inc = %s, want 5", value.PrStr(v))
	}
}

func TestStarNs(t *testing.T) {
	i := New(io.Discard)
	v, err := i.EvalString("*ns*")
	if err != nil {
		t.Fatalf("*ns* failed: %v", err)
	}
	if v.Kind() != value.KindSymbol || v.Sym().Name != "user" {
		t.Errorf("*ns* = %s, want user", value.PrStr(v))
	}

	v, err = i.EvalString("(ns elsewhere) *ns*")
	if err != nil {
		t.Fatalf("*ns* after ns failed: %v", err)
	}
	if v.Sym().Name != "elsewhere" {
		t.Errorf("*ns* = %s, want elsewhere", value.PrStr(v))
	}
}

func TestNsReturnsNameSymbol(t *testing.T) {
	i := New(io.Discard)
	v, err := i.EvalString("(ns fresh.space)")
	if err != nil {
		t.Fatalf("ns failed: %v", err)
	}
	if v.Kind() != value.KindSymbol || v.Sym().Name != "fresh.space" {
		t.Errorf("(ns fresh.space) = %s", value.PrStr(v))
	}
}

func TestDoubleColonKeywordUsesCurrentNs(t *testing.T) {
	i := New(io.Discard)
	v, err := i.EvalString("(ns app.core) ::local")
	if err != nil {
		t.Fatalf("::local failed: %v", err)
	}
	if v.Kind() != value.KindKeyword || v.Keyword().Namespace != "app.core" {
		t.Errorf("::local = %s, want :app.core/local", value.PrStr(v))
	}
}

func TestRegisterNative(t *testing.T) {
	i := New(io.Discard)
	i.RegisterNative("host-add", func(args []value.Value) (value.Value, error) {
		sum := int64(0)
		for _, a := range args {
			sum += a.Int()
		}
		return value.Int(sum), nil
	})
	v, err := i.EvalString("(host-add 1 2 3)")
	if err != nil {
		t.Fatalf("native call failed: %v", err)
	}
	if !value.Equals(v, value.Int(6)) {
		t.Errorf("host-add = %s, want 6", value.PrStr(v))
	}
}
