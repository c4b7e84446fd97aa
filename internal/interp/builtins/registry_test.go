package builtins

import (
	"bytes"
	"testing"

	"github.com/g3ntleman/go-clj/internal/value"
)

func TestRegistryRegisterAndLookup(t *testing.T) {
	r := NewRegistry()
	called := false
	r.Register("noop", func(_ *Context, _ []value.Value) (value.Value, error) {
		called = true
		return value.Nil, nil
	}, CategoryCore, "does nothing")

	fn, ok := r.Lookup("noop")
	if !ok {
		t.Fatal("registered function not found")
	}
	if _, err := fn(nil, nil); err != nil {
		t.Fatalf("call failed: %v", err)
	}
	if !called {
		t.Error("implementation not invoked")
	}

	if _, ok := r.Lookup("missing"); ok {
		t.Error("lookup of unregistered name succeeded")
	}
	if !r.Has("noop") || r.Has("missing") {
		t.Error("Has gave wrong answers")
	}
}

func TestRegistryReplaceKeepsSingleCategoryEntry(t *testing.T) {
	r := NewRegistry()
	impl := func(_ *Context, _ []value.Value) (value.Value, error) { return value.Nil, nil }
	r.Register("dup", impl, CategoryCore, "first")
	r.Register("dup", impl, CategoryCore, "second")

	if n := len(r.GetByCategory(CategoryCore)); n != 1 {
		t.Errorf("category holds %d entries, want 1", n)
	}
	if r.Count() != 1 {
		t.Errorf("Count = %d, want 1", r.Count())
	}
}

func TestDefaultRegistryCoverage(t *testing.T) {
	// Every builtin the language contract names must be registered.
	names := []string{
		"+", "-", "*", "/",
		"=", "<", ">", "<=", ">=",
		"first", "rest", "next", "cons", "seq", "count", "conj",
		"println", "print", "str", "prn",
		"list", "vector", "array-map",
		"get", "assoc", "dissoc", "contains?", "keys", "vals",
		"transient", "persistent!", "conj!", "assoc!",
		"map", "filter", "reduce", "apply", "range",
		"throw", "meta", "with-meta",
	}
	for _, name := range names {
		if !DefaultRegistry.Has(name) {
			t.Errorf("builtin %q not registered", name)
		}
	}
}

func TestAllFunctionsSorted(t *testing.T) {
	fns := DefaultRegistry.AllFunctions()
	for i := 1; i < len(fns); i++ {
		if fns[i-1].Name >= fns[i].Name {
			t.Fatalf("AllFunctions not sorted: %q before %q", fns[i-1].Name, fns[i].Name)
		}
	}
}

func TestPrintlnWritesToContext(t *testing.T) {
	var buf bytes.Buffer
	ctx := &Context{Out: &buf}
	if _, err := Println(ctx, []value.Value{value.Str("hej"), value.Int(7)}); err != nil {
		t.Fatalf("println failed: %v", err)
	}
	if buf.String() != "hej 7\n" {
		t.Errorf("output = %q, want \"hej 7\\n\"", buf.String())
	}
}
