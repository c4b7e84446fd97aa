package interp

import (
	"bytes"
	"io"
	"testing"

	"github.com/g3ntleman/go-clj/internal/value"
)

func TestTryCatch(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"(try (/ 1 0) (catch ArithmeticException e :caught))", ":caught"},
		{"(try 42 (catch ArithmeticException e :caught))", "42"},
		{`(try (throw "boom") (catch Runtime e :got-it))`, ":got-it"},
		{"(try (nth [1] 5) (catch IndexOutOfBoundsException e :oob))", ":oob"},
		// First matching clause wins.
		{`(try (/ 1 0)
		   (catch Runtime e :wrong)
		   (catch ArithmeticException e :right))`, ":right"},
		// The handler sees the exception value through its binding.
		{`(try (throw "boom") (catch Runtime e (str "got " e)))`, `"got Runtime: boom"`},
		// try without clauses is just a do.
		{"(try 1 2 3)", "3"},
	}
	for _, tt := range tests {
		if got := value.PrStr(testEval(t, tt.input)); got != tt.want {
			t.Errorf("eval(%q) = %s, want %s", tt.input, got, tt.want)
		}
	}
}

func TestTryCatchNoMatchPropagates(t *testing.T) {
	testEvalErr(t, "(try (/ 1 0) (catch TypeError e :nope))", value.ExcArithmetic)
}

func TestCatchBindingScope(t *testing.T) {
	// The binding is local to the handler.
	testEvalErr(t, "(try (/ 1 0) (catch ArithmeticException e e)) e", value.ExcUndefinedSymbol)
}

func TestFinally(t *testing.T) {
	_, out := testEvalWithOutput(t, `
		(try 1 (finally (println "cleanup")))`)
	if out != "cleanup\n" {
		t.Errorf("finally on success path: output %q", out)
	}

	var buf bytes.Buffer
	i := New(&buf)
	_, err := i.EvalString(`(try (/ 1 0) (finally (println "cleanup")))`)
	if err == nil {
		t.Fatal("uncaught exception swallowed by finally")
	}
	if buf.String() != "cleanup\n" {
		t.Errorf("finally on failure path: output %q", buf.String())
	}

	// finally runs after a matching catch too.
	v, out := testEvalWithOutput(t, `
		(try (/ 1 0)
		  (catch ArithmeticException e :caught)
		  (finally (println "cleanup")))`)
	if value.PrStr(v) != ":caught" || out != "cleanup\n" {
		t.Errorf("catch+finally = %s, output %q", value.PrStr(v), out)
	}
}

func TestThrow(t *testing.T) {
	exc := testEvalErr(t, `(throw "kaboom")`, value.ExcRuntime)
	if exc.Message != "kaboom" {
		t.Errorf("message = %q, want \"kaboom\"", exc.Message)
	}

	exc = testEvalErr(t, "(throw :bad-state)", value.ExcRuntime)
	if exc.Message != ":bad-state" {
		t.Errorf("keyword throw message = %q", exc.Message)
	}
}

func TestExceptionUnwindsNestedFrames(t *testing.T) {
	// The exception crosses three user frames before the handler.
	got := testEval(t, `
		(defn a [] (/ 1 0))
		(defn b [] (a))
		(defn c [] (b))
		(try (c) (catch ArithmeticException e :deep))`)
	if value.PrStr(got) != ":deep" {
		t.Errorf("nested unwind = %s", value.PrStr(got))
	}
}

func TestTryMalformed(t *testing.T) {
	testEvalErr(t, "(try 1 (catch) 2)", value.ExcIllegalArgument)
	testEvalErr(t, "(try (finally 1) 2)", value.ExcIllegalArgument)
	testEvalErr(t, "(try 1 (finally 1) (finally 2))", value.ExcIllegalArgument)
}

func TestExceptionValueInHandler(t *testing.T) {
	i := New(io.Discard)
	v, err := i.EvalString("(try (/ 1 0) (catch ArithmeticException e (type e)))")
	if err != nil {
		t.Fatalf("eval failed: %v", err)
	}
	if value.PrStr(v) != ":exception" {
		t.Errorf("bound exception type = %s, want :exception", value.PrStr(v))
	}
}
