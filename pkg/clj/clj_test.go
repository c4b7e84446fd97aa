package clj

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newEngine(t *testing.T) (*Engine, *bytes.Buffer) {
	t.Helper()
	var buf bytes.Buffer
	engine, err := New(WithOutput(&buf))
	require.NoError(t, err, "failed to create engine")
	return engine, &buf
}

// TestEndToEndScenarios covers the canonical language scenarios through
// the public API.
func TestEndToEndScenarios(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"(+ 1 2 3)", "6"},
		{"(let [x 10 y (* x 2)] (+ x y))", "30"},
		{"(defn fact [n] (if (= n 0) 1 (* n (fact (- n 1))))) (fact 5)", "120"},
		{"(defn loop-sum [n acc] (if (= n 0) acc (recur (- n 1) (+ acc n)))) (loop-sum 1000 0)", "500500"},
		{"(get (assoc {} :a 1) :a)", "1"},
		{"(try (/ 1 0) (catch ArithmeticException e :caught))", ":caught"},
		{"(count (rest (rest [1 2 3 4 5])))", "3"},
		{"(conj [1 2] 3 4 5)", "[1 2 3 4 5]"},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			engine, _ := newEngine(t)
			v, err := engine.EvalString(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, PrStr(v))
		})
	}
}

func TestEvalStringReturnsLastForm(t *testing.T) {
	engine, _ := newEngine(t)
	v, err := engine.EvalString("1 2 3")
	require.NoError(t, err)
	assert.Equal(t, "3", PrStr(v))
}

func TestOutputCapture(t *testing.T) {
	engine, buf := newEngine(t)
	_, err := engine.EvalString(`(println "hello, world")`)
	require.NoError(t, err)
	assert.Equal(t, "hello, world\n", buf.String())
}

func TestParseString(t *testing.T) {
	engine, _ := newEngine(t)

	form, err := engine.ParseString("(+ 1 2)")
	require.NoError(t, err)
	assert.Equal(t, "(+ 1 2)", PrStr(form))

	// Parsing does not evaluate.
	form, err = engine.ParseString("(/ 1 0)")
	require.NoError(t, err)
	assert.Equal(t, "(/ 1 0)", PrStr(form))
}

func TestParseAll(t *testing.T) {
	engine, _ := newEngine(t)
	forms, err := engine.ParseAll("1 :two \"three\"")
	require.NoError(t, err)
	require.Len(t, forms, 3)
	assert.Equal(t, `"three"`, PrStr(forms[2]))
}

func TestParseErrors(t *testing.T) {
	engine, _ := newEngine(t)
	_, err := engine.ParseString("(+ 1")
	require.Error(t, err)

	exc, ok := AsException(err)
	require.True(t, ok, "error should be an exception")
	assert.Equal(t, "Parse", exc.TypeName)
	assert.Contains(t, exc.Message, "missing closing )")
}

func TestUncaughtExceptionFormat(t *testing.T) {
	engine, err := New(WithFile("script.clj"))
	require.NoError(t, err)

	_, err = engine.EvalString("(/ 1 0)")
	require.Error(t, err)

	exc, ok := AsException(err)
	require.True(t, ok)
	assert.Equal(t, "ArithmeticException", exc.TypeName)
	assert.Equal(t, "ArithmeticException: Divide by zero at (script.clj:1:1)", exc.Error())
}

func TestRegisterNative(t *testing.T) {
	engine, _ := newEngine(t)
	engine.RegisterNative("shout", func(args []Value) (Value, error) {
		return Str(DisplayStr(args[0]) + "!"), nil
	})

	v, err := engine.EvalString(`(shout "hej")`)
	require.NoError(t, err)
	assert.Equal(t, `"hej!"`, PrStr(v))
}

func TestCurrentNamespaceTracksNs(t *testing.T) {
	engine, _ := newEngine(t)
	assert.Equal(t, "user", engine.CurrentNamespace())

	_, err := engine.EvalString("(ns app.main)")
	require.NoError(t, err)
	assert.Equal(t, "app.main", engine.CurrentNamespace())
}

func TestMaxDepthOption(t *testing.T) {
	engine, err := New(WithMaxDepth(50))
	require.NoError(t, err)

	_, err = engine.EvalString("(defn down [n] (down (inc n))) (down 0)")
	require.Error(t, err)
	exc, ok := AsException(err)
	require.True(t, ok)
	assert.Equal(t, "StackOverflowError", exc.TypeName)
}

func TestEngineStatePersistsAcrossEvals(t *testing.T) {
	engine, _ := newEngine(t)

	_, err := engine.EvalString("(def counter 10)")
	require.NoError(t, err)

	v, err := engine.EvalString("(+ counter 1)")
	require.NoError(t, err)
	assert.Equal(t, "11", PrStr(v))
}

func TestValueConstructors(t *testing.T) {
	assert.Equal(t, "42", PrStr(Int(42)))
	assert.Equal(t, `"s"`, PrStr(Str("s")))
	assert.Equal(t, "true", PrStr(Bool(true)))
	assert.Equal(t, "nil", PrStr(Nil))
	assert.True(t, True.Truthy())
	assert.False(t, False.Truthy())
}
