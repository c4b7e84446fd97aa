package reader

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/g3ntleman/go-clj/internal/value"
)

// parseOne is a helper that parses a single form and fails the test on
// error.
func parseOne(t *testing.T, input string) value.Value {
	t.Helper()
	v, err := Parse(input)
	if err != nil {
		t.Fatalf("Parse(%q) error: %v", input, err)
	}
	return v
}

func TestNumbers(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"0", "0"},
		{"42", "42"},
		{"-5", "-5"},
		{"1.5", "1.5"},
		{"-2.25", "-2.25"},
		{"3.14", "3.14"},
		{"007", "7"},
	}
	for _, tt := range tests {
		if got := value.PrStr(parseOne(t, tt.input)); got != tt.want {
			t.Errorf("Parse(%q) = %s, want %s", tt.input, got, tt.want)
		}
	}
}

func TestNumberKinds(t *testing.T) {
	if parseOne(t, "42").Kind() != value.KindInt {
		t.Error("integer literal did not produce a fixnum")
	}
	if parseOne(t, "4.2").Kind() != value.KindFixed {
		t.Error("decimal literal did not produce a fixed")
	}
}

func TestTrailingDotIsError(t *testing.T) {
	if _, err := Parse("1."); err == nil {
		t.Error("digit-dot without fraction digits did not raise")
	}
}

func TestLeadingDotReadsAsSymbol(t *testing.T) {
	// .01 is not a number; it reads as a symbol and fails later at
	// resolution time.
	v := parseOne(t, ".01")
	if v.Kind() != value.KindSymbol || v.Sym().Name != ".01" {
		t.Errorf("Parse(\".01\") = %s, want symbol .01", value.PrStr(v))
	}
}

func TestStrings(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{`"hello"`, "hello"},
		{`""`, ""},
		{`"a\nb"`, "a\nb"},
		{`"tab\there"`, "tab\there"},
		{`"cr\rhere"`, "cr\rhere"},
		{`"q\"q"`, `q"q`},
		{`"back\\slash"`, `back\slash`},
		// Unknown escapes pass the character through.
		{`"\q"`, "q"},
		{`"héj ☺"`, "héj ☺"},
	}
	for _, tt := range tests {
		v := parseOne(t, tt.input)
		if v.Kind() != value.KindString || v.Str() != tt.want {
			t.Errorf("Parse(%s) = %q, want %q", tt.input, v.Str(), tt.want)
		}
	}
}

func TestUnterminatedString(t *testing.T) {
	_, err := Parse(`"abc`)
	if err == nil {
		t.Fatal("unterminated string did not raise")
	}
	if !strings.Contains(err.Error(), "missing closing \"") {
		t.Errorf("error = %v, want a missing-quote message", err)
	}
}

func TestSymbols(t *testing.T) {
	tests := []struct {
		input    string
		ns, name string
	}{
		{"foo", "", "foo"},
		{"foo-bar", "", "foo-bar"},
		{"even?", "", "even?"},
		{"set!", "", "set!"},
		{"+", "", "+"},
		{"<=", "", "<="},
		{"/", "", "/"},
		{"my.ns/foo", "my.ns", "foo"},
		{"Δ-width", "", "Δ-width"},
	}
	for _, tt := range tests {
		v := parseOne(t, tt.input)
		if v.Kind() != value.KindSymbol {
			t.Errorf("Parse(%q) kind = %s, want symbol", tt.input, v.Kind())
			continue
		}
		if v.Sym().Namespace != tt.ns || v.Sym().Name != tt.name {
			t.Errorf("Parse(%q) = (%q, %q), want (%q, %q)",
				tt.input, v.Sym().Namespace, v.Sym().Name, tt.ns, tt.name)
		}
	}
}

func TestLiterals(t *testing.T) {
	if !parseOne(t, "nil").IsNil() {
		t.Error("nil literal")
	}
	if !parseOne(t, "true").IsTrue() {
		t.Error("true literal")
	}
	if !parseOne(t, "false").IsFalse() {
		t.Error("false literal")
	}
	// Delimiter-follow rule: nil? is a symbol, not nil.
	if parseOne(t, "nil?").Kind() != value.KindSymbol {
		t.Error("nil? did not read as a symbol")
	}
}

func TestKeywords(t *testing.T) {
	v := parseOne(t, ":abc")
	if v.Kind() != value.KindKeyword || v.Keyword().Name != "abc" {
		t.Errorf("Parse(\":abc\") = %s", value.PrStr(v))
	}

	q := parseOne(t, ":my.ns/kw")
	if q.Keyword().Namespace != "my.ns" || q.Keyword().Name != "kw" {
		t.Errorf("qualified keyword = %s", value.PrStr(q))
	}

	r := New("::local")
	r.DefaultNS = "app.core"
	d, err := r.ReadForm()
	if err != nil {
		t.Fatalf("ReadForm error: %v", err)
	}
	if d.Keyword().Namespace != "app.core" || d.Keyword().Name != "local" {
		t.Errorf("::local = %s, want :app.core/local", value.PrStr(d))
	}

	if _, err := Parse(":"); err == nil {
		t.Error("bare colon did not raise")
	}
}

func TestCharLiterals(t *testing.T) {
	tests := []struct {
		input string
		want  rune
	}{
		{`\a`, 'a'},
		{`\1`, '1'},
		{`\(`, '('},
		{`\newline`, '\n'},
		{`\space`, ' '},
		{`\tab`, '\t'},
		{`\return`, '\r'},
		{`\backslash`, '\\'},
		{`\Δ`, 'Δ'},
	}
	for _, tt := range tests {
		v := parseOne(t, tt.input)
		if v.Kind() != value.KindChar || v.Char() != tt.want {
			t.Errorf("Parse(%q) = %s, want char %q", tt.input, value.PrStr(v), tt.want)
		}
	}

	if _, err := Parse(`\bogusname`); err == nil {
		t.Error("unknown character name did not raise")
	}
}

func TestCollections(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"(1 2 3)", "(1 2 3)"},
		{"[1 2 3]", "[1 2 3]"},
		{"{:a 1 :b 2}", "{:a 1, :b 2}"},
		{"{:a 1, :b 2}", "{:a 1, :b 2}"},
		{"[[1 2] [3]]", "[[1 2] [3]]"},
		{"(f [x] {:k (g)})", "(f [x] {:k (g)})"},
		{"[]", "[]"},
		{"{}", "{}"},
	}
	for _, tt := range tests {
		if got := value.PrStr(parseOne(t, tt.input)); got != tt.want {
			t.Errorf("Parse(%q) = %s, want %s", tt.input, got, tt.want)
		}
	}
}

func TestEmptyListReadsAsNil(t *testing.T) {
	if !parseOne(t, "()").IsNil() {
		t.Error("() did not read as nil")
	}
	if !parseOne(t, "( ; just a comment\n )").IsNil() {
		t.Error("empty list with comment did not read as nil")
	}
}

func TestUnclosedDelimiters(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"(1 2", "missing closing )"},
		{"[1 2", "missing closing ]"},
		{"{:a 1", "missing closing }"},
	}
	for _, tt := range tests {
		_, err := Parse(tt.input)
		if err == nil {
			t.Errorf("Parse(%q) did not raise", tt.input)
			continue
		}
		if !strings.Contains(err.Error(), tt.want) {
			t.Errorf("Parse(%q) error = %v, want %q", tt.input, err, tt.want)
		}
	}
}

func TestUnmatchedClosing(t *testing.T) {
	for _, input := range []string{")", "]", "}"} {
		if _, err := Parse(input); err == nil {
			t.Errorf("Parse(%q) did not raise", input)
		}
	}
}

func TestOddMapLiteral(t *testing.T) {
	_, err := Parse("{:a}")
	if err == nil {
		t.Fatal("odd map literal did not raise")
	}
	if !strings.Contains(err.Error(), "even number") {
		t.Errorf("error = %v", err)
	}
}

func TestComments(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"; leading\n42", "42"},
		{"42 ; trailing", "42"},
		{"#| block |# 42", "42"},
		{"#| multi\nline |#\n7", "7"},
		{"[1 ; inside\n 2]", "[1 2]"},
	}
	for _, tt := range tests {
		if got := value.PrStr(parseOne(t, tt.input)); got != tt.want {
			t.Errorf("Parse(%q) = %s, want %s", tt.input, got, tt.want)
		}
	}

	if _, err := Parse("#| never closed"); err == nil {
		t.Error("unterminated block comment did not raise")
	}
}

func TestQuoteMacro(t *testing.T) {
	v := parseOne(t, "'(1 2)")
	if got := value.PrStr(v); got != "(quote (1 2))" {
		t.Errorf("'(1 2) reads as %s", got)
	}
	if got := value.PrStr(parseOne(t, "'x")); got != "(quote x)" {
		t.Errorf("'x reads as %s", got)
	}
}

func TestMetaMacro(t *testing.T) {
	v := parseOne(t, "^{:doc \"d\"} foo")
	if got := value.PrStr(v); got != `(with-meta foo {:doc "d"})` {
		t.Errorf("^meta reads as %s", got)
	}
	v2 := parseOne(t, "#^{:tag :x} bar")
	if got := value.PrStr(v2); got != "(with-meta bar {:tag :x})" {
		t.Errorf("#^meta reads as %s", got)
	}
}

func TestReadAll(t *testing.T) {
	forms, err := ParseAll("1 2 (+ 1 2) ; done")
	if err != nil {
		t.Fatalf("ParseAll error: %v", err)
	}
	if len(forms) != 3 {
		t.Fatalf("read %d forms, want 3", len(forms))
	}
	if got := value.PrStr(forms[2]); got != "(+ 1 2)" {
		t.Errorf("third form = %s", got)
	}
}

func TestPositions(t *testing.T) {
	r := NewWithFile("  \n  (boom)", "test.clj")
	form, err := r.ReadForm()
	if err != nil {
		t.Fatalf("ReadForm error: %v", err)
	}
	l := form.List()
	if l.Line != 2 || l.Col != 3 {
		t.Errorf("list position = %d:%d, want 2:3", l.Line, l.Col)
	}
}

func TestErrorPositions(t *testing.T) {
	_, err := NewWithFile("\n\n   @", "src.clj").ReadForm()
	if err == nil {
		t.Fatal("unknown character did not raise")
	}
	exc, ok := value.AsException(err)
	if !ok {
		t.Fatalf("error is %T, want *value.Exception", err)
	}
	if exc.TypeName != value.ExcParse {
		t.Errorf("type = %s, want Parse", exc.TypeName)
	}
	if exc.File != "src.clj" || exc.Line != 3 || exc.Col != 4 {
		t.Errorf("position = %s:%d:%d, want src.clj:3:4", exc.File, exc.Line, exc.Col)
	}
	if !strings.Contains(exc.Message, "0x40") {
		t.Errorf("message %q does not include the hex byte", exc.Message)
	}
}

// Reader round-trip: for printable data values, read(PrStr(v)) ≡ v.
func TestRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for n := 0; n < 200; n++ {
		v := randomValue(rng, 3)
		printed := value.PrStr(v)
		back, err := Parse(printed)
		if err != nil {
			t.Fatalf("round-trip parse of %q failed: %v", printed, err)
		}
		if !value.Equals(v, back) {
			t.Fatalf("round trip changed %q into %q", printed, value.PrStr(back))
		}
	}
}

// randomValue builds a printable data value of bounded depth from
// numbers, strings, keywords, symbols, nil, booleans, vectors, lists and
// maps.
func randomValue(rng *rand.Rand, depth int) value.Value {
	if depth == 0 {
		return randomScalar(rng)
	}
	switch rng.Intn(6) {
	case 0:
		n := rng.Intn(4)
		items := make([]value.Value, n)
		for i := range items {
			items[i] = randomValue(rng, depth-1)
		}
		return value.NewVector(items)
	case 1:
		n := 1 + rng.Intn(3)
		items := make([]value.Value, n)
		for i := range items {
			items[i] = randomValue(rng, depth-1)
		}
		return value.NewList(items)
	case 2:
		m := &value.Map{}
		for i := 0; i < rng.Intn(3); i++ {
			m = m.Assoc(value.Kw("", symbolNames[rng.Intn(len(symbolNames))]), randomValue(rng, depth-1))
		}
		return value.MapValue(m)
	default:
		return randomScalar(rng)
	}
}

var symbolNames = []string{"alpha", "beta", "g-x", "even?", "plus+", "k1"}

func randomScalar(rng *rand.Rand) value.Value {
	switch rng.Intn(6) {
	case 0:
		return value.Nil
	case 1:
		return value.Bool(rng.Intn(2) == 0)
	case 2:
		return value.Int(rng.Int63n(100000) - 50000)
	case 3:
		return value.Str("s" + symbolNames[rng.Intn(len(symbolNames))])
	case 4:
		return value.Kw("", symbolNames[rng.Intn(len(symbolNames))])
	default:
		return value.Sym("", symbolNames[rng.Intn(len(symbolNames))])
	}
}
