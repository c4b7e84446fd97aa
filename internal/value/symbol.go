package value

import "sync"

// Symbol is an interned identifier with an optional namespace part.
// Interning guarantees that two symbols with the same (namespace, name)
// are the same pointer, so the evaluator compares symbols by identity on
// the hot path.
type Symbol struct {
	Namespace string // "" when unqualified
	Name      string
	Meta      *Map
}

// FullName returns "ns/name" for qualified symbols and "name" otherwise.
func (s *Symbol) FullName() string {
	if s.Namespace != "" {
		return s.Namespace + "/" + s.Name
	}
	return s.Name
}

// Keyword is an interned keyword. The stored name excludes the leading
// colon; the printer re-applies it.
type Keyword struct {
	Namespace string
	Name      string
}

// FullName returns the keyword's name without the leading colon.
func (k *Keyword) FullName() string {
	if k.Namespace != "" {
		return k.Namespace + "/" + k.Name
	}
	return k.Name
}

// The intern tables are process-wide and append-only. A hash map keyed on
// the qualified name keeps lookup O(1); the pointer-equality contract is
// what callers rely on.
var (
	internMu     sync.Mutex
	symbolTable  = make(map[string]*Symbol)
	keywordTable = make(map[string]*Keyword)
)

// Intern returns the canonical symbol for (namespace, name).
func Intern(namespace, name string) *Symbol {
	key := namespace + "/" + name
	internMu.Lock()
	defer internMu.Unlock()
	if s, ok := symbolTable[key]; ok {
		return s
	}
	s := &Symbol{Namespace: namespace, Name: name}
	symbolTable[key] = s
	return s
}

// InternKeyword returns the canonical keyword for (namespace, name).
func InternKeyword(namespace, name string) *Keyword {
	key := namespace + "/" + name
	internMu.Lock()
	defer internMu.Unlock()
	if k, ok := keywordTable[key]; ok {
		return k
	}
	k := &Keyword{Namespace: namespace, Name: name}
	keywordTable[key] = k
	return k
}

// Sym constructs a symbol value, interning the symbol.
func Sym(namespace, name string) Value {
	return Value{kind: KindSymbol, obj: Intern(namespace, name)}
}

// SymbolValue wraps an already-interned symbol as a value.
func SymbolValue(s *Symbol) Value { return Value{kind: KindSymbol, obj: s} }

// Kw constructs a keyword value, interning the keyword.
func Kw(namespace, name string) Value {
	return Value{kind: KindKeyword, obj: InternKeyword(namespace, name)}
}

// KeywordValue wraps an already-interned keyword as a value.
func KeywordValue(k *Keyword) Value { return Value{kind: KindKeyword, obj: k} }
