package interp

import "github.com/g3ntleman/go-clj/internal/value"

// CoreNamespace holds the built-in bindings; UserNamespace is the default
// namespace for evaluation.
const (
	CoreNamespace = "clojure.core"
	UserNamespace = "user"
)

// Namespace is a named set of symbol bindings. Bindings live in hashed
// storage: namespace tables grow with every def and are consulted on
// every unqualified symbol miss, so the array-map representation the
// user-facing collections use would degrade here.
type Namespace struct {
	Name     *value.Symbol
	File     string
	mappings map[string]value.Value
}

// Define binds name in the namespace, replacing any previous binding.
func (ns *Namespace) Define(name string, v value.Value) {
	ns.mappings[name] = v
}

// Lookup resolves a name in this namespace only.
func (ns *Namespace) Lookup(name string) (value.Value, bool) {
	v, ok := ns.mappings[name]
	return v, ok
}

// Mappings returns the bindings as a persistent map value, keyed by
// symbol. The result is a snapshot; later defs do not show through.
func (ns *Namespace) Mappings() value.Value {
	out := (&value.Map{}).Transient()
	for name, v := range ns.mappings {
		out.Assoc(value.Sym("", name), v)
	}
	return value.MapValue(out.Persistent())
}

// FindNamespace returns a registered namespace by name, or nil.
func (i *Interp) FindNamespace(name string) *Namespace {
	return i.namespaces[name]
}

// EnsureNamespace returns the namespace with the given name, creating and
// registering it first if needed. Creation is idempotent.
func (i *Interp) EnsureNamespace(name string) *Namespace {
	if ns, ok := i.namespaces[name]; ok {
		return ns
	}
	ns := &Namespace{
		Name:     value.Intern("", name),
		File:     i.file,
		mappings: make(map[string]value.Value),
	}
	i.namespaces[name] = ns
	return ns
}

// CurrentNamespace returns the namespace evaluation currently runs in.
func (i *Interp) CurrentNamespace() *Namespace { return i.current }

// SetCurrentNamespace switches evaluation to the named namespace,
// creating it if needed.
func (i *Interp) SetCurrentNamespace(name string) *Namespace {
	ns := i.EnsureNamespace(name)
	i.current = ns
	return ns
}
