package interp

import "github.com/g3ntleman/go-clj/internal/value"

// Environment is the lexical scope chain used for function parameters and
// let bindings. Resolution checks the current scope first, then walks the
// outer chain. Namespace bindings are not part of the chain; the resolver
// consults them after the chain is exhausted.
type Environment struct {
	store map[string]value.Value
	outer *Environment
}

// NewEnvironment creates a root-level environment with no outer scope.
func NewEnvironment() *Environment {
	return &Environment{store: make(map[string]value.Value)}
}

// NewEnclosedEnvironment creates a child scope of outer. outer may be nil.
func NewEnclosedEnvironment(outer *Environment) *Environment {
	return &Environment{store: make(map[string]value.Value), outer: outer}
}

// Get resolves a name through the scope chain.
func (e *Environment) Get(name string) (value.Value, bool) {
	for env := e; env != nil; env = env.outer {
		if v, ok := env.store[name]; ok {
			return v, true
		}
	}
	return value.Nil, false
}

// Define binds a name in this scope, shadowing any outer binding.
func (e *Environment) Define(name string, v value.Value) {
	e.store[name] = v
}
