package evaluator

import (
	"github.com/wisplang/wisp/internal/arena"
	"github.com/wisplang/wisp/internal/value"
)

// Environment is one lexical frame: an ordered list of bindings plus a
// link to the enclosing frame. Bindings are a slice, not a map, so that
// define can prepend — the most recent binding for a shadowed name wins
// without discarding the one it shadows, and lookups scan head-to-tail.
type Environment struct {
	bindings []*value.Binding
	parent   *Environment
	arena    *arena.Arena
}

// NewRootEnvironment constructs the program's single root frame.
func NewRootEnvironment(a *arena.Arena) *Environment {
	return &Environment{arena: a}
}

// NewEnclosedEnvironment constructs a frame whose parent is outer, the way
// every let, lambda call, and letrec body extends its surrounding scope.
func NewEnclosedEnvironment(outer *Environment) *Environment {
	return &Environment{parent: outer, arena: outer.arena}
}

// Define prepends a new binding to this frame. Both top-level define and
// call-frame construction for a closure's parameters rely on this
// ordering.
func (e *Environment) Define(name string, v value.Value) {
	b := value.NewBinding(e.arena, name, v)
	e.bindings = append([]*value.Binding{b}, e.bindings...)
}

// Lookup walks this frame head-to-tail, then ascends to the parent.
func (e *Environment) Lookup(name string) (value.Value, bool) {
	for env := e; env != nil; env = env.parent {
		for _, b := range env.bindings {
			if b.Name == name {
				return b.Val, true
			}
		}
	}
	return nil, false
}

// Set rewrites the nearest enclosing binding for name in place. It never
// creates a binding; set! on an unbound symbol must fail.
func (e *Environment) Set(name string, v value.Value) bool {
	for env := e; env != nil; env = env.parent {
		for _, b := range env.bindings {
			if b.Name == name {
				b.Val = v
				return true
			}
		}
	}
	return false
}

var _ value.Environment = (*Environment)(nil)
