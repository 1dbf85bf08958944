// Package symbols interns symbol names so that symbol equality collapses
// to pointer comparison; a Symbol's printed form is unaffected. The table
// is flat rather than scope-chained because interning is a process-wide
// identity concern, not a lexical one — lexical scoping of bindings lives
// in internal/evaluator's Environment chain instead.
package symbols

import (
	"github.com/wisplang/wisp/internal/arena"
	"github.com/wisplang/wisp/internal/value"
)

// Table is a process-wide symbol interning table. The parser consults it
// for every Symbol token so that two occurrences of the same name share
// one *value.Symbol.
type Table struct {
	store map[string]*value.Symbol
	arena *arena.Arena
}

// NewTable constructs an empty interning table allocating against a.
func NewTable(a *arena.Arena) *Table {
	return &Table{store: make(map[string]*value.Symbol), arena: a}
}

// Intern returns the unique *value.Symbol for name, creating it on first
// use and allocating it against a.
func (t *Table) Intern(name string) *value.Symbol {
	if sym, ok := t.store[name]; ok {
		return sym
	}
	sym := value.NewSymbol(t.arena, name)
	t.store[name] = sym
	return sym
}

// Len reports how many distinct names have been interned.
func (t *Table) Len() int {
	return len(t.store)
}
