// Package value defines the interpreter's single data model: every token
// the lexer emits, every form the parser assembles, and every result the
// evaluator produces is a value.Value. The language is homoiconic, so
// there is no separate AST type — a parsed Pair tree is both the program
// and, once evaluated, its own intermediate representation.
package value

import "github.com/wisplang/wisp/internal/arena"

// Kind tags the concrete type behind a Value.
type Kind string

const (
	IntegerKind   Kind = "INTEGER"
	DoubleKind    Kind = "DOUBLE"
	StringKind    Kind = "STRING"
	SymbolKind    Kind = "SYMBOL"
	BoolKind      Kind = "BOOL"
	NullKind      Kind = "NULL"
	PairKind      Kind = "PAIR"
	OpenKind      Kind = "OPEN"
	CloseKind     Kind = "CLOSE"
	VoidKind      Kind = "VOID"
	ClosureKind   Kind = "CLOSURE"
	PrimitiveKind Kind = "PRIMITIVE"
	BindingKind   Kind = "BINDING"
)

// Value is satisfied by every variant in the data model. Inspect renders
// the value the way the REPL prints it; it is not meant for diagnostics,
// which render their own templates instead.
type Value interface {
	Kind() Kind
	Inspect() string
}

// Environment is the subset of the evaluator's lexical environment that a
// Closure needs to carry with it. Declared here, not in internal/evaluator,
// so that the data model has no dependency on the component that
// interprets it; internal/evaluator's Environment type implements it.
type Environment interface {
	Define(name string, v Value)
	Set(name string, v Value) bool
	Lookup(name string) (Value, bool)
}

// Integer is an exact whole-number literal or arithmetic result that has
// not been promoted to Double.
type Integer struct {
	Val int64
}

func (*Integer) Kind() Kind { return IntegerKind }

// Double is a floating-point literal or the result of + - * or /, which
// always promote to Double (modulo keeps Integer).
type Double struct {
	Val float64
}

func (*Double) Kind() Kind { return DoubleKind }

// String is a string literal. The lexer retains the surrounding quotes in
// the token lexeme; Val holds the unquoted contents.
type String struct {
	Val string
}

func (*String) Kind() Kind { return StringKind }

// Symbol is an identifier. The parser interns Symbols through
// internal/symbols, so repeated names within one parse share one *Symbol
// pointer; environment lookup still compares Names as strings.
type Symbol struct {
	Name string
}

func (*Symbol) Kind() Kind { return SymbolKind }

// Bool is one of the two boolean literals, #t or #f.
type Bool struct {
	Val bool
}

func (*Bool) Kind() Kind { return BoolKind }

// Null is the empty list, (), the unique terminator every proper list ends
// in. It carries no state, so one shared instance serves the whole
// program.
type Null struct{}

func (*Null) Kind() Kind { return NullKind }

// TheNull is the single shared empty-list instance. Every list-producing
// operation terminates in this value rather than allocating a fresh Null.
var TheNull = &Null{}

// TheVoid is the single shared "no useful result" value, returned by
// forms whose effect is side-effecting, such as define and set!.
var TheVoid = &Void{}

// Void is the result of a form that has no printable value.
type Void struct{}

func (*Void) Kind() Kind { return VoidKind }

// Pair is a cons cell: the parser assembles every list-form out of Pairs
// terminated by Null, and quote/list-producing primitives do the same at
// evaluation time.
type Pair struct {
	CarVal Value
	CdrVal Value
}

func (*Pair) Kind() Kind { return PairKind }

// Open and Close are bracket markers. They only ever appear transiently on
// the parser's shift stack; no Pair ever holds one, and the evaluator
// never sees one.
type Open struct{}

func (*Open) Kind() Kind { return OpenKind }

type Close struct{}

func (*Close) Kind() Kind { return CloseKind }

// Closure is a user-defined procedure: a parameter list, a body, and the
// environment that was live when the lambda form was evaluated, giving it
// lexical scope.
type Closure struct {
	Params []string
	Body   []Value
	Env    Environment
}

func (*Closure) Kind() Kind { return ClosureKind }

// PrimitiveFunc is the Go implementation behind a built-in procedure.
type PrimitiveFunc func(args []Value) (Value, error)

// Primitive wraps a built-in procedure so it can be passed around, bound,
// and applied exactly like a Closure.
type Primitive struct {
	Name string
	Fn   PrimitiveFunc
}

func (*Primitive) Kind() Kind { return PrimitiveKind }

// Binding is one name/value pair inside an environment frame. Frames are
// ordered slices of Bindings rather than maps (see internal/evaluator),
// so that re-defining a name in the same frame prepends rather than
// overwrites, and lookup order is well-defined.
type Binding struct {
	Name string
	Val  Value
}

func (*Binding) Kind() Kind { return BindingKind }

// NewInteger allocates an Integer against a, recording the allocation the
// way every other constructor in this file does.
func NewInteger(a *arena.Arena, v int64) *Integer {
	a.Allocate(string(IntegerKind))
	return &Integer{Val: v}
}

func NewDouble(a *arena.Arena, v float64) *Double {
	a.Allocate(string(DoubleKind))
	return &Double{Val: v}
}

func NewString(a *arena.Arena, v string) *String {
	a.Allocate(string(StringKind))
	return &String{Val: v}
}

func NewSymbol(a *arena.Arena, name string) *Symbol {
	a.Allocate(string(SymbolKind))
	return &Symbol{Name: name}
}

func NewBool(a *arena.Arena, v bool) *Bool {
	a.Allocate(string(BoolKind))
	return &Bool{Val: v}
}

func NewPair(a *arena.Arena, car, cdr Value) *Pair {
	a.Allocate(string(PairKind))
	return &Pair{CarVal: car, CdrVal: cdr}
}

func NewClosure(a *arena.Arena, params []string, body []Value, env Environment) *Closure {
	a.Allocate(string(ClosureKind))
	return &Closure{Params: params, Body: body, Env: env}
}

func NewPrimitive(a *arena.Arena, name string, fn PrimitiveFunc) *Primitive {
	a.Allocate(string(PrimitiveKind))
	return &Primitive{Name: name, Fn: fn}
}

func NewBinding(a *arena.Arena, name string, v Value) *Binding {
	a.Allocate(string(BindingKind))
	return &Binding{Name: name, Val: v}
}

// IsTruthy implements the language's truthiness rule: everything is truthy
// except the literal #f. Null, 0, and "" are all truthy.
func IsTruthy(v Value) bool {
	b, ok := v.(*Bool)
	return !ok || b.Val
}
