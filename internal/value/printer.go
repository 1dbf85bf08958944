package value

import (
	"fmt"
	"strings"
)

// Inspect renders v exactly as the REPL prints it. It is the only
// formatting path values go through on the way to standard output;
// diagnostics render through their own templates instead (internal/diagnostics).
func (v *Integer) Inspect() string { return fmt.Sprintf("%d", v.Val) }

// Double always renders with %f, trailing zeros included, matching the
// source interpreter's formatting rather than Go's shortest-representation
// default.
func (v *Double) Inspect() string { return fmt.Sprintf("%f", v.Val) }

// String prints with surrounding quotes. Val holds the unquoted contents,
// so Inspect adds the quotes back.
func (v *String) Inspect() string { return "\"" + v.Val + "\"" }

func (v *Symbol) Inspect() string { return v.Name }

func (v *Bool) Inspect() string {
	if v.Val {
		return "#t"
	}
	return "#f"
}

func (*Null) Inspect() string { return "()" }

func (*Void) Inspect() string { return "" }

// Pair prints as a parenthesized, space-separated sequence. A proper list
// renders with no dot; an improper tail renders inline after the last
// element with no special marker.
func (p *Pair) Inspect() string {
	var b strings.Builder
	b.WriteByte('(')
	first := true
	var cur Value = p
	for {
		pair, ok := cur.(*Pair)
		if !ok {
			break
		}
		if !first {
			b.WriteByte(' ')
		}
		first = false
		b.WriteString(pair.CarVal.Inspect())
		cur = pair.CdrVal
	}
	if _, isNull := cur.(*Null); !isNull {
		b.WriteByte(' ')
		b.WriteString(cur.Inspect())
	}
	b.WriteByte(')')
	return b.String()
}

func (*Open) Inspect() string  { return "(" }
func (*Close) Inspect() string { return ")" }

func (*Closure) Inspect() string { return "closure" }

func (p *Primitive) Inspect() string { return "primitive:" + p.Name }

// Binding only ever appears on debug paths; the language itself never
// produces one as an evaluation result.
func (b *Binding) Inspect() string {
	return "[" + b.Name + " = " + b.Val.Inspect() + "]"
}
