package value

import "github.com/samber/lo"

// Car and Cdr accept only a *Pair; callers that might see a non-Pair
// argument (the car and cdr builtins) type-assert to *Pair first and
// raise a diagnostic instead of calling these.

// Car returns p's first element.
func Car(p *Pair) Value { return p.CarVal }

// Cdr returns p's rest.
func Cdr(p *Pair) Value { return p.CdrVal }

// IsProperList reports whether v is a chain of Pairs terminated by Null.
func IsProperList(v Value) bool {
	for {
		switch t := v.(type) {
		case *Null:
			return true
		case *Pair:
			v = t.CdrVal
		default:
			return false
		}
	}
}

// ToSlice flattens a proper list into a Go slice, in order. The caller is
// responsible for checking IsProperList first if dotted pairs must be
// rejected explicitly.
func ToSlice(v Value) []Value {
	var out []Value
	for {
		switch t := v.(type) {
		case *Null:
			return out
		case *Pair:
			out = append(out, t.CarVal)
			v = t.CdrVal
		default:
			// improper tail: surface it as a trailing element so callers
			// that care can still detect it.
			out = append(out, t)
			return out
		}
	}
}

// FromSlice builds a proper list out of elems, terminated by Null. Its
// Pairs are not recorded in any arena; Reverse is its only caller.
func FromSlice(elems []Value) Value {
	var tail Value = TheNull
	for i := len(elems) - 1; i >= 0; i-- {
		tail = &Pair{CarVal: elems[i], CdrVal: tail}
	}
	return tail
}

// Length counts a proper list's elements using lo.Reduce, grounded on the
// wider example corpus's use of samber/lo for list folds rather than a
// hand-rolled loop.
func Length(v Value) int {
	elems := ToSlice(v)
	return lo.Reduce(elems, func(acc int, _ Value, _ int) int {
		return acc + 1
	}, 0)
}

// Reverse returns a new proper list with elems in reverse order.
func Reverse(v Value) Value {
	elems := ToSlice(v)
	reversed := lo.Reverse(lo.Map(elems, func(item Value, _ int) Value { return item }))
	return FromSlice(reversed)
}

// SymbolEq compares two Values for symbol-identity equality: true only
// when both are Symbols with the same interned Name.
func SymbolEq(a, b Value) bool {
	sa, ok := a.(*Symbol)
	if !ok {
		return false
	}
	sb, ok := b.(*Symbol)
	if !ok {
		return false
	}
	return sa.Name == sb.Name
}
