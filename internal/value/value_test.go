package value

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/wisplang/wisp/internal/arena"
)

func TestInspect_Literals(t *testing.T) {
	a := arena.New()

	assert.Equal(t, "42", NewInteger(a, 42).Inspect())
	assert.Equal(t, "3.000000", NewDouble(a, 3).Inspect())
	assert.Equal(t, "\"hi\"", NewString(a, "hi").Inspect())
	assert.Equal(t, "x", NewSymbol(a, "x").Inspect())
	assert.Equal(t, "#t", NewBool(a, true).Inspect())
	assert.Equal(t, "#f", NewBool(a, false).Inspect())
	assert.Equal(t, "()", TheNull.Inspect())
	assert.Equal(t, "closure", (&Closure{}).Inspect())
}

func TestInspect_ProperList(t *testing.T) {
	a := arena.New()
	list := NewPair(a, NewInteger(a, 1), NewPair(a, NewInteger(a, 2), NewPair(a, NewInteger(a, 3), TheNull)))

	assert.Equal(t, "(1 2 3)", list.Inspect())
}

func TestInspect_ImproperTail(t *testing.T) {
	a := arena.New()
	pair := NewPair(a, NewInteger(a, 1), NewInteger(a, 2))

	assert.Equal(t, "(1 2)", pair.Inspect())
}

func TestToSlice_ProperList(t *testing.T) {
	a := arena.New()
	list := NewPair(a, NewInteger(a, 1), NewPair(a, NewInteger(a, 2), TheNull))

	elems := ToSlice(list)
	assert.Len(t, elems, 2)
	assert.True(t, IsProperList(list))
}

func TestLengthAndReverse(t *testing.T) {
	a := arena.New()
	list := FromSlice([]Value{NewInteger(a, 1), NewInteger(a, 2), NewInteger(a, 3)})

	assert.Equal(t, 3, Length(list))
	assert.Equal(t, "(3 2 1)", Reverse(list).Inspect())
}

func TestSymbolEq(t *testing.T) {
	a := arena.New()
	s1 := NewSymbol(a, "foo")
	s2 := NewSymbol(a, "foo")
	s3 := NewSymbol(a, "bar")

	assert.True(t, SymbolEq(s1, s2))
	assert.False(t, SymbolEq(s1, s3))
}

func TestIsTruthy(t *testing.T) {
	a := arena.New()

	assert.True(t, IsTruthy(NewBool(a, true)))
	assert.False(t, IsTruthy(NewBool(a, false)))
	assert.True(t, IsTruthy(TheNull))
	assert.True(t, IsTruthy(NewInteger(a, 0)))
}
