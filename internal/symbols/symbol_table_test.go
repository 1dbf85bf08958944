package symbols

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/wisplang/wisp/internal/arena"
)

func TestIntern_SameNameReturnsSamePointer(t *testing.T) {
	a := arena.New()
	table := NewTable(a)

	s1 := table.Intern("foo")
	s2 := table.Intern("foo")

	assert.Same(t, s1, s2)
	assert.Equal(t, 1, table.Len())
}

func TestIntern_DifferentNamesDistinctPointers(t *testing.T) {
	a := arena.New()
	table := NewTable(a)

	s1 := table.Intern("foo")
	s2 := table.Intern("bar")

	assert.NotSame(t, s1, s2)
	assert.Equal(t, 2, table.Len())
}
