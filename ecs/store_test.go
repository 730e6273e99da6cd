package ecs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNextEntityIsUniqueAndNonNull(t *testing.T) {
	seen := make(map[Entity]bool)
	for i := 0; i < 100; i++ {
		e := NextEntity()
		assert.NotEqual(t, NullEntity, e)
		assert.False(t, seen[e], "entity %d allocated twice", e)
		seen[e] = true
	}
}

func TestStoreSetGet(t *testing.T) {
	s := NewStore[string]()
	e := NextEntity()

	_, ok := s.Get(e)
	assert.False(t, ok)
	assert.False(t, s.Has(e))
	assert.Equal(t, 0, s.Len())

	s.Set(e, "hello")
	v, ok := s.Get(e)
	require.True(t, ok)
	assert.Equal(t, "hello", v)
	assert.True(t, s.Has(e))
	assert.Equal(t, 1, s.Len())
}

func TestStoreGetPtrMutatesInPlace(t *testing.T) {
	type counter struct{ n int }

	s := NewStore[counter]()
	e := NextEntity()
	s.Set(e, counter{n: 1})

	p, ok := s.GetPtr(e)
	require.True(t, ok)
	p.n = 7

	v, _ := s.Get(e)
	assert.Equal(t, 7, v.n)

	_, ok = s.GetPtr(NextEntity())
	assert.False(t, ok)
}

func TestStoreIterationIsInsertionOrdered(t *testing.T) {
	s := NewStore[int]()
	a, b, c := NextEntity(), NextEntity(), NextEntity()

	// Insert out of ID order to prove iteration follows insertion, not ID.
	s.Set(c, 3)
	s.Set(a, 1)
	s.Set(b, 2)

	var order []Entity
	for e, v := range s.All() {
		order = append(order, e)
		assert.Equal(t, int(e-a)+1, *v)
	}
	assert.Equal(t, []Entity{c, a, b}, order)
}

func TestStoreReplaceKeepsPosition(t *testing.T) {
	s := NewStore[int]()
	a, b := NextEntity(), NextEntity()
	s.Set(a, 1)
	s.Set(b, 2)

	s.Set(a, 10)

	var order []Entity
	for e := range s.All() {
		order = append(order, e)
	}
	assert.Equal(t, []Entity{a, b}, order)

	v, _ := s.Get(a)
	assert.Equal(t, 10, v)
	assert.Equal(t, 2, s.Len())
}

func TestStoreRemovePreservesOrder(t *testing.T) {
	s := NewStore[int]()
	a, b, c, d := NextEntity(), NextEntity(), NextEntity(), NextEntity()
	s.Set(a, 1)
	s.Set(b, 2)
	s.Set(c, 3)
	s.Set(d, 4)

	s.Remove(b)

	assert.False(t, s.Has(b))
	assert.Equal(t, 3, s.Len())

	var order []Entity
	for e := range s.All() {
		order = append(order, e)
	}
	assert.Equal(t, []Entity{a, c, d}, order)

	// Lookups still resolve after the splice shifted positions.
	v, ok := s.Get(d)
	require.True(t, ok)
	assert.Equal(t, 4, v)

	// Removing an absent entity is a no-op.
	s.Remove(b)
	assert.Equal(t, 3, s.Len())
}
