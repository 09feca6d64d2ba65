package vetspan

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCrossScopeRejected(t *testing.T) {
	data := []int{1, 2, 3}

	// a position escaping its scope is a plain value, but it is
	// unusable against any other container, even over the same data
	stray := ScopeSlice(data, func(c *Container[int, []int]) Index {
		ix, err := c.Vet(0)
		require.NoError(t, err)
		return ix
	})

	ScopeSlice(data, func(c *Container[int, []int]) error {
		assert.Panics(t, func() { c.At(stray) })
		assert.Panics(t, func() { c.Advance(stray) })
		assert.Panics(t, func() { c.SliceFrom(stray) })

		own, err := c.Vet(0)
		require.NoError(t, err)
		assert.Panics(t, func() { own.Equal(stray) })
		assert.Panics(t, func() { c.Full().Contains(stray) })
		return nil
	})
}

func TestEachScopeGetsFreshTag(t *testing.T) {
	data := []byte("xy")
	a := ScopeSlice(data, func(c *Container[byte, []byte]) Range { return c.Full() })
	b := ScopeSlice(data, func(c *Container[byte, []byte]) Range { return c.Full() })
	assert.Panics(t, func() { a.Equal(b) })
}

func TestScopeReturnsCallbackValue(t *testing.T) {
	n := ScopeString("héllo", func(c *Container[Character, string]) int {
		return c.UnitLen()
	})
	assert.Equal(t, 6, n)

	empty := ScopeString("", func(c *Container[Character, string]) bool {
		return c.IsEmpty()
	})
	assert.True(t, empty)
}

func TestScopeSliceMut(t *testing.T) {
	data := []int{1, 2, 3}
	ScopeSliceMut(data, func(c *MutContainer[int]) error {
		ix1, err := c.Vet(1)
		require.NoError(t, err)
		c.Set(ix1, 9)

		ix0, err := c.Vet(0)
		require.NoError(t, err)
		c.Swap(ix0, ix1)

		assert.Equal(t, 9, c.At(ix0))
		assert.Equal(t, 1, c.At(ix1))

		// writes need a dereferenceable position
		assert.Panics(t, func() { c.Set(c.End(), 7) })
		return nil
	})
	assert.Equal(t, []int{9, 1, 3}, data)
}

func TestCustomTrustedArray(t *testing.T) {
	// any TrustedArray can back a scope
	arr := sliceArray[string]{data: []string{"a", "b"}}
	got := Scope[string, []string](arr, func(c *Container[string, []string]) string {
		ix, err := c.Vet(1)
		require.NoError(t, err)
		return c.At(ix)
	})
	assert.Equal(t, "b", got)
}
