package cache_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/qrgen/pkg/cache"
)

func TestLRUCache(t *testing.T) {
	t.Parallel()

	t.Run("put get and update", func(t *testing.T) {
		t.Parallel()
		c := cache.NewLRUCache[string, int](2)

		_, existed := c.Put("a", 1)
		assert.False(t, existed)
		old, existed := c.Put("a", 2)
		assert.True(t, existed)
		assert.Equal(t, 1, old)

		v, ok := c.Get("a")
		require.True(t, ok)
		assert.Equal(t, 2, v)
		assert.Equal(t, 1, c.Len())

		_, ok = c.Get("missing")
		assert.False(t, ok)
	})

	t.Run("evicts least recently used", func(t *testing.T) {
		t.Parallel()
		c := cache.NewLRUCache[string, int](2)
		c.Put("a", 1)
		c.Put("b", 2)
		c.Get("a")
		c.Put("c", 3)

		_, ok := c.Get("b")
		assert.False(t, ok)
		_, ok = c.Get("a")
		assert.True(t, ok)
		_, ok = c.Get("c")
		assert.True(t, ok)
	})

	t.Run("remove and clear", func(t *testing.T) {
		t.Parallel()
		c := cache.NewLRUCache[int, string](4)
		c.Put(1, "one")
		c.Put(2, "two")

		v, ok := c.Remove(1)
		assert.True(t, ok)
		assert.Equal(t, "one", v)
		_, ok = c.Remove(1)
		assert.False(t, ok)

		c.Clear()
		assert.Equal(t, 0, c.Len())
	})

	t.Run("get or load", func(t *testing.T) {
		t.Parallel()
		c := cache.NewLRUCache[string, int](4)
		calls := 0
		load := func() (int, error) {
			calls++
			return 42, nil
		}

		v, hit, err := c.GetOrLoad("k", load)
		require.NoError(t, err)
		assert.False(t, hit)
		assert.Equal(t, 42, v)

		v, hit, err = c.GetOrLoad("k", load)
		require.NoError(t, err)
		assert.True(t, hit)
		assert.Equal(t, 42, v)
		assert.Equal(t, 1, calls)

		boom := errors.New("boom")
		_, _, err = c.GetOrLoad("x", func() (int, error) { return 0, boom })
		assert.ErrorIs(t, err, boom)
		_, ok := c.Get("x")
		assert.False(t, ok)
	})

	t.Run("invalid capacity panics", func(t *testing.T) {
		t.Parallel()
		assert.Panics(t, func() { cache.NewLRUCache[string, int](0) })
	})
}
