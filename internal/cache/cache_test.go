package cache_test

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zephyrtronium/spoken/internal/cache"
)

func TestKey(t *testing.T) {
	assert.Equal(t, "two plus two", cache.Key("  Two   PLUS two "))
	assert.Equal(t, "64|two plus two", cache.Key("two plus two", "64"))
	assert.Equal(t, "64,%g|two plus two", cache.Key("two plus two", "64", "%g"))
	assert.NotEqual(t, cache.Key("two", "64"), cache.Key("two", "128"))
}

func TestEviction(t *testing.T) {
	c, err := cache.New[int](2)
	require.NoError(t, err)
	c.Add("a", 1)
	c.Add("b", 2)
	_, ok := c.Get("a")
	require.True(t, ok)
	c.Add("c", 3)
	assert.Equal(t, 2, c.Len())
	_, ok = c.Get("b")
	assert.False(t, ok, "least recently used entry should be evicted")
	v, ok := c.Get("a")
	assert.True(t, ok)
	assert.Equal(t, 1, v)
	c.Purge()
	assert.Zero(t, c.Len())
}

func TestDo(t *testing.T) {
	c, err := cache.New[string](8)
	require.NoError(t, err)
	calls := 0
	f := func() (string, error) {
		calls++
		return "four", nil
	}
	v, hit, err := c.Do("k", f)
	require.NoError(t, err)
	assert.False(t, hit)
	assert.Equal(t, "four", v)
	v, hit, err = c.Do("k", f)
	require.NoError(t, err)
	assert.True(t, hit)
	assert.Equal(t, "four", v)
	assert.Equal(t, 1, calls)

	boom := errors.New("boom")
	_, hit, err = c.Do("bad", func() (string, error) { return "", boom })
	assert.ErrorIs(t, err, boom)
	assert.False(t, hit)
	_, ok := c.Get("bad")
	assert.False(t, ok, "errors must not be cached")
}

func TestDisabled(t *testing.T) {
	c, err := cache.New[int](0)
	require.NoError(t, err)
	c.Add("a", 1)
	_, ok := c.Get("a")
	assert.False(t, ok)
	assert.Zero(t, c.Len())
	c.Purge()

	_, err = cache.New[int](-1)
	assert.Error(t, err)
}

func TestConcurrent(t *testing.T) {
	c, err := cache.New[int](16)
	require.NoError(t, err)
	var wg sync.WaitGroup
	for i := range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := range 100 {
				k := cache.Key("n", string(rune('a'+(i+j)%26)))
				c.Do(k, func() (int, error) { return j, nil })
			}
		}()
	}
	wg.Wait()
	assert.LessOrEqual(t, c.Len(), 16)
}
