// Package cache remembers results for sentences that have been answered
// before. Answers depend only on the sentence and the settings used, so they
// never go stale.
package cache

import (
	"strings"

	lru "github.com/hashicorp/golang-lru/v2"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Cache is a fixed-size LRU cache of results keyed by normalized sentence.
// It is safe for concurrent use. A Cache of size zero remembers nothing.
type Cache[V any] struct {
	lru *lru.Cache[string, V]
}

// New creates a cache holding up to size results.
func New[V any](size int) (*Cache[V], error) {
	if size == 0 {
		return &Cache[V]{}, nil
	}
	c, err := lru.New[string, V](size)
	if err != nil {
		return nil, err
	}
	return &Cache[V]{lru: c}, nil
}

// Key builds a cache key from a sentence and any settings that affect its
// answer. Case and spacing in the sentence do not matter.
func Key(sentence string, settings ...string) string {
	s := strings.Join(strings.Fields(cases.Lower(language.English).String(sentence)), " ")
	if len(settings) == 0 {
		return s
	}
	return strings.Join(settings, ",") + "|" + s
}

// Get retrieves a result.
func (c *Cache[V]) Get(key string) (V, bool) {
	if c.lru == nil {
		var zero V
		return zero, false
	}
	return c.lru.Get(key)
}

// Add remembers a result.
func (c *Cache[V]) Add(key string, v V) {
	if c.lru == nil {
		return
	}
	c.lru.Add(key, v)
}

// Do returns the remembered result for key, or calls f and remembers its
// result if f succeeds. hit reports whether the result was remembered.
func (c *Cache[V]) Do(key string, f func() (V, error)) (v V, hit bool, err error) {
	if v, ok := c.Get(key); ok {
		return v, true, nil
	}
	v, err = f()
	if err != nil {
		return v, false, err
	}
	c.Add(key, v)
	return v, false, nil
}

// Len returns the number of results in the cache.
func (c *Cache[V]) Len() int {
	if c.lru == nil {
		return 0
	}
	return c.lru.Len()
}

// Purge forgets every result.
func (c *Cache[V]) Purge() {
	if c.lru != nil {
		c.lru.Purge()
	}
}
