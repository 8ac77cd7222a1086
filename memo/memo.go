// Package memo provides a small in-memory cache that guarantees the same
// logical key always yields the same cached value by reference. It backs the
// archetype registry and the predicate combinators, whose identities must be
// stable so they can be used as map keys and compared cheaply.
package memo

// Cache is an instance-owned lookup table. Each store or registry owns its
// own Cache, so independent instances never share entries.
type Cache[K comparable, V any] struct {
	entries map[K]V
}

func New[K comparable, V any]() *Cache[K, V] {
	return &Cache[K, V]{
		entries: make(map[K]V),
	}
}

// Get returns the cached value for key. The second return value is false if
// no value has been memoized under key.
func (c *Cache[K, V]) Get(key K) (V, bool) {
	v, ok := c.entries[key]
	return v, ok
}

// GetOrCreate returns the value memoized under key, invoking create and
// caching its result if key has not been seen before. Repeated calls with an
// equal key always return the identical value.
func (c *Cache[K, V]) GetOrCreate(key K, create func() V) V {
	if v, ok := c.entries[key]; ok {
		return v
	}
	v := create()
	c.entries[key] = v
	return v
}

// Set memoizes value under key, replacing any previous entry.
func (c *Cache[K, V]) Set(key K, value V) {
	c.entries[key] = value
}

func (c *Cache[K, V]) Delete(key K) {
	delete(c.entries, key)
}

func (c *Cache[K, V]) Len() int {
	return len(c.entries)
}

func (c *Cache[K, V]) Keys() []K {
	acc := make([]K, 0, len(c.entries))
	for k := range c.entries {
		acc = append(acc, k)
	}
	return acc
}

// Clear drops every entry. Values handed out before the call remain valid,
// but equal keys will produce fresh identities afterwards.
func (c *Cache[K, V]) Clear() {
	c.entries = make(map[K]V)
}
