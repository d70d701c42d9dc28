package otel

import "sync"

// cache memoizes instrument and meter construction per key.
type cache[K comparable, V any] struct {
	sync.Mutex
	data map[K]V
}

func (c *cache[K, V]) Lookup(key K, f func() V) V {
	c.Lock()
	defer c.Unlock()

	if c.data == nil {
		c.data = map[K]V{}
	}
	if v, ok := c.data[key]; ok {
		return v
	}
	v := f()
	c.data[key] = v
	return v
}

type valAndErr[V any] struct {
	val V
	err error
}

type cacheWithErr[K comparable, V any] struct {
	cache[K, valAndErr[V]]
}

func (c *cacheWithErr[K, V]) Lookup(key K, f func() (V, error)) (V, error) {
	combined := c.cache.Lookup(key, func() valAndErr[V] {
		val, err := f()
		return valAndErr[V]{val: val, err: err}
	})
	return combined.val, combined.err
}
