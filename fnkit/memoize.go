package fnkit

import (
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/cespare/xxhash/v2"

	"github.com/funcell/funcell/fn"
)

const memoShards = 8

type memoCache[R any] struct {
	shards [memoShards]sync.Map
	size   atomic.Uint32
	max    uint32
}

func (c *memoCache[R]) shard(key string) *sync.Map {
	return &c.shards[xxhash.Sum64String(key)%memoShards]
}

func (c *memoCache[R]) load(key string) (R, bool) {
	v, ok := c.shard(key).Load(key)
	if !ok {
		var zero R
		return zero, false
	}
	return v.(R), true
}

func (c *memoCache[R]) store(key string, v R) {
	if c.size.CompareAndSwap(c.max, 0) {
		for i := range c.shards {
			c.shards[i].Clear()
		}
	}
	if _, loaded := c.shard(key).LoadOrStore(key, v); !loaded {
		c.size.Add(1)
	}
}

func memoKey[A any](a A) string {
	if s, ok := any(a).(fmt.Stringer); ok {
		return s.String()
	}
	return fmt.Sprintf("%v", a)
}

// Memoized wraps f with a result cache keyed by the rendered argument
// (fmt.Stringer respected, fmt formatting otherwise) and sharded by hash.
// Once maxEntries results are resident the cache is flushed and refills
// from scratch. Only use it over targets that are pure in their argument.
func Memoized[A, R any](f *fn.Function[A, R], maxEntries uint32) fn.Function[A, R] {
	cache := &memoCache[R]{max: maxEntries}
	return fn.Of(func(a A) R {
		key := memoKey(a)
		if v, ok := cache.load(key); ok {
			return v
		}
		v := f.Call(a)
		cache.store(key, v)
		return v
	})
}
