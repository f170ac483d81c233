package search

import (
	"github.com/patrickmn/go-cache"
)

// memoOracle caches oracle answers keyed by the packed subset mask.
// go-cache is mutex-guarded, so the wrapper stays safe for concurrent use.
type memoOracle struct {
	inner Oracle
	store *cache.Cache
	max   int
}

// memoize wraps o with a cache holding at most size answers; size 0 returns o.
func memoize(o Oracle, size int) Oracle {
	if size == 0 {
		return o
	}

	// no expiration and no janitor goroutine: the cache lives for one call
	return &memoOracle{inner: o, store: cache.New(cache.NoExpiration, 0), max: size}
}

// Unsatisfied implements Oracle.
func (m *memoOracle) Unsatisfied(chosen []bool) int {
	key := maskKey(chosen)
	if v, ok := m.store.Get(key); ok {
		return v.(int)
	}
	u := m.inner.Unsatisfied(chosen)
	if m.store.ItemCount() >= m.max {
		m.store.Flush()
	}
	m.store.Set(key, u, cache.NoExpiration)

	return u
}

// maskKey packs a mask into a compact string, 8 elements per byte.
func maskKey(mask []bool) string {
	buf := make([]byte, (len(mask)+7)/8)
	for i, ok := range mask {
		if ok {
			buf[i/8] |= 1 << (uint(i) % 8)
		}
	}

	return string(buf)
}
