// File: lixenwraith/maskconfig/cache.go
package maskconfig

import (
	"slices"
	"sync"

	"golang.org/x/sync/singleflight"
)

// listCache memoizes lower-cased string lists per key. The document is
// immutable, so entries never need invalidation or eviction.
type listCache struct {
	mu      sync.RWMutex
	entries map[string][]string
	group   singleflight.Group
}

func newListCache() *listCache {
	return &listCache{entries: make(map[string][]string)}
}

// StringListLower returns the list at a flat key with every element
// lower-cased using ASCII-only folding. The result is computed at most
// once per key: concurrent first lookups share a single computation,
// and the first entry inserted for a key is the one kept. The returned
// slice is a copy the caller owns.
func (r *Resolver) StringListLower(key string) []string {
	r.cache.mu.RLock()
	cached, hit := r.cache.entries[key]
	r.cache.mu.RUnlock()
	if hit {
		return slices.Clone(cached)
	}

	// Compute outside any lock so a slow derivation never blocks readers
	// of other keys.
	computed, _, _ := r.cache.group.Do(key, func() (any, error) {
		list := r.StringList(key)
		for i, s := range list {
			list[i] = lowerASCII(s)
		}
		return list, nil
	})
	list := computed.([]string)

	r.cache.mu.Lock()
	if existing, ok := r.cache.entries[key]; ok {
		// First insertion wins.
		list = existing
	} else {
		r.cache.entries[key] = list
	}
	r.cache.mu.Unlock()

	return slices.Clone(list)
}
