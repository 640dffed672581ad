package fragment

import (
	"context"
	"sort"
	"sync"

	"fragment-loader/core/source"

	"golang.org/x/sync/singleflight"
)

// Cache holds fragment markup keyed by reference. Entries never expire on
// their own; Clear drops all of them.
type Cache struct {
	mu      sync.RWMutex
	entries map[string]string
	// gen is bumped by Clear so fetches started before it do not repopulate.
	gen uint64
	sf  singleflight.Group
}

// NewCache creates an empty cache.
func NewCache() *Cache {
	return &Cache{entries: make(map[string]string)}
}

// Get returns the cached markup for ref.
func (c *Cache) Get(ref string) (string, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	markup, ok := c.entries[ref]
	return markup, ok
}

// Set stores markup for ref, replacing any previous entry.
func (c *Cache) Set(ref, markup string) {
	c.mu.Lock()
	c.entries[ref] = markup
	c.mu.Unlock()
}

// Clear removes every entry.
func (c *Cache) Clear() {
	c.mu.Lock()
	c.entries = make(map[string]string)
	c.gen++
	c.mu.Unlock()
}

// Len returns the number of cached fragments.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

// Refs returns the cached references in sorted order.
func (c *Cache) Refs() []string {
	c.mu.RLock()
	refs := make([]string, 0, len(c.entries))
	for ref := range c.entries {
		refs = append(refs, ref)
	}
	c.mu.RUnlock()

	sort.Strings(refs)
	return refs
}

// Fetch returns the markup for ref, retrieving it from src on a miss.
// Concurrent misses for the same ref share one retrieval, which runs detached
// from any single caller's cancellation; each caller still returns as soon as
// its own ctx is done. Only successful retrievals are stored, and a retrieval
// that straddles a Clear is returned but not stored.
func (c *Cache) Fetch(ctx context.Context, ref string, src source.Source) (string, error) {
	if markup, ok := c.Get(ref); ok {
		return markup, nil
	}

	ch := c.sf.DoChan(ref, func() (interface{}, error) {
		c.mu.RLock()
		markup, ok := c.entries[ref]
		gen := c.gen
		c.mu.RUnlock()
		// Another caller may have stored it while we were waiting
		if ok {
			return markup, nil
		}

		markup, err := src.Fetch(context.WithoutCancel(ctx), ref)
		if err != nil {
			return "", err
		}

		c.mu.Lock()
		if c.gen == gen {
			c.entries[ref] = markup
		}
		c.mu.Unlock()
		return markup, nil
	})

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return "", res.Err
		}
		return res.Val.(string), nil
	}
}
