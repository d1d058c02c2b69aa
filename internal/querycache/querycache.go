// Package querycache caches list/detail query results under logical group
// keys and lets the sync engine mark groups stale. Consumers check Stale
// before trusting a cached payload and refetch lazily; the cache never
// refetches on its own.
package querycache

import (
	"fmt"
	"sync"
)

// Logical query groups the sync engine knows about.
const (
	GroupCards = "practices:cards"
	GroupMine  = "practices:mine"
	GroupPast  = "practices:past"
)

// GroupDetail returns the group key for one practice's detail query.
func GroupDetail(id int) string {
	return fmt.Sprintf("practices:detail:%d", id)
}

type entry struct {
	payload any
	stale   bool
}

// Cache is a mutex-guarded map of group key to cached payload. One instance
// per running app, injected where needed.
type Cache struct {
	mu           sync.Mutex
	entries      map[string]entry
	onInvalidate func(groups []string)
}

// New creates an empty cache.
func New() *Cache {
	return &Cache{entries: make(map[string]entry)}
}

// Put stores a fresh payload for a group, clearing any stale mark.
func (c *Cache) Put(group string, payload any) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[group] = entry{payload: payload}
}

// Get returns the cached payload for a group. ok is false when the group is
// missing or stale.
func (c *Cache) Get(group string) (any, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	e, ok := c.entries[group]
	if !ok || e.stale {
		return nil, false
	}
	return e.payload, true
}

// Stale reports whether a group has been invalidated since its last Put.
// A group never stored is not stale; it is simply absent.
func (c *Cache) Stale(group string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.entries[group].stale
}

// Invalidate marks the given groups stale and fires the invalidation hook
// once with the full list. Unknown groups are recorded as stale too, so a
// consumer that populates the group later than the event still refetches.
func (c *Cache) Invalidate(groups ...string) {
	if len(groups) == 0 {
		return
	}
	c.mu.Lock()
	for _, g := range groups {
		e := c.entries[g]
		e.stale = true
		c.entries[g] = e
	}
	hook := c.onInvalidate
	c.mu.Unlock()

	if hook != nil {
		hook(groups)
	}
}

// SetOnInvalidate registers a hook called after each Invalidate with the
// affected groups. The UI uses it to schedule refetches.
func (c *Cache) SetOnInvalidate(fn func(groups []string)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.onInvalidate = fn
}
