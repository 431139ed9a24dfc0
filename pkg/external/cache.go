package external

import (
	"container/list"
	"sync"
	"time"
)

// cacheEntry is the payload stored per key.
type cacheEntry struct {
	results   []string
	expiresAt time.Time
}

// ttlCache is a bounded, insertion-ordered map with FIFO eviction and an
// absolute TTL expiry per entry. Reads do not change the order, so when
// the cache is full the oldest insertion is evicted, not the least recently
// used entry (the policy of golang-lru, which is why it is not used here).
type ttlCache struct {
	mu      sync.Mutex
	ttl     time.Duration
	maxSize int
	entries map[string]*list.Element
	order   *list.List // front = oldest insertion, back = newest
}

type node struct {
	key   string
	entry cacheEntry
}

// newTTLCache constructs a cache with the given TTL and maximum entry count.
func newTTLCache(ttl time.Duration, maxSize int) *ttlCache {
	return &ttlCache{
		ttl:     ttl,
		maxSize: maxSize,
		entries: make(map[string]*list.Element),
		order:   list.New(),
	}
}

// get returns the cached results for key if present and unexpired. Expired
// entries are lazily removed on read.
func (c *ttlCache) get(key string) ([]string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	el, ok := c.entries[key]
	if !ok {
		return nil, false
	}
	n := el.Value.(*node)
	if time.Now().After(n.entry.expiresAt) {
		c.order.Remove(el)
		delete(c.entries, key)
		return nil, false
	}
	return n.entry.results, true
}

// set inserts or replaces the entry for key, evicting the oldest insertion
// first if the cache is at capacity. The size check, eviction, and insert
// happen atomically under a single mutex so the bound is never exceeded.
func (c *ttlCache) set(key string, results []string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if el, ok := c.entries[key]; ok {
		c.order.Remove(el)
		delete(c.entries, key)
	}

	if len(c.entries) >= c.maxSize {
		oldest := c.order.Front()
		if oldest != nil {
			c.order.Remove(oldest)
			delete(c.entries, oldest.Value.(*node).key)
		}
	}

	n := &node{key: key, entry: cacheEntry{results: results, expiresAt: time.Now().Add(c.ttl)}}
	el := c.order.PushBack(n)
	c.entries[key] = el
}

// size returns the current number of entries, including expired entries
// that have not yet been removed by a read.
func (c *ttlCache) size() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}
