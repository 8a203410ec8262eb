package assess

import (
	"container/list"
	"sync"
)

// DefaultCacheSize is the cache capacity used when none is specified.
const DefaultCacheSize = 64

// Cache is a bounded report cache keyed by input fingerprint. When full,
// the least recently used entry is evicted. Callers construct one and pass
// it to the runner explicitly.
type Cache struct {
	entries map[string]*list.Element
	order   *list.List
	mu      sync.Mutex
	max     int
}

type cacheEntry struct {
	report *Report
	key    string
}

// NewCache creates a cache holding at most max reports. A non-positive max
// falls back to DefaultCacheSize.
func NewCache(max int) *Cache {
	if max <= 0 {
		max = DefaultCacheSize
	}
	return &Cache{
		entries: make(map[string]*list.Element, max),
		order:   list.New(),
		max:     max,
	}
}

// Get returns the cached report for the fingerprint, marking it recently used.
func (c *Cache) Get(key string) (*Report, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	elem, ok := c.entries[key]
	if !ok {
		return nil, false
	}
	c.order.MoveToFront(elem)
	return elem.Value.(*cacheEntry).report, true
}

// Put stores a report under its fingerprint, evicting the least recently
// used entry when the cache is full.
func (c *Cache) Put(key string, report *Report) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if elem, ok := c.entries[key]; ok {
		elem.Value.(*cacheEntry).report = report
		c.order.MoveToFront(elem)
		return
	}

	if c.order.Len() >= c.max {
		oldest := c.order.Back()
		if oldest != nil {
			c.order.Remove(oldest)
			delete(c.entries, oldest.Value.(*cacheEntry).key)
		}
	}
	c.entries[key] = c.order.PushFront(&cacheEntry{key: key, report: report})
}

// Len returns the number of cached reports.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.order.Len()
}

// Purge removes every cached report.
func (c *Cache) Purge() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[string]*list.Element, c.max)
	c.order.Init()
}
