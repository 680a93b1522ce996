package availability

import (
	"fmt"
	"sync"
	"time"
)

type cacheEntry struct {
	result    AvailabilityResult
	expiresAt time.Time
}

// resultCache is a bounded TTL cache for real-time availability results.
// Expired entries are evicted lazily on lookup; at capacity the oldest
// inserted key is dropped (insertion order, not LRU).
type resultCache struct {
	mu       sync.Mutex
	entries  map[string]cacheEntry
	order    []string
	capacity int
	ttl      time.Duration
}

func newResultCache(capacity int, ttl time.Duration) *resultCache {
	return &resultCache{
		entries:  make(map[string]cacheEntry, capacity),
		capacity: capacity,
		ttl:      ttl,
	}
}

func cacheKey(spaceID string, interval TimeInterval) string {
	return fmt.Sprintf("%s|%d|%d", spaceID, interval.Start.Unix(), interval.End.Unix())
}

func (c *resultCache) get(key string, now time.Time) (AvailabilityResult, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[key]
	if !ok {
		return AvailabilityResult{}, false
	}
	if now.After(e.expiresAt) {
		c.remove(key)
		return AvailabilityResult{}, false
	}
	return e.result, true
}

func (c *resultCache) put(key string, result AvailabilityResult, now time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.entries[key]; !exists {
		for len(c.entries) >= c.capacity && len(c.order) > 0 {
			c.remove(c.order[0])
		}
		c.order = append(c.order, key)
	}
	c.entries[key] = cacheEntry{result: result, expiresAt: now.Add(c.ttl)}
}

func (c *resultCache) clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[string]cacheEntry, c.capacity)
	c.order = c.order[:0]
}

func (c *resultCache) len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// remove expects c.mu to be held.
func (c *resultCache) remove(key string) {
	delete(c.entries, key)
	for i, k := range c.order {
		if k == key {
			c.order = append(c.order[:i], c.order[i+1:]...)
			break
		}
	}
}
