package availability

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResultCache_GetWithinTTL(t *testing.T) {
	c := newResultCache(10, 2*time.Minute)
	now := time.Date(2026, 3, 4, 10, 0, 0, 0, time.UTC)

	c.put("k1", AvailabilityResult{OK: true}, now)

	got, ok := c.get("k1", now.Add(time.Minute))
	require.True(t, ok)
	assert.True(t, got.OK)
}

func TestResultCache_LazyExpiry(t *testing.T) {
	c := newResultCache(10, 2*time.Minute)
	now := time.Date(2026, 3, 4, 10, 0, 0, 0, time.UTC)

	c.put("k1", AvailabilityResult{OK: true}, now)

	_, ok := c.get("k1", now.Add(3*time.Minute))
	assert.False(t, ok)
	assert.Equal(t, 0, c.len(), "expired entry must be evicted on lookup")
}

func TestResultCache_EvictsOldestInserted(t *testing.T) {
	c := newResultCache(2, 2*time.Minute)
	now := time.Date(2026, 3, 4, 10, 0, 0, 0, time.UTC)

	c.put("a", AvailabilityResult{}, now)
	c.put("b", AvailabilityResult{}, now.Add(time.Second))
	// Re-putting "a" keeps its original insertion position.
	c.put("a", AvailabilityResult{OK: true}, now.Add(2*time.Second))
	c.put("c", AvailabilityResult{}, now.Add(3*time.Second))

	_, ok := c.get("a", now.Add(4*time.Second))
	assert.False(t, ok, "oldest inserted key must be evicted, even after an update")
	_, ok = c.get("b", now.Add(4*time.Second))
	assert.True(t, ok)
	_, ok = c.get("c", now.Add(4*time.Second))
	assert.True(t, ok)
	assert.Equal(t, 2, c.len())
}

func TestResultCache_Clear(t *testing.T) {
	c := newResultCache(10, 2*time.Minute)
	now := time.Date(2026, 3, 4, 10, 0, 0, 0, time.UTC)

	for i := 0; i < 5; i++ {
		c.put(fmt.Sprintf("k%d", i), AvailabilityResult{}, now)
	}
	require.Equal(t, 5, c.len())

	c.clear()
	assert.Equal(t, 0, c.len())

	// Still usable after a clear.
	c.put("k1", AvailabilityResult{OK: true}, now)
	_, ok := c.get("k1", now)
	assert.True(t, ok)
}

func TestCacheKey_DistinguishesIntervals(t *testing.T) {
	start := time.Date(2026, 3, 4, 10, 0, 0, 0, time.UTC)
	a := cacheKey("s1", TimeInterval{Start: start, End: start.Add(time.Hour)})
	b := cacheKey("s1", TimeInterval{Start: start, End: start.Add(2 * time.Hour)})
	other := cacheKey("s2", TimeInterval{Start: start, End: start.Add(time.Hour)})

	assert.NotEqual(t, a, b)
	assert.NotEqual(t, a, other)
}
