package ephem

import (
	"sync"
	"time"

	"github.com/litescript/ls-skyplan/internal/astro"
)

// DefaultCacheTTL is the reuse window for bodies without a specific TTL.
const DefaultCacheTTL = 10 * time.Minute

// TTLFunc returns the cache window for a body. Returning false means the
// body has no specific window and DefaultCacheTTL applies. Fast movers like
// the Moon want shorter windows than the outer planets.
type TTLFunc func(body string) (time.Duration, bool)

// Cache memoizes BodyPosition answers from an inner provider. A cached
// position is reused while the requested epoch stays within the body's TTL
// of the sampled epoch and the observer matches.
type Cache struct {
	inner  Provider
	ttlFor TTLFunc

	mu      sync.RWMutex
	entries map[string]*cacheEntry
}

// cacheEntry stores one cached position.
type cacheEntry struct {
	coord    astro.Coord
	sampleAt time.Time
	observer astro.Observer
}

// NewCache wraps a provider with per-body TTL caching. ttlFor may be nil,
// in which case every body gets DefaultCacheTTL.
func NewCache(inner Provider, ttlFor TTLFunc) *Cache {
	return &Cache{
		inner:   inner,
		ttlFor:  ttlFor,
		entries: make(map[string]*cacheEntry),
	}
}

// Name implements Provider.
func (c *Cache) Name() string {
	return c.inner.Name()
}

// Available implements Provider.
func (c *Cache) Available(body string) bool {
	return c.inner.Available(body)
}

// BodyPosition implements Provider.
func (c *Cache) BodyPosition(body string, t time.Time, obs astro.Observer) (astro.Coord, error) {
	key := normalizeBody(body)

	c.mu.RLock()
	entry, ok := c.entries[key]
	c.mu.RUnlock()

	if ok && c.fresh(key, entry, t, obs) {
		return entry.coord, nil
	}

	coord, err := c.inner.BodyPosition(body, t, obs)
	if err != nil {
		return astro.Coord{}, err
	}

	c.mu.Lock()
	c.entries[key] = &cacheEntry{coord: coord, sampleAt: t, observer: obs}
	c.mu.Unlock()

	return coord, nil
}

// Invalidate clears the cached position for a body.
// Called when the site changes to force fresh data.
func (c *Cache) Invalidate(body string) {
	c.mu.Lock()
	delete(c.entries, normalizeBody(body))
	c.mu.Unlock()
}

func (c *Cache) fresh(key string, entry *cacheEntry, t time.Time, obs astro.Observer) bool {
	ttl := DefaultCacheTTL
	if c.ttlFor != nil {
		if d, ok := c.ttlFor(key); ok {
			ttl = d
		}
	}

	dt := t.Sub(entry.sampleAt)
	if dt < 0 {
		dt = -dt
	}
	return dt <= ttl && observerMatch(entry.observer, obs)
}

// observerMatch checks if two observers are close enough to share cache.
func observerMatch(a, b astro.Observer) bool {
	const tolerance = 0.1 // degrees
	if abs(a.LatDeg-b.LatDeg) > tolerance {
		return false
	}
	if abs(a.LonDeg-b.LonDeg) > tolerance {
		return false
	}
	return true
}

func abs(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}
