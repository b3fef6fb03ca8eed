package llm

import (
	"sync"
	"time"

	"github.com/fylr/fylr-engine/internal/engine"
)

// cacheEntry represents a cached classification.
type cacheEntry struct {
	expiry         time.Time
	classification engine.Classification
}

// suggestionCache provides thread-safe caching for classifications, keyed by
// normalized description text. Classification is pure per description, so a
// cached result is always as good as a fresh one within the TTL.
type suggestionCache struct {
	entries map[string]cacheEntry
	stopCh  chan struct{}
	ttl     time.Duration
	mu      sync.RWMutex
}

// newSuggestionCache creates a new cache with the specified TTL.
func newSuggestionCache(ttl time.Duration) *suggestionCache {
	if ttl == 0 {
		ttl = 15 * time.Minute
	}

	cache := &suggestionCache{
		entries: make(map[string]cacheEntry),
		ttl:     ttl,
		stopCh:  make(chan struct{}),
	}

	go cache.cleanup()

	return cache
}

// get retrieves a classification from the cache if it exists and hasn't expired.
func (c *suggestionCache) get(key string) (engine.Classification, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	entry, exists := c.entries[key]
	if !exists {
		return engine.Classification{}, false
	}

	if time.Now().After(entry.expiry) {
		return engine.Classification{}, false
	}

	return entry.classification, true
}

// set stores a classification in the cache.
func (c *suggestionCache) set(key string, classification engine.Classification) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[key] = cacheEntry{
		classification: classification,
		expiry:         time.Now().Add(c.ttl),
	}
}

// cleanup periodically removes expired entries.
func (c *suggestionCache) cleanup() {
	ticker := time.NewTicker(5 * time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-c.stopCh:
			return
		case <-ticker.C:
			c.mu.Lock()
			now := time.Now()
			for key, entry := range c.entries {
				if now.After(entry.expiry) {
					delete(c.entries, key)
				}
			}
			c.mu.Unlock()
		}
	}
}

// size returns the number of entries in the cache.
func (c *suggestionCache) size() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

// Close stops the cleanup goroutine.
func (c *suggestionCache) Close() {
	close(c.stopCh)
}
