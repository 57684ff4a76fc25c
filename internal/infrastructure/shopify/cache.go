package shopify

import (
	"sync"
	"time"
)

type feedEntry struct {
	products  []Product
	fetchedAt time.Time
}

// feedCache is a short-lived per-domain copy of the last successful fetch.
// Staleness is bounded by the configured TTL; a zero TTL disables caching so
// every invocation re-fetches.
type feedCache struct {
	mu      sync.RWMutex
	ttl     time.Duration
	entries map[string]feedEntry
}

func newFeedCache(ttl time.Duration) *feedCache {
	return &feedCache{
		ttl:     ttl,
		entries: make(map[string]feedEntry),
	}
}

// get returns the cached products for a domain and whether they are still
// within the TTL. A stale entry is returned with fresh=false so callers can
// fall back to it when the upstream cannot be polled.
func (fc *feedCache) get(domain string) (products []Product, fresh bool) {
	if fc.ttl <= 0 {
		return nil, false
	}

	fc.mu.RLock()
	defer fc.mu.RUnlock()

	entry, ok := fc.entries[domain]
	if !ok {
		return nil, false
	}
	return entry.products, time.Since(entry.fetchedAt) < fc.ttl
}

func (fc *feedCache) set(domain string, products []Product) {
	if fc.ttl <= 0 {
		return
	}

	fc.mu.Lock()
	defer fc.mu.Unlock()
	fc.entries[domain] = feedEntry{products: products, fetchedAt: time.Now()}
}
