package ratelimit

import (
	"sync"
	"time"
)

// TokenBucket represents a token bucket for rate limiting
type TokenBucket struct {
	tokens     int           // Current tokens
	maxTokens  int           // Maximum tokens in bucket
	refillRate int           // Tokens to add per refill interval
	refillTime time.Duration // Refill interval
	lastRefill time.Time     // Last refill time
	mutex      sync.Mutex    // Thread safety
}

// FetchLimiter bounds how often each merchant feed domain is polled so a
// burst of page views cannot hammer a third-party storefront.
type FetchLimiter struct {
	buckets map[string]*TokenBucket
	mutex   sync.RWMutex
}

func NewFetchLimiter() *FetchLimiter {
	return &FetchLimiter{
		buckets: make(map[string]*TokenBucket),
	}
}

// NewTokenBucket creates a new token bucket
func NewTokenBucket(maxTokens, refillRate int, refillTime time.Duration) *TokenBucket {
	return &TokenBucket{
		tokens:     maxTokens,
		maxTokens:  maxTokens,
		refillRate: refillRate,
		refillTime: refillTime,
		lastRefill: time.Now(),
	}
}

// Allow checks if an action is allowed and consumes a token if so
func (tb *TokenBucket) Allow() (bool, time.Duration) {
	tb.mutex.Lock()
	defer tb.mutex.Unlock()

	now := time.Now()

	// Calculate tokens to add based on time elapsed
	elapsed := now.Sub(tb.lastRefill)
	tokensToAdd := int(elapsed/tb.refillTime) * tb.refillRate

	if tokensToAdd > 0 {
		tb.tokens += tokensToAdd
		if tb.tokens > tb.maxTokens {
			tb.tokens = tb.maxTokens
		}
		tb.lastRefill = now
	}

	if tb.tokens > 0 {
		tb.tokens--
		return true, 0
	}

	// Calculate wait time until next token is available
	nextRefill := tb.lastRefill.Add(tb.refillTime)
	waitTime := nextRefill.Sub(now)
	return false, waitTime
}

// GetTokens returns current token count
func (tb *TokenBucket) GetTokens() int {
	tb.mutex.Lock()
	defer tb.mutex.Unlock()
	return tb.tokens
}

// Allow checks if another fetch against the given feed domain is allowed.
// Each domain gets 30 fetches of burst with one token refilled every 2s.
func (fl *FetchLimiter) Allow(domain string) (bool, time.Duration) {
	fl.mutex.RLock()
	bucket, exists := fl.buckets[domain]
	fl.mutex.RUnlock()

	if !exists {
		fl.mutex.Lock()
		// Double-check pattern
		if bucket, exists = fl.buckets[domain]; !exists {
			bucket = NewTokenBucket(30, 1, 2*time.Second)
			fl.buckets[domain] = bucket
		}
		fl.mutex.Unlock()
	}

	return bucket.Allow()
}
