// Package ratelimiter provides token buckets for limiting inbound requests.
package ratelimiter

import (
	"sync"
	"time"
)

type RateLimiter interface {
	TakeToken() bool
	RetryAfter() time.Duration
}

type TokenBucket struct {
	capacity   int64
	tokens     int64
	refillRate int64
	lastRefill time.Time
	now        func() time.Time
	mu         sync.Mutex
}

func NewTokenBucket(capacity, refillRate int64) *TokenBucket {
	return newTokenBucket(capacity, refillRate, time.Now)
}

func newTokenBucket(capacity, refillRate int64, now func() time.Time) *TokenBucket {
	// Ensure positive values to prevent issues
	if capacity <= 0 {
		capacity = 1
	}
	if refillRate <= 0 {
		refillRate = 1
	}

	return &TokenBucket{
		capacity:   capacity,
		tokens:     capacity,
		refillRate: refillRate,
		lastRefill: now(),
		now:        now,
	}
}

func (tb *TokenBucket) TakeToken() bool {
	tb.mu.Lock()
	defer tb.mu.Unlock()

	tb.refill()
	if tb.tokens > 0 {
		tb.tokens--
		return true
	}
	return false
}

// RetryAfter is the time until the next token is available, zero if one is.
func (tb *TokenBucket) RetryAfter() time.Duration {
	tb.mu.Lock()
	defer tb.mu.Unlock()

	tb.refill()
	if tb.tokens > 0 {
		return 0
	}
	perToken := time.Second / time.Duration(tb.refillRate)
	wait := perToken - tb.now().Sub(tb.lastRefill)
	if wait < 0 {
		return 0
	}
	return wait
}

// refill adds whole tokens for the elapsed time and keeps the remainder
// so that frequent calls do not starve the bucket.
func (tb *TokenBucket) refill() {
	now := tb.now()
	perToken := time.Second / time.Duration(tb.refillRate)
	elapsed := now.Sub(tb.lastRefill)
	if elapsed < perToken {
		return
	}

	tokensToAdd := int64(elapsed / perToken)
	tb.tokens = min(tb.capacity, tb.tokens+tokensToAdd)
	if tb.tokens == tb.capacity {
		tb.lastRefill = now
		return
	}
	tb.lastRefill = tb.lastRefill.Add(time.Duration(tokensToAdd) * perToken)
}

func min(a, b int64) int64 {
	if a < b {
		return a
	}
	return b
}
