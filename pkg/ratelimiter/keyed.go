package ratelimiter

import "time"

// BucketStore holds one bucket per key. Implementations must make the
// lookup and the insert of a missing bucket atomic.
type BucketStore interface {
	GetOrCreate(key string, create func() interface{}) interface{}
}

// KeyedLimiter gives every key (usually a client address) its own bucket.
type KeyedLimiter struct {
	store      BucketStore
	capacity   int64
	refillRate int64
}

func NewKeyedLimiter(store BucketStore, capacity, refillRate int64) *KeyedLimiter {
	return &KeyedLimiter{store: store, capacity: capacity, refillRate: refillRate}
}

// Allow takes a token from key's bucket. When the bucket is empty it
// returns false and the time until the next token.
func (k *KeyedLimiter) Allow(key string) (bool, time.Duration) {
	bucket := k.bucket(key)
	if bucket.TakeToken() {
		return true, 0
	}
	return false, bucket.RetryAfter()
}

func (k *KeyedLimiter) bucket(key string) RateLimiter {
	v := k.store.GetOrCreate("ratelimit:"+key, func() interface{} {
		return NewTokenBucket(k.capacity, k.refillRate)
	})
	return v.(RateLimiter)
}
