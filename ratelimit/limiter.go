// Package ratelimit provides per-subscription delivery rate limiting.
package ratelimit

import (
	"context"
	"sync"
	"time"
)

// Limiter implements token bucket rate limiting keyed by subscription ID.
type Limiter struct {
	mu      sync.Mutex
	buckets map[string]*bucket
}

type bucket struct {
	tokens    float64
	lastFill  time.Time
	rateLimit float64 // tokens per second
}

// New creates a new rate limiter.
func New() *Limiter {
	return &Limiter{
		buckets: make(map[string]*bucket),
	}
}

// Allow checks whether a subscription is allowed to proceed.
// A rateLimit of 0 means unlimited (always returns true).
func (l *Limiter) Allow(subID string, rateLimit int) bool {
	if rateLimit <= 0 {
		return true
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	b := l.getOrCreateBucket(subID, float64(rateLimit))
	b.refill()

	if b.tokens >= 1 {
		b.tokens--
		return true
	}
	return false
}

// Wait blocks until the rate limit allows the delivery or the context is
// cancelled. A rateLimit of 0 means unlimited (returns immediately).
func (l *Limiter) Wait(ctx context.Context, subID string, rateLimit int) error {
	if rateLimit <= 0 {
		return nil
	}

	for {
		if l.Allow(subID, rateLimit) {
			return nil
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(time.Duration(float64(time.Second) / float64(rateLimit))):
			// Try again after estimated wait.
		}
	}
}

// Reset clears the rate limit state for a subscription.
func (l *Limiter) Reset(subID string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	delete(l.buckets, subID)
}

func (l *Limiter) getOrCreateBucket(subID string, rateLimit float64) *bucket {
	b, ok := l.buckets[subID]
	if !ok {
		b = &bucket{
			tokens:    rateLimit, // start full
			lastFill:  time.Now(),
			rateLimit: rateLimit,
		}
		l.buckets[subID] = b
	}
	return b
}

func (b *bucket) refill() {
	now := time.Now()
	elapsed := now.Sub(b.lastFill).Seconds()
	b.tokens += elapsed * b.rateLimit
	if b.tokens > b.rateLimit {
		b.tokens = b.rateLimit // cap at burst size = rate limit
	}
	b.lastFill = now
}
