package ratelimit_test

import (
	"context"
	"testing"
	"time"

	"github.com/herald-dev/herald/ratelimit"
)

func TestAllowUnlimited(t *testing.T) {
	l := ratelimit.New()

	for i := 0; i < 100; i++ {
		if !l.Allow("sub-1", 0) {
			t.Fatal("zero rate limit means unlimited")
		}
	}
}

func TestAllowExhaustsBucket(t *testing.T) {
	l := ratelimit.New()

	// Bucket starts full with `rate` tokens.
	for i := 0; i < 3; i++ {
		if !l.Allow("sub-1", 3) {
			t.Fatalf("allowance %d should pass", i)
		}
	}
	if l.Allow("sub-1", 3) {
		t.Fatal("bucket should be exhausted")
	}
}

func TestBucketsAreIndependent(t *testing.T) {
	l := ratelimit.New()

	for i := 0; i < 2; i++ {
		l.Allow("sub-1", 2)
	}
	if l.Allow("sub-1", 2) {
		t.Fatal("sub-1 exhausted")
	}
	if !l.Allow("sub-2", 2) {
		t.Fatal("sub-2 must have its own bucket")
	}
}

func TestReset(t *testing.T) {
	l := ratelimit.New()

	for i := 0; i < 2; i++ {
		l.Allow("sub-1", 2)
	}
	l.Reset("sub-1")

	if !l.Allow("sub-1", 2) {
		t.Fatal("reset should refill the bucket")
	}
}

func TestWaitRespectsContext(t *testing.T) {
	l := ratelimit.New()

	// Exhaust a slow bucket.
	l.Allow("sub-1", 1)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	if err := l.Wait(ctx, "sub-1", 1); err == nil {
		t.Fatal("Wait must give up when the context expires")
	}
}

func TestWaitUnlimitedReturnsImmediately(t *testing.T) {
	l := ratelimit.New()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := l.Wait(ctx, "sub-1", 0); err != nil {
		t.Fatalf("unlimited Wait must not consult the context: %v", err)
	}
}

func TestRefillOverTime(t *testing.T) {
	l := ratelimit.New()

	// Drain a fast bucket, then wait for a refill.
	for i := 0; i < 20; i++ {
		l.Allow("sub-1", 20)
	}
	if l.Allow("sub-1", 20) {
		t.Fatal("bucket should be empty")
	}

	time.Sleep(100 * time.Millisecond) // 20/s refills 2 tokens in 100ms

	if !l.Allow("sub-1", 20) {
		t.Fatal("bucket should have refilled")
	}
}
