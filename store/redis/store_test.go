package redis_test

import (
	"context"
	"errors"
	"testing"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"

	"github.com/herald-dev/herald"
	"github.com/herald-dev/herald/id"
	"github.com/herald-dev/herald/internal/entity"
	redisstore "github.com/herald-dev/herald/store/redis"
	"github.com/herald-dev/herald/subscription"
)

func newTestStore(t *testing.T) *redisstore.Store {
	t.Helper()

	mr := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	return redisstore.New(client)
}

func newSub(active bool, events ...string) *subscription.Subscription {
	return &subscription.Subscription{
		Entity:    entity.New(),
		ID:        id.NewSubscriptionID(),
		URL:       "https://hooks.example.com/x",
		Events:    events,
		Active:    active,
		Secret:    "whsec_redis_test",
		Headers:   map[string]string{"X-Env": "test"},
		RateLimit: 5,
	}
}

func TestRedisCRUD(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	sub := newSub(true, "a", "b")
	if err := s.CreateSubscription(ctx, sub); err != nil {
		t.Fatal(err)
	}

	got, err := s.GetSubscription(ctx, sub.ID)
	if err != nil {
		t.Fatal(err)
	}
	if got.ID != sub.ID || got.URL != sub.URL {
		t.Fatalf("roundtrip mismatch: %+v", got)
	}
	if got.Secret != "whsec_redis_test" {
		t.Fatal("secret must survive persistence")
	}
	if len(got.Events) != 2 {
		t.Fatalf("events: %v", got.Events)
	}
	if got.Headers["X-Env"] != "test" {
		t.Fatalf("headers: %v", got.Headers)
	}
	if got.RateLimit != 5 {
		t.Fatalf("rate limit: %d", got.RateLimit)
	}

	got.URL = "https://hooks.example.com/updated"
	if err := s.UpdateSubscription(ctx, got); err != nil {
		t.Fatal(err)
	}
	updated, err := s.GetSubscription(ctx, sub.ID)
	if err != nil {
		t.Fatal(err)
	}
	if updated.URL != "https://hooks.example.com/updated" {
		t.Fatalf("url: %q", updated.URL)
	}

	if err := s.DeleteSubscription(ctx, sub.ID); err != nil {
		t.Fatal(err)
	}
	if _, err := s.GetSubscription(ctx, sub.ID); !errors.Is(err, herald.ErrSubscriptionNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestRedisNotFound(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	missing := id.NewSubscriptionID()

	if _, err := s.GetSubscription(ctx, missing); !errors.Is(err, herald.ErrSubscriptionNotFound) {
		t.Fatal("get")
	}
	if err := s.UpdateSubscription(ctx, newSub(true, "a")); !errors.Is(err, herald.ErrSubscriptionNotFound) {
		t.Fatal("update")
	}
	if err := s.DeleteSubscription(ctx, missing); !errors.Is(err, herald.ErrSubscriptionNotFound) {
		t.Fatal("delete")
	}
}

func TestRedisListActive(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	for _, active := range []bool{true, false, true} {
		if err := s.CreateSubscription(ctx, newSub(active, "a")); err != nil {
			t.Fatal(err)
		}
	}

	active, err := s.ListActive(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(active) != 2 {
		t.Fatalf("expected 2 active, got %d", len(active))
	}
}

func TestRedisListPagination(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	for i := 0; i < 4; i++ {
		if err := s.CreateSubscription(ctx, newSub(true, "a")); err != nil {
			t.Fatal(err)
		}
	}

	page, err := s.ListSubscriptions(ctx, subscription.ListOpts{Offset: 1, Limit: 2})
	if err != nil {
		t.Fatal(err)
	}
	if len(page) != 2 {
		t.Fatalf("expected 2, got %d", len(page))
	}
}

func TestRedisSetActive(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	sub := newSub(false, "a")
	if err := s.CreateSubscription(ctx, sub); err != nil {
		t.Fatal(err)
	}

	if err := s.SetActive(ctx, sub.ID, true); err != nil {
		t.Fatal(err)
	}

	got, err := s.GetSubscription(ctx, sub.ID)
	if err != nil {
		t.Fatal(err)
	}
	if !got.Active {
		t.Fatal("should be active")
	}
}
