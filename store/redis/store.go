// Package redis implements store.Store on Redis.
//
// Subscriptions are stored as JSON documents keyed by ID, with a set index
// for listing. Suited to deployments that already run Redis and want the
// subscription registry to live next to their cache.
package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/herald-dev/herald"
	"github.com/herald-dev/herald/id"
	heraldstore "github.com/herald-dev/herald/store"
	"github.com/herald-dev/herald/subscription"
)

// compile-time interface check.
var _ heraldstore.Store = (*Store)(nil)

// Store implements store.Store using Redis.
type Store struct {
	client goredis.UniversalClient
}

// New creates a Redis-backed store from an existing client.
func New(client goredis.UniversalClient) *Store {
	return &Store{client: client}
}

// NewFromOptions creates a Redis-backed store with its own client.
func NewFromOptions(opts *goredis.Options) *Store {
	return &Store{client: goredis.NewClient(opts)}
}

// Migrate is a no-op; Redis needs no schema.
func (s *Store) Migrate(_ context.Context) error { return nil }

// Ping checks Redis connectivity.
func (s *Store) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}

// Close closes the underlying client.
func (s *Store) Close() error {
	return s.client.Close()
}

// CreateSubscription persists a new subscription.
func (s *Store) CreateSubscription(ctx context.Context, sub *subscription.Subscription) error {
	raw, err := json.Marshal(toDoc(sub))
	if err != nil {
		return fmt.Errorf("herald/redis: marshal subscription: %w", err)
	}

	pipe := s.client.TxPipeline()
	pipe.Set(ctx, subKey(sub.ID.String()), raw, 0)
	pipe.SAdd(ctx, subIndexKey, sub.ID.String())
	_, err = pipe.Exec(ctx)
	return err
}

// GetSubscription returns a subscription by ID.
func (s *Store) GetSubscription(ctx context.Context, subID id.ID) (*subscription.Subscription, error) {
	raw, err := s.client.Get(ctx, subKey(subID.String())).Bytes()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return nil, herald.ErrSubscriptionNotFound
		}
		return nil, err
	}
	return decodeSubscription(raw)
}

// UpdateSubscription modifies an existing subscription.
func (s *Store) UpdateSubscription(ctx context.Context, sub *subscription.Subscription) error {
	key := subKey(sub.ID.String())

	exists, err := s.client.Exists(ctx, key).Result()
	if err != nil {
		return err
	}
	if exists == 0 {
		return herald.ErrSubscriptionNotFound
	}

	sub.UpdatedAt = time.Now().UTC()
	raw, err := json.Marshal(toDoc(sub))
	if err != nil {
		return fmt.Errorf("herald/redis: marshal subscription: %w", err)
	}
	return s.client.Set(ctx, key, raw, 0).Err()
}

// DeleteSubscription removes a subscription.
func (s *Store) DeleteSubscription(ctx context.Context, subID id.ID) error {
	pipe := s.client.TxPipeline()
	delCmd := pipe.Del(ctx, subKey(subID.String()))
	pipe.SRem(ctx, subIndexKey, subID.String())
	if _, err := pipe.Exec(ctx); err != nil {
		return err
	}
	if delCmd.Val() == 0 {
		return herald.ErrSubscriptionNotFound
	}
	return nil
}

// ListSubscriptions returns subscriptions, optionally filtered.
func (s *Store) ListSubscriptions(ctx context.Context, opts subscription.ListOpts) ([]*subscription.Subscription, error) {
	subs, err := s.loadAll(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]*subscription.Subscription, 0, len(subs))
	for _, sub := range subs {
		if opts.Active != nil && sub.Active != *opts.Active {
			continue
		}
		result = append(result, sub)
	}

	if opts.Offset > 0 {
		if opts.Offset >= len(result) {
			return nil, nil
		}
		result = result[opts.Offset:]
	}
	if opts.Limit > 0 && opts.Limit < len(result) {
		result = result[:opts.Limit]
	}
	return result, nil
}

// ListActive returns the current snapshot of active subscriptions.
func (s *Store) ListActive(ctx context.Context) ([]*subscription.Subscription, error) {
	subs, err := s.loadAll(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]*subscription.Subscription, 0, len(subs))
	for _, sub := range subs {
		if sub.Active {
			result = append(result, sub)
		}
	}
	return result, nil
}

// SetActive enables or disables a subscription.
func (s *Store) SetActive(ctx context.Context, subID id.ID, active bool) error {
	sub, err := s.GetSubscription(ctx, subID)
	if err != nil {
		return err
	}
	sub.Active = active
	return s.UpdateSubscription(ctx, sub)
}

// loadAll fetches every subscription document via the ID index, sorted by
// creation time. MGET keeps it to two round trips regardless of count.
func (s *Store) loadAll(ctx context.Context) ([]*subscription.Subscription, error) {
	ids, err := s.client.SMembers(ctx, subIndexKey).Result()
	if err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return nil, nil
	}

	keys := make([]string, len(ids))
	for i, sid := range ids {
		keys[i] = subKey(sid)
	}

	vals, err := s.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, err
	}

	subs := make([]*subscription.Subscription, 0, len(vals))
	for _, v := range vals {
		raw, ok := v.(string)
		if !ok {
			// index entry with no document; skip stale IDs
			continue
		}
		sub, err := decodeSubscription([]byte(raw))
		if err != nil {
			return nil, err
		}
		subs = append(subs, sub)
	}

	sort.Slice(subs, func(i, j int) bool {
		return subs[i].CreatedAt.Before(subs[j].CreatedAt)
	})
	return subs, nil
}

func decodeSubscription(raw []byte) (*subscription.Subscription, error) {
	doc := new(subscriptionDoc)
	if err := json.Unmarshal(raw, doc); err != nil {
		return nil, fmt.Errorf("herald/redis: unmarshal subscription: %w", err)
	}
	return fromDoc(doc)
}
