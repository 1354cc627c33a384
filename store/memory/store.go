// Package memory provides an in-memory Store implementation for unit testing.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/herald-dev/herald"
	"github.com/herald-dev/herald/id"
	heraldstore "github.com/herald-dev/herald/store"
	"github.com/herald-dev/herald/subscription"
)

// compile-time interface check.
var _ heraldstore.Store = (*Store)(nil)

// Store is an in-memory implementation of store.Store for testing.
type Store struct {
	mu sync.RWMutex

	subs map[string]*subscription.Subscription // keyed by ID string

	closed bool
}

// New creates a new in-memory store.
func New() *Store {
	return &Store{
		subs: make(map[string]*subscription.Subscription),
	}
}

// Migrate is a no-op for the in-memory store.
func (s *Store) Migrate(_ context.Context) error { return nil }

// Ping reports whether the store is still open.
func (s *Store) Ping(_ context.Context) error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.closed {
		return herald.ErrStoreClosed
	}
	return nil
}

// Close marks the store as closed.
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	return nil
}

// CreateSubscription persists a new subscription.
func (s *Store) CreateSubscription(_ context.Context, sub *subscription.Subscription) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.subs[sub.ID.String()] = sub
	return nil
}

// GetSubscription returns a subscription by ID.
func (s *Store) GetSubscription(_ context.Context, subID id.ID) (*subscription.Subscription, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sub, ok := s.subs[subID.String()]
	if !ok {
		return nil, herald.ErrSubscriptionNotFound
	}
	return sub, nil
}

// UpdateSubscription modifies an existing subscription.
func (s *Store) UpdateSubscription(_ context.Context, sub *subscription.Subscription) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.subs[sub.ID.String()]; !ok {
		return herald.ErrSubscriptionNotFound
	}
	sub.UpdatedAt = time.Now().UTC()
	s.subs[sub.ID.String()] = sub
	return nil
}

// DeleteSubscription removes a subscription.
func (s *Store) DeleteSubscription(_ context.Context, subID id.ID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.subs[subID.String()]; !ok {
		return herald.ErrSubscriptionNotFound
	}
	delete(s.subs, subID.String())
	return nil
}

// ListSubscriptions returns subscriptions, optionally filtered.
func (s *Store) ListSubscriptions(_ context.Context, opts subscription.ListOpts) ([]*subscription.Subscription, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]*subscription.Subscription, 0, len(s.subs))
	for _, sub := range s.subs {
		if opts.Active != nil && sub.Active != *opts.Active {
			continue
		}
		result = append(result, sub)
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].CreatedAt.Before(result[j].CreatedAt)
	})

	result = applyPagination(result, opts.Offset, opts.Limit)
	return result, nil
}

// ListActive returns the current snapshot of active subscriptions.
func (s *Store) ListActive(_ context.Context) ([]*subscription.Subscription, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]*subscription.Subscription, 0, len(s.subs))
	for _, sub := range s.subs {
		if !sub.Active {
			continue
		}
		result = append(result, sub)
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].CreatedAt.Before(result[j].CreatedAt)
	})
	return result, nil
}

// SetActive enables or disables a subscription.
func (s *Store) SetActive(_ context.Context, subID id.ID, active bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	sub, ok := s.subs[subID.String()]
	if !ok {
		return herald.ErrSubscriptionNotFound
	}
	sub.Active = active
	sub.UpdatedAt = time.Now().UTC()
	return nil
}

func applyPagination[T any](items []*T, offset, limit int) []*T {
	if offset > 0 && offset < len(items) {
		items = items[offset:]
	} else if offset >= len(items) && offset > 0 {
		return nil
	}

	if limit > 0 && limit < len(items) {
		items = items[:limit]
	}

	return items
}
