package subscription

import (
	"context"

	"github.com/herald-dev/herald/id"
)

// Store defines the persistence contract for webhook subscriptions.
// The dispatch path only ever reads; all mutation comes from the
// management surface.
type Store interface {
	// CreateSubscription persists a new subscription.
	CreateSubscription(ctx context.Context, sub *Subscription) error

	// GetSubscription returns a subscription by ID.
	GetSubscription(ctx context.Context, subID id.ID) (*Subscription, error)

	// UpdateSubscription modifies an existing subscription.
	UpdateSubscription(ctx context.Context, sub *Subscription) error

	// DeleteSubscription removes a subscription.
	DeleteSubscription(ctx context.Context, subID id.ID) error

	// ListSubscriptions returns subscriptions, optionally filtered.
	ListSubscriptions(ctx context.Context, opts ListOpts) ([]*Subscription, error)

	// ListActive returns the current snapshot of active subscriptions.
	// This is the hot path, called once per dispatched event.
	ListActive(ctx context.Context) ([]*Subscription, error)

	// SetActive enables or disables a subscription without deleting it.
	SetActive(ctx context.Context, subID id.ID, active bool) error
}
