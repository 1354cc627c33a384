// Package store defines the aggregate Store interface for Herald persistence.
//
// The only persisted entity is the webhook subscription; events and payloads
// are transient. Backends compose subscription.Store with lifecycle
// operations.
package store

import (
	"context"

	"github.com/herald-dev/herald/subscription"
)

// Store is the aggregate persistence interface.
type Store interface {
	subscription.Store

	// Migrate runs all schema migrations.
	Migrate(ctx context.Context) error

	// Ping checks backend connectivity.
	Ping(ctx context.Context) error

	// Close closes the store connection.
	Close() error
}
