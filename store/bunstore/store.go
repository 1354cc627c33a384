// Package bunstore implements store.Store on the Bun ORM.
//
// The store is dialect-agnostic: pass a *bun.DB configured with the
// pgdialect, sqlitedialect, or mysqldialect of your choice. The events
// interest set is stored as a JSON-encoded text column so the same model
// works across dialects.
package bunstore

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/uptrace/bun"

	"github.com/herald-dev/herald"
	"github.com/herald-dev/herald/id"
	heraldstore "github.com/herald-dev/herald/store"
	"github.com/herald-dev/herald/subscription"
)

// compile-time interface check.
var _ heraldstore.Store = (*Store)(nil)

// Store implements store.Store using the Bun ORM.
type Store struct {
	db *bun.DB
}

// New creates a new Bun-backed store.
func New(db *bun.DB) *Store {
	return &Store{db: db}
}

// DB returns the underlying Bun database for direct access.
func (s *Store) DB() *bun.DB { return s.db }

// Migrate creates the required tables and indexes.
func (s *Store) Migrate(ctx context.Context) error {
	if _, err := s.db.NewCreateTable().
		Model((*subscriptionModel)(nil)).
		IfNotExists().
		Exec(ctx); err != nil {
		return err
	}

	indexes := []string{
		"CREATE INDEX IF NOT EXISTS idx_herald_webhooks_active ON herald_webhooks (active)",
		"CREATE INDEX IF NOT EXISTS idx_herald_webhooks_created ON herald_webhooks (created_at)",
	}
	for _, ddl := range indexes {
		if _, err := s.db.ExecContext(ctx, ddl); err != nil {
			return err
		}
	}

	return nil
}

// Ping checks database connectivity.
func (s *Store) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// CreateSubscription persists a new subscription.
func (s *Store) CreateSubscription(ctx context.Context, sub *subscription.Subscription) error {
	m, err := toModel(sub)
	if err != nil {
		return err
	}
	_, err = s.db.NewInsert().Model(m).Exec(ctx)
	return err
}

// GetSubscription returns a subscription by ID.
func (s *Store) GetSubscription(ctx context.Context, subID id.ID) (*subscription.Subscription, error) {
	m := new(subscriptionModel)
	err := s.db.NewSelect().
		Model(m).
		Where("id = ?", subID.String()).
		Limit(1).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, herald.ErrSubscriptionNotFound
		}
		return nil, err
	}
	return fromModel(m)
}

// UpdateSubscription modifies an existing subscription.
func (s *Store) UpdateSubscription(ctx context.Context, sub *subscription.Subscription) error {
	m, err := toModel(sub)
	if err != nil {
		return err
	}
	m.UpdatedAt = time.Now().UTC()

	res, err := s.db.NewUpdate().
		Model(m).
		WherePK().
		Exec(ctx)
	if err != nil {
		return err
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return herald.ErrSubscriptionNotFound
	}
	return nil
}

// DeleteSubscription removes a subscription.
func (s *Store) DeleteSubscription(ctx context.Context, subID id.ID) error {
	res, err := s.db.NewDelete().
		Model((*subscriptionModel)(nil)).
		Where("id = ?", subID.String()).
		Exec(ctx)
	if err != nil {
		return err
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return herald.ErrSubscriptionNotFound
	}
	return nil
}

// ListSubscriptions returns subscriptions, optionally filtered.
func (s *Store) ListSubscriptions(ctx context.Context, opts subscription.ListOpts) ([]*subscription.Subscription, error) {
	var models []subscriptionModel
	q := s.db.NewSelect().Model(&models)

	if opts.Active != nil {
		q = q.Where("active = ?", *opts.Active)
	}
	if opts.Limit > 0 {
		q = q.Limit(opts.Limit)
	}
	if opts.Offset > 0 {
		q = q.Offset(opts.Offset)
	}
	q = q.Order("created_at ASC")

	if err := q.Scan(ctx); err != nil {
		return nil, err
	}

	return fromModels(models)
}

// ListActive returns the current snapshot of active subscriptions.
func (s *Store) ListActive(ctx context.Context) ([]*subscription.Subscription, error) {
	var models []subscriptionModel
	if err := s.db.NewSelect().
		Model(&models).
		Where("active = ?", true).
		Order("created_at ASC").
		Scan(ctx); err != nil {
		return nil, err
	}

	return fromModels(models)
}

// SetActive enables or disables a subscription.
func (s *Store) SetActive(ctx context.Context, subID id.ID, active bool) error {
	res, err := s.db.NewUpdate().
		Model((*subscriptionModel)(nil)).
		Set("active = ?", active).
		Set("updated_at = ?", time.Now().UTC()).
		Where("id = ?", subID.String()).
		Exec(ctx)
	if err != nil {
		return err
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return herald.ErrSubscriptionNotFound
	}
	return nil
}
