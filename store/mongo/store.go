// Package mongo implements store.Store on MongoDB using the official
// driver.
package mongo

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	mongodrv "go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/herald-dev/herald"
	"github.com/herald-dev/herald/id"
	heraldstore "github.com/herald-dev/herald/store"
	"github.com/herald-dev/herald/subscription"
)

const collectionName = "herald_webhooks"

// compile-time interface check.
var _ heraldstore.Store = (*Store)(nil)

// Store implements store.Store using MongoDB.
type Store struct {
	client *mongodrv.Client
	db     *mongodrv.Database
}

// New creates a MongoDB-backed store from an existing client.
func New(client *mongodrv.Client, database string) *Store {
	return &Store{
		client: client,
		db:     client.Database(database),
	}
}

// Connect creates a MongoDB-backed store with its own client.
func Connect(ctx context.Context, uri, database string) (*Store, error) {
	client, err := mongodrv.Connect(options.Client().ApplyURI(uri))
	if err != nil {
		return nil, err
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(ctx)
		return nil, err
	}
	return New(client, database), nil
}

func (s *Store) subs() *mongodrv.Collection {
	return s.db.Collection(collectionName)
}

// Migrate creates the required indexes.
func (s *Store) Migrate(ctx context.Context) error {
	_, err := s.subs().Indexes().CreateMany(ctx, []mongodrv.IndexModel{
		{Keys: bson.D{{Key: "active", Value: 1}}},
		{Keys: bson.D{{Key: "created_at", Value: 1}}},
	})
	return err
}

// Ping checks MongoDB connectivity.
func (s *Store) Ping(ctx context.Context) error {
	return s.client.Ping(ctx, nil)
}

// Close disconnects the client.
func (s *Store) Close() error {
	return s.client.Disconnect(context.Background())
}

// CreateSubscription persists a new subscription.
func (s *Store) CreateSubscription(ctx context.Context, sub *subscription.Subscription) error {
	_, err := s.subs().InsertOne(ctx, toModel(sub))
	return err
}

// GetSubscription returns a subscription by ID.
func (s *Store) GetSubscription(ctx context.Context, subID id.ID) (*subscription.Subscription, error) {
	m := new(subscriptionModel)
	err := s.subs().FindOne(ctx, bson.M{"_id": subID.String()}).Decode(m)
	if err != nil {
		if errors.Is(err, mongodrv.ErrNoDocuments) {
			return nil, herald.ErrSubscriptionNotFound
		}
		return nil, err
	}
	return fromModel(m)
}

// UpdateSubscription modifies an existing subscription.
func (s *Store) UpdateSubscription(ctx context.Context, sub *subscription.Subscription) error {
	m := toModel(sub)
	m.UpdatedAt = time.Now().UTC()

	res, err := s.subs().ReplaceOne(ctx, bson.M{"_id": m.ID}, m)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return herald.ErrSubscriptionNotFound
	}
	return nil
}

// DeleteSubscription removes a subscription.
func (s *Store) DeleteSubscription(ctx context.Context, subID id.ID) error {
	res, err := s.subs().DeleteOne(ctx, bson.M{"_id": subID.String()})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return herald.ErrSubscriptionNotFound
	}
	return nil
}

// ListSubscriptions returns subscriptions, optionally filtered.
func (s *Store) ListSubscriptions(ctx context.Context, opts subscription.ListOpts) ([]*subscription.Subscription, error) {
	filter := bson.M{}
	if opts.Active != nil {
		filter["active"] = *opts.Active
	}

	findOpts := options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}})
	if opts.Offset > 0 {
		findOpts = findOpts.SetSkip(int64(opts.Offset))
	}
	if opts.Limit > 0 {
		findOpts = findOpts.SetLimit(int64(opts.Limit))
	}

	return s.find(ctx, filter, findOpts)
}

// ListActive returns the current snapshot of active subscriptions.
func (s *Store) ListActive(ctx context.Context) ([]*subscription.Subscription, error) {
	return s.find(ctx, bson.M{"active": true},
		options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}}))
}

// SetActive enables or disables a subscription.
func (s *Store) SetActive(ctx context.Context, subID id.ID, active bool) error {
	res, err := s.subs().UpdateOne(ctx,
		bson.M{"_id": subID.String()},
		bson.M{"$set": bson.M{"active": active, "updated_at": time.Now().UTC()}},
	)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return herald.ErrSubscriptionNotFound
	}
	return nil
}

func (s *Store) find(ctx context.Context, filter bson.M, findOpts *options.FindOptionsBuilder) ([]*subscription.Subscription, error) {
	cur, err := s.subs().Find(ctx, filter, findOpts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var result []*subscription.Subscription
	for cur.Next(ctx) {
		m := new(subscriptionModel)
		if err := cur.Decode(m); err != nil {
			return nil, err
		}
		sub, err := fromModel(m)
		if err != nil {
			return nil, err
		}
		result = append(result, sub)
	}
	return result, cur.Err()
}
