package mongo

import (
	"time"

	"github.com/herald-dev/herald/id"
	"github.com/herald-dev/herald/internal/entity"
	"github.com/herald-dev/herald/subscription"
)

type subscriptionModel struct {
	ID          string            `bson:"_id"`
	URL         string            `bson:"url"`
	Events      []string          `bson:"events"`
	Active      bool              `bson:"active"`
	Description string            `bson:"description,omitempty"`
	Secret      string            `bson:"secret,omitempty"`
	Headers     map[string]string `bson:"headers,omitempty"`
	RateLimit   int               `bson:"rate_limit,omitempty"`
	CreatedAt   time.Time         `bson:"created_at"`
	UpdatedAt   time.Time         `bson:"updated_at"`
}

func toModel(sub *subscription.Subscription) *subscriptionModel {
	return &subscriptionModel{
		ID:          sub.ID.String(),
		URL:         sub.URL,
		Events:      sub.Events,
		Active:      sub.Active,
		Description: sub.Description,
		Secret:      sub.Secret,
		Headers:     sub.Headers,
		RateLimit:   sub.RateLimit,
		CreatedAt:   sub.CreatedAt,
		UpdatedAt:   sub.UpdatedAt,
	}
}

func fromModel(m *subscriptionModel) (*subscription.Subscription, error) {
	subID, err := id.ParseSubscriptionID(m.ID)
	if err != nil {
		return nil, err
	}
	return &subscription.Subscription{
		Entity: entity.Entity{
			CreatedAt: m.CreatedAt,
			UpdatedAt: m.UpdatedAt,
		},
		ID:          subID,
		URL:         m.URL,
		Events:      m.Events,
		Active:      m.Active,
		Description: m.Description,
		Secret:      m.Secret,
		Headers:     m.Headers,
		RateLimit:   m.RateLimit,
	}, nil
}
