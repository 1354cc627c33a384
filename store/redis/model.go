package redis

import (
	"time"

	"github.com/herald-dev/herald/id"
	"github.com/herald-dev/herald/internal/entity"
	"github.com/herald-dev/herald/subscription"
)

// subscriptionDoc is the persisted form. The Subscription type elides the
// secret from its JSON encoding, so the document carries it explicitly.
type subscriptionDoc struct {
	ID          string            `json:"id"`
	URL         string            `json:"url"`
	Events      []string          `json:"events"`
	Active      bool              `json:"active"`
	Description string            `json:"description,omitempty"`
	Secret      string            `json:"secret,omitempty"`
	Headers     map[string]string `json:"headers,omitempty"`
	RateLimit   int               `json:"rate_limit,omitempty"`
	CreatedAt   time.Time         `json:"created_at"`
	UpdatedAt   time.Time         `json:"updated_at"`
}

func toDoc(sub *subscription.Subscription) *subscriptionDoc {
	return &subscriptionDoc{
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

func fromDoc(doc *subscriptionDoc) (*subscription.Subscription, error) {
	subID, err := id.ParseSubscriptionID(doc.ID)
	if err != nil {
		return nil, err
	}
	return &subscription.Subscription{
		Entity: entity.Entity{
			CreatedAt: doc.CreatedAt,
			UpdatedAt: doc.UpdatedAt,
		},
		ID:          subID,
		URL:         doc.URL,
		Events:      doc.Events,
		Active:      doc.Active,
		Description: doc.Description,
		Secret:      doc.Secret,
		Headers:     doc.Headers,
		RateLimit:   doc.RateLimit,
	}, nil
}
