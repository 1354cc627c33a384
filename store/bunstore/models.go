package bunstore

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/uptrace/bun"

	"github.com/herald-dev/herald/id"
	"github.com/herald-dev/herald/internal/entity"
	"github.com/herald-dev/herald/subscription"
)

type subscriptionModel struct {
	bun.BaseModel `bun:"table:herald_webhooks"`

	ID          string    `bun:"id,pk"`
	URL         string    `bun:"url,notnull"`
	Events      string    `bun:"events,notnull"` // JSON-encoded []string
	Active      bool      `bun:"active,notnull"`
	Description string    `bun:"description"`
	Secret      string    `bun:"secret"`
	Headers     string    `bun:"headers"` // JSON-encoded map, empty when unset
	RateLimit   int       `bun:"rate_limit"`
	CreatedAt   time.Time `bun:"created_at,notnull"`
	UpdatedAt   time.Time `bun:"updated_at,notnull"`
}

func toModel(sub *subscription.Subscription) (*subscriptionModel, error) {
	events, err := json.Marshal(sub.Events)
	if err != nil {
		return nil, fmt.Errorf("herald/bunstore: marshal events: %w", err)
	}

	headers := ""
	if len(sub.Headers) > 0 {
		raw, err := json.Marshal(sub.Headers)
		if err != nil {
			return nil, fmt.Errorf("herald/bunstore: marshal headers: %w", err)
		}
		headers = string(raw)
	}

	return &subscriptionModel{
		ID:          sub.ID.String(),
		URL:         sub.URL,
		Events:      string(events),
		Active:      sub.Active,
		Description: sub.Description,
		Secret:      sub.Secret,
		Headers:     headers,
		RateLimit:   sub.RateLimit,
		CreatedAt:   sub.CreatedAt,
		UpdatedAt:   sub.UpdatedAt,
	}, nil
}

func fromModel(m *subscriptionModel) (*subscription.Subscription, error) {
	subID, err := id.ParseSubscriptionID(m.ID)
	if err != nil {
		return nil, fmt.Errorf("herald/bunstore: parse subscription ID %q: %w", m.ID, err)
	}

	var events []string
	if m.Events != "" {
		if err := json.Unmarshal([]byte(m.Events), &events); err != nil {
			return nil, fmt.Errorf("herald/bunstore: unmarshal events: %w", err)
		}
	}

	var headers map[string]string
	if m.Headers != "" {
		if err := json.Unmarshal([]byte(m.Headers), &headers); err != nil {
			return nil, fmt.Errorf("herald/bunstore: unmarshal headers: %w", err)
		}
	}

	return &subscription.Subscription{
		Entity: entity.Entity{
			CreatedAt: m.CreatedAt,
			UpdatedAt: m.UpdatedAt,
		},
		ID:          subID,
		URL:         m.URL,
		Events:      events,
		Active:      m.Active,
		Description: m.Description,
		Secret:      m.Secret,
		Headers:     headers,
		RateLimit:   m.RateLimit,
	}, nil
}

func fromModels(models []subscriptionModel) ([]*subscription.Subscription, error) {
	result := make([]*subscription.Subscription, 0, len(models))
	for i := range models {
		sub, err := fromModel(&models[i])
		if err != nil {
			return nil, err
		}
		result = append(result, sub)
	}
	return result, nil
}
