package subscription

import (
	"context"
	"log/slog"
	"net/url"

	"github.com/herald-dev/herald/id"
	"github.com/herald-dev/herald/internal/entity"
	"github.com/herald-dev/herald/signature"
)

// Service provides subscription management operations.
type Service struct {
	store  Store
	logger *slog.Logger
}

// NewService creates a new subscription service.
func NewService(store Store, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		store:  store,
		logger: logger,
	}
}

// Create registers a new webhook subscription.
func (svc *Service) Create(ctx context.Context, in Input) (*Subscription, error) {
	if err := validateURL(in.URL); err != nil {
		return nil, err
	}

	if len(in.Events) == 0 {
		return nil, &ValidationError{Field: "events", Message: "at least one subscribed event required"}
	}

	secret := in.Secret
	if secret == "" {
		secret = signature.GenerateSecret()
	}

	sub := &Subscription{
		Entity:      entity.New(),
		ID:          id.NewSubscriptionID(),
		URL:         in.URL,
		Events:      in.Events,
		Active:      in.Active,
		Description: in.Description,
		Secret:      secret,
		Headers:     in.Headers,
		RateLimit:   in.RateLimit,
	}

	if err := svc.store.CreateSubscription(ctx, sub); err != nil {
		return nil, err
	}

	return sub, nil
}

// Get returns a subscription by ID.
func (svc *Service) Get(ctx context.Context, subID id.ID) (*Subscription, error) {
	return svc.store.GetSubscription(ctx, subID)
}

// Update modifies an existing subscription.
func (svc *Service) Update(ctx context.Context, subID id.ID, in Input) (*Subscription, error) {
	sub, err := svc.store.GetSubscription(ctx, subID)
	if err != nil {
		return nil, err
	}

	if in.URL != "" {
		if err := validateURL(in.URL); err != nil {
			return nil, err
		}
		sub.URL = in.URL
	}
	if len(in.Events) > 0 {
		sub.Events = in.Events
	}
	if in.Description != "" {
		sub.Description = in.Description
	}
	if in.Headers != nil {
		sub.Headers = in.Headers
	}
	if in.RateLimit >= 0 {
		sub.RateLimit = in.RateLimit
	}
	sub.Active = in.Active

	if err := svc.store.UpdateSubscription(ctx, sub); err != nil {
		return nil, err
	}

	return sub, nil
}

// Delete removes a subscription.
func (svc *Service) Delete(ctx context.Context, subID id.ID) error {
	return svc.store.DeleteSubscription(ctx, subID)
}

// List returns subscriptions, optionally filtered.
func (svc *Service) List(ctx context.Context, opts ListOpts) ([]*Subscription, error) {
	return svc.store.ListSubscriptions(ctx, opts)
}

// SetActive enables or disables a subscription.
func (svc *Service) SetActive(ctx context.Context, subID id.ID, active bool) error {
	return svc.store.SetActive(ctx, subID, active)
}

// RotateSecret generates a new signing secret for a subscription.
func (svc *Service) RotateSecret(ctx context.Context, subID id.ID) (string, error) {
	sub, err := svc.store.GetSubscription(ctx, subID)
	if err != nil {
		return "", err
	}

	newSecret := signature.GenerateSecret()

	sub.Secret = newSecret
	if err := svc.store.UpdateSubscription(ctx, sub); err != nil {
		return "", err
	}

	return newSecret, nil
}

// validateURL rejects anything but absolute http(s) URLs. Syntactic
// validity is the management layer's job; the dispatch path trusts it.
func validateURL(raw string) error {
	u, err := url.ParseRequestURI(raw)
	if err != nil {
		return &ValidationError{Field: "url", Message: "invalid URL"}
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return &ValidationError{Field: "url", Message: "scheme must be http or https"}
	}
	if u.Host == "" {
		return &ValidationError{Field: "url", Message: "missing host"}
	}
	return nil
}

// ValidationError indicates invalid input.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return "subscription validation: " + e.Field + ": " + e.Message
}
