// Package subscription manages registered webhook endpoints and their
// event interest sets.
package subscription

import (
	"github.com/herald-dev/herald/id"
	"github.com/herald-dev/herald/internal/entity"
)

// AllEvents is the sentinel interest value that subscribes an endpoint to
// every recognized event regardless of name.
const AllEvents = "all_events"

// Subscription is a registered webhook destination plus its interest set.
type Subscription struct {
	entity.Entity

	// ID is the unique TypeID for this subscription.
	ID id.ID `json:"id"`

	// URL is the webhook delivery URL.
	URL string `json:"url"`

	// Events is the set of subscribed event names. The AllEvents sentinel
	// subscribes to everything. An empty set receives no deliveries.
	Events []string `json:"events"`

	// Active indicates whether the subscription participates in delivery.
	Active bool `json:"active"`

	// Description is a human-readable note about this destination.
	Description string `json:"description,omitempty"`

	// Secret is the HMAC signing secret for this subscription. Never serialized.
	Secret string `json:"-"`

	// Headers are custom HTTP headers sent with each delivery.
	Headers map[string]string `json:"headers,omitempty"`

	// RateLimit is the maximum deliveries per second. 0 means unlimited.
	RateLimit int `json:"rate_limit"`
}

// Matches reports whether this subscription is interested in the event.
// Listing both AllEvents and specific names redundantly is allowed and
// behaves identically to either alone.
func (s *Subscription) Matches(eventName string) bool {
	for _, e := range s.Events {
		if e == eventName || e == AllEvents {
			return true
		}
	}
	return false
}
