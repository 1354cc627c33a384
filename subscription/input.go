package subscription

// Input is the creation/update payload for subscriptions.
type Input struct {
	// URL is the webhook delivery URL. Must be an absolute http(s) URL.
	URL string `json:"url"`

	// Events is the set of subscribed event names; "all_events" subscribes
	// to everything.
	Events []string `json:"events"`

	// Active controls whether the subscription receives deliveries.
	Active bool `json:"active"`

	// Description is a human-readable note.
	Description string `json:"description"`

	// Secret is the HMAC signing secret. Auto-generated if empty on create.
	Secret string `json:"secret"`

	// Headers are custom HTTP headers sent with each delivery.
	Headers map[string]string `json:"headers,omitempty"`

	// RateLimit is the maximum deliveries per second. 0 means unlimited.
	RateLimit int `json:"rate_limit"`
}

// ListOpts configures filtering and pagination for subscription listing.
type ListOpts struct {
	Offset int
	Limit  int
	Active *bool
}
