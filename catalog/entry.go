package catalog

import "encoding/json"

// Entry is the notification template for a single recognized event name.
// Entries are static data: the catalog is assembled once at construction
// and never mutated afterwards.
type Entry struct {
	// Name is the internal event name fired by the host application,
	// e.g. "onAfterClientOpenTicket".
	Name string `json:"name"`

	// Label is the short human title shown as the embed title.
	Label string `json:"label"`

	// Description is a one-sentence explanation of when the event fires.
	Description string `json:"description"`

	// Severity selects the embed color.
	Severity Severity `json:"severity"`

	// Schema is an optional JSON Schema (draft-07) describing the event's
	// parameter set. When set, OnEvent validates parameters before building
	// a notification; invalid parameter sets are logged and dropped.
	Schema json.RawMessage `json:"schema,omitempty"`
}
