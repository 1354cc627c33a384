// Package event defines the internal application event consumed by Herald.
package event

// Event is a single internal event occurrence, as handed to Herald by the
// host application's dispatch bus. Events are transient: Herald never
// persists them.
type Event struct {
	// Name is the internal event name, e.g. "onAfterClientOpenTicket".
	Name string `json:"name"`

	// Params is the event's parameter set. Well-known keys (id, ip, email,
	// order_id, ...) are extracted into embed fields.
	Params map[string]any `json:"params,omitempty"`
}

// New creates an event with the given name and parameters.
func New(name string, params map[string]any) *Event {
	return &Event{Name: name, Params: params}
}
