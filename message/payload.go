// Package message builds the notification payloads delivered to webhooks.
//
// A payload is constructed exactly once per dispatched event and reused
// verbatim for every recipient: field values and the embed timestamp never
// vary per destination.
package message

// Field is a single name/value pair rendered inside an embed.
type Field struct {
	Name   string `json:"name"`
	Value  string `json:"value"`
	Inline bool   `json:"inline"`
}

// Footer is the fixed application signature attached to every embed.
type Footer struct {
	Text    string `json:"text"`
	IconURL string `json:"icon_url"`
}

// Embed is a structured, richly formatted message block.
// Title, Description, and URL serialize as null when unset.
type Embed struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	URL         *string `json:"url"`
	Color       int     `json:"color"`
	Fields      []Field `json:"fields"`
	Footer      Footer  `json:"footer"`
	Timestamp   string  `json:"timestamp"`
}

// Payload is the wire body POSTed to each webhook.
// Content is present only when non-empty; the embeds key is absent
// entirely when no embeds were supplied.
type Payload struct {
	Content string  `json:"content,omitempty"`
	Embeds  []Embed `json:"embeds,omitempty"`
}

// EmbedSpec is the caller-facing description of an embed before defaults
// are applied. Zero values mean "unset": title/description/url become null,
// color falls back to the info severity color, and fields become an empty
// list. Footer and timestamp are never caller-controlled.
type EmbedSpec struct {
	Title       string
	Description string
	URL         string
	Color       int
	Fields      []Field
}
