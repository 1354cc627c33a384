package message

import (
	"time"

	"github.com/herald-dev/herald/catalog"
)

// Signature identifies the sending application in every embed footer.
type Signature struct {
	// Name is the application name, e.g. "Acme Billing".
	Name string

	// Version is the application version string.
	Version string

	// IconURL is the footer icon.
	IconURL string
}

// DefaultSignature is used when the host does not configure its own.
var DefaultSignature = Signature{
	Name:    "Herald",
	Version: "1.0",
}

// footerText renders the fixed footer text, e.g. "Herald v1.0".
func (s Signature) footerText() string {
	return s.Name + " v" + s.Version
}

// Builder assembles payloads from embed specs, stamping each embed with the
// application signature and a build-time timestamp.
type Builder struct {
	sig Signature
}

// NewBuilder creates a builder carrying the given application signature.
// A zero-value signature falls back to DefaultSignature.
func NewBuilder(sig Signature) *Builder {
	if sig == (Signature{}) {
		sig = DefaultSignature
	}
	return &Builder{sig: sig}
}

// Build assembles the final payload. Content is dropped when empty. Each
// spec is merged against the default embed template; when specs is empty
// the payload carries no embeds key at all. The timestamp is captured once
// per call and shared by all embeds, so every recipient of the dispatched
// event sees an identical payload.
func (b *Builder) Build(content string, specs []EmbedSpec) Payload {
	p := Payload{Content: content}

	if len(specs) == 0 {
		return p
	}

	footer := Footer{Text: b.sig.footerText(), IconURL: b.sig.IconURL}
	ts := time.Now().UTC().Format(time.RFC3339)

	p.Embeds = make([]Embed, 0, len(specs))
	for _, spec := range specs {
		e := Embed{
			Title:       optional(spec.Title),
			Description: optional(spec.Description),
			URL:         optional(spec.URL),
			Color:       spec.Color,
			Fields:      spec.Fields,
			Footer:      footer,
			Timestamp:   ts,
		}
		if e.Color == 0 {
			e.Color = catalog.ColorInfo
		}
		if e.Fields == nil {
			e.Fields = []Field{}
		}
		p.Embeds = append(p.Embeds, e)
	}

	return p
}

// optional returns nil for the empty string so unset embed attributes
// serialize as JSON null.
func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
