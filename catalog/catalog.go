// Package catalog maps internal event names to notification templates.
//
// The catalog is a read-only table: it is assembled once when the Herald
// instance is constructed (built-in entries plus any caller-supplied ones)
// and never mutated afterwards, so lookups need no synchronization.
package catalog

import "sort"

// Catalog is the immutable event name → template mapping.
type Catalog struct {
	entries map[string]Entry
}

// New builds a catalog from the built-in entries plus any extras.
// An extra entry with the same name as a built-in replaces it.
func New(extra ...Entry) *Catalog {
	return build(append(Builtin(), extra...))
}

// NewEmpty builds a catalog from the given entries only, without the
// built-in table. Intended for hosts with a fully custom event set.
func NewEmpty(entries ...Entry) *Catalog {
	return build(entries)
}

func build(entries []Entry) *Catalog {
	m := make(map[string]Entry, len(entries))
	for _, e := range entries {
		m[e.Name] = e
	}
	return &Catalog{entries: m}
}

// Lookup returns the entry for an event name. The second return value is
// false when the name is not recognized; unrecognized events are not an
// error, the dispatch path simply ignores them.
func (c *Catalog) Lookup(name string) (Entry, bool) {
	e, ok := c.entries[name]
	return e, ok
}

// Has reports whether the event name is recognized.
func (c *Catalog) Has(name string) bool {
	_, ok := c.entries[name]
	return ok
}

// Names returns all recognized event names in lexical order.
func (c *Catalog) Names() []string {
	names := make([]string, 0, len(c.entries))
	for name := range c.entries {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Entries returns all entries ordered by event name.
func (c *Catalog) Entries() []Entry {
	result := make([]Entry, 0, len(c.entries))
	for _, name := range c.Names() {
		result = append(result, c.entries[name])
	}
	return result
}

// Len returns the number of recognized event names.
func (c *Catalog) Len() int {
	return len(c.entries)
}
