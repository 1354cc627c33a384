package catalog_test

import (
	"testing"

	"github.com/herald-dev/herald/catalog"
)

func TestBuiltinTable(t *testing.T) {
	c := catalog.New()

	if c.Len() != 13 {
		t.Fatalf("expected 13 built-in events, got %d", c.Len())
	}

	cases := []struct {
		name     string
		severity catalog.Severity
	}{
		{"onEventClientLoginFailed", catalog.SeverityWarning},
		{"onEventAdminLoginFailed", catalog.SeverityError},
		{"onAfterClientSignUp", catalog.SeveritySuccess},
		{"onAfterClientOrderCreate", catalog.SeverityInfo},
		{"onAfterAdminOrderCancel", catalog.SeverityError},
		{"onAfterAdminInvoiceApprove", catalog.SeveritySuccess},
		{"onAfterAdminReplyTicket", catalog.SeverityNeutral},
	}

	for _, tc := range cases {
		entry, ok := c.Lookup(tc.name)
		if !ok {
			t.Fatalf("built-in event %q not found", tc.name)
		}
		if entry.Severity != tc.severity {
			t.Fatalf("%s: severity %q, want %q", tc.name, entry.Severity, tc.severity)
		}
		if entry.Label == "" || entry.Description == "" {
			t.Fatalf("%s: label and description must be set", tc.name)
		}
	}
}

func TestLookupUnknown(t *testing.T) {
	c := catalog.New()

	if _, ok := c.Lookup("onSomethingNobodyFires"); ok {
		t.Fatal("unknown event should not be found")
	}
	if c.Has("onSomethingNobodyFires") {
		t.Fatal("Has should be false for unknown event")
	}
}

func TestExtraEntriesOverrideBuiltins(t *testing.T) {
	c := catalog.New(
		catalog.Entry{
			Name:     "onAfterClientSignUp",
			Label:    "Custom signup",
			Severity: catalog.SeverityNeutral,
		},
		catalog.Entry{
			Name:     "onCustomThing",
			Label:    "Custom thing",
			Severity: catalog.SeverityInfo,
		},
	)

	if c.Len() != 14 {
		t.Fatalf("expected 14 entries, got %d", c.Len())
	}

	entry, ok := c.Lookup("onAfterClientSignUp")
	if !ok {
		t.Fatal("overridden entry not found")
	}
	if entry.Label != "Custom signup" || entry.Severity != catalog.SeverityNeutral {
		t.Fatalf("override not applied: %+v", entry)
	}

	if !c.Has("onCustomThing") {
		t.Fatal("extra entry not found")
	}
}

func TestNewEmpty(t *testing.T) {
	c := catalog.NewEmpty(catalog.Entry{Name: "only.event", Label: "Only"})

	if c.Len() != 1 {
		t.Fatalf("expected 1 entry, got %d", c.Len())
	}
	if c.Has("onAfterClientSignUp") {
		t.Fatal("empty catalog should not include builtins")
	}
}

func TestNamesSorted(t *testing.T) {
	c := catalog.New()
	names := c.Names()

	if len(names) != c.Len() {
		t.Fatalf("expected %d names, got %d", c.Len(), len(names))
	}
	for i := 1; i < len(names); i++ {
		if names[i-1] >= names[i] {
			t.Fatalf("names not sorted: %q before %q", names[i-1], names[i])
		}
	}
}

func TestSeverityColors(t *testing.T) {
	cases := []struct {
		severity catalog.Severity
		color    int
	}{
		{catalog.SeverityInfo, 0x3498db},
		{catalog.SeveritySuccess, 0x2ecc71},
		{catalog.SeverityWarning, 0xf1c40f},
		{catalog.SeverityError, 0xe74c3c},
		{catalog.SeverityNeutral, 0x95a5a6},
		{catalog.Severity("bogus"), 0x3498db}, // unknown falls back to info
	}

	for _, tc := range cases {
		if got := tc.severity.Color(); got != tc.color {
			t.Fatalf("%s: color %#x, want %#x", tc.severity, got, tc.color)
		}
	}
}

func TestSeverityValid(t *testing.T) {
	if !catalog.SeverityWarning.Valid() {
		t.Fatal("warning should be valid")
	}
	if catalog.Severity("loud").Valid() {
		t.Fatal("unknown severity should be invalid")
	}
}
