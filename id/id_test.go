package id_test

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/herald-dev/herald/id"
)

func TestNewAndParse(t *testing.T) {
	subID := id.NewSubscriptionID()

	if subID.IsNil() {
		t.Fatal("generated ID must not be nil")
	}
	if !strings.HasPrefix(subID.String(), "hook_") {
		t.Fatalf("prefix: %q", subID.String())
	}
	if subID.Prefix() != id.PrefixSubscription {
		t.Fatalf("prefix: %q", subID.Prefix())
	}

	parsed, err := id.Parse(subID.String())
	if err != nil {
		t.Fatal(err)
	}
	if parsed.String() != subID.String() {
		t.Fatal("roundtrip mismatch")
	}
}

func TestParseWithPrefix(t *testing.T) {
	delID := id.NewDeliveryID()

	if _, err := id.ParseDeliveryID(delID.String()); err != nil {
		t.Fatal(err)
	}
	if _, err := id.ParseSubscriptionID(delID.String()); err == nil {
		t.Fatal("wrong prefix must be rejected")
	}
}

func TestParseErrors(t *testing.T) {
	if _, err := id.Parse(""); err == nil {
		t.Fatal("empty string must fail")
	}
	if _, err := id.Parse("not a typeid"); err == nil {
		t.Fatal("garbage must fail")
	}
}

func TestJSONRoundtrip(t *testing.T) {
	type doc struct {
		ID id.ID `json:"id"`
	}

	original := doc{ID: id.NewSubscriptionID()}
	raw, err := json.Marshal(original)
	if err != nil {
		t.Fatal(err)
	}

	var decoded doc
	if err := json.Unmarshal(raw, &decoded); err != nil {
		t.Fatal(err)
	}
	if decoded.ID.String() != original.ID.String() {
		t.Fatal("JSON roundtrip mismatch")
	}
}

func TestSQLValueScan(t *testing.T) {
	subID := id.NewSubscriptionID()

	v, err := subID.Value()
	if err != nil {
		t.Fatal(err)
	}

	var scanned id.ID
	if err := scanned.Scan(v); err != nil {
		t.Fatal(err)
	}
	if scanned.String() != subID.String() {
		t.Fatal("SQL roundtrip mismatch")
	}

	var fromNil id.ID
	if err := fromNil.Scan(nil); err != nil {
		t.Fatal(err)
	}
	if !fromNil.IsNil() {
		t.Fatal("scanning NULL must produce the nil ID")
	}
}
