package message

import "fmt"

// fieldSpec pairs a well-known event parameter key with its display label.
type fieldSpec struct {
	key   string
	label string
}

// commonFields is the fixed, ordered catalog of well-known parameters.
// Extraction order follows this list, never the input map.
var commonFields = []fieldSpec{
	{"id", "ID"},
	{"ip", "IP Address"},
	{"email", "Email Address"},
	{"username", "Username"},
	{"first_name", "First Name"},
	{"last_name", "Last Name"},
	{"admin_id", "Admin ID"},
	{"client_id", "Client ID"},
	{"order_id", "Order ID"},
	{"ticket_id", "Ticket ID"},
	{"product_id", "Product ID"},
	{"invoice_id", "Invoice ID"},
	{"subscription_id", "Subscription ID"},
	{"transaction_id", "Transaction ID"},
	{"title", "Title"},
	{"price", "Price"},
	{"total", "Total"},
	{"type", "Type"},
	{"currency", "Currency"},
	{"status", "Status"},
	{"country", "Country"},
	{"company", "Company Name"},
	{"company_number", "Company Number"},
	{"company_vat", "VAT Number"},
}

// FieldsFromParams extracts display-ready fields from an event's parameter
// set. For each well-known key present (and non-nil) in params, it emits an
// inline field with the catalog label and the value's textual form. Extra
// fields are appended after the derived ones, preserving their given order.
// Pure function: no I/O, params is never mutated.
func FieldsFromParams(params map[string]any, extra ...Field) []Field {
	fields := make([]Field, 0, len(commonFields)+len(extra))

	for _, spec := range commonFields {
		v, ok := params[spec.key]
		if !ok || v == nil {
			continue
		}
		fields = append(fields, Field{
			Name:   spec.label,
			Value:  stringify(v),
			Inline: true,
		})
	}

	return append(fields, extra...)
}

// stringify renders a parameter value the way it should appear in an embed
// field. JSON numbers round-trip without a trailing ".0".
func stringify(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case fmt.Stringer:
		return t.String()
	default:
		return fmt.Sprint(t)
	}
}
