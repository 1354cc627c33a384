// Package herald provides an event-driven outbound webhook notification
// dispatcher for Go.
//
// Herald is a library — not a service. Import it into your application to
// turn internal events into rich webhook notifications: a static event
// catalog maps event names to message templates, well-known event
// parameters become display fields, and every active subscription
// interested in the event receives one signed HTTP POST.
//
// Key features:
//   - Static event catalog with severity colors and optional JSON Schema
//     parameter validation
//   - Composable store pattern with multiple backends (Bun, Redis, MongoDB, Memory)
//   - HMAC-SHA256 signature on every delivery
//   - Bounded concurrent fan-out with per-endpoint failure isolation
//   - Per-subscription rate limiting
//   - Fire-and-forget event path that never breaks the triggering operation
//
// Quick start:
//
//	h, err := herald.New(
//	    herald.WithStore(memoryStore),
//	    herald.WithAppSignature(message.Signature{Name: "MyApp", Version: "2.1"}),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	h.Subscriptions().Create(ctx, subscription.Input{
//	    URL:    "https://hooks.example.com/billing",
//	    Events: []string{"onAfterClientOrderCreate"},
//	    Active: true,
//	})
//
//	h.OnEvent(ctx, event.New("onAfterClientOrderCreate", map[string]any{
//	    "id":       1842,
//	    "client_id": 7,
//	    "total":    "49.90",
//	}))
package herald
