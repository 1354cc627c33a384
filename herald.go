package herald

import (
	"context"
	"fmt"

	"github.com/herald-dev/herald/catalog"
	"github.com/herald-dev/herald/dispatch"
	"github.com/herald-dev/herald/event"
	"github.com/herald-dev/herald/id"
	"github.com/herald-dev/herald/message"
	"github.com/herald-dev/herald/store"
	"github.com/herald-dev/herald/subscription"
)

// testEventName is the event name sent on the interactive test-message path.
const testEventName = "test_message"

// wireServices initializes the internal services after options have been applied.
func (h *Herald) wireServices() {
	if h.sig == (message.Signature{}) {
		h.sig = message.DefaultSignature
	}

	h.catalog = catalog.New(h.catalogExtra...)
	h.validator = catalog.NewValidator()
	h.builder = message.NewBuilder(h.sig)
	h.subSvc = subscription.NewService(h.store, h.logger)

	h.dispatcher = dispatch.New(h.store, dispatch.Config{
		Concurrency:    h.config.Concurrency,
		RequestTimeout: h.config.RequestTimeout,
		UserAgent:      h.config.UserAgent,
		Metrics:        h.metrics,
		Tracer:         h.tracer,
		Limiter:        h.limiter,
	}, h.logger)
}

// OnEvent handles an application event on the catalog-driven path.
//
// The critical path:
//  1. Look up the event name in the catalog (unrecognized names are
//     silently ignored).
//  2. Validate parameters against the entry's JSON Schema, if one is set.
//  3. Extract display fields from the well-known parameters.
//  4. Build one embed from the catalog template and dispatch it.
//
// OnEvent never propagates delivery errors back to the event source: a dead
// webhook endpoint must not break the business operation that raised the
// event. Failures are logged per endpoint. The returned slice reports the
// per-recipient outcomes for callers that want them.
func (h *Herald) OnEvent(ctx context.Context, evt *event.Event) []dispatch.Delivery {
	entry, ok := h.catalog.Lookup(evt.Name)
	if !ok {
		h.logger.DebugContext(ctx, "event not in catalog, ignoring", "event", evt.Name)
		return nil
	}

	h.metrics.RecordEvent(ctx, evt.Name)

	if len(entry.Schema) > 0 {
		if err := h.validator.Validate(entry.Schema, evt.Params); err != nil {
			h.logger.WarnContext(ctx, "event parameters failed validation, dropping",
				"event", evt.Name,
				"error", err,
			)
			return nil
		}
	}

	payload := h.builder.Build("", []message.EmbedSpec{{
		Title:       entry.Label,
		Description: entry.Description,
		Color:       entry.Severity.Color(),
		Fields:      message.FieldsFromParams(evt.Params),
	}})

	deliveries, err := h.dispatcher.Dispatch(ctx, evt.Name, payload, false)
	if err != nil {
		// Dispatch with failFast off only errors before fan-out starts
		// (store failure, marshal failure).
		h.logger.ErrorContext(ctx, "event dispatch failed",
			"event", evt.Name,
			"error", err,
		)
	}
	return deliveries
}

// Notify dispatches an ad-hoc notification, bypassing the catalog. The
// caller supplies the content line and embed specs directly; the builder
// still applies the footer signature and timestamp.
//
// With failFast true the first delivery failure cancels the remaining
// fan-out and is returned as a *dispatch.DeliveryError.
func (h *Herald) Notify(ctx context.Context, eventName, content string, embeds []message.EmbedSpec, failFast bool) ([]dispatch.Delivery, error) {
	h.metrics.RecordEvent(ctx, eventName)

	payload := h.builder.Build(content, embeds)
	return h.dispatcher.Dispatch(ctx, eventName, payload, failFast)
}

// SendTestMessage delivers a canned success embed to one subscription,
// regardless of its event interests. The delivery error, if any, is
// returned directly so the caller can show the operator what went wrong.
func (h *Herald) SendTestMessage(ctx context.Context, subID id.ID) error {
	sub, err := h.store.GetSubscription(ctx, subID)
	if err != nil {
		return err
	}
	if !sub.Active {
		return fmt.Errorf("%w: %s", ErrSubscriptionInactive, subID)
	}

	payload := h.builder.Build("", []message.EmbedSpec{{
		Title:       "✅ Successful test message",
		Description: fmt.Sprintf("This message was sent by %s. The webhook works.", h.sig.Name),
		Color:       catalog.ColorSuccess,
	}})

	_, err = h.dispatcher.DeliverTo(ctx, sub, testEventName, payload)
	return err
}

// Subscriptions returns the subscription management service.
func (h *Herald) Subscriptions() *subscription.Service {
	return h.subSvc
}

// Catalog returns the event catalog.
func (h *Herald) Catalog() *catalog.Catalog {
	return h.catalog
}

// Store returns the underlying store.
func (h *Herald) Store() store.Store {
	return h.store
}
