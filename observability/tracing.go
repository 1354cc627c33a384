package observability

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "github.com/herald-dev/herald"

// Tracer provides OpenTelemetry tracing for Herald.
type Tracer struct {
	tracer trace.Tracer
}

// NewTracer creates a new Herald tracer on the global tracer provider.
func NewTracer() *Tracer {
	return &Tracer{
		tracer: otel.Tracer(tracerName),
	}
}

// StartDispatchSpan starts a span covering the fan-out of one event.
func (t *Tracer) StartDispatchSpan(ctx context.Context, eventName string, targets int) (context.Context, trace.Span) {
	return t.tracer.Start(ctx, "herald.dispatch",
		trace.WithAttributes(
			attribute.String("herald.event", eventName),
			attribute.Int("herald.targets", targets),
		),
	)
}

// StartDeliverySpan starts a span for a single delivery attempt.
func (t *Tracer) StartDeliverySpan(ctx context.Context, deliveryID, subscriptionID string) (context.Context, trace.Span) {
	return t.tracer.Start(ctx, "herald.delivery",
		trace.WithAttributes(
			attribute.String("herald.delivery_id", deliveryID),
			attribute.String("herald.subscription_id", subscriptionID),
		),
	)
}

// EndDeliverySpan ends a delivery span with result attributes.
func (t *Tracer) EndDeliverySpan(span trace.Span, statusCode, latencyMs int, errMsg string) {
	span.SetAttributes(
		attribute.Int("http.status_code", statusCode),
		attribute.Int("herald.latency_ms", latencyMs),
	)
	if errMsg != "" {
		span.SetAttributes(attribute.String("herald.error", errMsg))
	}
	span.End()
}
