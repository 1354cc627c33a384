// Package observability provides OpenTelemetry metrics and tracing for Herald.
package observability

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const meterName = "github.com/herald-dev/herald"

// Metrics holds the metric instruments recorded by the dispatch path.
type Metrics struct {
	eventsTotal     metric.Int64Counter
	deliveriesTotal metric.Int64Counter
	deliveryLatency metric.Float64Histogram
}

// NewMetrics creates Herald metric instruments on the global meter provider.
func NewMetrics() (*Metrics, error) {
	meter := otel.Meter(meterName)

	eventsTotal, err := meter.Int64Counter("herald_events_total",
		metric.WithDescription("Events handled by the dispatcher"))
	if err != nil {
		return nil, err
	}

	deliveriesTotal, err := meter.Int64Counter("herald_deliveries_total",
		metric.WithDescription("Webhook delivery attempts by status"))
	if err != nil {
		return nil, err
	}

	deliveryLatency, err := meter.Float64Histogram("herald_delivery_latency_seconds",
		metric.WithDescription("Webhook delivery latency"))
	if err != nil {
		return nil, err
	}

	return &Metrics{
		eventsTotal:     eventsTotal,
		deliveriesTotal: deliveriesTotal,
		deliveryLatency: deliveryLatency,
	}, nil
}

// RecordEvent counts one handled event for the given event name.
func (m *Metrics) RecordEvent(ctx context.Context, eventName string) {
	if m == nil {
		return
	}
	m.eventsTotal.Add(ctx, 1, metric.WithAttributes(
		attribute.String("event", eventName),
	))
}

// RecordDelivery records one delivery attempt with its status
// ("delivered", "failed", or "skipped") and latency.
func (m *Metrics) RecordDelivery(ctx context.Context, status string, latencySeconds float64) {
	if m == nil {
		return
	}
	m.deliveriesTotal.Add(ctx, 1, metric.WithAttributes(
		attribute.String("status", status),
	))
	m.deliveryLatency.Record(ctx, latencySeconds)
}
