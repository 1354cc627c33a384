// Package dispatch fans a built notification payload out to every matching
// webhook subscription.
//
// Each dispatch is a single stateless pass over the current snapshot of
// active subscriptions: one HTTP POST per match, no retry, no queueing.
// Failures are isolated per endpoint and collected as per-recipient
// results; the failFast policy is applied over that collection rather than
// threaded through control flow.
package dispatch

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"

	"github.com/herald-dev/herald/id"
	"github.com/herald-dev/herald/message"
	"github.com/herald-dev/herald/observability"
	"github.com/herald-dev/herald/ratelimit"
	"github.com/herald-dev/herald/subscription"
)

// Source is the read-only view of the subscription store consumed during
// fan-out. Concurrent registration changes during a dispatch are not
// required to be reflected.
type Source interface {
	ListActive(ctx context.Context) ([]*subscription.Subscription, error)
}

// Config holds dispatcher configuration.
type Config struct {
	// Concurrency bounds the number of in-flight deliveries per dispatch.
	Concurrency int

	// RequestTimeout is the HTTP timeout per delivery attempt.
	RequestTimeout time.Duration

	// UserAgent is sent with every delivery.
	UserAgent string

	// Metrics, Tracer, and Limiter are optional.
	Metrics *observability.Metrics
	Tracer  *observability.Tracer
	Limiter *ratelimit.Limiter
}

// Delivery is the per-recipient outcome of one dispatch.
type Delivery struct {
	Subscription *subscription.Subscription
	Result       Result
}

// Err returns the DeliveryError for a failed delivery, nil for a
// successful one.
func (d Delivery) Err() error {
	cause := d.Result.Failure()
	if cause == nil {
		return nil
	}
	return &DeliveryError{
		SubscriptionID: d.Subscription.ID,
		URL:            d.Subscription.URL,
		StatusCode:     d.Result.StatusCode,
		Err:            cause,
	}
}

// Dispatcher delivers payloads to matching subscriptions.
type Dispatcher struct {
	source Source
	sender *Sender
	config Config
	logger *slog.Logger
}

// New creates a dispatcher over the given subscription source.
func New(source Source, cfg Config, logger *slog.Logger) *Dispatcher {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.Concurrency <= 0 {
		cfg.Concurrency = 1
	}
	return &Dispatcher{
		source: source,
		sender: NewSender(cfg.RequestTimeout, cfg.UserAgent),
		config: cfg,
		logger: logger,
	}
}

// Dispatch delivers the payload to every active subscription interested in
// eventName.
//
// The payload is marshaled once and reused verbatim for every recipient.
// With failFast false, each failure is logged with the subscription's
// identity and the fan-out runs to completion; the returned error is nil.
// With failFast true, the first failure cancels the remaining fan-out and
// is returned as a *DeliveryError. In both modes Dispatch returns only
// after every attempted delivery has finished, and the returned slice holds
// one entry per attempted subscription.
func (d *Dispatcher) Dispatch(ctx context.Context, eventName string, p message.Payload, failFast bool) ([]Delivery, error) {
	subs, err := d.source.ListActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("dispatch: list subscriptions: %w", err)
	}

	targets := make([]*subscription.Subscription, 0, len(subs))
	for _, sub := range subs {
		if sub.Matches(eventName) {
			targets = append(targets, sub)
		}
	}
	if len(targets) == 0 {
		return nil, nil
	}

	body, err := json.Marshal(p)
	if err != nil {
		return nil, fmt.Errorf("dispatch: marshal payload: %w", err)
	}

	if d.config.Tracer != nil {
		var span trace.Span
		ctx, span = d.config.Tracer.StartDispatchSpan(ctx, eventName, len(targets))
		defer span.End()
	}

	results := make([]Delivery, len(targets))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(d.config.Concurrency)

	for i, sub := range targets {
		g.Go(func() error {
			del := d.deliver(gctx, sub, eventName, body)
			results[i] = del

			if delErr := del.Err(); delErr != nil {
				if failFast {
					return delErr
				}
				d.logger.ErrorContext(gctx, "webhook delivery failed",
					"subscription_id", sub.ID,
					"url", sub.URL,
					"event", eventName,
					"status", del.Result.StatusCode,
					"error", del.Result.Failure(),
				)
			}
			return nil
		})
	}

	if waitErr := g.Wait(); waitErr != nil {
		return results, waitErr
	}
	return results, nil
}

// DeliverTo attempts a single delivery to one subscription, bypassing
// interest matching. Used by the interactive test-message flow, which
// always wants immediate feedback.
func (d *Dispatcher) DeliverTo(ctx context.Context, sub *subscription.Subscription, eventName string, p message.Payload) (Delivery, error) {
	body, err := json.Marshal(p)
	if err != nil {
		return Delivery{}, fmt.Errorf("dispatch: marshal payload: %w", err)
	}

	del := d.deliver(ctx, sub, eventName, body)
	if delErr := del.Err(); delErr != nil {
		return del, delErr
	}
	return del, nil
}

// deliver performs one rate-limited, traced delivery attempt.
func (d *Dispatcher) deliver(ctx context.Context, sub *subscription.Subscription, eventName string, body []byte) Delivery {
	if d.config.Limiter != nil {
		if err := d.config.Limiter.Wait(ctx, sub.ID.String(), sub.RateLimit); err != nil {
			return Delivery{Subscription: sub, Result: Result{Err: err}}
		}
	}

	deliveryID := id.NewDeliveryID()

	var span trace.Span
	if d.config.Tracer != nil {
		ctx, span = d.config.Tracer.StartDeliverySpan(ctx, deliveryID.String(), sub.ID.String())
	}

	res := d.sender.Send(ctx, sub, eventName, deliveryID, body)

	if span != nil {
		errMsg := ""
		if cause := res.Failure(); cause != nil {
			errMsg = cause.Error()
		}
		d.config.Tracer.EndDeliverySpan(span, res.StatusCode, res.LatencyMs, errMsg)
	}

	if d.config.Metrics != nil {
		status := "delivered"
		if !res.OK() {
			status = "failed"
		}
		d.config.Metrics.RecordDelivery(ctx, status, float64(res.LatencyMs)/1000.0)
	}

	if res.OK() {
		d.logger.DebugContext(ctx, "webhook delivered",
			"subscription_id", sub.ID,
			"delivery_id", res.DeliveryID,
			"event", eventName,
			"status", res.StatusCode,
			"latency_ms", res.LatencyMs,
		)
	}

	return Delivery{Subscription: sub, Result: res}
}
