package dispatch

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/herald-dev/herald/id"
	"github.com/herald-dev/herald/signature"
	"github.com/herald-dev/herald/subscription"
)

const maxResponseBody = 1024 // 1KB cap on response body capture

// Sender performs a single HTTP webhook delivery attempt.
type Sender struct {
	client    *http.Client
	userAgent string
}

// NewSender creates a sender with the given HTTP timeout and User-Agent.
func NewSender(timeout time.Duration, userAgent string) *Sender {
	return &Sender{
		client:    &http.Client{Timeout: timeout},
		userAgent: userAgent,
	}
}

// Result holds the outcome of a single delivery attempt.
type Result struct {
	// DeliveryID is the transient ID assigned to this attempt. It is sent
	// in the X-Herald-Delivery header and appears in logs.
	DeliveryID id.ID

	// StatusCode is the HTTP response status, 0 on transport failure.
	StatusCode int

	// Response is the response body, capped at 1KB.
	Response string

	// LatencyMs is the round-trip time in milliseconds.
	LatencyMs int

	// Err is non-nil on transport, timeout, or request construction failure.
	Err error
}

// OK reports whether the attempt succeeded: no transport error and a
// 2xx response.
func (r Result) OK() bool {
	return r.Err == nil && r.StatusCode >= 200 && r.StatusCode < 300
}

// Failure returns the error describing a non-OK result, nil for OK results.
func (r Result) Failure() error {
	if r.OK() {
		return nil
	}
	if r.Err != nil {
		return r.Err
	}
	return fmt.Errorf("unexpected status %d", r.StatusCode)
}

// Send POSTs the payload body to the subscription's URL and returns the
// result. The body is marshaled by the caller, once per dispatched event,
// so every recipient receives identical bytes. The caller assigns the
// delivery ID so it can correlate spans and logs with the attempt.
func (s *Sender) Send(ctx context.Context, sub *subscription.Subscription, eventName string, deliveryID id.ID, body []byte) Result {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, sub.URL, bytes.NewReader(body))
	if err != nil {
		return Result{DeliveryID: deliveryID, Err: fmt.Errorf("create request: %w", err)}
	}

	// Standard headers.
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", s.userAgent)
	req.Header.Set("X-Herald-Event", eventName)
	req.Header.Set("X-Herald-Delivery", deliveryID.String())

	// HMAC signature, when the subscription carries a secret.
	if sub.Secret != "" {
		ts := time.Now().Unix()
		sig := signature.Sign(body, sub.Secret, ts)
		req.Header.Set("X-Herald-Signature", sig)
		req.Header.Set("X-Herald-Timestamp", strconv.FormatInt(ts, 10))
	}

	// Custom subscription headers.
	for k, v := range sub.Headers {
		req.Header.Set(k, v)
	}

	start := time.Now()
	resp, err := s.client.Do(req) //nolint:gosec // G704: URL is a user-configured webhook destination; SSRF is by design.
	latency := time.Since(start).Milliseconds()

	if err != nil {
		return Result{
			DeliveryID: deliveryID,
			Err:        err,
			LatencyMs:  int(latency),
		}
	}
	defer resp.Body.Close()

	respBody, readErr := io.ReadAll(io.LimitReader(resp.Body, maxResponseBody))
	if readErr != nil {
		return Result{
			DeliveryID: deliveryID,
			StatusCode: resp.StatusCode,
			Err:        fmt.Errorf("read response: %w", readErr),
			LatencyMs:  int(latency),
		}
	}

	return Result{
		DeliveryID: deliveryID,
		StatusCode: resp.StatusCode,
		Response:   string(respBody),
		LatencyMs:  int(latency),
	}
}
