package herald

import "errors"

// Sentinel errors returned by Herald operations.
var (
	// ErrNoStore is returned when a Herald is created without a store.
	ErrNoStore = errors.New("herald: store is required")

	// ErrSubscriptionNotFound is returned when a subscription cannot be found.
	ErrSubscriptionNotFound = errors.New("herald: subscription not found")

	// ErrSubscriptionInactive is returned when attempting to deliver to a disabled subscription.
	ErrSubscriptionInactive = errors.New("herald: subscription is inactive")

	// ErrPayloadValidationFailed is returned when event parameters fail JSON Schema validation.
	ErrPayloadValidationFailed = errors.New("herald: payload validation failed")

	// ErrStoreClosed is returned when a store operation is attempted after the store is closed.
	ErrStoreClosed = errors.New("herald: store is closed")
)
