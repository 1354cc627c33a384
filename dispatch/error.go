package dispatch

import (
	"fmt"

	"github.com/herald-dev/herald/id"
)

// DeliveryError describes a failed delivery to a single subscription,
// tagged with the subscription's identity and the underlying cause.
type DeliveryError struct {
	SubscriptionID id.ID
	URL            string
	StatusCode     int
	Err            error
}

func (e *DeliveryError) Error() string {
	return fmt.Sprintf("dispatch: webhook %s (%s): %v", e.SubscriptionID, e.URL, e.Err)
}

func (e *DeliveryError) Unwrap() error {
	return e.Err
}
