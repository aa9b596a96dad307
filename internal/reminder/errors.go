package reminder

import (
	"errors"
	"fmt"
)

// Reason classifies a failed delivery.
type Reason string

const (
	ReasonNoRecipient Reason = "no_recipient"
	ReasonRender      Reason = "render"
	ReasonTransport   Reason = "transport"
	ReasonRejected    Reason = "rejected"
	ReasonPanic       Reason = "panic"
)

// DeliveryError is the typed failure every Notifier returns.
// The task stays due and is retried on the next cycle.
type DeliveryError struct {
	Channel string
	Reason  Reason
	Err     error
}

func (e *DeliveryError) Error() string {
	return fmt.Sprintf("reminder: %s delivery failed (%s): %v", e.Channel, e.Reason, e.Err)
}

func (e *DeliveryError) Unwrap() error { return e.Err }

// Permanent reports whether retrying the same task unchanged will fail again.
func (e *DeliveryError) Permanent() bool {
	switch e.Reason {
	case ReasonNoRecipient, ReasonRender, ReasonRejected:
		return true
	}
	return false
}

func newDeliveryError(channel string, reason Reason, err error) *DeliveryError {
	return &DeliveryError{Channel: channel, Reason: reason, Err: err}
}

// asDeliveryError wraps foreign errors so callers always see a DeliveryError.
func asDeliveryError(channel string, err error) *DeliveryError {
	var de *DeliveryError
	if errors.As(err, &de) {
		return de
	}
	return newDeliveryError(channel, ReasonTransport, err)
}

var (
	ErrUnknownChannel       = errors.New("reminder: unknown delivery channel")
	ErrChannelNotConfigured = errors.New("reminder: delivery channel is not configured")
)
