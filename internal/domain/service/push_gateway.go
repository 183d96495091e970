package service

import (
	"context"
)

// Error codes reported by the push gateway per token. Only the permanent
// codes may deactivate a token; transient codes must not.
const (
	// OutcomeErrorUnregistered means the token is no longer registered with the gateway.
	OutcomeErrorUnregistered = "unregistered"
	// OutcomeErrorInvalidToken means the token string was rejected as malformed.
	OutcomeErrorInvalidToken = "invalid-registration-token"
	// OutcomeErrorUnavailable means the gateway was temporarily unable to deliver.
	OutcomeErrorUnavailable = "unavailable"
	// OutcomeErrorInternal is any other per-token gateway failure.
	OutcomeErrorInternal = "internal"
)

// DeliveryOutcome is the gateway's result for one token of a multicast send.
type DeliveryOutcome struct {
	Token     string // The device token the outcome belongs to.
	Success   bool
	ErrorCode string // One of the Outcome* codes when Success is false.
}

// IsPermanentFailure reports whether the outcome indicates a permanently
// invalid registration, i.e. the token should be deactivated.
func (o DeliveryOutcome) IsPermanentFailure() bool {
	return !o.Success && (o.ErrorCode == OutcomeErrorUnregistered || o.ErrorCode == OutcomeErrorInvalidToken)
}

// PushPayload is the structured content of one push message.
type PushPayload struct {
	Title    string
	Body     string
	ImageURL string
	// Data is an opaque key/value map delivered alongside the notification.
	// The dispatcher always includes the notification ID and type.
	Data map[string]string
}

// PushGateway abstracts the external multicast-capable push provider.
// Implementations return one outcome per input token, in input order.
type PushGateway interface {
	// SendMulticast delivers the payload to all tokens in a single gateway
	// round trip. A non-nil error means the call failed transport-wide and no
	// per-token outcomes are available.
	SendMulticast(ctx context.Context, tokens []string, payload *PushPayload) ([]DeliveryOutcome, error)
}
