// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// DeliveryStatus is the per-token outcome of one dispatch attempt.
type DeliveryStatus string

const (
	// DeliveryStatusDelivered means the gateway accepted the message for the token.
	DeliveryStatusDelivered DeliveryStatus = "delivered"
	// DeliveryStatusFailed means the gateway rejected the message for the token.
	DeliveryStatusFailed DeliveryStatus = "failed"
	// DeliveryStatusClicked is set later by a client acknowledgment event.
	// The dispatch pipeline never writes this status.
	DeliveryStatusClicked DeliveryStatus = "clicked"
)

// DeliveryRecord is the durable per-token outcome of one dispatch attempt
// for one notification. Exactly one record exists per (notification, token)
// pair per attempt; it is immutable except for the clicked transition.
type DeliveryRecord struct {
	ID             uuid.UUID      `json:"id"`                     // The unique identifier for the record.
	NotificationID uuid.UUID      `json:"notification_id"`       // The notification this record belongs to.
	TokenID        uuid.UUID      `json:"token_id"`               // The device token the message was addressed to.
	Status         DeliveryStatus `json:"status"`                 // Outcome of the dispatch for this token.
	SentAt         time.Time      `json:"sent_at"`                // When the dispatch attempt was made.
	DeliveredAt    *time.Time     `json:"delivered_at,omitempty"` // Set when the gateway reported success.
	ErrorMessage   string         `json:"error_message,omitempty"` // Gateway error code when the outcome failed.
}
