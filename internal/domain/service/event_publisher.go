package service

import (
	"context"
)

// DeliveryEvent summarizes one finished dispatch for downstream consumers
// (analytics ingestion, audit trail).
type DeliveryEvent struct {
	RequestID      string `json:"request_id,omitempty"` // For distributed tracing.
	NotificationID string `json:"notification_id"`
	Status         string `json:"status"` // Final notification status.
	Successful     int    `json:"successful"`
	Failed         int    `json:"failed"`
	TotalTokens    int    `json:"total_tokens"`
}

// EventPublisher defines the interface for publishing events to a message queue.
type EventPublisher interface {
	// PublishDeliveryEvent publishes a dispatch summary for async processing.
	PublishDeliveryEvent(ctx context.Context, event *DeliveryEvent) error

	// Close releases any resources held by the publisher.
	Close() error
}
