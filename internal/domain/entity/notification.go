// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// NotificationStatus represents the lifecycle state of a notification.
type NotificationStatus string

const (
	// NotificationStatusDraft is the initial state for notifications created without a schedule.
	NotificationStatusDraft NotificationStatus = "draft"
	// NotificationStatusScheduled is the initial state for notifications created with a scheduled_at.
	NotificationStatusScheduled NotificationStatus = "scheduled"
	// NotificationStatusSending marks a notification whose dispatch pipeline is running.
	NotificationStatusSending NotificationStatus = "sending"
	// NotificationStatusSent marks a dispatch where every outcome succeeded.
	NotificationStatusSent NotificationStatus = "sent"
	// NotificationStatusPartiallySent marks a dispatch with mixed outcomes.
	NotificationStatusPartiallySent NotificationStatus = "partially_sent"
	// NotificationStatusFailed marks a dispatch where no outcome succeeded,
	// the target resolved empty, or the gateway call failed transport-wide.
	NotificationStatusFailed NotificationStatus = "failed"
)

// IsTerminal reports whether the status is final. No transition leaves a
// terminal state; re-sending requires creating a new notification.
func (s NotificationStatus) IsTerminal() bool {
	return s == NotificationStatusSent || s == NotificationStatusPartiallySent || s == NotificationStatusFailed
}

// NotificationType categorizes the notification content.
type NotificationType string

const (
	NotificationTypeNews     NotificationType = "news"
	NotificationTypeBreaking NotificationType = "breaking"
	NotificationTypeCustom   NotificationType = "custom"
)

// TargetType describes how the audience of a notification is resolved.
type TargetType string

const (
	// TargetTypeAll addresses every active device token.
	TargetTypeAll TargetType = "all"
	// TargetTypeCategory addresses subscribers of a category. No user-interest
	// model exists yet, so it currently resolves the same set as TargetTypeAll.
	TargetTypeCategory TargetType = "category"
	// TargetTypeSpecific addresses an explicit comma-separated list of token IDs.
	TargetTypeSpecific TargetType = "specific"
)

// Notification represents a logical push notification addressed to an audience.
type Notification struct {
	ID              uuid.UUID          `json:"id"`                          // The unique identifier for the notification.
	Title           string             `json:"title"`                       // Push title shown on the device.
	Body            string             `json:"body"`                        // Push body text.
	ImageURL        string             `json:"image_url,omitempty"`         // Optional image attached to the push.
	LinkedContentID *uuid.UUID         `json:"linked_content_id,omitempty"` // Optional reference to an article or other content.
	Type            NotificationType   `json:"type"`                        // Content category of the notification.
	TargetType      TargetType         `json:"target_type"`                 // How the audience is resolved.
	TargetValue     string             `json:"target_value,omitempty"`      // Target argument (category ID or comma-separated token IDs).
	Status          NotificationStatus `json:"status"`                      // Current lifecycle state.
	ScheduledAt     *time.Time         `json:"scheduled_at,omitempty"`      // When a scheduled notification becomes due.
	SentAt          *time.Time         `json:"sent_at,omitempty"`           // Set once the notification enters a terminal state.
	CreatedBy       uuid.UUID          `json:"created_by"`                  // Admin user who created the notification.
	CreatedAt       time.Time          `json:"created_at"`                  // Timestamp of when this record was created.
	UpdatedAt       time.Time          `json:"updated_at"`                  // Timestamp of the last modification.
}

// CanSend reports whether the notification may enter the sending state.
// Only draft and scheduled notifications are eligible.
func (n *Notification) CanSend() bool {
	return n.Status == NotificationStatusDraft || n.Status == NotificationStatusScheduled
}
