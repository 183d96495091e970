// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"errors"
	"time"

	"newsadmin/internal/domain/entity"

	"github.com/google/uuid"
)

// Domain-specific errors for notification persistence.
var (
	// ErrNotificationNotFound is returned when a notification is not found.
	ErrNotificationNotFound = errors.New("notification not found")

	// ErrNotificationNotSendable is returned when a notification could not be
	// claimed for sending because it already left the draft or scheduled state.
	ErrNotificationNotSendable = errors.New("notification not in a sendable state")
)

// NotificationRepository defines the interface for notification-related database operations.
type NotificationRepository interface {
	// CreateNotification persists a new notification in its initial state.
	CreateNotification(ctx context.Context, notification *entity.Notification) error

	// FindNotificationByID retrieves a notification by its unique ID.
	FindNotificationByID(ctx context.Context, id uuid.UUID) (*entity.Notification, error)

	// ListNotifications retrieves notifications ordered by creation time, newest first.
	ListNotifications(ctx context.Context, limit, offset int) ([]*entity.Notification, error)

	// MarkSending claims a notification for dispatch. The transition only
	// succeeds while the notification is still draft or scheduled, so two
	// concurrent senders cannot both claim the same notification. Returns
	// ErrNotificationNotSendable when the claim is lost.
	MarkSending(ctx context.Context, id uuid.UUID) error

	// UpdateNotificationStatus transitions a notification to the given status.
	// sentAt is persisted when non-nil (terminal states only).
	UpdateNotificationStatus(ctx context.Context, id uuid.UUID, status entity.NotificationStatus, sentAt *time.Time) error

	// FindDueScheduled retrieves scheduled notifications whose scheduled_at has elapsed.
	FindDueScheduled(ctx context.Context, now time.Time, limit int) ([]*entity.Notification, error)
}
