package usecase

import (
	"context"
	"time"

	"newsadmin/internal/domain/entity"
	"newsadmin/internal/domain/repository"

	"github.com/google/uuid"
)

// CreateNotificationInput carries the fields for creating a notification draft
type CreateNotificationInput struct {
	Title           string
	Body            string
	ImageURL        string
	LinkedContentID *uuid.UUID
	Type            entity.NotificationType
	TargetType      entity.TargetType
	TargetValue     string
	ScheduledAt     *time.Time
	CreatedBy       uuid.UUID
}

// DispatchSummary reports the outcome of a dispatch run
type DispatchSummary struct {
	NotificationID uuid.UUID                 `json:"notification_id"`
	Status         entity.NotificationStatus `json:"status"`
	Successful     int                       `json:"successful"`
	Failed         int                       `json:"failed"`
	TotalTokens    int                       `json:"total_tokens"`
}

// AnalyticsOverview aggregates delivery outcomes over the whole window.
// DeliveryRate counts clicked records as delivered since a click implies
// the push reached the device.
type AnalyticsOverview struct {
	TotalRecords int64   `json:"total_records"`
	Delivered    int64   `json:"delivered"`
	Failed       int64   `json:"failed"`
	Clicked      int64   `json:"clicked"`
	DeliveryRate float64 `json:"delivery_rate"`
	ClickRate    float64 `json:"click_rate"`
}

// AnalyticsReport combines the window-wide overview with the per-day chart data
type AnalyticsReport struct {
	Days     int                           `json:"days"`
	Overview *AnalyticsOverview            `json:"overview"`
	Daily    []*repository.DeliveryDayStat `json:"daily"`
}

// NotificationUsecase defines the interface for notification management use cases
type NotificationUsecase interface {
	// CreateNotification creates a notification in draft or scheduled state
	CreateNotification(ctx context.Context, input *CreateNotificationInput) (*entity.Notification, error)

	// SendNotification dispatches a notification to its resolved audience and
	// returns the delivery summary once the run completes
	SendNotification(ctx context.Context, notificationID uuid.UUID) (*DispatchSummary, error)

	// SendTestNotification creates a custom notification addressed to every
	// registered token and runs it through the same dispatch pipeline as a
	// regular send, returning the delivery summary
	SendTestNotification(ctx context.Context, createdBy uuid.UUID, title, body string) (*DispatchSummary, error)

	// ListNotifications retrieves notifications ordered by creation time with pagination
	ListNotifications(ctx context.Context, limit, offset int) ([]*entity.Notification, error)

	// GetAnalytics returns the delivery-rate overview and per-day counters
	// for the trailing window
	GetAnalytics(ctx context.Context, days int) (*AnalyticsReport, error)

	// TrackClick marks a delivered record as clicked
	TrackClick(ctx context.Context, notificationID, tokenID uuid.UUID) error

	// DispatchDueScheduled sends every scheduled notification whose time has
	// arrived and returns the number of notifications dispatched
	DispatchDueScheduled(ctx context.Context, batchSize int) (int, error)
}
