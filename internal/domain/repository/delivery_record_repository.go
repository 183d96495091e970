// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"errors"
	"time"

	"newsadmin/internal/domain/entity"

	"github.com/google/uuid"
)

// Domain-specific errors for delivery record persistence.
var (
	// ErrDeliveryRecordNotFound is returned when a delivery record is not found.
	ErrDeliveryRecordNotFound = errors.New("delivery record not found")
)

// DeliveryDayStat is one day of delivery outcomes for the analytics rollup.
type DeliveryDayStat struct {
	Date      string `json:"date"`
	Delivered int64  `json:"delivered"`
	Failed    int64  `json:"failed"`
	Clicked   int64  `json:"clicked"`
}

// DeliveryRecordRepository defines the interface for delivery-record database operations.
type DeliveryRecordRepository interface {
	// BatchCreateRecords persists delivery records best-effort. Records are
	// independent inserts; a failure for one does not roll back the others.
	BatchCreateRecords(ctx context.Context, records []*entity.DeliveryRecord) error

	// FindRecordsByNotification retrieves all records for one notification.
	FindRecordsByNotification(ctx context.Context, notificationID uuid.UUID) ([]*entity.DeliveryRecord, error)

	// MarkClicked transitions an existing delivered record to clicked.
	MarkClicked(ctx context.Context, notificationID, tokenID uuid.UUID) error

	// GetDailyStats returns per-day outcome counts since the given time.
	GetDailyStats(ctx context.Context, since time.Time) ([]*DeliveryDayStat, error)
}
