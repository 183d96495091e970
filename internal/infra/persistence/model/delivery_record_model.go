package model

import (
	"time"

	"github.com/google/uuid"
)

// DeliveryRecordModel is the GORM-specific struct for the 'delivery_records' table.
// It represents the per-token outcome of one dispatch attempt.
type DeliveryRecordModel struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	NotificationID uuid.UUID `gorm:"type:uuid;not null;index"`
	TokenID        uuid.UUID `gorm:"type:uuid;not null;index"`
	Status         string    `gorm:"type:varchar(50);not null;default:'delivered';index"`
	SentAt         time.Time `gorm:"not null;index"`
	DeliveredAt    *time.Time
	ErrorMessage   string `gorm:"type:text"`
}

// TableName explicitly sets the table name for GORM.
func (DeliveryRecordModel) TableName() string {
	return "delivery_records"
}
