package model

import (
	"time"

	"github.com/google/uuid"
)

// NotificationModel is the GORM-specific struct for the 'notifications' table.
// It represents a logical push notification and its lifecycle state.
type NotificationModel struct {
	ID              uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Title           string     `gorm:"type:text;not null"`
	Body            string     `gorm:"type:text;not null"`
	ImageURL        string     `gorm:"type:text"`
	LinkedContentID *uuid.UUID `gorm:"type:uuid"`
	Type            string     `gorm:"type:varchar(50);not null;default:'news'"`
	TargetType      string     `gorm:"type:varchar(50);not null;default:'all'"`
	TargetValue     string     `gorm:"type:text"`
	Status          string     `gorm:"type:varchar(50);not null;default:'draft';index"`
	ScheduledAt     *time.Time `gorm:"index"`
	SentAt          *time.Time
	CreatedBy       uuid.UUID `gorm:"type:uuid;not null;index"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// TableName explicitly sets the table name for GORM.
func (NotificationModel) TableName() string {
	return "notifications"
}
