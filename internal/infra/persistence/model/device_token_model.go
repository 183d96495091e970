package model

import (
	"time"

	"github.com/google/uuid"
)

// DeviceTokenModel is the GORM-specific struct for the 'device_tokens' table.
// It represents a device registered for push notifications.
type DeviceTokenModel struct {
	ID        uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Token     string     `gorm:"type:varchar(255);not null"`
	DeviceID  string     `gorm:"type:varchar(255);not null;uniqueIndex"`
	Platform  string     `gorm:"type:varchar(50);not null"`
	OwnerID   *uuid.UUID `gorm:"type:uuid;index"`
	IsActive  bool       `gorm:"not null;default:true;index"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (DeviceTokenModel) TableName() string {
	return "device_tokens"
}
