package model

import (
	"time"

	"github.com/google/uuid"
)

// APIKeyModel is the GORM-specific struct for the 'api_keys' table.
type APIKeyModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Name        string    `gorm:"type:varchar(128);not null"`
	Key         string    `gorm:"type:varchar(255);not null;uniqueIndex"`
	Permissions []string  `gorm:"type:text;serializer:json"`
	Status      string    `gorm:"type:varchar(50);not null;default:'active'"`
	RateLimit   int       `gorm:"not null;default:1000"`
	ExpiresAt   *time.Time
	LastUsed    *time.Time
	CreatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (APIKeyModel) TableName() string {
	return "api_keys"
}

// APIRequestLogModel is the GORM-specific struct for the 'api_request_logs' table.
// Rows are append-only; the gatekeeper only counts them back.
type APIRequestLogModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	KeyID     uuid.UUID `gorm:"type:uuid;not null;index:idx_request_logs_key_time"`
	Endpoint  string    `gorm:"type:text;not null"`
	Method    string    `gorm:"type:varchar(10);not null"`
	IPAddress string    `gorm:"type:varchar(64)"`
	UserAgent string    `gorm:"type:text"`
	Timestamp time.Time `gorm:"not null;index:idx_request_logs_key_time"`
}

// TableName explicitly sets the table name for GORM.
func (APIRequestLogModel) TableName() string {
	return "api_request_logs"
}
