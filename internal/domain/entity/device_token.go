// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Platform identifies the mobile platform a device token belongs to.
type Platform string

const (
	PlatformAndroid Platform = "android"
	PlatformIOS     Platform = "ios"
)

// DeviceToken represents a device registered for push notifications.
// At most one record exists per DeviceID; re-registration updates in place.
type DeviceToken struct {
	ID        uuid.UUID  `json:"id"`                 // The unique identifier for the token record.
	Token     string     `json:"token"`              // Opaque push token issued by the gateway to the app instance.
	DeviceID  string     `json:"device_id"`          // Unique device identifier from the client.
	Platform  Platform   `json:"platform"`           // Device platform (ios, android).
	OwnerID   *uuid.UUID `json:"owner_id,omitempty"` // Optional owning user, when the device is signed in.
	IsActive  bool       `json:"is_active"`          // Inactive tokens are excluded from audience resolution.
	CreatedAt time.Time  `json:"created_at"`         // Timestamp of when this device was registered.
	UpdatedAt time.Time  `json:"updated_at"`         // Timestamp of the last modification.
}
