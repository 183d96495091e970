// Package entity contains the core business objects of the project.
package entity

import (
	"slices"
	"time"

	"github.com/google/uuid"
)

// Permission scopes granted to API keys. Each externally reachable endpoint
// declares the scope it requires.
const (
	// PermissionUnlimited bypasses both rate limiting and fine-grained permission checks.
	PermissionUnlimited = "unlimited"
	// PermissionNotificationsSend allows device token registration for push delivery.
	PermissionNotificationsSend = "notifications:send"
	// PermissionNewsRead allows the public read surface, including click tracking.
	PermissionNewsRead = "news:read"
)

// APIKeyStatus is the activation state of an API key.
type APIKeyStatus string

const (
	APIKeyStatusActive   APIKeyStatus = "active"
	APIKeyStatusInactive APIKeyStatus = "inactive"
)

// RateLimitUnlimited disables rate limiting for a key.
const RateLimitUnlimited = -1

// APIKey grants programmatic access to the public v1 endpoints.
type APIKey struct {
	ID          uuid.UUID    `json:"id"`                   // The unique identifier for the key record.
	Name        string       `json:"name"`                 // Human-readable label (e.g. "mobile-app-prod").
	Key         string       `json:"-"`                    // The bearer secret; never serialized outward.
	Permissions []string     `json:"permissions"`          // Granted permission scopes.
	Status      APIKeyStatus `json:"status"`               // active or inactive.
	RateLimit   int          `json:"rate_limit"`           // Requests per hour; RateLimitUnlimited disables the limit.
	ExpiresAt   *time.Time   `json:"expires_at,omitempty"` // Optional expiry; expired keys are rejected.
	LastUsed    *time.Time   `json:"last_used,omitempty"`  // Updated on each accepted request.
	CreatedAt   time.Time    `json:"created_at"`           // Timestamp of when this key was created.
}

// HasPermission reports whether the key holds the required scope.
// The unlimited scope short-circuits every check.
func (k *APIKey) HasPermission(required string) bool {
	return slices.Contains(k.Permissions, PermissionUnlimited) || slices.Contains(k.Permissions, required)
}

// IsUnlimited reports whether the key bypasses rate limiting, either through
// a -1 limit or the unlimited scope.
func (k *APIKey) IsUnlimited() bool {
	return k.RateLimit == RateLimitUnlimited || slices.Contains(k.Permissions, PermissionUnlimited)
}

// IsExpired reports whether the key has an expiry in the past.
func (k *APIKey) IsExpired(now time.Time) bool {
	return k.ExpiresAt != nil && k.ExpiresAt.Before(now)
}

// APIRequestLog is one append-only row per accepted API-key request.
// The gatekeeper reads it back as the sliding rate-limit window.
type APIRequestLog struct {
	ID        uuid.UUID `json:"id"`         // The unique identifier for the log row.
	KeyID     uuid.UUID `json:"key_id"`     // The API key the request authenticated with.
	Endpoint  string    `json:"endpoint"`   // Request path.
	Method    string    `json:"method"`     // HTTP method.
	IPAddress string    `json:"ip_address"` // Client IP as seen by the server.
	UserAgent string    `json:"user_agent"` // Client user agent.
	Timestamp time.Time `json:"timestamp"`  // When the request was accepted.
}
