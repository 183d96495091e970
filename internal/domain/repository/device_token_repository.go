// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"errors"

	"newsadmin/internal/domain/entity"

	"github.com/google/uuid"
)

// Domain-specific errors for device token persistence.
var (
	// ErrTokenNotFound is returned when a device token is not found.
	ErrTokenNotFound = errors.New("device token not found")
)

// TokenStats aggregates device token counts for the admin dashboard.
type TokenStats struct {
	Total    int64 `json:"total"`
	Active   int64 `json:"active"`
	Inactive int64 `json:"inactive"`
	Android  int64 `json:"android"`
	IOS      int64 `json:"ios"`
}

// DeviceTokenRepository defines the interface for device-token database operations.
type DeviceTokenRepository interface {
	// UpsertToken registers a device or updates its existing record in place,
	// keyed by DeviceID. Re-registration reactivates the token.
	UpsertToken(ctx context.Context, token *entity.DeviceToken) error

	// FindTokenByDeviceID retrieves the token record for a client device identifier.
	FindTokenByDeviceID(ctx context.Context, deviceID string) (*entity.DeviceToken, error)

	// FindActiveTokens retrieves every active device token.
	FindActiveTokens(ctx context.Context) ([]*entity.DeviceToken, error)

	// FindActiveTokensByIDs retrieves the active tokens among the given IDs.
	// Unknown IDs are dropped without error.
	FindActiveTokensByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.DeviceToken, error)

	// DeactivateTokens soft-deletes the given token records. Deactivating an
	// already-inactive token is a no-op.
	DeactivateTokens(ctx context.Context, ids []uuid.UUID) error

	// GetTokenStats returns aggregate counts and the platform breakdown.
	GetTokenStats(ctx context.Context) (*TokenStats, error)
}
