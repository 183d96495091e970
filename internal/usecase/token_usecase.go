package usecase

import (
	"context"

	"newsadmin/internal/domain/entity"
	"newsadmin/internal/domain/repository"

	"github.com/google/uuid"
)

// RegisterDeviceInput carries the fields for registering a device token
type RegisterDeviceInput struct {
	Token    string
	DeviceID string
	Platform entity.Platform
	OwnerID  *uuid.UUID
}

// TokenUsecase defines the interface for device token management use cases
type TokenUsecase interface {
	// RegisterDevice upserts a device token keyed by device ID. Re-registering
	// an existing device replaces its token and reactivates it.
	RegisterDevice(ctx context.Context, input *RegisterDeviceInput) (*entity.DeviceToken, error)

	// GetTokenStats returns aggregate token counts by state and platform
	GetTokenStats(ctx context.Context) (*repository.TokenStats, error)
}
