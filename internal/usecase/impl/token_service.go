package impl

import (
	"context"
	"time"

	"newsadmin/internal/domain/entity"
	"newsadmin/internal/domain/repository"
	"newsadmin/internal/usecase"

	"github.com/google/uuid"
)

type tokenService struct {
	tokenRepo repository.DeviceTokenRepository
}

// NewTokenService creates a new device token service instance
func NewTokenService(tokenRepo repository.DeviceTokenRepository) usecase.TokenUsecase {
	return &tokenService{tokenRepo: tokenRepo}
}

// RegisterDevice upserts a device token keyed by device ID
func (s *tokenService) RegisterDevice(ctx context.Context, input *usecase.RegisterDeviceInput) (*entity.DeviceToken, error) {
	now := time.Now()
	token := &entity.DeviceToken{
		ID:        uuid.New(),
		Token:     input.Token,
		DeviceID:  input.DeviceID,
		Platform:  input.Platform,
		OwnerID:   input.OwnerID,
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.tokenRepo.UpsertToken(ctx, token); err != nil {
		return nil, err
	}

	// Read back so the caller sees the surviving record when the device was
	// already registered
	return s.tokenRepo.FindTokenByDeviceID(ctx, input.DeviceID)
}

// GetTokenStats returns aggregate token counts by state and platform
func (s *tokenService) GetTokenStats(ctx context.Context) (*repository.TokenStats, error) {
	return s.tokenRepo.GetTokenStats(ctx)
}
