package impl

import (
	"context"
	"testing"

	"newsadmin/internal/domain/entity"
	"newsadmin/internal/domain/repository"
	mockRepo "newsadmin/internal/mocks/repository"
	"newsadmin/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestTokenService_RegisterDevice_ReturnsSurvivingRecord(t *testing.T) {
	tokenRepo := mockRepo.NewMockDeviceTokenRepository(t)
	svc := NewTokenService(tokenRepo)

	ctx := context.Background()
	existing := &entity.DeviceToken{
		ID:       uuid.New(),
		Token:    "fcm-token-new",
		DeviceID: "device-123",
		Platform: entity.PlatformIOS,
		IsActive: true,
	}

	var upserted *entity.DeviceToken
	tokenRepo.EXPECT().UpsertToken(ctx, mock.Anything).
		Run(func(_ context.Context, token *entity.DeviceToken) {
			upserted = token
		}).
		Return(nil)
	tokenRepo.EXPECT().FindTokenByDeviceID(ctx, "device-123").Return(existing, nil)

	registered, err := svc.RegisterDevice(ctx, &usecase.RegisterDeviceInput{
		Token:    "fcm-token-new",
		DeviceID: "device-123",
		Platform: entity.PlatformIOS,
	})

	require.NoError(t, err)
	assert.Equal(t, existing.ID, registered.ID)

	require.NotNil(t, upserted)
	assert.True(t, upserted.IsActive)
	assert.Equal(t, "fcm-token-new", upserted.Token)
}

func TestTokenService_GetTokenStats(t *testing.T) {
	tokenRepo := mockRepo.NewMockDeviceTokenRepository(t)
	svc := NewTokenService(tokenRepo)

	ctx := context.Background()
	stats := &repository.TokenStats{Total: 10, Active: 8, Inactive: 2, Android: 6, IOS: 4}
	tokenRepo.EXPECT().GetTokenStats(ctx).Return(stats, nil)

	got, err := svc.GetTokenStats(ctx)

	require.NoError(t, err)
	assert.Equal(t, stats, got)
}
