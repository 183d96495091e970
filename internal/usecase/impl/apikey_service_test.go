package impl

import (
	"context"
	"testing"
	"time"

	"newsadmin/config"
	"newsadmin/internal/domain/entity"
	domainerrors "newsadmin/internal/domain/errors"
	"newsadmin/internal/domain/repository"
	mockRepo "newsadmin/internal/mocks/repository"
	"newsadmin/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestAPIKeyService(t *testing.T) (usecase.APIKeyUsecase, *mockRepo.MockAPIKeyRepository) {
	keyRepo := mockRepo.NewMockAPIKeyRepository(t)
	cfg := &config.Config{
		RateLimit: &config.RateLimitConfig{Window: time.Hour},
	}

	return NewAPIKeyService(keyRepo, cfg, discardLogger()), keyRepo
}

func sendScopedKey(rateLimit int) *entity.APIKey {
	return &entity.APIKey{
		ID:          uuid.New(),
		Name:        "mobile-app",
		Key:         "secret-value",
		Permissions: []string{entity.PermissionNotificationsSend},
		Status:      entity.APIKeyStatusActive,
		RateLimit:   rateLimit,
	}
}

func TestAPIKeyService_VerifyKey_MissingSecret(t *testing.T) {
	svc, _ := createTestAPIKeyService(t)

	_, err := svc.VerifyKey(context.Background(), "", entity.PermissionNotificationsSend)

	require.ErrorIs(t, err, domainerrors.ErrAPIKeyMissing)
}

func TestAPIKeyService_VerifyKey_UnknownSecret(t *testing.T) {
	svc, keyRepo := createTestAPIKeyService(t)

	ctx := context.Background()
	keyRepo.EXPECT().FindAPIKeyBySecret(ctx, "bogus").Return(nil, repository.ErrAPIKeyNotFound)

	_, err := svc.VerifyKey(ctx, "bogus", entity.PermissionNotificationsSend)

	require.ErrorIs(t, err, domainerrors.ErrAPIKeyInvalid)
}

func TestAPIKeyService_VerifyKey_InactiveKey(t *testing.T) {
	svc, keyRepo := createTestAPIKeyService(t)

	ctx := context.Background()
	key := sendScopedKey(100)
	key.Status = entity.APIKeyStatusInactive
	keyRepo.EXPECT().FindAPIKeyBySecret(ctx, key.Key).Return(key, nil)

	_, err := svc.VerifyKey(ctx, key.Key, entity.PermissionNotificationsSend)

	require.ErrorIs(t, err, domainerrors.ErrAPIKeyInactive)
}

func TestAPIKeyService_VerifyKey_ExpiredKey(t *testing.T) {
	svc, keyRepo := createTestAPIKeyService(t)

	ctx := context.Background()
	key := sendScopedKey(100)
	expired := time.Now().Add(-time.Minute)
	key.ExpiresAt = &expired
	keyRepo.EXPECT().FindAPIKeyBySecret(ctx, key.Key).Return(key, nil)

	_, err := svc.VerifyKey(ctx, key.Key, entity.PermissionNotificationsSend)

	require.ErrorIs(t, err, domainerrors.ErrAPIKeyExpired)
}

func TestAPIKeyService_VerifyKey_MissingPermission(t *testing.T) {
	svc, keyRepo := createTestAPIKeyService(t)

	ctx := context.Background()
	key := sendScopedKey(100)
	keyRepo.EXPECT().FindAPIKeyBySecret(ctx, key.Key).Return(key, nil)

	_, err := svc.VerifyKey(ctx, key.Key, entity.PermissionNewsRead)

	require.ErrorIs(t, err, domainerrors.ErrInsufficientPermission)
}

func TestAPIKeyService_VerifyKey_AtLimitRejected(t *testing.T) {
	svc, keyRepo := createTestAPIKeyService(t)

	ctx := context.Background()
	key := sendScopedKey(100)
	keyRepo.EXPECT().FindAPIKeyBySecret(ctx, key.Key).Return(key, nil)
	keyRepo.EXPECT().CountRequestsSince(ctx, key.ID, mock.Anything).Return(100, nil)

	_, err := svc.VerifyKey(ctx, key.Key, entity.PermissionNotificationsSend)

	require.ErrorIs(t, err, domainerrors.ErrAPIKeyRateLimited)
}

func TestAPIKeyService_VerifyKey_UnderLimitAccepted(t *testing.T) {
	svc, keyRepo := createTestAPIKeyService(t)

	ctx := context.Background()
	key := sendScopedKey(100)
	keyRepo.EXPECT().FindAPIKeyBySecret(ctx, key.Key).Return(key, nil)

	var since time.Time
	keyRepo.EXPECT().CountRequestsSince(ctx, key.ID, mock.Anything).
		Run(func(_ context.Context, _ uuid.UUID, s time.Time) {
			since = s
		}).
		Return(99, nil)

	verified, err := svc.VerifyKey(ctx, key.Key, entity.PermissionNotificationsSend)

	require.NoError(t, err)
	assert.Equal(t, key.ID, verified.ID)
	assert.WithinDuration(t, time.Now().Add(-time.Hour), since, time.Minute)
}

func TestAPIKeyService_VerifyKey_NegativeLimitSkipsCounting(t *testing.T) {
	svc, keyRepo := createTestAPIKeyService(t)

	ctx := context.Background()
	key := sendScopedKey(entity.RateLimitUnlimited)
	keyRepo.EXPECT().FindAPIKeyBySecret(ctx, key.Key).Return(key, nil)

	_, err := svc.VerifyKey(ctx, key.Key, entity.PermissionNotificationsSend)

	require.NoError(t, err)
	keyRepo.AssertNotCalled(t, "CountRequestsSince", mock.Anything, mock.Anything, mock.Anything)
}

func TestAPIKeyService_VerifyKey_UnlimitedScopeBypassesEverything(t *testing.T) {
	svc, keyRepo := createTestAPIKeyService(t)

	ctx := context.Background()
	key := sendScopedKey(5)
	key.Permissions = []string{entity.PermissionUnlimited}
	keyRepo.EXPECT().FindAPIKeyBySecret(ctx, key.Key).Return(key, nil)

	_, err := svc.VerifyKey(ctx, key.Key, entity.PermissionNewsRead)

	require.NoError(t, err)
	keyRepo.AssertNotCalled(t, "CountRequestsSince", mock.Anything, mock.Anything, mock.Anything)
}

func TestAPIKeyService_LogRequest_AppendsRowAndBumpsLastUsed(t *testing.T) {
	svc, keyRepo := createTestAPIKeyService(t)

	ctx := context.Background()
	key := sendScopedKey(100)

	var logged *entity.APIRequestLog
	keyRepo.EXPECT().AppendRequestLog(ctx, mock.Anything).
		Run(func(_ context.Context, log *entity.APIRequestLog) {
			logged = log
		}).
		Return(nil)

	updated := make(chan struct{})
	keyRepo.EXPECT().UpdateLastUsed(mock.Anything, key.ID, mock.Anything).
		Run(func(_ context.Context, _ uuid.UUID, _ time.Time) {
			close(updated)
		}).
		Return(nil)

	svc.LogRequest(ctx, key, "/v1/notifications/register", "POST", "203.0.113.9", "newsapp/2.1")

	select {
	case <-updated:
	case <-time.After(time.Second):
		t.Fatal("last-used update never ran")
	}

	require.NotNil(t, logged)
	assert.Equal(t, key.ID, logged.KeyID)
	assert.Equal(t, "/v1/notifications/register", logged.Endpoint)
	assert.Equal(t, "POST", logged.Method)
	assert.Equal(t, "203.0.113.9", logged.IPAddress)
}
