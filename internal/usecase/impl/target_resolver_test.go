package impl

import (
	"context"
	"testing"

	"newsadmin/internal/domain/entity"
	mockRepo "newsadmin/internal/mocks/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTargetResolver_AllTargetsFullAudience(t *testing.T) {
	tokenRepo := mockRepo.NewMockDeviceTokenRepository(t)
	resolver := newTargetResolver(tokenRepo)

	ctx := context.Background()
	tokens := []*entity.DeviceToken{activeToken("tok-1"), activeToken("tok-2")}
	tokenRepo.EXPECT().FindActiveTokens(ctx).Return(tokens, nil)

	resolved, err := resolver.Resolve(ctx, draftNotification(entity.TargetTypeAll, ""))

	require.NoError(t, err)
	assert.Equal(t, tokens, resolved)
}

func TestTargetResolver_CategoryTargetsFullAudience(t *testing.T) {
	tokenRepo := mockRepo.NewMockDeviceTokenRepository(t)
	resolver := newTargetResolver(tokenRepo)

	ctx := context.Background()
	tokens := []*entity.DeviceToken{activeToken("tok-1")}
	tokenRepo.EXPECT().FindActiveTokens(ctx).Return(tokens, nil)

	resolved, err := resolver.Resolve(ctx, draftNotification(entity.TargetTypeCategory, "politics"))

	require.NoError(t, err)
	assert.Equal(t, tokens, resolved)
}

func TestTargetResolver_SpecificDropsMalformedIDs(t *testing.T) {
	tokenRepo := mockRepo.NewMockDeviceTokenRepository(t)
	resolver := newTargetResolver(tokenRepo)

	ctx := context.Background()
	known := uuid.New()
	token := activeToken("tok-known")
	token.ID = known

	tokenRepo.EXPECT().
		FindActiveTokensByIDs(ctx, []uuid.UUID{known}).
		Return([]*entity.DeviceToken{token}, nil)

	target := known.String() + ", garbage, ,"
	resolved, err := resolver.Resolve(ctx, draftNotification(entity.TargetTypeSpecific, target))

	require.NoError(t, err)
	require.Len(t, resolved, 1)
	assert.Equal(t, known, resolved[0].ID)
}

func TestTargetResolver_SpecificWithNoValidIDsSkipsLookup(t *testing.T) {
	tokenRepo := mockRepo.NewMockDeviceTokenRepository(t)
	resolver := newTargetResolver(tokenRepo)

	resolved, err := resolver.Resolve(context.Background(), draftNotification(entity.TargetTypeSpecific, "nope,also-nope"))

	require.NoError(t, err)
	assert.Empty(t, resolved)
}
