package impl

import (
	"context"
	"strings"

	"newsadmin/internal/domain/entity"
	"newsadmin/internal/domain/repository"

	"github.com/google/uuid"
)

// targetResolver turns a notification's target descriptor into the list of
// active device tokens the dispatch should address
type targetResolver struct {
	tokenRepo repository.DeviceTokenRepository
}

func newTargetResolver(tokenRepo repository.DeviceTokenRepository) *targetResolver {
	return &targetResolver{tokenRepo: tokenRepo}
}

// Resolve returns the active tokens matching the notification's target.
// Category targets currently address the full active audience, the same as
// the all target; per-category device segments are not tracked yet.
func (r *targetResolver) Resolve(ctx context.Context, notification *entity.Notification) ([]*entity.DeviceToken, error) {
	switch notification.TargetType {
	case entity.TargetTypeSpecific:
		ids := parseTokenIDs(notification.TargetValue)
		if len(ids) == 0 {
			return nil, nil
		}
		return r.tokenRepo.FindActiveTokensByIDs(ctx, ids)
	case entity.TargetTypeAll, entity.TargetTypeCategory:
		return r.tokenRepo.FindActiveTokens(ctx)
	default:
		return r.tokenRepo.FindActiveTokens(ctx)
	}
}

// parseTokenIDs splits a comma-separated ID list, dropping blanks and
// malformed entries
func parseTokenIDs(value string) []uuid.UUID {
	parts := strings.Split(value, ",")
	ids := make([]uuid.UUID, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed == "" {
			continue
		}
		id, err := uuid.Parse(trimmed)
		if err != nil {
			continue
		}
		ids = append(ids, id)
	}
	return ids
}
