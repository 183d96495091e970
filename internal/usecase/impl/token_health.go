package impl

import (
	"context"
	"log/slog"

	"newsadmin/internal/domain/entity"
	"newsadmin/internal/domain/repository"
	"newsadmin/internal/domain/service"

	"github.com/google/uuid"
)

// tokenHealthPruner deactivates tokens the provider reports as permanently
// dead. Transient failures leave tokens untouched.
type tokenHealthPruner struct {
	tokenRepo repository.DeviceTokenRepository
	logger    *slog.Logger
}

func newTokenHealthPruner(tokenRepo repository.DeviceTokenRepository, logger *slog.Logger) *tokenHealthPruner {
	return &tokenHealthPruner{tokenRepo: tokenRepo, logger: logger}
}

// Prune deactivates every token whose outcome carries a permanent failure
// code and returns the number of tokens deactivated
func (p *tokenHealthPruner) Prune(ctx context.Context, tokens []*entity.DeviceToken, outcomes []service.DeliveryOutcome) int {
	deadIDs := make([]uuid.UUID, 0)
	for i, outcome := range outcomes {
		if outcome.IsPermanentFailure() {
			deadIDs = append(deadIDs, tokens[i].ID)
		}
	}
	if len(deadIDs) == 0 {
		return 0
	}

	if err := p.tokenRepo.DeactivateTokens(ctx, deadIDs); err != nil {
		p.logger.Error("failed to deactivate dead tokens",
			slog.Int("tokens", len(deadIDs)),
			slog.Any("error", err),
		)
		return 0
	}

	p.logger.Info("deactivated dead device tokens", slog.Int("tokens", len(deadIDs)))
	return len(deadIDs)
}
