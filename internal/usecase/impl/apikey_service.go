package impl

import (
	"context"
	"log/slog"
	"time"

	"newsadmin/config"
	"newsadmin/internal/domain/entity"
	domainerrors "newsadmin/internal/domain/errors"
	"newsadmin/internal/domain/repository"
	"newsadmin/internal/errors"
	"newsadmin/internal/usecase"

	"github.com/google/uuid"
)

const lastUsedUpdateTimeout = 5 * time.Second

type apiKeyService struct {
	keyRepo repository.APIKeyRepository
	window  time.Duration
	logger  *slog.Logger
}

// NewAPIKeyService creates a new API key service instance
func NewAPIKeyService(keyRepo repository.APIKeyRepository, cfg *config.Config, logger *slog.Logger) usecase.APIKeyUsecase {
	return &apiKeyService{
		keyRepo: keyRepo,
		window:  cfg.RateLimit.Window,
		logger:  logger,
	}
}

// VerifyKey authenticates a raw key secret against the required permission
func (s *apiKeyService) VerifyKey(ctx context.Context, secret, requiredPermission string) (*entity.APIKey, error) {
	if secret == "" {
		return nil, domainerrors.ErrAPIKeyMissing
	}

	key, err := s.keyRepo.FindAPIKeyBySecret(ctx, secret)
	if err != nil {
		if errors.Is(err, repository.ErrAPIKeyNotFound) {
			return nil, domainerrors.ErrAPIKeyInvalid
		}
		return nil, err
	}

	if key.Status != entity.APIKeyStatusActive {
		return nil, domainerrors.ErrAPIKeyInactive
	}
	if key.IsExpired(time.Now()) {
		return nil, domainerrors.ErrAPIKeyExpired
	}
	if !key.HasPermission(requiredPermission) {
		return nil, domainerrors.ErrInsufficientPermission
	}

	if !key.IsUnlimited() {
		since := time.Now().Add(-s.window)
		count, err := s.keyRepo.CountRequestsSince(ctx, key.ID, since)
		if err != nil {
			return nil, err
		}
		if count >= int64(key.RateLimit) {
			return nil, domainerrors.ErrAPIKeyRateLimited
		}
	}

	return key, nil
}

// LogRequest appends a request log row and bumps the key's last-used
// timestamp. The last-used write runs detached from the request so response
// latency does not depend on it.
func (s *apiKeyService) LogRequest(ctx context.Context, key *entity.APIKey, endpoint, method, ipAddress, userAgent string) {
	logEntry := &entity.APIRequestLog{
		ID:        uuid.New(),
		KeyID:     key.ID,
		Endpoint:  endpoint,
		Method:    method,
		IPAddress: ipAddress,
		UserAgent: userAgent,
		Timestamp: time.Now(),
	}
	if err := s.keyRepo.AppendRequestLog(ctx, logEntry); err != nil {
		s.logger.Error("failed to append request log",
			slog.String("api_key_id", key.ID.String()),
			slog.String("endpoint", endpoint),
			slog.Any("error", err),
		)
	}

	go func() {
		detached, cancel := context.WithTimeout(context.Background(), lastUsedUpdateTimeout)
		defer cancel()
		if err := s.keyRepo.UpdateLastUsed(detached, key.ID, time.Now()); err != nil {
			s.logger.Warn("failed to update key last-used time",
				slog.String("api_key_id", key.ID.String()),
				slog.Any("error", err),
			)
		}
	}()
}

// CreateKey provisions a new API key
func (s *apiKeyService) CreateKey(ctx context.Context, key *entity.APIKey) error {
	return s.keyRepo.CreateAPIKey(ctx, key)
}
