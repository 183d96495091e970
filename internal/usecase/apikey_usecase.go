package usecase

import (
	"context"

	"newsadmin/internal/domain/entity"
)

// APIKeyUsecase defines the interface for API key verification use cases
type APIKeyUsecase interface {
	// VerifyKey authenticates a raw key secret against the required permission.
	// It checks existence, active status, expiry, permission scope and the
	// sliding-window rate limit, in that order.
	VerifyKey(ctx context.Context, secret, requiredPermission string) (*entity.APIKey, error)

	// LogRequest appends a request log row for an accepted request and bumps
	// the key's last-used timestamp
	LogRequest(ctx context.Context, key *entity.APIKey, endpoint, method, ipAddress, userAgent string)

	// CreateKey provisions a new API key with the given permissions and rate limit
	CreateKey(ctx context.Context, key *entity.APIKey) error
}
