// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"errors"
	"time"

	"newsadmin/internal/domain/entity"

	"github.com/google/uuid"
)

// Domain-specific errors for API key persistence.
var (
	// ErrAPIKeyNotFound is returned when no key matches the presented secret.
	ErrAPIKeyNotFound = errors.New("api key not found")
)

// APIKeyRepository defines the interface for API-key database operations.
type APIKeyRepository interface {
	// CreateAPIKey persists a new API key.
	CreateAPIKey(ctx context.Context, key *entity.APIKey) error

	// FindAPIKeyBySecret retrieves a key record by its bearer secret.
	FindAPIKeyBySecret(ctx context.Context, secret string) (*entity.APIKey, error)

	// UpdateLastUsed stamps the key's last_used column.
	UpdateLastUsed(ctx context.Context, id uuid.UUID, at time.Time) error

	// AppendRequestLog appends one request-log row. The log is append-only;
	// nothing in this subsystem updates or deletes rows.
	AppendRequestLog(ctx context.Context, log *entity.APIRequestLog) error

	// CountRequestsSince counts request-log rows for a key with a timestamp at
	// or after the given time. Used as the sliding rate-limit window.
	CountRequestsSince(ctx context.Context, keyID uuid.UUID, since time.Time) (int64, error)
}
