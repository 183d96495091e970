// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"
	"time"

	"newsadmin/internal/domain/entity"
	domainerrors "newsadmin/internal/domain/errors"
	"newsadmin/internal/domain/repository"
	"newsadmin/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// apiKeyRepository implements the repository.APIKeyRepository interface.
type apiKeyRepository struct {
	db *gorm.DB
}

// NewAPIKeyRepository is the constructor for apiKeyRepository.
func NewAPIKeyRepository(db *gorm.DB) repository.APIKeyRepository {
	return &apiKeyRepository{
		db: db,
	}
}

// CreateAPIKey persists a new API key.
func (repo *apiKeyRepository) CreateAPIKey(ctx context.Context, key *entity.APIKey) error {
	keyM := fromAPIKeyDomain(key)

	if err := repo.db.WithContext(ctx).Create(keyM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("api key secret already exists")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create api key")
	}

	key.ID = keyM.ID
	key.CreatedAt = keyM.CreatedAt

	return nil
}

// FindAPIKeyBySecret retrieves a key record by its bearer secret.
func (repo *apiKeyRepository) FindAPIKeyBySecret(ctx context.Context, secret string) (*entity.APIKey, error) {
	var keyM model.APIKeyModel

	if err := repo.db.WithContext(ctx).
		Where("key = ?", secret).
		First(&keyM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAPIKeyNotFound
		}

		return nil, errors.Wrap(err, "failed to find api key")
	}

	return toAPIKeyDomain(&keyM), nil
}

// UpdateLastUsed stamps the key's last_used column.
func (repo *apiKeyRepository) UpdateLastUsed(ctx context.Context, id uuid.UUID, at time.Time) error {
	if err := repo.db.WithContext(ctx).
		Model(&model.APIKeyModel{}).
		Where("id = ?", id).
		Update("last_used", at).Error; err != nil {
		return errors.Wrap(err, "failed to update api key last_used")
	}

	return nil
}

// AppendRequestLog appends one request-log row.
func (repo *apiKeyRepository) AppendRequestLog(ctx context.Context, log *entity.APIRequestLog) error {
	logM := fromRequestLogDomain(log)

	if err := repo.db.WithContext(ctx).Create(logM).Error; err != nil {
		return errors.Wrap(err, "failed to append api request log")
	}

	log.ID = logM.ID

	return nil
}

// CountRequestsSince counts request-log rows for a key within the window.
func (repo *apiKeyRepository) CountRequestsSince(ctx context.Context, keyID uuid.UUID, since time.Time) (int64, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.APIRequestLogModel{}).
		Where("key_id = ? AND timestamp >= ?", keyID, since).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count api requests")
	}

	return count, nil
}

// --- Mapper Functions ---

// toAPIKeyDomain converts a GORM APIKeyModel to a domain APIKey entity.
func toAPIKeyDomain(data *model.APIKeyModel) *entity.APIKey {
	if data == nil {
		return nil
	}

	return &entity.APIKey{
		ID:          data.ID,
		Name:        data.Name,
		Key:         data.Key,
		Permissions: data.Permissions,
		Status:      entity.APIKeyStatus(data.Status),
		RateLimit:   data.RateLimit,
		ExpiresAt:   data.ExpiresAt,
		LastUsed:    data.LastUsed,
		CreatedAt:   data.CreatedAt,
	}
}

// fromAPIKeyDomain converts a domain APIKey entity to a GORM APIKeyModel.
func fromAPIKeyDomain(data *entity.APIKey) *model.APIKeyModel {
	if data == nil {
		return nil
	}

	return &model.APIKeyModel{
		ID:          data.ID,
		Name:        data.Name,
		Key:         data.Key,
		Permissions: data.Permissions,
		Status:      string(data.Status),
		RateLimit:   data.RateLimit,
		ExpiresAt:   data.ExpiresAt,
		LastUsed:    data.LastUsed,
		CreatedAt:   data.CreatedAt,
	}
}

// fromRequestLogDomain converts a domain APIRequestLog entity to a GORM APIRequestLogModel.
func fromRequestLogDomain(data *entity.APIRequestLog) *model.APIRequestLogModel {
	if data == nil {
		return nil
	}

	return &model.APIRequestLogModel{
		ID:        data.ID,
		KeyID:     data.KeyID,
		Endpoint:  data.Endpoint,
		Method:    data.Method,
		IPAddress: data.IPAddress,
		UserAgent: data.UserAgent,
		Timestamp: data.Timestamp,
	}
}
