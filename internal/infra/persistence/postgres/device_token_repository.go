// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"newsadmin/internal/domain/entity"
	domainerrors "newsadmin/internal/domain/errors"
	"newsadmin/internal/domain/repository"
	"newsadmin/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// deviceTokenRepository implements the repository.DeviceTokenRepository interface.
type deviceTokenRepository struct {
	db *gorm.DB
}

// NewDeviceTokenRepository is the constructor for deviceTokenRepository.
func NewDeviceTokenRepository(db *gorm.DB) repository.DeviceTokenRepository {
	return &deviceTokenRepository{
		db: db,
	}
}

// UpsertToken registers a device or updates its existing record in place,
// keyed by the unique device_id column. Re-registration reactivates the token.
func (repo *deviceTokenRepository) UpsertToken(ctx context.Context, token *entity.DeviceToken) error {
	tokenM := fromDeviceTokenDomain(token)

	err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "device_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"token", "platform", "owner_id", "is_active", "updated_at"}),
		}).
		Create(tokenM).Error
	if err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required token information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to upsert device token")
	}

	// The conflict path keeps the original row ID; read it back so callers
	// always see the persisted identity.
	persisted, err := repo.FindTokenByDeviceID(ctx, token.DeviceID)
	if err != nil {
		return err
	}

	token.ID = persisted.ID
	token.CreatedAt = persisted.CreatedAt
	token.UpdatedAt = persisted.UpdatedAt

	return nil
}

// FindTokenByDeviceID retrieves the token record for a client device identifier.
func (repo *deviceTokenRepository) FindTokenByDeviceID(ctx context.Context, deviceID string) (*entity.DeviceToken, error) {
	var tokenM model.DeviceTokenModel

	if err := repo.db.WithContext(ctx).
		Where("device_id = ?", deviceID).
		First(&tokenM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrTokenNotFound
		}

		return nil, errors.Wrap(err, "failed to find token by device ID")
	}

	return toDeviceTokenDomain(&tokenM), nil
}

// FindActiveTokens retrieves every active device token.
func (repo *deviceTokenRepository) FindActiveTokens(ctx context.Context) ([]*entity.DeviceToken, error) {
	var tokenModels []*model.DeviceTokenModel

	if err := repo.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("created_at DESC").
		Find(&tokenModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find active tokens")
	}

	tokens := make([]*entity.DeviceToken, 0, len(tokenModels))
	for _, tokenM := range tokenModels {
		tokens = append(tokens, toDeviceTokenDomain(tokenM))
	}

	return tokens, nil
}

// FindActiveTokensByIDs retrieves the active tokens among the given IDs.
func (repo *deviceTokenRepository) FindActiveTokensByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.DeviceToken, error) {
	if len(ids) == 0 {
		return []*entity.DeviceToken{}, nil
	}

	var tokenModels []*model.DeviceTokenModel

	if err := repo.db.WithContext(ctx).
		Where("id IN ? AND is_active = ?", ids, true).
		Find(&tokenModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find active tokens by IDs")
	}

	tokens := make([]*entity.DeviceToken, 0, len(tokenModels))
	for _, tokenM := range tokenModels {
		tokens = append(tokens, toDeviceTokenDomain(tokenM))
	}

	return tokens, nil
}

// DeactivateTokens soft-deletes the given token records. Rows that are
// already inactive are left untouched, so the operation is idempotent.
func (repo *deviceTokenRepository) DeactivateTokens(ctx context.Context, ids []uuid.UUID) error {
	if len(ids) == 0 {
		return nil
	}

	if err := repo.db.WithContext(ctx).
		Model(&model.DeviceTokenModel{}).
		Where("id IN ? AND is_active = ?", ids, true).
		Update("is_active", false).Error; err != nil {
		return errors.Wrap(err, "failed to deactivate tokens")
	}

	return nil
}

// GetTokenStats returns aggregate counts and the platform breakdown.
func (repo *deviceTokenRepository) GetTokenStats(ctx context.Context) (*repository.TokenStats, error) {
	stats := &repository.TokenStats{}
	db := repo.db.WithContext(ctx).Model(&model.DeviceTokenModel{})

	if err := db.Session(&gorm.Session{}).Count(&stats.Total).Error; err != nil {
		return nil, errors.Wrap(err, "failed to count tokens")
	}

	if err := db.Session(&gorm.Session{}).Where("is_active = ?", true).Count(&stats.Active).Error; err != nil {
		return nil, errors.Wrap(err, "failed to count active tokens")
	}
	stats.Inactive = stats.Total - stats.Active

	if err := db.Session(&gorm.Session{}).
		Where("is_active = ? AND platform = ?", true, string(entity.PlatformAndroid)).
		Count(&stats.Android).Error; err != nil {
		return nil, errors.Wrap(err, "failed to count android tokens")
	}

	if err := db.Session(&gorm.Session{}).
		Where("is_active = ? AND platform = ?", true, string(entity.PlatformIOS)).
		Count(&stats.IOS).Error; err != nil {
		return nil, errors.Wrap(err, "failed to count ios tokens")
	}

	return stats, nil
}

// --- Mapper Functions ---

// toDeviceTokenDomain converts a GORM DeviceTokenModel to a domain DeviceToken entity.
func toDeviceTokenDomain(data *model.DeviceTokenModel) *entity.DeviceToken {
	if data == nil {
		return nil
	}

	return &entity.DeviceToken{
		ID:        data.ID,
		Token:     data.Token,
		DeviceID:  data.DeviceID,
		Platform:  entity.Platform(data.Platform),
		OwnerID:   data.OwnerID,
		IsActive:  data.IsActive,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

// fromDeviceTokenDomain converts a domain DeviceToken entity to a GORM DeviceTokenModel.
func fromDeviceTokenDomain(data *entity.DeviceToken) *model.DeviceTokenModel {
	if data == nil {
		return nil
	}

	return &model.DeviceTokenModel{
		ID:        data.ID,
		Token:     data.Token,
		DeviceID:  data.DeviceID,
		Platform:  string(data.Platform),
		OwnerID:   data.OwnerID,
		IsActive:  data.IsActive,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}
