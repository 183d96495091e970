// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"
	"time"

	"newsadmin/internal/domain/entity"
	"newsadmin/internal/domain/repository"
	"newsadmin/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// deliveryRecordRepository implements the repository.DeliveryRecordRepository interface.
type deliveryRecordRepository struct {
	db *gorm.DB
}

// NewDeliveryRecordRepository is the constructor for deliveryRecordRepository.
func NewDeliveryRecordRepository(db *gorm.DB) repository.DeliveryRecordRepository {
	return &deliveryRecordRepository{
		db: db,
	}
}

// BatchCreateRecords persists delivery records best-effort. Each row is an
// independent insert; one failed row must not block the rest, so rows are
// inserted one at a time with SkipDefaultTransaction enabled on the session
// and the first error is only reported after all rows were attempted.
func (repo *deliveryRecordRepository) BatchCreateRecords(ctx context.Context, records []*entity.DeliveryRecord) error {
	if len(records) == 0 {
		return nil
	}

	session := repo.db.WithContext(ctx).Session(&gorm.Session{SkipDefaultTransaction: true})

	var firstErr error
	for _, record := range records {
		recordM := fromDeliveryRecordDomain(record)
		if err := session.Create(recordM).Error; err != nil {
			if firstErr == nil {
				firstErr = errors.Wrap(err, "failed to create delivery record")
			}

			continue
		}
		record.ID = recordM.ID
	}

	return firstErr
}

// FindRecordsByNotification retrieves all records for one notification.
func (repo *deliveryRecordRepository) FindRecordsByNotification(ctx context.Context, notificationID uuid.UUID) ([]*entity.DeliveryRecord, error) {
	var recordModels []*model.DeliveryRecordModel

	if err := repo.db.WithContext(ctx).
		Where("notification_id = ?", notificationID).
		Order("sent_at ASC").
		Find(&recordModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find delivery records by notification")
	}

	records := make([]*entity.DeliveryRecord, 0, len(recordModels))
	for _, recordM := range recordModels {
		records = append(records, toDeliveryRecordDomain(recordM))
	}

	return records, nil
}

// MarkClicked transitions an existing delivered record to clicked.
func (repo *deliveryRecordRepository) MarkClicked(ctx context.Context, notificationID, tokenID uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Model(&model.DeliveryRecordModel{}).
		Where("notification_id = ? AND token_id = ? AND status = ?", notificationID, tokenID, string(entity.DeliveryStatusDelivered)).
		Update("status", string(entity.DeliveryStatusClicked))

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to mark delivery record clicked")
	}

	if result.RowsAffected == 0 {
		return repository.ErrDeliveryRecordNotFound
	}

	return nil
}

// GetDailyStats returns per-day outcome counts since the given time.
// Clicked records started as delivered, so they count toward both columns.
func (repo *deliveryRecordRepository) GetDailyStats(ctx context.Context, since time.Time) ([]*repository.DeliveryDayStat, error) {
	var stats []*repository.DeliveryDayStat

	err := repo.db.WithContext(ctx).
		Model(&model.DeliveryRecordModel{}).
		Select(`to_char(sent_at, 'YYYY-MM-DD') AS date,
			count(*) FILTER (WHERE status IN ('delivered', 'clicked')) AS delivered,
			count(*) FILTER (WHERE status = 'failed') AS failed,
			count(*) FILTER (WHERE status = 'clicked') AS clicked`).
		Where("sent_at >= ?", since).
		Group("to_char(sent_at, 'YYYY-MM-DD')").
		Order("date ASC").
		Scan(&stats).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to aggregate daily delivery stats")
	}

	return stats, nil
}

// --- Mapper Functions ---

// toDeliveryRecordDomain converts a GORM DeliveryRecordModel to a domain DeliveryRecord entity.
func toDeliveryRecordDomain(data *model.DeliveryRecordModel) *entity.DeliveryRecord {
	if data == nil {
		return nil
	}

	return &entity.DeliveryRecord{
		ID:             data.ID,
		NotificationID: data.NotificationID,
		TokenID:        data.TokenID,
		Status:         entity.DeliveryStatus(data.Status),
		SentAt:         data.SentAt,
		DeliveredAt:    data.DeliveredAt,
		ErrorMessage:   data.ErrorMessage,
	}
}

// fromDeliveryRecordDomain converts a domain DeliveryRecord entity to a GORM DeliveryRecordModel.
func fromDeliveryRecordDomain(data *entity.DeliveryRecord) *model.DeliveryRecordModel {
	if data == nil {
		return nil
	}

	return &model.DeliveryRecordModel{
		ID:             data.ID,
		NotificationID: data.NotificationID,
		TokenID:        data.TokenID,
		Status:         string(data.Status),
		SentAt:         data.SentAt,
		DeliveredAt:    data.DeliveredAt,
		ErrorMessage:   data.ErrorMessage,
	}
}
