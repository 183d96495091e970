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

// notificationRepository implements the repository.NotificationRepository interface.
type notificationRepository struct {
	db *gorm.DB
}

// NewNotificationRepository is the constructor for notificationRepository.
func NewNotificationRepository(db *gorm.DB) repository.NotificationRepository {
	return &notificationRepository{
		db: db,
	}
}

// CreateNotification persists a new notification in its initial state.
func (repo *notificationRepository) CreateNotification(ctx context.Context, notification *entity.Notification) error {
	notificationM := fromNotificationDomain(notification)

	if err := repo.db.WithContext(ctx).Create(notificationM).Error; err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required notification information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create notification")
	}

	// Update the entity with generated values
	notification.ID = notificationM.ID
	notification.CreatedAt = notificationM.CreatedAt
	notification.UpdatedAt = notificationM.UpdatedAt

	return nil
}

// FindNotificationByID retrieves a notification by its unique ID.
func (repo *notificationRepository) FindNotificationByID(ctx context.Context, id uuid.UUID) (*entity.Notification, error) {
	var notificationM model.NotificationModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&notificationM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrNotificationNotFound
		}

		return nil, errors.Wrap(err, "failed to find notification by ID")
	}

	return toNotificationDomain(&notificationM), nil
}

// ListNotifications retrieves notifications ordered by creation time, newest first.
func (repo *notificationRepository) ListNotifications(ctx context.Context, limit, offset int) ([]*entity.Notification, error) {
	var notificationModels []*model.NotificationModel

	query := repo.db.WithContext(ctx).
		Order("created_at DESC")

	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}

	if err := query.Find(&notificationModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list notifications")
	}

	notifications := make([]*entity.Notification, 0, len(notificationModels))
	for _, notificationM := range notificationModels {
		notifications = append(notifications, toNotificationDomain(notificationM))
	}

	return notifications, nil
}

// MarkSending claims a notification for dispatch with a conditional update so
// the draft/scheduled to sending transition happens at most once per row.
func (repo *notificationRepository) MarkSending(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Model(&model.NotificationModel{}).
		Where("id = ? AND status IN ?", id, []string{
			string(entity.NotificationStatusDraft),
			string(entity.NotificationStatusScheduled),
		}).
		Updates(map[string]any{
			"status":     string(entity.NotificationStatusSending),
			"updated_at": time.Now(),
		})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to mark notification as sending")
	}

	if result.RowsAffected == 0 {
		return repository.ErrNotificationNotSendable
	}

	return nil
}

// UpdateNotificationStatus transitions a notification to the given status.
func (repo *notificationRepository) UpdateNotificationStatus(ctx context.Context, id uuid.UUID, status entity.NotificationStatus, sentAt *time.Time) error {
	updates := map[string]any{
		"status": string(status),
	}
	if sentAt != nil {
		updates["sent_at"] = *sentAt
	}

	result := repo.db.WithContext(ctx).
		Model(&model.NotificationModel{}).
		Where("id = ?", id).
		Updates(updates)

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update notification status")
	}

	if result.RowsAffected == 0 {
		return repository.ErrNotificationNotFound
	}

	return nil
}

// FindDueScheduled retrieves scheduled notifications whose scheduled_at has elapsed.
func (repo *notificationRepository) FindDueScheduled(ctx context.Context, now time.Time, limit int) ([]*entity.Notification, error) {
	var notificationModels []*model.NotificationModel

	query := repo.db.WithContext(ctx).
		Where("status = ? AND scheduled_at <= ?", string(entity.NotificationStatusScheduled), now).
		Order("scheduled_at ASC")

	if limit > 0 {
		query = query.Limit(limit)
	}

	if err := query.Find(&notificationModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find due scheduled notifications")
	}

	notifications := make([]*entity.Notification, 0, len(notificationModels))
	for _, notificationM := range notificationModels {
		notifications = append(notifications, toNotificationDomain(notificationM))
	}

	return notifications, nil
}

// --- Mapper Functions ---

// toNotificationDomain converts a GORM NotificationModel to a domain Notification entity.
func toNotificationDomain(data *model.NotificationModel) *entity.Notification {
	if data == nil {
		return nil
	}

	return &entity.Notification{
		ID:              data.ID,
		Title:           data.Title,
		Body:            data.Body,
		ImageURL:        data.ImageURL,
		LinkedContentID: data.LinkedContentID,
		Type:            entity.NotificationType(data.Type),
		TargetType:      entity.TargetType(data.TargetType),
		TargetValue:     data.TargetValue,
		Status:          entity.NotificationStatus(data.Status),
		ScheduledAt:     data.ScheduledAt,
		SentAt:          data.SentAt,
		CreatedBy:       data.CreatedBy,
		CreatedAt:       data.CreatedAt,
		UpdatedAt:       data.UpdatedAt,
	}
}

// fromNotificationDomain converts a domain Notification entity to a GORM NotificationModel.
func fromNotificationDomain(data *entity.Notification) *model.NotificationModel {
	if data == nil {
		return nil
	}

	return &model.NotificationModel{
		ID:              data.ID,
		Title:           data.Title,
		Body:            data.Body,
		ImageURL:        data.ImageURL,
		LinkedContentID: data.LinkedContentID,
		Type:            string(data.Type),
		TargetType:      string(data.TargetType),
		TargetValue:     data.TargetValue,
		Status:          string(data.Status),
		ScheduledAt:     data.ScheduledAt,
		SentAt:          data.SentAt,
		CreatedBy:       data.CreatedBy,
		CreatedAt:       data.CreatedAt,
		UpdatedAt:       data.UpdatedAt,
	}
}
