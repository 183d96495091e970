package impl

import (
	"context"
	"log/slog"
	"time"

	"newsadmin/internal/domain/entity"
	"newsadmin/internal/domain/repository"
	"newsadmin/internal/domain/service"

	"github.com/google/uuid"
)

// deliveryRecorder persists one delivery record per dispatched token
type deliveryRecorder struct {
	recordRepo repository.DeliveryRecordRepository
	logger     *slog.Logger
}

func newDeliveryRecorder(recordRepo repository.DeliveryRecordRepository, logger *slog.Logger) *deliveryRecorder {
	return &deliveryRecorder{recordRepo: recordRepo, logger: logger}
}

// Record writes delivery records for the outcomes of a dispatch run.
// Tokens and outcomes must be aligned by index. Persistence failures are
// logged rather than propagated so a storage hiccup cannot change the
// notification's delivery result.
func (r *deliveryRecorder) Record(ctx context.Context, notificationID uuid.UUID, tokens []*entity.DeviceToken, outcomes []service.DeliveryOutcome) {
	if len(outcomes) == 0 {
		return
	}

	now := time.Now()
	records := make([]*entity.DeliveryRecord, 0, len(outcomes))
	for i, outcome := range outcomes {
		record := &entity.DeliveryRecord{
			ID:             uuid.New(),
			NotificationID: notificationID,
			TokenID:        tokens[i].ID,
			SentAt:         now,
		}
		if outcome.Success {
			record.Status = entity.DeliveryStatusDelivered
			deliveredAt := now
			record.DeliveredAt = &deliveredAt
		} else {
			record.Status = entity.DeliveryStatusFailed
			record.ErrorMessage = outcome.ErrorCode
		}
		records = append(records, record)
	}

	if err := r.recordRepo.BatchCreateRecords(ctx, records); err != nil {
		r.logger.Error("failed to persist delivery records",
			slog.String("notification_id", notificationID.String()),
			slog.Int("records", len(records)),
			slog.Any("error", err),
		)
	}
}
