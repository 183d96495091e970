package impl

import (
	"context"
	"log/slog"
	"time"

	"newsadmin/config"
	deliveryctx "newsadmin/internal/delivery/context"
	"newsadmin/internal/domain/entity"
	domainerrors "newsadmin/internal/domain/errors"
	"newsadmin/internal/domain/repository"
	"newsadmin/internal/domain/service"
	"newsadmin/internal/errors"
	"newsadmin/internal/usecase"

	"github.com/google/uuid"
)

const (
	defaultAnalyticsDays = 7
	maxAnalyticsDays     = 90
)

type notificationService struct {
	notificationRepo repository.NotificationRepository
	recordRepo       repository.DeliveryRecordRepository
	resolver         *targetResolver
	dispatcher       *dispatcher
	recorder         *deliveryRecorder
	pruner           *tokenHealthPruner
	publisher        service.EventPublisher
	logger           *slog.Logger
}

// NewNotificationService creates a new notification service instance
func NewNotificationService(
	notificationRepo repository.NotificationRepository,
	tokenRepo repository.DeviceTokenRepository,
	recordRepo repository.DeliveryRecordRepository,
	gateway service.PushGateway,
	publisher service.EventPublisher,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.NotificationUsecase {
	return &notificationService{
		notificationRepo: notificationRepo,
		recordRepo:       recordRepo,
		resolver:         newTargetResolver(tokenRepo),
		dispatcher:       newDispatcher(gateway, cfg.Dispatch.GatewayTimeout, cfg.Dispatch.BatchSize, logger),
		recorder:         newDeliveryRecorder(recordRepo, logger),
		pruner:           newTokenHealthPruner(tokenRepo, logger),
		publisher:        publisher,
		logger:           logger,
	}
}

// CreateNotification creates a notification in draft or scheduled state
func (s *notificationService) CreateNotification(ctx context.Context, input *usecase.CreateNotificationInput) (*entity.Notification, error) {
	now := time.Now()

	status := entity.NotificationStatusDraft
	if input.ScheduledAt != nil {
		status = entity.NotificationStatusScheduled
	}

	notification := &entity.Notification{
		ID:              uuid.New(),
		Title:           input.Title,
		Body:            input.Body,
		ImageURL:        input.ImageURL,
		LinkedContentID: input.LinkedContentID,
		Type:            input.Type,
		TargetType:      input.TargetType,
		TargetValue:     input.TargetValue,
		Status:          status,
		ScheduledAt:     input.ScheduledAt,
		CreatedBy:       input.CreatedBy,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if err := s.notificationRepo.CreateNotification(ctx, notification); err != nil {
		return nil, err
	}

	return notification, nil
}

// SendNotification dispatches a notification to its resolved audience
func (s *notificationService) SendNotification(ctx context.Context, notificationID uuid.UUID) (*usecase.DispatchSummary, error) {
	notification, err := s.notificationRepo.FindNotificationByID(ctx, notificationID)
	if err != nil {
		if errors.Is(err, repository.ErrNotificationNotFound) {
			return nil, domainerrors.ErrNotificationNotFound
		}
		return nil, err
	}

	if !notification.CanSend() {
		return nil, domainerrors.ErrNotificationAlreadySent
	}

	return s.runDispatch(ctx, notification)
}

// runDispatch claims the notification and runs the resolve, dispatch, record
// and prune stages, leaving the notification in a terminal state. The claim is
// a conditional update, so a send racing the scheduler sweep loses here rather
// than dispatching twice.
func (s *notificationService) runDispatch(ctx context.Context, notification *entity.Notification) (*usecase.DispatchSummary, error) {
	notificationID := notification.ID

	if err := s.notificationRepo.MarkSending(ctx, notificationID); err != nil {
		if errors.Is(err, repository.ErrNotificationNotSendable) {
			return nil, domainerrors.ErrNotificationAlreadySent
		}
		return nil, err
	}

	tokens, err := s.resolver.Resolve(ctx, notification)
	if err != nil {
		s.finishDispatch(ctx, notificationID, entity.NotificationStatusFailed)
		return nil, err
	}
	if len(tokens) == 0 {
		s.finishDispatch(ctx, notificationID, entity.NotificationStatusFailed)
		return nil, domainerrors.ErrTargetResolutionEmpty
	}

	outcomes := s.dispatcher.Dispatch(ctx, tokens, s.buildPayload(notification))

	successful := 0
	for _, outcome := range outcomes {
		if outcome.Success {
			successful++
		}
	}
	failed := len(outcomes) - successful

	s.recorder.Record(ctx, notificationID, tokens, outcomes)
	s.pruner.Prune(ctx, tokens, outcomes)

	status := deliveryStatusFor(successful, failed)
	s.finishDispatch(ctx, notificationID, status)

	summary := &usecase.DispatchSummary{
		NotificationID: notificationID,
		Status:         status,
		Successful:     successful,
		Failed:         failed,
		TotalTokens:    len(tokens),
	}

	s.publishResult(ctx, summary)

	s.logger.Info("notification dispatch finished",
		slog.String("notification_id", notificationID.String()),
		slog.String("status", string(status)),
		slog.Int("successful", successful),
		slog.Int("failed", failed),
	)

	return summary, nil
}

// SendTestNotification creates a custom notification targeting every
// registered token and pushes it through the same pipeline as a regular send,
// so test runs exercise record writing and token pruning too.
func (s *notificationService) SendTestNotification(ctx context.Context, createdBy uuid.UUID, title, body string) (*usecase.DispatchSummary, error) {
	now := time.Now()
	notification := &entity.Notification{
		ID:         uuid.New(),
		Title:      title,
		Body:       body,
		Type:       entity.NotificationTypeCustom,
		TargetType: entity.TargetTypeAll,
		Status:     entity.NotificationStatusDraft,
		CreatedBy:  createdBy,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if err := s.notificationRepo.CreateNotification(ctx, notification); err != nil {
		return nil, err
	}

	return s.runDispatch(ctx, notification)
}

// ListNotifications retrieves notifications ordered by creation time
func (s *notificationService) ListNotifications(ctx context.Context, limit, offset int) ([]*entity.Notification, error) {
	return s.notificationRepo.ListNotifications(ctx, limit, offset)
}

// GetAnalytics returns the delivery-rate overview and per-day counters for
// the trailing window
func (s *notificationService) GetAnalytics(ctx context.Context, days int) (*usecase.AnalyticsReport, error) {
	if days <= 0 {
		days = defaultAnalyticsDays
	}
	if days > maxAnalyticsDays {
		days = maxAnalyticsDays
	}

	since := time.Now().AddDate(0, 0, -days)

	daily, err := s.recordRepo.GetDailyStats(ctx, since)
	if err != nil {
		return nil, err
	}

	return &usecase.AnalyticsReport{
		Days:     days,
		Overview: buildAnalyticsOverview(daily),
		Daily:    daily,
	}, nil
}

func buildAnalyticsOverview(daily []*repository.DeliveryDayStat) *usecase.AnalyticsOverview {
	overview := &usecase.AnalyticsOverview{}
	for _, day := range daily {
		overview.Delivered += day.Delivered
		overview.Failed += day.Failed
		overview.Clicked += day.Clicked
	}
	overview.TotalRecords = overview.Delivered + overview.Failed + overview.Clicked

	reached := overview.Delivered + overview.Clicked
	if overview.TotalRecords > 0 {
		overview.DeliveryRate = float64(reached) / float64(overview.TotalRecords)
	}
	if reached > 0 {
		overview.ClickRate = float64(overview.Clicked) / float64(reached)
	}

	return overview
}

// TrackClick marks a delivered record as clicked
func (s *notificationService) TrackClick(ctx context.Context, notificationID, tokenID uuid.UUID) error {
	if err := s.recordRepo.MarkClicked(ctx, notificationID, tokenID); err != nil {
		if errors.Is(err, repository.ErrDeliveryRecordNotFound) {
			return domainerrors.ErrDeliveryRecordNotFound
		}
		return err
	}

	return nil
}

// DispatchDueScheduled sends every scheduled notification whose time has arrived
func (s *notificationService) DispatchDueScheduled(ctx context.Context, batchSize int) (int, error) {
	due, err := s.notificationRepo.FindDueScheduled(ctx, time.Now(), batchSize)
	if err != nil {
		return 0, err
	}

	dispatched := 0
	for _, notification := range due {
		if _, err := s.SendNotification(ctx, notification.ID); err != nil {
			s.logger.Error("scheduled dispatch failed",
				slog.String("notification_id", notification.ID.String()),
				slog.Any("error", err),
			)
			continue
		}
		dispatched++
	}

	return dispatched, nil
}

func (s *notificationService) buildPayload(notification *entity.Notification) *service.PushPayload {
	data := map[string]string{
		"notification_id": notification.ID.String(),
		"type":            string(notification.Type),
	}
	if notification.LinkedContentID != nil {
		data["content_id"] = notification.LinkedContentID.String()
	}

	return &service.PushPayload{
		Title:    notification.Title,
		Body:     notification.Body,
		ImageURL: notification.ImageURL,
		Data:     data,
	}
}

// finishDispatch moves a notification to a terminal status and stamps the
// completion time. Failures here are logged rather than returned because the
// dispatch outcome has already been determined.
func (s *notificationService) finishDispatch(ctx context.Context, notificationID uuid.UUID, status entity.NotificationStatus) {
	sentAt := time.Now()
	if err := s.notificationRepo.UpdateNotificationStatus(ctx, notificationID, status, &sentAt); err != nil {
		s.logger.Error("failed to update notification status",
			slog.String("notification_id", notificationID.String()),
			slog.String("status", string(status)),
			slog.Any("error", err),
		)
	}
}

func (s *notificationService) publishResult(ctx context.Context, summary *usecase.DispatchSummary) {
	event := &service.DeliveryEvent{
		RequestID:      deliveryctx.GetRequestIDFromContext(ctx),
		NotificationID: summary.NotificationID.String(),
		Status:         string(summary.Status),
		Successful:     summary.Successful,
		Failed:         summary.Failed,
		TotalTokens:    summary.TotalTokens,
	}
	if err := s.publisher.PublishDeliveryEvent(ctx, event); err != nil {
		s.logger.Error("failed to publish delivery event",
			slog.String("notification_id", summary.NotificationID.String()),
			slog.Any("error", err),
		)
	}
}

func deliveryStatusFor(successful, failed int) entity.NotificationStatus {
	switch {
	case failed == 0:
		return entity.NotificationStatusSent
	case successful == 0:
		return entity.NotificationStatusFailed
	default:
		return entity.NotificationStatusPartiallySent
	}
}
