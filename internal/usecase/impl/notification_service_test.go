package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"newsadmin/config"
	"newsadmin/internal/domain/entity"
	domainerrors "newsadmin/internal/domain/errors"
	"newsadmin/internal/domain/repository"
	"newsadmin/internal/domain/service"
	mockRepo "newsadmin/internal/mocks/repository"
	mockSvc "newsadmin/internal/mocks/service"
	"newsadmin/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestNotificationService(t *testing.T) (
	usecase.NotificationUsecase,
	*mockRepo.MockNotificationRepository,
	*mockRepo.MockDeviceTokenRepository,
	*mockRepo.MockDeliveryRecordRepository,
	*mockSvc.MockPushGateway,
	*mockSvc.MockEventPublisher,
) {
	notificationRepo := mockRepo.NewMockNotificationRepository(t)
	tokenRepo := mockRepo.NewMockDeviceTokenRepository(t)
	recordRepo := mockRepo.NewMockDeliveryRecordRepository(t)
	gateway := mockSvc.NewMockPushGateway(t)
	publisher := mockSvc.NewMockEventPublisher(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelDebug}))

	cfg := &config.Config{
		Dispatch: &config.DispatchConfig{
			GatewayTimeout: time.Second,
			BatchSize:      500,
		},
	}

	svc := NewNotificationService(notificationRepo, tokenRepo, recordRepo, gateway, publisher, cfg, logger)

	return svc, notificationRepo, tokenRepo, recordRepo, gateway, publisher
}

func draftNotification(target entity.TargetType, targetValue string) *entity.Notification {
	return &entity.Notification{
		ID:          uuid.New(),
		Title:       "Morning briefing",
		Body:        "Top stories for today",
		Type:        entity.NotificationTypeNews,
		TargetType:  target,
		TargetValue: targetValue,
		Status:      entity.NotificationStatusDraft,
		CreatedBy:   uuid.New(),
	}
}

func activeToken(value string) *entity.DeviceToken {
	return &entity.DeviceToken{
		ID:       uuid.New(),
		Token:    value,
		DeviceID: "device-" + value,
		Platform: entity.PlatformAndroid,
		IsActive: true,
	}
}

func TestNotificationService_SendNotification_AllDelivered(t *testing.T) {
	svc, notificationRepo, tokenRepo, recordRepo, gateway, publisher := createTestNotificationService(t)

	ctx := context.Background()
	notification := draftNotification(entity.TargetTypeAll, "")
	tokens := []*entity.DeviceToken{activeToken("tok-a"), activeToken("tok-b")}

	notificationRepo.EXPECT().FindNotificationByID(ctx, notification.ID).Return(notification, nil)
	notificationRepo.EXPECT().MarkSending(ctx, notification.ID).Return(nil)
	tokenRepo.EXPECT().FindActiveTokens(ctx).Return(tokens, nil)

	gateway.EXPECT().
		SendMulticast(mock.Anything, []string{"tok-a", "tok-b"}, mock.Anything).
		Return([]service.DeliveryOutcome{
			{Token: "tok-a", Success: true},
			{Token: "tok-b", Success: true},
		}, nil)

	recordRepo.EXPECT().BatchCreateRecords(ctx, mock.Anything).Return(nil)
	notificationRepo.EXPECT().
		UpdateNotificationStatus(ctx, notification.ID, entity.NotificationStatusSent, mock.Anything).
		Return(nil)
	publisher.EXPECT().PublishDeliveryEvent(ctx, mock.Anything).Return(nil)

	summary, err := svc.SendNotification(ctx, notification.ID)

	require.NoError(t, err)
	assert.Equal(t, entity.NotificationStatusSent, summary.Status)
	assert.Equal(t, 2, summary.Successful)
	assert.Equal(t, 0, summary.Failed)
	assert.Equal(t, 2, summary.TotalTokens)
}

func TestNotificationService_SendNotification_PartialDeliveryPrunesDeadTokens(t *testing.T) {
	svc, notificationRepo, tokenRepo, recordRepo, gateway, publisher := createTestNotificationService(t)

	ctx := context.Background()
	notification := draftNotification(entity.TargetTypeAll, "")
	healthy := activeToken("tok-live")
	dead := activeToken("tok-dead")

	notificationRepo.EXPECT().FindNotificationByID(ctx, notification.ID).Return(notification, nil)
	notificationRepo.EXPECT().MarkSending(ctx, notification.ID).Return(nil)
	tokenRepo.EXPECT().FindActiveTokens(ctx).Return([]*entity.DeviceToken{healthy, dead}, nil)

	gateway.EXPECT().
		SendMulticast(mock.Anything, []string{"tok-live", "tok-dead"}, mock.Anything).
		Return([]service.DeliveryOutcome{
			{Token: "tok-live", Success: true},
			{Token: "tok-dead", Success: false, ErrorCode: service.OutcomeErrorUnregistered},
		}, nil)

	var persisted []*entity.DeliveryRecord
	recordRepo.EXPECT().BatchCreateRecords(ctx, mock.Anything).
		Run(func(_ context.Context, records []*entity.DeliveryRecord) {
			persisted = records
		}).
		Return(nil)

	tokenRepo.EXPECT().DeactivateTokens(ctx, []uuid.UUID{dead.ID}).Return(nil)

	notificationRepo.EXPECT().
		UpdateNotificationStatus(ctx, notification.ID, entity.NotificationStatusPartiallySent, mock.Anything).
		Return(nil)
	publisher.EXPECT().PublishDeliveryEvent(ctx, mock.Anything).Return(nil)

	summary, err := svc.SendNotification(ctx, notification.ID)

	require.NoError(t, err)
	assert.Equal(t, entity.NotificationStatusPartiallySent, summary.Status)
	assert.Equal(t, 1, summary.Successful)
	assert.Equal(t, 1, summary.Failed)

	require.Len(t, persisted, 2)
	assert.Equal(t, entity.DeliveryStatusDelivered, persisted[0].Status)
	assert.Equal(t, entity.DeliveryStatusFailed, persisted[1].Status)
	assert.Equal(t, service.OutcomeErrorUnregistered, persisted[1].ErrorMessage)
}

func TestNotificationService_SendNotification_TransientFailuresKeepTokens(t *testing.T) {
	svc, notificationRepo, tokenRepo, recordRepo, gateway, publisher := createTestNotificationService(t)

	ctx := context.Background()
	notification := draftNotification(entity.TargetTypeAll, "")
	token := activeToken("tok-flaky")

	notificationRepo.EXPECT().FindNotificationByID(ctx, notification.ID).Return(notification, nil)
	notificationRepo.EXPECT().MarkSending(ctx, notification.ID).Return(nil)
	tokenRepo.EXPECT().FindActiveTokens(ctx).Return([]*entity.DeviceToken{token}, nil)

	gateway.EXPECT().
		SendMulticast(mock.Anything, []string{"tok-flaky"}, mock.Anything).
		Return([]service.DeliveryOutcome{
			{Token: "tok-flaky", Success: false, ErrorCode: service.OutcomeErrorUnavailable},
		}, nil)

	recordRepo.EXPECT().BatchCreateRecords(ctx, mock.Anything).Return(nil)
	notificationRepo.EXPECT().
		UpdateNotificationStatus(ctx, notification.ID, entity.NotificationStatusFailed, mock.Anything).
		Return(nil)
	publisher.EXPECT().PublishDeliveryEvent(ctx, mock.Anything).Return(nil)

	summary, err := svc.SendNotification(ctx, notification.ID)

	require.NoError(t, err)
	assert.Equal(t, entity.NotificationStatusFailed, summary.Status)
	assert.Equal(t, 0, summary.Successful)
	assert.Equal(t, 1, summary.Failed)
	tokenRepo.AssertNotCalled(t, "DeactivateTokens", mock.Anything, mock.Anything)
}

func TestNotificationService_SendNotification_TransportFailureFailsEveryToken(t *testing.T) {
	svc, notificationRepo, tokenRepo, recordRepo, gateway, publisher := createTestNotificationService(t)

	ctx := context.Background()
	notification := draftNotification(entity.TargetTypeAll, "")
	tokens := []*entity.DeviceToken{activeToken("tok-a"), activeToken("tok-b")}

	notificationRepo.EXPECT().FindNotificationByID(ctx, notification.ID).Return(notification, nil)
	notificationRepo.EXPECT().MarkSending(ctx, notification.ID).Return(nil)
	tokenRepo.EXPECT().FindActiveTokens(ctx).Return(tokens, nil)

	gateway.EXPECT().
		SendMulticast(mock.Anything, mock.Anything, mock.Anything).
		Return(nil, context.DeadlineExceeded)

	var persisted []*entity.DeliveryRecord
	recordRepo.EXPECT().BatchCreateRecords(ctx, mock.Anything).
		Run(func(_ context.Context, records []*entity.DeliveryRecord) {
			persisted = records
		}).
		Return(nil)

	notificationRepo.EXPECT().
		UpdateNotificationStatus(ctx, notification.ID, entity.NotificationStatusFailed, mock.Anything).
		Return(nil)
	publisher.EXPECT().PublishDeliveryEvent(ctx, mock.Anything).Return(nil)

	summary, err := svc.SendNotification(ctx, notification.ID)

	require.NoError(t, err)
	assert.Equal(t, entity.NotificationStatusFailed, summary.Status)
	assert.Equal(t, 2, summary.Failed)

	require.Len(t, persisted, 2)
	for _, record := range persisted {
		assert.Equal(t, entity.DeliveryStatusFailed, record.Status)
		assert.Equal(t, service.OutcomeErrorUnavailable, record.ErrorMessage)
	}
}

func TestNotificationService_SendNotification_EmptyAudienceFailsWithoutRecords(t *testing.T) {
	svc, notificationRepo, _, recordRepo, _, publisher := createTestNotificationService(t)

	ctx := context.Background()
	notification := draftNotification(entity.TargetTypeSpecific, "not-a-uuid")

	notificationRepo.EXPECT().FindNotificationByID(ctx, notification.ID).Return(notification, nil)
	notificationRepo.EXPECT().MarkSending(ctx, notification.ID).Return(nil)
	notificationRepo.EXPECT().
		UpdateNotificationStatus(ctx, notification.ID, entity.NotificationStatusFailed, mock.Anything).
		Return(nil)

	summary, err := svc.SendNotification(ctx, notification.ID)

	require.ErrorIs(t, err, domainerrors.ErrTargetResolutionEmpty)
	assert.Nil(t, summary)
	recordRepo.AssertNotCalled(t, "BatchCreateRecords", mock.Anything, mock.Anything)
	publisher.AssertNotCalled(t, "PublishDeliveryEvent", mock.Anything, mock.Anything)
}

func TestNotificationService_SendNotification_TerminalNotificationRejected(t *testing.T) {
	svc, notificationRepo, _, _, _, _ := createTestNotificationService(t)

	ctx := context.Background()
	notification := draftNotification(entity.TargetTypeAll, "")
	notification.Status = entity.NotificationStatusSent

	notificationRepo.EXPECT().FindNotificationByID(ctx, notification.ID).Return(notification, nil)

	summary, err := svc.SendNotification(ctx, notification.ID)

	require.ErrorIs(t, err, domainerrors.ErrNotificationAlreadySent)
	assert.Nil(t, summary)
}

func TestNotificationService_SendNotification_UnknownNotification(t *testing.T) {
	svc, notificationRepo, _, _, _, _ := createTestNotificationService(t)

	ctx := context.Background()
	id := uuid.New()

	notificationRepo.EXPECT().FindNotificationByID(ctx, id).Return(nil, repository.ErrNotificationNotFound)

	summary, err := svc.SendNotification(ctx, id)

	require.ErrorIs(t, err, domainerrors.ErrNotificationNotFound)
	assert.Nil(t, summary)
}

func TestNotificationService_CreateNotification_DraftWithoutSchedule(t *testing.T) {
	svc, notificationRepo, _, _, _, _ := createTestNotificationService(t)

	ctx := context.Background()
	notificationRepo.EXPECT().CreateNotification(ctx, mock.Anything).Return(nil)

	created, err := svc.CreateNotification(ctx, &usecase.CreateNotificationInput{
		Title:      "Evening recap",
		Body:       "What happened today",
		Type:       entity.NotificationTypeNews,
		TargetType: entity.TargetTypeAll,
		CreatedBy:  uuid.New(),
	})

	require.NoError(t, err)
	assert.Equal(t, entity.NotificationStatusDraft, created.Status)
	assert.Nil(t, created.SentAt)
}

func TestNotificationService_CreateNotification_ScheduledWhenTimeGiven(t *testing.T) {
	svc, notificationRepo, _, _, _, _ := createTestNotificationService(t)

	ctx := context.Background()
	scheduledAt := time.Now().Add(time.Hour)
	notificationRepo.EXPECT().CreateNotification(ctx, mock.Anything).Return(nil)

	created, err := svc.CreateNotification(ctx, &usecase.CreateNotificationInput{
		Title:       "Scheduled alert",
		Body:        "Goes out later",
		Type:        entity.NotificationTypeBreaking,
		TargetType:  entity.TargetTypeAll,
		ScheduledAt: &scheduledAt,
		CreatedBy:   uuid.New(),
	})

	require.NoError(t, err)
	assert.Equal(t, entity.NotificationStatusScheduled, created.Status)
}

func TestNotificationService_TrackClick_UnknownRecord(t *testing.T) {
	svc, _, _, recordRepo, _, _ := createTestNotificationService(t)

	ctx := context.Background()
	notificationID := uuid.New()
	tokenID := uuid.New()

	recordRepo.EXPECT().MarkClicked(ctx, notificationID, tokenID).Return(repository.ErrDeliveryRecordNotFound)

	err := svc.TrackClick(ctx, notificationID, tokenID)

	require.ErrorIs(t, err, domainerrors.ErrDeliveryRecordNotFound)
}

func TestNotificationService_GetAnalytics_ClampsWindow(t *testing.T) {
	svc, _, _, recordRepo, _, _ := createTestNotificationService(t)

	ctx := context.Background()

	var since time.Time
	recordRepo.EXPECT().GetDailyStats(ctx, mock.Anything).
		Run(func(_ context.Context, s time.Time) {
			since = s
		}).
		Return([]*repository.DeliveryDayStat{}, nil)

	_, err := svc.GetAnalytics(ctx, 500)

	require.NoError(t, err)
	expected := time.Now().AddDate(0, 0, -maxAnalyticsDays)
	assert.WithinDuration(t, expected, since, time.Minute)
}

func TestNotificationService_DispatchDueScheduled(t *testing.T) {
	svc, notificationRepo, tokenRepo, recordRepo, gateway, publisher := createTestNotificationService(t)

	ctx := context.Background()
	due := draftNotification(entity.TargetTypeAll, "")
	due.Status = entity.NotificationStatusScheduled
	token := activeToken("tok-sched")

	notificationRepo.EXPECT().FindDueScheduled(ctx, mock.Anything, 50).
		Return([]*entity.Notification{due}, nil)
	notificationRepo.EXPECT().FindNotificationByID(ctx, due.ID).Return(due, nil)
	notificationRepo.EXPECT().MarkSending(ctx, due.ID).Return(nil)
	tokenRepo.EXPECT().FindActiveTokens(ctx).Return([]*entity.DeviceToken{token}, nil)
	gateway.EXPECT().
		SendMulticast(mock.Anything, []string{"tok-sched"}, mock.Anything).
		Return([]service.DeliveryOutcome{{Token: "tok-sched", Success: true}}, nil)
	recordRepo.EXPECT().BatchCreateRecords(ctx, mock.Anything).Return(nil)
	notificationRepo.EXPECT().
		UpdateNotificationStatus(ctx, due.ID, entity.NotificationStatusSent, mock.Anything).
		Return(nil)
	publisher.EXPECT().PublishDeliveryEvent(ctx, mock.Anything).Return(nil)

	dispatched, err := svc.DispatchDueScheduled(ctx, 50)

	require.NoError(t, err)
	assert.Equal(t, 1, dispatched)
}

func TestNotificationService_SendNotification_LostClaimRejected(t *testing.T) {
	svc, notificationRepo, tokenRepo, _, _, _ := createTestNotificationService(t)

	ctx := context.Background()
	notification := draftNotification(entity.TargetTypeAll, "")

	notificationRepo.EXPECT().FindNotificationByID(ctx, notification.ID).Return(notification, nil)
	notificationRepo.EXPECT().MarkSending(ctx, notification.ID).
		Return(repository.ErrNotificationNotSendable)

	summary, err := svc.SendNotification(ctx, notification.ID)

	require.ErrorIs(t, err, domainerrors.ErrNotificationAlreadySent)
	assert.Nil(t, summary)
	tokenRepo.AssertNotCalled(t, "FindActiveTokens", mock.Anything)
}

func TestNotificationService_SendTestNotification_RunsFullPipeline(t *testing.T) {
	svc, notificationRepo, tokenRepo, recordRepo, gateway, publisher := createTestNotificationService(t)

	ctx := context.Background()
	adminID := uuid.New()
	healthy := activeToken("tok-live")
	dead := activeToken("tok-dead")

	var created *entity.Notification
	notificationRepo.EXPECT().CreateNotification(ctx, mock.Anything).
		Run(func(_ context.Context, notification *entity.Notification) {
			created = notification
		}).
		Return(nil)
	notificationRepo.EXPECT().MarkSending(ctx, mock.Anything).Return(nil)
	tokenRepo.EXPECT().FindActiveTokens(ctx).Return([]*entity.DeviceToken{healthy, dead}, nil)

	gateway.EXPECT().
		SendMulticast(mock.Anything, []string{"tok-live", "tok-dead"}, mock.Anything).
		Return([]service.DeliveryOutcome{
			{Token: "tok-live", Success: true},
			{Token: "tok-dead", Success: false, ErrorCode: service.OutcomeErrorUnregistered},
		}, nil)

	recordRepo.EXPECT().BatchCreateRecords(ctx, mock.Anything).Return(nil)
	tokenRepo.EXPECT().DeactivateTokens(ctx, []uuid.UUID{dead.ID}).Return(nil)
	notificationRepo.EXPECT().
		UpdateNotificationStatus(ctx, mock.Anything, entity.NotificationStatusPartiallySent, mock.Anything).
		Return(nil)
	publisher.EXPECT().PublishDeliveryEvent(ctx, mock.Anything).Return(nil)

	summary, err := svc.SendTestNotification(ctx, adminID, "Test Notification", "This is a test notification")

	require.NoError(t, err)
	assert.Equal(t, entity.NotificationStatusPartiallySent, summary.Status)
	assert.Equal(t, 1, summary.Successful)
	assert.Equal(t, 1, summary.Failed)
	assert.Equal(t, 2, summary.TotalTokens)

	require.NotNil(t, created)
	assert.Equal(t, entity.NotificationTypeCustom, created.Type)
	assert.Equal(t, entity.TargetTypeAll, created.TargetType)
	assert.Equal(t, adminID, created.CreatedBy)
	assert.Equal(t, created.ID, summary.NotificationID)
}

func TestNotificationService_GetAnalytics_ComputesOverview(t *testing.T) {
	svc, _, _, recordRepo, _, _ := createTestNotificationService(t)

	ctx := context.Background()
	daily := []*repository.DeliveryDayStat{
		{Date: "2026-08-28", Delivered: 6, Failed: 2, Clicked: 2},
		{Date: "2026-08-29", Delivered: 4, Failed: 3, Clicked: 3},
	}

	recordRepo.EXPECT().GetDailyStats(ctx, mock.Anything).Return(daily, nil)

	report, err := svc.GetAnalytics(ctx, 7)

	require.NoError(t, err)
	assert.Equal(t, 7, report.Days)
	assert.Equal(t, daily, report.Daily)

	overview := report.Overview
	require.NotNil(t, overview)
	assert.Equal(t, int64(20), overview.TotalRecords)
	assert.Equal(t, int64(10), overview.Delivered)
	assert.Equal(t, int64(5), overview.Failed)
	assert.Equal(t, int64(5), overview.Clicked)
	assert.InDelta(t, 0.75, overview.DeliveryRate, 1e-9)
	assert.InDelta(t, float64(5)/float64(15), overview.ClickRate, 1e-9)
}
