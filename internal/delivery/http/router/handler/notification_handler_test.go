package handler

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	httpvalidator "newsadmin/internal/delivery/http/validator"
	"newsadmin/internal/domain/entity"
	"newsadmin/internal/domain/repository"
	mockUC "newsadmin/internal/mocks/usecase"
	"newsadmin/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newNotificationHandlerTest(t *testing.T, method, target, body string) (*NotificationHandler, *mockUC.MockNotificationUsecase, echo.Context, *httptest.ResponseRecorder) {
	uc := mockUC.NewMockNotificationUsecase(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	handler := NewNotificationHandler(uc, logger)

	e := echo.New()
	e.Validator = httpvalidator.New()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	return handler, uc, c, rec
}

func TestNotificationHandler_CreateNotification_ReturnsOKWithNotification(t *testing.T) {
	handler, uc, c, rec := newNotificationHandlerTest(t, http.MethodPost, "/notifications",
		`{"title":"Morning briefing","body":"Top stories","type":"news","target_type":"all"}`)

	adminID := uuid.New()
	c.Set("userID", adminID)

	created := &entity.Notification{
		ID:         uuid.New(),
		Title:      "Morning briefing",
		Body:       "Top stories",
		Type:       entity.NotificationTypeNews,
		TargetType: entity.TargetTypeAll,
		Status:     entity.NotificationStatusDraft,
		CreatedBy:  adminID,
	}

	uc.EXPECT().CreateNotification(mock.Anything, mock.Anything).Return(created, nil)

	err := handler.CreateNotification(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), created.ID.String())
	assert.Contains(t, rec.Body.String(), `"status":"draft"`)
}

func TestNotificationHandler_SendTestNotification_ReturnsDispatchSummary(t *testing.T) {
	handler, uc, c, rec := newNotificationHandlerTest(t, http.MethodPost, "/notifications/test", `{}`)

	adminID := uuid.New()
	c.Set("userID", adminID)

	summary := &usecase.DispatchSummary{
		NotificationID: uuid.New(),
		Status:         entity.NotificationStatusSent,
		Successful:     3,
		Failed:         0,
		TotalTokens:    3,
	}

	uc.EXPECT().
		SendTestNotification(mock.Anything, adminID, "Test Notification", "This is a test notification").
		Return(summary, nil)

	err := handler.SendTestNotification(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"successful":3`)
	assert.Contains(t, rec.Body.String(), `"total_tokens":3`)
}

func TestNotificationHandler_GetAnalytics_ReturnsOverviewAndDaily(t *testing.T) {
	handler, uc, c, rec := newNotificationHandlerTest(t, http.MethodGet, "/notifications/analytics?days=7", "")

	report := &usecase.AnalyticsReport{
		Days: 7,
		Overview: &usecase.AnalyticsOverview{
			TotalRecords: 20,
			Delivered:    10,
			Failed:       5,
			Clicked:      5,
			DeliveryRate: 0.75,
			ClickRate:    1.0 / 3.0,
		},
		Daily: []*repository.DeliveryDayStat{
			{Date: "2026-08-29", Delivered: 10, Failed: 5, Clicked: 5},
		},
	}

	uc.EXPECT().GetAnalytics(mock.Anything, 7).Return(report, nil)

	err := handler.GetAnalytics(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"delivery_rate":0.75`)
	assert.Contains(t, rec.Body.String(), `"daily"`)
}
