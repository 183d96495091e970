package handler

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"newsadmin/internal/delivery/http/response"
	"newsadmin/internal/domain/entity"
	"newsadmin/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// NotificationHandler holds dependencies for notification-related handlers
type NotificationHandler struct {
	uc     usecase.NotificationUsecase
	logger *slog.Logger
}

// NewNotificationHandler is the constructor for NotificationHandler
func NewNotificationHandler(uc usecase.NotificationUsecase, logger *slog.Logger) *NotificationHandler {
	return &NotificationHandler{
		uc:     uc,
		logger: logger,
	}
}

// CreateNotificationRequest represents the request body for creating a notification
type CreateNotificationRequest struct {
	Title           string     `json:"title" validate:"required,max=200"`
	Body            string     `json:"body" validate:"required"`
	ImageURL        string     `json:"image_url,omitempty" validate:"omitempty,url"`
	LinkedContentID *uuid.UUID `json:"linked_content_id,omitempty"`
	Type            string     `json:"type" validate:"required,oneof=news breaking custom"`
	TargetType      string     `json:"target_type" validate:"required,oneof=all category specific"`
	TargetValue     string     `json:"target_value,omitempty"`
	ScheduledAt     *time.Time `json:"scheduled_at,omitempty"`
}

// CreateNotification handles creating a notification draft
func (h *NotificationHandler) CreateNotification(c echo.Context) error {
	var req CreateNotificationRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid notification input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	adminID, err := h.getAdminID(c)
	if err != nil {
		return err
	}

	notification, err := h.uc.CreateNotification(c.Request().Context(), &usecase.CreateNotificationInput{
		Title:           req.Title,
		Body:            req.Body,
		ImageURL:        req.ImageURL,
		LinkedContentID: req.LinkedContentID,
		Type:            entity.NotificationType(req.Type),
		TargetType:      entity.TargetType(req.TargetType),
		TargetValue:     req.TargetValue,
		ScheduledAt:     req.ScheduledAt,
		CreatedBy:       adminID,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, notification, "Notification created successfully")
}

// SendNotificationRequest represents the request body for dispatching a notification
type SendNotificationRequest struct {
	NotificationID uuid.UUID `json:"notification_id" validate:"required"`
}

// SendNotification dispatches a notification to its audience
func (h *NotificationHandler) SendNotification(c echo.Context) error {
	var req SendNotificationRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid send input")
	}
	if req.NotificationID == uuid.Nil {
		return response.BadRequest(c, "VALIDATION_ERROR", "notification_id is required")
	}

	summary, err := h.uc.SendNotification(c.Request().Context(), req.NotificationID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, summary, "Notification dispatched")
}

// SendTestNotificationRequest represents the request body for a test send.
// Title and body fall back to fixed test copy when omitted.
type SendTestNotificationRequest struct {
	Title string `json:"title,omitempty" validate:"omitempty,max=200"`
	Body  string `json:"body,omitempty"`
}

// SendTestNotification runs a synthetic payload through the full dispatch
// pipeline and returns the delivery summary
func (h *NotificationHandler) SendTestNotification(c echo.Context) error {
	var req SendTestNotificationRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid test input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	if req.Title == "" {
		req.Title = "Test Notification"
	}
	if req.Body == "" {
		req.Body = "This is a test notification"
	}

	adminID, err := h.getAdminID(c)
	if err != nil {
		return err
	}

	summary, err := h.uc.SendTestNotification(c.Request().Context(), adminID, req.Title, req.Body)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, summary, "Test notification sent")
}

// ListNotifications retrieves notification history with pagination
func (h *NotificationHandler) ListNotifications(c echo.Context) error {
	limit := 20
	offset := 0

	if limitStr := c.QueryParam("limit"); limitStr != "" {
		if parsedLimit, err := strconv.Atoi(limitStr); err == nil && parsedLimit > 0 {
			limit = parsedLimit
		}
	}
	if offsetStr := c.QueryParam("offset"); offsetStr != "" {
		if parsedOffset, err := strconv.Atoi(offsetStr); err == nil && parsedOffset >= 0 {
			offset = parsedOffset
		}
	}

	notifications, err := h.uc.ListNotifications(c.Request().Context(), limit, offset)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, notifications, "Notifications retrieved successfully")
}

// GetAnalytics returns the delivery-rate overview plus per-day chart data for
// the trailing window
func (h *NotificationHandler) GetAnalytics(c echo.Context) error {
	days := 0
	if daysStr := c.QueryParam("days"); daysStr != "" {
		if parsedDays, err := strconv.Atoi(daysStr); err == nil {
			days = parsedDays
		}
	}

	report, err := h.uc.GetAnalytics(c.Request().Context(), days)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, report, "Analytics retrieved successfully")
}

// TrackClickRequest represents the request body for click tracking
type TrackClickRequest struct {
	NotificationID uuid.UUID `json:"notification_id" validate:"required"`
	TokenID        uuid.UUID `json:"token_id" validate:"required"`
}

// TrackClick marks a delivered record as clicked
func (h *NotificationHandler) TrackClick(c echo.Context) error {
	var req TrackClickRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid click input")
	}
	if req.NotificationID == uuid.Nil || req.TokenID == uuid.Nil {
		return response.BadRequest(c, "VALIDATION_ERROR", "notification_id and token_id are required")
	}

	if err := h.uc.TrackClick(c.Request().Context(), req.NotificationID, req.TokenID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, nil, "Click recorded")
}

// getAdminID extracts the authenticated admin's ID from the context
func (h *NotificationHandler) getAdminID(c echo.Context) (uuid.UUID, error) {
	userIDVal := c.Get("userID")
	adminID, ok := userIDVal.(uuid.UUID)
	if !ok {
		return uuid.Nil, response.Unauthorized(c, "INVALID_TOKEN", "Invalid admin ID in token")
	}

	return adminID, nil
}
