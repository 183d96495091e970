package handler

import (
	"log/slog"
	"net/http"

	"newsadmin/internal/delivery/http/response"
	"newsadmin/internal/domain/entity"
	"newsadmin/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// TokenHandler holds dependencies for device-token handlers
type TokenHandler struct {
	uc     usecase.TokenUsecase
	logger *slog.Logger
}

// NewTokenHandler is the constructor for TokenHandler
func NewTokenHandler(uc usecase.TokenUsecase, logger *slog.Logger) *TokenHandler {
	return &TokenHandler{
		uc:     uc,
		logger: logger,
	}
}

// RegisterDeviceRequest represents the request body for registering a device token
type RegisterDeviceRequest struct {
	Token    string     `json:"token" validate:"required"`
	DeviceID string     `json:"device_id" validate:"required"`
	Platform string     `json:"platform" validate:"required,oneof=android ios"`
	OwnerID  *uuid.UUID `json:"owner_id,omitempty"`
}

// RegisterDevice upserts a device token keyed by device ID
func (h *TokenHandler) RegisterDevice(c echo.Context) error {
	var req RegisterDeviceRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid registration input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	token, err := h.uc.RegisterDevice(c.Request().Context(), &usecase.RegisterDeviceInput{
		Token:    req.Token,
		DeviceID: req.DeviceID,
		Platform: entity.Platform(req.Platform),
		OwnerID:  req.OwnerID,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, token, "Device registered successfully")
}

// GetTokenStats returns aggregate token counts for the admin dashboard
func (h *TokenHandler) GetTokenStats(c echo.Context) error {
	stats, err := h.uc.GetTokenStats(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, stats, "Token stats retrieved successfully")
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"}, "Service is healthy")
}
