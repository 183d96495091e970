// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"newsadmin/config"
	"newsadmin/internal/delivery/http/middleware"
	"newsadmin/internal/delivery/http/router/handler"
	"newsadmin/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	Config              *config.Config
	NotificationHandler *handler.NotificationHandler
	TokenHandler        *handler.TokenHandler
	TestHandler         *handler.TestHandler
	AuthMiddleware      *middleware.AuthMiddleware
	APIKeyMiddleware    *middleware.APIKeyMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	cfg                 *config.Config
	notificationHandler *handler.NotificationHandler
	tokenHandler        *handler.TokenHandler
	testHandler         *handler.TestHandler
	authMiddleware      *middleware.AuthMiddleware
	apiKeyMiddleware    *middleware.APIKeyMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		cfg:                 params.Config,
		notificationHandler: params.NotificationHandler,
		tokenHandler:        params.TokenHandler,
		testHandler:         params.TestHandler,
		authMiddleware:      params.AuthMiddleware,
		apiKeyMiddleware:    params.APIKeyMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Admin routes that require a session token with the admin role
	adminGroup := e.Group("/notifications")
	adminGroup.Use(r.authMiddleware.Authenticate)
	adminGroup.Use(r.authMiddleware.RequireRole("admin"))
	{
		adminGroup.POST("", r.notificationHandler.CreateNotification)
		adminGroup.POST("/send", r.notificationHandler.SendNotification)
		adminGroup.POST("/test", r.notificationHandler.SendTestNotification)
		adminGroup.GET("", r.notificationHandler.ListNotifications)
		adminGroup.GET("/tokens", r.tokenHandler.GetTokenStats)
		adminGroup.GET("/analytics", r.notificationHandler.GetAnalytics)
	}

	// Public v1 routes gated by API key scopes
	v1Group := e.Group("/v1/notifications")
	{
		v1Group.POST("/register",
			r.tokenHandler.RegisterDevice,
			r.apiKeyMiddleware.Require(entity.PermissionNotificationsSend),
		)
		v1Group.POST("/track-click",
			r.notificationHandler.TrackClick,
			r.apiKeyMiddleware.Require(entity.PermissionNewsRead),
		)
	}

	// Middleware check routes for local environments
	if r.cfg.TestRoutes.Enabled {
		testGroup := e.Group("/test")
		{
			testGroup.GET("/public", r.testHandler.TestPublicEndpoint)
			testGroup.GET("/auth", r.testHandler.TestAuthMiddleware, r.authMiddleware.Authenticate)
		}
	}
}
