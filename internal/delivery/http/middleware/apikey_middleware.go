package middleware

import (
	"strings"

	"newsadmin/internal/delivery/http/response"
	"newsadmin/internal/domain/entity"
	"newsadmin/internal/usecase"

	"github.com/labstack/echo/v4"
)

const contextKeyAPIKey = "apiKey"

// APIKeyMiddleware gates the public v1 endpoints behind API-key verification.
// Each protected route declares the permission scope it requires.
type APIKeyMiddleware struct {
	apiKeyUC usecase.APIKeyUsecase
}

// NewAPIKeyMiddleware is the constructor for APIKeyMiddleware.
func NewAPIKeyMiddleware(apiKeyUC usecase.APIKeyUsecase) *APIKeyMiddleware {
	return &APIKeyMiddleware{apiKeyUC: apiKeyUC}
}

// Require returns a middleware that rejects requests whose key fails
// verification for the given permission. Accepted requests are logged
// against the key after the handler runs.
func (m *APIKeyMiddleware) Require(permission string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			secret := extractKeySecret(c)

			key, err := m.apiKeyUC.VerifyKey(c.Request().Context(), secret, permission)
			if err != nil {
				return response.HandleAppError(c, err)
			}

			c.Set(contextKeyAPIKey, key)

			err = next(c)

			req := c.Request()
			m.apiKeyUC.LogRequest(req.Context(), key, req.URL.Path, req.Method, c.RealIP(), req.UserAgent())

			return err
		}
	}
}

// APIKeyFromContext returns the verified key set by Require, or nil.
func APIKeyFromContext(c echo.Context) *entity.APIKey {
	key, _ := c.Get(contextKeyAPIKey).(*entity.APIKey)

	return key
}

// extractKeySecret reads the key from the Authorization bearer header,
// falling back to the X-API-Key header.
func extractKeySecret(c echo.Context) string {
	authHeader := c.Request().Header.Get("Authorization")
	if authHeader != "" {
		if secret := strings.TrimPrefix(authHeader, "Bearer "); secret != authHeader {
			return secret
		}
	}

	return c.Request().Header.Get("X-API-Key")
}
