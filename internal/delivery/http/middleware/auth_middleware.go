// Package middleware contains the echo middleware of the HTTP delivery.
package middleware

import (
	"strings"

	deliverycontext "warung/internal/delivery/context"
	"warung/internal/delivery/http/response"
	"warung/internal/domain/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// AuthMiddleware provides middleware for JWT authentication. It only
// establishes WHO is calling; authorization decisions happen in the use cases
// against the stored user record.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// Authenticate validates the JWT access token and stores the caller's user ID
// on the echo context.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return response.Unauthorized(c, "INVALID_TOKEN", "Authorization header is missing")
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			return response.Unauthorized(c, "INVALID_TOKEN", "Invalid token format, must be Bearer token")
		}

		claims, err := m.tokenSvc.ValidateAccessToken(tokenString)
		if err != nil {
			return response.Unauthorized(c, "INVALID_TOKEN", "Invalid or expired token")
		}

		c.Set(string(deliverycontext.KeyUserID), claims.UserID)

		return next(c)
	}
}

// GetUserID extracts the authenticated user ID stored by Authenticate.
func GetUserID(c echo.Context) (uuid.UUID, bool) {
	id, ok := c.Get(string(deliverycontext.KeyUserID)).(uuid.UUID)

	return id, ok
}
