// Package middleware contains the HTTP middleware for the application.
package middleware

import (
	"strings"

	"bistro/internal/domain/entity"
	domainerrors "bistro/internal/domain/errors"
	"bistro/internal/domain/service"
	"bistro/internal/usecase"

	"github.com/labstack/echo/v4"
)

// Context keys set by Authenticate for downstream handlers.
const (
	KeyUser   = "user"
	KeyUserID = "userID"
)

// AuthMiddleware validates bearer tokens on protected routes.
type AuthMiddleware struct {
	tokenSvc service.TokenService
	authUc   usecase.AuthUsecase
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService, authUc usecase.AuthUsecase) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc, authUc: authUc}
}

// Authenticate verifies the bearer token by signature and expiry, then
// re-fetches the embedded user. A token whose user row is gone is rejected
// the same way as an invalid token.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return domainerrors.ErrNoToken
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader || tokenString == "" {
			return domainerrors.ErrNoToken
		}

		claims, err := m.tokenSvc.ParseToken(tokenString)
		if err != nil {
			return domainerrors.ErrInvalidToken
		}

		user, err := m.authUc.CurrentUser(c.Request().Context(), claims.UserID)
		if err != nil {
			return err
		}

		c.Set(KeyUser, user)
		c.Set(KeyUserID, user.ID)

		return next(c)
	}
}

// UserFromContext returns the authenticated user set by Authenticate, or
// nil on unauthenticated routes.
func UserFromContext(c echo.Context) *entity.User {
	if user, ok := c.Get(KeyUser).(*entity.User); ok {
		return user
	}

	return nil
}
