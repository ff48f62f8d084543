package handler

import (
	"log/slog"
	"net/http"
	"net/url"

	"bistro/config"
	"bistro/internal/delivery/http/middleware"
	"bistro/internal/delivery/http/response"
	domainerrors "bistro/internal/domain/errors"
	"bistro/internal/domain/service"
	"bistro/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AuthHandler holds dependencies for the OAuth login flow and session
// endpoints.
type AuthHandler struct {
	uc       usecase.AuthUsecase
	oauthSvc service.OAuthService
	cfg      *config.Config
	logger   *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler, injected by Fx.
func NewAuthHandler(uc usecase.AuthUsecase, oauthSvc service.OAuthService, cfg *config.Config, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{uc: uc, oauthSvc: oauthSvc, cfg: cfg, logger: logger}
}

// GoogleLogin handles GET /api/auth/google: redirect to the provider's
// authorization endpoint. No local session state yet; only the CSRF state
// parameter is remembered.
func (h *AuthHandler) GoogleLogin(c echo.Context) error {
	return c.Redirect(http.StatusTemporaryRedirect, h.oauthSvc.BuildAuthorizationURL())
}

// GoogleCallback handles GET /api/auth/google/callback. Provider-side
// failures send the browser back to the frontend origin; success redirects
// to the frontend's callback page with the issued token.
func (h *AuthHandler) GoogleCallback(c echo.Context) error {
	ctx := c.Request().Context()

	if providerErr := c.QueryParam("error"); providerErr != "" {
		h.logger.Warn("OAuth provider returned an error", slog.String("error", providerErr))

		return c.Redirect(http.StatusTemporaryRedirect, h.cfg.Frontend.Origin)
	}

	code := c.QueryParam("code")
	state := c.QueryParam("state")
	if code == "" || !h.oauthSvc.ValidateState(state) {
		h.logger.Warn("OAuth callback rejected", slog.Bool("hasCode", code != ""))

		return c.Redirect(http.StatusTemporaryRedirect, h.cfg.Frontend.Origin)
	}

	accessToken, err := h.oauthSvc.ExchangeCodeForToken(ctx, code)
	if err != nil {
		h.logger.Error("OAuth code exchange failed", slog.Any("error", err))

		return c.Redirect(http.StatusTemporaryRedirect, h.cfg.Frontend.Origin)
	}

	profile, err := h.oauthSvc.GetUserInfo(ctx, accessToken)
	if err != nil {
		h.logger.Error("OAuth user info fetch failed", slog.Any("error", err))

		return c.Redirect(http.StatusTemporaryRedirect, h.cfg.Frontend.Origin)
	}

	output, err := h.uc.CompleteLogin(ctx, &usecase.CompleteLoginInput{Profile: profile})
	if err != nil {
		return errors.WithStack(err)
	}

	callback := h.cfg.Frontend.Origin + "/auth/callback?token=" + url.QueryEscape(output.Token)

	return c.Redirect(http.StatusTemporaryRedirect, callback)
}

// CurrentUser handles GET /api/auth/user on the authenticated group.
func (h *AuthHandler) CurrentUser(c echo.Context) error {
	user := middleware.UserFromContext(c)
	if user == nil {
		return domainerrors.ErrInvalidToken
	}

	return c.JSON(http.StatusOK, user)
}

// Logout handles POST /api/auth/logout. Tokens are stateless, so this is
// an acknowledgment only; the client discards its copy.
func (h *AuthHandler) Logout(c echo.Context) error {
	return c.JSON(http.StatusOK, response.Ack{
		Success: true,
		Message: "Logged out successfully",
	})
}
