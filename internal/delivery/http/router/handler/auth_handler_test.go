package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"bistro/config"
	"bistro/internal/delivery/http/middleware"
	"bistro/internal/domain/entity"
	"bistro/internal/domain/service"
	mockSvc "bistro/internal/mocks/service"
	mockUc "bistro/internal/mocks/usecase"
	"bistro/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type authHandlerFixtures struct {
	handler  *AuthHandler
	authUc   *mockUc.MockAuthUsecase
	oauthSvc *mockSvc.MockOAuthService
}

func createTestAuthHandler(t *testing.T) authHandlerFixtures {
	authUc := mockUc.NewMockAuthUsecase(t)
	oauthSvc := mockSvc.NewMockOAuthService(t)

	cfg := &config.Config{Frontend: config.FrontendConfig{Origin: "http://localhost:5173"}}

	return authHandlerFixtures{
		handler:  NewAuthHandler(authUc, oauthSvc, cfg, newDiscardLogger()),
		authUc:   authUc,
		oauthSvc: oauthSvc,
	}
}

func newCallbackContext(rawQuery string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/auth/google/callback?"+rawQuery, nil)
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func TestAuthHandler_GoogleLogin(t *testing.T) {
	fx := createTestAuthHandler(t)

	fx.oauthSvc.EXPECT().
		BuildAuthorizationURL().
		Return("https://accounts.google.com/o/oauth2/v2/auth?state=abc")

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/auth/google", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, fx.handler.GoogleLogin(c))
	assert.Equal(t, http.StatusTemporaryRedirect, rec.Code)
	assert.Equal(t, "https://accounts.google.com/o/oauth2/v2/auth?state=abc", rec.Header().Get(echo.HeaderLocation))
}

func TestAuthHandler_GoogleCallback_Success(t *testing.T) {
	fx := createTestAuthHandler(t)

	profile := &service.OAuthUser{SubjectID: "google-sub-123", Email: "diner@example.com"}

	fx.oauthSvc.EXPECT().ValidateState("state-1").Return(true)
	fx.oauthSvc.EXPECT().
		ExchangeCodeForToken(mock.Anything, "code-1").
		Return("provider-access-token", nil)
	fx.oauthSvc.EXPECT().
		GetUserInfo(mock.Anything, "provider-access-token").
		Return(profile, nil)
	fx.authUc.EXPECT().
		CompleteLogin(mock.Anything, &usecase.CompleteLoginInput{Profile: profile}).
		Return(&usecase.CompleteLoginOutput{
			User:  &entity.User{ID: 7},
			Token: "jwt+with/special=chars",
		}, nil)

	c, rec := newCallbackContext("code=code-1&state=state-1")

	require.NoError(t, fx.handler.GoogleCallback(c))
	assert.Equal(t, http.StatusTemporaryRedirect, rec.Code)

	location := rec.Header().Get(echo.HeaderLocation)
	assert.Equal(t, "http://localhost:5173/auth/callback?token="+url.QueryEscape("jwt+with/special=chars"), location)
}

func TestAuthHandler_GoogleCallback_ProviderError(t *testing.T) {
	fx := createTestAuthHandler(t)

	c, rec := newCallbackContext("error=access_denied")

	require.NoError(t, fx.handler.GoogleCallback(c))
	assert.Equal(t, http.StatusTemporaryRedirect, rec.Code)
	assert.Equal(t, "http://localhost:5173", rec.Header().Get(echo.HeaderLocation))
}

func TestAuthHandler_GoogleCallback_MissingCode(t *testing.T) {
	fx := createTestAuthHandler(t)

	c, rec := newCallbackContext("state=state-1")

	require.NoError(t, fx.handler.GoogleCallback(c))
	assert.Equal(t, http.StatusTemporaryRedirect, rec.Code)
	assert.Equal(t, "http://localhost:5173", rec.Header().Get(echo.HeaderLocation))
}

func TestAuthHandler_GoogleCallback_BadState(t *testing.T) {
	fx := createTestAuthHandler(t)

	fx.oauthSvc.EXPECT().ValidateState("forged").Return(false)

	c, rec := newCallbackContext("code=code-1&state=forged")

	require.NoError(t, fx.handler.GoogleCallback(c))
	assert.Equal(t, "http://localhost:5173", rec.Header().Get(echo.HeaderLocation))
}

func TestAuthHandler_GoogleCallback_ExchangeFails(t *testing.T) {
	fx := createTestAuthHandler(t)

	fx.oauthSvc.EXPECT().ValidateState("state-1").Return(true)
	fx.oauthSvc.EXPECT().
		ExchangeCodeForToken(mock.Anything, "code-1").
		Return("", errors.New("token exchange failed with status 400"))

	c, rec := newCallbackContext("code=code-1&state=state-1")

	require.NoError(t, fx.handler.GoogleCallback(c))
	assert.Equal(t, "http://localhost:5173", rec.Header().Get(echo.HeaderLocation))
}

func TestAuthHandler_CurrentUser(t *testing.T) {
	fx := createTestAuthHandler(t)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/auth/user", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set(middleware.KeyUser, &entity.User{ID: 7, Email: "diner@example.com", Name: "Test Diner"})

	require.NoError(t, fx.handler.CurrentUser(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.EqualValues(t, 7, body["id"])
	assert.Equal(t, "diner@example.com", body["email"])
}

func TestAuthHandler_Logout(t *testing.T) {
	fx := createTestAuthHandler(t)

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/api/auth/logout", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, fx.handler.Logout(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "Logged out successfully", body["message"])
}
