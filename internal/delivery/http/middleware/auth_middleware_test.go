package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"bistro/internal/domain/entity"
	domainerrors "bistro/internal/domain/errors"
	"bistro/internal/domain/service"
	mockSvc "bistro/internal/mocks/service"
	mockUc "bistro/internal/mocks/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type authMiddlewareFixtures struct {
	middleware *AuthMiddleware
	tokenSvc   *mockSvc.MockTokenService
	authUc     *mockUc.MockAuthUsecase
}

func createTestAuthMiddleware(t *testing.T) authMiddlewareFixtures {
	tokenSvc := mockSvc.NewMockTokenService(t)
	authUc := mockUc.NewMockAuthUsecase(t)

	return authMiddlewareFixtures{
		middleware: NewAuthMiddleware(tokenSvc, authUc),
		tokenSvc:   tokenSvc,
		authUc:     authUc,
	}
}

func invokeAuthenticate(fx authMiddlewareFixtures, authHeader string, next echo.HandlerFunc) error {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/auth/user", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	return fx.middleware.Authenticate(next)(c)
}

func TestAuthenticate_MissingHeader(t *testing.T) {
	fx := createTestAuthMiddleware(t)

	err := invokeAuthenticate(fx, "", func(c echo.Context) error { return nil })

	assert.ErrorIs(t, err, domainerrors.ErrNoToken)
}

func TestAuthenticate_NotBearer(t *testing.T) {
	fx := createTestAuthMiddleware(t)

	err := invokeAuthenticate(fx, "Basic dXNlcjpwYXNz", func(c echo.Context) error { return nil })

	assert.ErrorIs(t, err, domainerrors.ErrNoToken)
}

func TestAuthenticate_InvalidToken(t *testing.T) {
	fx := createTestAuthMiddleware(t)

	fx.tokenSvc.EXPECT().
		ParseToken("bad-token").
		Return(nil, errors.New("token signature is invalid"))

	err := invokeAuthenticate(fx, "Bearer bad-token", func(c echo.Context) error { return nil })

	assert.ErrorIs(t, err, domainerrors.ErrInvalidToken)
}

func TestAuthenticate_DeletedUser(t *testing.T) {
	fx := createTestAuthMiddleware(t)

	fx.tokenSvc.EXPECT().
		ParseToken("stale-token").
		Return(&service.Claims{UserID: 7}, nil)
	fx.authUc.EXPECT().
		CurrentUser(mock.Anything, int64(7)).
		Return(nil, domainerrors.ErrUserNotFound)

	err := invokeAuthenticate(fx, "Bearer stale-token", func(c echo.Context) error { return nil })

	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}

func TestAuthenticate_Success(t *testing.T) {
	fx := createTestAuthMiddleware(t)

	user := &entity.User{ID: 7, Email: "diner@example.com"}
	fx.tokenSvc.EXPECT().
		ParseToken("good-token").
		Return(&service.Claims{UserID: 7, Email: user.Email}, nil)
	fx.authUc.EXPECT().
		CurrentUser(mock.Anything, int64(7)).
		Return(user, nil)

	var nextCalled bool
	err := invokeAuthenticate(fx, "Bearer good-token", func(c echo.Context) error {
		nextCalled = true
		assert.Equal(t, user, UserFromContext(c))
		assert.Equal(t, int64(7), c.Get(KeyUserID))

		return nil
	})

	require.NoError(t, err)
	assert.True(t, nextCalled)
}
