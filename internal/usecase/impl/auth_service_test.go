package impl

import (
	"context"
	"testing"
	"time"

	"bistro/internal/domain/entity"
	domainerrors "bistro/internal/domain/errors"
	"bistro/internal/domain/repository"
	"bistro/internal/domain/service"
	mockRepo "bistro/internal/mocks/repository"
	mockSvc "bistro/internal/mocks/service"
	"bistro/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// authServiceFixtures holds all test dependencies for auth service tests.
type authServiceFixtures struct {
	service      usecase.AuthUsecase
	txManager    *mockRepo.MockTransactionManager
	userRepo     *mockRepo.MockUserRepository
	tokenService *mockSvc.MockTokenService
}

func createTestAuthService(t *testing.T) authServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	tokenService := mockSvc.NewMockTokenService(t)

	service := NewAuthService(AuthServiceParams{
		TxManager:    txManager,
		UserRepo:     userRepo,
		TokenService: tokenService,
		Logger:       newDiscardLogger(),
	})

	return authServiceFixtures{
		service:      service,
		txManager:    txManager,
		userRepo:     userRepo,
		tokenService: tokenService,
	}
}

func googleProfile() *service.OAuthUser {
	return &service.OAuthUser{
		SubjectID:     "google-sub-123",
		Email:         "diner@example.com",
		Name:          "Test Diner",
		AvatarURL:     "https://example.com/avatar.png",
		EmailVerified: true,
	}
}

func TestAuthService_CompleteLogin_FirstLogin(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	input := &usecase.CompleteLoginInput{Profile: googleProfile()}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)

			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)

			mockUserRepo.EXPECT().
				FindByGoogleID(ctx, "google-sub-123").
				Return(nil, repository.ErrUserNotFound)

			mockUserRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.User")).
				Run(func(ctx context.Context, user *entity.User) {
					user.ID = 7
				}).
				Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	fx.tokenService.EXPECT().
		IssueToken(mock.AnythingOfType("*entity.User")).
		Return("signed-token", nil)

	output, err := fx.service.CompleteLogin(ctx, input)

	require.NoError(t, err)
	require.NotNil(t, output)
	assert.Equal(t, "signed-token", output.Token)
	assert.Equal(t, int64(7), output.User.ID)
	assert.Equal(t, "google-sub-123", output.User.GoogleID)
	assert.Equal(t, "diner@example.com", output.User.Email)
	require.NotNil(t, output.User.LastLogin)
}

func TestAuthService_CompleteLogin_ReturningUser(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	profile := googleProfile()
	profile.Name = "Renamed Diner"
	profile.AvatarURL = "https://example.com/new-avatar.png"
	input := &usecase.CompleteLoginInput{Profile: profile}

	staleLogin := time.Now().Add(-48 * time.Hour)
	existing := &entity.User{
		ID:        7,
		GoogleID:  "google-sub-123",
		Email:     "diner@example.com",
		Name:      "Test Diner",
		Picture:   "https://example.com/avatar.png",
		LastLogin: &staleLogin,
	}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)

			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)

			mockUserRepo.EXPECT().
				FindByGoogleID(ctx, "google-sub-123").
				Return(existing, nil)

			mockUserRepo.EXPECT().
				Update(ctx, existing).
				Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	fx.tokenService.EXPECT().
		IssueToken(existing).
		Return("signed-token", nil)

	output, err := fx.service.CompleteLogin(ctx, input)

	require.NoError(t, err)
	// Same local id on every login for the same subject.
	assert.Equal(t, int64(7), output.User.ID)
	assert.Equal(t, "Renamed Diner", output.User.Name)
	assert.Equal(t, "https://example.com/new-avatar.png", output.User.Picture)
	require.NotNil(t, output.User.LastLogin)
	assert.True(t, output.User.LastLogin.After(staleLogin))
}

func TestAuthService_CompleteLogin_MissingProfile(t *testing.T) {
	fx := createTestAuthService(t)

	_, err := fx.service.CompleteLogin(context.Background(), &usecase.CompleteLoginInput{})

	require.Error(t, err)
	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "OAUTH_FAILED", appErr.ErrorCode())
}

func TestAuthService_CompleteLogin_TransactionFails(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Return(errors.New("connection reset"))

	_, err := fx.service.CompleteLogin(ctx, &usecase.CompleteLoginInput{Profile: googleProfile()})

	assert.Error(t, err)
}

func TestAuthService_CurrentUser_Success(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	user := &entity.User{ID: 7, Email: "diner@example.com"}

	fx.userRepo.EXPECT().
		FindByID(ctx, int64(7)).
		Return(user, nil)

	got, err := fx.service.CurrentUser(ctx, 7)

	require.NoError(t, err)
	assert.Equal(t, user, got)
}

func TestAuthService_CurrentUser_Deleted(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	fx.userRepo.EXPECT().
		FindByID(ctx, int64(7)).
		Return(nil, repository.ErrUserNotFound)

	_, err := fx.service.CurrentUser(ctx, 7)

	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}
