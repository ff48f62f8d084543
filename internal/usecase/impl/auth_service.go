// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "bistro/internal/delivery/context"
	"bistro/internal/domain/entity"
	domainerrors "bistro/internal/domain/errors"
	"bistro/internal/domain/repository"
	"bistro/internal/domain/service"
	"bistro/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// authService implements the AuthUsecase interface.
type authService struct {
	txManager    repository.TransactionManager
	userRepo     repository.UserRepository
	tokenService service.TokenService
	logger       *slog.Logger
}

// AuthServiceParams holds dependencies for authService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	UserRepo     repository.UserRepository
	TokenService service.TokenService
	Logger       *slog.Logger
}

// NewAuthService is the constructor for authService. It receives all dependencies as interfaces.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	return &authService{
		txManager:    params.TxManager,
		userRepo:     params.UserRepo,
		tokenService: params.TokenService,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CompleteLogin upserts the user identified by the provider subject id and
// issues a bearer token. Logging in twice with the same subject id yields
// the same local user id, with refreshed profile fields.
func (srv *authService) CompleteLogin(ctx context.Context, input *usecase.CompleteLoginInput) (*usecase.CompleteLoginOutput, error) {
	if input == nil || input.Profile == nil || input.Profile.SubjectID == "" {
		return nil, domainerrors.ErrOAuthFailed.WrapMessage("provider profile is missing a subject id")
	}

	profile := input.Profile
	srv.log(ctx).Info("Completing login", slog.String("googleID", profile.SubjectID), slog.String("email", profile.Email))

	var user *entity.User
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()
		now := time.Now()

		existing, err := userRepo.FindByGoogleID(ctx, profile.SubjectID)
		if errors.Is(err, repository.ErrUserNotFound) {
			user = &entity.User{
				GoogleID:  profile.SubjectID,
				Email:     profile.Email,
				Name:      profile.Name,
				Picture:   profile.AvatarURL,
				LastLogin: &now,
			}

			return userRepo.Create(ctx, user)
		}
		if err != nil {
			return errors.Wrap(err, "failed to look up user by google id")
		}

		// Returning user: refresh profile fields and the login timestamp,
		// keeping the local numeric id stable.
		existing.Name = profile.Name
		existing.Picture = profile.AvatarURL
		existing.LastLogin = &now
		user = existing

		return userRepo.Update(ctx, existing)
	})
	if err != nil {
		srv.log(ctx).Error("Failed to execute login transaction", slog.String("googleID", profile.SubjectID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute login transaction")
	}

	token, err := srv.tokenService.IssueToken(user)
	if err != nil {
		srv.log(ctx).Error("Failed to issue token", slog.Int64("userID", user.ID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to issue token")
	}

	srv.log(ctx).Debug("Login completed", slog.Int64("userID", user.ID))

	return &usecase.CompleteLoginOutput{User: user, Token: token}, nil
}

// CurrentUser re-fetches the user behind a verified token.
func (srv *authService) CurrentUser(ctx context.Context, userID int64) (*entity.User, error) {
	user, err := srv.userRepo.FindByID(ctx, userID)
	if errors.Is(err, repository.ErrUserNotFound) {
		// The token outlived its user; treat as unauthenticated.
		return nil, domainerrors.ErrUserNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to load current user")
	}

	return user, nil
}
