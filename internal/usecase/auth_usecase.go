// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"bistro/internal/domain/entity"
	"bistro/internal/domain/service"
)

// CompleteLoginInput carries the provider profile received at the OAuth
// callback. The fields are trusted verbatim.
type CompleteLoginInput struct {
	Profile *service.OAuthUser
}

// CompleteLoginOutput returns the upserted user and the issued bearer token.
type CompleteLoginOutput struct {
	User  *entity.User
	Token string
}

// AuthUsecase defines the identity and session operations.
// This is the contract that the delivery layer (API handlers) will depend on.
type AuthUsecase interface {
	// CompleteLogin upserts a user keyed by the provider subject id
	// (created on first login, profile fields and last_login refreshed
	// afterwards) and issues a signed bearer token.
	CompleteLogin(ctx context.Context, input *CompleteLoginInput) (*CompleteLoginOutput, error)

	// CurrentUser re-fetches the user embedded in a verified token. A
	// deleted user yields ErrUserNotFound, which surfaces as 401.
	CurrentUser(ctx context.Context, userID int64) (*entity.User, error)
}
