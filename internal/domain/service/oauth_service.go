package service

import "context"

// OAuthUser represents the profile returned by the identity provider.
// The fields are trusted verbatim.
type OAuthUser struct {
	SubjectID     string // Provider-specific stable user ID (Google's 'sub')
	Email         string
	Name          string
	AvatarURL     string
	EmailVerified bool
}

// OAuthService drives the server-side authorization-code flow against the
// external identity provider.
type OAuthService interface {
	// BuildAuthorizationURL constructs the provider's authorization URL,
	// minting and remembering a single-use state parameter.
	BuildAuthorizationURL() string

	// ValidateState consumes a state parameter previously minted by
	// BuildAuthorizationURL. It returns false for unknown, expired or
	// already-used states.
	ValidateState(state string) bool

	// ExchangeCodeForToken trades an authorization code for a provider
	// access token.
	ExchangeCodeForToken(ctx context.Context, code string) (string, error)

	// GetUserInfo fetches the user's profile with a provider access token.
	GetUserInfo(ctx context.Context, accessToken string) (*OAuthUser, error)
}
