// Package google implements the OAuthService against Google's OAuth 2.0
// endpoints using the server-side authorization-code flow.
package google

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"bistro/config"
	"bistro/internal/domain/service"

	"github.com/pkg/errors"
)

const (
	googleOAuthURL    = "https://accounts.google.com/o/oauth2/v2/auth"
	googleTokenURL    = "https://oauth2.googleapis.com/token"
	googleUserInfoURL = "https://www.googleapis.com/oauth2/v2/userinfo"

	oauthScopes = "profile email"

	// States are single-use and expire after this window.
	stateTTL = 10 * time.Minute
)

// OAuthService handles Google OAuth infrastructure operations.
type OAuthService struct {
	clientID     string
	clientSecret string
	redirectURI  string
	client       *http.Client

	// Pending state parameters for CSRF protection.
	stateMu    sync.Mutex
	stateStore map[string]time.Time
}

// NewOAuthService creates a new Google OAuth service.
func NewOAuthService(cfg *config.Config) service.OAuthService {
	return &OAuthService{
		clientID:     cfg.GoogleOAuth.ClientID,
		clientSecret: cfg.GoogleOAuth.ClientSecret,
		redirectURI:  cfg.GoogleOAuth.RedirectURI,
		client:       &http.Client{Timeout: 15 * time.Second},
		stateStore:   make(map[string]time.Time),
	}
}

// BuildAuthorizationURL constructs the Google authorization URL, minting a
// fresh state parameter for CSRF protection.
func (s *OAuthService) BuildAuthorizationURL() string {
	state := s.generateState()
	s.storeState(state)

	params := url.Values{}
	params.Set("client_id", s.clientID)
	params.Set("redirect_uri", s.redirectURI)
	params.Set("scope", oauthScopes)
	params.Set("response_type", "code")
	params.Set("state", state)

	return googleOAuthURL + "?" + params.Encode()
}

// ValidateState consumes a previously minted state parameter. Unknown,
// expired or re-used states are rejected.
func (s *OAuthService) ValidateState(state string) bool {
	s.stateMu.Lock()
	defer s.stateMu.Unlock()

	expiry, exists := s.stateStore[state]
	if !exists {
		return false
	}

	// Single use: remove even when expired.
	delete(s.stateStore, state)

	return time.Now().Before(expiry)
}

// ExchangeCodeForToken exchanges an authorization code for an access token.
func (s *OAuthService) ExchangeCodeForToken(ctx context.Context, code string) (string, error) {
	data := url.Values{}
	data.Set("client_id", s.clientID)
	data.Set("client_secret", s.clientSecret)
	data.Set("code", code)
	data.Set("grant_type", "authorization_code")
	data.Set("redirect_uri", s.redirectURI)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, googleTokenURL, strings.NewReader(data.Encode()))
	if err != nil {
		return "", errors.Wrap(err, "failed to create token exchange request")
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := s.client.Do(req)
	if err != nil {
		return "", errors.Wrap(err, "failed to exchange code for token")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)

		return "", errors.Errorf("token exchange failed with status %d: %s", resp.StatusCode, string(body))
	}

	var tokenResponse struct {
		AccessToken string `json:"access_token"`
		TokenType   string `json:"token_type"`
		ExpiresIn   int    `json:"expires_in"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&tokenResponse); err != nil {
		return "", errors.Wrap(err, "failed to decode token response")
	}

	return tokenResponse.AccessToken, nil
}

// GetUserInfo retrieves the user's profile using a provider access token.
func (s *OAuthService) GetUserInfo(ctx context.Context, accessToken string) (*service.OAuthUser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, googleUserInfoURL, nil)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create user info request")
	}
	req.Header.Set("Authorization", "Bearer "+accessToken)

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get user info")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)

		return nil, errors.Errorf("user info request failed with status %d: %s", resp.StatusCode, string(body))
	}

	var googleUser struct {
		ID            string `json:"id"`
		Email         string `json:"email"`
		Name          string `json:"name"`
		Picture       string `json:"picture"`
		VerifiedEmail bool   `json:"verified_email"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&googleUser); err != nil {
		return nil, errors.Wrap(err, "failed to decode user info response")
	}

	return &service.OAuthUser{
		SubjectID:     googleUser.ID,
		Email:         googleUser.Email,
		Name:          googleUser.Name,
		AvatarURL:     googleUser.Picture,
		EmailVerified: googleUser.VerifiedEmail,
	}, nil
}

// generateState generates a cryptographically secure random state string.
func (s *OAuthService) generateState() string {
	bytes := make([]byte, 32)
	rand.Read(bytes)

	return hex.EncodeToString(bytes)
}

func (s *OAuthService) storeState(state string) {
	s.stateMu.Lock()
	defer s.stateMu.Unlock()

	s.stateStore[state] = time.Now().Add(stateTTL)

	// Drop expired states opportunistically.
	now := time.Now()
	for pending, expiry := range s.stateStore {
		if now.After(expiry) {
			delete(s.stateStore, pending)
		}
	}
}
