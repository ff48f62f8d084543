package google

import (
	"net/url"
	"testing"
	"time"

	"bistro/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestOAuthService(t *testing.T) *OAuthService {
	t.Helper()

	cfg := &config.Config{
		GoogleOAuth: &config.GoogleOAuthConfig{
			ClientID:     "test-client-id",
			ClientSecret: "test-client-secret",
			RedirectURI:  "http://localhost:5000/api/auth/google/callback",
		},
	}

	return NewOAuthService(cfg).(*OAuthService)
}

func TestBuildAuthorizationURL(t *testing.T) {
	svc := newTestOAuthService(t)

	authURL, err := url.Parse(svc.BuildAuthorizationURL())
	require.NoError(t, err)

	assert.Equal(t, "accounts.google.com", authURL.Host)
	assert.Equal(t, "/o/oauth2/v2/auth", authURL.Path)

	query := authURL.Query()
	assert.Equal(t, "test-client-id", query.Get("client_id"))
	assert.Equal(t, "http://localhost:5000/api/auth/google/callback", query.Get("redirect_uri"))
	assert.Equal(t, "profile email", query.Get("scope"))
	assert.Equal(t, "code", query.Get("response_type"))
	assert.NotEmpty(t, query.Get("state"))
}

func TestValidateState_SingleUse(t *testing.T) {
	svc := newTestOAuthService(t)

	authURL, err := url.Parse(svc.BuildAuthorizationURL())
	require.NoError(t, err)
	state := authURL.Query().Get("state")

	assert.True(t, svc.ValidateState(state))
	assert.False(t, svc.ValidateState(state), "a state must not be accepted twice")
}

func TestValidateState_Unknown(t *testing.T) {
	svc := newTestOAuthService(t)

	assert.False(t, svc.ValidateState("never-issued"))
	assert.False(t, svc.ValidateState(""))
}

func TestValidateState_Expired(t *testing.T) {
	svc := newTestOAuthService(t)

	svc.stateMu.Lock()
	svc.stateStore["stale"] = time.Now().Add(-time.Second)
	svc.stateMu.Unlock()

	assert.False(t, svc.ValidateState("stale"))
}

func TestBuildAuthorizationURL_MintsDistinctStates(t *testing.T) {
	svc := newTestOAuthService(t)

	first, err := url.Parse(svc.BuildAuthorizationURL())
	require.NoError(t, err)
	second, err := url.Parse(svc.BuildAuthorizationURL())
	require.NoError(t, err)

	assert.NotEqual(t, first.Query().Get("state"), second.Query().Get("state"))
}
