package auth

import (
	"testing"
	"time"

	"bistro/config"
	"bistro/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestTokenService(t *testing.T, secret string, ttl time.Duration) *jwtService {
	t.Helper()

	cfg := &config.Config{}
	cfg.Token = config.TokenConfig{Secret: secret, TTL: ttl}

	svc, err := NewJWTService(cfg)
	require.NoError(t, err)

	return svc.(*jwtService)
}

func testUser() *entity.User {
	return &entity.User{
		ID:    42,
		Email: "diner@example.com",
		Name:  "Test Diner",
	}
}

func TestNewJWTService_RequiresSecret(t *testing.T) {
	cfg := &config.Config{}
	cfg.Token = config.TokenConfig{TTL: time.Hour}

	_, err := NewJWTService(cfg)
	assert.Error(t, err)
}

func TestJWTService_IssueAndParse(t *testing.T) {
	svc := newTestTokenService(t, "test-secret", 7*24*time.Hour)

	token, err := svc.IssueToken(testUser())
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, int64(42), claims.UserID)
	assert.Equal(t, "diner@example.com", claims.Email)
	assert.Equal(t, "Test Diner", claims.Name)

	expiresAt := claims.ExpiresAt.Time
	issuedAt := claims.IssuedAt.Time
	assert.Equal(t, 7*24*time.Hour, expiresAt.Sub(issuedAt))
}

func TestJWTService_ParseToken_Expired(t *testing.T) {
	svc := newTestTokenService(t, "test-secret", -time.Minute)

	token, err := svc.IssueToken(testUser())
	require.NoError(t, err)

	_, err = svc.ParseToken(token)
	assert.Error(t, err)
}

func TestJWTService_ParseToken_WrongSecret(t *testing.T) {
	issuer := newTestTokenService(t, "issuer-secret", time.Hour)
	verifier := newTestTokenService(t, "verifier-secret", time.Hour)

	token, err := issuer.IssueToken(testUser())
	require.NoError(t, err)

	_, err = verifier.ParseToken(token)
	assert.Error(t, err)
}

func TestJWTService_ParseToken_Malformed(t *testing.T) {
	svc := newTestTokenService(t, "test-secret", time.Hour)

	_, err := svc.ParseToken("not-a-token")
	assert.Error(t, err)
}
