// Package service defines domain service interfaces implemented by the
// infrastructure layer.
package service

import (
	"github.com/golang-jwt/jwt/v5"

	"bistro/internal/domain/entity"
)

// Claims defines the custom claims carried by issued bearer tokens.
type Claims struct {
	UserID int64  `json:"id"`
	Email  string `json:"email"`
	Name   string `json:"name"`
	jwt.RegisteredClaims
}

// TokenService issues and verifies the service's own stateless bearer
// tokens. There is no revocation: a token stays valid until expiry.
type TokenService interface {
	// IssueToken signs a token embedding the user's id, email and name
	// with the configured validity window.
	IssueToken(user *entity.User) (string, error)

	// ParseToken verifies signature and expiry and returns the embedded
	// claims. It does not consult storage.
	ParseToken(tokenString string) (*Claims, error)
}
