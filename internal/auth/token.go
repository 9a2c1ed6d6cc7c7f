// Package auth issues and verifies the HS256 bearer tokens that identify
// callers. Verification is stateless: a token either yields the subject's
// email and user ID or fails terminally for the request.
package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/natureshield/natureshield-backend/internal/domain"
)

// TokenTTL is how long an issued token stays valid.
const TokenTTL = 2 * time.Hour

// Claims carries the verified identity: the subject's email and user ID.
type Claims struct {
	jwt.RegisteredClaims
	Email  string `json:"email"`
	UserID string `json:"id"`
}

// Identity is the result of a successful verification.
type Identity struct {
	Email  string
	UserID string
}

// TokenManager signs and verifies identity tokens with a shared secret.
type TokenManager struct {
	secret []byte
	ttl    time.Duration
}

// NewTokenManager creates a TokenManager for the given signing secret.
func NewTokenManager(secret string) *TokenManager {
	return &TokenManager{secret: []byte(secret), ttl: TokenTTL}
}

// Issue signs a token for the given user.
func (m *TokenManager) Issue(email, userID string) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
		},
		Email:  email,
		UserID: userID,
	})
	return token.SignedString(m.secret)
}

// Verify checks the token and extracts the caller's identity. An empty
// token is domain.ErrMissingToken; any other failure (bad signature,
// malformed, expired) is domain.ErrInvalidToken without further
// distinction.
func (m *TokenManager) Verify(tokenString string) (*Identity, error) {
	if tokenString == "" {
		return nil, domain.ErrMissingToken
	}

	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, domain.ErrInvalidToken
		}
		return m.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, domain.ErrInvalidToken
	}

	return &Identity{Email: claims.Email, UserID: claims.UserID}, nil
}
