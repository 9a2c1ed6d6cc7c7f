package middleware

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"

	"github.com/natureshield/natureshield-backend/internal/auth"
	"github.com/natureshield/natureshield-backend/internal/domain"
)

// contextKey is a custom type for context keys to avoid collisions
type contextKey string

// IdentityKey is the context key for the verified caller identity
const IdentityKey contextKey = "identity"

// AuthMiddleware provides bearer-token validation middleware
type AuthMiddleware struct {
	tokens *auth.TokenManager
}

// NewAuthMiddleware creates a new AuthMiddleware around the token manager
func NewAuthMiddleware(tokens *auth.TokenManager) *AuthMiddleware {
	return &AuthMiddleware{tokens: tokens}
}

// Authenticate returns an Echo middleware that validates identity tokens.
// The token is taken from the Authorization header; for compatibility with
// the mobile clients it may also arrive as a "token" form field or a
// {"token": ...} JSON body.
func (m *AuthMiddleware) Authenticate() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token := tokenFromRequest(c)
			if token == "" {
				return missingTokenError(c)
			}

			identity, err := m.tokens.Verify(token)
			if err != nil {
				if errors.Is(err, domain.ErrMissingToken) {
					return missingTokenError(c)
				}
				log.Debug().Err(err).Msg("Token verification failed")
				return invalidTokenError(c)
			}

			ctx := context.WithValue(c.Request().Context(), IdentityKey, identity)
			c.SetRequest(c.Request().WithContext(ctx))

			return next(c)
		}
	}
}

// GetIdentity extracts the verified identity from the context
func GetIdentity(c echo.Context) *auth.Identity {
	if id, ok := c.Request().Context().Value(IdentityKey).(*auth.Identity); ok {
		return id
	}
	return nil
}

// tokenFromRequest pulls the bearer token from the Authorization header,
// a multipart/form "token" field, or a JSON body's "token" key. The JSON
// body is restored after peeking so the handler can still bind it.
func tokenFromRequest(c echo.Context) string {
	authHeader := c.Request().Header.Get("Authorization")
	if authHeader != "" {
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) == 2 && strings.EqualFold(parts[0], "bearer") {
			return parts[1]
		}
	}

	contentType := c.Request().Header.Get(echo.HeaderContentType)
	if strings.HasPrefix(contentType, echo.MIMEApplicationJSON) {
		body, err := io.ReadAll(c.Request().Body)
		if err != nil {
			return ""
		}
		c.Request().Body = io.NopCloser(bytes.NewReader(body))

		var payload struct {
			Token string `json:"token"`
		}
		if err := json.Unmarshal(body, &payload); err == nil {
			return payload.Token
		}
		return ""
	}

	return c.FormValue("token")
}
