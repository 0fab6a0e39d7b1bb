// Package middleware contains reusable HTTP middleware: identity
// resolution from access tokens, response caching and rate limiting.
package middleware

import (
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"github.com/agenson/cinema-booking/internal/model"
	"github.com/agenson/cinema-booking/internal/security"
)

// Context keys written by Authenticate.
const (
	identityKey = "identity"
	tokenKey    = "access_token"
	tokenExpKey = "access_token_exp"
)

// Authenticate returns middleware that resolves the caller's identity from
// a Bearer access token.  Requests without a token, with an invalid token
// or with a revoked token pass through with no identity set; the access
// policies behind the handlers then produce the identification failure.
// On success the identity, the raw token and its expiry are stored in the
// request context for handlers and downstream middleware.
func Authenticate(secret string, deny *security.Denylist) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			auth := c.Request().Header.Get("Authorization")
			if !strings.HasPrefix(auth, "Bearer ") {
				return next(c)
			}
			raw := strings.TrimPrefix(auth, "Bearer ")

			tok, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
				if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
					return nil, echo.ErrUnauthorized
				}
				return []byte(secret), nil
			})
			if err != nil || !tok.Valid {
				return next(c)
			}
			claims, ok := tok.Claims.(jwt.MapClaims)
			if !ok {
				return next(c)
			}
			sub, _ := claims["sub"].(string)
			role, _ := claims["role"].(string)
			if sub == "" || role == "" {
				return next(c)
			}
			if deny.Revoked(c.Request().Context(), raw) {
				return next(c)
			}

			c.Set(identityKey, &security.Identity{UUID: sub, Role: model.Role(role)})
			c.Set(tokenKey, raw)
			if exp, err := claims.GetExpirationTime(); err == nil && exp != nil {
				c.Set(tokenExpKey, exp.Time)
			}
			return next(c)
		}
	}
}

// Identity returns the identity stored by Authenticate, or nil when the
// request carries no valid token.
func Identity(c echo.Context) *security.Identity {
	if v, ok := c.Get(identityKey).(*security.Identity); ok {
		return v
	}
	return nil
}

// Token returns the raw bearer token of the current request, or "".
func Token(c echo.Context) string {
	if v, ok := c.Get(tokenKey).(string); ok {
		return v
	}
	return ""
}

// TokenExpiry returns the expiry of the current request's token.  The
// zero time means no valid token was presented.
func TokenExpiry(c echo.Context) time.Time {
	if v, ok := c.Get(tokenExpKey).(time.Time); ok {
		return v
	}
	return time.Time{}
}
