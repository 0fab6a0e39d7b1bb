// Package utils provides credential hashing and access token issuing for
// the session layer.
package utils

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/agenson/cinema-booking/internal/model"
)

// AccessToken is a signed HS256 JWT plus its expiry. The token carries the
// user's public identifier as subject and the role as a custom claim; the
// identity middleware turns those back into a caller identity on each
// request.
type AccessToken struct {
	Token string    // the serialized JWT string
	Exp   time.Time // the UTC expiration time
}

// NewAccessToken signs a token for a user. ttlMin is the token lifetime in
// minutes. Claims: sub (user UUID), role, exp and iat.
func NewAccessToken(secret, userUUID string, role model.Role, ttlMin int) (AccessToken, error) {
	now := time.Now().UTC()
	exp := now.Add(time.Duration(ttlMin) * time.Minute)
	claims := jwt.MapClaims{
		"sub":  userUUID,
		"role": string(role),
		"exp":  exp.Unix(),
		"iat":  now.Unix(),
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := t.SignedString([]byte(secret))
	if err != nil {
		return AccessToken{}, err
	}
	return AccessToken{Token: signed, Exp: exp}, nil
}
