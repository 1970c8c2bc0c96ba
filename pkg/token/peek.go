// Package token reads claims out of a held bearer token without
// verifying it. Verification is the backend's job; the client only
// wants to show who the token says it is and when it runs out.
package token

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

type Info struct {
	Subject   string
	Email     string
	ExpiresAt time.Time
}

var ErrMalformed = errors.New("token is not a parseable JWT")

// Peek decodes the claims unverified. Opaque (non-JWT) tokens return
// ErrMalformed, which callers treat as "nothing to display".
func Peek(raw string) (*Info, error) {
	claims := jwt.MapClaims{}
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(raw, claims); err != nil {
		return nil, ErrMalformed
	}

	info := &Info{}
	if sub, err := claims.GetSubject(); err == nil {
		info.Subject = sub
	}
	if email, ok := claims["email"].(string); ok {
		info.Email = email
	}
	if exp, err := claims.GetExpirationTime(); err == nil && exp != nil {
		info.ExpiresAt = exp.Time
	}
	return info, nil
}

// Expired reports whether the token's exp claim is in the past. Tokens
// without an exp claim never read as expired here.
func Expired(raw string, now time.Time) bool {
	info, err := Peek(raw)
	if err != nil || info.ExpiresAt.IsZero() {
		return false
	}
	return info.ExpiresAt.Before(now)
}
