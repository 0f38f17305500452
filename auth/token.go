package auth

import (
	"strings"
	"time"
	"web-messenger/errors"

	"github.com/golang-jwt/jwt/v5"
)

// TokenSource hands out the bearer token attached to credentialed requests.
// The signature is the backend's business; the client only refuses to send
// a JWT it can already tell has expired.
type TokenSource struct {
	token string
	now   func() time.Time
}

func NewTokenSource(token string) *TokenSource {
	return &TokenSource{token: strings.TrimSpace(token), now: time.Now}
}

// Token returns the configured token, or ErrTokenExpired when it is a JWT
// whose exp claim is in the past. Opaque tokens are returned as is.
func (s *TokenSource) Token() (string, error) {
	if s == nil || s.token == "" {
		return "", nil
	}
	claims := &jwt.RegisteredClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(s.token, claims); err != nil {
		return s.token, nil
	}
	if claims.ExpiresAt != nil && claims.ExpiresAt.Time.Before(s.now()) {
		return "", errors.ErrTokenExpired
	}
	return s.token, nil
}
