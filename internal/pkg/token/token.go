package token

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrMalformedToken = errors.New("malformed token")
)

const RoleAdmin = "admin"

// Claims is the subset of the backend-issued JWT the client cares
// about. The signing secret lives on the backend, so the client
// decodes without verifying; the backend re-checks the signature on
// every request anyway.
type Claims struct {
	Subject string    `json:"sub"`
	Role    string    `json:"role"`
	Expiry  time.Time `json:"-"`
}

func Inspect(tokenString string) (*Claims, error) {
	parser := jwt.NewParser()
	claims := jwt.MapClaims{}
	if _, _, err := parser.ParseUnverified(tokenString, claims); err != nil {
		return nil, ErrMalformedToken
	}

	out := &Claims{}
	if sub, err := claims.GetSubject(); err == nil {
		out.Subject = sub
	}
	if role, ok := claims["role"].(string); ok {
		out.Role = role
	}
	if exp, err := claims.GetExpirationTime(); err == nil && exp != nil {
		out.Expiry = exp.Time
	}
	return out, nil
}

func (c *Claims) IsAdmin() bool {
	return c.Role == RoleAdmin
}

func (c *Claims) ExpiredAt(now time.Time) bool {
	return !c.Expiry.IsZero() && now.After(c.Expiry)
}
