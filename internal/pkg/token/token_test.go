//go:build unit

package token_test

import (
	"testing"
	"time"

	"shopfront/internal/pkg/token"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signedToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	s, err := tok.SignedString([]byte("backend-only-secret"))
	require.NoError(t, err)
	return s
}

func TestInspect(t *testing.T) {
	now := time.Now().Truncate(time.Second)

	t.Run("decodes subject, role and expiry without the secret", func(t *testing.T) {
		s := signedToken(t, jwt.MapClaims{
			"sub":  "6581f2a9c3",
			"role": "staff",
			"exp":  now.Add(time.Hour).Unix(),
		})

		claims, err := token.Inspect(s)
		require.NoError(t, err)
		assert.Equal(t, "6581f2a9c3", claims.Subject)
		assert.Equal(t, "staff", claims.Role)
		assert.Equal(t, now.Add(time.Hour).Unix(), claims.Expiry.Unix())
		assert.False(t, claims.IsAdmin())
	})

	t.Run("admin role", func(t *testing.T) {
		s := signedToken(t, jwt.MapClaims{"sub": "x", "role": "admin"})
		claims, err := token.Inspect(s)
		require.NoError(t, err)
		assert.True(t, claims.IsAdmin())
	})

	t.Run("expiry check", func(t *testing.T) {
		s := signedToken(t, jwt.MapClaims{"exp": now.Add(-time.Minute).Unix()})
		claims, err := token.Inspect(s)
		require.NoError(t, err)
		assert.True(t, claims.ExpiredAt(now))
		assert.False(t, claims.ExpiredAt(now.Add(-2*time.Minute)))
	})

	t.Run("missing expiry never counts as expired", func(t *testing.T) {
		s := signedToken(t, jwt.MapClaims{"sub": "x"})
		claims, err := token.Inspect(s)
		require.NoError(t, err)
		assert.False(t, claims.ExpiredAt(now.Add(100*time.Hour)))
	})

	t.Run("garbage input", func(t *testing.T) {
		_, err := token.Inspect("not-a-jwt")
		assert.ErrorIs(t, err, token.ErrMalformedToken)
	})
}
