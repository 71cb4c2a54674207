//go:build unit

package usecase_test

import (
	"testing"
	"time"

	"shopfront/internal/pkg/clock"
	"shopfront/internal/pkg/config"
	"shopfront/internal/usecase"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sessionConfig(t *testing.T, role string, exp time.Time) config.Config {
	t.Helper()
	claims := jwt.MapClaims{"sub": "user-1", "role": role}
	if !exp.IsZero() {
		claims["exp"] = exp.Unix()
	}
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("secret"))
	require.NoError(t, err)

	cfg := config.NewTestConfig()
	cfg.Backend.Token = tok
	return cfg
}

func TestSession(t *testing.T) {
	now := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	clk := clock.NewMockClock(now)

	t.Run("shopper with live credential watches approvals", func(t *testing.T) {
		s, err := usecase.NewSession(sessionConfig(t, "staff", now.Add(time.Hour)), clk)
		require.NoError(t, err)
		assert.True(t, s.ShouldWatchApprovals())
		assert.False(t, s.IsAdmin())
		assert.Equal(t, "user-1", s.Subject())
	})

	t.Run("admin never watches", func(t *testing.T) {
		s, err := usecase.NewSession(sessionConfig(t, "admin", now.Add(time.Hour)), clk)
		require.NoError(t, err)
		assert.True(t, s.IsAdmin())
		assert.False(t, s.ShouldWatchApprovals())
	})

	t.Run("expired credential never watches", func(t *testing.T) {
		s, err := usecase.NewSession(sessionConfig(t, "staff", now.Add(-time.Minute)), clk)
		require.NoError(t, err)
		assert.False(t, s.ShouldWatchApprovals())
	})

	t.Run("malformed credential is a session error", func(t *testing.T) {
		cfg := config.NewTestConfig()
		cfg.Backend.Token = "garbage"
		_, err := usecase.NewSession(cfg, clk)
		assert.Error(t, err)
	})
}
