package usecase

import (
	"shopfront/internal/pkg/clock"
	"shopfront/internal/pkg/config"
	"shopfront/internal/pkg/errs"
	"shopfront/internal/pkg/token"
)

// Session describes the shopper this client instance acts for,
// derived from the externally issued bearer credential. The client
// cannot verify the signature (the secret lives on the backend); it
// only reads the claims to decide local behavior. The backend remains
// the authority and re-validates on every call.
type Session struct {
	claims *token.Claims
	clock  clock.Clock
}

func NewSession(cfg config.Config, clk clock.Clock) (*Session, error) {
	claims, err := token.Inspect(cfg.Backend.Token)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrSessionInvalid)
	}
	return &Session{claims: claims, clock: clk}, nil
}

func (s *Session) Subject() string {
	return s.claims.Subject
}

func (s *Session) IsAdmin() bool {
	return s.claims.IsAdmin()
}

// ShouldWatchApprovals reports whether the approval watcher should
// run: only for shopper sessions, and only while the credential has
// not expired. Administrators approve orders, they do not wait on
// them.
func (s *Session) ShouldWatchApprovals() bool {
	return !s.claims.IsAdmin() && !s.claims.ExpiredAt(s.clock.Now())
}
