package backend

import (
	"errors"
	"fmt"
)

var (
	// ErrUnauthorized means the bearer credential was rejected. The
	// session is no longer valid; consumers must stop calling.
	ErrUnauthorized = errors.New("backend rejected credentials")

	// ErrUnavailable covers transport failures and 5xx responses:
	// nothing usable came back and nothing can be assumed about
	// whether the request took effect.
	ErrUnavailable = errors.New("backend unavailable")
)

// RejectionError is a structured 4xx refusal. Reason carries the
// server-supplied human-readable detail verbatim.
type RejectionError struct {
	StatusCode int
	Reason     string
}

func (e *RejectionError) Error() string {
	return fmt.Sprintf("backend rejected request (%d): %s", e.StatusCode, e.Reason)
}

func AsRejection(err error) (*RejectionError, bool) {
	var rej *RejectionError
	if errors.As(err, &rej) {
		return rej, true
	}
	return nil, false
}
