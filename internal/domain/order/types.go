package order

import "errors"

var ErrUnknownStatus = errors.New("unknown order status")

// Status of a purchase request as the backend reports it. The backend
// exposes no rejection path: an order is pending until an
// administrator approves it, and approval never reverts.
type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
)

func ParseStatus(s string) (Status, error) {
	switch Status(s) {
	case StatusPending, StatusApproved:
		return Status(s), nil
	default:
		return "", ErrUnknownStatus
	}
}

func (s Status) String() string {
	return string(s)
}

func (s Status) IsApproved() bool {
	return s == StatusApproved
}
