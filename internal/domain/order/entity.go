package order

import (
	"errors"
	"time"

	"shopfront/internal/domain/cart"
)

var (
	ErrEmptyOrderID    = errors.New("order id is required")
	ErrEmptyProductID  = errors.New("product id is required")
	ErrInvalidQuantity = errors.New("quantity must be at least 1")
)

// Order is the backend's record of a submitted purchase request. The
// client never mutates it; it is reconstructed from fetched rows and
// observed read-only.
type Order struct {
	id          string
	productID   string
	productName string
	quantity    int
	unitPrice   cart.Money
	totalPrice  cart.Money
	status      Status
	submittedAt time.Time
}

// Reconstruct validates a fetched row into an Order. Rows with an
// unknown status or missing identifiers are rejected at the boundary
// rather than trusted.
func Reconstruct(
	id, productID, productName string,
	quantity int,
	unitPrice, totalPrice cart.Money,
	status Status,
	submittedAt time.Time,
) (*Order, error) {
	if id == "" {
		return nil, ErrEmptyOrderID
	}
	if productID == "" {
		return nil, ErrEmptyProductID
	}
	if quantity < 1 {
		return nil, ErrInvalidQuantity
	}
	if _, err := ParseStatus(status.String()); err != nil {
		return nil, err
	}
	return &Order{
		id:          id,
		productID:   productID,
		productName: productName,
		quantity:    quantity,
		unitPrice:   unitPrice,
		totalPrice:  totalPrice,
		status:      status,
		submittedAt: submittedAt,
	}, nil
}

func (o *Order) ID() string             { return o.id }
func (o *Order) ProductID() string      { return o.productID }
func (o *Order) ProductName() string    { return o.productName }
func (o *Order) Quantity() int          { return o.quantity }
func (o *Order) UnitPrice() cart.Money  { return o.unitPrice }
func (o *Order) TotalPrice() cart.Money { return o.totalPrice }
func (o *Order) Status() Status         { return o.status }
func (o *Order) SubmittedAt() time.Time { return o.submittedAt }

func (o *Order) IsApproved() bool {
	return o.status.IsApproved()
}
