package commands

import (
	"context"

	"shopfront/internal/domain/cart"
	"shopfront/internal/infra/backend"
)

// CartStore is the durable, profile-local home of the cart. Save is
// synchronous: a command returns only after the new state is on disk.
type CartStore interface {
	Load() (*cart.Cart, error)
	Save(c *cart.Cart) error
}

// SaleGateway submits one purchase intent to the backend. One call is
// one attempt; implementations must not retry.
type SaleGateway interface {
	CreateSale(ctx context.Context, productID string, quantity int) (*backend.SaleReceipt, error)
}
