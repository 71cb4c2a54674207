package commands

import (
	"context"
	"log/slog"

	"shopfront/internal/domain/order"
	"shopfront/internal/infra/backend"
	"shopfront/internal/pkg/errs"
)

var (
	ErrInvalidOrderQuantity = errs.New("order quantity must be at least 1")
	ErrConnectionFailed     = errs.New("connection error, please try again")
	ErrSessionExpired       = errs.New("session expired")
)

type PlaceOrderResult struct {
	OrderID string
	Status  order.Status
}

// CheckoutCommands is the order submission gateway: it turns one
// product-and-quantity intent into a backend request and interprets
// the outcome. Submission is at-most-once: a failure, including a
// transport failure where the order may or may not have landed, is
// surfaced for the user to decide, never retried here.
type CheckoutCommands interface {
	PlaceOrder(ctx context.Context, productID string, quantity int) (*PlaceOrderResult, error)
}

type checkoutCommandsImpl struct {
	gateway SaleGateway
	logger  *slog.Logger
}

func NewCheckoutCommands(gateway SaleGateway, logger *slog.Logger) CheckoutCommands {
	return &checkoutCommandsImpl{gateway: gateway, logger: logger}
}

func (u *checkoutCommandsImpl) PlaceOrder(ctx context.Context, productID string, quantity int) (*PlaceOrderResult, error) {
	if productID == "" {
		return nil, errs.Mark(errs.New("product id is required"), errs.ErrDomainValidation)
	}
	// Sanity check only. The caller clamps against the stock ceiling
	// it last rendered; the backend is the final authority and may
	// still refuse.
	if quantity < 1 {
		return nil, ErrInvalidOrderQuantity
	}

	receipt, err := u.gateway.CreateSale(ctx, productID, quantity)
	if err != nil {
		return nil, u.mapSubmitError(productID, quantity, err)
	}

	status, err := order.ParseStatus(receipt.Status)
	if err != nil {
		return nil, errs.Wrap(err, "unexpected receipt status")
	}

	u.logger.Info("order request submitted",
		"order_id", receipt.OrderID,
		"product_id", productID,
		"quantity", quantity,
	)
	return &PlaceOrderResult{OrderID: receipt.OrderID, Status: status}, nil
}

func (u *checkoutCommandsImpl) mapSubmitError(productID string, quantity int, err error) error {
	switch {
	case errs.Is(err, backend.ErrUnauthorized):
		return errs.Mark(err, ErrSessionExpired)
	case errs.Is(err, backend.ErrUnavailable):
		// The request may or may not have reached the backend. Only
		// the user may decide to repeat it.
		u.logger.Warn("order submission got no usable response",
			"product_id", productID,
			"quantity", quantity,
		)
		return errs.Mark(err, ErrConnectionFailed)
	default:
		// Structured refusal: pass the server's reason through
		// untouched so the user sees exactly what the backend said.
		return err
	}
}
