//go:build unit

package commands_test

import (
	"context"
	"log/slog"
	"net/http"
	"testing"

	"shopfront/internal/domain/order"
	"shopfront/internal/infra/backend"
	"shopfront/internal/usecase/commands"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeGateway struct {
	receipt *backend.SaleReceipt
	err     error
	calls   int
}

func (f *fakeGateway) CreateSale(_ context.Context, _ string, _ int) (*backend.SaleReceipt, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.receipt, nil
}

func newCheckout(gw *fakeGateway) commands.CheckoutCommands {
	return commands.NewCheckoutCommands(gw, slog.New(slog.DiscardHandler))
}

func TestPlaceOrder(t *testing.T) {
	ctx := context.Background()

	t.Run("success returns the pending order", func(t *testing.T) {
		gw := &fakeGateway{receipt: &backend.SaleReceipt{OrderID: "ord-1", Status: "pending"}}
		result, err := newCheckout(gw).PlaceOrder(ctx, "p1", 3)
		require.NoError(t, err)
		assert.Equal(t, "ord-1", result.OrderID)
		assert.Equal(t, order.StatusPending, result.Status)
		assert.Equal(t, 1, gw.calls)
	})

	t.Run("validation happens before any network attempt", func(t *testing.T) {
		gw := &fakeGateway{}
		_, err := newCheckout(gw).PlaceOrder(ctx, "p1", 0)
		assert.ErrorIs(t, err, commands.ErrInvalidOrderQuantity)

		_, err = newCheckout(gw).PlaceOrder(ctx, "", 1)
		assert.Error(t, err)

		assert.Equal(t, 0, gw.calls)
	})

	t.Run("server rejection passes the reason through verbatim and is not retried", func(t *testing.T) {
		gw := &fakeGateway{err: &backend.RejectionError{StatusCode: http.StatusBadRequest, Reason: "Insufficient stock"}}
		_, err := newCheckout(gw).PlaceOrder(ctx, "p1", 999)

		rej, ok := backend.AsRejection(err)
		require.True(t, ok)
		assert.Equal(t, "Insufficient stock", rej.Reason)
		assert.Equal(t, 1, gw.calls)
	})

	t.Run("transport failure maps to connection error, exactly one attempt", func(t *testing.T) {
		gw := &fakeGateway{err: backend.ErrUnavailable}
		_, err := newCheckout(gw).PlaceOrder(ctx, "p1", 1)
		assert.ErrorIs(t, err, commands.ErrConnectionFailed)
		assert.Equal(t, 1, gw.calls)
	})

	t.Run("rejected credential maps to session expiry", func(t *testing.T) {
		gw := &fakeGateway{err: backend.ErrUnauthorized}
		_, err := newCheckout(gw).PlaceOrder(ctx, "p1", 1)
		assert.ErrorIs(t, err, commands.ErrSessionExpired)
	})
}
