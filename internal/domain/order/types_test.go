//go:build unit

package order_test

import (
	"testing"
	"time"

	"shopfront/internal/domain/cart"
	"shopfront/internal/domain/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseStatus(t *testing.T) {
	tests := []struct {
		in      string
		want    order.Status
		wantErr bool
	}{
		{in: "pending", want: order.StatusPending},
		{in: "approved", want: order.StatusApproved},
		{in: "APPROVED", wantErr: true},
		{in: "cancelled", wantErr: true},
		{in: "", wantErr: true},
	}
	for _, tt := range tests {
		t.Run("status "+tt.in, func(t *testing.T) {
			got, err := order.ParseStatus(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, order.ErrUnknownStatus)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestReconstruct(t *testing.T) {
	now := time.Now()

	t.Run("valid row", func(t *testing.T) {
		o, err := order.Reconstruct("o1", "p1", "Keyboard", 2,
			cart.NewMoney(1000), cart.NewMoney(2000), order.StatusPending, now)
		require.NoError(t, err)
		assert.Equal(t, "o1", o.ID())
		assert.False(t, o.IsApproved())
	})

	t.Run("rejects bad rows", func(t *testing.T) {
		_, err := order.Reconstruct("", "p1", "Keyboard", 2,
			cart.NewMoney(1000), cart.NewMoney(2000), order.StatusPending, now)
		assert.ErrorIs(t, err, order.ErrEmptyOrderID)

		_, err = order.Reconstruct("o1", "", "Keyboard", 2,
			cart.NewMoney(1000), cart.NewMoney(2000), order.StatusPending, now)
		assert.ErrorIs(t, err, order.ErrEmptyProductID)

		_, err = order.Reconstruct("o1", "p1", "Keyboard", 0,
			cart.NewMoney(1000), cart.NewMoney(0), order.StatusPending, now)
		assert.ErrorIs(t, err, order.ErrInvalidQuantity)

		_, err = order.Reconstruct("o1", "p1", "Keyboard", 1,
			cart.NewMoney(1000), cart.NewMoney(1000), order.Status("rejected"), now)
		assert.ErrorIs(t, err, order.ErrUnknownStatus)
	})
}
