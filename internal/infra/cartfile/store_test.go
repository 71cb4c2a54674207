//go:build unit

package cartfile_test

import (
	"os"
	"path/filepath"
	"testing"

	"shopfront/internal/domain/cart"
	"shopfront/internal/infra/cartfile"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newStore(t *testing.T) *cartfile.Store {
	t.Helper()
	s, err := cartfile.NewStore(filepath.Join(t.TempDir(), "profile", "cart.json"))
	require.NoError(t, err)
	return s
}

func TestStore(t *testing.T) {
	t.Run("missing file loads as empty cart", func(t *testing.T) {
		s := newStore(t)
		c, err := s.Load()
		require.NoError(t, err)
		assert.True(t, c.IsEmpty())
	})

	t.Run("save then load round-trips lines", func(t *testing.T) {
		s := newStore(t)

		c := cart.NewCart()
		price, _ := cart.NewMoneyFromFloat(49.90)
		require.NoError(t, c.AddItem("p1", "Keyboard", price, 2))
		require.NoError(t, c.AddItem("p2", "Mouse", cart.NewMoney(1950), 1))
		require.NoError(t, s.Save(c))

		loaded, err := s.Load()
		require.NoError(t, err)
		require.Equal(t, 2, loaded.Len())
		line, ok := loaded.Line("p1")
		require.True(t, ok)
		assert.Equal(t, "Keyboard", line.Name())
		assert.Equal(t, 2, line.Quantity())
		assert.Equal(t, int64(4990), line.UnitPrice().Cents())
	})

	t.Run("save survives overwrite", func(t *testing.T) {
		s := newStore(t)

		c := cart.NewCart()
		require.NoError(t, c.AddItem("p1", "Keyboard", cart.NewMoney(1000), 5))
		require.NoError(t, s.Save(c))

		c.Clear()
		require.NoError(t, s.Save(c))

		loaded, err := s.Load()
		require.NoError(t, err)
		assert.True(t, loaded.IsEmpty())
	})

	t.Run("malformed file fails loud", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "cart.json")
		require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))
		s, err := cartfile.NewStore(path)
		require.NoError(t, err)

		_, err = s.Load()
		assert.Error(t, err)
	})

	t.Run("file with invalid line fails loud", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "cart.json")
		require.NoError(t, os.WriteFile(path, []byte(`[{"product_id":"","name":"x","unit_price_cents":100,"quantity":1}]`), 0o600))
		s, err := cartfile.NewStore(path)
		require.NoError(t, err)

		_, err = s.Load()
		assert.ErrorIs(t, err, cart.ErrEmptyProductID)
	})

	t.Run("empty path rejected", func(t *testing.T) {
		_, err := cartfile.NewStore("")
		assert.Error(t, err)
	})
}
