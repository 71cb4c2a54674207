//go:build unit

package commands_test

import (
	"errors"
	"testing"

	"shopfront/internal/domain/cart"
	"shopfront/internal/usecase/commands"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memoryStore keeps the persisted copy separate from the live cart so
// tests can detect a mutation that skipped Save.
type memoryStore struct {
	persisted []cart.Line
	loadErr   error
	saveErr   error
	saves     int
}

func (m *memoryStore) Load() (*cart.Cart, error) {
	if m.loadErr != nil {
		return nil, m.loadErr
	}
	return cart.ReconstructCart(m.persisted)
}

func (m *memoryStore) Save(c *cart.Cart) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	m.persisted = c.Lines()
	m.saves++
	return nil
}

func TestCartCommands_AddItem(t *testing.T) {
	t.Run("adds and persists before returning", func(t *testing.T) {
		store := &memoryStore{}
		cmds := commands.NewCartCommands(store)

		view, err := cmds.AddItem("p1", "Keyboard", 49.90, 2)
		require.NoError(t, err)
		require.Len(t, view.Lines, 1)
		assert.Equal(t, 2, view.Lines[0].Quantity)
		assert.Equal(t, 1, store.saves)
		assert.Len(t, store.persisted, 1)
	})

	t.Run("repeated adds merge in the persisted copy too", func(t *testing.T) {
		store := &memoryStore{}
		cmds := commands.NewCartCommands(store)

		_, err := cmds.AddItem("p1", "Keyboard", 49.90, 1)
		require.NoError(t, err)
		view, err := cmds.AddItem("p1", "Keyboard", 49.90, 4)
		require.NoError(t, err)

		require.Len(t, view.Lines, 1)
		assert.Equal(t, 5, view.Lines[0].Quantity)
		require.Len(t, store.persisted, 1)
		assert.Equal(t, 5, store.persisted[0].Quantity())
	})

	t.Run("invalid input leaves the store untouched", func(t *testing.T) {
		store := &memoryStore{}
		cmds := commands.NewCartCommands(store)

		_, err := cmds.AddItem("p1", "Keyboard", 10, 0)
		assert.ErrorIs(t, err, commands.ErrCartValidation)

		_, err = cmds.AddItem("p1", "Keyboard", -5, 1)
		assert.ErrorIs(t, err, commands.ErrInvalidUnitPrice)

		assert.Equal(t, 0, store.saves)
	})

	t.Run("save failure is reported and counted as no mutation", func(t *testing.T) {
		store := &memoryStore{saveErr: errors.New("disk full")}
		cmds := commands.NewCartCommands(store)

		_, err := cmds.AddItem("p1", "Keyboard", 10, 1)
		assert.ErrorIs(t, err, commands.ErrCartStoreFailed)
		assert.Empty(t, store.persisted)
	})
}

func TestCartCommands_SetQuantity(t *testing.T) {
	seed := func(t *testing.T) (*memoryStore, commands.CartCommands) {
		t.Helper()
		store := &memoryStore{}
		cmds := commands.NewCartCommands(store)
		_, err := cmds.AddItem("p1", "Keyboard", 10, 2)
		require.NoError(t, err)
		return store, cmds
	}

	t.Run("clamps to the supplied ceiling", func(t *testing.T) {
		_, cmds := seed(t)
		view, err := cmds.SetQuantity("p1", 50, 8)
		require.NoError(t, err)
		assert.Equal(t, 8, view.Lines[0].Quantity)
	})

	t.Run("non-positive input clamps to 1", func(t *testing.T) {
		_, cmds := seed(t)
		view, err := cmds.SetQuantity("p1", -3, 8)
		require.NoError(t, err)
		assert.Equal(t, 1, view.Lines[0].Quantity)
	})

	t.Run("unknown line", func(t *testing.T) {
		_, cmds := seed(t)
		_, err := cmds.SetQuantity("nope", 1, 8)
		assert.ErrorIs(t, err, commands.ErrCartLineNotFound)
	})
}

func TestCartCommands_RemoveAndClear(t *testing.T) {
	store := &memoryStore{}
	cmds := commands.NewCartCommands(store)
	_, err := cmds.AddItem("p1", "Keyboard", 10, 1)
	require.NoError(t, err)
	_, err = cmds.AddItem("p2", "Mouse", 5, 1)
	require.NoError(t, err)

	view, err := cmds.RemoveItem("p1")
	require.NoError(t, err)
	assert.Len(t, view.Lines, 1)

	_, err = cmds.RemoveItem("p1")
	assert.ErrorIs(t, err, commands.ErrCartLineNotFound)

	view, err = cmds.Clear()
	require.NoError(t, err)
	assert.Empty(t, view.Lines)
	assert.Empty(t, store.persisted)
}
