package commands

import (
	"shopfront/internal/domain/cart"
	"shopfront/internal/pkg/errs"
	"shopfront/internal/usecase/queries"
)

var (
	ErrCartLineNotFound = errs.New("cart line not found")
	ErrCartValidation   = errs.New("cart validation error")
	ErrCartStoreFailed  = errs.New("cart store operation failed")
	ErrInvalidUnitPrice = errs.New("invalid unit price")
)

// CartCommands mutate the shopper's pre-checkout quantity intent.
// Every mutation persists before returning; no network calls happen
// here, so there is nothing to suspend or retry.
type CartCommands interface {
	AddItem(productID, name string, unitPrice float64, quantity int) (*queries.CartView, error)
	SetQuantity(productID string, quantity, maxStock int) (*queries.CartView, error)
	RemoveItem(productID string) (*queries.CartView, error)
	Clear() (*queries.CartView, error)
}

type cartCommandsImpl struct {
	store CartStore
}

func NewCartCommands(store CartStore) CartCommands {
	return &cartCommandsImpl{store: store}
}

func (u *cartCommandsImpl) AddItem(productID, name string, unitPrice float64, quantity int) (*queries.CartView, error) {
	price, err := cart.NewMoneyFromFloat(unitPrice)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidUnitPrice)
	}
	return u.mutate(func(c *cart.Cart) error {
		return c.AddItem(productID, name, price, quantity)
	})
}

func (u *cartCommandsImpl) SetQuantity(productID string, quantity, maxStock int) (*queries.CartView, error) {
	return u.mutate(func(c *cart.Cart) error {
		return c.SetQuantity(productID, quantity, maxStock)
	})
}

func (u *cartCommandsImpl) RemoveItem(productID string) (*queries.CartView, error) {
	return u.mutate(func(c *cart.Cart) error {
		return c.Remove(productID)
	})
}

func (u *cartCommandsImpl) Clear() (*queries.CartView, error) {
	return u.mutate(func(c *cart.Cart) error {
		c.Clear()
		return nil
	})
}

// mutate runs one load-mutate-save cycle. The store is not re-entered
// before Save completes, so persisted state always matches the last
// accepted mutation.
func (u *cartCommandsImpl) mutate(f func(*cart.Cart) error) (*queries.CartView, error) {
	c, err := u.store.Load()
	if err != nil {
		return nil, errs.Mark(err, ErrCartStoreFailed)
	}
	if err := f(c); err != nil {
		return nil, markCartError(err)
	}
	if err := u.store.Save(c); err != nil {
		return nil, errs.Mark(err, ErrCartStoreFailed)
	}
	return queries.NewCartView(c), nil
}

func markCartError(err error) error {
	if errs.Is(err, cart.ErrLineNotFound) {
		return errs.Mark(err, ErrCartLineNotFound)
	}
	return errs.Mark(err, ErrCartValidation)
}
