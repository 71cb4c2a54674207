package queries

import (
	"shopfront/internal/domain/cart"
	"shopfront/internal/pkg/errs"
)

type CartLoader interface {
	Load() (*cart.Cart, error)
}

type CartQueries interface {
	Snapshot() (*CartView, error)
}

type cartQueriesImpl struct {
	store CartLoader
}

func NewCartQueries(store CartLoader) CartQueries {
	return &cartQueriesImpl{store: store}
}

func (q *cartQueriesImpl) Snapshot() (*CartView, error) {
	c, err := q.store.Load()
	if err != nil {
		return nil, errs.Mark(err, errs.ErrStorageOperationFailed)
	}
	return NewCartView(c), nil
}

func NewCartView(c *cart.Cart) *CartView {
	view := &CartView{Lines: []CartLineView{}}
	for _, l := range c.Lines() {
		view.Lines = append(view.Lines, CartLineView{
			ProductID: l.ProductID(),
			Name:      l.Name(),
			UnitPrice: l.UnitPrice().Amount(),
			Quantity:  l.Quantity(),
			LineTotal: l.Total().Amount(),
		})
		view.TotalItems += l.Quantity()
	}
	view.Subtotal = c.Subtotal().Amount()
	return view
}
