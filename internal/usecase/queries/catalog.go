package queries

import (
	"context"

	"shopfront/internal/infra/backend"
	"shopfront/internal/pkg/errs"

	"github.com/jinzhu/copier"
)

var ErrCatalogFetchFailed = errs.New("catalog fetch failed")

type ProductLister interface {
	ListProducts(ctx context.Context) ([]backend.Product, error)
}

type CatalogQueries interface {
	ListProducts(ctx context.Context) ([]ProductView, error)
	// Product returns the view for one product, so callers can read
	// the current stock ceiling before clamping a quantity.
	Product(ctx context.Context, productID string) (*ProductView, error)
}

type catalogQueriesImpl struct {
	lister ProductLister
}

func NewCatalogQueries(lister ProductLister) CatalogQueries {
	return &catalogQueriesImpl{lister: lister}
}

func (q *catalogQueriesImpl) ListProducts(ctx context.Context) ([]ProductView, error) {
	products, err := q.lister.ListProducts(ctx)
	if err != nil {
		return nil, errs.Mark(err, ErrCatalogFetchFailed)
	}

	views := make([]ProductView, len(products))
	for i, p := range products {
		if err := copier.Copy(&views[i], &p); err != nil {
			return nil, errs.Wrap(err, "map product view")
		}
		views[i].LowStock = p.CurrentStock <= p.LowStockThreshold
	}
	return views, nil
}

func (q *catalogQueriesImpl) Product(ctx context.Context, productID string) (*ProductView, error) {
	views, err := q.ListProducts(ctx)
	if err != nil {
		return nil, err
	}
	for i := range views {
		if views[i].ID == productID {
			return &views[i], nil
		}
	}
	return nil, errs.ErrProductNotFound
}
