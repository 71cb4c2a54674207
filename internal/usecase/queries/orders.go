package queries

import (
	"context"

	"shopfront/internal/domain/order"
	"shopfront/internal/pkg/errs"
)

var ErrOrdersFetchFailed = errs.New("orders fetch failed")

type OrderFetcher interface {
	MyOrders(ctx context.Context) ([]*order.Order, error)
}

type OrderQueries interface {
	MyOrders(ctx context.Context) (*OrdersView, error)
}

type orderQueriesImpl struct {
	fetcher OrderFetcher
}

func NewOrderQueries(fetcher OrderFetcher) OrderQueries {
	return &orderQueriesImpl{fetcher: fetcher}
}

func (q *orderQueriesImpl) MyOrders(ctx context.Context) (*OrdersView, error) {
	orders, err := q.fetcher.MyOrders(ctx)
	if err != nil {
		return nil, errs.Mark(err, ErrOrdersFetchFailed)
	}

	view := &OrdersView{
		Approved: []OrderView{},
		Pending:  []OrderView{},
	}
	for _, o := range orders {
		ov := OrderView{
			ID:          o.ID(),
			ProductID:   o.ProductID(),
			ProductName: o.ProductName(),
			Quantity:    o.Quantity(),
			UnitPrice:   o.UnitPrice().Amount(),
			TotalPrice:  o.TotalPrice().Amount(),
			Status:      o.Status().String(),
			SubmittedAt: o.SubmittedAt(),
		}
		if o.IsApproved() {
			view.Approved = append(view.Approved, ov)
		} else {
			view.Pending = append(view.Pending, ov)
		}
	}
	return view, nil
}
