package response

import (
	"shopfront/internal/usecase/commands"
	"shopfront/internal/usecase/queries"
)

type OrderResponse struct {
	ID          string  `json:"id"`
	ProductID   string  `json:"product_id"`
	ProductName string  `json:"product_name"`
	Quantity    int     `json:"quantity"`
	UnitPrice   float64 `json:"unit_price"`
	TotalPrice  float64 `json:"total_price"`
	Status      string  `json:"status"`
	SubmittedAt int64   `json:"submitted_at"`
}

type OrderListResponse struct {
	Approved []OrderResponse `json:"approved"`
	Pending  []OrderResponse `json:"pending"`
}

func FromOrdersView(v *queries.OrdersView) *OrderListResponse {
	return &OrderListResponse{
		Approved: fromOrderViews(v.Approved),
		Pending:  fromOrderViews(v.Pending),
	}
}

func fromOrderViews(views []queries.OrderView) []OrderResponse {
	res := make([]OrderResponse, len(views))
	for i, v := range views {
		res[i] = OrderResponse{
			ID:          v.ID,
			ProductID:   v.ProductID,
			ProductName: v.ProductName,
			Quantity:    v.Quantity,
			UnitPrice:   v.UnitPrice,
			TotalPrice:  v.TotalPrice,
			Status:      v.Status,
			SubmittedAt: v.SubmittedAt.Unix(),
		}
	}
	return res
}

type PlaceOrderResponse struct {
	OrderID string `json:"order_id"`
	Status  string `json:"status"`
}

func FromPlaceOrderResult(r *commands.PlaceOrderResult) *PlaceOrderResponse {
	return &PlaceOrderResponse{
		OrderID: r.OrderID,
		Status:  r.Status.String(),
	}
}
