//go:build unit || e2e

package builder

import (
	"time"

	domcart "shopfront/internal/domain/cart"
	domorder "shopfront/internal/domain/order"
	reqdto "shopfront/internal/handler/dto/request"
	"shopfront/internal/usecase/commands"
	"shopfront/internal/usecase/queries"
)

type OrderBuilder struct {
	ID          string
	ProductID   string
	ProductName string
	Quantity    int
	UnitPrice   float64
	Status      domorder.Status
	SubmittedAt time.Time
}

func NewOrderBuilder() *OrderBuilder {
	return &OrderBuilder{
		ID:          "order-001",
		ProductID:   "prod-001",
		ProductName: "Steel Bolt M8",
		Quantity:    3,
		UnitPrice:   2.5,
		Status:      domorder.StatusPending,
		SubmittedAt: time.Date(2025, 6, 1, 9, 30, 0, 0, time.UTC),
	}
}

func (b *OrderBuilder) With(mutate func(*OrderBuilder)) *OrderBuilder {
	mutate(b)
	return b
}

func (b *OrderBuilder) BuildDomain() (*domorder.Order, error) {
	unitPrice, err := domcart.NewMoneyFromFloat(b.UnitPrice)
	if err != nil {
		return nil, err
	}
	totalPrice := unitPrice.Mul(b.Quantity)
	return domorder.Reconstruct(b.ID, b.ProductID, b.ProductName, b.Quantity, unitPrice, totalPrice, b.Status, b.SubmittedAt)
}

func (b *OrderBuilder) BuildPlaceRequestDTO() reqdto.PlaceOrderRequest {
	return reqdto.PlaceOrderRequest{
		ProductID: b.ProductID,
		Quantity:  b.Quantity,
	}
}

func (b *OrderBuilder) BuildPlaceResult() *commands.PlaceOrderResult {
	return &commands.PlaceOrderResult{
		OrderID: b.ID,
		Status:  b.Status,
	}
}

func (b *OrderBuilder) BuildView() queries.OrderView {
	return queries.OrderView{
		ID:          b.ID,
		ProductID:   b.ProductID,
		ProductName: b.ProductName,
		Quantity:    b.Quantity,
		UnitPrice:   b.UnitPrice,
		TotalPrice:  b.UnitPrice * float64(b.Quantity),
		Status:      b.Status.String(),
		SubmittedAt: b.SubmittedAt,
	}
}
