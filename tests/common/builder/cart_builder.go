//go:build unit || e2e

package builder

import (
	domcart "shopfront/internal/domain/cart"
	reqdto "shopfront/internal/handler/dto/request"
	"shopfront/internal/usecase/queries"
)

type CartBuilder struct {
	ProductID string
	Name      string
	UnitPrice float64
	Quantity  int
	MaxStock  int
}

func NewCartBuilder() *CartBuilder {
	return &CartBuilder{
		ProductID: "prod-001",
		Name:      "Steel Bolt M8",
		UnitPrice: 2.5,
		Quantity:  3,
		MaxStock:  50,
	}
}

func (b *CartBuilder) With(mutate func(*CartBuilder)) *CartBuilder {
	mutate(b)
	return b
}

func (b *CartBuilder) BuildDomainLine() (domcart.Line, error) {
	price, err := domcart.NewMoneyFromFloat(b.UnitPrice)
	if err != nil {
		return domcart.Line{}, err
	}
	return domcart.NewLine(b.ProductID, b.Name, price, b.Quantity)
}

func (b *CartBuilder) BuildAddRequestDTO() reqdto.AddCartItemRequest {
	return reqdto.AddCartItemRequest{
		ProductID: b.ProductID,
		Name:      b.Name,
		UnitPrice: b.UnitPrice,
		Quantity:  b.Quantity,
	}
}

func (b *CartBuilder) BuildSetQuantityRequestDTO() reqdto.SetCartQuantityRequest {
	quantity := b.Quantity
	maxStock := b.MaxStock
	return reqdto.SetCartQuantityRequest{
		Quantity: &quantity,
		MaxStock: &maxStock,
	}
}

func (b *CartBuilder) BuildView() *queries.CartView {
	lineTotal := b.UnitPrice * float64(b.Quantity)
	return &queries.CartView{
		Lines: []queries.CartLineView{
			{
				ProductID: b.ProductID,
				Name:      b.Name,
				UnitPrice: b.UnitPrice,
				Quantity:  b.Quantity,
				LineTotal: lineTotal,
			},
		},
		TotalItems: b.Quantity,
		Subtotal:   lineTotal,
	}
}
