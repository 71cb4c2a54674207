package request

type AddCartItemRequest struct {
	ProductID string  `json:"product_id" binding:"required"`
	Name      string  `json:"name" binding:"required"`
	UnitPrice float64 `json:"unit_price" binding:"gte=0"`
	// Defaults to 1 when omitted, mirroring a plain "add to cart".
	Quantity int `json:"quantity" binding:"omitempty,min=1"`
}

func (r *AddCartItemRequest) NormalizedQuantity() int {
	if r.Quantity < 1 {
		return 1
	}
	return r.Quantity
}

// SetCartQuantityRequest carries the stock ceiling the view last
// rendered; quantity is clamped into [1, max_stock], not rejected, so
// both fields are pointers to keep zero distinguishable from absent.
type SetCartQuantityRequest struct {
	Quantity *int `json:"quantity" binding:"required"`
	MaxStock *int `json:"max_stock" binding:"required"`
}
