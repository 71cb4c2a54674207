package queries

import "time"

// Read models (DTO for read side)
type ProductView struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	Category     string  `json:"category"`
	Price        float64 `json:"price"`
	CurrentStock int     `json:"current_stock"`
	LowStock     bool    `json:"low_stock"`
}

type CartLineView struct {
	ProductID string  `json:"product_id"`
	Name      string  `json:"name"`
	UnitPrice float64 `json:"unit_price"`
	Quantity  int     `json:"quantity"`
	LineTotal float64 `json:"line_total"`
}

type CartView struct {
	Lines      []CartLineView `json:"lines"`
	TotalItems int            `json:"total_items"`
	Subtotal   float64        `json:"subtotal"`
}

type OrderView struct {
	ID          string    `json:"id"`
	ProductID   string    `json:"product_id"`
	ProductName string    `json:"product_name"`
	Quantity    int       `json:"quantity"`
	UnitPrice   float64   `json:"unit_price"`
	TotalPrice  float64   `json:"total_price"`
	Status      string    `json:"status"`
	SubmittedAt time.Time `json:"submitted_at"`
}

// OrdersView groups the shopper's orders the way the storefront
// renders them: approved confirmations first, pending requests after.
type OrdersView struct {
	Approved []OrderView `json:"approved"`
	Pending  []OrderView `json:"pending"`
}
