package response

import (
	"shopfront/internal/usecase/queries"
)

type ProductResponse struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	Category     string  `json:"category"`
	Price        float64 `json:"price"`
	CurrentStock int     `json:"current_stock"`
	LowStock     bool    `json:"low_stock"`
}

func FromProductViews(views []queries.ProductView) []ProductResponse {
	res := make([]ProductResponse, len(views))
	for i, v := range views {
		res[i] = ProductResponse(v)
	}
	return res
}
