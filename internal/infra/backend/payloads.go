package backend

import (
	"encoding/json"
	"strings"
	"time"
)

// Product is the validated catalog row. currentStock is the
// authoritative ceiling for quantity clamps at render time.
type Product struct {
	ID                string  `json:"_id"`
	Name              string  `json:"name"`
	Category          string  `json:"category"`
	Price             float64 `json:"price"`
	CurrentStock      int     `json:"current_stock"`
	LowStockThreshold int     `json:"low_stock_threshold"`
}

// SaleReceipt is the backend's acknowledgement of a purchase request.
type SaleReceipt struct {
	OrderID string `json:"id"`
	Status  string `json:"status"`
}

type saleRequest struct {
	ProductID    string `json:"product_id"`
	QuantitySold int    `json:"quantity_sold"`
}

type errorBody struct {
	Detail string `json:"detail"`
}

// orderRow mirrors GET /orders/me. Legacy rows may lack status; the
// backend itself backfills those as pending, so the client does the
// same coercion. Any other unexpected shape is rejected.
type orderRow struct {
	ID           string   `json:"_id"`
	ProductID    string   `json:"product_id"`
	ProductName  string   `json:"product_name"`
	QuantitySold int      `json:"quantity_sold"`
	UnitPrice    float64  `json:"unit_price"`
	TotalPrice   float64  `json:"total_price"`
	Status       string   `json:"status"`
	Timestamp    wireTime `json:"timestamp"`
}

// wireTime tolerates the backend's naive ISO-8601 timestamps, which
// carry no timezone suffix and so fail time.Time's RFC 3339 decoding.
// Naive values are read as UTC, which is what the backend writes.
type wireTime struct {
	time.Time
}

var wireTimeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05.999999999",
}

func (w *wireTime) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	raw = strings.TrimSpace(raw)
	if raw == "" {
		w.Time = time.Time{}
		return nil
	}
	var lastErr error
	for _, layout := range wireTimeLayouts {
		t, err := time.Parse(layout, raw)
		if err == nil {
			w.Time = t.UTC()
			return nil
		}
		lastErr = err
	}
	return lastErr
}
