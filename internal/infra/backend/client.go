package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"

	"shopfront/internal/domain/cart"
	"shopfront/internal/domain/order"
	"shopfront/internal/pkg/config"
	"shopfront/internal/pkg/errs"
)

// Client is the storefront's only door to the inventory backend. It
// never retries: a purchase intent that may or may not have landed
// must surface to the user, not be silently re-sent.
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
}

func NewClient(cfg config.BackendConfig) (*Client, error) {
	baseURL := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if baseURL == "" {
		return nil, errs.New("backend base URL is required")
	}
	token := strings.TrimSpace(cfg.Token)
	if token == "" {
		return nil, errs.New("backend token is required")
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		baseURL:    baseURL,
		token:      token,
		httpClient: &http.Client{Timeout: timeout},
	}, nil
}

// ListProducts fetches the catalog with authoritative stock levels.
func (c *Client) ListProducts(ctx context.Context) ([]Product, error) {
	body, err := c.get(ctx, "/products")
	if err != nil {
		return nil, err
	}
	var products []Product
	if err := json.Unmarshal(body, &products); err != nil {
		return nil, errs.Wrap(err, "decode products response")
	}
	for _, p := range products {
		if p.ID == "" {
			return nil, errs.New("product row missing id")
		}
	}
	return products, nil
}

// CreateSale submits one purchase intent. At most one attempt; the
// caller decides whether to repeat on failure.
func (c *Client) CreateSale(ctx context.Context, productID string, quantity int) (*SaleReceipt, error) {
	payload, err := json.Marshal(saleRequest{ProductID: productID, QuantitySold: quantity})
	if err != nil {
		return nil, errs.Wrap(err, "encode sale request")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/sales", bytes.NewReader(payload))
	if err != nil {
		return nil, errs.Wrap(err, "build sale request")
	}
	req.Header.Set("Content-Type", "application/json")

	body, err := c.send(req)
	if err != nil {
		return nil, err
	}

	var receipt SaleReceipt
	if err := json.Unmarshal(body, &receipt); err != nil {
		return nil, errs.Wrap(err, "decode sale response")
	}
	if receipt.OrderID == "" {
		return nil, errs.New("sale response missing order id")
	}
	if receipt.Status == "" {
		receipt.Status = order.StatusPending.String()
	}
	if _, err := order.ParseStatus(receipt.Status); err != nil {
		return nil, errs.Wrap(err, "sale response status")
	}
	return &receipt, nil
}

// MyOrders fetches the shopper's order list and validates every row
// into a domain Order. A row with an unknown status fails the whole
// fetch; a missing status is backfilled as pending, matching the
// backend's own legacy-row handling.
func (c *Client) MyOrders(ctx context.Context) ([]*order.Order, error) {
	body, err := c.get(ctx, "/orders/me")
	if err != nil {
		return nil, err
	}
	var rows []orderRow
	if err := json.Unmarshal(body, &rows); err != nil {
		return nil, errs.Wrap(err, "decode orders response")
	}

	orders := make([]*order.Order, 0, len(rows))
	for _, row := range rows {
		if row.Status == "" {
			row.Status = order.StatusPending.String()
		}
		status, err := order.ParseStatus(row.Status)
		if err != nil {
			return nil, errs.Wrap(err, "order row status")
		}
		unitPrice, err := cart.NewMoneyFromFloat(row.UnitPrice)
		if err != nil {
			return nil, errs.Wrap(err, "order row unit price")
		}
		totalPrice, err := cart.NewMoneyFromFloat(row.TotalPrice)
		if err != nil {
			return nil, errs.Wrap(err, "order row total price")
		}
		o, err := order.Reconstruct(row.ID, row.ProductID, row.ProductName,
			row.QuantitySold, unitPrice, totalPrice, status, row.Timestamp.Time)
		if err != nil {
			return nil, errs.Wrap(err, "order row")
		}
		orders = append(orders, o)
	}
	return orders, nil
}

func (c *Client) get(ctx context.Context, path string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return nil, errs.Wrap(err, "build request")
	}
	return c.send(req)
}

func (c *Client) send(req *http.Request) ([]byte, error) {
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errs.Mark(errs.Wrap(err, "call backend"), ErrUnavailable)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errs.Mark(errs.Wrap(err, "read backend response"), ErrUnavailable)
	}

	switch {
	case resp.StatusCode < http.StatusMultipleChoices:
		return body, nil
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return nil, errs.Mark(errs.New(reason(body, resp.Status)), ErrUnauthorized)
	case resp.StatusCode >= http.StatusInternalServerError:
		return nil, errs.Mark(errs.New(reason(body, resp.Status)), ErrUnavailable)
	default:
		return nil, &RejectionError{StatusCode: resp.StatusCode, Reason: reason(body, resp.Status)}
	}
}

// reason extracts the backend's human-readable detail, falling back
// to the HTTP status line.
func reason(body []byte, fallback string) string {
	var eb errorBody
	if err := json.Unmarshal(body, &eb); err == nil {
		if detail := strings.TrimSpace(eb.Detail); detail != "" {
			return detail
		}
	}
	return fallback
}
