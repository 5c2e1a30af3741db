package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"dokan/models"
)

// RestClient speaks the legacy wire contract: a single endpoint selected by
// a `route` query parameter, JSON bodies, list routes returning a bare
// array, write routes returning {"status":"success"} or a non-2xx status
// with {"error": ...}. Every transport or backend failure collapses into
// one generic error; nothing structured crosses back to the caller.
type RestClient struct {
	BaseURL string
	HTTP    *http.Client
}

func NewRestClient(baseURL string) *RestClient {
	return &RestClient{BaseURL: baseURL, HTTP: http.DefaultClient}
}

func (c *RestClient) request(ctx context.Context, method, route string, body, out any) error {
	var payload *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return err
		}
		payload = bytes.NewReader(data)
	} else {
		payload = bytes.NewReader(nil)
	}

	url := fmt.Sprintf("%s?route=%s", c.BaseURL, route)
	req, err := http.NewRequestWithContext(ctx, method, url, payload)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return fmt.Errorf("backend request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("backend request failed: %s", resp.Status)
	}
	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("backend request failed: %w", err)
		}
	}
	return nil
}

func (c *RestClient) ListProducts(ctx context.Context) ([]models.Product, error) {
	var list []models.Product
	if err := c.request(ctx, http.MethodGet, "products", nil, &list); err != nil {
		return nil, err
	}
	return list, nil
}

func (c *RestClient) ListOrders(ctx context.Context) ([]models.Order, error) {
	var list []models.Order
	if err := c.request(ctx, http.MethodGet, "orders", nil, &list); err != nil {
		return nil, err
	}
	return list, nil
}

func (c *RestClient) UpsertProduct(ctx context.Context, p models.Product) error {
	return c.request(ctx, http.MethodPost, "add_product", p, nil)
}

func (c *RestClient) DeleteProduct(ctx context.Context, id string) error {
	return c.request(ctx, http.MethodPost, "delete_product", map[string]string{"id": id}, nil)
}

func (c *RestClient) PlaceOrder(ctx context.Context, o models.Order) error {
	return c.request(ctx, http.MethodPost, "place_order", o, nil)
}

func (c *RestClient) UpdateOrderStatus(ctx context.Context, id string, status models.OrderStatus) error {
	body := map[string]string{"id": id, "status": string(status)}
	return c.request(ctx, http.MethodPost, "update_order_status", body, nil)
}

func (c *RestClient) DeleteOrder(ctx context.Context, id string) error {
	return c.request(ctx, http.MethodPost, "delete_order", map[string]string{"id": id}, nil)
}
