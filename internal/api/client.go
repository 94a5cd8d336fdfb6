package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"invctl/internal/models"
	"invctl/internal/session"
)

// Client talks to the inventory management back end over REST.
// Authentication and request logging are handled by the transport chain;
// callers only see typed requests and responses.
type Client struct {
	baseURL string
	http    *http.Client
	session *session.Store
	log     *slog.Logger
}

// New creates an API client for the given base URL
func New(baseURL string, timeout time.Duration, sess *session.Store, log *slog.Logger) *Client {
	transport := &loggingTransport{
		base: &bearerTransport{base: http.DefaultTransport, session: sess},
		log:  log,
	}

	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http: &http.Client{
			Timeout:   timeout,
			Transport: transport,
		},
		session: sess,
		log:     log,
	}
}

// Login authenticates with the back end and returns the issued token and
// user. The caller decides whether to persist the session.
func (c *Client) Login(ctx context.Context, username, password string) (*models.LoginResponse, error) {
	req := models.LoginRequest{Username: username, Password: password}

	var resp models.LoginResponse
	if err := c.doJSON(ctx, http.MethodPost, "/api/auth/login", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Register creates a new account
func (c *Client) Register(ctx context.Context, req models.RegisterRequest) error {
	return c.doJSON(ctx, http.MethodPost, "/api/auth/register", req, nil)
}

// ListProducts returns all products visible to the user
func (c *Client) ListProducts(ctx context.Context) ([]models.Product, error) {
	var products []models.Product
	if err := c.doJSON(ctx, http.MethodGet, "/api/products", nil, &products); err != nil {
		return nil, err
	}
	return products, nil
}

// CreateProduct creates a new product
func (c *Client) CreateProduct(ctx context.Context, req models.ProductRequest) (*models.Product, error) {
	var product models.Product
	if err := c.doJSON(ctx, http.MethodPost, "/api/products", req, &product); err != nil {
		return nil, err
	}
	return &product, nil
}

// UpdateProduct updates an existing product
func (c *Client) UpdateProduct(ctx context.Context, id int64, req models.ProductRequest) (*models.Product, error) {
	var product models.Product
	if err := c.doJSON(ctx, http.MethodPut, fmt.Sprintf("/api/products/%d", id), req, &product); err != nil {
		return nil, err
	}
	return &product, nil
}

// DeleteProduct removes a product
func (c *Client) DeleteProduct(ctx context.Context, id int64) error {
	return c.doJSON(ctx, http.MethodDelete, fmt.Sprintf("/api/products/%d", id), nil, nil)
}

// ListOrders returns all orders of the authenticated user
func (c *Client) ListOrders(ctx context.Context) ([]models.Order, error) {
	var orders []models.Order
	if err := c.doJSON(ctx, http.MethodGet, "/api/orders", nil, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

// CreateOrder submits an order. The request is sent exactly as built;
// the error message of a rejected submission is the server's response
// body verbatim.
func (c *Client) CreateOrder(ctx context.Context, req *models.CreateOrderRequest) (*models.Order, error) {
	var order models.Order
	if err := c.doJSON(ctx, http.MethodPost, "/api/orders", req, &order); err != nil {
		return nil, err
	}
	return &order, nil
}

// History returns the full inventory audit trail
func (c *Client) History(ctx context.Context) ([]models.InventoryHistory, error) {
	var history []models.InventoryHistory
	if err := c.doJSON(ctx, http.MethodGet, "/api/history", nil, &history); err != nil {
		return nil, err
	}
	return history, nil
}

// HistoryByProduct returns audit records for a single product
func (c *Client) HistoryByProduct(ctx context.Context, productID int64) ([]models.InventoryHistory, error) {
	var history []models.InventoryHistory
	path := fmt.Sprintf("/api/history/product/%d", productID)
	if err := c.doJSON(ctx, http.MethodGet, path, nil, &history); err != nil {
		return nil, err
	}
	return history, nil
}

// HistoryByAction returns audit records filtered by action type
func (c *Client) HistoryByAction(ctx context.Context, action string) ([]models.InventoryHistory, error) {
	var history []models.InventoryHistory
	path := "/api/history/action/" + action
	if err := c.doJSON(ctx, http.MethodGet, path, nil, &history); err != nil {
		return nil, err
	}
	return history, nil
}

// doJSON performs a request with an optional JSON body and decodes the
// response into out when out is non-nil. A 401 clears the session and
// returns ErrSessionExpired; any other non-2xx status is returned as an
// APIError carrying the response body.
func (c *Client) doJSON(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-Id", uuid.New().String())

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized {
		if err := c.session.Clear(); err != nil {
			c.log.Warn("failed to clear session", "error", err)
		}
		return ErrSessionExpired
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		data, _ := io.ReadAll(resp.Body)
		return &APIError{
			StatusCode: resp.StatusCode,
			Message:    strings.TrimSpace(string(data)),
		}
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}

	return nil
}
