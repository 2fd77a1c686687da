// Package client is a typed façade over the storefront REST API. It
// mirrors the operations the web frontend performs: catalog browsing,
// cart mutation, checkout, order tracking and admin management.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
)

const apiBasePath = "/api/v1"

// Client calls the storefront API. Construct it with New; the zero
// value is not usable.
type Client struct {
	baseURL string
	token   string
	httpc   *http.Client
}

// Option customizes a Client.
type Option func(*Client)

// WithToken sets the bearer token attached to every request.
func WithToken(token string) Option {
	return func(c *Client) {
		c.token = token
	}
}

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(httpc *http.Client) Option {
	return func(c *Client) {
		c.httpc = httpc
	}
}

// New creates a Client for the server at baseURL (scheme and host, no
// API path).
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpc:   http.DefaultClient,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// APIError is returned for any non-2xx response, carrying the HTTP
// status and the server's error message when one was sent.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("api error (status %d): %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("api error (status %d)", e.StatusCode)
}

// envelope is the single-entity response wrapper.
type envelope struct {
	Data    json.RawMessage `json:"data"`
	Message string          `json:"message"`
	Error   string          `json:"error"`
}

// --- Catalog ---

// Products returns one page of the public catalog.
func (c *Client) Products(ctx context.Context, query ProductQuery) (*Page[Product], error) {
	return getPage[Product](ctx, c, "/products", query.values())
}

// Product returns a single product.
func (c *Client) Product(ctx context.Context, id string) (*Product, error) {
	return getData[Product](ctx, c, http.MethodGet, "/products/"+url.PathEscape(id), nil, nil)
}

// Categories returns the distinct category list.
func (c *Client) Categories(ctx context.Context) ([]string, error) {
	categories, err := getData[[]string](ctx, c, http.MethodGet, "/products/categories", nil, nil)
	if err != nil {
		return nil, err
	}
	return *categories, nil
}

// --- Cart ---

// Cart returns the current cart, enriched and totaled by the server.
func (c *Client) Cart(ctx context.Context) (*Cart, error) {
	return getData[Cart](ctx, c, http.MethodGet, "/cart", nil, nil)
}

// AddItem adds quantity units of a product to the cart.
func (c *Client) AddItem(ctx context.Context, productID string, quantity int) (*CartItem, error) {
	body := map[string]interface{}{"productId": productID, "quantity": quantity}
	return getData[CartItem](ctx, c, http.MethodPost, "/cart/items", nil, body)
}

// UpdateItem sets the quantity of a cart item.
func (c *Client) UpdateItem(ctx context.Context, itemID string, quantity int) (*CartItem, error) {
	body := map[string]interface{}{"quantity": quantity}
	return getData[CartItem](ctx, c, http.MethodPut, "/cart/items/"+url.PathEscape(itemID), nil, body)
}

// RemoveItem removes one item from the cart.
func (c *Client) RemoveItem(ctx context.Context, itemID string) error {
	return c.do(ctx, http.MethodDelete, "/cart/items/"+url.PathEscape(itemID), nil, nil, nil)
}

// ClearCart empties the cart.
func (c *Client) ClearCart(ctx context.Context) error {
	return c.do(ctx, http.MethodDelete, "/cart", nil, nil, nil)
}

// --- Orders ---

// Checkout places an order from the current cart.
func (c *Client) Checkout(ctx context.Context, address ShippingAddress) (*Order, error) {
	body := map[string]interface{}{"shippingAddress": address}
	return getData[Order](ctx, c, http.MethodPost, "/orders/checkout", nil, body)
}

// Orders returns one page of the caller's orders.
func (c *Client) Orders(ctx context.Context, query OrderQuery) (*Page[Order], error) {
	return getPage[Order](ctx, c, "/orders", query.values())
}

// Order returns one of the caller's orders.
func (c *Client) Order(ctx context.Context, id string) (*Order, error) {
	return getData[Order](ctx, c, http.MethodGet, "/orders/"+url.PathEscape(id), nil, nil)
}

// --- Admin ---

// AdminProducts pages the catalog through the admin endpoint.
func (c *Client) AdminProducts(ctx context.Context, query ProductQuery) (*Page[Product], error) {
	return getPage[Product](ctx, c, "/admin/products", query.values())
}

// AdminProduct returns a single product through the admin endpoint.
func (c *Client) AdminProduct(ctx context.Context, id string) (*Product, error) {
	return getData[Product](ctx, c, http.MethodGet, "/admin/products/"+url.PathEscape(id), nil, nil)
}

// CreateProduct creates a product.
func (c *Client) CreateProduct(ctx context.Context, req ProductRequest) (*Product, error) {
	return getData[Product](ctx, c, http.MethodPost, "/admin/products", nil, req)
}

// UpdateProduct overwrites a product.
func (c *Client) UpdateProduct(ctx context.Context, id string, req ProductRequest) (*Product, error) {
	return getData[Product](ctx, c, http.MethodPut, "/admin/products/"+url.PathEscape(id), nil, req)
}

// DeleteProduct removes a product.
func (c *Client) DeleteProduct(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/admin/products/"+url.PathEscape(id), nil, nil, nil)
}

// AdminOrders pages orders across all users.
func (c *Client) AdminOrders(ctx context.Context, query OrderQuery) (*Page[Order], error) {
	return getPage[Order](ctx, c, "/admin/orders", query.values())
}

// AdminOrder returns any user's order.
func (c *Client) AdminOrder(ctx context.Context, id string) (*Order, error) {
	return getData[Order](ctx, c, http.MethodGet, "/admin/orders/"+url.PathEscape(id), nil, nil)
}

// UpdateOrderStatus sets an order's status.
func (c *Client) UpdateOrderStatus(ctx context.Context, id string, status OrderStatus) (*Order, error) {
	body := map[string]interface{}{"status": status}
	return getData[Order](ctx, c, http.MethodPatch, "/admin/orders/"+url.PathEscape(id)+"/status", nil, body)
}

// --- transport ---

// do performs a request and decodes the raw response body into out when
// out is non-nil. Non-2xx responses become an *APIError.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out interface{}) error {
	var reqBody io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		reqBody = bytes.NewReader(encoded)
	}

	endpoint := c.baseURL + apiBasePath + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reqBody)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &APIError{StatusCode: resp.StatusCode}
		var env envelope
		if json.Unmarshal(respBody, &env) == nil {
			apiErr.Message = env.Error
			if apiErr.Message == "" {
				apiErr.Message = env.Message
			}
		}
		return apiErr
	}

	if out != nil {
		if err := json.Unmarshal(respBody, out); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}
	return nil
}

// getData performs a request against a single-entity endpoint and
// unwraps its {data} envelope.
func getData[T any](ctx context.Context, c *Client, method, path string, query url.Values, body interface{}) (*T, error) {
	var env envelope
	if err := c.do(ctx, method, path, query, body, &env); err != nil {
		return nil, err
	}
	var data T
	if len(env.Data) > 0 {
		if err := json.Unmarshal(env.Data, &data); err != nil {
			return nil, fmt.Errorf("failed to decode response data: %w", err)
		}
	}
	return &data, nil
}

// getPage performs a request against a list endpoint.
func getPage[T any](ctx context.Context, c *Client, path string, query url.Values) (*Page[T], error) {
	var page Page[T]
	if err := c.do(ctx, http.MethodGet, path, query, nil, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

func (q ProductQuery) values() url.Values {
	values := url.Values{}
	if q.Search != "" {
		values.Set("search", q.Search)
	}
	if q.Category != "" {
		values.Set("category", q.Category)
	}
	if q.Page > 0 {
		values.Set("page", strconv.Itoa(q.Page))
	}
	if q.Size > 0 {
		values.Set("size", strconv.Itoa(q.Size))
	}
	if q.Sort != "" {
		values.Set("sort", q.Sort)
	}
	return values
}

func (q OrderQuery) values() url.Values {
	values := url.Values{}
	if q.Status != "" {
		values.Set("status", string(q.Status))
	}
	if q.Page > 0 {
		values.Set("page", strconv.Itoa(q.Page))
	}
	if q.Size > 0 {
		values.Set("size", strconv.Itoa(q.Size))
	}
	if q.Sort != "" {
		values.Set("sort", q.Sort)
	}
	return values
}
