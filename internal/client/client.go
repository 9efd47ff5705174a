// Package client calls the campus delivery HTTP API.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/ArchitCodes1204/campus-delivery-platform/internal/models"
)

type Client struct {
	baseURL    string
	httpClient *http.Client
}

// New returns a client for baseURL. A zero timeout leaves requests
// unbounded.
func New(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}
}

func FromConfig(cfg models.ClientConfig) *Client {
	return New(cfg.BaseURL, cfg.Timeout)
}

// PlaceOrder posts req to /api/place-order. Any status other than 200 is an
// error.
func (c *Client) PlaceOrder(ctx context.Context, req models.OrderRequest) (models.OrderConfirmation, error) {
	jsonData, err := json.Marshal(req)
	if err != nil {
		return models.OrderConfirmation{}, fmt.Errorf("failed to marshal request: %w", err)
	}

	var conf models.OrderConfirmation
	if err := c.do(ctx, http.MethodPost, "/api/place-order", jsonData, &conf); err != nil {
		return models.OrderConfirmation{}, err
	}
	return conf, nil
}

func (c *Client) Menu(ctx context.Context, category, query string) (models.MenuResponse, error) {
	params := url.Values{}
	if category != "" {
		params.Set("category", category)
	}
	if query != "" {
		params.Set("q", query)
	}
	path := "/api/menu"
	if len(params) > 0 {
		path += "?" + params.Encode()
	}

	var resp models.MenuResponse
	if err := c.do(ctx, http.MethodGet, path, nil, &resp); err != nil {
		return models.MenuResponse{}, err
	}
	return resp, nil
}

func (c *Client) Categories(ctx context.Context) (models.CategoriesResponse, error) {
	var resp models.CategoriesResponse
	if err := c.do(ctx, http.MethodGet, "/api/menu/categories", nil, &resp); err != nil {
		return models.CategoriesResponse{}, err
	}
	return resp, nil
}

// LoadCategories fetches every category the server publishes, in order. It
// lets a Client serve as a catalog source.
func (c *Client) LoadCategories(ctx context.Context) ([]models.Category, error) {
	cats, err := c.Categories(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	out := make([]models.Category, 0, len(cats.Categories))
	for _, name := range cats.Categories {
		menu, err := c.Menu(ctx, name, "")
		if err != nil {
			return nil, fmt.Errorf("failed to fetch menu for %s: %w", name, err)
		}
		out = append(out, models.Category{Name: name, Items: menu.Items})
	}
	return out, nil
}

func (c *Client) do(ctx context.Context, method, path string, body []byte, out any) error {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to call %s: %w", path, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		var apiErr models.ErrorResponse
		if json.Unmarshal(data, &apiErr) == nil && apiErr.Error != "" {
			return &StatusError{Code: resp.StatusCode, Message: apiErr.Error}
		}
		return &StatusError{Code: resp.StatusCode, Message: string(data)}
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("failed to unmarshal response: %w", err)
	}
	return nil
}

type StatusError struct {
	Code    int
	Message string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("unexpected status code %d: %s", e.Code, e.Message)
}
