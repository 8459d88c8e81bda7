package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

// Client fetches read-only catalog lookups from the storefront backend.
// The chat engine never writes through this client.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
}

// envelope matches the backend's {success, message, data} response wrapper.
type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func (c *Client) getJSON(ctx context.Context, path string, query url.Values, out interface{}) error {
	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("catalog request %s failed: %w", path, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("catalog request %s returned status %d", path, resp.StatusCode)
	}

	// Backend may wrap payloads in an envelope; fall back to the raw body.
	var env envelope
	if err := json.Unmarshal(body, &env); err == nil && len(env.Data) > 0 {
		return json.Unmarshal(env.Data, out)
	}
	return json.Unmarshal(body, out)
}

func (c *Client) GetCategories(ctx context.Context) ([]Category, error) {
	var categories []Category
	if err := c.getJSON(ctx, "/categories", nil, &categories); err != nil {
		return nil, err
	}
	return categories, nil
}

func (c *Client) GetOccasions(ctx context.Context) ([]Occasion, error) {
	var occasions []Occasion
	if err := c.getJSON(ctx, "/occasions", nil, &occasions); err != nil {
		return nil, err
	}
	return occasions, nil
}

// GetProducts fetches the product snapshot. Zero ids mean no filter.
func (c *Client) GetProducts(ctx context.Context, categoryId, occasionId int64) ([]Product, error) {
	query := url.Values{}
	if categoryId > 0 {
		query.Set("category_id", strconv.FormatInt(categoryId, 10))
	}
	if occasionId > 0 {
		query.Set("occasion_id", strconv.FormatInt(occasionId, 10))
	}

	var products []Product
	if err := c.getJSON(ctx, "/products", query, &products); err != nil {
		return nil, err
	}
	return products, nil
}

func (c *Client) GetGiftOptions(ctx context.Context, kind GiftOptionKind) ([]GiftOption, error) {
	var options []GiftOption
	if err := c.getJSON(ctx, "/gift-options/"+string(kind), nil, &options); err != nil {
		return nil, err
	}
	return options, nil
}
