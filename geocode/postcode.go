// Package geocode looks up UK postcodes against the postcodes.io API for
// checkout address autofill.
package geocode

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

type Client struct {
	base   string
	client *http.Client
}

func NewClient(base string) *Client {
	return &Client{
		base:   base,
		client: &http.Client{Timeout: 5 * time.Second},
	}
}

// PostcodeResult is the subset of the API response the checkout form uses.
type PostcodeResult struct {
	Postcode      string  `json:"postcode"`
	Region        string  `json:"region"`
	AdminDistrict string  `json:"admin_district"`
	Country       string  `json:"country"`
	Latitude      float64 `json:"latitude"`
	Longitude     float64 `json:"longitude"`
}

// Lookup returns nil for unknown postcodes; only transport or decode
// problems surface as errors.
func (c *Client) Lookup(ctx context.Context, postcode string) (*PostcodeResult, error) {
	u := fmt.Sprintf("%s/postcodes/%s", c.base, url.PathEscape(postcode))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("postcode lookup: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, nil
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("postcode lookup: status %d", resp.StatusCode)
	}

	var payload struct {
		Result PostcodeResult `json:"result"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("postcode lookup: decode: %w", err)
	}
	return &payload.Result, nil
}
