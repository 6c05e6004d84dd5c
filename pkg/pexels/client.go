package pexels

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"wayfarer/pkg/logger"
)

const defaultBaseURL = "https://api.pexels.com/v1"

// ClientInterface defines the photo-search operations the rest of the
// app depends on.
type ClientInterface interface {
	SearchDestinationImage(ctx context.Context, query string) (string, error)
}

type Client struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

type searchResponse struct {
	Photos []photo `json:"photos"`
}

type photo struct {
	ID     int    `json:"id"`
	Source source `json:"src"`
}

type source struct {
	Landscape string `json:"landscape"`
}

func NewClient(apiKey string) *Client {
	return &Client{
		apiKey:     apiKey,
		baseURL:    defaultBaseURL,
		httpClient: &http.Client{Timeout: 15 * time.Second},
	}
}

// NewClientWithBaseURL exists for tests that stand in for the Pexels API.
func NewClientWithBaseURL(apiKey, baseURL string) *Client {
	c := NewClient(apiKey)
	c.baseURL = baseURL
	return c
}

// SearchDestinationImage returns a landscape image URL for the query, or
// "" when the search finds nothing. No photo is not an error.
func (c *Client) SearchDestinationImage(ctx context.Context, query string) (string, error) {
	params := url.Values{}
	params.Add("query", query)
	params.Add("per_page", "1")
	params.Add("orientation", "landscape")

	finalURL := fmt.Sprintf("%s/search?%s", c.baseURL, params.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, finalURL, nil)
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Authorization", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("pexels API returned status: %d", resp.StatusCode)
	}

	var searchResp searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&searchResp); err != nil {
		return "", fmt.Errorf("failed to decode response: %w", err)
	}

	if len(searchResp.Photos) == 0 {
		logger.GetLogger().Debugw("no photos found", "query", query)
		return "", nil
	}
	return searchResp.Photos[0].Source.Landscape, nil
}
