// Package scanner is the client for the remote image-classification
// endpoint. The response schema is owned by that service; results pass
// through this process as opaque JSON.
package scanner

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Scanner submits an image URL for classification.
type Scanner interface {
	Scan(ctx context.Context, imageURL string) (json.RawMessage, error)
}

// Client is the HTTP implementation of Scanner.
type Client struct {
	endpoint   string
	httpClient *http.Client
}

type scanRequest struct {
	ImageURL string `json:"image_url"`
}

func NewClient(endpoint string, timeout time.Duration) *Client {
	return &Client{
		endpoint:   endpoint,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// Scan POSTs {"image_url": imageURL} to the model endpoint and returns the
// response body unchanged.
func (c *Client) Scan(ctx context.Context, imageURL string) (json.RawMessage, error) {
	body, err := json.Marshal(scanRequest{ImageURL: imageURL})
	if err != nil {
		return nil, fmt.Errorf("scan service: encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("scan service: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("scan service: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("scan service: read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("scan service: unexpected status %d", resp.StatusCode)
	}
	if !json.Valid(data) {
		return nil, fmt.Errorf("scan service: response is not valid JSON")
	}

	return json.RawMessage(data), nil
}
