// Package client is a thin HTTP client for the newsdesk backend.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"newsdesk/types"
)

const (
	searchPath    = "/search/documents"
	summarizePath = "/summarize"
)

// Client talks to the search and summarization endpoints.
type Client struct {
	baseURL string
	client  *http.Client
}

// New creates a backend client. Summarization can take a while on the
// LLM side, so the timeout is generous.
func New(baseURL string) *Client {
	if baseURL == "" {
		baseURL = "http://localhost:8080"
	}
	return &Client{
		baseURL: baseURL,
		client: &http.Client{
			Timeout: 60 * time.Second,
		},
	}
}

// SearchDocuments posts a free-text question to the search endpoint.
func (c *Client) SearchDocuments(ctx context.Context, question string) (*types.SearchResponse, error) {
	var resp types.SearchResponse
	if err := c.postJSON(ctx, searchPath, types.SearchRequest{Question: question}, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Summarize posts article content to the summarization endpoint.
func (c *Client) Summarize(ctx context.Context, content string) (*types.SummaryResponse, error) {
	var resp types.SummaryResponse
	if err := c.postJSON(ctx, summarizePath, types.SummaryRequest{Content: content}, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) postJSON(ctx context.Context, path string, payload, out interface{}) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		b, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("server returned %d: %s", resp.StatusCode, string(b))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}
