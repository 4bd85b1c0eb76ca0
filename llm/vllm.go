// Package llm wraps the vLLM completions API used for search keyword
// generation and article summarization.
package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"
)

const (
	// DefaultAPIURL is the OpenAI-compatible completions endpoint of a
	// local vLLM server.
	DefaultAPIURL = "http://localhost:8000/v1/completions"

	defaultTemperature = 0.4
	requestTimeout     = 30 * time.Second
)

// Client calls a vLLM server's /v1/completions endpoint.
type Client struct {
	apiURL     string
	model      string
	httpClient *http.Client
}

// NewFromEnv creates a client from VLLM_API_URL and VLLM_MODEL.
func NewFromEnv() *Client {
	apiURL := os.Getenv("VLLM_API_URL")
	model := os.Getenv("VLLM_MODEL")
	return New(apiURL, model)
}

// New creates a client. Empty apiURL falls back to DefaultAPIURL.
func New(apiURL, model string) *Client {
	if apiURL == "" {
		apiURL = DefaultAPIURL
	}
	return &Client{
		apiURL: apiURL,
		model:  model,
		httpClient: &http.Client{
			Timeout: requestTimeout,
		},
	}
}

// GenerateSearchKeywords asks the model for a comma-separated keyword
// list for the question and returns the cleaned keywords.
func (c *Client) GenerateSearchKeywords(ctx context.Context, question string) ([]string, error) {
	raw, err := c.complete(ctx, keywordPrompt(question), 32, []string{"\n"})
	if err != nil {
		return nil, err
	}
	return CleanKeywords(raw), nil
}

// SummarizeArticle asks the model for a 3-5 sentence summary of the
// article body and returns the cleaned summary text.
func (c *Client) SummarizeArticle(ctx context.Context, content, question string) (string, error) {
	raw, err := c.complete(ctx, summaryPrompt(CleanArticleText(content), question), 512, nil)
	if err != nil {
		return "", err
	}
	return CleanSentences(raw), nil
}

func (c *Client) complete(ctx context.Context, prompt string, maxTokens int, stop []string) (string, error) {
	payload := map[string]interface{}{
		"model":       c.model,
		"prompt":      strings.TrimSpace(prompt),
		"max_tokens":  maxTokens,
		"temperature": defaultTemperature,
	}
	if len(stop) > 0 {
		payload["stop"] = stop
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.apiURL, bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("vllm request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var errBody map[string]interface{}
		_ = json.NewDecoder(resp.Body).Decode(&errBody)
		return "", fmt.Errorf("vllm error: status %d: %v", resp.StatusCode, errBody)
	}

	var parsed struct {
		Choices []struct {
			Text string `json:"text"`
		} `json:"choices"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", fmt.Errorf("failed to decode vllm response: %w", err)
	}
	if len(parsed.Choices) == 0 {
		return "", fmt.Errorf("vllm returned no choices")
	}
	return strings.TrimSpace(parsed.Choices[0].Text), nil
}
