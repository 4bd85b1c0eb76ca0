// Package index talks to the Qdrant collection holding the article
// corpus: keyword scrolls, vector search, and upserts for the indexer.
package index

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// QdrantConfig holds connection settings for a Qdrant instance.
type QdrantConfig struct {
	Host       string
	Port       int
	Collection string
}

// Qdrant wraps the Qdrant REST API for one collection.
type Qdrant struct {
	baseURL    string
	collection string
	httpClient *http.Client
}

// NewQdrant creates a client. Defaults: localhost:6333.
func NewQdrant(cfg QdrantConfig) *Qdrant {
	host := cfg.Host
	if host == "" {
		host = "localhost"
	}
	port := cfg.Port
	if port == 0 {
		port = 6333
	}
	return &Qdrant{
		baseURL:    fmt.Sprintf("http://%s:%d", host, port),
		collection: cfg.Collection,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

// Match is an exact-value matcher for a payload field.
type Match struct {
	Value string `json:"value"`
}

// FieldCondition matches one payload field against a value.
type FieldCondition struct {
	Key   string `json:"key"`
	Match Match  `json:"match"`
}

// Filter combines conditions; Must are ANDed, Should are ORed.
type Filter struct {
	Must   []FieldCondition `json:"must,omitempty"`
	Should []FieldCondition `json:"should,omitempty"`
}

// Point is one stored article with payload and optional score/vector.
type Point struct {
	ID      string                 `json:"id"`
	Score   float64                `json:"score,omitempty"`
	Payload map[string]interface{} `json:"payload"`
	Vector  []float32              `json:"vector,omitempty"`
}

// UpsertPoint is the write-side shape of a point.
type UpsertPoint struct {
	ID      string                 `json:"id"`
	Vector  []float32              `json:"vector"`
	Payload map[string]interface{} `json:"payload"`
}

// EnsureCollection creates the collection if it does not exist yet.
func (q *Qdrant) EnsureCollection(ctx context.Context, vectorSize int) error {
	url := fmt.Sprintf("%s/collections/%s", q.baseURL, q.collection)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}
	resp, err := q.httpClient.Do(req)
	if err == nil {
		defer resp.Body.Close()
		if resp.StatusCode == http.StatusOK {
			return nil
		}
	}

	payload := map[string]interface{}{
		"vectors": map[string]interface{}{
			"size":     vectorSize,
			"distance": "Cosine",
		},
	}
	return q.do(ctx, http.MethodPut, url, payload, nil)
}

// Scroll fetches points matching the filter without scoring them.
func (q *Qdrant) Scroll(ctx context.Context, filter *Filter, limit int, withVectors bool) ([]Point, error) {
	url := fmt.Sprintf("%s/collections/%s/points/scroll", q.baseURL, q.collection)
	payload := map[string]interface{}{
		"limit":        limit,
		"with_payload": true,
		"with_vector":  withVectors,
	}
	if filter != nil {
		payload["filter"] = filter
	}

	var parsed struct {
		Result struct {
			Points []Point `json:"points"`
		} `json:"result"`
	}
	if err := q.do(ctx, http.MethodPost, url, payload, &parsed); err != nil {
		return nil, err
	}
	return parsed.Result.Points, nil
}

// SearchPoints runs a vector similarity search, optionally filtered.
// A zero scoreThreshold disables thresholding.
func (q *Qdrant) SearchPoints(ctx context.Context, vector []float32, filter *Filter, limit int, scoreThreshold float64) ([]Point, error) {
	url := fmt.Sprintf("%s/collections/%s/points/search", q.baseURL, q.collection)
	payload := map[string]interface{}{
		"vector":       vector,
		"limit":        limit,
		"with_payload": true,
	}
	if filter != nil {
		payload["filter"] = filter
	}
	if scoreThreshold > 0 {
		payload["score_threshold"] = scoreThreshold
	}

	var parsed struct {
		Result []Point `json:"result"`
	}
	if err := q.do(ctx, http.MethodPost, url, payload, &parsed); err != nil {
		return nil, err
	}
	return parsed.Result, nil
}

// Upsert writes points into the collection, replacing existing IDs.
func (q *Qdrant) Upsert(ctx context.Context, points []UpsertPoint) error {
	url := fmt.Sprintf("%s/collections/%s/points?wait=true", q.baseURL, q.collection)
	payload := map[string]interface{}{"points": points}
	return q.do(ctx, http.MethodPut, url, payload, nil)
}

// Count returns the exact number of points in the collection.
func (q *Qdrant) Count(ctx context.Context) (int, error) {
	url := fmt.Sprintf("%s/collections/%s/points/count", q.baseURL, q.collection)

	var parsed struct {
		Result struct {
			Count int `json:"count"`
		} `json:"result"`
	}
	if err := q.do(ctx, http.MethodPost, url, map[string]interface{}{"exact": true}, &parsed); err != nil {
		return 0, err
	}
	return parsed.Result.Count, nil
}

func (q *Qdrant) do(ctx context.Context, method, url string, payload, out interface{}) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, method, url, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := q.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("qdrant request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		b, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("qdrant returned %d: %s", resp.StatusCode, string(b))
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("failed to decode qdrant response: %w", err)
		}
	}
	return nil
}
