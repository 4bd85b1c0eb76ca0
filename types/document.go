package types

import (
	"crypto/sha256"
	"encoding/hex"
)

// Document represents a single article returned by the search backend.
// Instances are immutable once decoded; the renderer never writes to them.
type Document struct {
	ID       string  `json:"id,omitempty"`
	Title    string  `json:"title,omitempty"`
	Reporter string  `json:"reporter,omitempty"`
	Date     string  `json:"date,omitempty"`
	Topic    string  `json:"topic,omitempty"`
	Accuracy float64 `json:"accuracy"`
	Content  string  `json:"content,omitempty"`
	URL      string  `json:"url"`
	ImageURL string  `json:"image_url,omitempty"`
}

// SearchRequest is the body of POST /search/documents
type SearchRequest struct {
	Question string `json:"question"`
}

// SearchResponse is the body returned by POST /search/documents.
// Either Error is set, or ResultCount/Documents are.
type SearchResponse struct {
	Error       string     `json:"error,omitempty"`
	ResultCount int        `json:"result_count"`
	Documents   []Document `json:"documents,omitempty"`
}

// SummaryRequest is the body of POST /summarize
type SummaryRequest struct {
	Content  string `json:"content"`
	Question string `json:"question,omitempty"`
}

// SummaryResponse is the body returned by POST /summarize.
// An empty Summary is treated as failure by the client.
type SummaryResponse struct {
	Error   string `json:"error,omitempty"`
	Summary string `json:"summary,omitempty"`
}

// GenerateID creates a stable point ID from a document URL
func GenerateID(url string) string {
	hash := sha256.Sum256([]byte(url))
	return hex.EncodeToString(hash[:])[:16]
}
