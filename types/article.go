package types

import "time"

// Article is a fetched news item on its way into the index: feed
// metadata plus the extracted full text.
type Article struct {
	ID              string    `json:"id"`
	Title           string    `json:"title"`
	URL             string    `json:"url"`
	Organization    string    `json:"organization,omitempty"`
	Reporter        string    `json:"reporter,omitempty"`
	Topic           string    `json:"topic,omitempty"`
	PublishedAt     time.Time `json:"published_at"`
	FetchedAt       time.Time `json:"fetched_at"`
	ImageURL        string    `json:"image_url,omitempty"`
	Content         string    `json:"content"`
	ExtractionError string    `json:"extraction_error,omitempty"`
}

// FeedResult is the top-level wrapper for ingest output
type FeedResult struct {
	FeedURL      string     `json:"feed_url"`
	FetchedAt    time.Time  `json:"fetched_at"`
	ArticleCount int        `json:"article_count"`
	Articles     []*Article `json:"articles"`
}
