// Package ingest pulls news articles from RSS feeds, extracts their
// full text and hands them to the indexing pipeline.
package ingest

import (
	"fmt"
	"time"

	"github.com/mmcdole/gofeed"

	"newsdesk/types"
)

// FetchFeed retrieves and parses an RSS/Atom feed, returning article
// metadata for up to maxCount items.
func FetchFeed(feedURL string, maxCount int) ([]*types.Article, error) {
	parser := gofeed.NewParser()
	feed, err := parser.ParseURL(feedURL)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch feed: %w", err)
	}

	count := min(len(feed.Items), maxCount)
	articles := make([]*types.Article, 0, count)

	for i := 0; i < count; i++ {
		item := feed.Items[i]

		id := item.GUID
		if id == "" && item.Link != "" {
			id = types.GenerateID(item.Link)
		}

		var publishedAt time.Time
		if item.PublishedParsed != nil {
			publishedAt = *item.PublishedParsed
		} else if item.UpdatedParsed != nil {
			publishedAt = *item.UpdatedParsed
		}

		reporter := ""
		if item.Author != nil {
			reporter = item.Author.Name
		}

		topic := ""
		if len(item.Categories) > 0 {
			topic = item.Categories[0]
		}

		article := &types.Article{
			ID:           id,
			Title:        item.Title,
			URL:          item.Link,
			Organization: feed.Title,
			Reporter:     reporter,
			Topic:        topic,
			PublishedAt:  publishedAt,
			FetchedAt:    time.Now(),
			Content:      item.Description,
		}
		if item.Image != nil {
			article.ImageURL = item.Image.URL
		}

		articles = append(articles, article)
	}

	return articles, nil
}
