package ingest

import (
	"fmt"
	"log"
	"sync"
	"time"

	readability "github.com/go-shiori/go-readability"

	"newsdesk/types"
)

const (
	// WorkerCount bounds concurrent article fetches.
	WorkerCount      = 5
	extractorTimeout = 30 * time.Second
)

// ExtractAllContent fetches and extracts full content for all articles
// using a worker pool. Failures are recorded per article and do not
// stop the batch.
func ExtractAllContent(articles []*types.Article) {
	var wg sync.WaitGroup
	articleChan := make(chan *types.Article, len(articles))

	for i := 0; i < WorkerCount; i++ {
		go func(workerID int) {
			for article := range articleChan {
				if err := extractContent(article); err != nil {
					article.ExtractionError = err.Error()
					log.Printf("[Worker %d] Failed to extract %s: %v", workerID, article.URL, err)
				}
				wg.Done()
			}
		}(i)
	}

	for _, article := range articles {
		wg.Add(1)
		articleChan <- article
	}

	wg.Wait()
	close(articleChan)
}

// extractContent replaces the feed summary with the readable full text
// of the article page.
func extractContent(article *types.Article) error {
	if article.URL == "" {
		return fmt.Errorf("article URL is empty")
	}

	extracted, err := readability.FromURL(article.URL, extractorTimeout)
	if err != nil {
		return fmt.Errorf("readability extraction failed: %w", err)
	}

	if extracted.TextContent != "" {
		article.Content = extracted.TextContent
	}
	if article.ImageURL == "" && extracted.Image != "" {
		article.ImageURL = extracted.Image
	}
	if article.Reporter == "" && extracted.Byline != "" {
		article.Reporter = extracted.Byline
	}

	return nil
}
