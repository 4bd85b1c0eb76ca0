package main

import (
	"context"
	"flag"
	"log"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"newsdesk/ingest"
	"newsdesk/kafka"
)

const defaultFeedURL = "https://www.tokenpost.kr/rss"

func main() {
	// Load environment variables from .env if present (non-fatal if missing)
	_ = godotenv.Load()

	feedURL := flag.String("feed", envOrDefault("FEED_URL", defaultFeedURL), "RSS feed URL")
	maxCount := flag.Int("count", 20, "Maximum articles to fetch")
	flag.Parse()

	log.Printf("Fetching RSS feed: %s", *feedURL)
	articles, err := ingest.FetchFeed(*feedURL, *maxCount)
	if err != nil {
		log.Fatalf("Failed to fetch articles: %v", err)
	}
	log.Printf("Fetched %d articles from feed", len(articles))

	// Extract full content for all articles
	log.Printf("Extracting full content using %d workers...", ingest.WorkerCount)
	ingest.ExtractAllContent(articles)

	successCount := 0
	for _, article := range articles {
		if article.ExtractionError == "" {
			successCount++
		}
	}
	log.Printf("Successfully extracted %d/%d articles", successCount, len(articles))

	// Archive raw articles to S3 if configured
	archive := initializeArchive()
	if archive != nil {
		archived := 0
		for _, article := range articles {
			if article.ExtractionError != "" {
				continue
			}
			ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			err := archive.Store(ctx, article)
			cancel()
			if err != nil {
				log.Printf("Archive failed for %s: %v", article.ID, err)
				continue
			}
			archived++
		}
		log.Printf("Archived %d article(s)", archived)
	} else {
		log.Printf("S3 not configured; skipping archive")
	}

	// Publish to Kafka for the indexer
	producer, err := kafka.NewProducer(kafka.ProducerConfig{
		Brokers: brokerList(),
		Topic:   envOrDefault("KAFKA_TOPIC", "newsdesk.articles"),
	})
	if err != nil {
		log.Fatalf("Failed to create Kafka producer: %v", err)
	}
	defer producer.Close()

	published := 0
	for _, article := range articles {
		if article.ExtractionError != "" {
			log.Printf("Skipping %s: %s", article.ID, article.ExtractionError)
			continue
		}
		if err := producer.Publish(article.ID, article); err != nil {
			log.Printf("Publish failed for %s: %v", article.ID, err)
			continue
		}
		published++
	}
	log.Printf("Published %d/%d articles", published, len(articles))
}

// initializeArchive returns an archive if S3_BUCKET is configured.
// Optional: S3_REGION, S3_PROFILE, S3_USE_PATH_STYLE=true
func initializeArchive() *ingest.Archive {
	bucket := strings.TrimSpace(os.Getenv("S3_BUCKET"))
	if bucket == "" {
		return nil
	}

	cfg := ingest.ArchiveConfig{
		Region:       strings.TrimSpace(os.Getenv("S3_REGION")),
		Profile:      strings.TrimSpace(os.Getenv("S3_PROFILE")),
		Bucket:       bucket,
		UsePathStyle: os.Getenv("S3_USE_PATH_STYLE") == "true",
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	archive, err := ingest.NewArchive(ctx, cfg)
	if err != nil {
		log.Printf("S3 init failed, continuing without archive: %v", err)
		return nil
	}
	return archive
}

func brokerList() []string {
	return strings.Split(envOrDefault("KAFKA_BROKERS", "localhost:9092"), ",")
}

func envOrDefault(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}
