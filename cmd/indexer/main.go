package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"

	"github.com/joho/godotenv"

	"newsdesk/index"
	"newsdesk/indexer"
	"newsdesk/kafka"
	"newsdesk/types"
)

func main() {
	// Load environment variables from .env if present (non-fatal if missing)
	_ = godotenv.Load()

	embedder := index.NewDefaultEmbeddingsProvider(os.Getenv("EMBEDDING_MODEL"))
	if embedder == nil {
		log.Fatal("No embeddings provider configured (set COHERE_API_KEY or OPENAI_API_KEY)")
	}
	log.Printf("Embeddings provider: %s", embedder.ModelName())

	qdrant := index.NewQdrant(index.QdrantConfig{
		Host:       envOrDefault("QDRANT_HOST", "localhost"),
		Port:       envIntOrDefault("QDRANT_PORT", 6333),
		Collection: envOrDefault("QDRANT_COLLECTION", "newsdesk_articles"),
	})

	vectorSize := envIntOrDefault("EMBEDDING_DIM", 1024)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := qdrant.EnsureCollection(ctx, vectorSize); err != nil {
		log.Fatalf("Failed to ensure collection: %v", err)
	}

	handler := indexer.NewHandler(qdrant, embedder)

	consumer, err := kafka.NewConsumer(kafka.ConsumerConfig{
		Brokers: strings.Split(envOrDefault("KAFKA_BROKERS", "localhost:9092"), ","),
		Topic:   envOrDefault("KAFKA_TOPIC", "newsdesk.articles"),
		GroupID: envOrDefault("KAFKA_GROUP_ID", "newsdesk-indexer"),
		Handler: kafka.JSONHandler[types.Article](
			indexer.Validate,
			func(ctx context.Context, a *types.Article) error {
				return handler.IndexArticle(ctx, a)
			},
		),
	})
	if err != nil {
		log.Fatalf("Failed to create Kafka consumer: %v", err)
	}

	if err := consumer.Start(ctx); err != nil {
		log.Fatalf("Failed to start Kafka consumer: %v", err)
	}

	// Run until interrupted
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan

	log.Println("Shutting down indexer...")
	cancel()
	if err := consumer.Close(); err != nil {
		log.Printf("Consumer close error: %v", err)
	}
}

func envOrDefault(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func envIntOrDefault(key string, defaultVal int) int {
	if val := os.Getenv(key); val != "" {
		if n, err := strconv.Atoi(val); err == nil {
			return n
		}
	}
	return defaultVal
}
