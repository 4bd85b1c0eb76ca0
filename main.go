package main

import (
	"log"
	"net/http"
	"os"

	"github.com/joho/godotenv"

	"newsdesk/api"
	"newsdesk/cache"
	"newsdesk/index"
	"newsdesk/llm"
)

func main() {
	// Load environment variables from .env if present (non-fatal if missing)
	_ = godotenv.Load()

	addr := ":8080"
	if v := os.Getenv("PORT"); v != "" {
		addr = ":" + v
	}

	embedder := index.NewDefaultEmbeddingsProvider(os.Getenv("EMBEDDING_MODEL"))
	if embedder == nil {
		log.Fatal("No embeddings provider configured (set COHERE_API_KEY or OPENAI_API_KEY)")
	}
	log.Printf("Embeddings provider: %s", embedder.ModelName())

	qdrant := index.NewQdrant(index.QdrantConfig{
		Host:       envOrDefault("QDRANT_HOST", DefaultQdrantHost),
		Port:       DefaultQdrantPort,
		Collection: envOrDefault("QDRANT_COLLECTION", DefaultCollection),
	})

	llmClient := llm.NewFromEnv()

	// Summary cache is optional; the server works without Redis.
	var summaryCache api.SummaryStore
	if c, err := cache.NewFromEnv(); err != nil {
		log.Printf("Summary cache disabled: %v", err)
	} else {
		summaryCache = c
	}

	r := api.NewRouter(api.Deps{
		Keywords:   llmClient,
		Searcher:   index.NewSearcher(qdrant, embedder),
		Summarizer: llmClient,
		Cache:      summaryCache,
		TopK:       api.DefaultTopK,
	})

	log.Printf("Starting API server on %s", addr)
	log.Println("API endpoints available:")
	log.Println("  GET  /api/health")
	log.Println("  POST /search/documents")
	log.Println("  POST /summarize")

	if err := http.ListenAndServe(addr, r); err != nil {
		log.Fatalf("server error: %v", err)
	}
}

func envOrDefault(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}
