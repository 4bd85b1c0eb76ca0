package indexer

import (
	"context"
	"fmt"
	"log"
	"strconv"

	"github.com/google/uuid"

	"newsdesk/index"
	"newsdesk/types"
)

// pointNamespace makes article IDs reproducible as Qdrant point UUIDs.
var pointNamespace = uuid.MustParse("6ba7b810-9dad-11d1-80b4-00c04fd430c8")

// VectorStore is the write side of the index the handler needs.
type VectorStore interface {
	Upsert(ctx context.Context, points []index.UpsertPoint) error
}

// Embedder produces one vector per input text.
type Embedder interface {
	EmbedTexts(ctx context.Context, texts []string) ([][]float32, error)
}

// Handler consumes fetched articles and writes them into the vector index.
type Handler struct {
	store    VectorStore
	embedder Embedder
}

// NewHandler creates a handler writing embedded articles to store.
func NewHandler(store VectorStore, embedder Embedder) *Handler {
	return &Handler{store: store, embedder: embedder}
}

// PointID derives a stable UUID for the article so re-indexing the same
// article overwrites its point instead of duplicating it.
func PointID(articleID string) string {
	return uuid.NewSHA1(pointNamespace, []byte(articleID)).String()
}

// ArticlePayload builds the stored payload for an article. Date parts
// are kept as unpadded strings so keyword filters can match user input
// like "2025" or "5" directly.
func ArticlePayload(article *types.Article) map[string]interface{} {
	payload := map[string]interface{}{
		"title_original": article.Title,
		"organization":   article.Organization,
		"reporter":       article.Reporter,
		"topic":          article.Topic,
		"url":            article.URL,
		"main_image_url": article.ImageURL,
		"content":        article.Content,
	}

	if !article.PublishedAt.IsZero() {
		payload["year"] = strconv.Itoa(article.PublishedAt.Year())
		payload["month"] = strconv.Itoa(int(article.PublishedAt.Month()))
		payload["date_day"] = strconv.Itoa(article.PublishedAt.Day())
	}

	return payload
}

// IndexArticle embeds the article and upserts its point.
func (h *Handler) IndexArticle(ctx context.Context, article *types.Article) error {
	if article.Content == "" {
		return fmt.Errorf("article %s has no content", article.ID)
	}

	text := article.Title + "\n" + article.Content
	vectors, err := h.embedder.EmbedTexts(ctx, []string{text})
	if err != nil {
		return fmt.Errorf("embed article %s: %w", article.ID, err)
	}
	if len(vectors) != 1 {
		return fmt.Errorf("embed article %s: expected 1 vector, got %d", article.ID, len(vectors))
	}

	point := index.UpsertPoint{
		ID:      PointID(article.ID),
		Vector:  vectors[0],
		Payload: ArticlePayload(article),
	}
	if err := h.store.Upsert(ctx, []index.UpsertPoint{point}); err != nil {
		return fmt.Errorf("upsert article %s: %w", article.ID, err)
	}

	log.Printf("Indexed article %s (%s)", article.ID, article.Title)
	return nil
}

// Validate rejects articles the index cannot use.
func Validate(article *types.Article) bool {
	if article.ID == "" || article.Title == "" {
		return false
	}
	if article.Content == "" || article.ExtractionError != "" {
		return false
	}
	return true
}
