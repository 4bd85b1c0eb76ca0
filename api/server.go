// Package api exposes the search and summarization endpoints consumed
// by the newsdesk clients.
package api

import (
	"context"

	"github.com/gin-gonic/gin"

	"newsdesk/types"
)

// KeywordGenerator produces search keywords for a free-text question.
type KeywordGenerator interface {
	GenerateSearchKeywords(ctx context.Context, question string) ([]string, error)
}

// DocumentSearcher retrieves and ranks documents for a question.
type DocumentSearcher interface {
	Search(ctx context.Context, question string, keywords []string, topK int) ([]types.Document, error)
}

// Summarizer produces a summary of an article body.
type Summarizer interface {
	SummarizeArticle(ctx context.Context, content, question string) (string, error)
}

// SummaryStore caches summaries by content. May be nil (no caching).
type SummaryStore interface {
	Get(ctx context.Context, content string) (string, bool, error)
	Set(ctx context.Context, content, summary string) error
}

// Deps carries the collaborators the controllers need.
type Deps struct {
	Keywords   KeywordGenerator
	Searcher   DocumentSearcher
	Summarizer Summarizer
	Cache      SummaryStore
	TopK       int
}

// NewRouter constructs a Gin engine with registered routes.
func NewRouter(deps Deps) *gin.Engine {
	r := gin.New()
	// Minimal middleware: recovery; logger optional to reduce verbosity
	r.Use(gin.Recovery())

	RegisterSearchRoutes(r, deps)
	RegisterSummarizeRoutes(r, deps)
	RegisterHealthRoutes(r)
	return r
}
