package api

import (
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"newsdesk/types"
)

// MissingQuestionError is returned when the request has no question.
const MissingQuestionError = "❌ 질문이 없습니다."

// DefaultTopK bounds the result list when Deps.TopK is unset.
const DefaultTopK = 30

// RegisterSearchRoutes registers the document search endpoint.
func RegisterSearchRoutes(r *gin.Engine, deps Deps) {
	r.POST("/search/documents", handleSearchDocuments(deps))
}

// handleSearchDocuments runs question → keywords → ranked documents.
// All failures are reported in-band via the error field; the endpoint
// answers 200 whenever it can produce a body the client understands.
func handleSearchDocuments(deps Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req types.SearchRequest
		if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.Question) == "" {
			c.JSON(http.StatusOK, gin.H{"error": MissingQuestionError})
			return
		}

		log.Printf("📥 question: %s", req.Question)

		// Keyword generation failing only loses the metadata filters;
		// the searcher falls back to plain semantic search.
		keywords, err := deps.Keywords.GenerateSearchKeywords(c.Request.Context(), req.Question)
		if err != nil {
			log.Printf("keyword generation failed: %v", err)
			keywords = nil
		} else {
			log.Printf("🔍 keywords: %v", keywords)
		}

		topK := deps.TopK
		if topK <= 0 {
			topK = DefaultTopK
		}

		docs, err := deps.Searcher.Search(c.Request.Context(), req.Question, keywords, topK)
		if err != nil {
			log.Printf("search failed: %v", err)
			c.JSON(http.StatusOK, gin.H{"error": "❌ 검색 실패: " + err.Error()})
			return
		}

		log.Printf("📄 %d documents", len(docs))
		c.JSON(http.StatusOK, types.SearchResponse{
			ResultCount: len(docs),
			Documents:   docs,
		})
	}
}
