package api

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"newsdesk/types"
)

// MissingContentError is returned when the request has no body text.
const MissingContentError = "❌ 기사 본문이 없습니다."

// RegisterSummarizeRoutes registers the summarization endpoint.
func RegisterSummarizeRoutes(r *gin.Engine, deps Deps) {
	r.POST("/summarize", handleSummarize(deps))
}

func handleSummarize(deps Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req types.SummaryRequest
		if err := c.ShouldBindJSON(&req); err != nil || req.Content == "" {
			c.JSON(http.StatusOK, gin.H{"error": MissingContentError})
			return
		}

		ctx := c.Request.Context()
		log.Printf("🧠 summarize request, %d chars", len(req.Content))

		if deps.Cache != nil {
			cached, ok, err := deps.Cache.Get(ctx, req.Content)
			if err != nil {
				log.Printf("summary cache read failed: %v", err)
			} else if ok {
				log.Printf("summary served from cache")
				c.JSON(http.StatusOK, types.SummaryResponse{Summary: cached})
				return
			}
		}

		summary, err := deps.Summarizer.SummarizeArticle(ctx, req.Content, req.Question)
		if err != nil {
			log.Printf("summarization failed: %v", err)
			c.JSON(http.StatusOK, gin.H{"error": "❌ 요약 실패: " + err.Error()})
			return
		}

		if deps.Cache != nil && summary != "" {
			if err := deps.Cache.Set(ctx, req.Content, summary); err != nil {
				log.Printf("summary cache write failed: %v", err)
			}
		}

		c.JSON(http.StatusOK, types.SummaryResponse{Summary: summary})
	}
}
