package render

import (
	"fmt"
	"html"
	"strings"

	"newsdesk/dates"
	"newsdesk/types"
)

const (
	// DefaultLogoURL replaces absent or blank article images.
	DefaultLogoURL = "https://s1.tokenpost.kr/assets/images/tokenpost_new/common_new/logo.svg"

	// Fallback labels for absent fields.
	FallbackTitle    = "제목 없음"
	FallbackReporter = "없음"

	// LoadingMarkup is shown while a search is in flight.
	LoadingMarkup = "⏳ 검색 중..."

	// SummarizingText marks a summary target while its request is in flight.
	SummarizingText = "🧠 요약 중..."

	// SummaryFailedText is shown when the backend returns no usable summary.
	SummaryFailedText = "❌ 요약 실패"

	// SummaryBoxClass styles an active summary target.
	SummaryBoxClass = "summary-box"
)

// TargetID returns the summary target element id for the card at the
// given position in the result list rendered by search generation gen.
// The generation keeps ids unique across searches: a replaced card's id
// is never reused, so writes addressed to it can never land on a
// successor card.
func TargetID(gen uint64, index int) string {
	return fmt.Sprintf("summary_%d_%d", gen, index)
}

// ErrorMarkup renders a failure message for the results region.
func ErrorMarkup(msg string) string {
	return fmt.Sprintf(`<p style="color:red;">❌ %s</p>`, html.EscapeString(msg))
}

// ResultsMarkup assembles the result-list markup: a total-count header
// followed by one card per document, in the order given. Each card
// carries a dormant summarize trigger whose target id is
// TargetID(gen, i).
func ResultsMarkup(gen uint64, count int, docs []types.Document) string {
	var b strings.Builder

	fmt.Fprintf(&b, "<p>🔎 총 %d건 검색됨</p>\n", count)

	for i, doc := range docs {
		b.WriteString(CardMarkup(doc, TargetID(gen, i)))
	}

	return b.String()
}

// CardMarkup renders a single result card.
func CardMarkup(doc types.Document, targetID string) string {
	title := doc.Title
	if title == "" {
		title = FallbackTitle
	}
	reporter := doc.Reporter
	if reporter == "" {
		reporter = FallbackReporter
	}
	image := strings.TrimSpace(doc.ImageURL)
	if image == "" {
		image = DefaultLogoURL
	}

	var b strings.Builder
	b.WriteString(`<div class="result-card">` + "\n")
	fmt.Fprintf(&b, `<div class="result-title">%s</div>`+"\n", html.EscapeString(title))
	fmt.Fprintf(&b, `<div class="result-meta">📝 기자: %s | %s</div>`+"\n",
		html.EscapeString(reporter), html.EscapeString(dates.KoreanLabel(doc.Date)))
	fmt.Fprintf(&b, `<div class="result-accuracy">🧠 정확도: %v</div>`+"\n", doc.Accuracy)
	fmt.Fprintf(&b, `<button data-target="%s">요약하기</button>`+"\n", targetID)
	fmt.Fprintf(&b, `<a href="%s" target="_blank"><button>보러가기</button></a>`+"\n", doc.URL)
	fmt.Fprintf(&b, `<div id="%s"></div>`+"\n", targetID)
	fmt.Fprintf(&b, `<img src="%s" alt="기사 이미지" class="result-thumb">`+"\n", image)
	b.WriteString(`</div>` + "\n")
	return b.String()
}
