package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"newsdesk/types"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type fakeKeywords struct {
	keywords []string
	calls    int
}

func (f *fakeKeywords) GenerateSearchKeywords(ctx context.Context, question string) ([]string, error) {
	f.calls++
	return f.keywords, nil
}

type fakeSearcher struct {
	docs  []types.Document
	calls int
}

func (f *fakeSearcher) Search(ctx context.Context, question string, keywords []string, topK int) ([]types.Document, error) {
	f.calls++
	return f.docs, nil
}

type fakeSummarizer struct {
	summary string
	calls   int
}

func (f *fakeSummarizer) SummarizeArticle(ctx context.Context, content, question string) (string, error) {
	f.calls++
	return f.summary, nil
}

type fakeStore struct {
	entries map[string]string
	gets    int
	sets    int
}

func newFakeStore() *fakeStore { return &fakeStore{entries: make(map[string]string)} }

func (f *fakeStore) Get(ctx context.Context, content string) (string, bool, error) {
	f.gets++
	s, ok := f.entries[content]
	return s, ok, nil
}

func (f *fakeStore) Set(ctx context.Context, content, summary string) error {
	f.sets++
	f.entries[content] = summary
	return nil
}

func postJSON(t *testing.T, r *gin.Engine, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestSearchDocumentsSuccess(t *testing.T) {
	searcher := &fakeSearcher{docs: []types.Document{
		{Title: "기사", Accuracy: 91.2, URL: "https://example.com"},
	}}
	r := NewRouter(Deps{
		Keywords: &fakeKeywords{keywords: []string{"비트코인"}},
		Searcher: searcher,
	})

	w := postJSON(t, r, "/search/documents", `{"question":"비트코인 올랐나요?"}`)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	var resp types.SearchResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("bad body: %v", err)
	}
	if resp.Error != "" {
		t.Fatalf("unexpected error: %q", resp.Error)
	}
	if resp.ResultCount != 1 || len(resp.Documents) != 1 {
		t.Fatalf("unexpected response: %+v", resp)
	}
	if searcher.calls != 1 {
		t.Fatalf("searcher called %d times", searcher.calls)
	}
}

func TestSearchDocumentsMissingQuestion(t *testing.T) {
	keywords := &fakeKeywords{}
	searcher := &fakeSearcher{}
	r := NewRouter(Deps{Keywords: keywords, Searcher: searcher})

	for _, body := range []string{`{}`, `{"question":"  "}`, `not json`} {
		w := postJSON(t, r, "/search/documents", body)
		var resp types.SearchResponse
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("bad body for %q: %v", body, err)
		}
		if resp.Error != MissingQuestionError {
			t.Fatalf("body %q: error = %q; want %q", body, resp.Error, MissingQuestionError)
		}
	}
	if keywords.calls != 0 || searcher.calls != 0 {
		t.Fatalf("collaborators must not be called without a question")
	}
}

func TestSummarizeMissingContent(t *testing.T) {
	summarizer := &fakeSummarizer{}
	r := NewRouter(Deps{Summarizer: summarizer})

	w := postJSON(t, r, "/summarize", `{"content":""}`)

	var resp types.SummaryResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("bad body: %v", err)
	}
	if resp.Error != MissingContentError {
		t.Fatalf("error = %q; want %q", resp.Error, MissingContentError)
	}
	if summarizer.calls != 0 {
		t.Fatalf("summarizer must not run without content")
	}
}

func TestSummarizeCachesResult(t *testing.T) {
	summarizer := &fakeSummarizer{summary: "시장이 반등했다."}
	store := newFakeStore()
	r := NewRouter(Deps{Summarizer: summarizer, Cache: store})

	body := `{"content":"충분히 긴 기사 본문입니다."}`

	w := postJSON(t, r, "/summarize", body)
	var resp types.SummaryResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("bad body: %v", err)
	}
	if resp.Summary != "시장이 반등했다." {
		t.Fatalf("summary = %q", resp.Summary)
	}

	// second request is a cache hit
	postJSON(t, r, "/summarize", body)
	if summarizer.calls != 1 {
		t.Fatalf("summarizer called %d times; want 1", summarizer.calls)
	}
	if store.sets != 1 {
		t.Fatalf("cache sets = %d; want 1", store.sets)
	}
}

func TestHealth(t *testing.T) {
	r := NewRouter(Deps{})
	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
}
