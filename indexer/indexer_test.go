package indexer

import (
	"context"
	"errors"
	"testing"
	"time"

	"newsdesk/index"
	"newsdesk/types"
)

type fakeStore struct {
	points []index.UpsertPoint
	err    error
}

func (f *fakeStore) Upsert(ctx context.Context, points []index.UpsertPoint) error {
	if f.err != nil {
		return f.err
	}
	f.points = append(f.points, points...)
	return nil
}

type fakeEmbedder struct {
	vector []float32
	err    error
	texts  []string
}

func (f *fakeEmbedder) EmbedTexts(ctx context.Context, texts []string) ([][]float32, error) {
	f.texts = append(f.texts, texts...)
	if f.err != nil {
		return nil, f.err
	}
	return [][]float32{f.vector}, nil
}

func sampleArticle() *types.Article {
	return &types.Article{
		ID:           "abc123",
		Title:        "비트코인 급등",
		URL:          "https://example.com/a",
		Organization: "TokenPost",
		Reporter:     "홍길동",
		Topic:        "시세",
		PublishedAt:  time.Date(2025, 5, 3, 9, 0, 0, 0, time.UTC),
		ImageURL:     "https://example.com/a.png",
		Content:      "본문 텍스트",
	}
}

func TestIndexArticleUpsertsPoint(t *testing.T) {
	store := &fakeStore{}
	embedder := &fakeEmbedder{vector: []float32{0.1, 0.2}}
	h := NewHandler(store, embedder)

	if err := h.IndexArticle(context.Background(), sampleArticle()); err != nil {
		t.Fatalf("IndexArticle: %v", err)
	}

	if len(store.points) != 1 {
		t.Fatalf("expected 1 point, got %d", len(store.points))
	}
	p := store.points[0]
	if p.ID != PointID("abc123") {
		t.Errorf("point ID = %q, want %q", p.ID, PointID("abc123"))
	}
	if got := p.Payload["title_original"]; got != "비트코인 급등" {
		t.Errorf("title_original = %v", got)
	}
	if got := p.Payload["year"]; got != "2025" {
		t.Errorf("year = %v, want 2025", got)
	}
	if got := p.Payload["month"]; got != "5" {
		t.Errorf("month = %v, want unpadded 5", got)
	}
	if got := p.Payload["date_day"]; got != "3" {
		t.Errorf("date_day = %v, want 3", got)
	}
	if len(embedder.texts) != 1 {
		t.Fatalf("expected one embed call, got %d", len(embedder.texts))
	}
}

func TestPointIDIsStable(t *testing.T) {
	if PointID("abc123") != PointID("abc123") {
		t.Error("PointID not deterministic")
	}
	if PointID("abc123") == PointID("def456") {
		t.Error("PointID collides for distinct articles")
	}
}

func TestIndexArticleEmbedFailure(t *testing.T) {
	store := &fakeStore{}
	embedder := &fakeEmbedder{err: errors.New("provider down")}
	h := NewHandler(store, embedder)

	if err := h.IndexArticle(context.Background(), sampleArticle()); err == nil {
		t.Fatal("expected error from embed failure")
	}
	if len(store.points) != 0 {
		t.Errorf("no points should be written on embed failure, got %d", len(store.points))
	}
}

func TestIndexArticleRejectsEmptyContent(t *testing.T) {
	h := NewHandler(&fakeStore{}, &fakeEmbedder{vector: []float32{1}})
	article := sampleArticle()
	article.Content = ""
	if err := h.IndexArticle(context.Background(), article); err == nil {
		t.Fatal("expected error for empty content")
	}
}

func TestValidate(t *testing.T) {
	good := sampleArticle()
	if !Validate(good) {
		t.Error("valid article rejected")
	}

	broken := sampleArticle()
	broken.ExtractionError = "timeout"
	if Validate(broken) {
		t.Error("article with extraction error accepted")
	}

	untitled := sampleArticle()
	untitled.Title = ""
	if Validate(untitled) {
		t.Error("untitled article accepted")
	}
}

func TestArticlePayloadZeroDate(t *testing.T) {
	article := sampleArticle()
	article.PublishedAt = time.Time{}
	payload := ArticlePayload(article)
	if _, ok := payload["year"]; ok {
		t.Error("zero date should not set year")
	}
}
