package index

import (
	"context"
	"math"
	"sync"
	"testing"
)

type fakeVectorClient struct {
	mu sync.Mutex
	// scroll responses keyed by the first condition's key:value
	scrollByCondition map[string][]Point
	searchResult      []Point
	searchCalls       []searchCall
}

type searchCall struct {
	filter    *Filter
	limit     int
	threshold float64
}

func (f *fakeVectorClient) Scroll(ctx context.Context, filter *Filter, limit int, withVectors bool) ([]Point, error) {
	key := ""
	if filter != nil {
		if len(filter.Must) > 0 {
			key = filter.Must[0].Key + ":" + filter.Must[0].Match.Value
		} else if len(filter.Should) > 0 {
			key = "text:" + filter.Should[0].Match.Value
		}
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.scrollByCondition[key], nil
}

func (f *fakeVectorClient) SearchPoints(ctx context.Context, vector []float32, filter *Filter, limit int, scoreThreshold float64) ([]Point, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.searchCalls = append(f.searchCalls, searchCall{filter: filter, limit: limit, threshold: scoreThreshold})
	return f.searchResult, nil
}

type fakeEmbedder struct {
	vector []float32
}

func (f *fakeEmbedder) EmbedTexts(ctx context.Context, texts []string) ([][]float32, error) {
	out := make([][]float32, len(texts))
	for i := range texts {
		out[i] = f.vector
	}
	return out, nil
}

func (f *fakeEmbedder) ModelName() string { return "fake" }

func payloadFor(title string) map[string]interface{} {
	return map[string]interface{}{
		"title_original": title,
		"reporter":       "김기자",
		"year":           "2025",
		"month":          "5",
		"date_day":       "3",
		"url":            "https://example.com/" + title,
		"content":        "본문",
	}
}

func TestClassifyKeyword(t *testing.T) {
	cases := []struct {
		kw   string
		want keywordKind
	}{
		{"2025", kindYear},
		{"1899", -1},
		{"5", kindMonth},
		{"12", kindMonth},
		{"13", -1},
		{"500", -1},
		{"비트코인", kindNone},
		{"btc2025", kindNone},
	}
	for _, c := range cases {
		if got := classifyKeyword(c.kw); got != c.want {
			t.Errorf("classifyKeyword(%q) = %v; want %v", c.kw, got, c.want)
		}
	}
}

func TestSearchWithDateFilterGoesStraightToVectorSearch(t *testing.T) {
	fake := &fakeVectorClient{
		scrollByCondition: map[string][]Point{
			"year:2025": {{ID: "a", Payload: payloadFor("a")}},
		},
		searchResult: []Point{{ID: "a", Score: 0.912, Payload: payloadFor("a")}},
	}
	s := NewSearcher(fake, &fakeEmbedder{vector: []float32{1, 0}})

	docs, err := s.Search(context.Background(), "2025년 기사", []string{"2025"}, 10)
	if err != nil {
		t.Fatalf("Search: %v", err)
	}

	if len(fake.searchCalls) != 1 {
		t.Fatalf("want one vector search, got %d", len(fake.searchCalls))
	}
	call := fake.searchCalls[0]
	if call.filter == nil || len(call.filter.Must) != 1 || call.filter.Must[0].Key != "year" {
		t.Fatalf("vector search should carry the year filter, got %+v", call.filter)
	}

	if len(docs) != 1 || docs[0].Title != "a" {
		t.Fatalf("unexpected docs: %+v", docs)
	}
	if docs[0].Accuracy != 91.2 {
		t.Fatalf("accuracy = %v; want 91.2", docs[0].Accuracy)
	}
	if docs[0].Date != "2025-5-3" {
		t.Fatalf("date = %q; want 2025-5-3", docs[0].Date)
	}
}

func TestSearchKeywordOnlyReranksLocally(t *testing.T) {
	near := []float32{1, 0}
	far := []float32{0, 1}
	fake := &fakeVectorClient{
		scrollByCondition: map[string][]Point{
			"text:비트코인": {
				{ID: "far", Vector: far, Payload: payloadFor("far")},
				{ID: "near", Vector: near, Payload: payloadFor("near")},
			},
		},
	}
	s := NewSearcher(fake, &fakeEmbedder{vector: []float32{1, 0}})

	docs, err := s.Search(context.Background(), "질문", []string{"비트코인"}, 10)
	if err != nil {
		t.Fatalf("Search: %v", err)
	}

	if len(fake.searchCalls) != 0 {
		t.Fatalf("local rerank should not hit the vector search endpoint")
	}
	if len(docs) != 2 {
		t.Fatalf("want 2 docs, got %d", len(docs))
	}
	if docs[0].Title != "near" || docs[1].Title != "far" {
		t.Fatalf("cosine order wrong: %q, %q", docs[0].Title, docs[1].Title)
	}
}

func TestSearchNoHitsFallsBackToSemantic(t *testing.T) {
	fake := &fakeVectorClient{
		scrollByCondition: map[string][]Point{},
		searchResult:      []Point{{ID: "x", Score: 0.7, Payload: payloadFor("x")}},
	}
	s := NewSearcher(fake, &fakeEmbedder{vector: []float32{1, 0}})

	docs, err := s.Search(context.Background(), "질문", []string{"없는키워드"}, 5)
	if err != nil {
		t.Fatalf("Search: %v", err)
	}

	if len(fake.searchCalls) != 1 {
		t.Fatalf("want one fallback search, got %d", len(fake.searchCalls))
	}
	call := fake.searchCalls[0]
	if call.filter != nil {
		t.Fatalf("fallback search must be unfiltered, got %+v", call.filter)
	}
	if call.threshold != scoreThreshold {
		t.Fatalf("threshold = %v; want %v", call.threshold, scoreThreshold)
	}
	if len(docs) != 1 || docs[0].Title != "x" {
		t.Fatalf("unexpected docs: %+v", docs)
	}
}

func TestCosineSimilarity(t *testing.T) {
	if got := cosineSimilarity([]float32{1, 0}, []float32{1, 0}); math.Abs(got-1) > 1e-9 {
		t.Fatalf("identical vectors: got %v", got)
	}
	if got := cosineSimilarity([]float32{1, 0}, []float32{0, 1}); math.Abs(got) > 1e-9 {
		t.Fatalf("orthogonal vectors: got %v", got)
	}
	if got := cosineSimilarity([]float32{1, 0}, []float32{1, 0, 0}); got != 0 {
		t.Fatalf("length mismatch should score 0, got %v", got)
	}
}
