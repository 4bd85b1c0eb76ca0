package index

import (
	"context"
	"fmt"
	"log"
	"math"
	"sort"
	"strconv"
	"sync"

	"newsdesk/types"
)

// keywordFilterFields are the payload fields a free-text keyword is
// matched against.
var keywordFilterFields = []string{
	"title_original", "organization", "reporter", "topic", "content",
}

const (
	perKeywordLimit = 200
	scoreThreshold  = 0.5
)

// VectorClient is the slice of the Qdrant client the searcher needs.
type VectorClient interface {
	Scroll(ctx context.Context, filter *Filter, limit int, withVectors bool) ([]Point, error)
	SearchPoints(ctx context.Context, vector []float32, filter *Filter, limit int, scoreThreshold float64) ([]Point, error)
}

// Searcher combines keyword filtering over payload metadata with
// semantic reranking over the query embedding.
type Searcher struct {
	vector   VectorClient
	embedder EmbeddingsProvider
}

// NewSearcher creates a searcher over the given store and embedder.
func NewSearcher(vector VectorClient, embedder EmbeddingsProvider) *Searcher {
	return &Searcher{vector: vector, embedder: embedder}
}

type keywordKind int

const (
	kindNone keywordKind = iota
	kindYear
	kindMonth
)

// classifyKeyword decides how a keyword filters the corpus: a 4-digit
// number in [1900,2100] is a year, 1..12 is a month, any other pure
// number is ignored, everything else matches the text fields.
func classifyKeyword(kw string) keywordKind {
	val, err := strconv.Atoi(kw)
	if err != nil {
		return kindNone
	}
	if len(kw) == 4 && val >= 1900 && val <= 2100 {
		return kindYear
	}
	if val >= 1 && val <= 12 {
		return kindMonth
	}
	// digit-only but neither year nor month: filters nothing
	return -1
}

type keywordHits struct {
	kind keywordKind
	ids  map[string]bool
}

// Search runs the keyword-then-semantic flow:
//  1. every keyword is searched in parallel against payload metadata;
//  2. year/month hits are intersected (MUST), text hits unioned (SHOULD);
//  3. with a date filter present, Qdrant scores the query vector under
//     that filter directly; with text hits only, their stored vectors
//     are reranked locally by cosine similarity; with no hits at all,
//     plain semantic search is the fallback.
func (s *Searcher) Search(ctx context.Context, question string, keywords []string, topK int) ([]types.Document, error) {
	hits, points := s.searchKeywordsParallel(ctx, keywords)

	var dateSets []map[string]bool
	var normalSets []map[string]bool
	for _, h := range hits {
		switch h.kind {
		case kindYear, kindMonth:
			dateSets = append(dateSets, h.ids)
		case kindNone:
			normalSets = append(normalSets, h.ids)
		}
	}

	dateIntersection := intersect(dateSets)
	normalUnion := union(normalSets)

	if len(dateIntersection) > 0 {
		return s.searchWithDateFilter(ctx, question, hits, topK)
	}

	finalIDs := normalUnion
	if len(finalIDs) == 0 {
		log.Printf("no keyword hits for %v; falling back to semantic search", keywords)
		return s.semanticSearch(ctx, question, topK)
	}

	return s.rerankLocally(ctx, question, finalIDs, points, topK)
}

// searchKeywordsParallel scrolls the collection once per keyword.
// Failed scrolls degrade to empty hit sets.
func (s *Searcher) searchKeywordsParallel(ctx context.Context, keywords []string) (map[string]keywordHits, map[string]Point) {
	hits := make(map[string]keywordHits)
	points := make(map[string]Point)

	var wg sync.WaitGroup
	var mu sync.Mutex

	for _, kw := range keywords {
		wg.Add(1)
		go func(kw string) {
			defer wg.Done()

			kind, filter := keywordFilter(kw)
			if filter == nil {
				mu.Lock()
				hits[kw] = keywordHits{kind: kind, ids: map[string]bool{}}
				mu.Unlock()
				return
			}

			found, err := s.vector.Scroll(ctx, filter, perKeywordLimit, true)
			if err != nil {
				log.Printf("keyword scroll failed for %q: %v", kw, err)
				found = nil
			}

			ids := make(map[string]bool, len(found))
			mu.Lock()
			for _, p := range found {
				ids[p.ID] = true
				points[p.ID] = p
			}
			hits[kw] = keywordHits{kind: kind, ids: ids}
			mu.Unlock()
		}(kw)
	}
	wg.Wait()

	return hits, points
}

// keywordFilter builds the Qdrant filter for one keyword, or nil when
// the keyword filters nothing.
func keywordFilter(kw string) (keywordKind, *Filter) {
	switch kind := classifyKeyword(kw); kind {
	case kindYear:
		return kindYear, &Filter{Must: []FieldCondition{{Key: "year", Match: Match{Value: kw}}}}
	case kindMonth:
		return kindMonth, &Filter{Must: []FieldCondition{{Key: "month", Match: Match{Value: kw}}}}
	case kindNone:
		should := make([]FieldCondition, len(keywordFilterFields))
		for i, field := range keywordFilterFields {
			should[i] = FieldCondition{Key: field, Match: Match{Value: kw}}
		}
		return kindNone, &Filter{Should: should}
	default:
		return kind, nil
	}
}

func (s *Searcher) searchWithDateFilter(ctx context.Context, question string, hits map[string]keywordHits, topK int) ([]types.Document, error) {
	vec, err := s.embedQuestion(ctx, question)
	if err != nil {
		return nil, err
	}

	var must []FieldCondition
	for kw, h := range hits {
		switch h.kind {
		case kindYear:
			must = append(must, FieldCondition{Key: "year", Match: Match{Value: kw}})
		case kindMonth:
			must = append(must, FieldCondition{Key: "month", Match: Match{Value: kw}})
		}
	}

	found, err := s.vector.SearchPoints(ctx, vec, &Filter{Must: must}, topK, 0)
	if err != nil {
		return nil, err
	}
	return pointsToDocuments(found), nil
}

func (s *Searcher) semanticSearch(ctx context.Context, question string, topK int) ([]types.Document, error) {
	vec, err := s.embedQuestion(ctx, question)
	if err != nil {
		return nil, err
	}

	found, err := s.vector.SearchPoints(ctx, vec, nil, topK, scoreThreshold)
	if err != nil {
		return nil, err
	}
	return pointsToDocuments(found), nil
}

// rerankLocally scores already-fetched keyword hits against the query
// embedding without another round-trip to Qdrant.
func (s *Searcher) rerankLocally(ctx context.Context, question string, ids map[string]bool, points map[string]Point, topK int) ([]types.Document, error) {
	vec, err := s.embedQuestion(ctx, question)
	if err != nil {
		return nil, err
	}

	scored := make([]Point, 0, len(ids))
	for id := range ids {
		p, ok := points[id]
		if !ok || len(p.Vector) == 0 {
			continue
		}
		p.Score = cosineSimilarity(vec, p.Vector)
		scored = append(scored, p)
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})
	if len(scored) > topK {
		scored = scored[:topK]
	}
	return pointsToDocuments(scored), nil
}

func (s *Searcher) embedQuestion(ctx context.Context, question string) ([]float32, error) {
	if s.embedder == nil {
		return nil, fmt.Errorf("no embeddings provider configured")
	}
	vecs, err := s.embedder.EmbedTexts(ctx, []string{question})
	if err != nil {
		return nil, fmt.Errorf("failed to embed question: %w", err)
	}
	if len(vecs) != 1 {
		return nil, fmt.Errorf("expected one query embedding, got %d", len(vecs))
	}
	return vecs[0], nil
}

// pointsToDocuments maps Qdrant payloads onto wire documents. Accuracy
// is the similarity score scaled to a 0-100 value with 2 decimals.
func pointsToDocuments(points []Point) []types.Document {
	docs := make([]types.Document, 0, len(points))
	for _, p := range points {
		docs = append(docs, types.Document{
			ID:       p.ID,
			Title:    payloadString(p.Payload, "title_original"),
			Reporter: payloadString(p.Payload, "reporter"),
			Date: fmt.Sprintf("%s-%s-%s",
				payloadStringOr(p.Payload, "year", "----"),
				payloadStringOr(p.Payload, "month", "--"),
				payloadStringOr(p.Payload, "date_day", "--")),
			Topic:    payloadString(p.Payload, "topic"),
			URL:      payloadString(p.Payload, "url"),
			ImageURL: payloadString(p.Payload, "main_image_url"),
			Content:  payloadString(p.Payload, "content"),
			Accuracy: math.Round(p.Score*100*100) / 100,
		})
	}
	return docs
}

func payloadString(payload map[string]interface{}, key string) string {
	if v, ok := payload[key].(string); ok {
		return v
	}
	return ""
}

func payloadStringOr(payload map[string]interface{}, key, fallback string) string {
	if v, ok := payload[key].(string); ok && v != "" {
		return v
	}
	return fallback
}

func intersect(sets []map[string]bool) map[string]bool {
	if len(sets) == 0 {
		return nil
	}
	out := make(map[string]bool)
	for id := range sets[0] {
		in := true
		for _, s := range sets[1:] {
			if !s[id] {
				in = false
				break
			}
		}
		if in {
			out[id] = true
		}
	}
	return out
}

func union(sets []map[string]bool) map[string]bool {
	if len(sets) == 0 {
		return nil
	}
	out := make(map[string]bool)
	for _, s := range sets {
		for id := range s {
			out[id] = true
		}
	}
	return out
}

func cosineSimilarity(a, b []float32) float64 {
	if len(a) != len(b) || len(a) == 0 {
		return 0
	}
	var dot, normA, normB float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		normA += float64(a[i]) * float64(a[i])
		normB += float64(b[i]) * float64(b[i])
	}
	if normA == 0 || normB == 0 {
		return 0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}
