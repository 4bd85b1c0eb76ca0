// Package pipeline orchestrates the two asynchronous flows of the
// client: search-and-render and summarize-and-reveal. Each invocation
// writes to the document only through the injected render.Adapter and
// never fails the process; every error path ends in rendered text.
package pipeline

import (
	"context"
	"sync/atomic"

	"newsdesk/ranking"
	"newsdesk/render"
	"newsdesk/types"
)

// Backend is the slice of the HTTP client the pipelines need.
type Backend interface {
	SearchDocuments(ctx context.Context, question string) (*types.SearchResponse, error)
	Summarize(ctx context.Context, content string) (*types.SummaryResponse, error)
}

// Search runs the query→rank→render flow. Invocations are independent
// fire-and-forget tasks: starting a new search does not cancel an
// in-flight one, and concurrent searches race last-write-wins on the
// shared results region.
type Search struct {
	backend Backend
	adapter render.Adapter

	// gen numbers each invocation; target ids embed it so a card from
	// one search never shares an id with a card from another.
	gen atomic.Uint64
}

// NewSearch creates a search pipeline writing through the adapter.
func NewSearch(backend Backend, adapter render.Adapter) *Search {
	return &Search{backend: backend, adapter: adapter}
}

// Run executes one search invocation. Callers typically run it in its
// own goroutine; its steps never interleave with themselves.
func (p *Search) Run(ctx context.Context, query string) {
	p.adapter.SetResultsRegion(render.LoadingMarkup)

	resp, err := p.backend.SearchDocuments(ctx, query)
	if err != nil {
		p.adapter.SetResultsRegion(render.ErrorMarkup("오류 발생: " + err.Error()))
		return
	}
	if resp.Error != "" {
		p.adapter.SetResultsRegion(render.ErrorMarkup(resp.Error))
		return
	}

	ranked := ranking.ByAccuracy(resp.Documents)
	gen := p.gen.Add(1)
	p.adapter.SetResultsRegion(render.ResultsMarkup(gen, resp.ResultCount, ranked))
	for i, doc := range ranked {
		p.adapter.RegisterTrigger(render.TargetID(gen, i), doc.Content)
	}
}
