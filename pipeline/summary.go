package pipeline

import (
	"context"
	"sync"
	"time"

	"newsdesk/render"
)

// TriggerState tracks one summarize trigger through its lifecycle.
// Pending is entered synchronously on activation and is terminal with
// respect to re-triggering; there is no way back to Idle. State is
// keyed by target id, and target ids are generation-scoped, so the
// state dies with the card: a later search's card never inherits it.
type TriggerState int

const (
	TriggerIdle TriggerState = iota
	TriggerPending
	TriggerRevealing
	TriggerRevealed
	TriggerError
)

// InvalidContentWarning is surfaced when a card has no usable body.
const InvalidContentWarning = "⚠️ 요약할 본문이 없습니다."

// DefaultRevealTick is the delay between revealed characters.
const DefaultRevealTick = 20 * time.Millisecond

// minContentLen is the shortest body worth sending to the summarizer.
const minContentLen = 10

// Summary runs the summarize-and-reveal flow, one invocation per
// trigger. The per-trigger state machine is the only concurrency
// guard: rapid repeated activation of the same trigger collapses into
// a single invocation.
type Summary struct {
	backend Backend
	adapter render.Adapter

	// Tick is the reveal animation period. Set before the first Run.
	Tick time.Duration

	mu     sync.Mutex
	states map[string]TriggerState
}

// NewSummary creates a summary pipeline writing through the adapter.
func NewSummary(backend Backend, adapter render.Adapter) *Summary {
	return &Summary{
		backend: backend,
		adapter: adapter,
		Tick:    DefaultRevealTick,
		states:  make(map[string]TriggerState),
	}
}

// State returns the current state of a trigger.
func (p *Summary) State(targetID string) TriggerState {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.states[targetID]
}

// Run executes one summarize invocation for the given trigger. The
// trigger guard and disable happen before any network work; everything
// after may be run concurrently with other invocations. The reveal
// animation is not cancelable: once started it ticks to completion,
// and writes after the target has left the document are inert.
func (p *Summary) Run(ctx context.Context, rawContent, targetID string) {
	if !p.begin(targetID) {
		return
	}
	p.adapter.DisableTrigger(targetID)

	if len([]rune(rawContent)) < minContentLen {
		// Known rough edge carried over from the page client: the
		// trigger stays disabled even though no request was made.
		p.adapter.Warn(InvalidContentWarning)
		p.setState(targetID, TriggerError)
		return
	}

	p.adapter.SetElementClass(targetID, render.SummaryBoxClass)
	p.adapter.SetPlaceholder(targetID, render.SummarizingText)

	resp, err := p.backend.Summarize(ctx, rawContent)
	if err != nil {
		p.adapter.SetPlaceholder(targetID, "❌ 요약 중 오류: "+err.Error())
		p.setState(targetID, TriggerError)
		return
	}
	if resp.Summary == "" {
		p.adapter.SetPlaceholder(targetID, render.SummaryFailedText)
		p.setState(targetID, TriggerError)
		return
	}

	p.setState(targetID, TriggerRevealing)
	p.reveal(targetID, resp.Summary)
	p.setState(targetID, TriggerRevealed)
}

// begin performs the one-way Idle→Pending transition.
func (p *Summary) begin(targetID string) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.states[targetID] != TriggerIdle {
		return false
	}
	p.states[targetID] = TriggerPending
	return true
}

func (p *Summary) setState(targetID string, s TriggerState) {
	p.mu.Lock()
	p.states[targetID] = s
	p.mu.Unlock()
}

// reveal appends the summary one character per tick, prefixed with a
// page marker. Each character is appended exactly once; characters
// addressed to a removed target are dropped silently.
func (p *Summary) reveal(targetID, text string) {
	p.adapter.SetPlaceholder(targetID, "📄 ")

	tick := p.Tick
	if tick <= 0 {
		tick = DefaultRevealTick
	}
	ticker := time.NewTicker(tick)
	defer ticker.Stop()

	for _, ch := range text {
		<-ticker.C
		if !p.adapter.HasElement(targetID) {
			continue
		}
		p.adapter.AppendChar(targetID, ch)
	}
}
