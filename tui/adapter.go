package tui

import (
	"sync"

	tea "github.com/charmbracelet/bubbletea"

	"newsdesk/render"
)

// Adapter wraps an in-memory document and wakes the tea program after
// every write so the view redraws mid-animation.
type Adapter struct {
	doc *render.Document

	mu      sync.Mutex
	program *tea.Program
}

// NewAdapter creates an adapter over a fresh document.
func NewAdapter() *Adapter {
	return &Adapter{doc: render.NewDocument()}
}

// Attach connects the tea program. Writes before Attach still land in
// the document, they just do not trigger a redraw.
func (a *Adapter) Attach(p *tea.Program) {
	a.mu.Lock()
	a.program = p
	a.mu.Unlock()
}

// Document exposes the backing document for the view to read.
func (a *Adapter) Document() *render.Document {
	return a.doc
}

func (a *Adapter) notify() {
	a.mu.Lock()
	p := a.program
	a.mu.Unlock()
	if p != nil {
		p.Send(RenderUpdateMsg{})
	}
}

func (a *Adapter) SetResultsRegion(markup string) {
	a.doc.SetResultsRegion(markup)
	a.notify()
}

func (a *Adapter) SetPlaceholder(id, text string) {
	a.doc.SetPlaceholder(id, text)
	a.notify()
}

func (a *Adapter) AppendChar(id string, ch rune) {
	a.doc.AppendChar(id, ch)
	a.notify()
}

func (a *Adapter) SetElementClass(id, class string) {
	a.doc.SetElementClass(id, class)
	a.notify()
}

func (a *Adapter) RegisterTrigger(id, rawContent string) {
	a.doc.RegisterTrigger(id, rawContent)
	a.notify()
}

func (a *Adapter) DisableTrigger(id string) {
	a.doc.DisableTrigger(id)
	a.notify()
}

func (a *Adapter) HasElement(id string) bool {
	return a.doc.HasElement(id)
}

func (a *Adapter) Warn(text string) {
	a.doc.Warn(text)
	a.notify()
}
