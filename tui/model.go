package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"newsdesk/client"
	"newsdesk/pipeline"
)

// Focus selects which part of the screen keyboard input goes to
type Focus string

const (
	FocusInput   Focus = "input"
	FocusResults Focus = "results"
)

// Model represents the TUI client state. The document itself lives in
// the adapter; the model only tracks input and selection.
type Model struct {
	Adapter *Adapter
	Search  *pipeline.Search
	Summary *pipeline.Summary

	Query     string
	Focus     Focus
	Selected  int
	Searching bool
}

// NewModel wires the pipelines to a backend client at serverURL.
func NewModel(serverURL string) Model {
	adapter := NewAdapter()
	backend := client.New(serverURL)
	return Model{
		Adapter: adapter,
		Search:  pipeline.NewSearch(backend, adapter),
		Summary: pipeline.NewSummary(backend, adapter),
		Focus:   FocusInput,
	}
}

// Init implements tea.Model interface
func (m Model) Init() tea.Cmd {
	return nil
}

// selectedTrigger returns the trigger id under the cursor, or "".
func (m Model) selectedTrigger() string {
	ids := m.Adapter.Document().TriggerIDs()
	if len(ids) == 0 {
		return ""
	}
	idx := m.Selected
	if idx < 0 {
		idx = 0
	}
	if idx >= len(ids) {
		idx = len(ids) - 1
	}
	return ids[idx]
}
