package tui

import (
	tea "github.com/charmbracelet/bubbletea"
)

// Update implements tea.Model interface
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyPress(msg)
	case RenderUpdateMsg:
		// The document changed underneath us; redraw.
		return m, nil
	case SearchDoneMsg:
		m.Searching = false
		m.Selected = 0
		return m, nil
	case SummaryDoneMsg:
		return m, nil
	}
	return m, nil
}

// handleKeyPress processes keyboard input
func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "tab":
		if m.Focus == FocusInput {
			m.Focus = FocusResults
		} else {
			m.Focus = FocusInput
		}
		return m, nil
	}

	if m.Focus == FocusInput {
		return m.handleInputKey(msg)
	}
	return m.handleResultsKey(msg)
}

func (m Model) handleInputKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEnter:
		if m.Query == "" || m.Searching {
			return m, nil
		}
		m.Searching = true
		return m, RunSearch(m.Search, m.Query)
	case tea.KeyBackspace:
		if len(m.Query) > 0 {
			runes := []rune(m.Query)
			m.Query = string(runes[:len(runes)-1])
		}
		return m, nil
	case tea.KeySpace:
		m.Query += " "
		return m, nil
	case tea.KeyRunes:
		m.Query += string(msg.Runes)
		return m, nil
	}
	return m, nil
}

func (m Model) handleResultsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	doc := m.Adapter.Document()
	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "j", "down":
		if m.Selected < len(doc.TriggerIDs())-1 {
			m.Selected++
		}
		return m, nil
	case "k", "up":
		if m.Selected > 0 {
			m.Selected--
		}
		return m, nil
	case "s", "enter":
		id := m.selectedTrigger()
		if id == "" || doc.TriggerDisabled(id) {
			return m, nil
		}
		return m, RunSummary(m.Summary, doc.TriggerContent(id), id)
	}
	return m, nil
}
