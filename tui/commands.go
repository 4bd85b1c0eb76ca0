package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"newsdesk/pipeline"
)

// RunSearch creates a command running one search invocation. The
// pipeline renders progress into the document itself; the returned
// message only clears the busy flag.
func RunSearch(search *pipeline.Search, query string) tea.Cmd {
	return func() tea.Msg {
		search.Run(context.Background(), query)
		return SearchDoneMsg{}
	}
}

// RunSummary creates a command running one summarize invocation,
// including the full reveal animation.
func RunSummary(summary *pipeline.Summary, rawContent, targetID string) tea.Cmd {
	return func() tea.Msg {
		summary.Run(context.Background(), rawContent, targetID)
		return SummaryDoneMsg{TargetID: targetID}
	}
}
