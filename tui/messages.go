package tui

// Messages for the tea program

// RenderUpdateMsg is sent by the adapter after every document write
type RenderUpdateMsg struct{}

// SearchDoneMsg is sent when a search invocation has finished rendering
type SearchDoneMsg struct{}

// SummaryDoneMsg is sent when a summarize invocation has finished
type SummaryDoneMsg struct {
	TargetID string
}
