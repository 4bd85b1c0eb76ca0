package tui

import "github.com/charmbracelet/lipgloss"

// Palette: ink blue for chrome, green for revealed text, gray for
// metadata.
const (
	colorHeader     = "#3B82C4"
	colorSummary    = "#3FA36B"
	colorAlert      = "#D64545"
	colorMeta       = "#8A8A8A"
	colorLabelFg    = "#F2F6FA"
	colorLabelBg    = "#1F4E79"
	colorCardBorder = "#5C7FA3"
)

var (
	headerStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(colorHeader)).
		MarginTop(1).
		MarginBottom(1)

	summaryStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(colorSummary))

	alertStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(colorAlert))

	metaStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(colorMeta))

	cardStyle = lipgloss.NewStyle().
		Border(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color(colorCardBorder)).
		Padding(0, 2)

	activeCardStyle = lipgloss.NewStyle().
		Border(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color(colorSummary)).
		Padding(0, 2)

	labelStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(colorLabelFg)).
		Background(lipgloss.Color(colorLabelBg)).
		Padding(0, 1)
)
