package tui

import (
	"fmt"
	"strings"

	"github.com/JohannesKaufmann/html-to-markdown/v2/converter"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/base"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/commonmark"

	"newsdesk/render"
)

var mdConverter = converter.NewConverter(
	converter.WithPlugins(
		base.NewBasePlugin(),
		commonmark.NewCommonmarkPlugin(),
	),
)

// View implements tea.Model interface
func (m Model) View() string {
	var b strings.Builder
	doc := m.Adapter.Document()

	// Title
	b.WriteString(headerStyle.Render("📰 Newsdesk"))
	b.WriteString("\n\n")

	// Query input
	cursor := " "
	if m.Focus == FocusInput {
		cursor = "█"
	}
	b.WriteString(metaStyle.Render("질문: "))
	b.WriteString(m.Query + cursor)
	b.WriteString("\n\n")

	// Results region
	if results := doc.Results(); results != "" {
		b.WriteString(renderResults(results))
		b.WriteString("\n")
	}

	// Summary boxes, one per registered trigger
	ids := doc.TriggerIDs()
	for i, id := range ids {
		box := formatSummaryBox(doc, id)
		style := cardStyle
		if m.Focus == FocusResults && i == m.Selected {
			style = activeCardStyle
		}
		b.WriteString(style.Render(box))
		b.WriteString("\n")
	}

	// Warnings
	for _, w := range doc.Warnings() {
		b.WriteString(alertStyle.Render(w))
		b.WriteString("\n")
	}

	// Help text
	b.WriteString("\n")
	if m.Focus == FocusInput {
		b.WriteString(metaStyle.Render("Enter to search | Tab to switch to results | Ctrl+C to quit"))
	} else {
		b.WriteString(metaStyle.Render("j/k to select | 's' to summarize | Tab to edit query | 'q' to quit"))
	}
	b.WriteString("\n")

	return b.String()
}

// renderResults converts the rendered card markup to plain terminal
// text. Conversion failures fall back to the raw markup.
func renderResults(markup string) string {
	text, err := mdConverter.ConvertString(markup)
	if err != nil {
		return markup
	}
	return strings.TrimSpace(text) + "\n"
}

// formatSummaryBox shows one article's summary slot
func formatSummaryBox(doc *render.Document, id string) string {
	var b strings.Builder

	status := ""
	if doc.TriggerDisabled(id) {
		status = metaStyle.Render(" (요약 완료)")
	}
	b.WriteString(labelStyle.Render(id) + status)

	if text := doc.ElementText(id); text != "" {
		b.WriteString("\n\n")
		if text == render.SummaryFailedText {
			b.WriteString(alertStyle.Render(text))
		} else {
			b.WriteString(summaryStyle.Render(text))
		}
	} else {
		b.WriteString("\n\n")
		b.WriteString(metaStyle.Render(fmt.Sprintf("%d자 본문 대기 중", len([]rune(doc.TriggerContent(id))))))
	}

	return b.String()
}
