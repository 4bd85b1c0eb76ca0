package llm

import (
	"regexp"
	"strings"
)

var (
	htmlTagRe      = regexp.MustCompile(`<[^>]+>`)
	questionEchoRe = regexp.MustCompile(`(?i)질문\s*:.*`)
	escapeCharRe   = regexp.MustCompile(`[\\\n\r\t]`)
	whitespaceRe   = regexp.MustCompile(`\s+`)
	parentheticRe  = regexp.MustCompile(`\([^)]{0,30}\)`)
	bulletRe       = regexp.MustCompile(`[•★☆▶▲▼→※]`)
	controlCharRe  = regexp.MustCompile(`[\r\n\t]`)
)

// CleanKeywords turns a raw model completion into a keyword list:
// first line only, question echoes and HTML stripped, whitespace
// collapsed, comma-separated, empties dropped.
func CleanKeywords(raw string) []string {
	firstLine := strings.TrimSpace(raw)
	if i := strings.IndexByte(firstLine, '\n'); i >= 0 {
		firstLine = firstLine[:i]
	}

	cleaned := questionEchoRe.ReplaceAllString(firstLine, "")
	cleaned = htmlTagRe.ReplaceAllString(cleaned, "")
	cleaned = escapeCharRe.ReplaceAllString(cleaned, " ")
	cleaned = strings.TrimSpace(whitespaceRe.ReplaceAllString(cleaned, " "))

	var keywords []string
	for _, kw := range strings.Split(cleaned, ",") {
		if kw = strings.TrimSpace(kw); kw != "" {
			keywords = append(keywords, kw)
		}
	}
	return keywords
}

// CleanSentences flattens a model summary into one whitespace-normal
// line with HTML tags removed, preserving the wording.
func CleanSentences(text string) string {
	text = htmlTagRe.ReplaceAllString(text, "")
	text = controlCharRe.ReplaceAllString(text, " ")
	return strings.TrimSpace(whitespaceRe.ReplaceAllString(text, " "))
}

// CleanArticleText normalizes an article body before prompting:
// newlines flattened, curly quotes straightened, short parentheticals
// and decoration glyphs removed, whitespace collapsed.
func CleanArticleText(text string) string {
	text = strings.NewReplacer(
		"\n", " ", "\r", " ",
		"“", `"`, "”", `"`,
		"‘", "'", "’", "'",
	).Replace(text)
	text = parentheticRe.ReplaceAllString(text, "")
	text = bulletRe.ReplaceAllString(text, "")
	return strings.TrimSpace(whitespaceRe.ReplaceAllString(text, " "))
}
