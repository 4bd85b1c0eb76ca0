// Package render defines the narrow document surface the pipelines
// write through, plus the result-list markup they assemble. Pipelines
// receive an Adapter by parameter and never touch a concrete UI.
package render

// Adapter is the capability set a host UI exposes to the pipelines.
// Implementations must tolerate writes to elements that no longer
// exist; such writes are silently inert.
type Adapter interface {
	// SetResultsRegion replaces the shared result-list region.
	// Concurrent searches race last-write-wins on this region.
	SetResultsRegion(markup string)
	// SetPlaceholder replaces the text of a per-card element,
	// creating it if needed.
	SetPlaceholder(id, text string)
	// AppendChar appends one character to a per-card element.
	// A no-op if the element has been removed.
	AppendChar(id string, ch rune)
	// SetElementClass sets the style class of a per-card element.
	SetElementClass(id, class string)
	// RegisterTrigger binds a dormant summarize trigger to its target
	// element id and the raw article content it will summarize.
	RegisterTrigger(id, rawContent string)
	// DisableTrigger permanently disables a summarize trigger and
	// marks it visually (dimmed, blocked cursor).
	DisableTrigger(id string)
	// HasElement reports whether the element is still in the document.
	HasElement(id string) bool
	// Warn surfaces a blocking warning to the user.
	Warn(text string)
}
