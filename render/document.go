package render

import (
	"sort"
	"sync"
)

// Document is an in-memory Adapter: a flat element store standing in
// for a real page. It backs the pipeline tests and any headless use of
// the pipelines. All methods are safe for concurrent use.
type Document struct {
	mu       sync.Mutex
	results  string
	elements map[string]string
	classes  map[string]string
	triggers map[string]string
	disabled map[string]bool
	warnings []string
}

// NewDocument returns an empty document.
func NewDocument() *Document {
	return &Document{
		elements: make(map[string]string),
		classes:  make(map[string]string),
		triggers: make(map[string]string),
		disabled: make(map[string]bool),
	}
}

// SetResultsRegion replaces the result list and drops every per-card
// element it previously contained. Writes addressed to the dropped
// elements become inert from here on.
func (d *Document) SetResultsRegion(markup string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.results = markup
	d.elements = make(map[string]string)
	d.classes = make(map[string]string)
	d.triggers = make(map[string]string)
	d.disabled = make(map[string]bool)
}

func (d *Document) SetPlaceholder(id, text string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.elements[id] = text
}

func (d *Document) AppendChar(id string, ch rune) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if _, ok := d.elements[id]; !ok {
		return
	}
	d.elements[id] += string(ch)
}

func (d *Document) SetElementClass(id, class string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.classes[id] = class
}

func (d *Document) RegisterTrigger(id, rawContent string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.triggers[id] = rawContent
}

func (d *Document) DisableTrigger(id string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.disabled[id] = true
}

func (d *Document) HasElement(id string) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	_, ok := d.elements[id]
	return ok
}

func (d *Document) Warn(text string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.warnings = append(d.warnings, text)
}

// Results returns the current result-list markup.
func (d *Document) Results() string {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.results
}

// ElementText returns the text of a per-card element.
func (d *Document) ElementText(id string) string {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.elements[id]
}

// ElementClass returns the style class of a per-card element.
func (d *Document) ElementClass(id string) string {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.classes[id]
}

// TriggerContent returns the raw content bound to a trigger.
func (d *Document) TriggerContent(id string) string {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.triggers[id]
}

// TriggerDisabled reports whether a trigger has been disabled.
func (d *Document) TriggerDisabled(id string) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.disabled[id]
}

// TriggerIDs returns the registered trigger ids in sorted order.
func (d *Document) TriggerIDs() []string {
	d.mu.Lock()
	defer d.mu.Unlock()
	ids := make([]string, 0, len(d.triggers))
	for id := range d.triggers {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Warnings returns every warning surfaced so far.
func (d *Document) Warnings() []string {
	d.mu.Lock()
	defer d.mu.Unlock()
	out := make([]string, len(d.warnings))
	copy(out, d.warnings)
	return out
}
