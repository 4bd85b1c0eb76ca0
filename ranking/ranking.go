// Package ranking orders search hits for presentation.
package ranking

import (
	"sort"

	"newsdesk/dates"
	"newsdesk/types"
)

// ByAccuracy returns the documents ordered by descending accuracy.
// The sort is stable: ties keep their original relative order. The
// input slice is not modified.
func ByAccuracy(docs []types.Document) []types.Document {
	out := make([]types.Document, len(docs))
	copy(out, docs)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Accuracy > out[j].Accuracy
	})
	return out
}

// ByDate returns the documents ordered newest-first by their sortable
// date key. Not used for the default presentation order, which is
// ByAccuracy; kept as the alternate chronological ordering.
func ByDate(docs []types.Document) []types.Document {
	out := make([]types.Document, len(docs))
	copy(out, docs)
	sort.SliceStable(out, func(i, j int) bool {
		return dates.SortableKey(out[i].Date) > dates.SortableKey(out[j].Date)
	})
	return out
}
