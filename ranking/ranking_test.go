package ranking

import (
	"testing"

	"newsdesk/types"
)

func TestByAccuracyOrdersDescending(t *testing.T) {
	docs := []types.Document{
		{Title: "low", Accuracy: 5},
		{Title: "high", Accuracy: 9},
		{Title: "mid", Accuracy: 7},
	}

	got := ByAccuracy(docs)

	want := []string{"high", "mid", "low"}
	for i, title := range want {
		if got[i].Title != title {
			t.Fatalf("position %d: got %q, want %q", i, got[i].Title, title)
		}
	}

	// input untouched
	if docs[0].Title != "low" {
		t.Fatalf("input slice was reordered")
	}
}

func TestByAccuracyStableOnTies(t *testing.T) {
	docs := []types.Document{
		{Title: "first", Accuracy: 7},
		{Title: "second", Accuracy: 7},
		{Title: "third", Accuracy: 7},
	}

	got := ByAccuracy(docs)

	for i, title := range []string{"first", "second", "third"} {
		if got[i].Title != title {
			t.Fatalf("tie order changed at %d: got %q, want %q", i, got[i].Title, title)
		}
	}
}

func TestByDateOrdersNewestFirst(t *testing.T) {
	docs := []types.Document{
		{Title: "old", Date: "2023-01-15"},
		{Title: "new", Date: "2025-05-03"},
		{Title: "unparseable", Date: "날짜 미상"},
	}

	got := ByDate(docs)

	if got[0].Title != "new" || got[1].Title != "old" || got[2].Title != "unparseable" {
		t.Fatalf("unexpected order: %q, %q, %q", got[0].Title, got[1].Title, got[2].Title)
	}
}
