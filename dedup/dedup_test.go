package dedup

import (
	"testing"

	"github.com/gcbaptista/go-search-core/index"
	"github.com/gcbaptista/go-search-core/internal/stopwords"
	"github.com/gcbaptista/go-search-core/model"
)

func newIndex(t *testing.T) *index.Index {
	t.Helper()
	stop, err := stopwords.NewFromString("")
	if err != nil {
		t.Fatalf("NewFromString: %v", err)
	}
	return index.New(stop)
}

func TestRemoveKeepsFirstOccurrence(t *testing.T) {
	idx := newIndex(t)
	mustAdd := func(id int, text string) {
		if err := idx.AddDocument(id, text, model.Actual, nil); err != nil {
			t.Fatalf("AddDocument(%d): %v", id, err)
		}
	}
	mustAdd(1, "cat dog")
	mustAdd(2, "dog cat") // same term set as 1, word order irrelevant
	mustAdd(3, "cat dog dog cat")
	mustAdd(4, "cat bird")

	removed := Remove(idx)
	if len(removed) != 2 {
		t.Fatalf("removed = %v, want 2 entries", removed)
	}
	for _, id := range removed {
		if id != 2 && id != 3 {
			t.Errorf("unexpected id removed: %d", id)
		}
	}

	remaining := idx.Documents()
	want := []int{1, 4}
	if len(remaining) != len(want) {
		t.Fatalf("Documents() = %v, want %v", remaining, want)
	}
	for i, id := range want {
		if remaining[i] != id {
			t.Errorf("Documents()[%d] = %d, want %d", i, remaining[i], id)
		}
	}
}

func TestRemoveNoOpWhenNoDuplicates(t *testing.T) {
	idx := newIndex(t)
	if err := idx.AddDocument(1, "cat", model.Actual, nil); err != nil {
		t.Fatalf("AddDocument: %v", err)
	}
	if err := idx.AddDocument(2, "dog", model.Actual, nil); err != nil {
		t.Fatalf("AddDocument: %v", err)
	}
	removed := Remove(idx)
	if len(removed) != 0 {
		t.Fatalf("expected no removals, got %v", removed)
	}
}

func TestRemoveEmptyIndex(t *testing.T) {
	idx := newIndex(t)
	removed := Remove(idx)
	if len(removed) != 0 {
		t.Fatalf("expected no removals on empty index, got %v", removed)
	}
}
