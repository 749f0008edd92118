package present

import (
	"strings"
	"testing"

	"github.com/gcbaptista/go-search-core/model"
)

func TestFormatResult(t *testing.T) {
	got := FormatResult(model.Result{ID: 1, Relevance: 0.866434, Rating: 5})
	want := "{ document_id = 1, relevance = 0.866434, rating = 5 }"
	if got != want {
		t.Errorf("FormatResult() = %q, want %q", got, want)
	}
}

func TestFormatResults(t *testing.T) {
	got := FormatResults([]model.Result{
		{ID: 1, Relevance: 0.5, Rating: 2},
		{ID: 2, Relevance: 0.1, Rating: 1},
	})
	if strings.Count(got, "\n") != 1 {
		t.Fatalf("expected exactly one newline between two results, got %q", got)
	}
}

func TestFormatResultsEmpty(t *testing.T) {
	if got := FormatResults(nil); got != "" {
		t.Errorf("FormatResults(nil) = %q, want empty string", got)
	}
}

func TestFormatMatch(t *testing.T) {
	got := FormatMatch(7, []string{"cat", "dog"}, model.Actual)
	want := "{ document_id = 7, status = ACTUAL, words = cat dog }"
	if got != want {
		t.Errorf("FormatMatch() = %q, want %q", got, want)
	}
}

func TestFormatMatchNoWords(t *testing.T) {
	got := FormatMatch(7, nil, model.Banned)
	want := "{ document_id = 7, status = BANNED, words = }"
	if got != want {
		t.Errorf("FormatMatch() = %q, want %q", got, want)
	}
}
