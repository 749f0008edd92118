package batch

import (
	"context"
	"testing"

	"github.com/gcbaptista/go-search-core/index"
	"github.com/gcbaptista/go-search-core/internal/metrics"
	"github.com/gcbaptista/go-search-core/internal/stopwords"
	"github.com/gcbaptista/go-search-core/model"
)

func newTestRanker(t *testing.T) *index.Ranker {
	t.Helper()
	stop, err := stopwords.NewFromString("")
	if err != nil {
		t.Fatalf("NewFromString: %v", err)
	}
	idx := index.New(stop)
	mustAdd := func(id int, text string) {
		if err := idx.AddDocument(id, text, model.Actual, nil); err != nil {
			t.Fatalf("AddDocument(%d): %v", id, err)
		}
	}
	mustAdd(1, "cat dog")
	mustAdd(2, "dog bird")
	mustAdd(3, "bird fish")
	return index.NewRanker(idx)
}

func TestProcessPreservesInputOrder(t *testing.T) {
	d := New(newTestRanker(t), nil)
	batch, err := d.Process(context.Background(), []string{"cat", "bird", "fish"}, model.Actual)
	if err != nil {
		t.Fatalf("Process: %v", err)
	}
	if batch.ID.String() == "" {
		t.Fatal("expected a non-empty batch id")
	}
	if len(batch.Results) != 3 {
		t.Fatalf("Results len = %d, want 3", len(batch.Results))
	}
	if len(batch.Results[0]) != 1 || batch.Results[0][0].ID != 1 {
		t.Errorf("Results[0] = %+v, want doc 1", batch.Results[0])
	}
	if len(batch.Results[1]) != 2 || batch.Results[1][0].ID != 2 || batch.Results[1][1].ID != 3 {
		t.Errorf("Results[1] = %+v, want docs 2 and 3", batch.Results[1])
	}
	if len(batch.Results[2]) != 1 || batch.Results[2][0].ID != 3 {
		t.Errorf("Results[2] = %+v, want doc 3", batch.Results[2])
	}
}

func TestProcessJoinedFlattens(t *testing.T) {
	d := New(newTestRanker(t), nil)
	joined, id, err := d.ProcessJoined(context.Background(), []string{"cat", "bird"}, model.Actual)
	if err != nil {
		t.Fatalf("ProcessJoined: %v", err)
	}
	if id.String() == "" {
		t.Fatal("expected a non-empty batch id")
	}
	if len(joined) != 3 {
		t.Fatalf("joined = %+v, want 3 entries total", joined)
	}
}

func TestProcessPropagatesParseError(t *testing.T) {
	d := New(newTestRanker(t), nil)
	_, err := d.Process(context.Background(), []string{"cat", "--dog"}, model.Actual)
	if err == nil {
		t.Fatal("expected parse error to propagate")
	}
}

func TestProcessRecordsMetrics(t *testing.T) {
	collector := metrics.New()
	d := New(newTestRanker(t), collector)
	if _, err := d.Process(context.Background(), []string{"cat", "bird"}, model.Actual); err != nil {
		t.Fatalf("Process: %v", err)
	}
	families, err := collector.Gather()
	if err != nil {
		t.Fatalf("Gather: %v", err)
	}
	found := false
	for _, f := range families {
		if f.GetName() == "search_batch_queries_total" {
			for _, m := range f.GetMetric() {
				if m.GetCounter().GetValue() == 2 {
					found = true
				}
			}
		}
	}
	if !found {
		t.Fatal("expected search_batch_queries_total to record 2 queries")
	}
}
