// Package batch dispatches many independent queries against a Ranker
// concurrently, one goroutine per query, the same parallel structure the
// original coursework expressed with std::execution::par over ProcessQueries.
package batch

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/gcbaptista/go-search-core/index"
	"github.com/gcbaptista/go-search-core/internal/metrics"
	"github.com/gcbaptista/go-search-core/model"
)

// Dispatcher runs batches of queries against a single Ranker, tagging each
// batch with a UUID and recording its duration and query count through
// metrics.
type Dispatcher struct {
	ranker  *index.Ranker
	metrics *metrics.Collector
}

// New constructs a Dispatcher. collector may be nil, in which case no
// metrics are recorded.
func New(ranker *index.Ranker, collector *metrics.Collector) *Dispatcher {
	return &Dispatcher{ranker: ranker, metrics: collector}
}

// Batch is the outcome of dispatching one batch of queries: a generated id
// and the per-query result slices, in the same order as the input queries.
type Batch struct {
	ID      uuid.UUID
	Results [][]model.Result
}

// Process runs every query in queries concurrently against the same
// status, preserving input order in the returned Batch.Results. If ctx is
// canceled or any query fails to parse, Process returns the first error
// encountered and no partial Batch.
func (d *Dispatcher) Process(ctx context.Context, queries []string, status model.DocumentStatus) (Batch, error) {
	start := d.now()
	batch := Batch{
		ID:      uuid.New(),
		Results: make([][]model.Result, len(queries)),
	}

	g, ctx := errgroup.WithContext(ctx)
	for i, q := range queries {
		i, q := i, q
		g.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}
			results, err := d.ranker.FindTopDocumentsByStatus(q, status)
			if err != nil {
				log.Printf("batch %s: query %d (%q) failed: %v", batch.ID, i, q, err)
				return err
			}
			batch.Results[i] = results
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Batch{}, err
	}

	d.record(len(queries), start)
	return batch, nil
}

// ProcessJoined is Process, flattened into a single slice the way
// ProcessQueriesJoined concatenates ProcessQueries' per-query results.
func (d *Dispatcher) ProcessJoined(ctx context.Context, queries []string, status model.DocumentStatus) ([]model.Result, uuid.UUID, error) {
	batch, err := d.Process(ctx, queries, status)
	if err != nil {
		return nil, uuid.Nil, err
	}
	var joined []model.Result
	for _, results := range batch.Results {
		joined = append(joined, results...)
	}
	return joined, batch.ID, nil
}

func (d *Dispatcher) now() time.Time {
	return time.Now()
}

func (d *Dispatcher) record(queryCount int, start time.Time) {
	if d.metrics == nil {
		return
	}
	d.metrics.BatchDuration.Observe(time.Since(start).Seconds())
	for i := 0; i < queryCount; i++ {
		d.metrics.BatchQueriesTotal.Inc()
	}
}
