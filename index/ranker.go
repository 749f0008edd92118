package index

import (
	"math"
	"sort"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/gcbaptista/go-search-core/internal/concurrentmap"
	"github.com/gcbaptista/go-search-core/internal/query"
	"github.com/gcbaptista/go-search-core/model"
)

// resultCap is the fixed K of spec.md §4.6: FindTopDocuments never returns
// more than this many results.
const resultCap = 5

// parallelShards is the shard count ShardedMap uses while accumulating
// relevance during the parallel ranking path.
const parallelShards = 64

// Ranker computes TF-IDF relevance over an Index's postings. It is a thin,
// stateless wrapper — separated from Index the way the teacher keeps its
// BM25Calculator apart from the inverted index it reads — so the ranking
// algorithm reads as its own unit, independent of Index's mutation methods.
type Ranker struct {
	idx *Index
}

// NewRanker returns a Ranker over idx.
func NewRanker(idx *Index) *Ranker {
	return &Ranker{idx: idx}
}

// FindTopDocuments parses raw and returns up to resultCap documents
// satisfying predicate, ranked by TF-IDF relevance descending, ties broken
// by rating descending.
func (r *Ranker) FindTopDocuments(raw string, predicate model.Predicate) ([]model.Result, error) {
	r.idx.mu.RLock()
	defer r.idx.mu.RUnlock()
	start := time.Now()

	q, err := query.Parse(raw, r.idx.stop)
	if err != nil {
		return nil, err
	}

	rel := make(map[int]float64)
	totalDocs := len(r.idx.ids)

	for term := range q.Plus {
		docs, ok := r.idx.postings[term]
		if !ok {
			continue
		}
		idf := idfOf(totalDocs, len(docs))
		for id, tf := range docs {
			meta := r.idx.meta[id]
			if predicate(id, meta.status, meta.rating) {
				rel[id] += tf * idf
			}
		}
	}

	for term := range q.Minus {
		docs, ok := r.idx.postings[term]
		if !ok {
			continue
		}
		for id := range docs {
			delete(rel, id)
		}
	}

	results := r.materialize(rel)
	r.idx.metrics.QueryLatency.WithLabelValues("sequential").Observe(time.Since(start).Seconds())
	r.idx.metrics.QueryResultsCount.Observe(float64(len(results)))
	return results, nil
}

// FindTopDocumentsParallel computes the identical result set and ordering
// as FindTopDocuments, but accumulates relevance through a ShardedMap so
// distinct plus-terms (and distinct minus-terms) can be processed by
// concurrent workers without contending on a single lock.
func (r *Ranker) FindTopDocumentsParallel(raw string, predicate model.Predicate) ([]model.Result, error) {
	r.idx.mu.RLock()
	defer r.idx.mu.RUnlock()
	start := time.Now()

	q, err := query.Parse(raw, r.idx.stop)
	if err != nil {
		return nil, err
	}

	rel := concurrentmap.New[float64](parallelShards)
	totalDocs := len(r.idx.ids)

	plusTerms := make([]string, 0, len(q.Plus))
	for term := range q.Plus {
		plusTerms = append(plusTerms, term)
	}
	var g errgroup.Group
	for _, term := range plusTerms {
		term := term
		g.Go(func() error {
			docs, ok := r.idx.postings[term]
			if !ok {
				return nil
			}
			idf := idfOf(totalDocs, len(docs))
			for id, tf := range docs {
				meta := r.idx.meta[id]
				if predicate(id, meta.status, meta.rating) {
					h := rel.Access(id)
					h.Set(h.Value() + tf*idf)
					h.Release()
				}
			}
			return nil
		})
	}
	_ = g.Wait()

	minusTerms := make([]string, 0, len(q.Minus))
	for term := range q.Minus {
		minusTerms = append(minusTerms, term)
	}
	var mg errgroup.Group
	for _, term := range minusTerms {
		term := term
		mg.Go(func() error {
			docs, ok := r.idx.postings[term]
			if !ok {
				return nil
			}
			for id := range docs {
				rel.Erase(id)
			}
			return nil
		})
	}
	_ = mg.Wait()

	results := r.materialize(rel.BuildOrdinaryMap())
	r.idx.metrics.QueryLatency.WithLabelValues("parallel").Observe(time.Since(start).Seconds())
	r.idx.metrics.QueryResultsCount.Observe(float64(len(results)))
	return results, nil
}

// FindTopDocumentsByStatus is the convenience overload fixing predicate to
// "status(id) == target".
func (r *Ranker) FindTopDocumentsByStatus(raw string, target model.DocumentStatus) ([]model.Result, error) {
	return r.FindTopDocuments(raw, model.StatusPredicate(target))
}

// FindTopDocumentsByStatusParallel is FindTopDocumentsParallel fixed to
// "status(id) == target". The caller always supplies target; there is no
// default status.
func (r *Ranker) FindTopDocumentsByStatusParallel(raw string, target model.DocumentStatus) ([]model.Result, error) {
	return r.FindTopDocumentsParallel(raw, model.StatusPredicate(target))
}

func idfOf(totalDocs, docsWithTerm int) float64 {
	if docsWithTerm == 0 {
		return 0
	}
	return math.Log(float64(totalDocs) / float64(docsWithTerm))
}

// materialize converts a relevance map into a sorted, capped result slice.
// Caller must hold idx.mu for reading.
func (r *Ranker) materialize(rel map[int]float64) []model.Result {
	results := make([]model.Result, 0, len(rel))
	for id, relevance := range rel {
		results = append(results, model.Result{
			ID:        id,
			Relevance: relevance,
			Rating:    r.idx.meta[id].rating,
		})
	}

	sort.Slice(results, func(i, j int) bool {
		a, b := results[i], results[j]
		if math.Abs(a.Relevance-b.Relevance) < 1e-6 {
			if a.Rating != b.Rating {
				return a.Rating > b.Rating
			}
			// Final tiebreak on id: sort.Slice is not stable, and the
			// sequential and parallel paths hand this function unordered
			// Go maps, so without a total order here the two paths (and
			// repeated runs of the same path) could disagree on the order
			// of documents tied on both relevance and rating.
			return a.ID < b.ID
		}
		return a.Relevance > b.Relevance
	})

	if len(results) > resultCap {
		results = results[:resultCap]
	}
	return results
}
