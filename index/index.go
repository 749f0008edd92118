// Package index implements the inverted index and its query-facing
// operations: AddDocument, RemoveDocument, MatchDocument and (in
// ranker.go) FindTopDocuments.
//
// The index holds three cross-linked maps — postings (term -> doc -> tf),
// forward (doc -> term -> tf) and metadata (doc -> rating/status/text) —
// plus the sorted set of live document ids. All three maps and the id set
// are kept mutually consistent by every exported mutator; see the package
// tests for the invariants they preserve.
package index

import (
	"sort"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/gcbaptista/go-search-core/internal/errors"
	"github.com/gcbaptista/go-search-core/internal/metrics"
	"github.com/gcbaptista/go-search-core/internal/query"
	"github.com/gcbaptista/go-search-core/internal/stopwords"
	"github.com/gcbaptista/go-search-core/internal/tokenizer"
	"github.com/gcbaptista/go-search-core/model"
)

// docMeta is the metadata stored per live document. text backs every term
// slice this document contributed to postings/forward: once a document's
// entries are purged from those maps, text (and this struct) can be
// dropped safely.
type docMeta struct {
	rating int
	status model.DocumentStatus
	text   string
}

// Index is the stateful core of the engine. The zero value is not usable;
// construct with New.
type Index struct {
	mu sync.RWMutex

	postings map[string]map[int]float64 // term -> doc id -> term frequency
	forward  map[int]map[string]float64 // doc id -> term -> term frequency
	meta     map[int]docMeta            // doc id -> metadata
	ids      []int                      // live doc ids, kept sorted ascending
	stop     *stopwords.Set
	metrics  *metrics.Collector
}

// New constructs an empty Index using stop as its stop-word set. A nil stop
// set is equivalent to an empty one. Every Index carries its own private
// metrics.Collector, reachable through Metrics, the way the teacher's job
// Manager always constructs its own JobMetrics rather than taking one
// optionally.
func New(stop *stopwords.Set) *Index {
	return &Index{
		postings: make(map[string]map[int]float64),
		forward:  make(map[int]map[string]float64),
		meta:     make(map[int]docMeta),
		stop:     stop,
		metrics:  metrics.New(),
	}
}

// Metrics returns the Index's private metrics.Collector, for callers that
// want to Gather() it (e.g. to fold into a batch.Dispatcher or log it
// periodically).
func (idx *Index) Metrics() *metrics.Collector {
	return idx.metrics
}

// AddDocument indexes text under id with the given status and rating
// vector. id must be non-negative and not already present. text is
// rejected if, after stop-word removal, any remaining word contains a
// control byte, or if no indexable (non-stop) tokens remain — see
// SPEC_FULL.md's Open Question resolution for the latter. Both checks run
// before any state is mutated, so a rejected AddDocument never leaves
// partial state.
func (idx *Index) AddDocument(id int, text string, status model.DocumentStatus, ratings []int) error {
	idx.mu.Lock()
	defer idx.mu.Unlock()

	if id < 0 {
		return errors.NewInvalidArgument("document id", "must be non-negative")
	}
	if _, exists := idx.meta[id]; exists {
		return errors.NewInvalidArgument("document id", "already present")
	}

	tokens := tokenizer.Split(text)
	nonStop := make([]string, 0, len(tokens))
	for _, w := range tokens {
		if w == "" || idx.stop.Contains(w) {
			continue
		}
		if !tokenizer.IsValidWord(w) {
			return errors.NewInvalidArgument("document text", "contains a control byte")
		}
		nonStop = append(nonStop, w)
	}
	if len(nonStop) == 0 {
		return errors.NewInvalidArgument("document text", "has no indexable terms after stop-word removal")
	}

	idx.meta[id] = docMeta{
		rating: averageRating(ratings),
		status: status,
		text:   text,
	}

	inv := 1.0 / float64(len(nonStop))
	fwd := make(map[string]float64, len(nonStop))
	for _, w := range nonStop {
		if idx.postings[w] == nil {
			idx.postings[w] = make(map[int]float64)
		}
		idx.postings[w][id] += inv
		fwd[w] += inv
	}
	idx.forward[id] = fwd

	i := sort.SearchInts(idx.ids, id)
	idx.ids = append(idx.ids, 0)
	copy(idx.ids[i+1:], idx.ids[i:])
	idx.ids[i] = id

	idx.metrics.DocumentsIndexedTotal.Inc()
	idx.metrics.DocumentCount.Set(float64(len(idx.ids)))

	return nil
}

func averageRating(ratings []int) int {
	if len(ratings) == 0 {
		return 0
	}
	sum := 0
	for _, r := range ratings {
		sum += r
	}
	return sum / len(ratings)
}

// RemoveDocument removes id from the index. Removing an unknown id is a
// silent no-op, never an error.
func (idx *Index) RemoveDocument(id int) {
	idx.mu.Lock()
	defer idx.mu.Unlock()
	idx.removeLocked(id, false)
}

// RemoveDocumentParallel behaves exactly like RemoveDocument, but
// distributes the postings cleanup for id's terms across workers — each
// worker clears a distinct term's postings entry, so no two writes touch
// the same cell. Equivalent result, same contract.
func (idx *Index) RemoveDocumentParallel(id int) {
	idx.mu.Lock()
	defer idx.mu.Unlock()
	idx.removeLocked(id, true)
}

func (idx *Index) removeLocked(id int, parallel bool) {
	fwd, exists := idx.forward[id]
	if !exists {
		return
	}

	terms := make([]string, 0, len(fwd))
	for term := range fwd {
		terms = append(terms, term)
	}

	// clearPosting deletes id from term's inner map only — the inner maps
	// are distinct per term, so concurrent goroutines each touching a
	// different one never race. The outer idx.postings map itself is never
	// written here; emptied terms are reported back and pruned from it
	// sequentially below, since a concurrent delete on that shared map
	// would race with other goroutines' reads/writes of it.
	clearPosting := func(term string) bool {
		docs := idx.postings[term]
		delete(docs, id)
		return len(docs) == 0
	}

	var emptied []string
	if parallel && len(terms) > 1 {
		var mu sync.Mutex
		var g errgroup.Group
		for _, term := range terms {
			term := term
			g.Go(func() error {
				if clearPosting(term) {
					mu.Lock()
					emptied = append(emptied, term)
					mu.Unlock()
				}
				return nil
			})
		}
		_ = g.Wait()
	} else {
		for _, term := range terms {
			if clearPosting(term) {
				emptied = append(emptied, term)
			}
		}
	}
	for _, term := range emptied {
		delete(idx.postings, term)
	}

	delete(idx.forward, id)
	if i := sort.SearchInts(idx.ids, id); i < len(idx.ids) && idx.ids[i] == id {
		idx.ids = append(idx.ids[:i], idx.ids[i+1:]...)
	}
	delete(idx.meta, id)

	idx.metrics.DocumentsRemovedTotal.Inc()
	idx.metrics.DocumentCount.Set(float64(len(idx.ids)))
}

// MatchDocument parses raw and checks it against id: if any minus-term
// matches id, the result is empty; otherwise it is every plus-term from
// the query that id contains, in iteration order over the parsed plus
// set, paired with id's status. Returns an error only if raw is malformed;
// an unknown id yields a zero-value status and no matched terms.
func (idx *Index) MatchDocument(raw string, id int) ([]string, model.DocumentStatus, error) {
	idx.mu.RLock()
	defer idx.mu.RUnlock()
	return idx.matchLocked(raw, id, false)
}

// MatchDocumentParallel behaves like MatchDocument, but checks minus-terms
// and collects plus-terms concurrently across terms. The minus-term
// short-circuit still applies; plus-term output order is unspecified.
func (idx *Index) MatchDocumentParallel(raw string, id int) ([]string, model.DocumentStatus, error) {
	idx.mu.RLock()
	defer idx.mu.RUnlock()
	return idx.matchLocked(raw, id, true)
}

func (idx *Index) matchLocked(raw string, id int, parallel bool) ([]string, model.DocumentStatus, error) {
	q, err := query.Parse(raw, idx.stop)
	if err != nil {
		return nil, 0, err
	}
	status := idx.meta[id].status

	contains := func(term string) bool {
		docs, ok := idx.postings[term]
		if !ok {
			return false
		}
		_, ok = docs[id]
		return ok
	}

	if parallel {
		minusTerms := make([]string, 0, len(q.Minus))
		for term := range q.Minus {
			minusTerms = append(minusTerms, term)
		}
		var mu sync.Mutex
		matched := false
		var g errgroup.Group
		for _, term := range minusTerms {
			term := term
			g.Go(func() error {
				if contains(term) {
					mu.Lock()
					matched = true
					mu.Unlock()
				}
				return nil
			})
		}
		_ = g.Wait()
		if matched {
			return nil, status, nil
		}

		plusTerms := make([]string, 0, len(q.Plus))
		for term := range q.Plus {
			plusTerms = append(plusTerms, term)
		}
		var resMu sync.Mutex
		var result []string
		var pg errgroup.Group
		for _, term := range plusTerms {
			term := term
			pg.Go(func() error {
				if contains(term) {
					resMu.Lock()
					result = append(result, term)
					resMu.Unlock()
				}
				return nil
			})
		}
		_ = pg.Wait()
		return result, status, nil
	}

	for term := range q.Minus {
		if contains(term) {
			return nil, status, nil
		}
	}
	var result []string
	for term := range q.Plus {
		if contains(term) {
			result = append(result, term)
		}
	}
	return result, status, nil
}

// Documents returns a snapshot of the ascending set of live document ids.
func (idx *Index) Documents() []int {
	idx.mu.RLock()
	defer idx.mu.RUnlock()
	out := make([]int, len(idx.ids))
	copy(out, idx.ids)
	return out
}

// GetWordFrequencies returns a copy of id's forward-index entry, or an
// empty map if id is unknown.
func (idx *Index) GetWordFrequencies(id int) map[string]float64 {
	idx.mu.RLock()
	defer idx.mu.RUnlock()
	fwd, ok := idx.forward[id]
	if !ok {
		return map[string]float64{}
	}
	out := make(map[string]float64, len(fwd))
	for term, tf := range fwd {
		out[term] = tf
	}
	return out
}

// GetDocumentCount returns the number of currently live documents.
func (idx *Index) GetDocumentCount() int {
	idx.mu.RLock()
	defer idx.mu.RUnlock()
	return len(idx.ids)
}
