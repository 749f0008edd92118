// Package requestqueue wraps a Ranker with a rolling window over the last
// day's worth of requests, tracking how many of them returned no results.
package requestqueue

import (
	"container/list"

	"github.com/gcbaptista/go-search-core/index"
	"github.com/gcbaptista/go-search-core/model"
)

// windowSize is the number of requests retained, one per simulated minute
// in a day (1440 minutes), mirroring the original coursework's fixed deque
// capacity.
const windowSize = 1440

// RequestQueue remembers, over its rolling window, how many FindTopDocuments
// calls returned zero results.
type RequestQueue struct {
	ranker           *index.Ranker
	requests         *list.List // holds bool: true if the request was empty
	noResultRequests int
}

// New wraps ranker in a RequestQueue with an empty window.
func New(ranker *index.Ranker) *RequestQueue {
	return &RequestQueue{
		ranker:   ranker,
		requests: list.New(),
	}
}

// AddFindRequest runs FindTopDocuments through the wrapped Ranker, records
// whether it was empty, and evicts the oldest request once the window
// exceeds its capacity.
func (q *RequestQueue) AddFindRequest(raw string, predicate model.Predicate) ([]model.Result, error) {
	found, err := q.ranker.FindTopDocuments(raw, predicate)
	if err != nil {
		return nil, err
	}
	q.record(len(found) == 0)
	return found, nil
}

// AddFindRequestByStatus is AddFindRequest fixed to a status predicate.
func (q *RequestQueue) AddFindRequestByStatus(raw string, status model.DocumentStatus) ([]model.Result, error) {
	return q.AddFindRequest(raw, model.StatusPredicate(status))
}

func (q *RequestQueue) record(empty bool) {
	q.requests.PushBack(empty)
	if empty {
		q.noResultRequests++
	}
	if q.requests.Len() > windowSize {
		front := q.requests.Front()
		if front.Value.(bool) {
			q.noResultRequests--
		}
		q.requests.Remove(front)
	}
}

// GetNoResultRequests returns how many requests in the current window
// returned no results.
func (q *RequestQueue) GetNoResultRequests() int {
	return q.noResultRequests
}
