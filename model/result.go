package model

// Result is a single ranked hit returned by FindTopDocuments.
type Result struct {
	ID        int
	Relevance float64
	Rating    int
}

// Predicate decides whether a document qualifies for a FindTopDocuments call.
type Predicate func(id int, status DocumentStatus, rating int) bool

// StatusPredicate returns a Predicate that admits documents with exactly the
// given status, the convenience overload spec.md §4.6 describes.
func StatusPredicate(target DocumentStatus) Predicate {
	return func(_ int, status DocumentStatus, _ int) bool {
		return status == target
	}
}
