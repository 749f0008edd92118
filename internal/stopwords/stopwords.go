// Package stopwords holds the immutable set of words excluded from both
// indexing and query terms.
package stopwords

import (
	"github.com/gcbaptista/go-search-core/internal/errors"
	"github.com/gcbaptista/go-search-core/internal/tokenizer"
)

// Set is an immutable collection of stop words, safe for concurrent reads
// from multiple goroutines since it is never mutated after construction.
type Set struct {
	words map[string]struct{}
}

// New builds a Set from any collection of words. Empty strings are
// discarded. Construction fails with InvalidArgumentError if any surviving
// word contains a control byte.
func New(words []string) (*Set, error) {
	set := &Set{words: make(map[string]struct{}, len(words))}
	for _, w := range words {
		if w == "" {
			continue
		}
		if !tokenizer.IsValidWord(w) {
			return nil, errors.NewInvalidArgument("stop word", "contains a control byte")
		}
		set.words[w] = struct{}{}
	}
	return set, nil
}

// NewFromString builds a Set from a space-separated string of stop words,
// using the same splitting rule as document and query text.
func NewFromString(text string) (*Set, error) {
	return New(tokenizer.Split(text))
}

// Contains reports whether word is a stop word. A nil Set contains nothing.
func (s *Set) Contains(word string) bool {
	if s == nil {
		return false
	}
	_, ok := s.words[word]
	return ok
}

// Len reports the number of distinct stop words.
func (s *Set) Len() int {
	if s == nil {
		return 0
	}
	return len(s.words)
}
