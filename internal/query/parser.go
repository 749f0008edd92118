// Package query parses a raw search string into plus- and minus-term sets.
package query

import (
	"strings"

	"github.com/gcbaptista/go-search-core/internal/errors"
	"github.com/gcbaptista/go-search-core/internal/stopwords"
	"github.com/gcbaptista/go-search-core/internal/tokenizer"
)

// Query is the result of parsing a raw query string: two unordered sets of
// distinct terms, stop words already removed.
type Query struct {
	Plus  map[string]struct{}
	Minus map[string]struct{}
}

// Parse splits raw with the tokenizer, classifies each non-empty slice as a
// plus-term, a minus-term or a stop word, and collapses duplicates. It
// rejects a malformed term (trailing "-", bare "-", "--", or a control byte)
// with an InvalidArgumentError.
func Parse(raw string, stop *stopwords.Set) (Query, error) {
	q := Query{Plus: map[string]struct{}{}, Minus: map[string]struct{}{}}

	for _, token := range tokenizer.Split(raw) {
		if token == "" {
			continue
		}

		word := token
		isMinus := false
		if strings.HasPrefix(word, "-") {
			isMinus = true
			word = word[1:]
		}

		if word == "" {
			return Query{}, errors.NewInvalidArgument("query term", "empty term after '-'")
		}
		if strings.HasPrefix(word, "-") {
			return Query{}, errors.NewInvalidArgument("query term", "more than one '-' before a term")
		}
		if !tokenizer.IsValidWord(word) {
			return Query{}, errors.NewInvalidArgument("query term", "contains a control byte")
		}

		if stop.Contains(word) {
			continue
		}
		if isMinus {
			q.Minus[word] = struct{}{}
		} else {
			q.Plus[word] = struct{}{}
		}
	}

	return q, nil
}
