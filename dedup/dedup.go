// Package dedup scrubs an Index of documents that share an identical
// term-set signature, keeping the first (lowest id) occurrence of each.
package dedup

import (
	"log"
	"sort"
	"strings"

	"github.com/gcbaptista/go-search-core/index"
)

// Remove walks idx's live documents in ascending id order, builds each
// document's term-set signature from GetWordFrequencies (term frequency
// itself is ignored — only which terms appear matters), and removes every
// document whose signature was already seen, keeping the lowest id.
// Returns the ids removed, in the order they were removed.
func Remove(idx *index.Index) []int {
	seen := make(map[string]int) // signature -> id kept
	var removed []int

	for _, id := range idx.Documents() {
		sig := signature(idx, id)
		if _, ok := seen[sig]; ok {
			idx.RemoveDocument(id)
			removed = append(removed, id)
			log.Printf("dedup: removed duplicate document id %d", id)
			continue
		}
		seen[sig] = id
	}

	return removed
}

func signature(idx *index.Index, id int) string {
	freqs := idx.GetWordFrequencies(id)
	terms := make([]string, 0, len(freqs))
	for term := range freqs {
		terms = append(terms, term)
	}
	sort.Strings(terms)
	return strings.Join(terms, "\x00")
}
