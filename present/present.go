// Package present formats search results and match outcomes as strings.
// It performs no I/O itself — the original coursework's PrintMatchDocumentResult
// and Document::operator<< wrote straight to std::cout; here formatting is
// separated from writing so a caller decides where the text goes.
package present

import (
	"fmt"
	"strings"

	"github.com/gcbaptista/go-search-core/model"
)

// FormatResult renders a single Result the way the original coursework's
// Document stream operator did: "{ document_id = N, relevance = R, rating = T }".
func FormatResult(r model.Result) string {
	return fmt.Sprintf("{ document_id = %d, relevance = %g, rating = %d }", r.ID, r.Relevance, r.Rating)
}

// FormatResults renders each Result on its own line, in order.
func FormatResults(results []model.Result) string {
	lines := make([]string, len(results))
	for i, r := range results {
		lines[i] = FormatResult(r)
	}
	return strings.Join(lines, "\n")
}

// FormatMatch renders a MatchDocument outcome the way PrintMatchDocumentResult
// did: "{ document_id = N, status = S, words = w1 w2 ... }".
func FormatMatch(id int, words []string, status model.DocumentStatus) string {
	var b strings.Builder
	fmt.Fprintf(&b, "{ document_id = %d, status = %s, words =", id, status)
	for _, w := range words {
		b.WriteByte(' ')
		b.WriteString(w)
	}
	b.WriteString(" }")
	return b.String()
}
