// Package tokenizer splits raw text into word slices on ASCII space and
// validates those words against the control-byte rule documents and query
// terms both use.
package tokenizer

import "strings"

// Split partitions text on single ASCII space characters. Unlike a
// filtering split, it preserves empty slices produced by adjacent or
// leading spaces, and always yields a final slice for whatever follows the
// last space (or the whole string, if there is no space at all). Splitting
// the empty string yields a single empty slice.
func Split(text string) []string {
	return strings.Split(text, " ")
}

// IsValidWord reports whether word contains no ASCII control byte (a byte
// with value < 32). Bytes >= 32, including the individual bytes of
// multi-byte UTF-8 sequences, are treated as opaque and always valid.
func IsValidWord(word string) bool {
	for i := 0; i < len(word); i++ {
		if word[i] < 32 {
			return false
		}
	}
	return true
}
