// Package config provides configuration structures for the search engine.
// It defines the engine's shard count and stop words, loadable from YAML.
package config

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// defaultShardCount is used when a Settings value leaves ShardCount unset.
const defaultShardCount = 16

// Settings holds every tunable the engine needs at construction time.
type Settings struct {
	// ShardCount is a shard count for a ShardedMap. Must be positive. The
	// index package does not read it: the parallel ranking path always
	// uses its own fixed shard count (parallelShards in index/ranker.go).
	ShardCount int `yaml:"shard_count"`
	// StopWords lists the words the tokenizer drops from both documents
	// and queries, space-separated semantics matching the engine's own
	// tokenizer (see internal/stopwords).
	StopWords []string `yaml:"stop_words"`
}

// ApplyDefaults fills in zero-valued fields with the engine's defaults.
func (s *Settings) ApplyDefaults() {
	if s.ShardCount == 0 {
		s.ShardCount = defaultShardCount
	}
	if s.StopWords == nil {
		s.StopWords = []string{}
	}
}

// Validate checks Settings for internal consistency, returning every
// conflict found rather than stopping at the first.
func (s *Settings) Validate() []string {
	var conflicts []string
	if s.ShardCount < 1 {
		conflicts = append(conflicts, "shard_count must be at least 1")
	}
	seen := make(map[string]bool, len(s.StopWords))
	for _, w := range s.StopWords {
		if seen[w] {
			conflicts = append(conflicts, fmt.Sprintf("duplicate stop word %q", w))
		}
		seen[w] = true
	}
	return conflicts
}

// FromYAML parses raw YAML into a Settings, applies defaults, and validates
// the result. A non-empty conflict list is returned alongside a nil error;
// callers decide whether conflicts are fatal.
func FromYAML(raw []byte) (Settings, []string, error) {
	var s Settings
	if err := yaml.Unmarshal(raw, &s); err != nil {
		return Settings{}, nil, fmt.Errorf("config: parse yaml: %w", err)
	}
	s.ApplyDefaults()
	return s, s.Validate(), nil
}
