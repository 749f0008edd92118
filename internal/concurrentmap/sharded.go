// Package concurrentmap implements a fixed-shard concurrent map from
// integer key to value, each shard guarded by its own mutex. It backs the
// parallel ranking path: many goroutines accumulate into disjoint shards
// without contending on a single lock, while producing the exact same
// result set as the sequential path once snapshotted.
package concurrentmap

import "sync"

type shard[V any] struct {
	mu   sync.Mutex
	data map[int]V
}

// ShardedMap is a concurrent map keyed by int, split across a fixed number
// of independently-locked shards. All operations lock at most one shard at
// a time, so no lock ordering is required and deadlock is structurally
// impossible.
type ShardedMap[V any] struct {
	shards []shard[V]
}

// New constructs a ShardedMap with n shards. An n below 1 is clamped to 1.
func New[V any](n int) *ShardedMap[V] {
	if n < 1 {
		n = 1
	}
	m := &ShardedMap[V]{shards: make([]shard[V], n)}
	for i := range m.shards {
		m.shards[i].data = make(map[int]V)
	}
	return m
}

func (m *ShardedMap[V]) shardFor(key int) *shard[V] {
	idx := key % len(m.shards)
	if idx < 0 {
		idx += len(m.shards)
	}
	return &m.shards[idx]
}

// Access acquires the shard holding key and returns a Handle exposing a
// mutable reference to its value, inserting the zero value if key is
// absent. The shard's lock is held for the Handle's entire lifetime;
// calling Release unlocks it. Only one Access per shard may be live at a
// time; Access calls on different shards proceed concurrently.
func (m *ShardedMap[V]) Access(key int) *Handle[V] {
	s := m.shardFor(key)
	s.mu.Lock()
	if _, ok := s.data[key]; !ok {
		var zero V
		s.data[key] = zero
	}
	return &Handle[V]{shard: s, key: key}
}

// Handle is a scoped, lock-holding view onto a single key's value.
type Handle[V any] struct {
	shard *shard[V]
	key   int
}

// Value returns the current value at the handle's key.
func (h *Handle[V]) Value() V {
	return h.shard.data[h.key]
}

// Set stores v at the handle's key.
func (h *Handle[V]) Set(v V) {
	h.shard.data[h.key] = v
}

// Release unlocks the shard. The handle must not be used afterward.
func (h *Handle[V]) Release() {
	h.shard.mu.Unlock()
}

// Erase removes key if present, locking only key's shard.
func (m *ShardedMap[V]) Erase(key int) {
	s := m.shardFor(key)
	s.mu.Lock()
	delete(s.data, key)
	s.mu.Unlock()
}

// BuildOrdinaryMap acquires each shard's lock in turn and assembles a
// single map containing the union of all entries: a snapshot, not a live
// view. Concurrent writers observed mid-scan may or may not be reflected,
// but each shard's own scan is atomic with respect to writers of that
// shard.
func (m *ShardedMap[V]) BuildOrdinaryMap() map[int]V {
	out := make(map[int]V)
	for i := range m.shards {
		s := &m.shards[i]
		s.mu.Lock()
		for k, v := range s.data {
			out[k] = v
		}
		s.mu.Unlock()
	}
	return out
}
