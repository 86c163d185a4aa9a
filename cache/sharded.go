package cache

import (
	"sync"
	"sync/atomic"
)

const (
	// ShardCount is the number of shards for reduced lock contention.
	// Must be a power of 2 for fast modulo via bitwise AND.
	ShardCount = 16

	// shardMask is used for fast shard selection (ShardCount - 1).
	shardMask = ShardCount - 1
)

// Hasher is a function that computes a hash for a key.
// Used by Memo for shard selection.
type Hasher[K any] func(K) uint64

// RuneHasher spreads runes over shards.
//
// Neighbouring code points (the ASCII range, one CJK block) land in
// different shards, which is the access pattern of text rendering.
func RuneHasher(r rune) uint64 {
	x := uint64(uint32(r))
	x ^= x >> 16
	x *= 0x7feb352d
	x ^= x >> 15
	return x
}

// Memo is a thread-safe, sharded, append-only memo table.
//
// Unlike an LRU cache, a Memo never evicts and never overwrites: Store
// keeps the first value written for a key. Callers may therefore treat a
// value returned once as stable for the lifetime of the Memo.
type Memo[K comparable, V any] struct {
	shards [ShardCount]*memoShard[K, V]
	hasher Hasher[K]

	// Statistics (atomic for zero-allocation reads)
	hits   atomic.Uint64
	misses atomic.Uint64
	lost   atomic.Uint64
}

// memoShard is a single shard of the memo table.
// Each shard has its own mutex for reduced contention.
type memoShard[K comparable, V any] struct {
	mu      sync.RWMutex
	entries map[K]V
}

// NewMemo creates an empty memo table.
//
// The hasher function is used to compute hash values for shard selection.
// Use RuneHasher for rune keys.
func NewMemo[K comparable, V any](hasher Hasher[K]) *Memo[K, V] {
	m := &Memo[K, V]{hasher: hasher}
	for i := range m.shards {
		m.shards[i] = &memoShard[K, V]{
			entries: make(map[K]V),
		}
	}
	return m
}

// getShard returns the shard for a given key.
// Uses bitwise AND for fast modulo (only works with power-of-2 shard count).
func (m *Memo[K, V]) getShard(key K) *memoShard[K, V] {
	return m.shards[m.hasher(key)&shardMask]
}

// Get retrieves a memoized value by key.
// Returns (value, true) if found, (zero, false) otherwise.
func (m *Memo[K, V]) Get(key K) (V, bool) {
	shard := m.getShard(key)

	shard.mu.RLock()
	value, ok := shard.entries[key]
	shard.mu.RUnlock()

	if ok {
		m.hits.Add(1)
	} else {
		m.misses.Add(1)
	}
	return value, ok
}

// Store records value for key unless the key is already present.
//
// It returns the value that is memoized after the call, and whether it
// is the value passed in. When two goroutines race to compute the same
// key, exactly one of them wins; the loser gets the winner's value back
// and should use it instead of its own.
func (m *Memo[K, V]) Store(key K, value V) (V, bool) {
	shard := m.getShard(key)

	shard.mu.Lock()
	defer shard.mu.Unlock()

	if existing, ok := shard.entries[key]; ok {
		m.lost.Add(1)
		return existing, false
	}
	shard.entries[key] = value
	return value, true
}

// Len returns the total number of entries across all shards.
func (m *Memo[K, V]) Len() int {
	total := 0
	for _, shard := range m.shards {
		shard.mu.RLock()
		total += len(shard.entries)
		shard.mu.RUnlock()
	}
	return total
}

// Stats contains memo table statistics.
type Stats struct {
	// Len is the current number of entries.
	Len int
	// Hits is the number of Get calls that found an entry.
	Hits uint64
	// Misses is the number of Get calls that found nothing.
	Misses uint64
	// HitRate is the hit rate 0.0 to 1.0.
	HitRate float64
	// Races is the number of Store calls that lost to an earlier Store.
	Races uint64
}

// Stats returns current statistics.
// This operation is mostly lock-free (atomic counters).
func (m *Memo[K, V]) Stats() Stats {
	hits := m.hits.Load()
	misses := m.misses.Load()

	var hitRate float64
	if total := hits + misses; total > 0 {
		hitRate = float64(hits) / float64(total)
	}

	return Stats{
		Len:     m.Len(),
		Hits:    hits,
		Misses:  misses,
		HitRate: hitRate,
		Races:   m.lost.Load(),
	}
}
