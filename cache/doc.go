// Package cache provides the memo table used by glyph faces.
//
// # Memo[K, V]
//
// An append-only, sharded map. Entries are never evicted and never
// replaced: the first value stored for a key wins for the lifetime of the
// table. This is what lets a face hand out texture coordinates that stay
// valid across frames.
//
//	m := cache.NewMemo[rune, int](cache.RuneHasher)
//	v, stored := m.Store('a', 42)
//	value, ok := m.Get('a')
//
// # Thread Safety
//
// Memo is safe for concurrent use. It uses 16 shards, each behind its own
// RWMutex, so readers on the hot path rarely contend.
// A Memo must not be copied after creation (it contains mutexes).
package cache
