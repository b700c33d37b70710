// Package cache implements the search result cache: a per-instance
// store mapping (query, options) to a prior result set with TTL
// expiration, LRU eviction, a memory budget, and observable statistics.
//
// # Keys
//
// Keys are the sha256 of a canonical string built from the query and
// the result-relevant option fields, with slice fields sorted. Two
// semantically identical option values always address the same entry
// regardless of field ordering in slices.
//
// # Lifecycle
//
// An entry is created on Set with a fresh timestamp, the configured
// default TTL, and hit count zero. Every successful Get increments its
// hit counter and refreshes its position in the access-order ledger.
// Entries die on lazy TTL expiry at Get time, on Clear, or on eviction.
//
// # Eviction
//
// Before every Set the manager evicts at most one LRU victim for entry
// count pressure and at most one more for memory pressure. A single
// oversized insertion can therefore exceed the memory budget until a
// later Set triggers another eviction; the policy is single-victim per
// check, not evict-until-under-budget.
//
// # Copy Semantics
//
// Results and options are deep-copied on both Set and Get. Cached state
// never aliases memory the caller holds, so external mutation cannot
// corrupt the cache.
//
// # Statistics
//
//	stats := manager.Stats()
//	stats.TotalEntries // live entry count
//	stats.HitRate      // sum(hits) / sum(hits+1), 0 when empty
//	stats.MemoryUsage  // approximate bytes (serialized length * 2)
//	stats.Evictions    // lifetime counter, survives Clear
//
// All derived fields are recomputed from the live entry set on every
// mutating operation; only the eviction counter carries across.
package cache
