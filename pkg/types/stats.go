package types

// CacheStats is a snapshot of result-cache statistics. All fields except
// Evictions are recomputed from the live entry set on every mutating
// cache operation; Evictions is a lifetime counter that survives
// recomputation and Clear.
type CacheStats struct {
	// TotalEntries is the current number of cached entries.
	TotalEntries int

	// HitRate is sum(hits) / sum(hits+1) across entries, counting the
	// initial store as one implicit access. Zero for an empty cache.
	HitRate float64

	// MemoryUsage is the approximate total byte size of cached entries.
	MemoryUsage int64

	// Evictions counts entries removed by capacity or memory pressure
	// over the cache's lifetime. Monotonic.
	Evictions uint64
}
