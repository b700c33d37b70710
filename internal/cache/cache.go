package cache

import (
	"encoding/json"
	"strings"
	"sync"
	"time"

	"github.com/dshills/filesearch-mcp/pkg/types"
)

// Defaults applied by Config.normalize.
const (
	DefaultMaxEntries     = 1000
	DefaultTTL            = 5 * time.Minute
	DefaultMaxMemoryUsage = 50 << 20 // 50 MiB
)

// Config controls cache limits. The zero value selects all defaults.
type Config struct {
	// MaxEntries is the entry-count ceiling; reaching it evicts the
	// least-recently-used entry before the next store.
	MaxEntries int

	// DefaultTTL is the time-to-live stamped on new entries.
	DefaultTTL time.Duration

	// MaxMemoryUsage is the approximate memory budget in bytes.
	MaxMemoryUsage int64

	// EnableStats controls statistics recomputation. Disabled, Stats
	// still reports the eviction counter but no derived fields.
	EnableStats bool
}

func (c Config) normalize() Config {
	if c.MaxEntries <= 0 {
		c.MaxEntries = DefaultMaxEntries
	}
	if c.DefaultTTL <= 0 {
		c.DefaultTTL = DefaultTTL
	}
	if c.MaxMemoryUsage <= 0 {
		c.MaxMemoryUsage = DefaultMaxMemoryUsage
	}
	return c
}

// DefaultConfig returns the default cache configuration.
func DefaultConfig() Config {
	return Config{
		MaxEntries:     DefaultMaxEntries,
		DefaultTTL:     DefaultTTL,
		MaxMemoryUsage: DefaultMaxMemoryUsage,
		EnableStats:    true,
	}
}

// entry is one cached result set with its access bookkeeping.
type entry struct {
	query     string
	options   types.SearchOptions
	results   []types.SearchResult
	timestamp time.Time
	ttl       time.Duration
	hits      uint64
}

func (e *entry) expired(now time.Time) bool {
	return now.Sub(e.timestamp) > e.ttl
}

// Manager memoizes search results keyed by (query, options). It expires
// entries lazily by TTL, evicts by LRU when the entry count or the
// approximate memory budget is exceeded, and maintains an observable
// statistics snapshot.
//
// Each Manager owns its own entry store, access ledger, and statistics;
// nothing is shared between instances. A single mutex guards all state:
// Get and Set are read-modify-write operations (ledger increment,
// eviction) that must not interleave.
type Manager struct {
	mu      sync.Mutex
	cfg     Config
	entries map[[32]byte]*entry

	// access maps each key to a globally unique, strictly increasing
	// ledger value; the smallest value is the LRU eviction target.
	access  map[[32]byte]uint64
	counter uint64

	evictions uint64
	stats     types.CacheStats
}

// NewManager creates a cache manager. Zero-valued config fields take
// their defaults.
func NewManager(cfg Config) *Manager {
	return &Manager{
		cfg:     cfg.normalize(),
		entries: make(map[[32]byte]*entry),
		access:  make(map[[32]byte]uint64),
	}
}

// Get returns a copy of the cached results for the query and options,
// or nil, false on a miss. Requests with caching disabled are never
// looked up or counted. Expired entries are removed and reported as
// misses.
func (m *Manager) Get(query string, opts types.SearchOptions) ([]types.SearchResult, bool) {
	if !opts.CacheResults {
		return nil, false
	}

	key := Key(query, opts)

	m.mu.Lock()
	defer m.mu.Unlock()

	e, ok := m.entries[key]
	if !ok {
		return nil, false
	}

	if e.expired(time.Now()) {
		delete(m.entries, key)
		delete(m.access, key)
		m.recomputeStats()
		return nil, false
	}

	e.hits++
	m.touch(key)
	m.recomputeStats()

	return types.CloneResults(e.results), true
}

// Set stores a copy of the results under the query and options. It is a
// no-op when caching is disabled for the request. Eviction runs before
// the store, one victim per pressure check.
func (m *Manager) Set(query string, opts types.SearchOptions, results []types.SearchResult) {
	if !opts.CacheResults {
		return
	}

	key := Key(query, opts)

	m.mu.Lock()
	defer m.mu.Unlock()

	m.evictIfNecessary()

	m.entries[key] = &entry{
		query:     query,
		options:   opts.Clone(),
		results:   types.CloneResults(results),
		timestamp: time.Now(),
		ttl:       m.cfg.DefaultTTL,
	}
	m.touch(key)
	m.recomputeStats()
}

// Clear removes every entry. The eviction counter is lifetime state and
// survives.
func (m *Manager) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.entries = make(map[[32]byte]*entry)
	m.access = make(map[[32]byte]uint64)
	m.recomputeStats()
}

// ClearProject removes entries whose stored results contain at least one
// file path under the given path prefix. Entries with no such paths
// survive with their hit counts untouched.
func (m *Manager) ClearProject(projectPath string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for key, e := range m.entries {
		for _, r := range e.results {
			if strings.HasPrefix(r.Path, projectPath) {
				delete(m.entries, key)
				delete(m.access, key)
				break
			}
		}
	}
	m.recomputeStats()
}

// Stats returns a copy of the current statistics snapshot.
func (m *Manager) Stats() types.CacheStats {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.stats
}

// touch assigns the key a fresh ledger value. Called on every store and
// every successful get.
func (m *Manager) touch(key [32]byte) {
	m.counter++
	m.access[key] = m.counter
}

// evictIfNecessary runs before each store: one LRU victim when the
// entry count is at capacity, and one more when the approximate memory
// usage is over budget. One oversized insertion can exceed the budget
// until a later Set evicts again.
func (m *Manager) evictIfNecessary() {
	if len(m.entries) >= m.cfg.MaxEntries {
		m.evictLRU()
	}
	if m.memoryUsage() > m.cfg.MaxMemoryUsage {
		m.evictLRU()
	}
}

// evictLRU removes the entry with the smallest ledger value. A no-op on
// an empty store.
func (m *Manager) evictLRU() {
	if len(m.entries) == 0 {
		return
	}

	var victim [32]byte
	var oldest uint64
	first := true
	for key, stamp := range m.access {
		if first || stamp < oldest {
			victim = key
			oldest = stamp
			first = false
		}
	}

	delete(m.entries, victim)
	delete(m.access, victim)
	m.evictions++
}

// recomputeStats rebuilds the statistics snapshot from the live entry
// set. Only the eviction counter carries over; everything else is
// derived fresh, so the snapshot cannot drift.
func (m *Manager) recomputeStats() {
	m.stats = types.CacheStats{
		TotalEntries: len(m.entries),
		Evictions:    m.evictions,
	}

	if !m.cfg.EnableStats {
		return
	}

	var hits, accesses uint64
	var memory int64
	for _, e := range m.entries {
		hits += e.hits
		accesses += e.hits + 1 // the initial store counts as one access
		memory += estimateSize(e)
	}

	if accesses > 0 {
		m.stats.HitRate = float64(hits) / float64(accesses)
	}
	m.stats.MemoryUsage = memory
}

// memoryUsage returns the approximate byte size of all entries.
func (m *Manager) memoryUsage() int64 {
	var total int64
	for _, e := range m.entries {
		total += estimateSize(e)
	}
	return total
}

// estimateSize approximates an entry's footprint by serializing it to a
// canonical textual form and doubling the length to account for wide
// character encoding. A heuristic upper bound, not an exact accounting.
func estimateSize(e *entry) int64 {
	payload := struct {
		Query   string
		Options types.SearchOptions
		Results []types.SearchResult
	}{e.query, e.options, e.results}

	data, err := json.Marshal(payload)
	if err != nil {
		// Entries hold only marshalable fields; fall back to a floor.
		return int64(len(e.query)) * 2
	}
	return int64(len(data)) * 2
}
