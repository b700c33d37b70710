package types

import "sort"

// SearchStrategy selects how candidate files are matched against a query.
type SearchStrategy string

const (
	StrategyFuzzy   SearchStrategy = "fuzzy"   // Edit-distance scoring on file names
	StrategyExact   SearchStrategy = "exact"   // Exact/substring name match
	StrategyGlob    SearchStrategy = "glob"    // Glob pattern over relative paths
	StrategyRegex   SearchStrategy = "regex"   // Regular expression over relative paths
	StrategyContent SearchStrategy = "content" // Pattern match inside file contents
)

// Default limits applied by Normalize
const (
	DefaultMaxResults = 50
	MaxResultsLimit   = 500
)

// SearchOptions describes a single search request. The options double as
// a component of the cache key: two option sets that differ in any
// key-relevant field address distinct cache entries.
type SearchOptions struct {
	// Pattern overrides the free-text query for name matching when set.
	Pattern string

	// Glob is the pattern used by the glob strategy (e.g. "**/*.go").
	Glob string

	// ContentPattern is the pattern used by the content strategy. It is
	// compiled as a regular expression, falling back to a literal
	// substring when compilation fails.
	ContentPattern string

	// FileTypes restricts candidates to the listed extensions
	// (without the leading dot). Empty means all files.
	FileTypes []string

	// MaxResults caps the number of results returned. Zero selects
	// DefaultMaxResults.
	MaxResults int

	// CacheResults enables the result cache for this request. When false,
	// the cache is neither consulted nor populated.
	CacheResults bool

	// MaxFileSize skips files larger than this many bytes. Zero means
	// no limit.
	MaxFileSize int64

	// ExcludeDirs lists directory names pruned during traversal, in
	// addition to the walker defaults.
	ExcludeDirs []string

	// CaseSensitive controls case folding in name and content matching.
	CaseSensitive bool

	// MinScore drops results scoring below this threshold.
	MinScore float64

	// Strategy selects the matcher. Empty defaults to fuzzy.
	Strategy SearchStrategy

	// IncludeContent requests content previews in results. It is a
	// presentation concern and intentionally not part of the cache key.
	IncludeContent bool
}

// Normalize fills defaults and clamps limits in place.
func (o *SearchOptions) Normalize() {
	if o.Strategy == "" {
		o.Strategy = StrategyFuzzy
	}
	if o.MaxResults <= 0 {
		o.MaxResults = DefaultMaxResults
	}
	if o.MaxResults > MaxResultsLimit {
		o.MaxResults = MaxResultsLimit
	}
	if o.MinScore < 0 {
		o.MinScore = 0
	}
}

// Clone returns a deep copy. Cached option snapshots must never share
// backing arrays with the caller.
func (o SearchOptions) Clone() SearchOptions {
	dup := o
	if o.FileTypes != nil {
		dup.FileTypes = make([]string, len(o.FileTypes))
		copy(dup.FileTypes, o.FileTypes)
	}
	if o.ExcludeDirs != nil {
		dup.ExcludeDirs = make([]string, len(o.ExcludeDirs))
		copy(dup.ExcludeDirs, o.ExcludeDirs)
	}
	return dup
}

// SortedFileTypes returns the file type list in canonical order.
func (o SearchOptions) SortedFileTypes() []string {
	return sortedCopy(o.FileTypes)
}

// SortedExcludeDirs returns the exclusion list in canonical order.
func (o SearchOptions) SortedExcludeDirs() []string {
	return sortedCopy(o.ExcludeDirs)
}

func sortedCopy(in []string) []string {
	out := make([]string, len(in))
	copy(out, in)
	sort.Strings(out)
	return out
}
