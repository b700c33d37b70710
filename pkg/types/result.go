package types

import "time"

// MatchType describes which matcher produced a result.
type MatchType string

const (
	MatchName    MatchType = "name"
	MatchContent MatchType = "content"
	MatchGlob    MatchType = "glob"
	MatchFuzzy   MatchType = "fuzzy"
	MatchExact   MatchType = "exact"
)

// SearchResult represents a single ranked file match. Results are
// immutable once created; ordering between results is always by
// descending Score.
type SearchResult struct {
	// Path is the absolute path of the matched file.
	Path string

	// Score is the relevance score in [0, 1].
	Score float64

	// MatchType records which matcher produced the hit.
	MatchType MatchType

	// ContentPreview holds matching lines for content searches.
	ContentPreview string

	// MatchedLines lists 1-based line numbers that matched a content
	// pattern.
	MatchedLines []int

	// RelevanceFactors are human-readable explanations of the score.
	RelevanceFactors []string

	// Metadata carries file system metadata when available.
	Metadata *FileMetadata
}

// FileMetadata contains file system metadata for a search result.
type FileMetadata struct {
	Size      int64
	ModTime   time.Time
	Extension string
}

// Clone returns a deep copy of the result. Cached result snapshots must
// never share memory with the caller.
func (sr SearchResult) Clone() SearchResult {
	dup := sr
	if sr.MatchedLines != nil {
		dup.MatchedLines = make([]int, len(sr.MatchedLines))
		copy(dup.MatchedLines, sr.MatchedLines)
	}
	if sr.RelevanceFactors != nil {
		dup.RelevanceFactors = make([]string, len(sr.RelevanceFactors))
		copy(dup.RelevanceFactors, sr.RelevanceFactors)
	}
	if sr.Metadata != nil {
		meta := *sr.Metadata
		dup.Metadata = &meta
	}
	return dup
}

// CloneResults deep-copies a result list.
func CloneResults(in []SearchResult) []SearchResult {
	if in == nil {
		return nil
	}
	out := make([]SearchResult, len(in))
	for i, r := range in {
		out[i] = r.Clone()
	}
	return out
}

// Validate checks if the search result is valid.
func (sr *SearchResult) Validate() error {
	if sr.Path == "" {
		return ErrEmptyPath
	}

	if sr.Score < 0 || sr.Score > 1 {
		return ErrInvalidScore
	}

	if sr.MatchType == "" {
		return ErrMissingMatchType
	}

	return nil
}
