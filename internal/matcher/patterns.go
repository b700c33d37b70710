package matcher

import (
	"fmt"
	"regexp"

	lru "github.com/hashicorp/golang-lru/v2"
)

// defaultPatternCacheSize bounds how many compiled patterns are retained.
const defaultPatternCacheSize = 256

// PatternCache memoizes compiled glob and regex patterns so repeated
// searches do not recompile. Safe for concurrent use; the underlying LRU
// carries its own locking.
type PatternCache struct {
	compiled *lru.Cache[string, *regexp.Regexp]
}

// NewPatternCache creates a pattern cache with the given capacity.
// A non-positive size selects the default.
func NewPatternCache(size int) *PatternCache {
	if size <= 0 {
		size = defaultPatternCacheSize
	}

	cache, err := lru.New[string, *regexp.Regexp](size)
	if err != nil {
		// Only reachable with a non-positive size, which is normalized above.
		panic(fmt.Sprintf("failed to create pattern cache: %v", err))
	}

	return &PatternCache{compiled: cache}
}

// Glob returns the compiled form of a glob pattern, compiling and
// caching it on first use.
func (pc *PatternCache) Glob(pattern string) (*regexp.Regexp, error) {
	key := "glob|" + pattern
	if re, ok := pc.compiled.Get(key); ok {
		return re, nil
	}

	re, err := CompileGlob(pattern)
	if err != nil {
		return nil, err
	}

	pc.compiled.Add(key, re)
	return re, nil
}

// Regex returns a compiled regular expression for the pattern,
// case-insensitive unless caseSensitive is set.
func (pc *PatternCache) Regex(pattern string, caseSensitive bool) (*regexp.Regexp, error) {
	key := fmt.Sprintf("regex|%t|%s", caseSensitive, pattern)
	if re, ok := pc.compiled.Get(key); ok {
		return re, nil
	}

	expr := pattern
	if !caseSensitive {
		expr = "(?i)" + expr
	}

	re, err := regexp.Compile(expr)
	if err != nil {
		return nil, fmt.Errorf("regex %q: %w", pattern, err)
	}

	pc.compiled.Add(key, re)
	return re, nil
}

// Len returns the number of cached compiled patterns.
func (pc *PatternCache) Len() int {
	return pc.compiled.Len()
}
