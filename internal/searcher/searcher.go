package searcher

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/dshills/filesearch-mcp/internal/cache"
	"github.com/dshills/filesearch-mcp/internal/matcher"
	"github.com/dshills/filesearch-mcp/internal/queue"
	"github.com/dshills/filesearch-mcp/internal/walker"
	"github.com/dshills/filesearch-mcp/pkg/types"
)

// Source supplies candidate files for a search. The default
// implementation is walker.Walker; tests substitute their own.
type Source interface {
	Walk(ctx context.Context, root string, cfg walker.Config, fn func(walker.FileCandidate) error) error
}

// SearchRequest contains parameters for a search operation.
type SearchRequest struct {
	// Root is the project directory to search under.
	Root string

	// Query is the free-text query. The fuzzy, exact, and regex
	// strategies match it against candidate names and paths.
	Query string

	// Options carries the search parameters and cache-key fields.
	Options types.SearchOptions

	// Security, when set, vetoes individual paths before matching.
	Security walker.SecurityCheck

	// OnResult, when set, is invoked as each result is admitted to the
	// bounded result set. A result delivered early may still be
	// displaced by better candidates before the search completes.
	OnResult func(types.SearchResult)
}

// Searcher composes the walker, the matchers, the bounded result queue,
// and the cache manager into a single search call. Construct one
// explicitly and share it; the cache lives inside it.
type Searcher struct {
	cache    *cache.Manager
	patterns *matcher.PatternCache
	source   Source
	log      *zap.Logger
}

// New creates a Searcher. A nil logger disables logging.
func New(cacheMgr *cache.Manager, source Source, log *zap.Logger) *Searcher {
	if log == nil {
		log = zap.NewNop()
	}
	return &Searcher{
		cache:    cacheMgr,
		patterns: matcher.NewPatternCache(0),
		source:   source,
		log:      log,
	}
}

// Search runs a search and returns results ordered by descending score.
// The cache is consulted first; on a miss, candidates stream through
// the strategy's scorer into a bounded queue sized at MaxResults, so
// memory stays O(MaxResults) no matter how many files are scanned.
func (s *Searcher) Search(ctx context.Context, req SearchRequest) ([]types.SearchResult, error) {
	startTime := time.Now()

	if err := validateRequest(&req); err != nil {
		return nil, fmt.Errorf("invalid search request: %w", err)
	}

	// The canonical cache key covers query and options only, so the
	// query handed to the cache is scoped by root to keep searches of
	// different projects from colliding in one shared cache.
	cacheQuery := req.Root + "|" + req.Query

	if cached, ok := s.cache.Get(cacheQuery, req.Options); ok {
		s.log.Debug("search cache hit",
			zap.String("query", req.Query),
			zap.String("strategy", string(req.Options.Strategy)),
			zap.Int("results", len(cached)))
		return cached, nil
	}

	score, err := s.newScorer(req.Query, req.Options)
	if err != nil {
		return nil, err
	}

	results, err := queue.New(req.Options.MaxResults, func(a, b types.SearchResult) bool {
		return a.Score > b.Score
	})
	if err != nil {
		return nil, err
	}

	cfg := walker.Config{
		ExcludeDirs: req.Options.ExcludeDirs,
		FileTypes:   req.Options.FileTypes,
		MaxFileSize: req.Options.MaxFileSize,
		LoadContent: req.Options.Strategy == types.StrategyContent,
		Security:    req.Security,
	}

	scanned := 0
	err = s.source.Walk(ctx, req.Root, cfg, func(c walker.FileCandidate) error {
		scanned++

		m, ok := score(c)
		if !ok || m.score < req.Options.MinScore {
			return nil
		}

		// Skip result construction for candidates that cannot make the
		// cut in the already-full queue.
		if floor, has := results.MinAcceptableScore(resultScore); has && results.IsFull() && m.score < floor {
			return nil
		}

		result := buildResult(c, m)
		results.Add(result)
		if req.OnResult != nil {
			req.OnResult(result)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("search traversal failed: %w", err)
	}

	final := results.Items()
	s.cache.Set(cacheQuery, req.Options, final)

	s.log.Debug("search complete",
		zap.String("query", req.Query),
		zap.String("strategy", string(req.Options.Strategy)),
		zap.Int("scanned", scanned),
		zap.Int("results", len(final)),
		zap.Duration("duration", time.Since(startTime)))

	return final, nil
}

// Cache exposes the result cache for statistics and invalidation.
func (s *Searcher) Cache() *cache.Manager {
	return s.cache
}

func resultScore(r types.SearchResult) float64 {
	return r.Score
}

// validateRequest ensures the request is usable and fills defaults.
func validateRequest(req *SearchRequest) error {
	if req.Root == "" {
		return fmt.Errorf("root path cannot be empty")
	}

	req.Options.Normalize()

	switch req.Options.Strategy {
	case types.StrategyFuzzy, types.StrategyExact, types.StrategyRegex:
		if req.Query == "" && req.Options.Pattern == "" {
			return fmt.Errorf("query cannot be empty")
		}
	case types.StrategyGlob:
		if req.Options.Glob == "" && req.Query == "" {
			return fmt.Errorf("glob pattern cannot be empty")
		}
	case types.StrategyContent:
		if req.Options.ContentPattern == "" && req.Query == "" {
			return fmt.Errorf("content pattern cannot be empty")
		}
	default:
		return fmt.Errorf("unsupported search strategy: %s", req.Options.Strategy)
	}

	return nil
}

// match is the outcome of scoring one candidate.
type match struct {
	score     float64
	matchType types.MatchType
	lines     []int
	preview   string
	factors   []string
}

// scorerFunc scores one candidate; ok is false for non-matches.
type scorerFunc func(c walker.FileCandidate) (m match, ok bool)

// newScorer builds the per-candidate scoring function for the
// strategy, compiling patterns up front so a malformed pattern fails
// the request loudly instead of silently matching nothing.
func (s *Searcher) newScorer(query string, opts types.SearchOptions) (scorerFunc, error) {
	pattern := opts.Pattern
	if pattern == "" {
		pattern = query
	}

	switch opts.Strategy {
	case types.StrategyFuzzy:
		return fuzzyScorer(pattern, opts.CaseSensitive), nil

	case types.StrategyExact:
		return exactScorer(pattern, opts.CaseSensitive), nil

	case types.StrategyGlob:
		globPattern := opts.Glob
		if globPattern == "" {
			globPattern = query
		}
		re, err := s.patterns.Glob(globPattern)
		if err != nil {
			return nil, err
		}
		return func(c walker.FileCandidate) (match, bool) {
			if !re.MatchString(c.RelPath) {
				return match{}, false
			}
			return match{
				score:     1.0,
				matchType: types.MatchGlob,
				factors:   []string{fmt.Sprintf("path matches glob %q", globPattern)},
			}, true
		}, nil

	case types.StrategyRegex:
		re, err := s.patterns.Regex(pattern, opts.CaseSensitive)
		if err != nil {
			return nil, err
		}
		return func(c walker.FileCandidate) (match, bool) {
			if !re.MatchString(c.RelPath) {
				return match{}, false
			}
			return match{
				score:     1.0,
				matchType: types.MatchName,
				factors:   []string{fmt.Sprintf("path matches pattern %q", pattern)},
			}, true
		}, nil

	case types.StrategyContent:
		contentPattern := opts.ContentPattern
		if contentPattern == "" {
			contentPattern = query
		}
		return s.contentScorer(contentPattern, opts.CaseSensitive), nil
	}

	return nil, fmt.Errorf("unsupported search strategy: %s", opts.Strategy)
}

// fuzzyScorer scores candidates by file name similarity.
func fuzzyScorer(pattern string, caseSensitive bool) scorerFunc {
	return func(c walker.FileCandidate) (match, bool) {
		name := filepath.Base(c.RelPath)
		score := matcher.Score(pattern, name, caseSensitive)
		if score <= 0 {
			return match{}, false
		}

		var factor string
		switch {
		case score == 1.0:
			factor = "exact file name match"
		case score >= 0.8:
			factor = "query is a substring of the file name"
		default:
			factor = "file name similarity"
		}

		return match{
			score:     score,
			matchType: types.MatchFuzzy,
			factors:   []string{factor},
		}, true
	}
}

// exactScorer accepts only equality and plain containment.
func exactScorer(pattern string, caseSensitive bool) scorerFunc {
	want := pattern
	if !caseSensitive {
		want = strings.ToLower(want)
	}

	return func(c walker.FileCandidate) (match, bool) {
		name := filepath.Base(c.RelPath)
		if !caseSensitive {
			name = strings.ToLower(name)
		}

		switch {
		case name == want:
			return match{
				score:     1.0,
				matchType: types.MatchExact,
				factors:   []string{"exact file name match"},
			}, true
		case strings.Contains(name, want):
			return match{
				score:     0.8,
				matchType: types.MatchName,
				factors:   []string{"file name contains query"},
			}, true
		}
		return match{}, false
	}
}

const (
	contentBaseScore = 0.6
	contentLineBonus = 0.05
	contentMaxScore  = 0.95
	previewMaxLines  = 3
)

// contentScorer matches the pattern against file contents line by line.
// The pattern compiles as a regular expression when possible and falls
// back to a literal substring otherwise.
func (s *Searcher) contentScorer(pattern string, caseSensitive bool) scorerFunc {
	re, err := s.patterns.Regex(pattern, caseSensitive)

	literal := pattern
	if !caseSensitive {
		literal = strings.ToLower(literal)
	}

	lineMatches := func(line string) bool {
		if err == nil {
			return re.MatchString(line)
		}
		if !caseSensitive {
			line = strings.ToLower(line)
		}
		return strings.Contains(line, literal)
	}

	return func(c walker.FileCandidate) (match, bool) {
		if c.Content == "" {
			return match{}, false
		}

		var matched []int
		var preview []string
		for i, line := range strings.Split(c.Content, "\n") {
			if !lineMatches(line) {
				continue
			}
			matched = append(matched, i+1)
			if len(preview) < previewMaxLines {
				preview = append(preview, strings.TrimSpace(line))
			}
		}

		if len(matched) == 0 {
			return match{}, false
		}

		score := contentBaseScore + contentLineBonus*float64(len(matched))
		if score > contentMaxScore {
			score = contentMaxScore
		}

		return match{
			score:     score,
			matchType: types.MatchContent,
			lines:     matched,
			preview:   strings.Join(preview, "\n"),
			factors:   []string{fmt.Sprintf("%d matching lines", len(matched))},
		}, true
	}
}

// buildResult assembles the final SearchResult for an admitted candidate.
func buildResult(c walker.FileCandidate, m match) types.SearchResult {
	return types.SearchResult{
		Path:             c.Path,
		Score:            m.score,
		MatchType:        m.matchType,
		ContentPreview:   m.preview,
		MatchedLines:     m.lines,
		RelevanceFactors: m.factors,
		Metadata: &types.FileMetadata{
			Size:      c.Size,
			ModTime:   c.ModTime,
			Extension: strings.TrimPrefix(filepath.Ext(c.Path), "."),
		},
	}
}
