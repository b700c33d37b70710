// Package types provides shared type definitions for the file-search MCP server.
//
// This package defines the domain types exchanged between the searcher,
// the cache manager, and the MCP tool layer: search options, ranked
// search results, and cache statistics.
//
// # Core Types
//
// SearchOptions describes one search request and doubles as a component
// of the cache key:
//
//	opts := types.SearchOptions{
//	    Strategy:     types.StrategyFuzzy,
//	    FileTypes:    []string{"go", "md"},
//	    MaxResults:   20,
//	    CacheResults: true,
//	    MinScore:     0.3,
//	}
//
// SearchResult is a single ranked hit:
//
//	result := types.SearchResult{
//	    Path:      "/project/internal/server/server.go",
//	    Score:     0.92,
//	    MatchType: types.MatchFuzzy,
//	}
//
// # Copy Semantics
//
// Options and results cross the cache boundary as deep copies via Clone
// and CloneResults. Cached state must never alias memory held by a
// caller, so both store and retrieve copy.
//
// # Validation
//
// SearchResult implements a Validate method in line with the rest of the
// domain types:
//
//	if err := result.Validate(); err != nil {
//	    log.Fatal(err)
//	}
//
// Relevance scores are normalized to [0, 1], with higher values
// indicating better matches.
package types
