// Package matcher implements the stateless scoring primitives of the
// file search engine: fuzzy string similarity and glob pattern matching.
//
// # Fuzzy Scoring
//
// Score produces a similarity score in [0, 1] for a query against a
// target string:
//
//	matcher.Score("server", "server.go", false) // substring: >= 0.8
//	matcher.Score("srvr", "server", false)      // edit distance: <= 0.79
//
// Score bands are disjoint by construction:
//   - 1.0: exact match
//   - [0.8, 1.0): substring containment only
//   - [0, 0.79]: edit-distance similarity plus prefix bonus
//
// The clamp at 0.79 guarantees a non-substring match can never outrank
// a substring match regardless of how strong its prefix bonus is.
//
// # Glob Matching
//
// CompileGlob translates glob syntax to a regular expression with
// path-aware wildcard semantics:
//
//	matcher.MatchGlob("*.go", "main.go")           // true
//	matcher.MatchGlob("*.go", "cmd/main.go")       // false: * stops at /
//	matcher.MatchGlob("**/*.go", "cmd/main.go")    // true
//	matcher.MatchGlob("src/**", "src/a/b.go")      // true
//
// MatchGlob swallows compilation failures and reports no match, so
// malformed patterns never fault a search. Callers needing the failure
// use CompileGlob directly.
//
// # Pattern Cache
//
// PatternCache memoizes compiled glob and regex patterns behind an LRU
// so the orchestrator can evaluate the same pattern against thousands
// of candidate paths without recompiling.
package matcher
