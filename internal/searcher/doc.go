// Package searcher implements the search orchestrator: it composes the
// file walker, the scoring strategies, the bounded result queue, and
// the result cache into a single search call.
//
// # Basic Usage
//
//	s := searcher.New(cache.NewManager(cache.DefaultConfig()), walker.New(), logger)
//
//	results, err := s.Search(ctx, searcher.SearchRequest{
//	    Root:  "/path/to/project",
//	    Query: "handler",
//	    Options: types.SearchOptions{
//	        Strategy:     types.StrategyFuzzy,
//	        MaxResults:   20,
//	        CacheResults: true,
//	    },
//	})
//
//	for _, r := range results {
//	    fmt.Printf("%.2f %s\n", r.Score, r.Path)
//	}
//
// # Strategies
//
//   - fuzzy: edit-distance similarity on file names (see matcher.Score)
//   - exact: file name equality or containment
//   - glob: glob pattern over project-relative paths
//   - regex: regular expression over project-relative paths
//   - content: pattern match inside file contents, with matched line
//     numbers and a preview
//
// # Bounded Memory
//
// Candidates stream through a bounded priority queue sized at
// MaxResults. Once the queue is full its admission floor prunes
// candidates before any result is built, so a search holds
// O(MaxResults) results no matter how large the tree is. There is no
// cap on how many files may be scanned.
//
// # Caching
//
// Every search consults the shared cache manager first and stores its
// final result set on completion, subject to the request's
// CacheResults flag. Multiple searches benefit from caching only when
// they share one Searcher (and so one cache instance).
//
// # Progressive Delivery
//
// SearchRequest.OnResult delivers results as they are admitted to the
// queue. Early deliveries are provisional: a better late candidate can
// displace them from the final set.
package searcher
