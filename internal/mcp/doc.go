// Package mcp exposes the file-search engine over the Model Context
// Protocol on stdio.
//
// # Tools
//
// search_files runs a search under a project root:
//
//	{
//	  "path": "/abs/project",
//	  "query": "handler",
//	  "strategy": "fuzzy",
//	  "max_results": 20
//	}
//
// cache_stats reports the result cache's statistics snapshot, and
// clear_cache drops cached results, either everything or only entries
// holding results under a given path.
//
// # Wiring
//
// The server owns one cache.Manager and one searcher.Searcher; all tool
// invocations share them. That single shared cache instance is what
// makes repeated searches cheap.
//
// # Errors
//
// Tool failures are returned as MCPError values with JSON-RPC style
// codes; the mcp-go framework handles encoding. Parameter problems use
// ErrorCodeInvalidParams, engine failures ErrorCodeInternalError.
package mcp
