package mcp

import (
	"github.com/mark3labs/mcp-go/mcp"
)

// searchFilesTool returns the tool definition for search_files
func searchFilesTool() mcp.Tool {
	return mcp.Tool{
		Name:        "search_files",
		Description: "Search a project directory for files by name, glob, regex, or content",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"path": map[string]interface{}{
					"type":        "string",
					"description": "Absolute path to the project root to search under",
				},
				"query": map[string]interface{}{
					"type":        "string",
					"description": "Search query: file name text, regular expression, or content pattern depending on strategy",
				},
				"strategy": map[string]interface{}{
					"type":        "string",
					"description": "Matching strategy",
					"enum":        []string{"fuzzy", "exact", "glob", "regex", "content"},
					"default":     "fuzzy",
				},
				"glob": map[string]interface{}{
					"type":        "string",
					"description": "Glob pattern for the glob strategy (e.g., '**/*.go')",
				},
				"content_pattern": map[string]interface{}{
					"type":        "string",
					"description": "Pattern for the content strategy; falls back to the query when omitted",
				},
				"file_types": map[string]interface{}{
					"type":        "array",
					"description": "Restrict to these file extensions (without the dot)",
					"items": map[string]interface{}{
						"type": "string",
					},
				},
				"exclude_dirs": map[string]interface{}{
					"type":        "array",
					"description": "Directory names to skip in addition to the defaults",
					"items": map[string]interface{}{
						"type": "string",
					},
				},
				"max_results": map[string]interface{}{
					"type":        "integer",
					"description": "Maximum number of results to return (1-500)",
					"default":     50,
					"minimum":     1,
					"maximum":     500,
				},
				"max_file_size": map[string]interface{}{
					"type":        "integer",
					"description": "Skip files larger than this many bytes (0 = no limit)",
					"default":     0,
				},
				"case_sensitive": map[string]interface{}{
					"type":        "boolean",
					"description": "Match case-sensitively",
					"default":     false,
				},
				"min_score": map[string]interface{}{
					"type":        "number",
					"description": "Minimum relevance score threshold (0.0-1.0)",
					"minimum":     0.0,
					"maximum":     1.0,
				},
				"include_content": map[string]interface{}{
					"type":        "boolean",
					"description": "Include content previews in results",
					"default":     false,
				},
				"no_cache": map[string]interface{}{
					"type":        "boolean",
					"description": "Bypass the result cache for this search",
					"default":     false,
				},
			},
			Required: []string{"path", "query"},
		},
	}
}

// cacheStatsTool returns the tool definition for cache_stats
func cacheStatsTool() mcp.Tool {
	return mcp.Tool{
		Name:        "cache_stats",
		Description: "Report search result cache statistics",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]interface{}{},
		},
	}
}

// clearCacheTool returns the tool definition for clear_cache
func clearCacheTool() mcp.Tool {
	return mcp.Tool{
		Name:        "clear_cache",
		Description: "Clear cached search results, optionally limited to one project",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"path": map[string]interface{}{
					"type":        "string",
					"description": "If set, clear only entries holding results under this path",
				},
			},
		},
	}
}
