package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/mark3labs/mcp-go/mcp"
	"go.uber.org/zap"

	"github.com/dshills/filesearch-mcp/internal/searcher"
	"github.com/dshills/filesearch-mcp/pkg/types"
)

// MCP error codes
const (
	ErrorCodeInvalidParams = -32602 // Invalid method parameters
	ErrorCodeInternalError = -32603 // Internal JSON-RPC error
	ErrorCodeEmptyQuery    = -32004 // Query parameter is empty
)

// handleSearchFiles handles the search_files tool invocation.
func (s *Server) handleSearchFiles(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args, ok := request.Params.Arguments.(map[string]interface{})
	if !ok {
		return nil, newMCPError(ErrorCodeInvalidParams, "invalid arguments", nil)
	}

	path, ok := args["path"].(string)
	if !ok || path == "" {
		return nil, newMCPError(ErrorCodeInvalidParams, "path parameter is required", map[string]interface{}{
			"param":  "path",
			"reason": "missing or empty",
		})
	}

	query, ok := args["query"].(string)
	if !ok || query == "" {
		return nil, newMCPError(ErrorCodeEmptyQuery, "query parameter is required and cannot be empty", map[string]interface{}{
			"param":  "query",
			"reason": "missing or empty",
		})
	}

	if err := validatePath(path); err != nil {
		return nil, newMCPError(ErrorCodeInvalidParams, "invalid path", map[string]interface{}{
			"param":  "path",
			"reason": err.Error(),
		})
	}

	maxResults := getIntDefault(args, "max_results", types.DefaultMaxResults)
	if maxResults < 1 || maxResults > types.MaxResultsLimit {
		return nil, newMCPError(ErrorCodeInvalidParams, fmt.Sprintf("max_results must be between 1 and %d", types.MaxResultsLimit), map[string]interface{}{
			"param": "max_results",
			"value": maxResults,
		})
	}

	strategy := types.SearchStrategy(getStringDefault(args, "strategy", string(types.StrategyFuzzy)))
	switch strategy {
	case types.StrategyFuzzy, types.StrategyExact, types.StrategyGlob, types.StrategyRegex, types.StrategyContent:
	default:
		return nil, newMCPError(ErrorCodeInvalidParams, "invalid strategy", map[string]interface{}{
			"param":   "strategy",
			"value":   string(strategy),
			"allowed": []string{"fuzzy", "exact", "glob", "regex", "content"},
		})
	}

	includeContent := getBoolDefault(args, "include_content", false)

	opts := types.SearchOptions{
		Strategy:       strategy,
		Glob:           getStringDefault(args, "glob", ""),
		ContentPattern: getStringDefault(args, "content_pattern", ""),
		FileTypes:      getStringList(args, "file_types"),
		ExcludeDirs:    append(getStringList(args, "exclude_dirs"), s.cfg.Walker.ExcludeDirs...),
		MaxResults:     maxResults,
		MaxFileSize:    int64(getIntDefault(args, "max_file_size", 0)),
		CaseSensitive:  getBoolDefault(args, "case_sensitive", false),
		MinScore:       getFloatDefault(args, "min_score", 0),
		CacheResults:   !getBoolDefault(args, "no_cache", false),
		IncludeContent: includeContent,
	}

	results, err := s.searcher.Search(ctx, searcher.SearchRequest{
		Root:    path,
		Query:   query,
		Options: opts,
	})
	if err != nil {
		return nil, newMCPError(ErrorCodeInternalError, "search failed", map[string]interface{}{
			"error": err.Error(),
		})
	}

	s.log.Debug("search_files handled",
		zap.String("path", path),
		zap.String("query", query),
		zap.Int("results", len(results)))

	return mcp.NewToolResultText(formatJSON(map[string]interface{}{
		"query":   query,
		"total":   len(results),
		"results": formatResults(results, includeContent),
	})), nil
}

// handleCacheStats handles the cache_stats tool invocation.
func (s *Server) handleCacheStats(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	stats := s.cache.Stats()

	return mcp.NewToolResultText(formatJSON(map[string]interface{}{
		"total_entries": stats.TotalEntries,
		"hit_rate":      fmt.Sprintf("%.3f", stats.HitRate),
		"memory_bytes":  stats.MemoryUsage,
		"evictions":     stats.Evictions,
	})), nil
}

// handleClearCache handles the clear_cache tool invocation.
func (s *Server) handleClearCache(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var path string
	if args, ok := request.Params.Arguments.(map[string]interface{}); ok {
		path = getStringDefault(args, "path", "")
	}

	if path != "" {
		s.cache.ClearProject(path)
	} else {
		s.cache.Clear()
	}

	remaining := s.cache.Stats().TotalEntries
	return mcp.NewToolResultText(formatJSON(map[string]interface{}{
		"cleared":           true,
		"path":              path,
		"remaining_entries": remaining,
	})), nil
}

// formatResults converts results into the tool's JSON payload shape.
// Content previews are a presentation concern and only appear when the
// caller asked for them.
func formatResults(results []types.SearchResult, includeContent bool) []map[string]interface{} {
	out := make([]map[string]interface{}, 0, len(results))
	for _, r := range results {
		item := map[string]interface{}{
			"path":       r.Path,
			"score":      r.Score,
			"match_type": string(r.MatchType),
		}
		if len(r.RelevanceFactors) > 0 {
			item["relevance_factors"] = r.RelevanceFactors
		}
		if len(r.MatchedLines) > 0 {
			item["matched_lines"] = r.MatchedLines
		}
		if includeContent && r.ContentPreview != "" {
			item["preview"] = r.ContentPreview
		}
		if r.Metadata != nil {
			item["size"] = r.Metadata.Size
			item["modified"] = r.Metadata.ModTime.Format("2006-01-02T15:04:05Z07:00")
			item["extension"] = r.Metadata.Extension
		}
		out = append(out, item)
	}
	return out
}

// Helper functions

// newMCPError creates a properly formatted MCP error
func newMCPError(code int, message string, data interface{}) error {
	// MCP errors are returned as regular errors, the framework handles encoding
	return &MCPError{
		Code:    code,
		Message: message,
		Data:    data,
	}
}

// MCPError represents an MCP protocol error
type MCPError struct {
	Code    int
	Message string
	Data    interface{}
}

func (e *MCPError) Error() string {
	return fmt.Sprintf("MCP error %d: %s", e.Code, e.Message)
}

// validatePath checks if a path exists and is an accessible directory.
func validatePath(path string) error {
	if path == "" {
		return ErrPathRequired
	}

	if !filepath.IsAbs(path) {
		return ErrPathNotAbsolute
	}

	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return ErrPathNotFound
	}
	if err != nil {
		return ErrPathNotReadable
	}

	if !info.IsDir() {
		return ErrNotDirectory
	}

	f, err := os.Open(path)
	if err != nil {
		return ErrPathNotReadable
	}
	_ = f.Close()

	return nil
}

// formatJSON formats a map as indented JSON
func formatJSON(data map[string]interface{}) string {
	bytes, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return fmt.Sprintf("%v", data)
	}
	return string(bytes)
}

// getBoolDefault extracts a boolean parameter with a default value
func getBoolDefault(args map[string]interface{}, key string, defaultValue bool) bool {
	if val, ok := args[key].(bool); ok {
		return val
	}
	return defaultValue
}

// getIntDefault extracts an integer parameter with a default value
func getIntDefault(args map[string]interface{}, key string, defaultValue int) int {
	if val, ok := args[key].(float64); ok {
		return int(val)
	}
	if val, ok := args[key].(int); ok {
		return val
	}
	return defaultValue
}

// getFloatDefault extracts a float parameter with a default value
func getFloatDefault(args map[string]interface{}, key string, defaultValue float64) float64 {
	if val, ok := args[key].(float64); ok {
		return val
	}
	return defaultValue
}

// getStringDefault extracts a string parameter with a default value
func getStringDefault(args map[string]interface{}, key string, defaultValue string) string {
	if val, ok := args[key].(string); ok {
		return val
	}
	return defaultValue
}

// getStringList extracts a string array parameter
func getStringList(args map[string]interface{}, key string) []string {
	raw, ok := args[key].([]interface{})
	if !ok {
		return nil
	}
	out := make([]string, 0, len(raw))
	for _, v := range raw {
		if s, ok := v.(string); ok {
			out = append(out, s)
		}
	}
	return out
}

// Validation helpers

var (
	ErrPathRequired    = errors.New("path is required")
	ErrPathNotAbsolute = errors.New("path must be absolute")
	ErrPathNotFound    = errors.New("path does not exist")
	ErrPathNotReadable = errors.New("path is not readable")
	ErrNotDirectory    = errors.New("path is not a directory")
)
