package mcp

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dshills/filesearch-mcp/internal/config"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()

	cfg, err := config.Load("")
	require.NoError(t, err)

	s, err := NewServer(cfg, nil)
	require.NoError(t, err)
	return s
}

func buildProject(t *testing.T) string {
	t.Helper()
	root := t.TempDir()

	files := map[string]string{
		"main.go":            "package main\n\nfunc main() {}\n",
		"internal/server.go": "package internal\n\nfunc Serve() {}\n",
		"README.md":          "# project\n",
	}
	for rel, content := range files {
		path := filepath.Join(root, rel)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	}
	return root
}

func callRequest(name string, args map[string]interface{}) mcp.CallToolRequest {
	return mcp.CallToolRequest{
		Params: mcp.CallToolParams{
			Name:      name,
			Arguments: args,
		},
	}
}

// textPayload decodes the JSON text content of a tool result
func textPayload(t *testing.T, result *mcp.CallToolResult) map[string]interface{} {
	t.Helper()
	require.NotEmpty(t, result.Content)

	text, ok := mcp.AsTextContent(result.Content[0])
	require.True(t, ok, "first content item should be text")

	var payload map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(text.Text), &payload))
	return payload
}

func TestHandleSearchFiles(t *testing.T) {
	s := newTestServer(t)
	root := buildProject(t)

	result, err := s.handleSearchFiles(context.Background(), callRequest("search_files", map[string]interface{}{
		"path":  root,
		"query": "server",
	}))
	require.NoError(t, err)

	payload := textPayload(t, result)
	assert.Equal(t, "server", payload["query"])
	assert.Greater(t, payload["total"], float64(0))
}

func TestHandleSearchFilesGlob(t *testing.T) {
	s := newTestServer(t)
	root := buildProject(t)

	result, err := s.handleSearchFiles(context.Background(), callRequest("search_files", map[string]interface{}{
		"path":     root,
		"query":    "any",
		"strategy": "glob",
		"glob":     "**/*.go",
	}))
	require.NoError(t, err)

	payload := textPayload(t, result)
	assert.Equal(t, float64(2), payload["total"])
}

func TestHandleSearchFilesValidation(t *testing.T) {
	s := newTestServer(t)
	root := buildProject(t)

	tests := []struct {
		name string
		args map[string]interface{}
	}{
		{"missing path", map[string]interface{}{"query": "q"}},
		{"missing query", map[string]interface{}{"path": root}},
		{"relative path", map[string]interface{}{"path": "relative/dir", "query": "q"}},
		{"bad strategy", map[string]interface{}{"path": root, "query": "q", "strategy": "semantic"}},
		{"bad max_results", map[string]interface{}{"path": root, "query": "q", "max_results": float64(0)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := s.handleSearchFiles(context.Background(), callRequest("search_files", tt.args))
			require.Error(t, err)

			var mcpErr *MCPError
			require.ErrorAs(t, err, &mcpErr)
		})
	}
}

func TestHandleCacheStats(t *testing.T) {
	s := newTestServer(t)
	root := buildProject(t)

	// Populate the cache through a search
	_, err := s.handleSearchFiles(context.Background(), callRequest("search_files", map[string]interface{}{
		"path":  root,
		"query": "server",
	}))
	require.NoError(t, err)

	result, err := s.handleCacheStats(context.Background(), callRequest("cache_stats", nil))
	require.NoError(t, err)

	payload := textPayload(t, result)
	assert.Equal(t, float64(1), payload["total_entries"])
}

func TestHandleClearCache(t *testing.T) {
	s := newTestServer(t)
	root := buildProject(t)

	_, err := s.handleSearchFiles(context.Background(), callRequest("search_files", map[string]interface{}{
		"path":  root,
		"query": "server",
	}))
	require.NoError(t, err)

	result, err := s.handleClearCache(context.Background(), callRequest("clear_cache", map[string]interface{}{}))
	require.NoError(t, err)

	payload := textPayload(t, result)
	assert.Equal(t, true, payload["cleared"])
	assert.Equal(t, float64(0), payload["remaining_entries"])
}

func TestHandleClearCacheScoped(t *testing.T) {
	s := newTestServer(t)
	rootA := buildProject(t)
	rootB := buildProject(t)

	for _, root := range []string{rootA, rootB} {
		_, err := s.handleSearchFiles(context.Background(), callRequest("search_files", map[string]interface{}{
			"path":  root,
			"query": "server",
		}))
		require.NoError(t, err)
	}
	require.Equal(t, 2, s.cache.Stats().TotalEntries)

	_, err := s.handleClearCache(context.Background(), callRequest("clear_cache", map[string]interface{}{
		"path": rootA,
	}))
	require.NoError(t, err)

	assert.Equal(t, 1, s.cache.Stats().TotalEntries)
}

func TestMCPErrorFormatting(t *testing.T) {
	err := newMCPError(ErrorCodeInvalidParams, "bad input", nil)
	assert.Contains(t, err.Error(), "-32602")
	assert.Contains(t, err.Error(), "bad input")
}
