package mcp

import (
	"context"

	"github.com/mark3labs/mcp-go/server"
	"go.uber.org/zap"

	"github.com/dshills/filesearch-mcp/internal/cache"
	"github.com/dshills/filesearch-mcp/internal/config"
	"github.com/dshills/filesearch-mcp/internal/searcher"
	"github.com/dshills/filesearch-mcp/internal/walker"
)

const (
	// ServerName is the MCP server name
	ServerName = "filesearch-mcp"
	// ServerVersion is the current server version
	ServerVersion = "1.0.0"
)

// Server wraps the MCP server with application dependencies.
type Server struct {
	mcp      *server.MCPServer
	cache    *cache.Manager
	searcher *searcher.Searcher
	cfg      config.Config
	log      *zap.Logger
}

// NewServer creates a new MCP server instance. The cache manager is
// constructed here and shared by every tool invocation; searches only
// benefit from caching because they all go through this one instance.
func NewServer(cfg config.Config, log *zap.Logger) (*Server, error) {
	if log == nil {
		log = zap.NewNop()
	}

	cacheMgr := cache.NewManager(cfg.CacheManagerConfig())
	srch := searcher.New(cacheMgr, walker.New(), log)

	mcpServer := server.NewMCPServer(
		ServerName,
		ServerVersion,
	)

	s := &Server{
		mcp:      mcpServer,
		cache:    cacheMgr,
		searcher: srch,
		cfg:      cfg,
		log:      log,
	}

	s.registerTools()

	return s, nil
}

// Serve starts the MCP server on stdio and blocks until shutdown.
func (s *Server) Serve(ctx context.Context) error {
	return server.ServeStdio(s.mcp)
}

// registerTools registers all MCP tools.
func (s *Server) registerTools() {
	s.mcp.AddTool(searchFilesTool(), s.handleSearchFiles)
	s.mcp.AddTool(cacheStatsTool(), s.handleCacheStats)
	s.mcp.AddTool(clearCacheTool(), s.handleClearCache)
}
