package mcp

import (
	"github.com/mark3labs/mcp-go/server"

	"github.com/ziadkadry99/docshell/internal/navigation"
)

// Version is set via ldflags at build time.
var Version = "dev"

// Server wraps an MCP server that exposes the versioned navigation to agents.
type Server struct {
	resolver   *navigation.Resolver
	contentDir string
	include    []string
	exclude    []string
	mcp        *server.MCPServer
}

// NewServer creates a new MCP server with the given dependencies. Only pages
// matching include and not exclude are returned by get_page.
func NewServer(resolver *navigation.Resolver, contentDir string, include, exclude []string) *Server {
	s := &Server{
		resolver:   resolver,
		contentDir: contentDir,
		include:    include,
		exclude:    exclude,
	}

	s.mcp = server.NewMCPServer(
		"docshell",
		Version,
		server.WithToolCapabilities(false),
	)

	s.registerTools()

	return s
}

// registerTools adds all tool definitions and their handlers to the MCP server.
func (s *Server) registerTools() {
	s.mcp.AddTool(listVersionsTool, s.handleListVersions)
	s.mcp.AddTool(resolveVersionTool, s.handleResolveVersion)
	s.mcp.AddTool(getNavigationTool, s.handleGetNavigation)
	s.mcp.AddTool(getPageTool, s.handleGetPage)
}

// Serve starts the MCP server on stdio. Stdout is used for MCP protocol
// messages; all logging must go to stderr.
func (s *Server) Serve() error {
	return server.ServeStdio(s.mcp)
}
