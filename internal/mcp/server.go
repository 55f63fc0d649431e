// ABOUTME: MCP server implementation for gamedex
// ABOUTME: Provides tools, resources, and prompts for AI agents to browse and play games

package mcp

import (
	"github.com/mark3labs/mcp-go/server"

	"github.com/harper/gamedex/internal/catalog"
	"github.com/harper/gamedex/internal/userdata"
	"github.com/harper/gamedex/internal/views"
)

// Server wraps the MCP server with gamedex-specific context
type Server struct {
	mcpServer *server.MCPServer
	catalog   *catalog.Store
	selector  *views.Selector
	tracker   *userdata.Tracker
}

// NewServer creates a new MCP server instance
func NewServer(cat *catalog.Store, selector *views.Selector, tracker *userdata.Tracker) *Server {
	s := &Server{
		catalog:  cat,
		selector: selector,
		tracker:  tracker,
	}

	s.mcpServer = server.NewMCPServer(
		"gamedex",
		"1.0.0",
		server.WithToolCapabilities(true),
		server.WithResourceCapabilities(true, false),
		server.WithPromptCapabilities(true),
	)

	s.registerTools()
	s.registerResources()
	s.registerPrompts()

	return s
}

// ServeStdio starts the MCP server on stdio
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcpServer)
}

// registerTools is implemented in tools.go
// registerResources is implemented in resources.go
// registerPrompts is implemented in prompts.go
