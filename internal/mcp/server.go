package mcp

import (
	"github.com/mark3labs/mcp-go/server"

	"github.com/partchat/partchat/internal/catalog"
)

// Version is set via ldflags at build time.
var Version = "dev"

// Server wraps an MCP server that exposes the part catalog tools.
type Server struct {
	catalog *catalog.Catalog
	mcp     *server.MCPServer
}

// NewServer creates a new MCP server backed by the given catalog.
func NewServer(cat *catalog.Catalog) *Server {
	s := &Server{catalog: cat}

	s.mcp = server.NewMCPServer(
		"partchat",
		Version,
		server.WithToolCapabilities(false),
	)

	s.registerTools()

	return s
}

// registerTools adds all tool definitions and their handlers to the MCP server.
func (s *Server) registerTools() {
	s.mcp.AddTool(searchPartsTool, s.handleSearchParts)
	s.mcp.AddTool(getInstallationGuideTool, s.handleGetInstallationGuide)
	s.mcp.AddTool(checkCompatibilityTool, s.handleCheckCompatibility)
	s.mcp.AddTool(findPartsBySymptomTool, s.handleFindPartsBySymptom)
}

// Serve starts the MCP server on stdio. Stdout is used for MCP protocol
// messages; all logging must go to stderr.
func (s *Server) Serve() error {
	return server.ServeStdio(s.mcp)
}
