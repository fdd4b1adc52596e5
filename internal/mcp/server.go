// Package mcp assembles the FinaShopping MCP server: catalog tools, read-only
// resources, and instruction prompts over stdio or streamable HTTP.
package mcp

import (
	"context"

	"github.com/mark3labs/mcp-go/server"
	"go.uber.org/zap"

	"finashopping-mcp/internal/backend"
)

const (
	// ServerName and ServerVersion identify this server to MCP clients and
	// on the HTTP liveness endpoint.
	ServerName    = "finashopping-mcp"
	ServerVersion = "0.1.0"
)

// Server wires the product catalog onto an MCP server instance.
type Server struct {
	mcpServer *server.MCPServer
	backend   *backend.Client
	logger    *zap.Logger
	locale    string
}

// NewServer builds the MCP server and registers all tools, resources, and
// prompts. locale selects the prompt template language.
func NewServer(client *backend.Client, locale string, logger *zap.Logger) *Server {
	mcpServer := server.NewMCPServer(
		ServerName,
		ServerVersion,
		server.WithToolCapabilities(true),
		server.WithResourceCapabilities(true, true),
		server.WithPromptCapabilities(true),
		server.WithRecovery(),
	)

	s := &Server{
		mcpServer: mcpServer,
		backend:   client,
		logger:    logger,
		locale:    locale,
	}

	s.setupTools()
	s.setupResources()
	s.setupPrompts()

	return s
}

// StartStdio serves the MCP protocol over stdin/stdout until the transport
// closes. Log output stays on stderr.
func (s *Server) StartStdio(ctx context.Context) error {
	s.logger.Info("starting MCP server on stdio transport")
	return server.ServeStdio(s.mcpServer)
}
