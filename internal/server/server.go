// Package server exposes the document editing operations as Model Context
// Protocol tools over stdio.
package server

import (
	"context"
	"sync"

	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"
	"github.com/mj1618/zommation/internal/edit"
	"github.com/mj1618/zommation/internal/logging"
)

// Config holds MCP server configuration.
type Config struct {
	// DocumentPath is the profile file every tool loads and saves.
	DocumentPath string
	Defaults     edit.Defaults
	Version      string
}

// Server wraps the MCP server. Tool calls are serialised so that each
// load-apply-save cycle sees the result of the previous one.
type Server struct {
	cfg      Config
	mu       sync.Mutex
	mcp      *mcpserver.MCPServer
	handlers map[string]mcpserver.ToolHandlerFunc
}

// New creates an MCP server with all document tools registered.
func New(cfg Config) *Server {
	if cfg.Version == "" {
		cfg.Version = "dev"
	}
	s := &Server{
		cfg:      cfg,
		handlers: make(map[string]mcpserver.ToolHandlerFunc),
	}
	s.mcp = mcpserver.NewMCPServer(
		"zommation",
		cfg.Version,
		mcpserver.WithToolCapabilities(false),
	)
	s.registerTools()
	return s
}

// ServeStdio serves MCP requests on stdin/stdout until the client disconnects.
func (s *Server) ServeStdio() error {
	logging.WithField("document", s.cfg.DocumentPath).Info("serving MCP on stdio")
	return mcpserver.ServeStdio(s.mcp)
}

// ToolNames lists the registered tools.
func (s *Server) ToolNames() []string {
	names := make([]string, 0, len(s.handlers))
	for name := range s.handlers {
		names = append(names, name)
	}
	return names
}

// Call invokes a registered tool directly, bypassing the transport.
func (s *Server) Call(ctx context.Context, name string, args map[string]interface{}) (*mcp.CallToolResult, error) {
	h, ok := s.handlers[name]
	if !ok {
		return mcp.NewToolResultError("unknown tool " + name), nil
	}
	req := mcp.CallToolRequest{}
	req.Params.Name = name
	req.Params.Arguments = args
	return h(ctx, req)
}

func (s *Server) addTool(tool mcp.Tool, h mcpserver.ToolHandlerFunc) {
	s.handlers[tool.Name] = h
	s.mcp.AddTool(tool, h)
}
