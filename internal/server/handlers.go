package server

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"
	"github.com/mj1618/zommation/internal/edit"
	"github.com/mj1618/zommation/internal/export"
	"github.com/mj1618/zommation/internal/logging"
	"github.com/mj1618/zommation/internal/model"
	"github.com/mj1618/zommation/internal/output"
	"github.com/mj1618/zommation/internal/profile"
)

// resultToText serializes a tool result to YAML for the MCP response.
func resultToText(v interface{}) string {
	text, err := output.MarshalYAML(v)
	if err != nil {
		return fmt.Sprintf("error: %v", err)
	}
	return text
}

// editHandler returns a handler that loads the document, applies step with
// the tool arguments, and saves it. Nothing is written when the step fails.
func (s *Server) editHandler(step string) mcpserver.ToolHandlerFunc {
	return func(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		params := request.GetArguments()

		s.mu.Lock()
		defer s.mu.Unlock()

		doc, err := profile.LoadOrNew(s.cfg.DocumentPath)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		result, err := edit.Apply(doc, step, params, s.cfg.Defaults)
		if err != nil {
			logging.WithField("tool", step).Debug(err.Error())
			return mcp.NewToolResultError(resultToText(result)), nil
		}
		if err := profile.Save(s.cfg.DocumentPath, doc); err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		logging.WithField("tool", step).Debug("applied")
		return mcp.NewToolResultText(resultToText(result)), nil
	}
}

func (s *Server) handleGetDocument(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	doc, err := s.load()
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(resultToText(edit.Summarize(doc))), nil
}

func (s *Server) handleExportLua(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	doc, err := s.load()
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return s.exportResult(request, []byte(export.ToLua(doc)))
}

func (s *Server) handleExportJSON(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	doc, err := s.load()
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	data, err := export.ToJSON(doc)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return s.exportResult(request, data)
}

func (s *Server) exportResult(request mcp.CallToolRequest, data []byte) (*mcp.CallToolResult, error) {
	if path := edit.StringParam(request.GetArguments(), "output", ""); path != "" {
		if err := output.WriteFileAtomic(path, data, 0o644); err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
	}
	return mcp.NewToolResultText(string(data)), nil
}

func (s *Server) load() (*model.Document, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return profile.LoadOrNew(s.cfg.DocumentPath)
}
