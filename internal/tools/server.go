// Package tools exposes the Cloudflare API surface as MCP tools.
//
// Every tool is a single pass-through: shape the arguments, issue one
// upstream request, return the upstream result. Input schemas are
// inferred from the typed input structs, so malformed arguments are
// rejected by the SDK before a handler runs.
package tools

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/lite-lake/cloudflare-mcp/internal/logger"
	"github.com/lite-lake/cloudflare-mcp/internal/upstream"
)

type Server struct {
	api *upstream.Client
	mcp *mcp.Server
}

func NewServer(api *upstream.Client, version string) *Server {
	s := &Server{
		api: api,
		mcp: mcp.NewServer(&mcp.Implementation{
			Name:    "cloudflare-mcp",
			Version: version,
		}, nil),
	}
	s.registerZoneTools()
	s.registerDNSTools()
	s.registerKVTools()
	s.registerQueueTools()
	s.registerHyperdriveTools()
	return s
}

// Run serves MCP over stdio until the client disconnects or ctx is
// cancelled.
func (s *Server) Run(ctx context.Context) error {
	return s.mcp.Run(ctx, &mcp.StdioTransport{})
}

func textResult(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: text}},
	}
}

// addTool registers a tool with call logging around the handler.
func addTool[In, Out any](s *Server, tool *mcp.Tool, h mcp.ToolHandlerFor[In, Out]) {
	wrapped := func(ctx context.Context, req *mcp.CallToolRequest, in In) (*mcp.CallToolResult, Out, error) {
		logger.Debug("tool call", "tool", tool.Name)
		res, out, err := h(ctx, req, in)
		if err != nil {
			logger.Warn("tool call failed", "tool", tool.Name, "error", err)
		}
		return res, out, err
	}
	mcp.AddTool(s.mcp, tool, wrapped)
}
