package tools

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/lite-lake/cloudflare-mcp/internal/shape"
)

type PurgeCacheInput struct {
	ZoneID string `json:"zoneId" jsonschema:"the zone to purge"`
}

func (s *Server) registerZoneTools() {
	addTool(s, &mcp.Tool{
		Name:        "listZones",
		Description: "List all Cloudflare zones on the account.",
	}, s.listZones)
	addTool(s, &mcp.Tool{
		Name:        "purgeCache",
		Description: "Purge everything from a zone's cache.",
	}, s.purgeCache)
}

func (s *Server) listZones(ctx context.Context, req *mcp.CallToolRequest, in struct{}) (*mcp.CallToolResult, any, error) {
	zones, err := s.api.ListZones(ctx)
	if err != nil {
		return nil, nil, err
	}
	return textResult(shape.FormatZoneList(zones)), nil, nil
}

func (s *Server) purgeCache(ctx context.Context, req *mcp.CallToolRequest, in PurgeCacheInput) (*mcp.CallToolResult, any, error) {
	resp, err := s.api.PurgeCache(ctx, in.ZoneID)
	if err != nil {
		return nil, nil, err
	}
	return nil, resp, nil
}
