package tools

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/lite-lake/cloudflare-mcp/internal/shape"
)

type CreateHyperdriveConfigInput struct {
	AccountID                   string  `json:"accountId"`
	Name                        string  `json:"name"`
	OriginType                  string  `json:"originType" jsonschema:"standard or access"`
	Database                    string  `json:"database"`
	Host                        string  `json:"host"`
	Password                    string  `json:"password"`
	Port                        int64   `json:"port"`
	Scheme                      string  `json:"scheme"`
	User                        string  `json:"user"`
	AccessClientID              *string `json:"accessClientId,omitempty"`
	AccessClientSecret          *string `json:"accessClientSecret,omitempty"`
	CachingDisabled             *bool   `json:"cachingDisabled,omitempty"`
	CachingMaxAge               *int64  `json:"cachingMaxAge,omitempty"`
	CachingStaleWhileRevalidate *int64  `json:"cachingStaleWhileRevalidate,omitempty"`
}

type EditHyperdriveConfigInput struct {
	AccountID                   string  `json:"accountId"`
	HyperdriveID                string  `json:"hyperdriveId"`
	Name                        *string `json:"name,omitempty"`
	CachingDisabled             *bool   `json:"cachingDisabled,omitempty"`
	CachingMaxAge               *int64  `json:"cachingMaxAge,omitempty"`
	CachingStaleWhileRevalidate *int64  `json:"cachingStaleWhileRevalidate,omitempty"`
}

type HyperdriveConfigInput struct {
	AccountID    string `json:"accountId"`
	HyperdriveID string `json:"hyperdriveId"`
}

type ListHyperdriveConfigsInput struct {
	AccountID string `json:"accountId"`
}

func (s *Server) registerHyperdriveTools() {
	addTool(s, &mcp.Tool{
		Name:        "createHyperdriveConfig",
		Description: "Create a Hyperdrive configuration with a standard or Access-protected origin.",
	}, s.createHyperdriveConfig)
	addTool(s, &mcp.Tool{
		Name:        "editHyperdriveConfig",
		Description: "Edit a Hyperdrive configuration's name or caching settings.",
	}, s.editHyperdriveConfig)
	addTool(s, &mcp.Tool{
		Name:        "getHyperdriveConfig",
		Description: "Get a Hyperdrive configuration by id.",
	}, s.getHyperdriveConfig)
	addTool(s, &mcp.Tool{
		Name:        "deleteHyperdriveConfig",
		Description: "Delete a Hyperdrive configuration.",
	}, s.deleteHyperdriveConfig)
	addTool(s, &mcp.Tool{
		Name:        "listHyperdriveConfigs",
		Description: "List the Hyperdrive configurations on the account.",
	}, s.listHyperdriveConfigs)
}

func (s *Server) createHyperdriveConfig(ctx context.Context, req *mcp.CallToolRequest, in CreateHyperdriveConfigInput) (*mcp.CallToolResult, any, error) {
	origin := shape.BuildOrigin(shape.OriginInput{
		OriginType:         in.OriginType,
		Host:               in.Host,
		Database:           in.Database,
		User:               in.User,
		Password:           in.Password,
		Scheme:             in.Scheme,
		Port:               in.Port,
		AccessClientID:     deref(in.AccessClientID),
		AccessClientSecret: deref(in.AccessClientSecret),
	})
	caching := shape.BuildCaching(in.CachingDisabled, in.CachingMaxAge, in.CachingStaleWhileRevalidate)
	resp, err := s.api.CreateHyperdriveConfig(ctx, in.AccountID, in.Name, origin, caching)
	if err != nil {
		return nil, nil, err
	}
	return nil, resp, nil
}

func (s *Server) editHyperdriveConfig(ctx context.Context, req *mcp.CallToolRequest, in EditHyperdriveConfigInput) (*mcp.CallToolResult, any, error) {
	caching := shape.BuildCaching(in.CachingDisabled, in.CachingMaxAge, in.CachingStaleWhileRevalidate)
	resp, err := s.api.EditHyperdriveConfig(ctx, in.AccountID, in.HyperdriveID, in.Name, caching)
	if err != nil {
		return nil, nil, err
	}
	return nil, resp, nil
}

func (s *Server) getHyperdriveConfig(ctx context.Context, req *mcp.CallToolRequest, in HyperdriveConfigInput) (*mcp.CallToolResult, any, error) {
	resp, err := s.api.GetHyperdriveConfig(ctx, in.AccountID, in.HyperdriveID)
	if err != nil {
		return nil, nil, err
	}
	return nil, resp, nil
}

func (s *Server) deleteHyperdriveConfig(ctx context.Context, req *mcp.CallToolRequest, in HyperdriveConfigInput) (*mcp.CallToolResult, any, error) {
	resp, err := s.api.DeleteHyperdriveConfig(ctx, in.AccountID, in.HyperdriveID)
	if err != nil {
		return nil, nil, err
	}
	return nil, resp, nil
}

func (s *Server) listHyperdriveConfigs(ctx context.Context, req *mcp.CallToolRequest, in ListHyperdriveConfigsInput) (*mcp.CallToolResult, any, error) {
	resp, err := s.api.ListHyperdriveConfigs(ctx, in.AccountID)
	if err != nil {
		return nil, nil, err
	}
	return nil, resp, nil
}
