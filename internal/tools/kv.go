package tools

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/lite-lake/cloudflare-mcp/internal/shape"
	"github.com/lite-lake/cloudflare-mcp/internal/upstream"
)

type CreateKVNamespaceInput struct {
	AccountID string `json:"accountId"`
	Title     string `json:"title"`
}

type UpdateKVNamespaceInput struct {
	AccountID   string `json:"accountId"`
	NamespaceID string `json:"namespaceId"`
	Title       string `json:"title"`
}

type KVNamespaceInput struct {
	AccountID   string `json:"accountId"`
	NamespaceID string `json:"namespaceId"`
}

type ListKVNamespacesInput struct {
	AccountID string  `json:"accountId"`
	Order     *string `json:"order,omitempty" jsonschema:"sort field, id or title"`
	Direction *string `json:"direction,omitempty" jsonschema:"asc or desc"`
}

type ListKVKeysInput struct {
	AccountID   string  `json:"accountId"`
	NamespaceID string  `json:"namespaceId"`
	Prefix      *string `json:"prefix,omitempty"`
	Cursor      *string `json:"cursor,omitempty"`
	Limit       *int64  `json:"limit,omitempty"`
}

type KVKeyInput struct {
	AccountID   string `json:"accountId"`
	NamespaceID string `json:"namespaceId"`
	KeyName     string `json:"keyName"`
}

type UpdateKVValueInput struct {
	AccountID     string         `json:"accountId"`
	NamespaceID   string         `json:"namespaceId"`
	KeyName       string         `json:"keyName"`
	Value         string         `json:"value"`
	Metadata      map[string]any `json:"metadata,omitempty"`
	Expiration    *int64         `json:"expiration,omitempty" jsonschema:"absolute expiration, seconds since epoch"`
	ExpirationTTL *int64         `json:"expirationTtl,omitempty" jsonschema:"relative expiration in seconds"`
}

type BulkDeleteKVKeysInput struct {
	AccountID   string   `json:"accountId"`
	NamespaceID string   `json:"namespaceId"`
	Keys        []string `json:"keys"`
}

type BulkUpdateKVKeysInput struct {
	AccountID   string          `json:"accountId"`
	NamespaceID string          `json:"namespaceId"`
	KeyValues   []shape.KVEntry `json:"keyValues"`
}

func (s *Server) registerKVTools() {
	addTool(s, &mcp.Tool{
		Name:        "createKVNamespace",
		Description: "Create a KV namespace.",
	}, s.createKVNamespace)
	addTool(s, &mcp.Tool{
		Name:        "updateKVNamespace",
		Description: "Rename a KV namespace.",
	}, s.updateKVNamespace)
	addTool(s, &mcp.Tool{
		Name:        "deleteKVNamespace",
		Description: "Delete a KV namespace.",
	}, s.deleteKVNamespace)
	addTool(s, &mcp.Tool{
		Name:        "getKVNamespace",
		Description: "Get a KV namespace by id.",
	}, s.getKVNamespace)
	addTool(s, &mcp.Tool{
		Name:        "listKVNamespaces",
		Description: "List the KV namespaces on the account.",
	}, s.listKVNamespaces)
	addTool(s, &mcp.Tool{
		Name:        "listKVKeys",
		Description: "List keys in a KV namespace. Pass the returned cursor to fetch the next page.",
	}, s.listKVKeys)
	addTool(s, &mcp.Tool{
		Name:        "getKVKeyMetadata",
		Description: "Get the metadata of a KV key.",
	}, s.getKVKeyMetadata)
	addTool(s, &mcp.Tool{
		Name:        "getKVValue",
		Description: "Get the value of a KV key.",
	}, s.getKVValue)
	addTool(s, &mcp.Tool{
		Name:        "updateKVValue",
		Description: "Write a value (and optional metadata/expiration) to a KV key.",
	}, s.updateKVValue)
	addTool(s, &mcp.Tool{
		Name:        "deleteKVValue",
		Description: "Delete a KV key and its value.",
	}, s.deleteKVValue)
	addTool(s, &mcp.Tool{
		Name:        "bulkDeleteKVKeys",
		Description: "Delete many KV keys in one request.",
	}, s.bulkDeleteKVKeys)
	addTool(s, &mcp.Tool{
		Name:        "bulkUpdateKVKeys",
		Description: "Write many KV key/value entries in one request.",
	}, s.bulkUpdateKVKeys)
}

func (s *Server) createKVNamespace(ctx context.Context, req *mcp.CallToolRequest, in CreateKVNamespaceInput) (*mcp.CallToolResult, any, error) {
	resp, err := s.api.CreateNamespace(ctx, in.AccountID, in.Title)
	if err != nil {
		return nil, nil, err
	}
	return nil, resp, nil
}

func (s *Server) updateKVNamespace(ctx context.Context, req *mcp.CallToolRequest, in UpdateKVNamespaceInput) (*mcp.CallToolResult, any, error) {
	resp, err := s.api.UpdateNamespace(ctx, in.AccountID, in.NamespaceID, in.Title)
	if err != nil {
		return nil, nil, err
	}
	return nil, resp, nil
}

func (s *Server) deleteKVNamespace(ctx context.Context, req *mcp.CallToolRequest, in KVNamespaceInput) (*mcp.CallToolResult, any, error) {
	resp, err := s.api.DeleteNamespace(ctx, in.AccountID, in.NamespaceID)
	if err != nil {
		return nil, nil, err
	}
	return nil, resp, nil
}

func (s *Server) getKVNamespace(ctx context.Context, req *mcp.CallToolRequest, in KVNamespaceInput) (*mcp.CallToolResult, any, error) {
	resp, err := s.api.GetNamespace(ctx, in.AccountID, in.NamespaceID)
	if err != nil {
		return nil, nil, err
	}
	return nil, resp, nil
}

func (s *Server) listKVNamespaces(ctx context.Context, req *mcp.CallToolRequest, in ListKVNamespacesInput) (*mcp.CallToolResult, any, error) {
	resp, err := s.api.ListNamespaces(ctx, in.AccountID, upstream.NamespaceListOptions{
		Order:     deref(in.Order),
		Direction: deref(in.Direction),
	})
	if err != nil {
		return nil, nil, err
	}
	return nil, resp, nil
}

func (s *Server) listKVKeys(ctx context.Context, req *mcp.CallToolRequest, in ListKVKeysInput) (*mcp.CallToolResult, any, error) {
	resp, err := s.api.ListKeys(ctx, in.AccountID, in.NamespaceID, upstream.KeyListOptions{
		Prefix: deref(in.Prefix),
		Cursor: deref(in.Cursor),
		Limit:  in.Limit,
	})
	if err != nil {
		return nil, nil, err
	}
	return nil, resp, nil
}

func (s *Server) getKVKeyMetadata(ctx context.Context, req *mcp.CallToolRequest, in KVKeyInput) (*mcp.CallToolResult, any, error) {
	resp, err := s.api.GetKeyMetadata(ctx, in.AccountID, in.NamespaceID, in.KeyName)
	if err != nil {
		return nil, nil, err
	}
	return nil, resp, nil
}

func (s *Server) getKVValue(ctx context.Context, req *mcp.CallToolRequest, in KVKeyInput) (*mcp.CallToolResult, any, error) {
	resp, err := s.api.GetValue(ctx, in.AccountID, in.NamespaceID, in.KeyName)
	if err != nil {
		return nil, nil, err
	}
	return nil, resp, nil
}

func (s *Server) updateKVValue(ctx context.Context, req *mcp.CallToolRequest, in UpdateKVValueInput) (*mcp.CallToolResult, any, error) {
	resp, err := s.api.UpdateValue(ctx, in.AccountID, in.NamespaceID, in.KeyName, upstream.ValueWrite{
		Value:         in.Value,
		Metadata:      in.Metadata,
		Expiration:    in.Expiration,
		ExpirationTTL: in.ExpirationTTL,
	})
	if err != nil {
		return nil, nil, err
	}
	return nil, resp, nil
}

func (s *Server) deleteKVValue(ctx context.Context, req *mcp.CallToolRequest, in KVKeyInput) (*mcp.CallToolResult, any, error) {
	resp, err := s.api.DeleteValue(ctx, in.AccountID, in.NamespaceID, in.KeyName)
	if err != nil {
		return nil, nil, err
	}
	return nil, resp, nil
}

func (s *Server) bulkDeleteKVKeys(ctx context.Context, req *mcp.CallToolRequest, in BulkDeleteKVKeysInput) (*mcp.CallToolResult, any, error) {
	if err := shape.ValidateKeys(in.Keys); err != nil {
		return nil, nil, err
	}
	resp, err := s.api.BulkDeleteKeys(ctx, in.AccountID, in.NamespaceID, in.Keys)
	if err != nil {
		return nil, nil, err
	}
	return nil, resp, nil
}

func (s *Server) bulkUpdateKVKeys(ctx context.Context, req *mcp.CallToolRequest, in BulkUpdateKVKeysInput) (*mcp.CallToolResult, any, error) {
	if err := shape.ValidateKVEntries(in.KeyValues); err != nil {
		return nil, nil, err
	}
	resp, err := s.api.BulkUpdateKeys(ctx, in.AccountID, in.NamespaceID, in.KeyValues)
	if err != nil {
		return nil, nil, err
	}
	return nil, resp, nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
