package tools

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/lite-lake/cloudflare-mcp/internal/shape"
	"github.com/lite-lake/cloudflare-mcp/internal/upstream"
)

type CreateDNSRecordInput struct {
	ZoneID  string  `json:"zoneId"`
	Name    string  `json:"name"`
	Content string  `json:"content"`
	Type    string  `json:"type" jsonschema:"one of A, CNAME, MX, TXT"`
	Comment *string `json:"comment,omitempty"`
	Proxied *bool   `json:"proxied,omitempty"`
}

type EditDNSRecordInput struct {
	ZoneID   string  `json:"zoneId"`
	RecordID string  `json:"recordId"`
	Content  string  `json:"content"`
	Type     string  `json:"type" jsonschema:"one of A, CNAME, MX, TXT"`
	Comment  *string `json:"comment,omitempty"`
	Proxied  *bool   `json:"proxied,omitempty"`
}

type DeleteDNSRecordInput struct {
	ZoneID   string `json:"zoneId"`
	RecordID string `json:"recordId"`
}

type ListDNSRecordsInput struct {
	ZoneID string `json:"zoneId"`
}

func (s *Server) registerDNSTools() {
	addTool(s, &mcp.Tool{
		Name:        "createDNSRecord",
		Description: "Create a DNS record in a zone.",
	}, s.createDNSRecord)
	addTool(s, &mcp.Tool{
		Name:        "editDNSRecord",
		Description: "Edit an existing DNS record.",
	}, s.editDNSRecord)
	addTool(s, &mcp.Tool{
		Name:        "deleteDNSRecord",
		Description: "Delete a DNS record from a zone.",
	}, s.deleteDNSRecord)
	addTool(s, &mcp.Tool{
		Name:        "listDNSRecords",
		Description: "List the DNS records in a zone.",
	}, s.listDNSRecords)
}

func (s *Server) createDNSRecord(ctx context.Context, req *mcp.CallToolRequest, in CreateDNSRecordInput) (*mcp.CallToolResult, any, error) {
	if err := shape.ValidateRecordType(in.Type); err != nil {
		return nil, nil, err
	}
	record, err := s.api.CreateDNSRecord(ctx, in.ZoneID, upstream.RecordChange{
		Name:    in.Name,
		Content: in.Content,
		Type:    in.Type,
		Comment: in.Comment,
		Proxied: in.Proxied,
	})
	if err != nil {
		return nil, nil, err
	}
	return nil, record, nil
}

func (s *Server) editDNSRecord(ctx context.Context, req *mcp.CallToolRequest, in EditDNSRecordInput) (*mcp.CallToolResult, any, error) {
	if err := shape.ValidateRecordType(in.Type); err != nil {
		return nil, nil, err
	}
	record, err := s.api.EditDNSRecord(ctx, in.ZoneID, in.RecordID, upstream.RecordChange{
		Content: in.Content,
		Type:    in.Type,
		Comment: in.Comment,
		Proxied: in.Proxied,
	})
	if err != nil {
		return nil, nil, err
	}
	return nil, record, nil
}

func (s *Server) deleteDNSRecord(ctx context.Context, req *mcp.CallToolRequest, in DeleteDNSRecordInput) (*mcp.CallToolResult, any, error) {
	resp, err := s.api.DeleteDNSRecord(ctx, in.ZoneID, in.RecordID)
	if err != nil {
		return nil, nil, err
	}
	return nil, resp, nil
}

func (s *Server) listDNSRecords(ctx context.Context, req *mcp.CallToolRequest, in ListDNSRecordsInput) (*mcp.CallToolResult, any, error) {
	records, err := s.api.ListDNSRecords(ctx, in.ZoneID)
	if err != nil {
		return nil, nil, err
	}
	return nil, records, nil
}
