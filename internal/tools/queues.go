package tools

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/lite-lake/cloudflare-mcp/internal/shape"
	"github.com/lite-lake/cloudflare-mcp/internal/upstream"
)

type CreateQueueInput struct {
	AccountID string `json:"accountId"`
	QueueName string `json:"queueName"`
}

type QueueInput struct {
	AccountID string `json:"accountId"`
	QueueID   string `json:"queueId"`
}

type ListQueuesInput struct {
	AccountID string `json:"accountId"`
}

type AckQueueMessagesInput struct {
	AccountID string        `json:"accountId"`
	QueueID   string        `json:"queueId"`
	Acks      []shape.Ack   `json:"acks"`
	Retries   []shape.Retry `json:"retries,omitempty"`
}

type PullQueueMessagesInput struct {
	AccountID           string `json:"accountId"`
	QueueID             string `json:"queueId"`
	BatchSize           *int64 `json:"batchSize,omitempty"`
	VisibilityTimeoutMs *int64 `json:"visibilityTimeoutMs,omitempty"`
}

func (s *Server) registerQueueTools() {
	addTool(s, &mcp.Tool{
		Name:        "createQueue",
		Description: "Create a queue.",
	}, s.createQueue)
	addTool(s, &mcp.Tool{
		Name:        "getQueue",
		Description: "Get a queue by id.",
	}, s.getQueue)
	addTool(s, &mcp.Tool{
		Name:        "listQueues",
		Description: "List the queues on the account.",
	}, s.listQueues)
	addTool(s, &mcp.Tool{
		Name:        "deleteQueue",
		Description: "Delete a queue.",
	}, s.deleteQueue)
	addTool(s, &mcp.Tool{
		Name:        "acknowledgeQueueMessages",
		Description: "Acknowledge pulled messages by lease id, optionally retrying some with a delay.",
	}, s.acknowledgeQueueMessages)
	addTool(s, &mcp.Tool{
		Name:        "pullQueueMessages",
		Description: "Pull a batch of messages from a queue.",
	}, s.pullQueueMessages)
}

func (s *Server) createQueue(ctx context.Context, req *mcp.CallToolRequest, in CreateQueueInput) (*mcp.CallToolResult, any, error) {
	resp, err := s.api.CreateQueue(ctx, in.AccountID, in.QueueName)
	if err != nil {
		return nil, nil, err
	}
	return nil, resp, nil
}

func (s *Server) getQueue(ctx context.Context, req *mcp.CallToolRequest, in QueueInput) (*mcp.CallToolResult, any, error) {
	resp, err := s.api.GetQueue(ctx, in.AccountID, in.QueueID)
	if err != nil {
		return nil, nil, err
	}
	return nil, resp, nil
}

func (s *Server) listQueues(ctx context.Context, req *mcp.CallToolRequest, in ListQueuesInput) (*mcp.CallToolResult, any, error) {
	resp, err := s.api.ListQueues(ctx, in.AccountID)
	if err != nil {
		return nil, nil, err
	}
	return nil, resp, nil
}

func (s *Server) deleteQueue(ctx context.Context, req *mcp.CallToolRequest, in QueueInput) (*mcp.CallToolResult, any, error) {
	resp, err := s.api.DeleteQueue(ctx, in.AccountID, in.QueueID)
	if err != nil {
		return nil, nil, err
	}
	return nil, resp, nil
}

func (s *Server) acknowledgeQueueMessages(ctx context.Context, req *mcp.CallToolRequest, in AckQueueMessagesInput) (*mcp.CallToolResult, any, error) {
	if err := shape.ValidateAcks(in.Acks, in.Retries); err != nil {
		return nil, nil, err
	}
	resp, err := s.api.AckMessages(ctx, in.AccountID, in.QueueID, in.Acks, in.Retries)
	if err != nil {
		return nil, nil, err
	}
	return nil, resp, nil
}

func (s *Server) pullQueueMessages(ctx context.Context, req *mcp.CallToolRequest, in PullQueueMessagesInput) (*mcp.CallToolResult, any, error) {
	resp, err := s.api.PullMessages(ctx, in.AccountID, in.QueueID, upstream.PullOptions{
		BatchSize:           in.BatchSize,
		VisibilityTimeoutMs: in.VisibilityTimeoutMs,
	})
	if err != nil {
		return nil, nil, err
	}
	return nil, resp, nil
}
