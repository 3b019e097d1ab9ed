package upstream

import (
	"context"
	"fmt"

	"github.com/cloudflare/cloudflare-go/v4"
	"github.com/cloudflare/cloudflare-go/v4/queues"

	"github.com/lite-lake/cloudflare-mcp/internal/shape"
)

// PullOptions forwards the optional pull tuning knobs.
type PullOptions struct {
	BatchSize           *int64
	VisibilityTimeoutMs *int64
}

func (c *Client) CreateQueue(ctx context.Context, accountID, queueName string) (*queues.Queue, error) {
	resp, err := c.cf.Queues.New(ctx, queues.QueueNewParams{
		AccountID: cloudflare.F(accountID),
		QueueName: cloudflare.F(queueName),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create queue: %w", err)
	}
	return resp, nil
}

func (c *Client) GetQueue(ctx context.Context, accountID, queueID string) (*queues.Queue, error) {
	resp, err := c.cf.Queues.Get(ctx, queueID, queues.QueueGetParams{
		AccountID: cloudflare.F(accountID),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get queue: %w", err)
	}
	return resp, nil
}

func (c *Client) ListQueues(ctx context.Context, accountID string) ([]queues.Queue, error) {
	resp, err := c.cf.Queues.List(ctx, queues.QueueListParams{
		AccountID: cloudflare.F(accountID),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list queues: %w", err)
	}
	return resp.Result, nil
}

func (c *Client) DeleteQueue(ctx context.Context, accountID, queueID string) (any, error) {
	resp, err := c.cf.Queues.Delete(ctx, queueID, queues.QueueDeleteParams{
		AccountID: cloudflare.F(accountID),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to delete queue: %w", err)
	}
	return resp, nil
}

// AckMessages releases or retries leased messages in one request. The
// retry list is left out of the request body entirely when empty.
func (c *Client) AckMessages(ctx context.Context, accountID, queueID string, acks []shape.Ack, retries []shape.Retry) (*queues.MessageAckResponse, error) {
	params := queues.MessageAckParams{
		AccountID: cloudflare.F(accountID),
	}
	if len(acks) > 0 {
		ackParams := make([]queues.MessageAckParamsAck, 0, len(acks))
		for _, a := range acks {
			ackParams = append(ackParams, queues.MessageAckParamsAck{
				LeaseID: cloudflare.F(a.LeaseID),
			})
		}
		params.Acks = cloudflare.F(ackParams)
	}
	if len(retries) > 0 {
		retryParams := make([]queues.MessageAckParamsRetry, 0, len(retries))
		for _, r := range retries {
			retry := queues.MessageAckParamsRetry{
				LeaseID: cloudflare.F(r.LeaseID),
			}
			if r.DelaySeconds != nil {
				retry.DelaySeconds = cloudflare.F(float64(*r.DelaySeconds))
			}
			retryParams = append(retryParams, retry)
		}
		params.Retries = cloudflare.F(retryParams)
	}
	resp, err := c.cf.Queues.Messages.Ack(ctx, queueID, params)
	if err != nil {
		return nil, fmt.Errorf("failed to acknowledge messages: %w", err)
	}
	return resp, nil
}

func (c *Client) PullMessages(ctx context.Context, accountID, queueID string, opts PullOptions) (any, error) {
	params := queues.MessagePullParams{
		AccountID: cloudflare.F(accountID),
	}
	if opts.BatchSize != nil {
		params.BatchSize = cloudflare.F(float64(*opts.BatchSize))
	}
	if opts.VisibilityTimeoutMs != nil {
		params.VisibilityTimeoutMs = cloudflare.F(float64(*opts.VisibilityTimeoutMs))
	}
	resp, err := c.cf.Queues.Messages.Pull(ctx, queueID, params)
	if err != nil {
		return nil, fmt.Errorf("failed to pull messages: %w", err)
	}
	return resp, nil
}
