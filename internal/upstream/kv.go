package upstream

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/cloudflare/cloudflare-go/v4"
	"github.com/cloudflare/cloudflare-go/v4/kv"

	"github.com/lite-lake/cloudflare-mcp/internal/shape"
)

// NamespaceListOptions forwards the optional ordering of a namespace
// listing. Empty fields are left out of the request.
type NamespaceListOptions struct {
	Order     string
	Direction string
}

// KeyListOptions forwards caller-driven cursor pagination.
type KeyListOptions struct {
	Prefix string
	Cursor string
	Limit  *int64
}

// ValueWrite carries the optional fields of a single-key write.
type ValueWrite struct {
	Value         string
	Metadata      map[string]any
	Expiration    *int64
	ExpirationTTL *int64
}

func (c *Client) CreateNamespace(ctx context.Context, accountID, title string) (*kv.Namespace, error) {
	resp, err := c.cf.KV.Namespaces.New(ctx, kv.NamespaceNewParams{
		AccountID: cloudflare.F(accountID),
		Title:     cloudflare.F(title),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create namespace: %w", err)
	}
	return resp, nil
}

func (c *Client) UpdateNamespace(ctx context.Context, accountID, namespaceID, title string) (any, error) {
	resp, err := c.cf.KV.Namespaces.Update(ctx, namespaceID, kv.NamespaceUpdateParams{
		AccountID: cloudflare.F(accountID),
		Title:     cloudflare.F(title),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to update namespace: %w", err)
	}
	return resp, nil
}

func (c *Client) DeleteNamespace(ctx context.Context, accountID, namespaceID string) (any, error) {
	resp, err := c.cf.KV.Namespaces.Delete(ctx, namespaceID, kv.NamespaceDeleteParams{
		AccountID: cloudflare.F(accountID),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to delete namespace: %w", err)
	}
	return resp, nil
}

func (c *Client) GetNamespace(ctx context.Context, accountID, namespaceID string) (*kv.Namespace, error) {
	resp, err := c.cf.KV.Namespaces.Get(ctx, namespaceID, kv.NamespaceGetParams{
		AccountID: cloudflare.F(accountID),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get namespace: %w", err)
	}
	return resp, nil
}

// ListNamespaces returns the first page of namespaces.
func (c *Client) ListNamespaces(ctx context.Context, accountID string, opts NamespaceListOptions) ([]kv.Namespace, error) {
	params := kv.NamespaceListParams{
		AccountID: cloudflare.F(accountID),
	}
	if opts.Order != "" {
		params.Order = cloudflare.F(kv.NamespaceListParamsOrder(opts.Order))
	}
	if opts.Direction != "" {
		params.Direction = cloudflare.F(kv.NamespaceListParamsDirection(opts.Direction))
	}
	resp, err := c.cf.KV.Namespaces.List(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("failed to list namespaces: %w", err)
	}
	return resp.Result, nil
}

// ListKeys forwards the cursor verbatim; traversal stays caller-driven.
func (c *Client) ListKeys(ctx context.Context, accountID, namespaceID string, opts KeyListOptions) (any, error) {
	params := kv.NamespaceKeyListParams{
		AccountID: cloudflare.F(accountID),
	}
	if opts.Prefix != "" {
		params.Prefix = cloudflare.F(opts.Prefix)
	}
	if opts.Cursor != "" {
		params.Cursor = cloudflare.F(opts.Cursor)
	}
	if opts.Limit != nil {
		params.Limit = cloudflare.F(float64(*opts.Limit))
	}
	resp, err := c.cf.KV.Namespaces.Keys.List(ctx, namespaceID, params)
	if err != nil {
		return nil, fmt.Errorf("failed to list keys: %w", err)
	}
	return resp, nil
}

func (c *Client) GetKeyMetadata(ctx context.Context, accountID, namespaceID, keyName string) (any, error) {
	resp, err := c.cf.KV.Namespaces.Metadata.Get(ctx, namespaceID, keyName, kv.NamespaceMetadataGetParams{
		AccountID: cloudflare.F(accountID),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get key metadata: %w", err)
	}
	return resp, nil
}

func (c *Client) GetValue(ctx context.Context, accountID, namespaceID, keyName string) (any, error) {
	resp, err := c.cf.KV.Namespaces.Values.Get(ctx, namespaceID, keyName, kv.NamespaceValueGetParams{
		AccountID: cloudflare.F(accountID),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get value: %w", err)
	}
	return resp, nil
}

func (c *Client) UpdateValue(ctx context.Context, accountID, namespaceID, keyName string, write ValueWrite) (any, error) {
	params := kv.NamespaceValueUpdateParams{
		AccountID: cloudflare.F(accountID),
		Value:     cloudflare.F(write.Value),
	}
	if write.Metadata != nil {
		metadata, err := json.Marshal(write.Metadata)
		if err != nil {
			return nil, fmt.Errorf("failed to encode metadata: %w", err)
		}
		params.Metadata = cloudflare.F[any](string(metadata))
	}
	if write.Expiration != nil {
		params.Expiration = cloudflare.F(float64(*write.Expiration))
	}
	if write.ExpirationTTL != nil {
		params.ExpirationTTL = cloudflare.F(float64(*write.ExpirationTTL))
	}
	resp, err := c.cf.KV.Namespaces.Values.Update(ctx, namespaceID, keyName, params)
	if err != nil {
		return nil, fmt.Errorf("failed to update value: %w", err)
	}
	return resp, nil
}

func (c *Client) DeleteValue(ctx context.Context, accountID, namespaceID, keyName string) (any, error) {
	resp, err := c.cf.KV.Namespaces.Values.Delete(ctx, namespaceID, keyName, kv.NamespaceValueDeleteParams{
		AccountID: cloudflare.F(accountID),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to delete value: %w", err)
	}
	return resp, nil
}

func (c *Client) BulkDeleteKeys(ctx context.Context, accountID, namespaceID string, keys []string) (any, error) {
	resp, err := c.cf.KV.Namespaces.BulkDelete(ctx, namespaceID, kv.NamespaceBulkDeleteParams{
		AccountID: cloudflare.F(accountID),
		Body:      keys,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to bulk delete keys: %w", err)
	}
	return resp, nil
}

func (c *Client) BulkUpdateKeys(ctx context.Context, accountID, namespaceID string, entries []shape.KVEntry) (any, error) {
	body := make([]kv.NamespaceBulkUpdateParamsBody, 0, len(entries))
	for _, e := range entries {
		item := kv.NamespaceBulkUpdateParamsBody{
			Key:   cloudflare.F(e.Key),
			Value: cloudflare.F(e.Value),
		}
		if e.Expiration != nil {
			item.Expiration = cloudflare.F(float64(*e.Expiration))
		}
		if e.ExpirationTTL != nil {
			item.ExpirationTTL = cloudflare.F(float64(*e.ExpirationTTL))
		}
		if e.Base64 != nil {
			item.Base64 = cloudflare.F(*e.Base64)
		}
		if e.Metadata != nil {
			item.Metadata = cloudflare.F[any](e.Metadata)
		}
		body = append(body, item)
	}
	resp, err := c.cf.KV.Namespaces.BulkUpdate(ctx, namespaceID, kv.NamespaceBulkUpdateParams{
		AccountID: cloudflare.F(accountID),
		Body:      body,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to bulk update keys: %w", err)
	}
	return resp, nil
}
