package upstream

import (
	"context"
	"fmt"

	"github.com/cloudflare/cloudflare-go/v4"
	"github.com/cloudflare/cloudflare-go/v4/hyperdrive"

	"github.com/lite-lake/cloudflare-mcp/internal/shape"
)

func newOriginParam(origin shape.Origin) hyperdrive.HyperdriveOriginParam {
	param := hyperdrive.HyperdriveOriginParam{
		Database: cloudflare.F(origin.Database),
		Host:     cloudflare.F(origin.Host),
		Password: cloudflare.F(origin.Password),
		Scheme:   cloudflare.F(hyperdrive.HyperdriveOriginScheme(origin.Scheme)),
		User:     cloudflare.F(origin.User),
	}
	switch origin.Kind {
	case shape.OriginKindAccess:
		param.AccessClientID = cloudflare.F(origin.AccessClientID)
		param.AccessClientSecret = cloudflare.F(origin.AccessClientSecret)
	default:
		param.Port = cloudflare.F(origin.Port)
	}
	return param
}

func newCachingParam(caching *shape.CachingPolicy) (hyperdrive.HyperdriveCachingParam, bool) {
	if caching == nil {
		return hyperdrive.HyperdriveCachingParam{}, false
	}
	param := hyperdrive.HyperdriveCachingParam{}
	if caching.Disabled != nil {
		param.Disabled = cloudflare.F(*caching.Disabled)
	}
	if caching.MaxAge != nil {
		param.MaxAge = cloudflare.F(*caching.MaxAge)
	}
	if caching.StaleWhileRevalidate != nil {
		param.StaleWhileRevalidate = cloudflare.F(*caching.StaleWhileRevalidate)
	}
	return param, true
}

func (c *Client) CreateHyperdriveConfig(ctx context.Context, accountID, name string, origin shape.Origin, caching *shape.CachingPolicy) (*hyperdrive.Hyperdrive, error) {
	params := hyperdrive.ConfigNewParams{
		AccountID: cloudflare.F(accountID),
		Hyperdrive: hyperdrive.HyperdriveParam{
			Name:   cloudflare.F(name),
			Origin: cloudflare.F[hyperdrive.HyperdriveOriginUnionParam](newOriginParam(origin)),
		},
	}
	if cachingParam, ok := newCachingParam(caching); ok {
		params.Hyperdrive.Caching = cloudflare.F[hyperdrive.HyperdriveCachingUnionParam](cachingParam)
	}
	resp, err := c.cf.Hyperdrive.Configs.New(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("failed to create hyperdrive config: %w", err)
	}
	return resp, nil
}

func (c *Client) EditHyperdriveConfig(ctx context.Context, accountID, hyperdriveID string, name *string, caching *shape.CachingPolicy) (*hyperdrive.Hyperdrive, error) {
	params := hyperdrive.ConfigEditParams{
		AccountID: cloudflare.F(accountID),
	}
	if name != nil {
		params.Name = cloudflare.F(*name)
	}
	if caching != nil {
		cachingParam := hyperdrive.ConfigEditParamsCaching{}
		if caching.Disabled != nil {
			cachingParam.Disabled = cloudflare.F(*caching.Disabled)
		}
		if caching.MaxAge != nil {
			cachingParam.MaxAge = cloudflare.F(*caching.MaxAge)
		}
		if caching.StaleWhileRevalidate != nil {
			cachingParam.StaleWhileRevalidate = cloudflare.F(*caching.StaleWhileRevalidate)
		}
		params.Caching = cloudflare.F[hyperdrive.ConfigEditParamsCachingUnion](cachingParam)
	}
	resp, err := c.cf.Hyperdrive.Configs.Edit(ctx, hyperdriveID, params)
	if err != nil {
		return nil, fmt.Errorf("failed to edit hyperdrive config: %w", err)
	}
	return resp, nil
}

func (c *Client) GetHyperdriveConfig(ctx context.Context, accountID, hyperdriveID string) (*hyperdrive.Hyperdrive, error) {
	resp, err := c.cf.Hyperdrive.Configs.Get(ctx, hyperdriveID, hyperdrive.ConfigGetParams{
		AccountID: cloudflare.F(accountID),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get hyperdrive config: %w", err)
	}
	return resp, nil
}

func (c *Client) DeleteHyperdriveConfig(ctx context.Context, accountID, hyperdriveID string) (any, error) {
	resp, err := c.cf.Hyperdrive.Configs.Delete(ctx, hyperdriveID, hyperdrive.ConfigDeleteParams{
		AccountID: cloudflare.F(accountID),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to delete hyperdrive config: %w", err)
	}
	return resp, nil
}

func (c *Client) ListHyperdriveConfigs(ctx context.Context, accountID string) ([]hyperdrive.Hyperdrive, error) {
	resp, err := c.cf.Hyperdrive.Configs.List(ctx, hyperdrive.ConfigListParams{
		AccountID: cloudflare.F(accountID),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list hyperdrive configs: %w", err)
	}
	return resp.Result, nil
}
