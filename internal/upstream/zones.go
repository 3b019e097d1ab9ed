package upstream

import (
	"context"
	"fmt"

	"github.com/cloudflare/cloudflare-go/v4"
	"github.com/cloudflare/cloudflare-go/v4/cache"
	"github.com/cloudflare/cloudflare-go/v4/zones"

	"github.com/lite-lake/cloudflare-mcp/internal/shape"
)

// ListZones returns the first page of zones. One request per call;
// pagination is caller-driven.
func (c *Client) ListZones(ctx context.Context) ([]shape.ZoneSummary, error) {
	resp, err := c.cf.Zones.List(ctx, zones.ZoneListParams{})
	if err != nil {
		return nil, fmt.Errorf("failed to list zones: %w", err)
	}
	out := make([]shape.ZoneSummary, 0, len(resp.Result))
	for _, z := range resp.Result {
		out = append(out, shape.ZoneSummary{ID: z.ID, Name: z.Name})
	}
	return out, nil
}

// PurgeCache purges everything in the zone's cache.
func (c *Client) PurgeCache(ctx context.Context, zoneID string) (*cache.CachePurgeResponse, error) {
	resp, err := c.cf.Cache.Purge(ctx, cache.CachePurgeParams{
		ZoneID: cloudflare.F(zoneID),
		Body: cache.CachePurgeParamsBodyCachePurgeEverything{
			PurgeEverything: cloudflare.F(true),
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to purge cache: %w", err)
	}
	return resp, nil
}
