package upstream

import (
	"github.com/cloudflare/cloudflare-go/v4"
	"github.com/cloudflare/cloudflare-go/v4/option"

	"github.com/lite-lake/cloudflare-mcp/internal/config"
)

// Client wraps the Cloudflare SDK client. Every method is a single
// upstream dispatch; errors come back from the SDK unmodified apart from
// call-site context. No retries, no caching, no state.
type Client struct {
	cf *cloudflare.Client
}

func NewClient(creds config.Credentials, extra ...option.RequestOption) *Client {
	var opts []option.RequestOption
	if creds.APIToken != "" {
		opts = append(opts, option.WithAPIToken(creds.APIToken))
	} else {
		opts = append(opts,
			option.WithAPIKey(creds.APIKey),
			option.WithAPIEmail(creds.Email),
		)
	}
	opts = append(opts, extra...)
	return &Client{cf: cloudflare.NewClient(opts...)}
}
