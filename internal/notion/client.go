package notion

import (
	"context"
	"log/slog"
	"net/http"

	gnt "github.com/dstotijn/go-notion"

	"github.com/avitalloeb-maker/notion-job-sync/internal/config"
)

// Client wraps the Notion API with the retrying transport and the four
// target database IDs.
type Client struct {
	api *gnt.Client
	dbs config.Databases
	log *slog.Logger
}

// Option customizes a Client.
type Option func(*options)

type options struct {
	transport http.RoundTripper
}

// WithTransport replaces the underlying round tripper. Tests use this to
// stub out the Notion API.
func WithTransport(rt http.RoundTripper) Option {
	return func(o *options) { o.transport = rt }
}

func New(cfg *config.Config, log *slog.Logger, opts ...Option) *Client {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	httpClient := newHTTPClient(log, o.transport)
	return &Client{
		api: gnt.NewClient(cfg.Notion.Token, gnt.WithHTTPClient(httpClient)),
		dbs: cfg.Notion.Databases,
		log: log,
	}
}

// Ping issues a minimal query against the applications database to check
// that the token and database are reachable.
func (c *Client) Ping(ctx context.Context) error {
	_, err := c.api.QueryDatabase(ctx, c.dbs.Applications, &gnt.DatabaseQuery{
		PageSize: 1,
	})
	return err
}
