package acl

import (
	"context"
	"io"
	"log/slog"
	"net/http"

	"github.com/jsamuelsen/quotesync/internal/adapters/clients"
	"github.com/jsamuelsen/quotesync/internal/domain"
	"github.com/jsamuelsen/quotesync/internal/platform/logging"
)

const (
	opFetch = "fetch quotes"
	opPush  = "push quote"
	opCheck = "health check"
)

// RemoteClientConfig contains configuration for the remote client.
type RemoteClientConfig struct {
	// Client must have its BaseURL set to the post collection endpoint.
	Client *clients.Client
	Logger *slog.Logger
}

// RemoteClient reads and writes the remote copy of the quote collection.
type RemoteClient struct {
	client *clients.Client
	name   string
	logger *slog.Logger
}

// NewRemoteClient creates a remote client. It panics if Client is nil.
func NewRemoteClient(cfg RemoteClientConfig) *RemoteClient {
	if cfg.Client == nil {
		panic("RemoteClient: Client is required")
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &RemoteClient{
		client: cfg.Client,
		name:   cfg.Client.ServiceName(),
		logger: logger.With(slog.String("component", "acl.RemoteClient")),
	}
}

// FetchRemote GETs the whole collection. Records that cannot become quotes
// are skipped; anything else going wrong is a domain.NetworkError.
func (c *RemoteClient) FetchRemote(ctx context.Context) (domain.QuoteSet, error) {
	c.logger.Log(ctx, logging.LevelTrace, "starting request", slog.String("op", opFetch))

	resp, err := c.client.Get(ctx, "")
	if err != nil {
		return nil, MapHTTPError(nil, err, c.name, opFetch)
	}
	defer func() { _ = resp.Body.Close() }()

	if err := MapHTTPError(resp, nil, c.name, opFetch); err != nil {
		return nil, err
	}

	posts, err := DecodeResponse[[]postDTO](resp.Body)
	if err != nil {
		return nil, decodeError(c.name, opFetch, err)
	}

	quotes := TranslatePosts(posts)

	c.logger.DebugContext(ctx, "fetched remote quotes",
		slog.Int("records", len(posts)),
		slog.Int("quotes", len(quotes)),
	)

	return quotes, nil
}

// PushRemote POSTs one quote. Any non-2xx response is a domain.NetworkError.
func (c *RemoteClient) PushRemote(ctx context.Context, quote domain.Quote) error {
	c.logger.Log(ctx, logging.LevelTrace, "starting request",
		slog.String("op", opPush),
		slog.String("category", quote.Category),
	)

	resp, err := c.client.PostJSON(ctx, "", toPost(quote))
	if err != nil {
		return MapHTTPError(nil, err, c.name, opPush)
	}

	defer func() {
		_, _ = io.Copy(io.Discard, resp.Body)
		_ = resp.Body.Close()
	}()

	return MapHTTPError(resp, nil, c.name, opPush)
}

// Name implements ports.HealthChecker.
func (c *RemoteClient) Name() string {
	return "remote"
}

// Check implements ports.HealthChecker. It reports the breaker state
// without calling the remote when the circuit is open.
func (c *RemoteClient) Check(ctx context.Context) error {
	if c.client.CircuitState() == clients.StateOpen {
		return MapHTTPError(nil, clients.ErrCircuitOpen, c.name, opCheck)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodHead, c.client.URL(), http.NoBody)
	if err != nil {
		return err
	}

	resp, err := c.client.Do(ctx, req)
	if err != nil {
		return MapHTTPError(nil, err, c.name, opCheck)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode >= http.StatusInternalServerError {
		return MapHTTPError(resp, nil, c.name, opCheck)
	}

	return nil
}
