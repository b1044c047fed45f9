package acl

import (
	"context"
	"log/slog"
	"net/url"
	"strings"

	"github.com/jsamuelsen/daily-quote/internal/adapters/clients"
	"github.com/jsamuelsen/daily-quote/internal/domain"
	"github.com/jsamuelsen/daily-quote/internal/platform/logging"
)

const defaultRandomPath = "/random"

// QuoteClientConfig contains configuration for the quote client.
type QuoteClientConfig struct {
	// Client is the HTTP client to use for requests.
	// The client's BaseURL should be set to the quote API endpoint.
	Client *clients.Client

	// Path is the random-quote endpoint, "/random" when empty.
	Path string

	// Tags restricts the random quote to any of these tags.
	// Sent as a single pipe-separated tags parameter; omitted when empty.
	Tags []string

	Logger *slog.Logger
}

// QuoteClient implements ports.QuoteClient against the quotable.io API.
type QuoteClient struct {
	BaseAdapter

	path   string
	query  url.Values
	logger *slog.Logger
}

// NewQuoteClient creates a new quote client adapter.
// Panics if Client is nil. Defaults logger to slog.Default() if nil.
func NewQuoteClient(cfg QuoteClientConfig) *QuoteClient {
	if cfg.Client == nil {
		panic("QuoteClient: Client is required")
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	path := cfg.Path
	if path == "" {
		path = defaultRandomPath
	}

	var query url.Values
	if len(cfg.Tags) > 0 {
		query = url.Values{"tags": {strings.Join(cfg.Tags, "|")}}
	}

	return &QuoteClient{
		BaseAdapter: NewBaseAdapter(cfg.Client, cfg.Client.Name()),
		path:        path,
		query:       query,
		logger:      logger,
	}
}

// quotableResponse is the external DTO; it never leaves this package.
type quotableResponse struct {
	ID      string   `json:"_id"`
	Content string   `json:"content"`
	Author  string   `json:"author"`
	Tags    []string `json:"tags"`
}

// GetRandomQuote fetches a random quote from the external API.
// Implements ports.QuoteClient.
func (c *QuoteClient) GetRandomQuote(ctx context.Context) (domain.Quote, error) {
	c.logger.Log(ctx, logging.LevelTrace, "starting request",
		slog.String("path", c.path),
		slog.String("tags", c.query.Get("tags")))

	body, err := c.Get(ctx, c.path, c.query, "get random quote")
	if err != nil {
		c.logger.DebugContext(ctx, "quote request failed", slog.Any("error", err))
		return domain.Quote{}, err
	}

	ext, err := DecodeResponse[quotableResponse](body)
	if err != nil {
		return domain.Quote{}, domain.NewValidationError("body", err.Error())
	}

	quote, err := translateQuote(ext)
	if err != nil {
		return domain.Quote{}, err
	}

	c.logger.Log(ctx, logging.LevelTrace, "translated external DTO to domain",
		slog.String("quote_id", ext.ID),
		slog.String("author", quote.Author))

	return quote, nil
}

// translateQuote validates the external payload and converts it, keeping the
// fields as sent. A blank author becomes domain.DefaultAuthor; blank content
// is rejected.
func translateQuote(ext *quotableResponse) (domain.Quote, error) {
	if err := ValidateRequired(ext.Content, "content"); err != nil {
		return domain.Quote{}, err
	}

	return domain.NewQuote(ext.Content, ext.Author), nil
}

// Name implements ports.HealthChecker.
func (c *QuoteClient) Name() string {
	return c.ServiceName()
}

// Check implements ports.HealthChecker by reporting the circuit state.
func (c *QuoteClient) Check(ctx context.Context) error {
	return c.client.Check(ctx)
}
