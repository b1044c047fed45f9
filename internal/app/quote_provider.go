// Package app contains application services that orchestrate use cases.
// This is the application layer: it coordinates domain logic and
// infrastructure through ports and knows nothing about HTTP or terminals.
package app

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"strings"
	"sync"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/singleflight"

	"github.com/jsamuelsen/daily-quote/internal/domain"
	"github.com/jsamuelsen/daily-quote/internal/platform/logging"
	"github.com/jsamuelsen/daily-quote/internal/platform/telemetry"
	"github.com/jsamuelsen/daily-quote/internal/ports"
)

// DefaultFetchTimeout bounds a single quote API fetch.
const DefaultFetchTimeout = 6 * time.Second

// ErrSuperseded is returned by a load whose fetch was cancelled because a
// newer load started. Only returned when CancelSuperseded is enabled.
var ErrSuperseded = errors.New("quote load superseded")

// QuoteProviderConfig contains the dependencies of a QuoteProvider.
// Client and Store are required; everything else is optional.
type QuoteProviderConfig struct {
	Client    ports.QuoteClient
	Store     ports.QuoteStore
	Display   ports.Display
	Clipboard ports.Clipboard
	Sharer    ports.Sharer

	// FetchTimeout bounds each network fetch. Defaults to DefaultFetchTimeout.
	FetchTimeout time.Duration

	// CancelSuperseded makes a new fetching load cancel the one in flight.
	// When false, overlapping loads race and the last to finish wins.
	CancelSuperseded bool

	// IntentURL is the social share endpoint, domain.DefaultIntentURL when empty.
	IntentURL string

	// PageURL is attached to shares when set.
	PageURL string

	Metrics *Metrics
	Logger  *slog.Logger

	// Now and Rand replace the wall clock and the fallback picker in tests.
	Now  func() time.Time
	Rand func(n int) int
}

// QuoteProvider resolves the quote of the day.
//
// A quote is looked up in the store under the key for the current local
// date. On a miss, or when a refresh is forced, it is fetched from the quote
// API; any fetch failure substitutes a random built-in fallback quote. The
// result is stored under the date key and rendered to the display.
type QuoteProvider struct {
	client    ports.QuoteClient
	store     ports.QuoteStore
	clipboard ports.Clipboard
	sharer    ports.Sharer

	fetchTimeout     time.Duration
	cancelSuperseded bool
	intentURL        string
	pageURL          string
	metrics          *Metrics
	logger           *slog.Logger
	now              func() time.Time
	intn             func(n int) int

	group singleflight.Group

	// mu guards the display and everything shown on it. Display methods are
	// called with mu held and must not call back into the provider.
	mu          sync.Mutex
	display     ports.Display
	current     domain.Quote
	hasCurrent  bool
	cancelFetch context.CancelCauseFunc
	fetchSeq    uint64
}

// NewQuoteProvider creates a quote provider.
// Panics if Client or Store is nil.
func NewQuoteProvider(cfg QuoteProviderConfig) *QuoteProvider {
	if cfg.Client == nil {
		panic("QuoteProvider: Client is required")
	}

	if cfg.Store == nil {
		panic("QuoteProvider: Store is required")
	}

	p := &QuoteProvider{
		client:           cfg.Client,
		store:            cfg.Store,
		clipboard:        cfg.Clipboard,
		sharer:           cfg.Sharer,
		display:          cfg.Display,
		fetchTimeout:     cfg.FetchTimeout,
		cancelSuperseded: cfg.CancelSuperseded,
		intentURL:        cfg.IntentURL,
		pageURL:          cfg.PageURL,
		metrics:          cfg.Metrics,
		logger:           cfg.Logger,
		now:              cfg.Now,
		intn:             cfg.Rand,
	}

	if p.fetchTimeout <= 0 {
		p.fetchTimeout = DefaultFetchTimeout
	}

	if p.intentURL == "" {
		p.intentURL = domain.DefaultIntentURL
	}

	if p.logger == nil {
		p.logger = slog.Default()
	}

	p.logger = p.logger.With(slog.String("component", "app.QuoteProvider"))

	if p.now == nil {
		p.now = time.Now
	}

	if p.intn == nil {
		p.intn = rand.IntN
	}

	return p
}

// SetDisplay replaces the display surface. Passing nil detaches it.
func (p *QuoteProvider) SetDisplay(d ports.Display) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.display = d
}

// LoadQuote resolves today's quote and renders it.
//
// Without forceNew a stored quote for today is rendered without touching the
// network, and concurrent loads for the same day share a single fetch. With
// forceNew the quote API is always called and the stored quote replaced.
//
// Fetch failures never surface here; they select a fallback quote and are
// reported in Result.FetchErr. An error is returned only when the store
// write fails, the caller's context ends, or the load was superseded.
func (p *QuoteProvider) LoadQuote(ctx context.Context, forceNew bool) (domain.Result, error) {
	ctx, span := telemetry.Tracer().Start(ctx, "QuoteProvider.LoadQuote",
		trace.WithAttributes(attribute.Bool("quote.force_new", forceNew)))
	defer span.End()

	key := domain.CacheKey(p.now())
	logger := logging.FromContextOr(ctx, p.logger).With(slog.String("key", key))

	var (
		res domain.Result
		err error
	)

	if forceNew {
		res, err = p.fetchAndStore(ctx, logger, key)
	} else {
		res, err = p.loadCached(ctx, logger, key)
	}

	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())

		return domain.Result{}, err
	}

	span.SetAttributes(attribute.String("quote.source", string(res.Source)))
	p.metrics.observeLoad(res.Source)
	p.render(res.Quote)

	logger.InfoContext(ctx, "quote loaded",
		slog.String("source", string(res.Source)),
		slog.String("author", res.Quote.Author),
	)

	return res, nil
}

func (p *QuoteProvider) loadCached(ctx context.Context, logger *slog.Logger, key string) (domain.Result, error) {
	if q, ok := p.lookup(ctx, logger, key); ok {
		return domain.Result{Quote: q, Source: domain.SourceCache, Key: key}, nil
	}

	// The shared load outlives any single caller; the fetch timeout bounds it.
	ch := p.group.DoChan(key, func() (any, error) {
		sharedCtx := context.WithoutCancel(ctx)

		// Another load may have stored today's quote since the lookup above.
		if q, ok := p.lookup(sharedCtx, logger, key); ok {
			return domain.Result{Quote: q, Source: domain.SourceCache, Key: key}, nil
		}

		return p.fetchAndStore(sharedCtx, logger, key)
	})

	select {
	case <-ctx.Done():
		return domain.Result{}, fmt.Errorf("loading quote: %w", ctx.Err())
	case r := <-ch:
		if err := ctx.Err(); err != nil {
			return domain.Result{}, fmt.Errorf("loading quote: %w", err)
		}

		if r.Err != nil {
			return domain.Result{}, r.Err
		}

		if r.Shared {
			logger.Log(ctx, logging.LevelTrace, "joined in-flight quote load")
		}

		res, _ := r.Val.(domain.Result)

		return res, nil
	}
}

// lookup returns the stored quote for key. Unreadable or undecodable
// entries are treated as a miss so the next fetch overwrites them.
func (p *QuoteProvider) lookup(ctx context.Context, logger *slog.Logger, key string) (domain.Quote, bool) {
	raw, err := p.store.Get(ctx, key)
	if err != nil {
		if !domain.IsNotFound(err) {
			logger.WarnContext(ctx, "reading cached quote failed", slog.Any("error", err))
		}

		return domain.Quote{}, false
	}

	var q domain.Quote
	if err := json.Unmarshal(raw, &q); err != nil {
		logger.WarnContext(ctx, "ignoring undecodable cached quote", slog.Any("error", err))
		return domain.Quote{}, false
	}

	if strings.TrimSpace(q.Content) == "" {
		logger.WarnContext(ctx, "ignoring cached quote without content")
		return domain.Quote{}, false
	}

	return domain.NewQuote(q.Content, q.Author), true
}

func (p *QuoteProvider) fetchAndStore(ctx context.Context, logger *slog.Logger, key string) (domain.Result, error) {
	fetchCtx, done := p.beginFetch(ctx)
	defer done()

	p.showLoading()

	q, fetchErr := p.fetch(fetchCtx)

	if errors.Is(context.Cause(fetchCtx), ErrSuperseded) {
		logger.DebugContext(ctx, "quote load superseded by a newer load")
		return domain.Result{}, ErrSuperseded
	}

	source := domain.SourceNetwork

	if fetchErr != nil {
		if err := ctx.Err(); err != nil {
			return domain.Result{}, fmt.Errorf("loading quote: %w", err)
		}

		q = domain.RandomFallback(p.intn)
		source = domain.SourceFallback

		logger.WarnContext(ctx, "quote fetch failed, using fallback",
			slog.Any("error", fetchErr),
			slog.String("author", q.Author),
		)
	}

	value, err := json.Marshal(q)
	if err != nil {
		return domain.Result{}, fmt.Errorf("encoding quote: %w", err)
	}

	if err := p.store.Set(ctx, key, value); err != nil {
		return domain.Result{}, fmt.Errorf("storing quote %s: %w", key, err)
	}

	res := domain.Result{Quote: q, Source: source, Key: key}
	if source == domain.SourceFallback {
		res.FetchErr = fetchErr
	}

	return res, nil
}

// fetch calls the quote API under the fetch timeout. A quote without
// content counts as a failed fetch.
func (p *QuoteProvider) fetch(ctx context.Context) (domain.Quote, error) {
	ctx, cancel := context.WithTimeout(ctx, p.fetchTimeout)
	defer cancel()

	ctx, span := telemetry.Tracer().Start(ctx, "QuoteProvider.fetch")
	defer span.End()

	start := time.Now()
	q, err := p.client.GetRandomQuote(ctx)
	p.metrics.observeFetch(time.Since(start))

	if err == nil && strings.TrimSpace(q.Content) == "" {
		err = domain.NewValidationError("content", "is required")
	}

	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())

		return domain.Quote{}, fmt.Errorf("fetching quote: %w", err)
	}

	return domain.NewQuote(q.Content, q.Author), nil
}

// beginFetch registers a fetch. With CancelSuperseded the previous fetch is
// cancelled with ErrSuperseded as its cause. The returned func must be
// called when the fetch is over.
func (p *QuoteProvider) beginFetch(ctx context.Context) (context.Context, func()) {
	if !p.cancelSuperseded {
		return ctx, func() {}
	}

	fetchCtx, cancel := context.WithCancelCause(ctx)

	p.mu.Lock()
	if p.cancelFetch != nil {
		p.cancelFetch(ErrSuperseded)
	}

	p.fetchSeq++
	seq := p.fetchSeq
	p.cancelFetch = cancel
	p.mu.Unlock()

	return fetchCtx, func() {
		p.mu.Lock()
		if p.fetchSeq == seq {
			p.cancelFetch = nil
		}
		p.mu.Unlock()

		cancel(nil)
	}
}

func (p *QuoteProvider) showLoading() {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.hasCurrent = false

	if p.display != nil {
		p.display.ShowLoading()
	}
}

func (p *QuoteProvider) render(q domain.Quote) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.current = q
	p.hasCurrent = true

	if p.display != nil {
		p.display.Render(q)
	}
}

// Current returns the quote on display.
// ok is false before the first load and while a fetch is in progress.
func (p *QuoteProvider) Current() (q domain.Quote, ok bool) {
	p.mu.Lock()
	defer p.mu.Unlock()

	return p.current, p.hasCurrent
}

// CopyCurrent writes the displayed quote to the clipboard as
// `“content” — author`. It reports whether the write succeeded; failures,
// a missing clipboard and an empty display are silent no-ops.
func (p *QuoteProvider) CopyCurrent(ctx context.Context) bool {
	q, ok := p.Current()
	if !ok || p.clipboard == nil {
		return false
	}

	if err := p.clipboard.WriteText(ctx, q.Format()); err != nil {
		logging.FromContextOr(ctx, p.logger).DebugContext(ctx, "copy to clipboard failed",
			slog.Any("error", err))

		return false
	}

	return true
}

// ShareCurrent hands the displayed quote to the sharer. Never fails.
func (p *QuoteProvider) ShareCurrent(ctx context.Context) {
	q, ok := p.Current()
	if !ok || p.sharer == nil {
		return
	}

	p.sharer.Share(ctx, q.Format(), p.pageURL)
}

// ShareURL returns the social intent URL for q.
func (p *QuoteProvider) ShareURL(q domain.Quote) string {
	return p.ShareURLFor(q, p.pageURL)
}

// ShareURLFor is ShareURL with pageURL in place of the configured page URL.
func (p *QuoteProvider) ShareURLFor(q domain.Quote, pageURL string) string {
	return domain.IntentURL(p.intentURL, q.Format(), pageURL)
}
