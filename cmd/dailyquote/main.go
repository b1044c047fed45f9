// Package main is the dailyquote command: a terminal quote-of-the-day
// widget, one-shot show/refresh/copy/share commands and an HTTP server.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/jsamuelsen/daily-quote/internal/adapters/clients"
	"github.com/jsamuelsen/daily-quote/internal/adapters/clients/acl"
	"github.com/jsamuelsen/daily-quote/internal/adapters/desktop"
	"github.com/jsamuelsen/daily-quote/internal/adapters/http"
	"github.com/jsamuelsen/daily-quote/internal/adapters/http/handlers"
	"github.com/jsamuelsen/daily-quote/internal/adapters/store"
	"github.com/jsamuelsen/daily-quote/internal/adapters/tui"
	"github.com/jsamuelsen/daily-quote/internal/app"
	"github.com/jsamuelsen/daily-quote/internal/platform/config"
	"github.com/jsamuelsen/daily-quote/internal/platform/logging"
	"github.com/jsamuelsen/daily-quote/internal/platform/telemetry"
	"github.com/jsamuelsen/daily-quote/internal/ports"
)

// Build-time variables, injected via ldflags.
// Example: go build -ldflags "-X main.Version=1.0.0 -X main.Commit=$(git rev-parse HEAD)"
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildTime = "unknown"
)

const usage = `usage: dailyquote [flags] [command]

commands:
  tui      interactive widget (default)
  show     print today's quote
  refresh  fetch a new quote for today and print it
  copy     copy today's quote to the clipboard
  share    open the share link for today's quote
  serve    run the HTTP API

flags:
`

var errUnknownCommand = errors.New("unknown command")

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("dailyquote", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprint(stderr, usage)
		fs.PrintDefaults()
	}

	defaultProfile := os.Getenv("APP_ENVIRONMENT")
	if defaultProfile == "" {
		defaultProfile = "local"
	}

	profile := fs.String("profile", defaultProfile, "config profile (configs/<profile>.yaml)")
	pageURL := fs.String("page-url", "", "page URL attached to shares (overrides share.page_url)")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}

		return err
	}

	command := "tui"
	if fs.NArg() > 0 {
		command = fs.Arg(0)
	}

	if !knownCommand(command) {
		fs.Usage()
		return fmt.Errorf("%w %q", errUnknownCommand, command)
	}

	cfg, err := config.Load(*profile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	if *pageURL != "" {
		cfg.Share.PageURL = *pageURL
	}

	// The widget owns the terminal; one-shot output owns stdout.
	logOut := stderr
	switch command {
	case "tui":
		logOut = io.Discard
	case "serve":
		logOut = stdout
	}

	logger := logging.NewWithWriter(&logging.Config{
		Level:   cfg.Log.Level,
		Format:  cfg.Log.Format,
		Service: cfg.App.Name,
		Version: cfg.App.Version,
		File: logging.FileConfig{
			Enabled:    cfg.Log.File.Enabled,
			Path:       cfg.Log.File.Path,
			MaxSizeMB:  cfg.Log.File.MaxSizeMB,
			MaxBackups: cfg.Log.File.MaxBackups,
			MaxAgeDays: cfg.Log.File.MaxAgeDays,
			Compress:   cfg.Log.File.Compress,
		},
	}, logOut)
	logging.SetDefault(logger)

	logger.Debug("starting dailyquote",
		slog.String("command", command),
		slog.String("version", Version),
		slog.String("commit", Commit),
		slog.String("environment", cfg.App.Environment),
	)

	telProvider, err := telemetry.New(ctx, &telemetry.Config{
		Enabled:      cfg.Telemetry.Enabled,
		Endpoint:     cfg.Telemetry.Endpoint,
		ServiceName:  cfg.Telemetry.ServiceName,
		Version:      cfg.App.Version,
		Environment:  cfg.App.Environment,
		SamplingRate: cfg.Telemetry.SamplingRate,
	})
	if err != nil {
		return fmt.Errorf("initializing telemetry: %w", err)
	}

	defer func() {
		if shutdownErr := telProvider.Shutdown(context.WithoutCancel(ctx)); shutdownErr != nil {
			logger.Error("telemetry shutdown error", slog.Any("error", shutdownErr))
		}
	}()

	deps, err := wire(cfg, logger)
	if err != nil {
		return err
	}

	switch command {
	case "tui":
		return tui.Run(ctx, deps.provider, tui.Options{
			CopiedLabelDuration: cfg.Widget.CopiedLabelDuration,
		}, tea.WithAltScreen())
	case "serve":
		return serve(ctx, cfg, logger, deps)
	default:
		return oneShot(ctx, command, deps.provider, tui.NewPrinter(stdout))
	}
}

func knownCommand(c string) bool {
	switch c {
	case "tui", "show", "refresh", "copy", "share", "serve":
		return true
	default:
		return false
	}
}

type dependencies struct {
	provider *app.QuoteProvider
	health   *ports.DefaultHealthRegistry
}

// wire builds the quote provider and the health registry from cfg.
func wire(cfg *config.Config, logger *slog.Logger) (*dependencies, error) {
	httpClient, err := clients.New(&clients.Config{
		BaseURL:     cfg.Services.Quote.BaseURL,
		ServiceName: cfg.Services.Quote.Name,
		Timeout:     cfg.Client.Timeout,
		Retry:       cfg.Client.Retry,
		Circuit:     cfg.Client.CircuitBreaker,
		Transport:   cfg.Client.Transport,
		Logger:      logger,
	})
	if err != nil {
		return nil, fmt.Errorf("creating HTTP client: %w", err)
	}

	quoteClient := acl.NewQuoteClient(acl.QuoteClientConfig{
		Client: httpClient,
		Path:   cfg.Services.Quote.Path,
		Tags:   cfg.Services.Quote.Tags,
		Logger: logger,
	})

	quoteStore, err := store.New(cfg.Store)
	if err != nil {
		return nil, fmt.Errorf("creating quote store: %w", err)
	}

	registry := ports.NewHealthRegistry()
	for _, checker := range []ports.HealthChecker{quoteClient, quoteStore} {
		if err := registry.Register(checker); err != nil {
			return nil, fmt.Errorf("registering %s health check: %w", checker.Name(), err)
		}
	}

	provider := app.NewQuoteProvider(app.QuoteProviderConfig{
		Client:           quoteClient,
		Store:            quoteStore,
		Clipboard:        desktop.NewClipboard(),
		// No native share UI is built in; share always opens the intent URL.
		Sharer:           desktop.NewSharer(nil, desktop.NewOpener(), cfg.Share.IntentURL),
		FetchTimeout:     cfg.Provider.FetchTimeout,
		CancelSuperseded: cfg.Provider.CancelSuperseded,
		IntentURL:        cfg.Share.IntentURL,
		PageURL:          cfg.Share.PageURL,
		Metrics:          app.NewMetrics(prometheus.DefaultRegisterer),
		Logger:           logger,
	})

	return &dependencies{provider: provider, health: registry}, nil
}

// oneShot runs a single provider operation and prints the outcome.
func oneShot(ctx context.Context, command string, provider *app.QuoteProvider, out *tui.Printer) error {
	provider.SetDisplay(out)
	defer provider.SetDisplay(nil)

	res, err := provider.LoadQuote(ctx, command == "refresh")
	if err != nil {
		return fmt.Errorf("loading quote: %w", err)
	}

	switch command {
	case "copy":
		if !provider.CopyCurrent(ctx) {
			return errors.New("clipboard unavailable")
		}

		out.Println("copied to clipboard")
	case "share":
		provider.ShareCurrent(ctx)
		out.Println(provider.ShareURL(res.Quote))
	}

	return nil
}

func serve(ctx context.Context, cfg *config.Config, logger *slog.Logger, deps *dependencies) error {
	buildInfo := handlers.NewBuildInfo(Version, Commit, BuildTime)

	server := http.New(&cfg.Server, logger)
	http.SetupRouter(server.Engine(), http.RouterConfig{
		Logger:        logger,
		AppConfig:     &cfg.App,
		HealthHandler: handlers.NewHealthHandler(deps.health, buildInfo),
		QuoteHandler:  handlers.NewQuoteHandler(deps.provider, cfg.Share.PageURL),
		Timeout:       cfg.Server.RequestTimeout,
	})

	return server.Run(ctx)
}
