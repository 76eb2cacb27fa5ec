package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/jsamuelsen/quotesync/internal/adapters/clients"
	"github.com/jsamuelsen/quotesync/internal/adapters/clients/acl"
	"github.com/jsamuelsen/quotesync/internal/adapters/display"
	"github.com/jsamuelsen/quotesync/internal/adapters/storage/boltkv"
	"github.com/jsamuelsen/quotesync/internal/adapters/storage/memory"
	"github.com/jsamuelsen/quotesync/internal/app"
	"github.com/jsamuelsen/quotesync/internal/app/reconcile"
	"github.com/jsamuelsen/quotesync/internal/domain"
	"github.com/jsamuelsen/quotesync/internal/platform/config"
	"github.com/jsamuelsen/quotesync/internal/platform/logging"
	"github.com/jsamuelsen/quotesync/internal/platform/telemetry"
	"github.com/jsamuelsen/quotesync/internal/ports"
)

// runtime is the wired application shared by every command.
type runtime struct {
	cfg    *config.Config
	logger *slog.Logger

	board    *display.Board
	remote   *acl.RemoteClient
	quotes   *app.QuoteService
	transfer *app.TransferService

	status     *reconcile.StatusBoard
	reconciler *reconcile.Reconciler
	scheduler  *reconcile.Scheduler

	health  *ports.DefaultHealthRegistry
	metrics *prometheus.Registry

	closers []func(context.Context) error
}

// bootstrap loads configuration and wires every component. Frames are kept
// on the board and, when out is non-nil, also drawn to out.
func bootstrap(ctx context.Context, opts *options, out io.Writer) (_ *runtime, err error) {
	cfg, err := config.Load(opts.profile)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	logger := logging.NewWithWriter(&logging.Config{
		Level:   cfg.Log.Level,
		Format:  cfg.Log.Format,
		Service: cfg.App.Name,
		Version: Version,
		File: logging.FileConfig{
			Enabled:    cfg.Log.File.Enabled,
			Path:       cfg.Log.File.Path,
			MaxSizeMB:  cfg.Log.File.MaxSizeMB,
			MaxBackups: cfg.Log.File.MaxBackups,
			MaxAgeDays: cfg.Log.File.MaxAgeDays,
			Compress:   cfg.Log.File.Compress,
		},
	}, os.Stderr)
	logging.SetDefault(logger)

	rt := &runtime{
		cfg:    cfg,
		logger: logger,
		board:  display.NewBoard(),
		health: ports.NewHealthRegistry(ports.WithCheckTimeout(cfg.Client.Timeout)),
	}

	defer func() {
		if err != nil {
			rt.close(ctx)
		}
	}()

	tel, err := telemetry.New(ctx, &telemetry.Config{
		Enabled:      cfg.Telemetry.Enabled,
		Endpoint:     cfg.Telemetry.Endpoint,
		ServiceName:  cfg.Telemetry.ServiceName,
		Version:      Version,
		Environment:  cfg.App.Environment,
		SamplingRate: cfg.Telemetry.SamplingRate,
	})
	if err != nil {
		return nil, fmt.Errorf("initializing telemetry: %w", err)
	}

	rt.closers = append(rt.closers, tel.Shutdown)

	kv, err := rt.openStorage()
	if err != nil {
		return nil, err
	}

	httpClient, err := clients.New(&clients.Config{
		BaseURL:     cfg.Remote.URL,
		ServiceName: cfg.Remote.Name,
		Timeout:     cfg.Client.Timeout,
		Retry:       cfg.Client.Retry,
		Circuit:     cfg.Client.CircuitBreaker,
		Transport:   cfg.Client.Transport,
		UserAgent:   cfg.App.Name + "/" + Version,
		Logger:      logger,
	})
	if err != nil {
		return nil, fmt.Errorf("creating HTTP client: %w", err)
	}

	rt.remote = acl.NewRemoteClient(acl.RemoteClientConfig{
		Client: httpClient,
		Logger: logger,
	})

	if err := rt.health.Register(rt.remote); err != nil {
		return nil, fmt.Errorf("registering remote health check: %w", err)
	}

	var renderer ports.Renderer = rt.board
	if out != nil {
		styles := display.DefaultStyles()
		if opts.noColor {
			styles = display.PlainStyles()
		}

		renderer = display.Multi{rt.board, display.NewTerminal(out, styles)}
	}

	store := app.NewQuoteStore(app.QuoteStoreConfig{Storage: kv, Logger: logger})

	rt.quotes = app.NewQuoteService(app.QuoteServiceConfig{
		Store:    store,
		Filter:   app.NewFilterService(kv, store, logger),
		Sessions: memory.NewSessionStore(cfg.Session.MaxEntries, cfg.Session.TTL),
		Renderer: renderer,
		Logger:   logger,
	})

	rt.transfer = app.NewTransferService(app.TransferServiceConfig{
		Store:       store,
		Remote:      rt.remote,
		Concurrency: cfg.Sync.Concurrency,
		Logger:      logger,
	})

	rt.metrics = prometheus.NewRegistry()
	rt.metrics.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	rt.status = reconcile.NewStatusBoard(renderer, cfg.Sync.Window)
	rt.closers = append(rt.closers, func(context.Context) error {
		rt.status.Close()

		return nil
	})

	policy, err := domain.ParseSyncPolicy(cfg.Sync.Policy)
	if err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	rt.reconciler = reconcile.New(reconcile.Config{
		Store:       store,
		Remote:      rt.remote,
		Status:      rt.status,
		Policy:      policy,
		Concurrency: cfg.Sync.Concurrency,
		Metrics:     reconcile.NewMetrics(rt.metrics),
		Logger:      logger,
	})

	rt.scheduler = reconcile.NewScheduler(rt.reconciler, cfg.Sync.Interval, logger)

	rt.quotes.Start(ctx)

	return rt, nil
}

// openStorage opens the bbolt file, or in-memory storage when no path is
// configured.
func (rt *runtime) openStorage() (ports.KeyValueStore, error) {
	var (
		kv      ports.KeyValueStore
		checker ports.HealthChecker
	)

	if rt.cfg.Storage.Path == "" {
		mem := memory.New()
		kv, checker = mem, mem

		rt.logger.Warn("storage.path is empty, quotes will not survive a restart")
	} else {
		db, err := boltkv.Open(boltkv.Config{
			Path:        rt.cfg.Storage.Path,
			OpenTimeout: rt.cfg.Storage.Timeout,
		})
		if err != nil {
			return nil, fmt.Errorf("opening storage: %w", err)
		}

		kv, checker = db, db
		rt.closers = append(rt.closers, func(context.Context) error { return db.Close() })
	}

	if err := rt.health.Register(checker); err != nil {
		return nil, fmt.Errorf("registering storage health check: %w", err)
	}

	return kv, nil
}

// close releases resources in reverse order of acquisition.
func (rt *runtime) close(ctx context.Context) {
	var errs []error

	for i := len(rt.closers) - 1; i >= 0; i-- {
		if err := rt.closers[i](context.WithoutCancel(ctx)); err != nil {
			errs = append(errs, err)
		}
	}

	rt.closers = nil

	if err := errors.Join(errs...); err != nil {
		rt.logger.Error("shutdown error", slog.Any("error", err))
	}
}
