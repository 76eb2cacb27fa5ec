package main

import (
	"context"
	"log/slog"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	httpadapter "github.com/jsamuelsen/quotesync/internal/adapters/http"
	"github.com/jsamuelsen/quotesync/internal/adapters/http/handlers"
)

func newServeCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:     "serve",
		Short:   "Start the HTTP server and the periodic sync",
		GroupID: "server",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServe(cmd.Context(), opts)
		},
	}
}

// runServe runs until ctx is cancelled or the server fails.
func runServe(ctx context.Context, opts *options) error {
	rt, err := bootstrap(ctx, opts, nil)
	if err != nil {
		return err
	}
	defer rt.close(ctx)

	server := httpadapter.New(&rt.cfg.Server, rt.logger)

	httpadapter.SetupRouter(server.Engine(), httpadapter.RouterConfig{
		ServiceName: rt.cfg.App.Name,
		Health:      handlers.NewHealthHandler(rt.health, handlers.NewBuildInfo(Version, Commit, BuildTime), rt.metrics),
		Quotes:      handlers.NewQuoteHandler(rt.quotes),
		Sync:        handlers.NewSyncHandler(rt.scheduler, rt.reconciler, rt.status),
		Transfer:    handlers.NewTransferHandler(rt.transfer),
		Display:     handlers.NewDisplayHandler(rt.board),
		Timeout:     httpadapter.DefaultRequestTimeout,
	})

	rt.logger.InfoContext(ctx, "starting quotesync",
		slog.String("version", Version),
		slog.String("commit", Commit),
		slog.String("build_time", BuildTime),
		slog.String("profile", opts.profile),
		slog.String("policy", string(rt.reconciler.Policy())),
		slog.Bool("sync_enabled", rt.cfg.Sync.Enabled),
	)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return server.Run(gctx)
	})

	if rt.cfg.Sync.Enabled {
		g.Go(func() error {
			return rt.scheduler.Start(gctx)
		})
	}

	return g.Wait()
}
