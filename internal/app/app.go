// Package app wires the coordinator's components together: config, store,
// peer adapter, services, scheduler, and the optional peer server.
package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/linonetwo/tw-mobile-sync/internal/adapter"
	"github.com/linonetwo/tw-mobile-sync/internal/config"
	"github.com/linonetwo/tw-mobile-sync/internal/logger"
	"github.com/linonetwo/tw-mobile-sync/internal/scheduler"
	"github.com/linonetwo/tw-mobile-sync/internal/server"
	"github.com/linonetwo/tw-mobile-sync/internal/service"
	"github.com/linonetwo/tw-mobile-sync/internal/wikistore"
)

// App owns the process lifecycle: created at startup, torn down at
// shutdown.
type App struct {
	cfg   *config.StructuredConfig
	log   *logger.Logger
	db    *wikistore.DB
	sched *scheduler.Scheduler
	peer  *server.HTTPServer

	// Commands is where the host UI layer posts its events.
	Commands chan scheduler.Command
}

// New builds the full component graph from cfg.
func New(ctx context.Context, cfg *config.StructuredConfig, log *logger.Logger) (*App, error) {
	db, err := wikistore.Open(ctx, cfg.Storage.DB, log)
	if err != nil {
		return nil, fmt.Errorf("open document store: %w", err)
	}
	if err = db.Migrate(); err != nil {
		return nil, fmt.Errorf("migrate document store: %w", err)
	}

	store := wikistore.NewTiddlerRepository(db, log)
	registry := wikistore.NewServerRegistry(store, log)

	peers := adapter.NewHTTPPeerAdapter(adapter.HTTPClientConfig{
		AppName:       cfg.App.Name,
		StatusTimeout: cfg.Sync.StatusTimeout,
		SyncTimeout:   cfg.Sync.RequestTimeout,
	})

	services := service.NewServices(store, registry, peers, nil, cfg.Sync, log)
	sched := scheduler.New(registry, services, cfg.Sync.LoopInterval, log)

	a := &App{
		cfg:      cfg,
		log:      log,
		db:       db,
		sched:    sched,
		Commands: make(chan scheduler.Command, 16),
	}

	if cfg.Server.HTTPAddress != "" {
		handler := server.NewHandler(store, registry, services.Selector,
			cfg.App.WikiVersion, cfg.App.Name, log)
		a.peer = server.NewHTTPServer(cfg.Server.HTTPAddress, handler, log)
	}

	return a, nil
}

// Run starts everything and blocks until SIGINT/SIGTERM or ctx
// cancellation.
func (a *App) Run(ctx context.Context) error {
	ctx, cancel := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if a.peer != nil {
		go a.peer.Run()
	}

	a.sched.Start(ctx, false)
	go a.sched.Run(ctx, a.Commands)

	<-ctx.Done()
	a.log.Info().Msg("shutting down")

	a.sched.Stop()

	if a.peer != nil {
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer shutdownCancel()
		a.peer.Shutdown(shutdownCtx)
	}

	if err := a.db.Close(); err != nil {
		return fmt.Errorf("close document store: %w", err)
	}

	return nil
}
