package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/DoyleJ11/bp-draft-server/internal/actionlog"
	"github.com/DoyleJ11/bp-draft-server/internal/config"
	"github.com/DoyleJ11/bp-draft-server/internal/httpapi"
	"github.com/DoyleJ11/bp-draft-server/internal/hub"
	"github.com/DoyleJ11/bp-draft-server/internal/logging"
	"github.com/DoyleJ11/bp-draft-server/internal/storage"
	"github.com/cockroachdb/errors"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "draft server: %+v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	log, err := logging.New(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var store actionlog.Store = actionlog.NewMemoryStore()
	if cfg.DatabaseURL != "" {
		db, err := storage.Open(ctx, cfg.DatabaseURL)
		if err != nil {
			return err
		}
		defer func() { _ = storage.Close(db) }()
		if err := storage.Migrate(db); err != nil {
			return err
		}
		store = storage.NewActionStore(db)
		log.Info("action log on postgres")
	} else {
		log.Info("action log in memory")
	}

	h := hub.NewHub(context.Background(), hub.Config{Store: store, Logger: log})

	// Build the router *with* the hub injected
	srv := &http.Server{
		Addr: cfg.HTTPAddr,
		Handler: httpapi.SetupRoutes(httpapi.Deps{
			Hub:            h,
			Store:          store,
			Rules:          cfg.Rules(),
			Logger:         log,
			OriginPatterns: cfg.WSOriginPatterns,
		}),
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info("listening", zap.String("addr", cfg.HTTPAddr), zap.Duration("stepDuration", cfg.StepDuration))
		if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			return errors.Wrap(err, "http server")
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		log.Info("shutting down")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()

		done := make(chan struct{})
		h.Inbox() <- hub.ShutdownHub{Done: done}
		select {
		case <-done:
		case <-shutdownCtx.Done():
			log.Warn("rooms did not stop in time")
		}
		return srv.Shutdown(shutdownCtx)
	})
	return g.Wait()
}
