package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"scholarship-feed/internal/middleware/logger"
	"scholarship-feed/internal/scrape/api"
	"scholarship-feed/internal/scrape/cycle"
	"scholarship-feed/internal/scrape/fetch"
	"scholarship-feed/internal/scrape/normalize"
	"scholarship-feed/internal/scrape/scheduler"
	"scholarship-feed/internal/scrape/source"
	"scholarship-feed/internal/scrape/store"
	"scholarship-feed/pkg/config"
)

func main() {
	cfg, err := config.LoadConfig("config/config.yaml")
	if err != nil {
		panic(err)
	}

	log, err := logger.NewLogger(cfg.Log)
	if err != nil {
		panic(err)
	}
	defer func() { _ = log.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	log.Info("Starting scrape service...")

	stores, err := store.Connect(ctx, cfg.Mongo, log)
	if err != nil {
		log.Fatal("Failed to connect to MongoDB", zap.Error(err))
	}
	defer func() {
		closeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := stores.Close(closeCtx); err != nil {
			log.Warn("Failed to disconnect MongoDB", zap.Error(err))
		}
	}()

	gw := fetch.NewGateway(cfg.Fetch, log)
	providers := []source.Provider{
		source.NewAggregator(gw, "", log),
		source.NewInternshipBoard(gw, "", log),
		source.NewGovernmentPortal(),
	}
	orch := cycle.New(
		providers,
		normalize.New(nil, cycle.SourceDefaults(providers)),
		store.NewUpserter(stores.Listings, stores.Client, log),
		log,
		nil,
	)

	if cfg.Schedule.Cron != "" {
		worker := &scheduler.Worker{Log: log, Runner: orch, Spec: cfg.Schedule.Cron}
		go func() {
			if err := worker.Run(ctx); err != nil {
				log.Error("Scrape scheduler stopped", zap.Error(err))
			}
		}()
	}

	srv := &api.Server{Runner: orch, Catalog: store.NewCatalog(stores.Listings), Log: log}
	r := srv.Router()
	_ = r.SetTrustedProxies(nil)

	httpSrv := &http.Server{Addr: cfg.Server.Addr, Handler: r}
	go func() {
		log.Info("Scrape service is running",
			zap.String("address", cfg.Server.Addr),
			zap.Bool("proxied", gw.Proxied()),
		)
		if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("HTTP server failed", zap.Error(err))
			stop()
		}
	}()

	<-ctx.Done()
	log.Info("Shutting down scrape service...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := httpSrv.Shutdown(shutdownCtx); err != nil {
		log.Warn("HTTP server shutdown incomplete", zap.Error(err))
	}
}
