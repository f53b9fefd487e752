package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/investlens/investlens/internal/analysis"
	"github.com/investlens/investlens/internal/catalog"
	"github.com/investlens/investlens/internal/config"
	httpapi "github.com/investlens/investlens/internal/http"
	"github.com/investlens/investlens/internal/logging"
	"github.com/investlens/investlens/internal/matching"
	"github.com/investlens/investlens/internal/realtime"
	"github.com/investlens/investlens/internal/state"
	"github.com/investlens/investlens/internal/storage"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	logger := logging.New(cfg.Logging.Level, cfg.Logging.Format)

	store, err := storage.Open(cfg.Storage.Path)
	if err != nil {
		logger.Error("open storage", "error", err)
		os.Exit(1)
	}
	defer store.Close()

	if err := store.EnsureSchema(); err != nil {
		logger.Error("ensure schema", "error", err)
		os.Exit(1)
	}

	cat := catalog.New(catalog.Seed())
	if err := store.SeedProperties(cat.All()); err != nil {
		logger.Error("seed properties", "error", err)
		os.Exit(1)
	}

	scoring, err := matching.LoadConfigFromFile(cfg.Matching.ConfigPath)
	if err != nil {
		logger.Info("using default scoring config", "reason", err)
		scoring = matching.DefaultConfig()
	}
	engine := matching.NewEngine(scoring)

	app := state.New(store, cat, engine, logger)

	hub := realtime.NewHub()
	app.Subscribe(func(ev state.Event) { hub.BroadcastJSON(ev) })

	pipeline := analysis.NewPipeline(analysis.SystemClock(), analysis.DefaultTimings(), state.PipelineNotifier{App: app})

	srv := httpapi.NewServer(app, cat, pipeline, hub, logger)

	httpServer := &http.Server{
		Addr:              cfg.HTTP.Address,
		Handler:           srv.Handler(),
		ReadHeaderTimeout: cfg.HTTP.ReadHeaderTimeout,
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	go func() {
		<-ctx.Done()
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
		defer shutdownCancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			logger.Error("server shutdown", "error", err)
		}
	}()

	logger.Info("API listening", "address", cfg.HTTP.Address, "properties", cat.Len())
	if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Error("server error", "error", err)
		os.Exit(1)
	}
}
