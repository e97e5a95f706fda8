// Command vantage runs the geopolitical news signal pipeline: periodic
// ingestion and analysis cycles plus the HTTP read surface.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/robfig/cron/v3"

	"github.com/abelbrown/vantage/internal/cache"
	"github.com/abelbrown/vantage/internal/config"
	"github.com/abelbrown/vantage/internal/fetch"
	"github.com/abelbrown/vantage/internal/graph"
	"github.com/abelbrown/vantage/internal/ingest"
	"github.com/abelbrown/vantage/internal/logging"
	"github.com/abelbrown/vantage/internal/pipeline"
	"github.com/abelbrown/vantage/internal/scenario"
	"github.com/abelbrown/vantage/internal/server"
	"github.com/abelbrown/vantage/internal/signals"
)

func main() {
	// Optional .env; absence is fine
	_ = godotenv.Load()

	if err := logging.Init(); err != nil {
		logging.InitWriter(os.Stderr)
		logging.Warn("file logging unavailable, using stderr", "error", err)
	}
	defer logging.Close()

	configPath := os.Getenv("VANTAGE_CONFIG")
	if configPath == "" {
		configPath = "vantage.yaml"
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		logging.Fatal("config load failed", "error", err)
	}
	if err := cfg.Validate(); err != nil {
		logging.Fatal("config invalid", "error", err)
	}

	descriptors, err := cfg.Descriptors()
	if err != nil {
		logging.Fatal("feed table invalid", "error", err)
	}

	// Registry and graph defects are fatal before the first cycle
	kg, err := graph.New()
	if err != nil {
		logging.Fatal("knowledge graph invalid", "error", err)
	}

	gatherer := ingest.NewGatherer(fetch.NewFetcher(cfg.FetchTimeout()), descriptors)
	pipe, err := pipeline.New(gatherer, signals.Registry(), scenario.Registry(), cache.New(), cfg.CacheTTL())
	if err != nil {
		logging.Fatal("registry validation failed", "error", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// First cycle before serving so readers see a complete report
	if err := pipe.Refresh(ctx); err != nil {
		logging.Warn("initial refresh incomplete", "error", err)
	}

	sched := cron.New()
	if _, err := sched.AddFunc(cfg.RefreshSchedule, func() {
		if err := pipe.Refresh(ctx); err != nil {
			logging.Warn("refresh failed", "error", err)
		}
	}); err != nil {
		logging.Fatal("invalid refresh schedule", "schedule", cfg.RefreshSchedule, "error", err)
	}
	sched.Start()
	defer sched.Stop()

	srv := server.New(pipe, kg)
	go func() {
		if err := srv.Run(cfg.ListenAddr); err != nil {
			logging.Error("server exited", "error", err)
			stop()
		}
	}()
	logging.Info("serving", "addr", cfg.ListenAddr, "feeds", len(descriptors))

	<-ctx.Done()
}
