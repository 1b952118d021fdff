package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/robfig/cron/v3"

	"github.com/Ranmdom/Desafio-Ray/internal/config"
	"github.com/Ranmdom/Desafio-Ray/internal/db"
	"github.com/Ranmdom/Desafio-Ray/internal/enrich"
	"github.com/Ranmdom/Desafio-Ray/internal/middleware"
	"github.com/Ranmdom/Desafio-Ray/internal/repository"
	"github.com/Ranmdom/Desafio-Ray/internal/service"
	"github.com/Ranmdom/Desafio-Ray/internal/youtube"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("configuration error: %v", err)
	}

	middleware.InitLogger(cfg.LogLevel, "f1-pipeline")
	logger := middleware.Logger

	ctx := context.Background()
	pool, err := db.NewPool(ctx, cfg.DatabaseURL)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer pool.Close()

	svc := service.NewIngestService(
		youtube.NewClient(cfg.APIBaseURL, cfg.APIKey),
		repository.NewHighlightRepo(pool),
		enrich.DefaultExtractor(),
		cfg.PlaylistID,
		cfg.Window,
		logger,
	)

	// No schedule: single run, exit code reports the outcome. Overlapping
	// runs against the same store are not coordinated here; the scheduler
	// owns that.
	if cfg.Schedule == "" {
		if err := svc.Run(ctx); err != nil {
			logger.Fatal().Err(err).Msg("pipeline run failed")
		}
		return
	}

	c := cron.New()
	_, err = c.AddFunc(cfg.Schedule, func() {
		if err := svc.Run(ctx); err != nil {
			logger.Error().Err(err).Msg("scheduled pipeline run failed")
		}
	})
	if err != nil {
		logger.Fatal().Err(err).Str("schedule", cfg.Schedule).Msg("invalid cron schedule")
	}
	c.Start()
	logger.Info().Str("schedule", cfg.Schedule).Msg("pipeline scheduler started")

	// Expose run metrics between scheduled runs.
	go func() {
		http.Handle("/metrics", promhttp.Handler())
		if err := http.ListenAndServe(":"+cfg.MetricsPort, nil); err != nil {
			logger.Error().Err(err).Msg("metrics listener stopped")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info().Msg("shutting down")
	<-c.Stop().Done()
}
