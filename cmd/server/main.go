package main

import (
	"context"
	"log"

	"github.com/gofiber/fiber/v3"

	"github.com/Ranmdom/Desafio-Ray/internal/config"
	"github.com/Ranmdom/Desafio-Ray/internal/db"
	"github.com/Ranmdom/Desafio-Ray/internal/handler"
	"github.com/Ranmdom/Desafio-Ray/internal/middleware"
	"github.com/Ranmdom/Desafio-Ray/internal/repository"
	"github.com/Ranmdom/Desafio-Ray/internal/router"
	"github.com/Ranmdom/Desafio-Ray/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("configuration error: %v", err)
	}

	middleware.InitLogger(cfg.LogLevel, "f1-dashboard")

	ctx := context.Background()
	pool, err := db.NewPool(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}
	defer pool.Close()

	cache := service.NewCacheService(cfg.RedisURL)
	defer cache.Close()

	handler.InitMetrics(pool)

	dashboardSvc := service.NewDashboardService(repository.NewDashboardRepo(pool), cache)

	app := fiber.New(fiber.Config{
		AppName:      "F1 Highlights API",
		ServerHeader: "F1-Highlights",
	})

	router.Setup(app, &router.Handlers{
		Dashboard: handler.NewDashboardHandler(dashboardSvc),
		Export:    handler.NewExportHandler(dashboardSvc),
		Health:    handler.NewHealthHandler(pool, cache.Client()),
	}, cfg.CORSOrigins)

	log.Printf("dashboard API starting on :%s (env=%s)", cfg.Port, cfg.Environment)
	log.Fatal(app.Listen(":" + cfg.Port))
}
