package main

import (
	"context"
	"net/http"
	"os"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/altivento/altivento-backend/api/routes"
	"github.com/altivento/altivento-backend/internal/catalog"
	"github.com/altivento/altivento-backend/internal/content"
	"github.com/altivento/altivento-backend/internal/weddings"
	"github.com/altivento/altivento-backend/pkg/config"
	"github.com/altivento/altivento-backend/pkg/logger"
	"github.com/altivento/altivento-backend/pkg/metrics"
	"github.com/altivento/altivento-backend/pkg/redis"
)

func main() {
	logg := logger.New(logger.Options{ServiceName: "api"})

	if err := godotenv.Load(); err != nil {
		logg.Warn(context.Background(), ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "api",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})

	contentStore := content.NewStore(cfg.Content.Dir, logg)
	snap, err := contentStore.Load(context.Background())
	if err != nil {
		logg.Error(context.Background(), "failed to load catalog content", err)
		os.Exit(1)
	}

	var redisClient *redis.Client
	if cfg.Redis.Enabled() {
		redisClient, err = redis.New(context.Background(), cfg.Redis)
		if err != nil {
			logg.Error(context.Background(), "failed to bootstrap redis", err)
			os.Exit(1)
		}
		defer func() {
			if err := redisClient.Close(); err != nil {
				logg.Error(context.Background(), "error closing redis", err)
			}
		}()
	} else {
		logg.Warn(context.Background(), "redis not configured, quote rate limiting disabled")
	}

	registry := prometheus.NewRegistry()
	mtr := metrics.NewAPIMetrics(registry)

	catalogService, err := catalog.NewService(snap, logg, mtr)
	if err != nil {
		logg.Error(context.Background(), "failed to create catalog service", err)
		os.Exit(1)
	}

	weddingsService, err := weddings.NewService(snap)
	if err != nil {
		logg.Error(context.Background(), "failed to create weddings service", err)
		os.Exit(1)
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.App.Port
	}
	addr := ":" + port
	ctx := logg.WithFields(context.Background(), map[string]any{
		"env":        cfg.App.Env,
		"addr":       addr,
		"categories": len(snap.Categories),
		"products":   len(snap.AllProducts()),
	})
	logg.Info(ctx, "starting api server")

	server := &http.Server{
		Addr:    addr,
		Handler: routes.NewRouter(cfg, logg, contentStore, redisClient, mtr, registry, catalogService, weddingsService),
	}

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logg.Error(ctx, "api server stopped unexpectedly", err)
		os.Exit(1)
	}
}
