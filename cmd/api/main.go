package main

import (
	"context"
	"log"
	"time"

	"logistics-tracker/internal/core/cache"
	"logistics-tracker/internal/core/config"
	"logistics-tracker/internal/core/logger"
	"logistics-tracker/internal/core/metrics"
	"logistics-tracker/internal/core/server"
	deliveryadapter "logistics-tracker/internal/features/deliveries/adapters"
	deliveryhandler "logistics-tracker/internal/features/deliveries/handler"
	"logistics-tracker/internal/features/deliveries/ports"
	deliveryservice "logistics-tracker/internal/features/deliveries/service"
	statusdomain "logistics-tracker/internal/features/status/domain"
	statushandler "logistics-tracker/internal/features/status/handler"

	"go.uber.org/zap"
)

// @title Logistics Tracker API
// @version 1.0
// @description Delivery status presentation, tracking timelines and role dashboards for the logistics marketplace.
// @contact.name API Support
// @license.name MIT
// @host localhost:8080
// @BasePath /
func main() {
	cfg, err := config.Load(".")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := logger.Init(cfg.Environment, cfg.LogLevel); err != nil {
		log.Fatalf("Failed to init logger: %v", err)
	}
	defer logger.Sync()

	l := logger.Get()
	l.Info("Application starting",
		zap.String("environment", cfg.Environment),
		zap.String("log_level", cfg.LogLevel),
	)

	m := metrics.New()

	// Initialize Backend Adapter and run Health Check
	backend := deliveryadapter.NewBackendAdapter(cfg.Backend, m)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	if err := backend.HealthCheck(ctx); err != nil {
		l.Warn("Backend Health Check Failed", zap.Error(err))
	} else {
		l.Info("Backend connection verified")
	}
	cancel()

	var provider ports.DeliveryProvider = backend
	if cfg.Cache.Enabled() {
		redisCache, err := cache.NewRedisAdapter(cfg.Cache.RedisURL, cfg.Cache.Prefix)
		if err != nil {
			l.Fatal("Failed to init Redis cache", zap.Error(err))
		}
		defer redisCache.Close()

		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		if err := redisCache.Ping(ctx); err != nil {
			l.Warn("Redis unreachable, requests will fall back to the backend", zap.Error(err))
		}
		cancel()

		provider = deliveryadapter.NewCachedProvider(backend, redisCache, cfg.Cache.TTL(), cfg.Backend.Timeout(), m)
		l.Info("Delivery cache enabled", zap.Duration("ttl", cfg.Cache.TTL()))
	}

	describer := statusdomain.NewDescriber(statusdomain.LabelsFR())

	// Initialize Services & Handlers
	deliverySvc := deliveryservice.NewDeliveryService(provider, describer, m)
	deliveryHdl := deliveryhandler.NewDeliveryHandler(deliverySvc)
	statusHdl := statushandler.NewStatusHandler(statusdomain.LabelsFR())

	srv := server.New(cfg, m)

	// Register Routes
	statusHdl.Register(srv.App)
	deliveryHdl.Register(srv.App)

	if err := srv.Run(); err != nil {
		l.Fatal("Server failed to start", zap.Error(err))
	}
}
