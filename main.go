package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/robfig/cron/v3"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"

	"emi-calculator/config"
	httpLayer "emi-calculator/http"
	"emi-calculator/metrics"
	"emi-calculator/pkg/logging"
	"emi-calculator/repository"
	"emi-calculator/service"
)

func main() {
	cfgPath := "configs/config.yaml"
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		cfgPath = v
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		slog.Error("Failed to load config", "error", err)
		os.Exit(1)
	}
	if err := cfg.Validate(); err != nil {
		slog.Error("Invalid config", "error", err)
		os.Exit(1)
	}
	logging.Setup(cfg.Log.Level)

	m := metrics.New()

	var cache repository.CacheRepository = repository.NewMemoryCache(cfg.Cache.MaxEntries, cfg.Cache.TTL)
	if cfg.Cache.RedisAddr != "" {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		redisCache, err := repository.NewRedisCache(ctx, cfg.Cache.RedisAddr, cfg.Cache.TTL)
		cancel()
		if err != nil {
			slog.Error("Failed to connect to redis", "error", err)
			os.Exit(1)
		}
		defer redisCache.Close()
		cache = redisCache
		slog.Info("Using redis result cache", "addr", cfg.Cache.RedisAddr, "ttl", cfg.Cache.TTL)
	}

	emiService := service.NewEmiService(cache, m, cfg.Engine.MaxTenureMonths)
	emiHandler := httpLayer.NewEmiHandler(emiService)

	rateLimiter := httpLayer.NewRateLimiter(cfg.RateLimit.Capacity, cfg.RateLimit.Refill)

	scheduler := cron.New()
	if _, err := scheduler.AddFunc(cfg.RateLimit.CleanupCron, func() {
		if n := rateLimiter.Cleanup(); n > 0 {
			slog.Debug("Dropped idle rate limit buckets", "count", n)
		}
	}); err != nil {
		slog.Error("Invalid rate limit cleanup schedule", "schedule", cfg.RateLimit.CleanupCron, "error", err)
		os.Exit(1)
	}
	scheduler.Start()
	defer scheduler.Stop()

	handler := httpLayer.NewRouter(emiHandler, rateLimiter, m)
	if cfg.Server.H2C {
		handler = h2c.NewHandler(handler, &http2.Server{})
	}

	server := &http.Server{
		Addr:         cfg.Server.Addr,
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	serverErr := make(chan error, 1)
	go func() {
		slog.Info("EMI calculator listening", "addr", cfg.Server.Addr, "h2c", cfg.Server.H2C)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErr:
		slog.Error("Error starting server", "error", err)
		return
	case <-quit:
		slog.Info("Shutting down server...")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		slog.Error("Error during server shutdown", "error", err)
	}

	slog.Info("Server exited")
}
