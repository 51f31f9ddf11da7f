package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/SscSPs/tradeops_hub/internal/core/services"
	"github.com/SscSPs/tradeops_hub/internal/dto"
	"github.com/SscSPs/tradeops_hub/internal/handlers"
	"github.com/SscSPs/tradeops_hub/internal/middleware"
	"github.com/SscSPs/tradeops_hub/internal/platform/config"
	"github.com/SscSPs/tradeops_hub/internal/repositories/memory"
	"github.com/SscSPs/tradeops_hub/internal/utils"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/ulule/limiter/v3"
)

// @title TradeOps Hub API
// @version 1.0
// @description Import cost estimation, HS code lookup, exchange rates and shipping checklist for the TradeOps dashboard.

// @host localhost:8080
// @BasePath /
func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.LogLevel}))
	slog.SetDefault(logger)

	if err := dto.RegisterBindingValidators(); err != nil {
		logger.Error("Failed to register request validators", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// All state lives in process memory and starts from the seeded tables.
	store := memory.NewSeededStore()
	serviceContainer := services.NewServiceContainer(cfg, memory.NewRepositoryProvider(store))
	logger.Info("In-memory store seeded",
		slog.String("default_exchange_rate", cfg.DefaultExchangeRate.String()))

	var rateLimiter *limiter.Limiter
	if cfg.RateLimitRedisURL != "" {
		var redisClient *redis.Client
		rateLimiter, redisClient, err = middleware.NewRedisLimiter(context.Background(), cfg.RateLimit, cfg.RateLimitRedisURL)
		if err == nil {
			defer redisClient.Close()
			logger.Info("Rate limit counters stored in redis", slog.String("rate_limit", cfg.RateLimit))
		}
	} else {
		rateLimiter, err = middleware.NewMemoryLimiter(cfg.RateLimit)
	}
	if err != nil {
		logger.Error("Failed to set up rate limiter", slog.String("rate_limit", cfg.RateLimit), slog.String("error", err.Error()))
		os.Exit(1)
	}

	posthogClient := utils.InitializePosthogClient(cfg.PosthogAPIKey, cfg.PosthogEndpoint, logger)
	defer posthogClient.Close()

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware (logging, recovery)
	r.Use(middleware.StructuredLoggingMiddleware(logger), gin.Recovery())
	r.Use(cors.New(cors.Config{
		AllowOrigins:  cfg.CORSAllowedOrigins,
		AllowMethods:  []string{"GET", "POST", "PUT", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", middleware.SessionIDHeader},
		ExposeHeaders: []string{middleware.RequestIDHeader, "X-RateLimit-Limit", "X-RateLimit-Remaining", "X-RateLimit-Reset"},
		MaxAge:        12 * time.Hour,
	}))
	r.Use(middleware.RateLimit(rateLimiter))
	r.Use(middleware.PosthogMiddleware(posthogClient))

	err = r.SetTrustedProxies(nil)
	if err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	handlers.RegisterRoutes(r, cfg, serviceContainer)

	logger.Info("Server starting", slog.String("port", cfg.Port), slog.Bool("production", cfg.IsProduction))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Error("Server failed to run", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
