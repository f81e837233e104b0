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

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/SscSPs/property_backoffice/internal/core/services"
	"github.com/SscSPs/property_backoffice/internal/events"
	"github.com/SscSPs/property_backoffice/internal/events/kafka"
	"github.com/SscSPs/property_backoffice/internal/handlers"
	"github.com/SscSPs/property_backoffice/internal/middleware"
	"github.com/SscSPs/property_backoffice/internal/platform/config"
	"github.com/SscSPs/property_backoffice/internal/platform/metrics"
	"github.com/SscSPs/property_backoffice/internal/repositories/docstore"
)

// @title Property Back Office API
// @version 1.0
// @description Tenant statements, bank reconciliation and rent reports.

// @host localhost:8080
// @BasePath /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key

// @security BearerAuth
func main() {
	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, closeStore, err := docstore.Open(ctx, cfg, logger)
	if err != nil {
		logger.Error("Failed to open document store", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer closeStore()

	publisher, closePublisher := newPublisher(cfg, logger)
	defer closePublisher()

	metrics.Init(nil)

	repos := docstore.NewRepositoryProvider(store)
	container := services.NewServiceContainer(cfg, repos, publisher)

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware (logging, recovery, cors)
	r.Use(middleware.StructuredLoggingMiddleware(logger), gin.Recovery())
	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSAllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", middleware.APIKeyHeader, middleware.RequestIDHeader},
		ExposeHeaders:    []string{"Content-Disposition", middleware.RequestIDHeader},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	rateLimiter, err := middleware.NewRateLimiter(cfg.RateLimit)
	if err != nil {
		logger.Error("Invalid rate limit", slog.String("rate", cfg.RateLimit), slog.String("error", err.Error()))
		os.Exit(1)
	}
	r.Use(middleware.RateLimit(rateLimiter))

	if err := r.SetTrustedProxies(nil); err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	handlers.RegisterRoutes(r, cfg, container)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info("Server starting", slog.String("port", cfg.Port), slog.String("store", cfg.StoreDriver))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("Server failed to run", slog.String("error", err.Error()))
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("Shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Server shutdown failed", slog.String("error", err.Error()))
	}
}

// newPublisher picks Kafka when brokers are configured and the log otherwise.
func newPublisher(cfg *config.Config, logger *slog.Logger) (events.Publisher, func()) {
	if len(cfg.KafkaBrokers) == 0 {
		logger.Info("No Kafka brokers configured, payment events go to the log")
		return events.LogPublisher{Logger: logger}, func() {}
	}
	pub := kafka.NewPublisher(cfg.KafkaBrokers)
	return pub, func() {
		if err := pub.Close(); err != nil {
			logger.Error("Failed to close Kafka publisher", slog.String("error", err.Error()))
		}
	}
}
