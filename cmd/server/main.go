package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"
	"github.com/jonboulle/clockwork"
	"go.uber.org/zap"

	"github.com/agroview/backend/internal/config"
	"github.com/agroview/backend/internal/delivery/http"
	"github.com/agroview/backend/internal/observability"
	"github.com/agroview/backend/internal/repository/postgres"
	"github.com/agroview/backend/internal/service"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment")
	}

	// Configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	zlog, err := observability.NewLogger(cfg.Env, cfg.LogLevel)
	if err != nil {
		log.Fatalf("Failed to build logger: %v", err)
	}
	defer zlog.Sync() //nolint:errcheck

	metrics := observability.NewMetrics()
	clock := clockwork.NewRealClock()

	// Store: PostgreSQL when reachable, in-memory otherwise
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	dataRepo, closeRepo, err := postgres.Open(ctx, cfg.DatabaseURL, zlog)
	cancel()
	if err != nil {
		zlog.Fatal("failed to prepare store", zap.Error(err))
	}
	defer closeRepo()

	// Dependency Injection: Services
	mode := service.NewAnalyticsMode(cfg.APIURL, cfg.UseMock)
	remote := service.NewRemoteClient(mode, cfg.AnalyticsTimeout, cfg.MockLatency, clock, metrics, zlog)
	analytics := service.NewAnalyticsBridge(remote)
	weatherSvc := service.NewWeatherService(remote)
	recordSvc := service.NewRecordService(dataRepo, cfg.PageSize, clock, metrics, zlog)
	calculationSvc := service.NewCalculationService(recordSvc, metrics)
	dashboardSvc := service.NewDashboardService(analytics, weatherSvc, recordSvc, clock, zlog)

	zlog.Info("analytics mode",
		zap.Bool("mock", mode.UseMock), zap.String("base_url", mode.BaseURL))

	// Fiber App
	app := fiber.New(fiber.Config{
		AppName:      "AgroView API v1.0",
		ReadTimeout:  10 * time.Second,
		WriteTimeout: cfg.AnalyticsTimeout + 5*time.Second,
		ErrorHandler: http.ErrorHandler(zlog),
	})

	// Middleware
	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${status} - ${method} ${path} (${latency})\n",
	}))
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,OPTIONS",
		AllowHeaders: "Origin,Content-Type,Accept",
	}))

	// Routes
	http.SetupRoutes(app, http.Services{
		Dashboard:   dashboardSvc,
		Analytics:   analytics,
		Weather:     weatherSvc,
		Records:     recordSvc,
		Calculation: calculationSvc,
		Mode:        mode,
	}, zlog)

	// Graceful shutdown
	go func() {
		zlog.Info("server starting", zap.String("port", cfg.Port))
		if err := app.Listen(":" + cfg.Port); err != nil {
			zlog.Fatal("server error", zap.Error(err))
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	zlog.Info("shutting down server")
	if err := app.ShutdownWithTimeout(cfg.ShutdownTimeout); err != nil {
		zlog.Error("server forced to shutdown", zap.Error(err))
	}
	zlog.Info("server exited gracefully")
}
