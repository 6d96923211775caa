package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang-stock-pulse/internal/api/config"
	delivery "golang-stock-pulse/internal/api/delivery/http"
	_ "golang-stock-pulse/internal/api/docs"
	"golang-stock-pulse/internal/api/repository"
	"golang-stock-pulse/internal/api/service"
	"golang-stock-pulse/pkg/logger"
	"golang-stock-pulse/pkg/postgres"
	"golang-stock-pulse/pkg/redis"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/spf13/cobra"
	swagger "github.com/swaggo/echo-swagger"
)

var configPath string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Starts the read API service",
	Run:   runServe,
}

func runServe(cmd *cobra.Command, args []string) {
	// Create a context that is canceled on interrupt signals
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := godotenv.Load(); err != nil {
		log.Println("[INFO] .env not found; using system environment variables")
	}

	// Load configuration
	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logger
	appLogger, err := logger.New(cfg.Logger.Level, cfg.Logger.Encoding)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer func() { _ = appLogger.Sync() }()

	appLogger.Info("Starting API Service", logger.Field("name", cfg.App.Name))

	// Initialize database
	postgresCfg := postgres.Config{
		Host:            cfg.Database.Host,
		Port:            cfg.Database.Port,
		User:            cfg.Database.User,
		Password:        cfg.Database.Password,
		DBName:          cfg.Database.DBName,
		SSLMode:         cfg.Database.SSLMode,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		ConnMaxLifetime: cfg.Database.ConnMaxLifetime,
	}
	db, err := postgres.NewDB(postgresCfg)
	if err != nil {
		appLogger.Fatal("Failed to initialize database", logger.ErrorField(err))
	}
	if sqlDB, err := db.DB.DB(); err == nil {
		defer sqlDB.Close()
	}

	// Redis backs the candle read cache. An empty host runs without it.
	var redisClient *redis.Client
	if cfg.Redis.Host != "" {
		redisCfg := redis.Config{
			Host:     cfg.Redis.Host,
			Port:     cfg.Redis.Port,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
			PoolSize: cfg.Redis.PoolSize,
		}
		redisClient, err = redis.NewClient(redisCfg)
		if err != nil {
			appLogger.Fatal("Failed to initialize Redis", logger.ErrorField(err))
		}
		defer redisClient.Close()
	}

	candleTTL := 5 * time.Minute
	if cfg.Cache.CandleTTL != "" {
		candleTTL, err = time.ParseDuration(cfg.Cache.CandleTTL)
		if err != nil {
			appLogger.Fatal("Invalid candle cache TTL", logger.ErrorField(err))
		}
	}

	// Initialize repositories
	companyRepo := repository.NewCompanyRepository(db.DB)
	articleRepo := repository.NewArticleRepository(db.DB)
	candleRepo := repository.NewCachingCandleRepository(redisClient, candleTTL, repository.NewCandleRepository(db.DB))
	runRepo := repository.NewIngestionRunRepository(db.DB)

	// Initialize services
	companySvc := service.NewCompanyService(companyRepo, appLogger)
	articleSvc := service.NewArticleService(articleRepo, appLogger)
	candleSvc := service.NewCandleService(candleRepo, appLogger)
	runSvc := service.NewRunService(runRepo, appLogger)

	// Initialize Echo server
	e := echo.New()
	e.HideBanner = true

	// Initialize handlers and routes
	apiV1 := e.Group("/api/v1")

	companyHandler := delivery.NewCompanyHandler(companySvc, appLogger)
	companyHandler.RegisterRoutes(apiV1.Group("/companies"))

	articleHandler := delivery.NewArticleHandler(articleSvc, appLogger)
	articleHandler.RegisterRoutes(apiV1.Group("/articles"))

	candleHandler := delivery.NewCandleHandler(candleSvc, appLogger)
	candleHandler.RegisterRoutes(apiV1.Group("/candles"))

	runHandler := delivery.NewRunHandler(runSvc, appLogger)
	runHandler.RegisterRoutes(apiV1.Group("/runs"))

	e.GET("/healthz", func(c echo.Context) error {
		return c.JSON(http.StatusOK, echo.Map{"status": "ok"})
	})
	e.GET("/swagger/*", swagger.WrapHandler)

	// Start server
	go func() {
		addr := fmt.Sprintf("%s:%d", cfg.API.Host, cfg.API.Port)
		appLogger.Info("HTTP server starting", logger.Field("address", addr))
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			appLogger.Error("HTTP server failed to start", logger.ErrorField(err))
			stop() // trigger shutdown
		}
	}()

	// Wait for shutdown signal
	<-ctx.Done()

	appLogger.Info("Shutting down server...")

	// Gracefully shutdown the server
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		appLogger.Fatal("Server forced to shutdown", logger.ErrorField(err))
	}

	appLogger.Info("Server exiting")
}

// @title Market Pulse API
// @version 1.0
// @description Read API for ingested market candles and sentiment-labeled company news.
// @BasePath /api/v1
func main() {
	rootCmd := &cobra.Command{Use: "api-service"}

	serveCmd.Flags().StringVarP(&configPath, "config", "c", "configs/config-api.yaml", "Path to the configuration file")

	rootCmd.AddCommand(serveCmd)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error executing api-service CLI: %s\n", err)
		os.Exit(1)
	}
}
