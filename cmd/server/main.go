package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/gadotour/gado-stats/internal/api"
	"github.com/gadotour/gado-stats/internal/api/handlers"
	"github.com/gadotour/gado-stats/internal/api/middleware"
	"github.com/gadotour/gado-stats/internal/services"
	"github.com/gadotour/gado-stats/internal/sheets"
	"github.com/gadotour/gado-stats/pkg/config"
	"github.com/gadotour/gado-stats/pkg/logger"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		logrus.Fatalf("Failed to load config: %v", err)
	}

	// Setup logging
	log := logger.InitLogger("", cfg.IsDevelopment())
	if cfg.IsDevelopment() {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	// Select the workbook store: live Google Sheets when credentials are
	// configured, bundled example data otherwise so the dashboard stays
	// demoable.
	var store sheets.Store
	if cfg.HasSheetsCredentials() {
		client, err := sheets.NewClient(context.Background(), cfg, log)
		if err != nil {
			log.Fatalf("Failed to build Sheets client: %v", err)
		}
		store = client
		log.WithField("spreadsheet_id", cfg.SpreadsheetID).Info("Using live Google Sheets workbook")
	} else {
		store = sheets.NewFixtureStore()
		log.Warn("Google Sheets credentials not configured, serving example data")
	}
	workbook := sheets.NewWorkbook(store, log)

	// Optional Redis cache
	var cacheService *services.CacheService
	if cfg.RedisURL != "" {
		opt, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			log.Fatalf("Failed to parse Redis URL: %v", err)
		}
		redisClient := redis.NewClient(opt)
		if err := redisClient.Ping(context.Background()).Err(); err != nil {
			log.Fatalf("Failed to connect to Redis: %v", err)
		}
		defer redisClient.Close()
		cacheService = services.NewCacheService(redisClient)
		log.Info("Redis snapshot cache enabled")
	} else {
		log.Info("Redis not configured, reads go straight to the workbook")
	}

	// Parse refresh interval
	refreshInterval, err := time.ParseDuration(cfg.RefreshInterval)
	if err != nil {
		log.Warnf("Invalid refresh interval, using default 10m: %v", err)
		refreshInterval = 10 * time.Minute
	}

	// Snapshot service with background warmer
	snapshots := services.NewSnapshotService(workbook, cacheService, log, cfg.CacheTTL, refreshInterval)
	if err := snapshots.Start(); err != nil {
		log.Errorf("Failed to start snapshot warmer: %v", err)
	}
	defer snapshots.Stop()

	// Setup Gin router
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger(log))
	router.Use(middleware.CORS(cfg.CorsOrigins))

	healthHandler := handlers.NewHealthHandler()
	router.GET("/health", healthHandler.GetHealth)

	// Setup API routes under /api/v1
	apiV1 := router.Group("/api/v1")
	api.SetupRoutes(apiV1, workbook, snapshots, log)

	// Setup server
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.Port),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in goroutine
	go func() {
		log.Infof("Starting server on port %s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server...")

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Errorf("Server forced to shutdown: %v", err)
	}

	log.Info("Server exited")
}
