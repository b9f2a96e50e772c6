// cmd/server/main.go
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
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/xeeshan-dev/amazon-product-hunter-pro/internal/config"
	"github.com/xeeshan-dev/amazon-product-hunter-pro/internal/handler"
	"github.com/xeeshan-dev/amazon-product-hunter-pro/internal/middleware"
	"github.com/xeeshan-dev/amazon-product-hunter-pro/internal/repository"
	"github.com/xeeshan-dev/amazon-product-hunter-pro/internal/service"
	"github.com/xeeshan-dev/amazon-product-hunter-pro/pkg/database"
	"github.com/xeeshan-dev/amazon-product-hunter-pro/pkg/logger"
	"github.com/xeeshan-dev/amazon-product-hunter-pro/pkg/redisclient"
)

func main() {
	log := logger.NewLogger("opportunity-scoring")
	defer log.Sync()

	cfg := loadServerConfig()

	// Reference tables: fee rates, brand risk tiers, hazmat keywords,
	// scoring policy. Loaded once, read-only afterwards.
	tables, err := config.LoadAndValidate(cfg.TablesPath)
	if err != nil {
		log.Fatal("failed to load reference tables", zap.Error(err))
	}

	// Persistence and redis are optional: without them the service still
	// scores, it just keeps no history.
	var repo *repository.ScoreRepository
	if cfg.DatabaseURL != "" {
		db, err := database.NewPostgresDB(cfg.DatabaseURL)
		if err != nil {
			log.Fatal("failed to connect to database", zap.Error(err))
		}
		defer db.Close()
		repo = repository.NewScoreRepository(db.DB)
	}

	var redis *redisclient.Client
	if cfg.RedisAddr != "" {
		redis = redisclient.NewRedisClient(cfg.RedisAddr)
		defer redis.Close()
	}

	engine := service.NewOpportunityScorer(tables, log)
	sellers := service.NewSellerAnalyzer(tables.Sellers)
	cache := service.NewResultCache(redis, cfg.CacheTTL, log)

	scoreHandler := handler.NewScoreHandler(engine, sellers, repo, cache,
		tables.Scoring.WinnerScoreThreshold, log)

	router := setupRouter(scoreHandler, log)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.Port),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Info("starting opportunity scoring service", zap.String("port", cfg.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("server forced to shutdown", zap.Error(err))
	}

	log.Info("server exited")
}

func setupRouter(scoreHandler *handler.ScoreHandler, log *zap.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()

	router.Use(middleware.RequestID())
	router.Use(middleware.Logger(log))
	router.Use(middleware.Recovery(log))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy"})
	})
	router.GET("/ready", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ready"})
	})

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	v1 := router.Group("/api/v1")
	{
		opportunities := v1.Group("/opportunities")
		{
			opportunities.POST("/score", scoreHandler.ScoreProduct)
			opportunities.GET("/stats", scoreHandler.GetStats)
			opportunities.GET("/:item_id", scoreHandler.GetScore)
		}
	}

	return router
}

type ServerConfig struct {
	Port        string
	DatabaseURL string
	RedisAddr   string
	TablesPath  string
	CacheTTL    time.Duration
	Environment string
}

func loadServerConfig() *ServerConfig {
	ttl := 15 * time.Minute
	if raw := os.Getenv("CACHE_TTL"); raw != "" {
		if parsed, err := time.ParseDuration(raw); err == nil {
			ttl = parsed
		}
	}
	return &ServerConfig{
		Port:        getEnv("PORT", "8084"),
		DatabaseURL: os.Getenv("DATABASE_URL"),
		RedisAddr:   os.Getenv("REDIS_ADDR"),
		TablesPath:  os.Getenv("TABLES_PATH"),
		CacheTTL:    ttl,
		Environment: getEnv("ENVIRONMENT", "development"),
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
