package main

// @title Geocoder API
// @version 1.0.0
// @description Прямое и обратное геокодирование по данным OpenStreetMap: поиск по тексту, поиск ближайших мест, пакетные запросы и фильтры по тегам OSM.

// @license.name Apache 2.0
// @license.url https://www.apache.org/licenses/LICENSE-2.0

// @host localhost:2322
// @BasePath /
// @schemes http https

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	_ "github.com/geocoder-api/docs"
	"github.com/geocoder-api/internal/config"
	httpDelivery "github.com/geocoder-api/internal/delivery/http"
	"github.com/geocoder-api/internal/delivery/http/handler"
	"github.com/geocoder-api/internal/domain/repository"
	"github.com/geocoder-api/internal/pkg/logger"
	"github.com/geocoder-api/internal/query"
	"github.com/geocoder-api/internal/repository/cache"
	"github.com/geocoder-api/internal/repository/postgresosm"
	"github.com/geocoder-api/internal/usecase"
)

func main() {
	// 1. Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	// 2. Initialize logger
	log, err := logger.New(cfg.Log)
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer log.Sync()

	log.Info("Starting Geocoder API")
	log.Info("Configuration loaded",
		zap.String("env", cfg.Server.Env),
		zap.String("server_addr", cfg.GetServerAddr()),
		zap.Strings("languages", cfg.Query.SupportedLanguages),
	)

	// 3. Connect to OSM PostgreSQL (planet_osm_point)
	osmDB, err := postgresosm.New(&cfg.OSMDB, log)
	if err != nil {
		log.Fatal("Failed to connect to OSM PostgreSQL", zap.Error(err))
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := osmDB.Health(ctx); err != nil {
		log.Fatal("OSM PostgreSQL health check failed", zap.Error(err))
	}
	log.Info("OSM PostgreSQL connected")

	checks := map[string]handler.HealthChecker{"postgres": osmDB}

	// 4. Connect to Redis. Без Redis сервис работает, только без кэша
	var cacheRepo repository.CacheRepository
	redisClient, err := cache.NewRedis(&cfg.Redis, log)
	if err != nil {
		log.Warn("Redis unavailable, result cache disabled", zap.Error(err))
	} else {
		cacheRepo = cache.NewCacheRepository(redisClient)
		checks["redis"] = redisClient
		log.Info("Redis connected")
	}

	// 5. Repositories and use cases
	placeRepo := postgresosm.NewPlaceRepository(osmDB)
	geocodeUC := usecase.NewGeocodeUseCase(
		placeRepo,
		cacheRepo,
		log,
		cfg.Cache.SearchCacheTTL,
		cfg.Query.BulkConcurrency,
	)

	// 6. Request factories
	opts := query.Options{
		Languages:      query.NewLanguageSet(cfg.Query.SupportedLanguages...),
		SearchMaxLimit: cfg.Query.SearchMaxLimit,
		BulkMaxItems:   cfg.Query.BulkMaxItems,
	}

	// 7. HTTP handlers and server
	geocodeHandler := handler.NewGeocodeHandler(
		query.NewSearchRequestFactory(opts),
		query.NewReverseRequestFactory(opts),
		geocodeUC,
		log,
	)
	healthHandler := handler.NewHealthHandler(checks, log)

	server := httpDelivery.NewServer(cfg, log, geocodeHandler, healthHandler)

	go func() {
		if err := server.Start(); err != nil {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	log.Info("Server started successfully",
		zap.String("address", cfg.GetServerAddr()),
		zap.String("env", cfg.Server.Env),
	)

	// 8. Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server gracefully...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("Server shutdown error", zap.Error(err))
	}

	if err := osmDB.Close(); err != nil {
		log.Error("Failed to close OSM database", zap.Error(err))
	}

	if redisClient != nil {
		if err := redisClient.Close(); err != nil {
			log.Error("Failed to close Redis", zap.Error(err))
		}
	}

	log.Info("Server stopped successfully")
}
