package main

import (
	"context"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"livery-points/internal/config"
	"livery-points/internal/database"
	"livery-points/internal/handler"
	"livery-points/internal/logger"
	"livery-points/internal/playfab"
	"livery-points/internal/repository/postgres"
	"livery-points/internal/service"
	"livery-points/internal/worker"

	"github.com/rs/zerolog"

	_ "livery-points/docs"
)

// @title Livery Points API
// @version 1.0
// @description Points ledger and livery injection service
// @host localhost:8080
// @BasePath /api/v1
func main() {
	// Setup logger
	log := logger.New(true, zerolog.InfoLevel)

	// Load configuration from environment
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load config")
	}

	// Initialize database connection
	dbCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	dbPool, err := database.NewPool(dbCtx, cfg.Database)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer dbPool.Close()

	// Repositories
	userRepo := postgres.NewUserRepository(dbPool)
	liveryRepo := postgres.NewLiveryRepository(dbPool)
	topupRepo := postgres.NewTopupRepository(dbPool)
	productRepo := postgres.NewProductRepository(dbPool)
	injectionRepo := postgres.NewInjectionRepository(dbPool)
	settingsRepo := postgres.NewSettingsRepository(dbPool)

	// Transaction manager used by services
	txManager := postgres.NewTransactionManager(dbPool)

	// External injection client behind a bounded dispatch pool
	playfabClient := playfab.NewClient(cfg.Injection, log)
	injectionPool := worker.NewInjectionPool(playfabClient, cfg.Injection.Workers, log)
	injectionPool.Start()
	defer injectionPool.Stop()

	// Services
	injectionService := service.NewInjectionService(userRepo, liveryRepo, injectionRepo, settingsRepo,
		injectionPool, cfg.Injection.DefaultCost, log)
	pointsService := service.NewPointsService(userRepo, log)
	topupService := service.NewTopupService(userRepo, topupRepo, productRepo, txManager, log)
	catalogService := service.NewCatalogService(liveryRepo, cfg.Catalog, log)

	// Root context to be cancelled on SIGINT / SIGTERM
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Warm the catalog cache; a failed feed leaves the previous cache in place
	if count, err := catalogService.RefreshFromFeed(ctx); err != nil {
		log.Warn().Err(err).Msg("initial catalog refresh failed")
	} else {
		log.Info().Int("processed", count).Msg("catalog cache warmed")
	}

	// Worker keeping the catalog cache fresh
	catalogWorker := worker.NewCatalogWorker(catalogService, cfg.Catalog.RefreshInterval, log)
	catalogWorker.Start(ctx)
	defer catalogWorker.Stop()

	// http handler
	h := handler.NewHandler(injectionService, pointsService, topupService, catalogService, log)
	router := h.SetupRoutes()

	// http server configuration
	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	log.Info().Str("port", cfg.Server.Port).Msg("Server started")

	// Wait for shutdown signal
	<-ctx.Done()
	log.Info().Msg("Shutdown signal received, starting graceful shutdown...")

	// Graceful shutdown
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server shutdown error")
	} else {
		log.Info().Msg("HTTP server stopped gracefully")
	}

	log.Info().Msg("Shutdown complete")
}
