package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"storefront/internal/backend"
	"storefront/internal/config"
	"storefront/internal/database"
	"storefront/internal/geocode"
	"storefront/internal/handler"
	"storefront/internal/refdata"
	"storefront/internal/router"
	"storefront/internal/store"

	"github.com/rs/zerolog"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// Initialize logger
	logger := config.NewLogger(cfg.Logger)
	logger.Info().Msg("starting storefront server")

	// Create context for application lifecycle
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize session persistence: Redis in normal deployments, process
	// memory when Redis is disabled (state is lost on restart).
	var persistence store.Persistence
	if cfg.Redis.Enabled {
		client, err := database.NewRedisClient(ctx, cfg.Redis, logger)
		if err != nil {
			return fmt.Errorf("failed to initialize redis: %w", err)
		}
		defer client.Close()
		persistence = store.NewRedisPersistence(client, time.Duration(cfg.Session.TTLSeconds)*time.Second, logger)
	} else {
		logger.Warn().Msg("redis disabled, session state held in process memory")
		persistence = store.NewMemoryPersistence()
	}

	// Load reference data with S3 and local file fallback
	refData := loadRefData(ctx, cfg.RefData, logger)

	// Initialize upstream clients
	backendClient := backend.New(cfg.Backend, logger)
	geocoder := geocode.New(cfg.Geocode, logger)

	// Initialize session-scoped stores
	sessions := store.NewSessionStore(persistence, logger)
	locations := store.NewLocationStore(persistence, logger)
	carts := store.NewCartStore(persistence, backendClient, logger)

	// Initialize HTTP handlers
	handlers := router.Handlers{
		Catalog:      handler.NewCatalogHandler(backendClient, refData, logger),
		Cart:         handler.NewCartHandler(carts, backendClient, logger),
		Location:     handler.NewLocationHandler(locations, refData, logger),
		Auth:         handler.NewAuthHandler(backendClient, sessions, logger),
		Registration: handler.NewRegistrationHandler(backendClient, refData, logger),
		Address:      handler.NewAddressHandler(geocoder, logger),
		Contact:      handler.NewContactHandler(backendClient, logger),
	}

	// Initialize router
	mux := router.New(handlers, sessions, cfg.Session, logger)

	// Create HTTP server
	server := &http.Server{
		Addr:         cfg.Server.Address(),
		Handler:      mux,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Channel to listen for errors from the server
	serverErrors := make(chan error, 1)

	// Start HTTP server in a goroutine
	go func() {
		logger.Info().
			Str("address", cfg.Server.Address()).
			Msg("HTTP server started")
		serverErrors <- server.ListenAndServe()
	}()

	// Channel to listen for interrupt signals
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	// Block until we receive a signal or an error
	select {
	case err := <-serverErrors:
		return fmt.Errorf("server error: %w", err)

	case sig := <-shutdown:
		logger.Info().
			Str("signal", sig.String()).
			Msg("shutdown signal received, starting graceful shutdown")

		// Create a context with timeout for shutdown
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer shutdownCancel()

		// Attempt graceful shutdown
		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error().Err(err).Msg("failed to shutdown server gracefully")
			// Force close
			if closeErr := server.Close(); closeErr != nil {
				logger.Error().Err(closeErr).Msg("failed to close server")
			}
			return fmt.Errorf("server shutdown failed: %w", err)
		}

		logger.Info().Msg("server shutdown completed")
	}

	return nil
}

// loadRefData resolves the reference dataset: S3 when enabled, then a local
// file override, then the built-in dataset. A failed load falls through to
// the next source rather than refusing to start.
func loadRefData(ctx context.Context, cfg config.RefDataConfig, logger zerolog.Logger) *refdata.Set {
	if cfg.S3Enabled {
		loader, err := refdata.NewS3Loader(ctx, cfg.S3Bucket, cfg.S3Region, logger)
		if err != nil {
			logger.Warn().Err(err).Msg("failed to initialise S3 reference data loader")
		} else if set, err := loader.Load(ctx, cfg.S3Key); err != nil {
			logger.Warn().Err(err).Msg("failed to load reference data from S3, falling back")
		} else {
			return set
		}
	}

	if cfg.FilePath != "" {
		loader := refdata.NewFileLoader(logger)
		set, err := loader.Load(ctx, cfg.FilePath)
		if err != nil {
			logger.Warn().Err(err).Str("file", cfg.FilePath).
				Msg("failed to load reference data file, using built-in dataset")
		} else {
			return set
		}
	}

	logger.Info().Msg("using built-in reference dataset")
	return refdata.Default()
}
