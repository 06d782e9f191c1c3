// Package startup prepares the application server
package startup

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/royalacademy/academy-go/internal/application/container"
	"github.com/royalacademy/academy-go/internal/infrastructure/caching/cleanup"
	"github.com/royalacademy/academy-go/internal/infrastructure/caching/manager"
	"github.com/royalacademy/academy-go/internal/infrastructure/observability/logging"
	"github.com/royalacademy/academy-go/internal/infrastructure/persistence/bucket"
	"github.com/royalacademy/academy-go/internal/presentation/http/server"
	"github.com/royalacademy/academy-go/pkg/config"
)

// Initialize performs the complete startup sequence
func Initialize() error {
	setupLogging()

	start := time.Now().UTC()

	ctx, cancelBackgroundTasks := context.WithCancel(context.Background())
	defer cancelBackgroundTasks()

	log.Println("\033[32m" + `

  ▄▄▄▄   ▄▄▄▄  ▄▄   ▄▄  ▄▄▄  ▄▄
  ██▄▄█  ██▄▄█  ▀▄▄▀   ██▄▄██ ██
  ██ ▀▄  ██  ▀▄  ██    ██  ██ ██▄▄▄
` + "\033[97m" + `
  Royal Academy content server
` + "\033[0m")

	// Step 1: Initialize channeled logging
	log.Println("Initializing logging...")
	logger, err := logging.NewChanneledLogger(nil)
	if err != nil {
		return fmt.Errorf("failed to initialize logging: %w", err)
	}
	logger.Startup().Info("Channeled logging initialized")

	// Step 2: Open the bucket store selected by configuration
	logger.Startup().Info("Opening bucket store", "backend", config.BucketBackend)
	startStoreTime := time.Now()

	store, err := openBucketStore(logger)
	if err != nil {
		return fmt.Errorf("failed to open bucket store: %w", err)
	}
	logger.LogStartupPhase("bucket-store", time.Since(startStoreTime), true)

	// Step 3: Initialize cache system
	logger.Startup().Info("Initializing cache system...")
	cacheManager := manager.NewManager(logger)

	// Step 4: Create dependency injection container
	logger.Startup().Info("Initializing dependency injection container...")
	appContainer := container.NewContainer(store, cacheManager, logger)
	logger.Startup().Info("Dependency injection container created with singleton services")

	// Step 5: Seed every registered bucket
	if config.SeedOnStartup {
		logger.Startup().Info("Seeding collection buckets...")
		startSeedTime := time.Now()

		if err := appContainer.Stores.SeedAll(ctx); err != nil {
			return fmt.Errorf("startup seeding failed: %w", err)
		}
		logger.LogStartupPhase("seed", time.Since(startSeedTime), true)
	}

	// Step 6: Start the admin feed loop
	go appContainer.AdminFeed.Run()
	logger.Startup().Info("Admin feed started")

	// Step 7: Start background cleanup worker
	logger.Startup().Info("Starting background cleanup worker...")
	cleanupWorker := cleanup.NewWorker(cacheManager, cleanup.NewConfigFromEnv(), logger)
	go cleanupWorker.Start(ctx)

	// Step 8: Start HTTP server
	logger.Startup().Info("Starting HTTP server...")
	startServerTime := time.Now()

	port := config.Port
	httpServer := server.New(port, appContainer)

	logger.Startup().Info("HTTP server initialized", "port", port, "duration", time.Since(startServerTime))

	// Step 9: Setup graceful shutdown
	gracefulShutdown := make(chan os.Signal, 1)
	signal.Notify(gracefulShutdown, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		logger.System().Info("Starting HTTP server", "address", ":"+port)
		if err := httpServer.Start(); err != nil {
			logger.System().Error("HTTP server failed", "error", err.Error())
		}
	}()

	logger.Startup().Info("Application startup complete",
		"totalDuration", time.Since(start),
		"backend", config.BucketBackend,
		"port", port)

	// Wait for shutdown signal
	<-gracefulShutdown
	logger.Shutdown().Info("Shutdown signal received, starting graceful shutdown...")

	shutdownStart := time.Now()

	// Cancel background tasks
	cancelBackgroundTasks()

	// Stop server
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	logger.Shutdown().Info("Stopping HTTP server...")
	if err := httpServer.Stop(shutdownCtx); err != nil {
		logger.Shutdown().Error("Error during server shutdown", "error", err.Error())
	} else {
		logger.Shutdown().Info("HTTP server stopped successfully")
	}

	// Close bucket store
	logger.Shutdown().Info("Closing bucket store...")
	if err := store.Close(); err != nil {
		logger.Shutdown().Error("Error closing bucket store", "error", err.Error())
	} else {
		logger.Shutdown().Info("Bucket store closed successfully")
	}

	logger.Shutdown().Info("Application shutdown complete",
		"totalUptime", time.Since(start),
		"shutdownDuration", time.Since(shutdownStart))

	return logger.Close()
}

// openBucketStore selects the storage backend from configuration.
func openBucketStore(logger *logging.ChanneledLogger) (bucket.Store, error) {
	switch config.BucketBackend {
	case "sqlite":
		return bucket.NewSQLStore("sqlite3", config.SQLitePath, logger)
	case "libsql":
		dsn := config.LibSQLURL
		if config.LibSQLToken != "" {
			dsn += "?authToken=" + config.LibSQLToken
		}
		return bucket.NewSQLStore("libsql", dsn, logger)
	case "badger":
		return bucket.NewBadgerStore(config.BadgerDir, logger)
	case "memory":
		return bucket.NewMemoryStore(), nil
	default:
		return nil, fmt.Errorf("unknown BUCKET_BACKEND %q", config.BucketBackend)
	}
}

// setupLogging configures application logging
func setupLogging() {
	if os.Getenv("GIN_MODE") == "release" {
		gin.SetMode(gin.ReleaseMode)
	}
	log.SetFlags(log.LstdFlags | log.Lshortfile)
}
