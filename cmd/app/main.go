package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"weatherlookup.app/internal/app"
	"weatherlookup.app/internal/config"
	"weatherlookup.app/pkg/logger"
)

func main() {
	if err := run(); err != nil {
		slog.Error("Weather lookup service stopped", "error", err)
		os.Exit(1)
	}
}

// run holds every deferred cleanup; main exits only after it returns
func run() error {
	// Load environment variables from .env file if present
	envErr := godotenv.Load()

	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("load configuration: %w", err)
	}

	appLogger, closer, err := logger.New(logger.Options{
		Level:    logger.ParseLevel(cfg.Log.Level),
		Format:   cfg.Log.Format,
		FilePath: cfg.Log.FilePath,
	})
	if err != nil {
		return fmt.Errorf("create logger: %w", err)
	}
	defer func() { _ = closer.Close() }()
	defer slog.SetDefault(slog.Default())
	slog.SetDefault(appLogger)

	if envErr != nil {
		appLogger.Info("No .env file found, using process environment")
	}

	application, err := app.NewApplication(cfg, appLogger)
	if err != nil {
		appLogger.Error("Failed to initialize application", "error", err)
		return fmt.Errorf("initialize application: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	done := make(chan struct{})
	go func() {
		defer close(done)
		<-ctx.Done()
		appLogger.Info("Received shutdown signal...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := application.Shutdown(shutdownCtx); err != nil {
			appLogger.Error("Error during graceful shutdown", "error", err)
		}
	}()

	appLogger.Info("Starting weather lookup service...")
	startErr := application.Start(ctx)
	if startErr != nil {
		appLogger.Error("Failed to start application", "error", startErr)
		// release the cache backend before the log file closes
		stop()
	}
	<-done

	if startErr != nil {
		return fmt.Errorf("start application: %w", startErr)
	}
	return nil
}
