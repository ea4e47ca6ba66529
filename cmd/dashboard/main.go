package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"meteorenard.app/internal/app"
	"meteorenard.app/pkg/logger"
)

func main() {
	// Load environment variables from .env file if present
	if err := godotenv.Load(); err != nil {
		slog.Info("No .env file found or error loading it")
	}

	logger.NewWithLevel(logger.ParseLevel(os.Getenv("LOG_LEVEL"))).SetDefault()

	application, err := app.NewApplication()
	if err != nil {
		slog.Error("Failed to initialize application", "error", err)
		os.Exit(1)
	}

	cfg := application.Config()
	slog.Info("Configuration loaded successfully",
		"port", cfg.Server.Port,
		"provider", cfg.Weather.Provider,
		"store", cfg.Store.Type,
		"defaultLocation", cfg.Location.DefaultName)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := setupGracefulShutdown(cancel, application)

	slog.Info("Starting Météo Renard dashboard...")
	if err := application.Start(ctx); err != nil {
		slog.Error("Failed to start application", "error", err)
		os.Exit(1)
	}
	<-done
}

// setupGracefulShutdown stops the application on SIGINT or SIGTERM. The
// returned channel closes once shutdown has finished.
func setupGracefulShutdown(cancel context.CancelFunc, application *app.Application) <-chan struct{} {
	done := make(chan struct{})
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		defer close(done)
		<-c
		slog.Info("Received shutdown signal...")

		cancel()

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer shutdownCancel()

		if err := application.Shutdown(shutdownCtx); err != nil {
			slog.Error("Error during graceful shutdown", "error", err)
		}
	}()

	return done
}
