// Package main provides the main entry point for the Diet Partner API server
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dietpartner/v2/internal/infrastructure/config"
	"github.com/dietpartner/v2/internal/infrastructure/container"
	"go.uber.org/fx"
)

func main() {
	var cfg *config.Config
	app := fx.New(
		fx.NopLogger, // Use our own logger instead of Fx's
		container.Module,
		fx.Populate(&cfg),
	)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := app.Start(ctx); err != nil {
		log.Fatalf("Failed to start application: %v", err)
	}

	exitCode := 0
	select {
	case <-ctx.Done():
	case sig := <-app.Wait():
		exitCode = sig.ExitCode
	}

	fmt.Println("Shutting down gracefully...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout(cfg))
	defer shutdownCancel()

	if err := app.Stop(shutdownCtx); err != nil {
		log.Fatalf("Failed to stop application gracefully: %v", err)
	}

	fmt.Println("Application stopped successfully")
	os.Exit(exitCode)
}

func shutdownTimeout(cfg *config.Config) time.Duration {
	if cfg == nil || cfg.Server.ShutdownTimeout <= 0 {
		return 30 * time.Second
	}
	return cfg.Server.ShutdownTimeout
}
