package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/milsabores/storefront/internal/api"
	"github.com/milsabores/storefront/internal/catalog"
	"github.com/milsabores/storefront/internal/config"
	"github.com/milsabores/storefront/internal/health"
	"github.com/milsabores/storefront/internal/logging"
	"github.com/milsabores/storefront/internal/web"
)

func main() {
	// Load .env file if it exists (Overload overwrites existing env vars)
	if err := godotenv.Overload(); err != nil {
		slog.Info("no .env file found, using environment variables")
	} else {
		slog.Info("loaded .env file (overwriting existing env vars)")
	}

	// Load and validate configuration
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	// Setup structured logging based on config
	logging.Setup(cfg.Logging.Level, cfg.Logging.Format)

	slog.Info("configuration loaded",
		"port", cfg.Server.Port,
		"api_base_url", cfg.API.BaseURL,
		"api_timeout", cfg.API.Timeout,
		"rate_limit_enabled", cfg.Rate.Enabled,
	)
	if cfg.API.BaseURL == "" {
		slog.Warn("API_BASE_URL not configured, serving empty collections")
	}

	client := api.NewClient(cfg.API.BaseURL, cfg.API.Key, cfg.API.Timeout)
	store := catalog.NewStore()
	loader := catalog.NewLoader(client, store, slog.Default())

	// Populate the store once at startup. Fetch failures degrade to
	// empty collections; they never abort startup.
	ctx := context.Background()
	loader.Initialize(ctx)

	// Background job context for the startup probe
	jobCtx, cancelJobs := context.WithCancel(context.Background())

	// Non-blocking endpoint diagnostics for operator visibility
	go health.RunStartupChecks(jobCtx, client, slog.Default())

	server := web.NewServer(store, cfg)

	// Graceful shutdown
	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh

		slog.Info("shutting down...")

		cancelJobs()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			slog.Error("shutdown error", "error", err)
		}
	}()

	slog.Info("server starting", "addr", cfg.Server.Addr())
	if err := server.Start(); err != nil {
		slog.Info("server stopped", "error", err)
	}
}
