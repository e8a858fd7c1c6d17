package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/deluxetools/menued/internal/bootstrap"
	"github.com/deluxetools/menued/internal/catalog"
	"github.com/deluxetools/menued/internal/config"
	"github.com/deluxetools/menued/internal/document"
	"github.com/deluxetools/menued/internal/handler"
	"github.com/deluxetools/menued/internal/server"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Configuration failed: %v", err)
	}

	logFile, err := bootstrap.SetupLogger(cfg)
	if err != nil {
		log.Fatalf("Logger setup failed: %v", err)
	}
	defer logFile.Close()

	if warnings, err := config.ValidateEnvWithWarnings(); err != nil {
		slog.Warn("Environment validation failed", "error", err)
	} else {
		for _, warning := range warnings {
			slog.Warn(warning)
		}
	}

	handler.InitValidator()

	catalogService, err := catalog.NewService(
		catalog.NewLoader(cfg.CatalogDir),
		cfg.MaterialCacheMax,
		cfg.MaterialCacheTTL,
	)
	if err != nil {
		slog.Error("Material catalog failed to load", "error", err, "dir", cfg.CatalogDir)
		os.Exit(1)
	}

	documentStore := document.NewStore()

	srv := server.NewServer(cfg.Port, cfg.APIKey, cfg.TrustedProxies, catalogService, documentStore)

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start()
	}()

	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)

	select {
	case err := <-errCh:
		slog.Error("Server failed", "error", err)
		os.Exit(1)
	case sig := <-sc:
		slog.Info("Signal received", "signal", sig.String())
	}

	ctx, cancel := context.WithTimeout(context.Background(), bootstrap.ShutdownTimeout)
	defer cancel()
	bootstrap.GracefulShutdown(ctx, bootstrap.ShutdownComponents{Server: srv})
}
