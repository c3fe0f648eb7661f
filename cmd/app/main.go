package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/lkacz/PersonalFreedom-sub001/internal/config"
	"github.com/lkacz/PersonalFreedom-sub001/internal/database"
	"github.com/lkacz/PersonalFreedom-sub001/internal/database/postgres"
	"github.com/lkacz/PersonalFreedom-sub001/internal/database/schema"
	"github.com/lkacz/PersonalFreedom-sub001/internal/event"
	"github.com/lkacz/PersonalFreedom-sub001/internal/handler"
	"github.com/lkacz/PersonalFreedom-sub001/internal/item"
	"github.com/lkacz/PersonalFreedom-sub001/internal/profile"
	"github.com/lkacz/PersonalFreedom-sub001/internal/repository"
	"github.com/lkacz/PersonalFreedom-sub001/internal/server"
)

const (
	shutdownTimeout = 10 * time.Second
	catalogCacheTTL = 10 * time.Minute
	catalogCacheLen = 256
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	initLogger(cfg)
	handler.InitValidator()

	catalog, err := item.NewCatalog(cfg.ItemConfigPath, catalogCacheLen, catalogCacheTTL)
	if err != nil {
		slog.Error("Failed to load item catalog", "error", err, "path", cfg.ItemConfigPath)
		os.Exit(1)
	}

	// Prefer PostgreSQL for snapshots; fall back to in-memory when the
	// database is unreachable so local development works without one.
	var gateway repository.Gateway
	var dbPool database.Pool

	pool, err := database.NewPool(context.Background(), cfg.GetDBConnString(), database.PoolSettings{MaxConns: cfg.DBMaxConns})
	if err != nil {
		slog.Warn("Database unavailable, using in-memory snapshots", "error", err)
		gateway = repository.NewMemoryGateway()
	} else {
		if _, err := pool.Exec(context.Background(), schema.SchemaSQL); err != nil {
			slog.Error("Failed to apply schema", "error", err)
			os.Exit(1)
		}
		gateway = postgres.NewSnapshotRepository(pool)
		dbPool = pool
		defer pool.Close()
	}

	bus := event.NewMemoryBus()
	profileService := profile.NewService(gateway, bus, catalog, cfg.InventoryCapBonus)

	srv := server.NewServer(cfg.Port, dbPool, profileService, catalog)

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start()
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		slog.Error("Server failed", "error", err)
		os.Exit(1)
	case sig := <-stop:
		slog.Info("Shutting down", "signal", sig.String())
	}

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Stop(ctx); err != nil {
		slog.Error("Forced shutdown", "error", err)
	}
}
