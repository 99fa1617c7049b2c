package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/Junior620/cocoatrack-sub003/internal/client/api"
	"github.com/Junior620/cocoatrack-sub003/internal/client/app"
	"github.com/Junior620/cocoatrack-sub003/internal/client/auth"
	"github.com/Junior620/cocoatrack-sub003/internal/client/cli"
	"github.com/Junior620/cocoatrack-sub003/internal/client/conflict"
	"github.com/Junior620/cocoatrack-sub003/internal/client/degraded"
	"github.com/Junior620/cocoatrack-sub003/internal/client/iocli"
	"github.com/Junior620/cocoatrack-sub003/internal/client/platform"
	"github.com/Junior620/cocoatrack-sub003/internal/client/queue"
	"github.com/Junior620/cocoatrack-sub003/internal/client/storage/boltdb"
	"github.com/Junior620/cocoatrack-sub003/internal/client/syncer"
	"github.com/Junior620/cocoatrack-sub003/internal/config"
)

var (
	// Version information set via ldflags during build
	Version   = "dev"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

func main() {
	showVersion := flag.Bool("version", false, "Show version information")
	configPath := flag.String("config", "", "Path to YAML config file")
	serverURL := flag.String("server", "", "Server URL (overrides config)")
	dbPath := flag.String("db", "", "Path to local database (overrides config)")
	flag.Parse()

	if *showVersion {
		printVersion()
		os.Exit(0)
	}

	stdio := iocli.NewStdio()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if *serverURL != "" {
		cfg.Client.ServerURL = *serverURL
	}
	if *dbPath != "" {
		cfg.Client.DBPath = *dbPath
	}

	args := flag.Args()
	if len(args) == 0 {
		cli.New(stdio, nil, nil).PrintUsage()
		os.Exit(1)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	}))

	ctx := context.Background()

	store, err := boltdb.New(ctx, cfg.Client.DBPath, cfg.Client.StorageQuotaBytes)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open database: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		if err := store.Close(); err != nil {
			logger.Error("failed to close database", "error", err)
		}
	}()

	apiClient := api.NewClient(cfg.Client.ServerURL)
	authService := auth.NewService(apiClient, store, logger)

	// Менеджер режимов зависит от очереди, а очередь уведомляет менеджера,
	// поэтому callback связывается через замыкание
	var manager *degraded.Manager
	queueService := queue.NewService(store, logger, queue.WithOnChange(func() {
		if manager == nil {
			return
		}
		if _, err := manager.Recompute(ctx); err != nil {
			logger.Warn("failed to recompute degraded mode", "error", err)
		}
	}))
	resolver := conflict.NewResolver(cfg.Client.ConflictPolicy())
	manager = degraded.NewManager(queueService, store, authService, cfg.Client.Thresholds(), logger)
	integrity := platform.NewIntegrityChecker(store, store, logger)

	engine := syncer.NewEngine(apiClient, queueService, store, store, resolver, cfg.Client.SyncerConfig(), logger,
		syncer.WithAfterPass(func(ctx context.Context) {
			if _, err := manager.Recompute(ctx); err != nil {
				logger.Warn("failed to recompute degraded mode", "error", err)
			}
		}))

	application := app.New(queueService, engine, manager, resolver, store, integrity, logger)

	c := cli.New(stdio, application, authService)
	if err := c.Run(ctx, args[0], args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func printVersion() {
	fmt.Printf("CocoaTrack Agent\n")
	fmt.Printf("Version:    %s\n", Version)
	fmt.Printf("Build Date: %s\n", BuildDate)
	fmt.Printf("Git Commit: %s\n", GitCommit)
}
