package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"

	"creative_syncer/internal/cache"
	"creative_syncer/internal/config"
	"creative_syncer/internal/publisher"
	"creative_syncer/internal/scheduler"
	"creative_syncer/internal/service"
	"creative_syncer/internal/source"
	"creative_syncer/internal/source/feedhouse"
	"creative_syncer/internal/source/pushhouse"
	"creative_syncer/internal/storage/postgres"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	once := flag.Bool("once", false, "run one sync cycle and exit")
	dryRun := flag.Bool("dry-run", false, "simulate one sync cycle without writing, then exit")
	testConn := flag.Bool("test-connection", false, "check upstream API connectivity and exit")
	cleanup := flag.Bool("cleanup", false, "delete long-inactive creatives and exit")
	flag.Parse()

	// Setup logger
	logger := setupLogger("info")

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger = setupLogger(cfg.LogLevel)

	db, err := sqlx.Connect("postgres", cfg.Database.DSN())
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := postgres.RunMigrations(db); err != nil {
		logger.Error("failed to run migrations", "error", err)
		os.Exit(1)
	}
	logger.Info("connected to database, schema up to date")

	// Optional redis layer in front of the dedup-hash lookups
	var hashCache service.HashCache
	if cfg.Redis.Addr != "" {
		redisCache, err := cache.NewHashCache(cfg.Redis.Addr, cfg.Redis.HashTTL, logger)
		if err != nil {
			logger.Error("failed to connect to redis", "error", err)
			os.Exit(1)
		}
		defer redisCache.Close()
		hashCache = redisCache
		logger.Info("connected to redis", "addr", cfg.Redis.Addr)
	}

	// Initialize stores
	creativeStore := postgres.NewCreativeStore(db, cfg.Sync.ChunkSize)
	sourceStateStore := postgres.NewSourceStateStore(db)
	txManager := postgres.NewTransactionManager(db)

	// Initialize sources
	feedHouseSource := feedhouse.New(feedhouse.Config{
		BaseURL:        cfg.FeedHouse.BaseURL,
		APIKey:         cfg.FeedHouse.APIKey,
		Timeout:        cfg.FeedHouse.Timeout,
		RateLimitDelay: cfg.FeedHouse.RateLimitDelay,
		Formats:        cfg.FeedHouse.Formats,
		AdNetworks:     cfg.FeedHouse.AdNetworks,
		Retry:          retryPolicy(cfg.FeedHouse.Retry),
	}, logger)

	pushHouseSource := pushhouse.New(pushhouse.Config{
		BaseURL:        cfg.PushHouse.BaseURL,
		Timeout:        cfg.PushHouse.Timeout,
		RateLimitDelay: cfg.PushHouse.RateLimitDelay,
		Status:         cfg.PushHouse.Status,
		MaxPages:       cfg.PushHouse.MaxPages,
		Retry:          retryPolicy(cfg.PushHouse.Retry),
	}, logger)

	if *testConn {
		runConnectionChecks(logger, feedHouseSource, pushHouseSource)
		return
	}

	// Initialize RabbitMQ publisher
	rabbitMQ, err := publisher.NewRabbitMQ(publisher.Config{
		URL:        cfg.RabbitMQ.URL,
		Exchange:   cfg.RabbitMQ.Exchange,
		RoutingKey: cfg.RabbitMQ.RoutingKey,
		QueueName:  cfg.RabbitMQ.QueueName,
	}, logger)
	if err != nil {
		logger.Error("failed to connect to rabbitmq", "error", err)
		os.Exit(1)
	}
	defer rabbitMQ.Close()

	// Create sync services for both pipelines
	feedHouseSync := service.NewCursorSyncService(
		feedHouseSource,
		creativeStore,
		sourceStateStore,
		txManager,
		rabbitMQ,
		hashCache,
		logger,
		cfg.Sync,
	)

	pushHouseSync := service.NewSnapshotSyncService(
		pushHouseSource,
		creativeStore,
		sourceStateStore,
		txManager,
		rabbitMQ,
		logger,
		cfg.Sync,
	)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		sig := <-sigCh
		logger.Info("received shutdown signal", "signal", sig)
		cancel()
	}()

	if *cleanup {
		deleted, err := pushHouseSync.CleanupInactive(ctx)
		if err != nil {
			logger.Error("cleanup failed", "error", err)
			os.Exit(1)
		}
		logger.Info("cleanup finished", "deleted", deleted)
		return
	}

	if *dryRun {
		runOnce(ctx, logger, true, feedHouseSync, pushHouseSync)
		return
	}
	if *once {
		runOnce(ctx, logger, false, feedHouseSync, pushHouseSync)
		return
	}

	sched := scheduler.NewScheduler(
		[]scheduler.Pipeline{feedHouseSync, pushHouseSync},
		cfg.Sync.Interval,
		logger,
	)

	logger.Info("starting creative syncer",
		"interval", cfg.Sync.Interval,
		"max_items_per_run", cfg.Sync.MaxItemsPerRun,
		"batch_size", cfg.Sync.BatchSize,
	)

	if err := sched.Start(ctx); err != nil && err != context.Canceled {
		logger.Error("scheduler error", "error", err)
		os.Exit(1)
	}
}

func runOnce(ctx context.Context, logger *slog.Logger, dry bool, pipelines ...service.Pipeline) {
	failed := false
	for _, p := range pipelines {
		var err error
		if dry {
			_, err = p.DryRun(ctx, service.Options{})
		} else {
			_, err = p.ParseAndSync(ctx, service.Options{})
		}
		if err != nil {
			logger.Error("run failed", "source", p.SourceID(), "dry_run", dry, "error", err)
			failed = true
		}
	}
	if failed {
		os.Exit(1)
	}
}

func runConnectionChecks(logger *slog.Logger, sources ...interface {
	ID() string
	TestConnection(ctx context.Context) error
}) {
	ctx := context.Background()
	failed := false
	for _, s := range sources {
		if err := s.TestConnection(ctx); err != nil {
			logger.Error("connection check failed", "source", s.ID(), "error", err)
			failed = true
			continue
		}
		logger.Info("connection ok", "source", s.ID())
	}
	if failed {
		os.Exit(1)
	}
}

func retryPolicy(cfg config.RetryConfig) source.RetryPolicy {
	return source.RetryPolicy{
		MaxAttempts:   cfg.MaxAttempts,
		BaseDelay:     cfg.BaseDelay,
		MaxRetryAfter: cfg.MaxRetryAfter,
	}
}

func setupLogger(level string) *slog.Logger {
	var logLevel slog.Level
	switch level {
	case "debug":
		logLevel = slog.LevelDebug
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: logLevel}
	handler := slog.NewJSONHandler(os.Stdout, opts)
	return slog.New(handler)
}
