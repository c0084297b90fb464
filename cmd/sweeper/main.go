package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/soundclave/sc-broker/internal/adapter"
	"github.com/soundclave/sc-broker/internal/broker"
	"github.com/soundclave/sc-broker/internal/config"
	"github.com/soundclave/sc-broker/internal/ledger"
	"github.com/soundclave/sc-broker/internal/logger"
	"github.com/soundclave/sc-broker/internal/messaging"
	"github.com/soundclave/sc-broker/internal/ratelimit"
	"github.com/soundclave/sc-broker/internal/store"
	"github.com/soundclave/sc-broker/internal/sweeper"
)

var (
	configFile = flag.String("config", "", "Path to configuration file")
	envPath    = flag.String("env", "config/", "Path to environment files")
)

func main() {
	flag.Parse()

	// Load configuration
	config.ChdirRepoRoot()
	cfg, err := config.LoadSweeperConfig(*configFile, *envPath)
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize logger with sentry integration
	err = logger.Initialize(logger.Config{
		Debug:           cfg.Debug,
		SentryDSN:       cfg.SentryDSN,
		BreadcrumbLevel: zapcore.InfoLevel,
		Tags: map[string]string{
			"service": "sweeper",
		},
	})
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer logger.Flush(2 * time.Second)
	logger.InfoCtx(ctx, "Starting SoundClave broker sweeper")

	// Connect to database
	db, err := gorm.Open(postgres.Open(cfg.Database.DSN()), &gorm.Config{})
	if err != nil {
		logger.FatalCtx(ctx, "Failed to connect to database", zap.Error(err))
	}

	// Configure connection pool
	if err := store.ConfigureConnectionPool(db, cfg.Database.MaxOpenConns, cfg.Database.MaxIdleConns, cfg.Database.ConnMaxLifetime, cfg.Database.ConnMaxIdleTime); err != nil {
		logger.FatalCtx(ctx, "Failed to configure connection pool", zap.Error(err))
	}
	logger.InfoCtx(ctx, "Connected to database")

	// Initialize store
	dataStore := store.NewPGStore(db)

	// Throttle ledger RPC across replicas when Redis is configured
	httpClient := adapter.NewHTTPClient(cfg.Ledger.HTTPTimeout)
	if cfg.RateLimiter.RedisAddr != "" {
		redisClient := adapter.NewRedisClient(cfg.RateLimiter.RedisAddr, cfg.RateLimiter.RedisPassword, cfg.RateLimiter.RedisDB)
		limiter, err := ratelimit.NewProxy(cfg.RateLimiter, redisClient, adapter.NewClock())
		if err != nil {
			logger.FatalCtx(ctx, "Failed to create rate limit proxy", zap.Error(err))
		}
		defer func() {
			if err := limiter.Close(); err != nil {
				logger.ErrorCtx(ctx, err, zap.String("component", "rate-limiter"))
			}
		}()
		httpClient = ratelimit.WrapHTTPClient(limiter, httpClient, "ledger")
	}

	// Initialize ledger client; the compensator needs it for refunds even
	// though the reconciler itself never pays out
	ledgerClient, err := ledger.NewClient(ledger.Config{
		Endpoint:        cfg.Ledger.Endpoint,
		Account:         cfg.Ledger.Account,
		Secret:          cfg.Ledger.Secret,
		FinalityTimeout: cfg.Ledger.FinalityTimeout,
		PollInterval:    cfg.Ledger.PollInterval,
	}, httpClient, adapter.NewClock())
	if err != nil {
		logger.FatalCtx(ctx, "Failed to create ledger client", zap.Error(err))
	}

	// Connect to NATS JetStream; the sweeper works without it
	var publisher messaging.Publisher
	if cfg.NATS.URL != "" {
		publisher, err = messaging.NewJetStreamPublisher(messaging.Config{
			URL:            cfg.NATS.URL,
			StreamName:     cfg.NATS.StreamName,
			MaxReconnects:  cfg.NATS.MaxReconnects,
			ReconnectWait:  cfg.NATS.ReconnectWait,
			ConnectionName: cfg.NATS.ConnectionName,
		})
		if err != nil {
			logger.FatalCtx(ctx, "Failed to connect to NATS", zap.Error(err))
		}
		defer publisher.Close()
		logger.InfoCtx(ctx, "Connected to NATS", zap.String("url", cfg.NATS.URL))
	} else {
		logger.WarnCtx(ctx, "NATS URL not configured, reconciled events will not be published")
	}

	compensator := broker.NewCompensator(dataStore, ledgerClient)

	// Create the attempt reconciler
	reconciler := sweeper.NewAttemptReconciler(
		&sweeper.AttemptReconcilerConfig{
			BatchSize:      cfg.AttemptReconciler.BatchSize,
			WorkerPoolSize: cfg.AttemptReconciler.Worker.WorkerPoolSize,
			StaleAfter:     cfg.AttemptReconciler.StaleAfter,
		},
		dataStore,
		compensator,
		publisher,
		adapter.NewClock(),
	)

	// Start the sweeper in a goroutine
	errCh := make(chan error, 1)
	go func() {
		if err := reconciler.Start(ctx); err != nil {
			errCh <- err
		}
	}()

	// Wait for interrupt signal
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	select {
	case sig := <-sigCh:
		logger.InfoCtx(ctx, "Received shutdown signal", zap.String("signal", sig.String()))
	case err := <-errCh:
		logger.ErrorCtx(ctx, err, zap.String("component", reconciler.Name()))
	}

	// Create shutdown context with timeout (don't use canceled ctx)
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	logger.InfoCtx(shutdownCtx, "Shutting down sweeper...")

	if err := reconciler.Stop(shutdownCtx); err != nil {
		logger.ErrorCtx(shutdownCtx, err, zap.String("component", reconciler.Name()))
	}
	cancel()

	logger.InfoCtx(shutdownCtx, "Sweeper stopped")
}
