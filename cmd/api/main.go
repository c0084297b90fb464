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
	"github.com/soundclave/sc-broker/internal/api/middleware"
	"github.com/soundclave/sc-broker/internal/api/server"
	"github.com/soundclave/sc-broker/internal/broker"
	"github.com/soundclave/sc-broker/internal/config"
	"github.com/soundclave/sc-broker/internal/ledger"
	"github.com/soundclave/sc-broker/internal/logger"
	"github.com/soundclave/sc-broker/internal/messaging"
	"github.com/soundclave/sc-broker/internal/ratelimit"
	"github.com/soundclave/sc-broker/internal/registry"
	"github.com/soundclave/sc-broker/internal/royalty"
	"github.com/soundclave/sc-broker/internal/store"
)

var (
	configFile = flag.String("config", "", "Path to configuration file")
	envPath    = flag.String("env", "config/", "Path to environment files")
	migrate    = flag.Bool("migrate", false, "Run database migrations and exit")
)

func main() {
	flag.Parse()

	// Load configuration
	config.ChdirRepoRoot()
	cfg, err := config.LoadAPIConfig(*configFile, *envPath)
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
			"service": "api-server",
		},
	})
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer logger.Flush(2 * time.Second)
	logger.InfoCtx(ctx, "Starting SoundClave broker API")

	// Connect to database
	db, err := gorm.Open(postgres.Open(cfg.Database.DSN()), &gorm.Config{})
	if err != nil {
		logger.FatalCtx(ctx, "Failed to connect to database", zap.Error(err))
	}

	if *migrate {
		if err := store.Migrate(db); err != nil {
			logger.FatalCtx(ctx, "Failed to run migrations", zap.Error(err))
		}
		logger.InfoCtx(ctx, "Migrations applied")
		return
	}

	// Configure connection pool
	if err := store.ConfigureConnectionPool(db, cfg.Database.MaxOpenConns, cfg.Database.MaxIdleConns, cfg.Database.ConnMaxLifetime, cfg.Database.ConnMaxIdleTime); err != nil {
		logger.FatalCtx(ctx, "Failed to configure connection pool", zap.Error(err))
	}
	logger.InfoCtx(ctx, "Connected to database",
		zap.Int("max_open_conns", cfg.Database.MaxOpenConns),
		zap.Int("max_idle_conns", cfg.Database.MaxIdleConns),
	)

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

	// Initialize ledger client
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
	logger.InfoCtx(ctx, "Ledger client ready",
		zap.String("endpoint", cfg.Ledger.Endpoint),
		zap.String("account", cfg.Ledger.Account),
	)

	// Connect to NATS JetStream; the broker works without it
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
		logger.WarnCtx(ctx, "NATS URL not configured, sale events will not be published")
	}

	// Load the buyer blocklist
	var blocklist registry.Blocklist
	if cfg.Broker.BlocklistPath != "" {
		blocklist, err = registry.LoadBlocklist(cfg.Broker.BlocklistPath)
		if err != nil {
			logger.FatalCtx(ctx, "Failed to load buyer blocklist",
				zap.Error(err),
				zap.String("path", cfg.Broker.BlocklistPath))
		}
		logger.InfoCtx(ctx, "Loaded buyer blocklist", zap.String("path", cfg.Broker.BlocklistPath))
	}

	// Wire the purchase broker
	minter := broker.NewMinter(dataStore, ledgerClient)
	acquirer := broker.NewAcquirer(dataStore, ledgerClient, minter)
	settler := broker.NewSettler(ledgerClient)
	compensator := broker.NewCompensator(dataStore, ledgerClient)
	oracle := broker.NewOracle(dataStore, ledgerClient)
	orchestrator := broker.NewOrchestrator(dataStore, ledgerClient, acquirer, settler, compensator, blocklist)
	recorder := broker.NewRecorder(broker.RecorderConfig{
		VerifyAcceptance: cfg.Broker.VerifyConfirmations,
	}, dataStore, ledgerClient, publisher)
	analyzer := royalty.NewAnalyzer(royalty.Config{
		PlatformAddress: cfg.Ledger.Account,
		PageSize:        cfg.Analyzer.PageSize,
		WorkerPoolSize:  cfg.Analyzer.Worker.WorkerPoolSize,
	}, dataStore)

	// Create server config
	serverConfig := server.Config{
		Debug:        cfg.Debug,
		Host:         cfg.Server.Host,
		Port:         cfg.Server.Port,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
		Auth: middleware.AuthConfig{
			JWTPublicKey: cfg.Auth.JWTPublicKey,
			APIKeys:      cfg.Auth.APIKeys,
		},
	}

	// Create and start server
	srv := server.New(serverConfig, oracle, orchestrator, recorder, analyzer)

	// Start server in a goroutine
	errCh := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil {
			errCh <- err
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	select {
	case sig := <-sigCh:
		logger.InfoCtx(ctx, "Received shutdown signal", zap.String("signal", sig.String()))
		cancel()
	case err := <-errCh:
		logger.ErrorCtx(ctx, err, zap.String("component", "server"))
		cancel()
	}

	// Create shutdown context with timeout (don't use canceled ctx)
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	logger.InfoCtx(shutdownCtx, "Shutting down server...")

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.FatalCtx(shutdownCtx, "Server forced to shutdown", zap.Error(err))
	}

	logger.InfoCtx(shutdownCtx, "Server stopped")
}
